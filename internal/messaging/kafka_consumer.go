package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"

	"github.com/cypherlabdev/parlay-slip-service/internal/directory"
	"github.com/cypherlabdev/parlay-slip-service/internal/models"
)

// KafkaConsumer consumes cycle updates from the directory feed and applies
// them to the local cycle store
type KafkaConsumer struct {
	reader *kafka.Reader
	store  *directory.Store
	logger zerolog.Logger
}

// KafkaConsumerConfig holds Kafka consumer configuration
type KafkaConsumerConfig struct {
	Brokers []string // e.g., ["localhost:9092"]
	Topic   string   // e.g., "cycle_updates"
	GroupID string   // e.g., "parlay-slip"
}

// NewKafkaConsumer creates a new Kafka consumer
func NewKafkaConsumer(
	config KafkaConsumerConfig,
	store *directory.Store,
	logger zerolog.Logger,
) *KafkaConsumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        config.Brokers,
		Topic:          config.Topic,
		GroupID:        config.GroupID,
		MinBytes:       1e3,  // 1KB
		MaxBytes:       10e6, // 10MB
		CommitInterval: time.Second,
	})

	return &KafkaConsumer{
		reader: reader,
		store:  store,
		logger: logger.With().Str("component", "kafka_consumer").Logger(),
	}
}

// Start begins consuming messages from Kafka
func (c *KafkaConsumer) Start(ctx context.Context) error {
	c.logger.Info().
		Str("topic", c.reader.Config().Topic).
		Str("group_id", c.reader.Config().GroupID).
		Msg("started consuming from Kafka")

	for {
		select {
		case <-ctx.Done():
			c.logger.Info().Msg("stopping Kafka consumer")
			return c.reader.Close()

		default:
			// Read message
			msg, err := c.reader.FetchMessage(ctx)
			if err != nil {
				if err == context.Canceled {
					return nil
				}
				c.logger.Error().Err(err).Msg("failed to fetch message")
				continue
			}

			// Process message
			if err := c.processMessage(msg); err != nil {
				c.logger.Error().
					Err(err).
					Int64("offset", msg.Offset).
					Str("key", string(msg.Key)).
					Msg("failed to process message")
				// Don't commit if processing failed
				continue
			}

			// Commit message
			if err := c.reader.CommitMessages(ctx, msg); err != nil {
				c.logger.Error().Err(err).Msg("failed to commit message")
			}
		}
	}
}

// processMessage applies a single cycle update to the store. Legacy field
// names are folded into the canonical shape before anything is applied.
func (c *KafkaConsumer) processMessage(msg kafka.Message) error {
	var update models.CycleUpdateMessage
	if err := json.Unmarshal(msg.Value, &update); err != nil {
		return fmt.Errorf("failed to unmarshal message: %w", err)
	}
	update.Normalize()

	c.logger.Debug().
		Uint64("cycle_id", update.CycleID).
		Int("settlements", len(update.Settlements)).
		Bool("has_cycle", update.Cycle != nil).
		Msg("processing cycle update")

	if update.Cycle != nil {
		if err := c.store.ApplyCycle(update.Cycle); err != nil {
			return fmt.Errorf("failed to apply cycle: %w", err)
		}
	}

	cycleID := update.CycleID
	if cycleID == 0 && update.Cycle != nil {
		cycleID = update.Cycle.ID
	}

	for _, settlement := range update.Settlements {
		if err := c.store.ApplySettlement(cycleID, settlement); err != nil {
			return fmt.Errorf("failed to apply settlement for match %d: %w", settlement.MatchID, err)
		}
	}

	if update.State != nil {
		if err := c.store.ApplyState(cycleID, *update.State); err != nil {
			return fmt.Errorf("failed to apply state: %w", err)
		}
	}

	c.logger.Info().
		Uint64("cycle_id", cycleID).
		Int("settlements", len(update.Settlements)).
		Msg("applied cycle update")

	return nil
}

// Close closes the Kafka reader
func (c *KafkaConsumer) Close() error {
	return c.reader.Close()
}
