package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/cypherlabdev/parlay-slip-service/internal/models"
)

// SlipStore persists submitted slips in Redis, keyed per cycle. Stored
// correct-counts are evaluation hints; readers recompute live values
// from the directory before trusting them.
type SlipStore struct {
	client *redis.Client
	ttl    time.Duration
	logger zerolog.Logger
}

// SlipStoreConfig holds Redis slip store configuration
type SlipStoreConfig struct {
	Addr     string // e.g., "localhost:6379"
	Password string
	DB       int
	TTL      time.Duration // retention per slip, e.g., 72h
}

// NewSlipStore creates a Redis-backed slip store
func NewSlipStore(config SlipStoreConfig, logger zerolog.Logger) *SlipStore {
	client := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})

	return &SlipStore{
		client: client,
		ttl:    config.TTL,
		logger: logger.With().Str("component", "slip_store").Logger(),
	}
}

func slipKey(cycleID uint64, slipID uuid.UUID) string {
	return fmt.Sprintf("slip:%d:%s", cycleID, slipID)
}

// Save stores a slip. The whole slip is written in one command, so an
// evaluation update is either fully visible or not at all.
func (s *SlipStore) Save(ctx context.Context, slip *models.Slip) error {
	key := slipKey(slip.CycleID, slip.ID)

	data, err := json.Marshal(slip)
	if err != nil {
		return fmt.Errorf("failed to marshal slip: %w", err)
	}

	if err := s.client.Set(ctx, key, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set in Redis: %w", err)
	}

	s.logger.Debug().
		Str("key", key).
		Uint64("cycle_id", slip.CycleID).
		Msg("stored slip")

	return nil
}

// Get retrieves one slip
func (s *SlipStore) Get(ctx context.Context, cycleID uint64, slipID uuid.UUID) (*models.Slip, error) {
	key := slipKey(cycleID, slipID)

	data, err := s.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, fmt.Errorf("slip not found")
	} else if err != nil {
		return nil, fmt.Errorf("failed to get from Redis: %w", err)
	}

	var slip models.Slip
	if err := json.Unmarshal(data, &slip); err != nil {
		return nil, fmt.Errorf("failed to unmarshal slip: %w", err)
	}

	return &slip, nil
}

// SaveBatch stores multiple slips through a pipeline
func (s *SlipStore) SaveBatch(ctx context.Context, slips []*models.Slip) error {
	if len(slips) == 0 {
		return nil
	}

	pipe := s.client.Pipeline()

	for _, slip := range slips {
		data, err := json.Marshal(slip)
		if err != nil {
			s.logger.Error().Err(err).Msg("failed to marshal slip")
			continue
		}
		pipe.Set(ctx, slipKey(slip.CycleID, slip.ID), data, s.ttl)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to execute pipeline: %w", err)
	}

	s.logger.Info().
		Int("count", len(slips)).
		Msg("stored batch of slips")

	return nil
}

// GetByCycle retrieves all stored slips for a cycle
func (s *SlipStore) GetByCycle(ctx context.Context, cycleID uint64) ([]*models.Slip, error) {
	pattern := fmt.Sprintf("slip:%d:*", cycleID)

	// Scan for keys matching pattern
	var cursor uint64
	var keys []string

	for {
		var scanKeys []string
		var err error
		scanKeys, cursor, err = s.client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to scan keys: %w", err)
		}

		keys = append(keys, scanKeys...)

		if cursor == 0 {
			break
		}
	}

	slips := make([]*models.Slip, 0, len(keys))
	for _, key := range keys {
		data, err := s.client.Get(ctx, key).Bytes()
		if err != nil {
			s.logger.Warn().Err(err).Str("key", key).Msg("failed to get key")
			continue
		}

		var slip models.Slip
		if err := json.Unmarshal(data, &slip); err != nil {
			s.logger.Warn().Err(err).Str("key", key).Msg("failed to unmarshal slip")
			continue
		}

		slips = append(slips, &slip)
	}

	return slips, nil
}

// Ping checks Redis connection
func (s *SlipStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close closes the Redis connection
func (s *SlipStore) Close() error {
	return s.client.Close()
}
