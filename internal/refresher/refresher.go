package refresher

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/cypherlabdev/parlay-slip-service/internal/models"
	"github.com/cypherlabdev/parlay-slip-service/internal/service"
	"github.com/cypherlabdev/parlay-slip-service/pkg/parlay"
)

// Refresher periodically re-evaluates stored slips against the latest
// settled results. Stored counts are only hints for readers between runs;
// reads always recompute, so a missed tick never serves wrong data.
type Refresher struct {
	store     service.SlipStore
	directory service.Directory
	encoder   parlay.SelectionEncoder
	interval  time.Duration
	logger    zerolog.Logger
}

// NewRefresher creates a new evaluation refresher
func NewRefresher(
	store service.SlipStore,
	directory service.Directory,
	encoder parlay.SelectionEncoder,
	interval time.Duration,
	logger zerolog.Logger,
) *Refresher {
	return &Refresher{
		store:     store,
		directory: directory,
		encoder:   encoder,
		interval:  interval,
		logger:    logger.With().Str("component", "refresher").Logger(),
	}
}

// Start runs the refresh loop until the context is cancelled
func (r *Refresher) Start(ctx context.Context) {
	r.logger.Info().Dur("interval", r.interval).Msg("started evaluation refresher")

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.logger.Info().Msg("stopping evaluation refresher")
			return
		case <-ticker.C:
			r.refreshAll(ctx)
		}
	}
}

// refreshAll re-evaluates every tracked cycle's slips and writes back
// only the ones whose counts changed
func (r *Refresher) refreshAll(ctx context.Context) {
	for _, cycleID := range r.directory.TrackedCycles() {
		if err := r.refreshCycle(ctx, cycleID); err != nil {
			r.logger.Error().Err(err).Uint64("cycle_id", cycleID).Msg("cycle refresh failed")
		}
	}
}

func (r *Refresher) refreshCycle(ctx context.Context, cycleID uint64) error {
	cycle, err := r.directory.GetCycle(cycleID)
	if err != nil {
		return err
	}
	if cycle.State == models.CycleNotStarted || cycle.State == models.CycleActive {
		return nil
	}

	slips, err := r.store.GetByCycle(ctx, cycleID)
	if err != nil {
		return err
	}

	var changed []*models.Slip
	for _, slip := range slips {
		correct, evaluated := parlay.Evaluate(r.encoder, cycle, slip)
		if slip.CorrectCount == correct && slip.Evaluated == evaluated {
			continue
		}
		// Re-read right before the write-back. The store holds whole
		// slips, so writing the snapshot copy could revert a claim that
		// landed after GetByCycle; the claimed flag never comes back off.
		if current, err := r.store.Get(ctx, cycleID, slip.ID); err == nil {
			slip = current
		}
		slip.CorrectCount = correct
		slip.Evaluated = evaluated
		changed = append(changed, slip)
	}

	if len(changed) == 0 {
		return nil
	}
	if err := r.store.SaveBatch(ctx, changed); err != nil {
		return err
	}

	r.logger.Info().
		Uint64("cycle_id", cycleID).
		Int("refreshed", len(changed)).
		Int("total", len(slips)).
		Msg("refreshed slip evaluations")
	return nil
}
