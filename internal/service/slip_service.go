package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/cypherlabdev/parlay-slip-service/internal/models"
	"github.com/cypherlabdev/parlay-slip-service/pkg/parlay"
)

// SlipService orchestrates the slip engine: window gating, leg
// reconciliation, payload encoding, scoring, ledger submission,
// leaderboard assembly and prize claims.
type SlipService struct {
	validator *parlay.Validator
	encoder   parlay.SelectionEncoder
	store     SlipStore
	directory Directory
	ledger    Ledger
	entryFee  uint64
	now       func() time.Time
	logger    zerolog.Logger
}

// NewSlipService creates a slip service
func NewSlipService(
	validator *parlay.Validator,
	encoder parlay.SelectionEncoder,
	store SlipStore,
	directory Directory,
	ledger Ledger,
	entryFee uint64,
	logger zerolog.Logger,
) *SlipService {
	return &SlipService{
		validator: validator,
		encoder:   encoder,
		store:     store,
		directory: directory,
		ledger:    ledger,
		entryFee:  entryFee,
		now:       time.Now,
		logger:    logger.With().Str("component", "slip_service").Logger(),
	}
}

// SubmitSlip validates a candidate leg set against the cycle directory,
// encodes it, scores it, submits the payload to the ledger and persists
// the accepted slip. Validation and window errors surface before any
// ledger interaction.
func (s *SlipService) SubmitSlip(ctx context.Context, playerID string, cycleID uint64, candidates []models.Leg) (*models.Slip, error) {
	cycle, err := s.directory.GetCycle(cycleID)
	if err != nil {
		return nil, fmt.Errorf("cycle lookup failed: %w", err)
	}

	now := s.now()
	remaining, err := parlay.CheckWindow(cycle.State, cycle.BettingClose, now)
	if err != nil {
		return nil, err
	}

	ordered, err := s.validator.Reconcile(cycle.Matches, candidates)
	if err != nil {
		var verr *parlay.ValidationError
		if errors.As(err, &verr) {
			validationFailures.WithLabelValues(string(verr.Code)).Inc()
		}
		return nil, err
	}

	payload, err := parlay.BuildPayload(s.encoder, playerID, cycleID, ordered, s.entryFee)
	if err != nil {
		return nil, err
	}

	// Carry the encoded ids on the slip legs so later comparisons never
	// fall back to raw text.
	for i := range ordered {
		ordered[i].SelectionID = payload.Entries[i].Selection
	}

	if err := s.ledger.SubmitSlip(ctx, payload); err != nil {
		return nil, fmt.Errorf("ledger submission failed: %w", err)
	}

	slip := &models.Slip{
		ID:       uuid.New(),
		PlayerID: playerID,
		CycleID:  cycleID,
		PlacedAt: now,
		Legs:     ordered,
		Score:    parlay.Score(ordered),
	}

	if err := s.store.Save(ctx, slip); err != nil {
		// The ledger already holds the fee; the slip must not be lost.
		return nil, fmt.Errorf("slip accepted by ledger but not stored: %w", err)
	}

	slipsSubmitted.Inc()
	s.logger.Info().
		Str("player_id", playerID).
		Uint64("cycle_id", cycleID).
		Str("slip_id", slip.ID.String()).
		Str("score", models.FormatFixedPoint(slip.Score)).
		Dur("window_remaining", remaining).
		Msg("submitted slip")

	return slip, nil
}

// GetSlip returns a slip with freshly recomputed correctness. The stored
// correct-count is a hint only; a live recompute against the directory
// always wins.
func (s *SlipService) GetSlip(ctx context.Context, cycleID uint64, slipID uuid.UUID) (*models.Slip, error) {
	slip, err := s.store.Get(ctx, cycleID, slipID)
	if err != nil {
		return nil, parlay.ErrSlipNotFound
	}
	if err := s.refreshSlip(slip); err != nil {
		s.logger.Warn().Err(err).Uint64("cycle_id", cycleID).Msg("live recompute unavailable, serving stored hint")
	}
	return slip, nil
}

// refreshSlip recomputes a slip's correctness in place
func (s *SlipService) refreshSlip(slip *models.Slip) error {
	cycle, err := s.directory.GetCycle(slip.CycleID)
	if err != nil {
		return err
	}
	correct, evaluated := parlay.Evaluate(s.encoder, cycle, slip)
	slip.CorrectCount = correct
	slip.Evaluated = evaluated
	return nil
}

// Leaderboard ranks the evaluated slips of a resolved cycle. Every slip
// is recomputed live before ranking.
func (s *SlipService) Leaderboard(ctx context.Context, cycleID uint64) ([]models.LeaderboardEntry, error) {
	state, err := s.directory.GetCycleState(cycleID)
	if err != nil {
		return nil, fmt.Errorf("cycle lookup failed: %w", err)
	}
	if state != models.CycleResolved {
		return nil, parlay.ErrCycleUnresolved
	}

	slips, err := s.store.GetByCycle(ctx, cycleID)
	if err != nil {
		return nil, fmt.Errorf("failed to load slips: %w", err)
	}

	ranked := make([]models.Slip, 0, len(slips))
	for _, slip := range slips {
		if err := s.refreshSlip(slip); err != nil {
			return nil, err
		}
		ranked = append(ranked, *slip)
	}

	entries := parlay.Rank(ranked)

	s.logger.Debug().
		Uint64("cycle_id", cycleID).
		Int("entries", len(entries)).
		Msg("assembled leaderboard")

	return entries, nil
}

// Claim pays out a slip's prize if its rank is eligible. The ledger
// enforces the one-shot transition; a repeat claim is a terminal
// already-claimed error and transfers nothing.
func (s *SlipService) Claim(ctx context.Context, cycleID uint64, slipID uuid.UUID) (uint64, error) {
	entries, err := s.Leaderboard(ctx, cycleID)
	if err != nil {
		if errors.Is(err, parlay.ErrCycleUnresolved) {
			claimsRejected.WithLabelValues("cycle_unresolved").Inc()
		}
		return 0, err
	}

	var entry *models.LeaderboardEntry
	for i := range entries {
		if entries[i].SlipID == slipID {
			entry = &entries[i]
			break
		}
	}
	if entry == nil {
		claimsRejected.WithLabelValues("slip_not_found").Inc()
		return 0, parlay.ErrSlipNotFound
	}

	if !parlay.PrizeEligible(entry.Rank) {
		claimsRejected.WithLabelValues("not_eligible").Inc()
		return 0, parlay.ErrNotEligible
	}

	pool, err := s.ledger.PrizePool(ctx, cycleID)
	if err != nil {
		return 0, fmt.Errorf("prize pool lookup failed: %w", err)
	}
	amount := parlay.PrizeAmount(entry.Rank, pool)

	if err := s.ledger.Claim(ctx, cycleID, slipID, entry.PlayerID, amount); err != nil {
		if errors.Is(err, parlay.ErrAlreadyClaimed) {
			claimsRejected.WithLabelValues("already_claimed").Inc()
			return 0, err
		}
		return 0, fmt.Errorf("ledger claim failed: %w", err)
	}

	// Mirror the ledger's claimed flag on the stored slip. The ledger
	// record stays authoritative; this only keeps reads consistent.
	if slip, err := s.store.Get(ctx, cycleID, slipID); err == nil && !slip.Claimed {
		slip.Claimed = true
		if err := s.store.Save(ctx, slip); err != nil {
			s.logger.Warn().Err(err).Str("slip_id", slipID.String()).Msg("failed to mirror claimed flag")
		}
	}

	claimsPaid.Inc()
	s.logger.Info().
		Uint64("cycle_id", cycleID).
		Str("slip_id", slipID.String()).
		Int("rank", entry.Rank).
		Uint64("amount", amount).
		Msg("claimed prize")

	return amount, nil
}
