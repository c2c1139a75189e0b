package ledger

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/cypherlabdev/parlay-slip-service/internal/models"
	"github.com/cypherlabdev/parlay-slip-service/pkg/parlay"
)

// MemoryLedger is the in-process stand-in for the authoritative ledger:
// entry fees, per-cycle prize pools and one-shot prize claims. In a real
// deployment the on-chain ledger fills this role; the semantics here are
// the ones the engine relies on, in particular that a claim transitions
// exactly once under a single lock hold so two concurrent claims can
// never both observe the slip unclaimed.
type MemoryLedger struct {
	mu       sync.Mutex
	balances map[string]uint64
	pools    map[uint64]uint64
	claimed  map[uuid.UUID]bool
	logger   zerolog.Logger
}

// NewMemoryLedger creates an empty ledger
func NewMemoryLedger(logger zerolog.Logger) *MemoryLedger {
	return &MemoryLedger{
		balances: make(map[string]uint64),
		pools:    make(map[uint64]uint64),
		claimed:  make(map[uuid.UUID]bool),
		logger:   logger.With().Str("component", "ledger").Logger(),
	}
}

// Credit funds a player account
func (l *MemoryLedger) Credit(playerID string, amount uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.balances[playerID] += amount
}

// Balance returns a player's current balance
func (l *MemoryLedger) Balance(playerID string) uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balances[playerID]
}

// SubmitSlip accepts a validated slip payload, debiting the entry fee
// into the cycle's prize pool.
func (l *MemoryLedger) SubmitSlip(ctx context.Context, payload *models.SlipPayload) error {
	if len(payload.Entries) != models.MatchesPerCycle {
		return fmt.Errorf("ledger rejected payload: %d entries", len(payload.Entries))
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.balances[payload.PlayerID] < payload.EntryFee {
		return parlay.ErrInsufficientFund
	}
	l.balances[payload.PlayerID] -= payload.EntryFee
	l.pools[payload.CycleID] += payload.EntryFee

	l.logger.Info().
		Str("player_id", payload.PlayerID).
		Uint64("cycle_id", payload.CycleID).
		Uint64("entry_fee", payload.EntryFee).
		Msg("accepted slip submission")

	return nil
}

// PrizePool returns the accumulated pool of a cycle
func (l *MemoryLedger) PrizePool(ctx context.Context, cycleID uint64) (uint64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.pools[cycleID], nil
}

// Claim pays a prize to a slip exactly once. The claimed check, the
// transfer and the claimed set all happen under one lock hold; a repeat
// claim fails with ErrAlreadyClaimed and transfers nothing.
func (l *MemoryLedger) Claim(ctx context.Context, cycleID uint64, slipID uuid.UUID, playerID string, amount uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.claimed[slipID] {
		return parlay.ErrAlreadyClaimed
	}
	if l.pools[cycleID] < amount {
		return fmt.Errorf("prize pool underfunded: cycle %d has %d, claim wants %d", cycleID, l.pools[cycleID], amount)
	}

	l.claimed[slipID] = true
	l.pools[cycleID] -= amount
	l.balances[playerID] += amount

	l.logger.Info().
		Uint64("cycle_id", cycleID).
		Str("slip_id", slipID.String()).
		Str("player_id", playerID).
		Uint64("amount", amount).
		Msg("paid prize claim")

	return nil
}

// IsClaimed reports whether a slip's prize was already claimed
func (l *MemoryLedger) IsClaimed(ctx context.Context, slipID uuid.UUID) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.claimed[slipID], nil
}
