package parlay

import (
	"errors"
	"fmt"

	"github.com/cypherlabdev/parlay-slip-service/internal/models"
)

// ValidationCode identifies why a candidate leg set was rejected.
type ValidationCode string

const (
	CodeWrongLegCount    ValidationCode = "wrong_leg_count"
	CodeMissingLeg       ValidationCode = "missing_leg"
	CodeDuplicateLeg     ValidationCode = "duplicate_leg"
	CodeUnassignedLegs   ValidationCode = "unassigned_legs"
	CodeStaleOdds        ValidationCode = "stale_odds"
	CodeUnknownSelection ValidationCode = "unknown_selection"
)

// ValidationError rejects a candidate leg set before any submission
// attempt. Never retried automatically; the caller corrects its input
// and re-runs the validator.
type ValidationError struct {
	Code     ValidationCode
	MatchID  uint64   // match the failure refers to, when applicable
	Position int      // cycle position of the failure, when applicable
	Count    int      // observed leg count for wrong_leg_count
	MatchIDs []uint64 // leftover match ids for unassigned_legs
}

func (e *ValidationError) Error() string {
	switch e.Code {
	case CodeWrongLegCount:
		return fmt.Sprintf("wrong leg count: got %d, want %d", e.Count, models.MatchesPerCycle)
	case CodeMissingLeg:
		return fmt.Sprintf("missing leg for match %d at position %d", e.MatchID, e.Position)
	case CodeDuplicateLeg:
		return fmt.Sprintf("duplicate leg for match %d", e.MatchID)
	case CodeUnassignedLegs:
		return fmt.Sprintf("unassigned legs for matches %v", e.MatchIDs)
	case CodeStaleOdds:
		return fmt.Sprintf("stale odds for match %d", e.MatchID)
	case CodeUnknownSelection:
		return fmt.Sprintf("unknown selection on leg for match %d", e.MatchID)
	default:
		return string(e.Code)
	}
}

// Window errors: recoverable only by waiting for the next cycle.
var (
	ErrBettingClosed  = errors.New("betting closed")
	ErrCycleNotActive = errors.New("cycle not active")
)

// Claim errors: always terminal, never retried with a mutating effect.
var (
	ErrAlreadyClaimed   = errors.New("already claimed")
	ErrNotEligible      = errors.New("rank not eligible for a prize")
	ErrCycleUnresolved  = errors.New("cycle not resolved")
	ErrSlipNotFound     = errors.New("slip not found")
	ErrInsufficientFund = errors.New("insufficient funds")
)
