package parlay

import (
	"time"

	"github.com/cypherlabdev/parlay-slip-service/internal/models"
)

// CheckWindow decides whether a submission is allowed for a cycle in the
// given state at the given instant, and reports how long the window has
// left. State transitions are driven externally; this only observes.
//
// Submission is permitted only while the cycle is active and now is
// strictly before the betting-close timestamp.
func CheckWindow(state models.CycleState, bettingClose time.Time, now time.Time) (time.Duration, error) {
	if state != models.CycleActive {
		return 0, ErrCycleNotActive
	}
	if !now.Before(bettingClose) {
		return 0, ErrBettingClosed
	}
	return bettingClose.Sub(now), nil
}
