package service

import (
	"time"

	"github.com/cypherlabdev/parlay-slip-service/internal/models"
)

// Directory is an interface that abstracts the external Cycle Directory
// read surface. The directory owns cycles; this service only reads.
type Directory interface {
	GetCycle(cycleID uint64) (*models.Cycle, error)
	GetCycleState(cycleID uint64) (models.CycleState, error)
	GetCycleMatches(cycleID uint64) ([]models.Match, error)
	GetBettingCloseTime(cycleID uint64) (time.Time, error)
	TrackedCycles() []uint64
}
