package directory

import (
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/cypherlabdev/parlay-slip-service/internal/models"
)

// Store is an in-memory snapshot of the external Cycle Directory, kept
// current by the cycle feed consumer. The directory is authoritative;
// this service only reads it. Cycle match order is fixed at first sight
// and never reordered by later updates.
type Store struct {
	mu     sync.RWMutex
	cycles map[uint64]*models.Cycle
	logger zerolog.Logger
}

// NewStore creates an empty directory snapshot
func NewStore(logger zerolog.Logger) *Store {
	return &Store{
		cycles: make(map[uint64]*models.Cycle),
		logger: logger.With().Str("component", "directory").Logger(),
	}
}

// ApplyCycle installs or refreshes a full cycle snapshot from the feed.
// An existing cycle keeps its original match order; only odds, results
// and window metadata are refreshed.
func (s *Store) ApplyCycle(cycle *models.Cycle) error {
	if len(cycle.Matches) != models.MatchesPerCycle {
		return fmt.Errorf("cycle %d carries %d matches, want %d", cycle.ID, len(cycle.Matches), models.MatchesPerCycle)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.cycles[cycle.ID]
	if !ok {
		cp := cloneCycle(cycle)
		s.cycles[cycle.ID] = cp
		s.logger.Info().Uint64("cycle_id", cycle.ID).Msg("tracking new cycle")
		return nil
	}

	byID := make(map[uint64]*models.Match, len(cycle.Matches))
	for i := range cycle.Matches {
		byID[cycle.Matches[i].ID] = &cycle.Matches[i]
	}
	for i := range existing.Matches {
		incoming, ok := byID[existing.Matches[i].ID]
		if !ok {
			return fmt.Errorf("cycle %d update dropped match %d", cycle.ID, existing.Matches[i].ID)
		}
		existing.Matches[i].Odds = incoming.Odds
		if existing.Matches[i].Result == nil && incoming.Result != nil {
			r := *incoming.Result
			existing.Matches[i].Result = &r
		}
	}
	existing.BettingClose = cycle.BettingClose
	existing.State = cycle.State
	return nil
}

// ApplySettlement records a match's final result. Results are immutable
// once set; repeated settlements are ignored.
func (s *Store) ApplySettlement(cycleID uint64, settlement models.Settlement) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cycle, ok := s.cycles[cycleID]
	if !ok {
		return fmt.Errorf("unknown cycle %d", cycleID)
	}
	for i := range cycle.Matches {
		if cycle.Matches[i].ID != settlement.MatchID {
			continue
		}
		if cycle.Matches[i].Result != nil {
			s.logger.Debug().
				Uint64("cycle_id", cycleID).
				Uint64("match_id", settlement.MatchID).
				Msg("ignoring repeated settlement")
			return nil
		}
		r := settlement.Result
		cycle.Matches[i].Result = &r
		return nil
	}
	return fmt.Errorf("unknown match %d in cycle %d", settlement.MatchID, cycleID)
}

// ApplyState advances a cycle's lifecycle state
func (s *Store) ApplyState(cycleID uint64, state models.CycleState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cycle, ok := s.cycles[cycleID]
	if !ok {
		return fmt.Errorf("unknown cycle %d", cycleID)
	}
	cycle.State = state
	return nil
}

// GetCycle returns a snapshot copy of a cycle
func (s *Store) GetCycle(cycleID uint64) (*models.Cycle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cycle, ok := s.cycles[cycleID]
	if !ok {
		return nil, fmt.Errorf("unknown cycle %d", cycleID)
	}
	return cloneCycle(cycle), nil
}

// GetCycleState returns a cycle's lifecycle state
func (s *Store) GetCycleState(cycleID uint64) (models.CycleState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cycle, ok := s.cycles[cycleID]
	if !ok {
		return "", fmt.Errorf("unknown cycle %d", cycleID)
	}
	return cycle.State, nil
}

// GetCycleMatches returns the cycle's ordered matches with current odds
func (s *Store) GetCycleMatches(cycleID uint64) ([]models.Match, error) {
	cycle, err := s.GetCycle(cycleID)
	if err != nil {
		return nil, err
	}
	return cycle.Matches, nil
}

// GetBettingCloseTime returns the cycle's betting-close timestamp
func (s *Store) GetBettingCloseTime(cycleID uint64) (time.Time, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cycle, ok := s.cycles[cycleID]
	if !ok {
		return time.Time{}, fmt.Errorf("unknown cycle %d", cycleID)
	}
	return cycle.BettingClose, nil
}

// TrackedCycles lists the ids of all cycles in the snapshot
func (s *Store) TrackedCycles() []uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]uint64, 0, len(s.cycles))
	for id := range s.cycles {
		ids = append(ids, id)
	}
	return ids
}

func cloneCycle(c *models.Cycle) *models.Cycle {
	cp := *c
	cp.Matches = make([]models.Match, len(c.Matches))
	copy(cp.Matches, c.Matches)
	for i := range cp.Matches {
		if cp.Matches[i].Result != nil {
			r := *cp.Matches[i].Result
			cp.Matches[i].Result = &r
		}
	}
	return &cp
}
