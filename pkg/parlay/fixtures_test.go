package parlay

import (
	"time"

	"github.com/google/uuid"

	"github.com/cypherlabdev/parlay-slip-service/internal/models"
)

// testCycle builds an active cycle with ten matches. Match ids are
// 101..110 and every odd field of match i is base+i so stale-odds cases
// are easy to construct.
func testCycle() *models.Cycle {
	matches := make([]models.Match, 0, models.MatchesPerCycle)
	for i := 0; i < models.MatchesPerCycle; i++ {
		matches = append(matches, models.Match{
			ID:        uint64(101 + i),
			StartTime: time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC).Add(time.Duration(i) * time.Hour),
			Odds: models.MatchOdds{
				HomeWin: uint32(1500 + i),
				Draw:    uint32(3200 + i),
				AwayWin: uint32(2100 + i),
				Over:    uint32(1850 + i),
				Under:   uint32(1950 + i),
			},
		})
	}
	return &models.Cycle{
		ID:           7,
		Matches:      matches,
		BettingClose: time.Date(2026, 3, 14, 14, 0, 0, 0, time.UTC),
		State:        models.CycleActive,
	}
}

// testLegs builds one well-formed home-win leg per cycle match, priced
// at the match's current odd.
func testLegs(cycle *models.Cycle) []models.Leg {
	legs := make([]models.Leg, 0, len(cycle.Matches))
	for _, m := range cycle.Matches {
		legs = append(legs, models.Leg{
			MatchID:     m.ID,
			BetType:     models.BetMoneyline,
			Selection:   models.SelectionHomeWin,
			SelectedOdd: m.Odds.HomeWin,
		})
	}
	return legs
}

// testSlip wraps ordered legs into an evaluated slip for ranking tests.
func testSlip(player string, score uint64, correct int, placedAt time.Time) models.Slip {
	return models.Slip{
		ID:           uuid.New(),
		PlayerID:     player,
		CycleID:      7,
		PlacedAt:     placedAt,
		Score:        score,
		CorrectCount: correct,
		Evaluated:    true,
	}
}
