package parlay

import "github.com/cypherlabdev/parlay-slip-service/internal/models"

// Evaluate recomputes a slip's correctness against the cycle's settled
// results. A leg counts as correct when its encoded selection equals the
// encoded settled outcome for its bet type; settled selections are
// compared in encoded form, matching what the settlement authority does.
// The evaluated flag is true only once every match in the cycle has a
// result.
func Evaluate(enc SelectionEncoder, cycle *models.Cycle, slip *models.Slip) (correct int, evaluated bool) {
	byID := make(map[uint64]*models.Match, len(cycle.Matches))
	for i := range cycle.Matches {
		byID[cycle.Matches[i].ID] = &cycle.Matches[i]
	}

	settled := 0
	for _, leg := range slip.Legs {
		match, ok := byID[leg.MatchID]
		if !ok || !match.Settled() {
			continue
		}
		settled++

		var won models.Selection
		switch leg.BetType {
		case models.BetOverUnder:
			won = match.Result.OverUnder
		default:
			won = match.Result.Moneyline
		}

		legID, err := enc.Encode(leg.Selection)
		if err != nil {
			continue
		}
		wonID, err := enc.Encode(won)
		if err != nil {
			continue
		}
		if legID == wonID {
			correct++
		}
	}

	return correct, settled == len(slip.Legs) && settled == len(cycle.Matches)
}
