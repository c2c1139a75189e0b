package parlay

import (
	"encoding/hex"

	"github.com/rs/zerolog"

	"github.com/cypherlabdev/parlay-slip-service/internal/models"
)

// Validator reconciles a player's unordered candidate legs against the
// cycle's canonical match order, producing a positionally ordered leg
// sequence or a specific ValidationError.
type Validator struct {
	logger zerolog.Logger
}

// NewValidator creates a leg validator.
func NewValidator(logger zerolog.Logger) *Validator {
	return &Validator{
		logger: logger.With().Str("component", "validator").Logger(),
	}
}

// Reconcile orders candidate legs by cycle position and verifies the
// slip invariants: exactly ten legs, each cycle match referenced exactly
// once, and every snapshotted odd equal to the match's current odd for
// the declared selection. The result depends only on cycle order, never
// on the order candidates arrive in.
func (v *Validator) Reconcile(matches []models.Match, candidates []models.Leg) ([]models.Leg, error) {
	if len(candidates) != models.MatchesPerCycle {
		return nil, &ValidationError{Code: CodeWrongLegCount, Count: len(candidates)}
	}

	consumed := make([]bool, len(candidates))
	ordered := make([]models.Leg, 0, models.MatchesPerCycle)

	for pos, match := range matches {
		found := -1
		for i, leg := range candidates {
			if leg.MatchID != match.ID {
				continue
			}
			if consumed[i] || found >= 0 {
				return nil, &ValidationError{Code: CodeDuplicateLeg, MatchID: match.ID}
			}
			found = i
		}
		if found < 0 {
			return nil, &ValidationError{Code: CodeMissingLeg, MatchID: match.ID, Position: pos}
		}
		consumed[found] = true
		ordered = append(ordered, candidates[found])
	}

	var leftovers []uint64
	for i, leg := range candidates {
		if !consumed[i] {
			leftovers = append(leftovers, leg.MatchID)
		}
	}
	if len(leftovers) > 0 {
		return nil, &ValidationError{Code: CodeUnassignedLegs, MatchIDs: leftovers}
	}

	// Stale-odds check runs on the ordered sequence so the failure
	// reports the earliest cycle position.
	for pos, leg := range ordered {
		current, ok := matches[pos].Odds.For(leg.Selection)
		if !ok {
			return nil, &ValidationError{Code: CodeUnknownSelection, MatchID: leg.MatchID}
		}
		if current != leg.SelectedOdd {
			v.logger.Debug().
				Uint64("match_id", leg.MatchID).
				Uint32("snapshotted", leg.SelectedOdd).
				Uint32("current", current).
				Msg("odds moved since snapshot")
			return nil, &ValidationError{Code: CodeStaleOdds, MatchID: leg.MatchID, Position: pos}
		}
	}

	return ordered, nil
}

// BuildPayload encodes an ordered leg sequence into the slip submission
// wire format. Legs must already be validated.
func BuildPayload(enc SelectionEncoder, playerID string, cycleID uint64, ordered []models.Leg, entryFee uint64) (*models.SlipPayload, error) {
	entries := make([]models.PayloadEntry, 0, len(ordered))
	for _, leg := range ordered {
		id, err := enc.Encode(leg.Selection)
		if err != nil {
			return nil, err
		}
		entries = append(entries, models.PayloadEntry{
			MatchID:      leg.MatchID,
			BetType:      leg.BetType,
			Selection:    id,
			SelectionHex: hex.EncodeToString(id[:]),
			SelectedOdd:  leg.SelectedOdd,
		})
	}
	return &models.SlipPayload{
		PlayerID: playerID,
		CycleID:  cycleID,
		Entries:  entries,
		EntryFee: entryFee,
	}, nil
}
