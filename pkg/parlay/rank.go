package parlay

import (
	"bytes"
	"sort"

	"github.com/cypherlabdev/parlay-slip-service/internal/models"
)

// Rank orders evaluated slips into a leaderboard. Sort keys, in order:
// final score descending, correct count descending, earliest placement
// timestamp, then slip id ascending so no two entries ever share a rank.
// Unevaluated slips do not participate. Ranks are 1-based and contiguous.
func Rank(slips []models.Slip) []models.LeaderboardEntry {
	eligible := make([]models.Slip, 0, len(slips))
	for _, s := range slips {
		if s.Evaluated {
			eligible = append(eligible, s)
		}
	}

	sort.Slice(eligible, func(i, j int) bool {
		a, b := eligible[i], eligible[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.CorrectCount != b.CorrectCount {
			return a.CorrectCount > b.CorrectCount
		}
		if !a.PlacedAt.Equal(b.PlacedAt) {
			return a.PlacedAt.Before(b.PlacedAt)
		}
		return bytes.Compare(a.ID[:], b.ID[:]) < 0
	})

	entries := make([]models.LeaderboardEntry, len(eligible))
	for i, s := range eligible {
		entries[i] = models.LeaderboardEntry{
			Rank:         i + 1,
			PlayerID:     s.PlayerID,
			SlipID:       s.ID,
			Score:        s.Score,
			CorrectCount: s.CorrectCount,
			PlacedAt:     s.PlacedAt,
		}
	}
	return entries
}
