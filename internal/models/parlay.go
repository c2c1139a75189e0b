package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OddsScale is the fixed-point scale factor: an odd of 1500 means 1.500x.
const OddsScale uint64 = 1000

// MatchesPerCycle is the exact number of matches in every cycle.
const MatchesPerCycle = 10

// CycleState is the lifecycle state of a cycle. Transitions are driven
// by the external ledger/settlement process, never by this service.
type CycleState string

const (
	CycleNotStarted CycleState = "not_started"
	CycleActive     CycleState = "active"
	CycleEnded      CycleState = "ended"
	CycleResolved   CycleState = "resolved"
)

// Selection is one of the five canonical outcome tokens.
type Selection string

const (
	SelectionHomeWin Selection = "home-win"
	SelectionDraw    Selection = "draw"
	SelectionAwayWin Selection = "away-win"
	SelectionOver    Selection = "over"
	SelectionUnder   Selection = "under"
)

// BetType tags which market a leg bets on.
type BetType string

const (
	BetMoneyline BetType = "moneyline"
	BetOverUnder BetType = "over-under"
)

// MatchOdds holds the five fixed-point odds of a match, each scaled x1000.
type MatchOdds struct {
	HomeWin uint32 `json:"home_win"`
	Draw    uint32 `json:"draw"`
	AwayWin uint32 `json:"away_win"`
	Over    uint32 `json:"over"`
	Under   uint32 `json:"under"`
}

// For returns the odd for a selection, and false for an unknown token.
func (o MatchOdds) For(sel Selection) (uint32, bool) {
	switch sel {
	case SelectionHomeWin:
		return o.HomeWin, true
	case SelectionDraw:
		return o.Draw, true
	case SelectionAwayWin:
		return o.AwayWin, true
	case SelectionOver:
		return o.Over, true
	case SelectionUnder:
		return o.Under, true
	default:
		return 0, false
	}
}

// MatchResult is the settlement outcome of a finished match.
// Immutable once set.
type MatchResult struct {
	Moneyline Selection `json:"moneyline"`  // home-win, draw or away-win
	OverUnder Selection `json:"over_under"` // over or under
}

// Match is one fixture inside a cycle.
type Match struct {
	ID        uint64       `json:"id"`
	StartTime time.Time    `json:"start_time"`
	Odds      MatchOdds    `json:"odds"`
	Result    *MatchResult `json:"result,omitempty"` // nil until settled
}

// Settled reports whether the match has a final result.
func (m *Match) Settled() bool {
	return m.Result != nil
}

// Cycle is a time-boxed set of exactly ten matches plus a betting window.
// Match order is authoritative and immutable once fixed.
type Cycle struct {
	ID           uint64     `json:"id"`
	Matches      []Match    `json:"matches"`
	BettingClose time.Time  `json:"betting_close"`
	State        CycleState `json:"state"`
}

// Leg is one prediction within a slip, tied to one match.
type Leg struct {
	MatchID     uint64    `json:"match_id"`
	BetType     BetType   `json:"bet_type"`
	Selection   Selection `json:"selection"`
	SelectionID [32]byte  `json:"-"`            // encoded form, filled at payload build time
	SelectedOdd uint32    `json:"selected_odd"` // snapshot at submission, scaled x1000
}

// Slip is a player's full set of ten ordered predictions for one cycle.
// The i-th leg references the match at position i of the cycle.
type Slip struct {
	ID           uuid.UUID `json:"id"`
	PlayerID     string    `json:"player_id"`
	CycleID      uint64    `json:"cycle_id"`
	PlacedAt     time.Time `json:"placed_at"`
	Legs         []Leg     `json:"legs"`
	Score        uint64    `json:"score"` // fixed-point, scaled x1000
	CorrectCount int       `json:"correct_count"`
	Evaluated    bool      `json:"evaluated"`
	Claimed      bool      `json:"claimed"`
}

// LeaderboardEntry is a ranked view of an evaluated slip. Derived state,
// recomputed on demand, never persisted independently.
type LeaderboardEntry struct {
	Rank         int       `json:"rank"`
	PlayerID     string    `json:"player_id"`
	SlipID       uuid.UUID `json:"slip_id"`
	Score        uint64    `json:"score"`
	CorrectCount int       `json:"correct_count"`
	PlacedAt     time.Time `json:"placed_at"`
}

// PayloadEntry is one tuple of the slip submission wire format.
type PayloadEntry struct {
	MatchID      uint64   `json:"match_id"`
	BetType      BetType  `json:"bet_type"`
	Selection    [32]byte `json:"-"`
	SelectionHex string   `json:"selection"` // hex form of Selection for JSON transport
	SelectedOdd  uint32   `json:"selected_odd"`
}

// SlipPayload is the ordered submission payload handed to the ledger,
// accompanied by the fixed entry fee.
type SlipPayload struct {
	PlayerID string         `json:"player_id"`
	CycleID  uint64         `json:"cycle_id"`
	Entries  []PayloadEntry `json:"entries"`
	EntryFee uint64         `json:"entry_fee"`
}

// FormatFixedPoint renders a x1000 fixed-point value as a decimal string,
// e.g. 57654 -> "57.654". Display only; integers stay authoritative.
func FormatFixedPoint(v uint64) string {
	return decimal.New(int64(v), -3).StringFixed(3)
}
