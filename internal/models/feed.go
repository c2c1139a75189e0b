package models

import "time"

// CycleUpdateMessage is the canonical cycle-feed message published by the
// directory/settlement authority.
type CycleUpdateMessage struct {
	SchemaVersion int           `json:"schema_version"`
	Cycle         *Cycle        `json:"cycle,omitempty"`
	Settlements   []Settlement  `json:"settlements,omitempty"`
	State         *CycleState   `json:"state,omitempty"`
	CycleID       uint64        `json:"cycle_id"`
	Timestamp     time.Time     `json:"timestamp"`
	Legacy        *LegacyUpdate `json:"legacy,omitempty"`
}

// Settlement is the final result of a single match.
type Settlement struct {
	MatchID uint64      `json:"match_id"`
	Result  MatchResult `json:"result"`
}

// LegacyUpdate carries the optional duck-typed fields older feed versions
// intermix with the canonical ones. It is normalized at the boundary by
// Normalize; core logic never branches on field presence.
type LegacyUpdate struct {
	Round      *Cycle       `json:"round,omitempty"`       // old name for cycle
	Results    []Settlement `json:"results,omitempty"`     // old name for settlements
	RoundState string       `json:"round_state,omitempty"` // old free-form state
}

// Normalize folds legacy optional fields into the canonical message shape.
// Canonical fields win when both are present.
func (m *CycleUpdateMessage) Normalize() {
	if m.Legacy == nil {
		return
	}
	if m.Cycle == nil && m.Legacy.Round != nil {
		m.Cycle = m.Legacy.Round
	}
	if len(m.Settlements) == 0 && len(m.Legacy.Results) > 0 {
		m.Settlements = m.Legacy.Results
	}
	if m.State == nil && m.Legacy.RoundState != "" {
		var st CycleState
		switch m.Legacy.RoundState {
		case "open", "active":
			st = CycleActive
		case "closed", "ended":
			st = CycleEnded
		case "settled", "resolved":
			st = CycleResolved
		default:
			st = CycleNotStarted
		}
		m.State = &st
	}
	m.Legacy = nil
}
