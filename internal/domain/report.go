package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ReportType classifies a report by the event that produced it
type ReportType string

const (
	ReportTypeDuel   ReportType = "duel"
	ReportTypeAttack ReportType = "attack"
	ReportTypeSleep  ReportType = "sleep"
	ReportTypeInfo   ReportType = "info"
)

// ParseReportType validates a report type coming from the outside
func ParseReportType(s string) (ReportType, error) {
	switch t := ReportType(s); t {
	case ReportTypeDuel, ReportTypeAttack, ReportTypeSleep, ReportTypeInfo:
		return t, nil
	}
	return "", ErrInvalidInput
}

// CombatResult is the outcome of a fight from the character's point of view
type CombatResult string

const (
	CombatVictory CombatResult = "victory"
	CombatDefeat  CombatResult = "defeat"
	CombatDraw    CombatResult = "draw"
)

// CombatStats is the structured summary attached to combat reports
type CombatStats struct {
	Result              CombatResult `json:"result"`
	OpponentName        string       `json:"opponent_name"`
	DamageDealt         int          `json:"damage_dealt"`
	HPLost              int          `json:"hp_lost"`
	ExpGained           int          `json:"exp_gained"`
	YangGained          int          `json:"yang_gained"`
	Rounds              int          `json:"rounds"`
	OpponentHPRemaining int          `json:"opponent_hp_remaining"`
}

// Report is an immutable narrative record of an event. Only Read ever changes.
type Report struct {
	ID          uuid.UUID    `json:"id"`
	CharacterID uuid.UUID    `json:"character_id"`
	Type        ReportType   `json:"type"`
	Subject     string       `json:"subject"`
	Content     string       `json:"content"`
	Read        bool         `json:"read"`
	Stats       *CombatStats `json:"stats,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
}

// MarshalCombatStats converts CombatStats to JSONB
func MarshalCombatStats(s *CombatStats) ([]byte, error) {
	if s == nil {
		return nil, nil
	}
	return json.Marshal(s)
}

// UnmarshalCombatStats converts JSONB to CombatStats
func UnmarshalCombatStats(data []byte) (*CombatStats, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var s CombatStats
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}
