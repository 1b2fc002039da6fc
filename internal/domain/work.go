package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// MaxQueuedWorks is the number of works a character may have queued at once
const MaxQueuedWorks = 3

// WorkKind is what the character does once it reaches the target
type WorkKind string

const (
	WorkKindAttack WorkKind = "attack"
	WorkKindDuel   WorkKind = "duel"
	WorkKindSleep  WorkKind = "sleep"
)

// ParseWorkKind validates a work kind coming from the outside
func ParseWorkKind(s string) (WorkKind, error) {
	switch k := WorkKind(s); k {
	case WorkKindAttack, WorkKindDuel, WorkKindSleep:
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidWorkKind, s)
}

// WorkType is the duration tier of a work
type WorkType string

const (
	WorkType15s WorkType = "15s"
	WorkType10m WorkType = "10m"
	WorkType1h  WorkType = "1h"
)

// ParseWorkType validates a work type coming from the outside
func ParseWorkType(s string) (WorkType, error) {
	switch t := WorkType(s); t {
	case WorkType15s, WorkType10m, WorkType1h:
		return t, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidWorkType, s)
}

// JobDuration is how long the job phase of a work of this type lasts
func (t WorkType) JobDuration() time.Duration {
	switch t {
	case WorkType15s:
		return 15 * time.Second
	case WorkType10m:
		return 10 * time.Minute
	case WorkType1h:
		return time.Hour
	}
	return 0
}

// StaminaCost is the stamina committed when a work of this type is queued
func (t WorkType) StaminaCost() int {
	switch t {
	case WorkType15s:
		return 5
	case WorkType10m:
		return 20
	case WorkType1h:
		return 50
	}
	return 0
}

// RewardPercent is the share of a mob's base exp/yang granted on victory
func (t WorkType) RewardPercent() int {
	switch t {
	case WorkType15s:
		return 10
	case WorkType10m:
		return 40
	case WorkType1h:
		return 100
	}
	return 0
}

// MobSnapshot is the copy of a mob's stats taken when the work is queued
type MobSnapshot struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Type     string   `json:"type"`
	Level    int      `json:"level"`
	HP       int      `json:"hp"`
	Attack   int      `json:"attack"`
	Exp      int      `json:"exp"`
	Yang     int      `json:"yang"`
	Position Position `json:"position"`
}

// OpponentSnapshot is the copy of a rival character's stats taken when a duel is queued
type OpponentSnapshot struct {
	CharacterID uuid.UUID `json:"character_id"`
	Name        string    `json:"name"`
	Level       int       `json:"level"`
	Attack      int       `json:"attack"`
	Defense     int       `json:"defense"`
	HP          int       `json:"hp"`
	Position    Position  `json:"position"`
}

// Validate rejects snapshots that cannot be fought
func (o *OpponentSnapshot) Validate() error {
	if o == nil {
		return fmt.Errorf("%w: missing", ErrCorruptOpponentState)
	}
	if o.Name == "" || o.Level < 1 || o.HP <= 0 || o.Attack < 0 || o.Defense < 0 {
		return fmt.Errorf("%w: %+v", ErrCorruptOpponentState, *o)
	}
	return nil
}

// Work is a queued timed activity: a travel phase followed by a job phase
type Work struct {
	ID             uuid.UUID         `json:"id"`
	CharacterID    uuid.UUID         `json:"character_id"`
	Kind           WorkKind          `json:"kind"`
	Type           WorkType          `json:"type"`
	Target         *MobSnapshot      `json:"target,omitempty"`
	Opponent       *OpponentSnapshot `json:"opponent,omitempty"`
	TravelDuration time.Duration     `json:"travel_duration"`
	JobDuration    time.Duration     `json:"job_duration"`
	TravelEndTime  time.Time         `json:"travel_end_time"`
	JobEndTime     time.Time         `json:"job_end_time"`
	StaminaCost    int               `json:"stamina_cost"`
	IsInProgress   bool              `json:"is_in_progress"`
	TravelTime     int               `json:"travel_time"`    // Seconds left in the travel phase
	RemainingTime  int               `json:"remaining_time"` // Seconds left in the job phase
	CreatedAt      time.Time         `json:"created_at"`
}

// Destination is where the character ends up once the travel phase is over
func (w *Work) Destination() (Position, bool) {
	switch {
	case w.Target != nil:
		return w.Target.Position, true
	case w.Opponent != nil:
		return w.Opponent.Position, true
	}
	return Position{}, false
}

// WorkPatch is a manual correction of a queued work. Nil fields are left untouched.
type WorkPatch struct {
	Type          *WorkType  `json:"type,omitempty"`
	TravelEndTime *time.Time `json:"travel_end_time,omitempty"`
	JobEndTime    *time.Time `json:"job_end_time,omitempty"`
	StaminaCost   *int       `json:"stamina_cost,omitempty"`
	IsInProgress  *bool      `json:"is_in_progress,omitempty"`
}

// Apply writes the non-nil fields of the patch onto w
func (p WorkPatch) Apply(w *Work) error {
	if p.Type != nil {
		if _, err := ParseWorkType(string(*p.Type)); err != nil {
			return err
		}
		w.Type = *p.Type
	}
	if p.TravelEndTime != nil {
		w.TravelEndTime = *p.TravelEndTime
	}
	if p.JobEndTime != nil {
		w.JobEndTime = *p.JobEndTime
	}
	if p.StaminaCost != nil {
		if *p.StaminaCost < 0 {
			return fmt.Errorf("%w: negative stamina cost", ErrInvalidWorkPatch)
		}
		w.StaminaCost = *p.StaminaCost
	}
	if p.IsInProgress != nil {
		w.IsInProgress = *p.IsInProgress
	}
	if w.JobEndTime.Before(w.TravelEndTime) {
		return fmt.Errorf("%w: job ends before travel", ErrInvalidWorkPatch)
	}
	w.JobDuration = w.JobEndTime.Sub(w.TravelEndTime)
	return nil
}

// MarshalMobSnapshot converts a MobSnapshot to JSONB
func MarshalMobSnapshot(m *MobSnapshot) ([]byte, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

// UnmarshalMobSnapshot converts JSONB to a MobSnapshot
func UnmarshalMobSnapshot(data []byte) (*MobSnapshot, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var m MobSnapshot
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// MarshalOpponentSnapshot converts an OpponentSnapshot to JSONB
func MarshalOpponentSnapshot(o *OpponentSnapshot) ([]byte, error) {
	if o == nil {
		return nil, nil
	}
	return json.Marshal(o)
}

// UnmarshalOpponentSnapshot converts JSONB to an OpponentSnapshot
func UnmarshalOpponentSnapshot(data []byte) (*OpponentSnapshot, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var o OpponentSnapshot
	if err := json.Unmarshal(data, &o); err != nil {
		return nil, err
	}
	return &o, nil
}
