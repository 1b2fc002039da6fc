package domain

import (
	"time"

	"github.com/google/uuid"
)

// Gauge is a depletable resource with a ceiling (hp, stamina)
type Gauge struct {
	Current int `json:"current"`
	Max     int `json:"max"`
}

// Restore fills the gauge to its maximum
func (g *Gauge) Restore() {
	g.Current = g.Max
}

// Add raises the current value by n without exceeding Max
func (g *Gauge) Add(n int) {
	g.Current += n
	if g.Current > g.Max {
		g.Current = g.Max
	}
}

// Sub lowers the current value by n, floored at zero
func (g *Gauge) Sub(n int) {
	g.Current -= n
	if g.Current < 0 {
		g.Current = 0
	}
}

// Experience tracks the progress toward the next level
type Experience struct {
	Current    int `json:"current"`
	Percentage int `json:"percentage"`
	Required   int `json:"required"`
}

// Money is split into liquid cash (lost on death) and a bank balance
type Money struct {
	Cash int64 `json:"cash"`
	Bank int64 `json:"bank"`
}

// Position is a point on the world map
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Character is the player-owned entity the work and combat systems operate on
type Character struct {
	ID         uuid.UUID  `json:"id"`
	Name       string     `json:"name"`
	Level      int        `json:"level"`
	Experience Experience `json:"experience"`
	HP         Gauge      `json:"hp"`
	Stamina    Gauge      `json:"stamina"`
	Attack     int        `json:"attack"`
	Defense    int        `json:"defense"`
	Money      Money      `json:"money"`
	DuelsWon   int        `json:"duels_won"`
	DuelsLost  int        `json:"duels_lost"`
	Position   Position   `json:"position"`
	Equipment  Equipment  `json:"equipment"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// IsDead reports whether the character has run out of hp
func (c *Character) IsDead() bool {
	return c.HP.Current <= 0
}

// Snapshot captures the duel-relevant stats of the character
func (c *Character) Snapshot() OpponentSnapshot {
	return OpponentSnapshot{
		CharacterID: c.ID,
		Name:        c.Name,
		Level:       c.Level,
		Attack:      c.Attack,
		Defense:     c.Defense,
		HP:          c.HP.Current,
		Position:    c.Position,
	}
}
