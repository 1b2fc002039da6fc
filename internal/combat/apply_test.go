package combat

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mt2web/mt2web/internal/domain"
)

func newHero() *domain.Character {
	return &domain.Character{
		Name:       "Hero",
		Level:      3,
		Experience: domain.Experience{Current: 95, Required: 132},
		HP:         domain.Gauge{Current: 100, Max: 120},
		Stamina:    domain.Gauge{Current: 40, Max: 110},
		Attack:     14,
		Defense:    7,
		Money:      domain.Money{Cash: 30, Bank: 500},
	}
}

func TestApplyOutcome_VictoryGrantsRewards(t *testing.T) {
	c := newHero()
	eff := ApplyOutcome(c, Outcome{Result: domain.CombatVictory, HPLost: 10, ExpGained: 50, YangGained: 25})

	assert.False(t, eff.Died)
	assert.True(t, eff.Grant.LeveledUp)
	assert.Equal(t, 4, c.Level)
	assert.Equal(t, 13, c.Experience.Current)
	assert.Equal(t, int64(55), c.Money.Cash)
	assert.Equal(t, c.HP.Max, c.HP.Current, "level up restores hp after damage")
}

func TestApplyOutcome_DefeatKeepsRewardsAtZero(t *testing.T) {
	c := newHero()
	eff := ApplyOutcome(c, Outcome{Result: domain.CombatDefeat, HPLost: 250, ExpGained: 0})

	assert.True(t, eff.Died)
	assert.False(t, eff.Grant.LeveledUp)
	assert.Equal(t, 0, c.HP.Current)
	assert.Equal(t, int64(30), c.Money.Cash)
	assert.Equal(t, 95, c.Experience.Current)
}

func TestApplyOutcome_DrawOnlyCostsHP(t *testing.T) {
	c := newHero()
	eff := ApplyOutcome(c, Outcome{Result: domain.CombatDraw, HPLost: 30})

	assert.False(t, eff.Died)
	assert.Equal(t, 70, c.HP.Current)
	assert.Equal(t, 3, c.Level)
}
