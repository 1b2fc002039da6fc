package leveling

import (
	"github.com/mt2web/mt2web/internal/domain"
)

// Stats are the level-derived combat attributes of a character
type Stats struct {
	MaxHP      int
	MaxStamina int
	Attack     int
	Defense    int
}

// StatsForLevel returns the base stats of a character of the given level
func StatsForLevel(level int) Stats {
	n := level - 1
	return Stats{
		MaxHP:      BaseMaxHP + n*MaxHPPerLevel,
		MaxStamina: BaseMaxStamina + n*MaxStaminaPerLevel,
		Attack:     BaseAttack + n*AttackPerLevel,
		Defense:    BaseDefense + n*DefensePerLevel,
	}
}

// NewCharacterStats fills the level, experience and stat fields of a fresh character
func NewCharacterStats(c *domain.Character) {
	c.Level = MinLevel
	c.Experience = domain.Experience{Required: RequiredExperience(MinLevel)}
	ApplyStats(c)
	c.HP.Restore()
	c.Stamina.Restore()
}

// ApplyStats recomputes the derived stats as base(level) plus equipment bonuses
// and clamps current hp/stamina to the new ceilings.
func ApplyStats(c *domain.Character) {
	base := StatsForLevel(c.Level)
	bonus := c.Equipment.Total()

	c.HP.Max = atLeast(base.MaxHP+bonus.MaxHP, 1)
	c.Stamina.Max = atLeast(base.MaxStamina+bonus.MaxStamina, 0)
	c.Attack = atLeast(base.Attack+bonus.Attack, 0)
	c.Defense = atLeast(base.Defense+bonus.Defense, 0)

	if c.HP.Current > c.HP.Max {
		c.HP.Current = c.HP.Max
	}
	if c.Stamina.Current > c.Stamina.Max {
		c.Stamina.Current = c.Stamina.Max
	}
}

// Grant is the outcome of adding experience to a character
type Grant struct {
	OldLevel  int
	NewLevel  int
	LeveledUp bool
}

// GrantExperience adds gained experience to the character. Every level-up
// recomputes stats and restores hp and stamina to the new maximum.
func GrantExperience(c *domain.Character, gained int) Grant {
	g := Grant{OldLevel: c.Level}
	if gained < 0 {
		gained = 0
	}

	newLevel, remaining, leveledUp := ApplyExperience(c.Experience.Current+gained, c.Level)
	c.Level = newLevel
	c.Experience.Current = remaining
	c.Experience.Required = RequiredExperience(newLevel)
	c.Experience.Percentage = ExperiencePercentage(remaining, newLevel)

	if leveledUp {
		ApplyStats(c)
		c.HP.Restore()
		c.Stamina.Restore()
	}

	g.NewLevel = newLevel
	g.LeveledUp = leveledUp
	return g
}

func atLeast(v, floor int) int {
	if v < floor {
		return floor
	}
	return v
}
