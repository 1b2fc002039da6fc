package combat

import (
	"github.com/mt2web/mt2web/internal/domain"
	"github.com/mt2web/mt2web/internal/leveling"
)

// Effects describes what an outcome did to the character
type Effects struct {
	Grant leveling.Grant
	Died  bool
}

// ApplyOutcome writes a fight's result back onto the character: hp is reduced by
// the damage taken and, on victory only, yang and experience are granted.
func ApplyOutcome(c *domain.Character, o Outcome) Effects {
	c.HP.Sub(o.HPLost)

	eff := Effects{Grant: leveling.Grant{OldLevel: c.Level, NewLevel: c.Level}}
	if o.Result == domain.CombatVictory {
		c.Money.Cash += int64(o.YangGained)
		eff.Grant = leveling.GrantExperience(c, o.ExpGained)
	}

	eff.Died = c.HP.Current == 0
	return eff
}
