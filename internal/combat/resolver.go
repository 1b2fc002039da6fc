package combat

import (
	"fmt"
	"math/rand"

	"github.com/mt2web/mt2web/internal/domain"
	"github.com/mt2web/mt2web/internal/utils"
)

// Rand is the randomness the resolver draws from. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// globalRand uses the goroutine-safe top level math/rand source
type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() } //nolint:gosec // Game logic randomness
func (globalRand) Intn(n int) int   { return rand.Intn(n) }   //nolint:gosec // Game logic randomness

// Combatant is one side of a fight
type Combatant struct {
	Name    string
	Level   int
	Attack  int
	Defense int
	HP      int
}

// FromCharacter builds the combatant view of a character
func FromCharacter(c *domain.Character) Combatant {
	return Combatant{
		Name:    c.Name,
		Level:   c.Level,
		Attack:  c.Attack,
		Defense: c.Defense,
		HP:      c.HP.Current,
	}
}

// FromMob builds the combatant view of a mob snapshot
func FromMob(m *domain.MobSnapshot) Combatant {
	return Combatant{
		Name:   m.Name,
		Level:  m.Level,
		Attack: m.Attack,
		HP:     m.HP,
	}
}

// FromOpponent builds the combatant view of a duel opponent snapshot
func FromOpponent(o *domain.OpponentSnapshot) Combatant {
	return Combatant{
		Name:    o.Name,
		Level:   o.Level,
		Attack:  o.Attack,
		Defense: o.Defense,
		HP:      o.HP,
	}
}

// Outcome is the result of a fight seen from the player's side
type Outcome struct {
	Result              domain.CombatResult
	OpponentName        string
	DamageDealt         int
	HPLost              int
	PlayerHPRemaining   int
	OpponentHPRemaining int
	Rounds              int
	PlayerFirst         bool
	Log                 []string
	ExpGained           int
	YangGained          int
}

// Stats converts the outcome into the report payload
func (o Outcome) Stats() *domain.CombatStats {
	return &domain.CombatStats{
		Result:              o.Result,
		OpponentName:        o.OpponentName,
		DamageDealt:         o.DamageDealt,
		HPLost:              o.HPLost,
		ExpGained:           o.ExpGained,
		YangGained:          o.YangGained,
		Rounds:              o.Rounds,
		OpponentHPRemaining: o.OpponentHPRemaining,
	}
}

// Resolver simulates round based fights. It holds no state besides its rng.
type Resolver struct {
	rng Rand
}

// NewResolver creates a resolver. A nil rng falls back to the shared math/rand source.
func NewResolver(rng Rand) *Resolver {
	if rng == nil {
		rng = globalRand{}
	}
	return &Resolver{rng: rng}
}

// ResolvePvE fights a mob for a number of rounds drawn from the work type's band.
// The player always strikes first.
func (r *Resolver) ResolvePvE(player Combatant, mob *domain.MobSnapshot, workType domain.WorkType) Outcome {
	band, ok := pveRoundBands[workType]
	if !ok {
		band = pveRoundBands[domain.WorkType15s]
	}
	maxRounds := band.min + r.rng.Intn(band.max-band.min+1)

	f := newFight(player, FromMob(mob))
	f.out.PlayerFirst = true

	for f.out.Rounds < maxRounds && !f.over() {
		f.out.Rounds++

		dmg, crit := r.roll(player.Attack, PlayerDamageMin, PlayerDamageMax, PlayerCritChance)
		f.playerHits(dmg, crit)
		if f.over() {
			break
		}

		dmg, crit = r.roll(mob.Attack, MobDamageMin, MobDamageMax, MobCritChance)
		f.opponentHits(dmg, crit)
	}

	out := f.finish()
	if out.Result == domain.CombatVictory {
		pct := float64(workType.RewardPercent()) / percentDenominator
		out.ExpGained = utils.RoundInt(float64(mob.Exp) * pct)
		out.YangGained = utils.RoundInt(float64(mob.Yang) * pct)
	}
	return out
}

// ResolvePvP fights another character for at most DuelMaxRounds. The higher level
// side strikes first every round, ties going to the initiating player.
func (r *Resolver) ResolvePvP(player, opponent Combatant) Outcome {
	f := newFight(player, opponent)
	f.out.PlayerFirst = player.Level >= opponent.Level

	playerDmg := duelDamage(player.Attack, opponent.Defense)
	opponentDmg := duelDamage(opponent.Attack, player.Defense)

	for f.out.Rounds < DuelMaxRounds && !f.over() {
		f.out.Rounds++
		if f.out.PlayerFirst {
			f.playerHits(playerDmg, false)
			if f.over() {
				break
			}
			f.opponentHits(opponentDmg, false)
		} else {
			f.opponentHits(opponentDmg, false)
			if f.over() {
				break
			}
			f.playerHits(playerDmg, false)
		}
	}

	out := f.finish()
	if out.Result == domain.CombatVictory {
		out.ExpGained, out.YangGained = DuelRewards(player.Level, opponent.Level)
	}
	return out
}

// DuelRewards scales exp and yang with the opponent's level and the level gap
func DuelRewards(playerLevel, opponentLevel int) (exp, yang int) {
	factor := 1 + float64(opponentLevel-playerLevel)*DuelLevelGapFactor
	if factor < DuelMinRewardFactor {
		factor = DuelMinRewardFactor
	}
	exp = utils.RoundInt(float64(opponentLevel) * DuelExpBase * factor)
	yang = utils.RoundInt(float64(opponentLevel) * DuelYangBase * factor)
	return exp, yang
}

func duelDamage(attack, defense int) int {
	return utils.RoundInt(float64(attack) * (1 - utils.DiminishingReturns(float64(defense), DefenseScale)))
}

// roll draws a damage value in [lo, hi) of attack and applies a crit on success
func (r *Resolver) roll(attack int, lo, hi, critChance float64) (int, bool) {
	base := float64(attack) * utils.Uniform(r.rng, lo, hi)
	crit := r.rng.Float64() < critChance
	if crit {
		base *= CritMultiplier
	}
	return utils.RoundInt(base), crit
}

// fight tracks the running state of one combat
type fight struct {
	player   Combatant
	opponent Combatant
	playerHP int
	enemyHP  int
	out      Outcome
}

func newFight(player, opponent Combatant) *fight {
	return &fight{
		player:   player,
		opponent: opponent,
		playerHP: player.HP,
		enemyHP:  opponent.HP,
		out:      Outcome{OpponentName: opponent.Name},
	}
}

func (f *fight) over() bool {
	return f.playerHP <= 0 || f.enemyHP <= 0
}

// playerHits applies damage capped at the opponent's remaining hp
func (f *fight) playerHits(dmg int, crit bool) {
	dealt := capDamage(dmg, f.enemyHP)
	f.enemyHP -= dealt
	f.out.DamageDealt += dealt
	f.log(fmt.Sprintf("You hit %s for %d damage", f.opponent.Name, dealt), crit,
		fmt.Sprintf("%s has %d hp left.", f.opponent.Name, f.enemyHP))
}

// opponentHits applies damage capped at the player's remaining hp
func (f *fight) opponentHits(dmg int, crit bool) {
	taken := capDamage(dmg, f.playerHP)
	f.playerHP -= taken
	f.out.HPLost += taken
	f.log(fmt.Sprintf("%s hits you for %d damage", f.opponent.Name, taken), crit,
		fmt.Sprintf("You have %d hp left.", f.playerHP))
}

func (f *fight) log(line string, crit bool, status string) {
	if crit {
		line += " (critical hit!)"
	}
	f.out.Log = append(f.out.Log, fmt.Sprintf("Round %d: %s. %s", f.out.Rounds, line, status))
}

func (f *fight) finish() Outcome {
	f.out.PlayerHPRemaining = f.playerHP
	f.out.OpponentHPRemaining = f.enemyHP
	switch {
	case f.enemyHP <= 0:
		f.out.Result = domain.CombatVictory
	case f.playerHP <= 0:
		f.out.Result = domain.CombatDefeat
	default:
		f.out.Result = domain.CombatDraw
	}
	return f.out
}

func capDamage(dmg, hp int) int {
	if dmg < 0 {
		return 0
	}
	if dmg > hp {
		return hp
	}
	return dmg
}
