package combat

import "github.com/mt2web/mt2web/internal/domain"

// PvE damage tuning
const (
	PlayerDamageMin  = 0.8
	PlayerDamageMax  = 1.2
	PlayerCritChance = 0.20
	MobDamageMin     = 0.7
	MobDamageMax     = 1.0
	MobCritChance    = 0.15
	CritMultiplier   = 1.5

	percentDenominator = 100.0
)

// PvP tuning
const (
	DuelMaxRounds       = 10
	DefenseScale        = 300.0
	DuelExpBase         = 50.0
	DuelYangBase        = 100.0
	DuelLevelGapFactor  = 0.02
	DuelMinRewardFactor = 0.5
)

// roundBand is the inclusive range of PvE rounds for a work type
type roundBand struct {
	min int
	max int
}

var pveRoundBands = map[domain.WorkType]roundBand{
	domain.WorkType15s: {3, 5},
	domain.WorkType10m: {6, 10},
	domain.WorkType1h:  {11, 20},
}
