package leveling

// Experience curve constants
const (
	// BaseExperience is the experience required to leave level 1
	BaseExperience = 100.0

	// GrowthRate is the per-level multiplier of the experience requirement
	GrowthRate = 1.15

	// MinLevel is the lowest level a character can have
	MinLevel = 1
)

// Linear stat progression per level
const (
	BaseMaxHP           = 100
	MaxHPPerLevel       = 10
	BaseMaxStamina      = 100
	MaxStaminaPerLevel  = 5
	BaseAttack          = 10
	AttackPerLevel      = 2
	BaseDefense         = 5
	DefensePerLevel     = 1
	MaxPercentage       = 100
	maxLevelUpsPerGrant = 1000
)
