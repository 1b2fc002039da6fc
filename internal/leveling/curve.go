package leveling

import (
	"math"
)

// RequiredExperience returns the experience needed to advance from level to level+1:
// round(BaseExperience * GrowthRate^(level-1))
func RequiredExperience(level int) int {
	if level < MinLevel {
		level = MinLevel
	}
	return int(math.Round(BaseExperience * math.Pow(GrowthRate, float64(level-1))))
}

// ApplyExperience consumes level requirements from total until the remainder no
// longer covers the next one. A single large gain may cross several levels.
func ApplyExperience(total, level int) (newLevel, remaining int, leveledUp bool) {
	newLevel = level
	remaining = total
	for i := 0; i < maxLevelUpsPerGrant; i++ {
		required := RequiredExperience(newLevel)
		if remaining < required {
			break
		}
		remaining -= required
		newLevel++
	}
	return newLevel, remaining, newLevel > level
}

// ExperiencePercentage is floor(100 * remaining / required), clamped to [0,100]
func ExperiencePercentage(remaining, level int) int {
	pct := (remaining * MaxPercentage) / RequiredExperience(level)
	if pct < 0 {
		return 0
	}
	if pct > MaxPercentage {
		return MaxPercentage
	}
	return pct
}
