package leveling

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequiredExperience(t *testing.T) {
	tests := []struct {
		level int
		want  int
	}{
		{1, 100},
		{2, 115},
		{3, 132},
		{4, 152},
		{10, 352},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, RequiredExperience(tt.level), "level %d", tt.level)
	}
}

func TestRequiredExperience_StrictlyIncreasing(t *testing.T) {
	for level := 1; level < 200; level++ {
		assert.Greater(t, RequiredExperience(level+1), RequiredExperience(level), "level %d", level)
	}
}

func TestApplyExperience(t *testing.T) {
	tests := []struct {
		name          string
		total         int
		level         int
		wantLevel     int
		wantRemaining int
		wantLeveledUp bool
	}{
		{"below requirement", 50, 1, 1, 50, false},
		{"exact requirement", 100, 1, 2, 0, true},
		{"zero gain never changes level", 0, 7, 7, 0, false},
		{"carried remainder at level 3", 145, 3, 4, 13, true},
		{"multi level jump", 100 + 115 + 132 + 10, 1, 4, 10, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, remaining, leveledUp := ApplyExperience(tt.total, tt.level)
			assert.Equal(t, tt.wantLevel, level)
			assert.Equal(t, tt.wantRemaining, remaining)
			assert.Equal(t, tt.wantLeveledUp, leveledUp)
		})
	}
}

func TestApplyExperience_ExactRequirementEveryLevel(t *testing.T) {
	for level := 1; level <= 50; level++ {
		newLevel, remaining, leveledUp := ApplyExperience(RequiredExperience(level), level)
		assert.Equal(t, level+1, newLevel)
		assert.Zero(t, remaining)
		assert.True(t, leveledUp)
	}
}

func TestExperiencePercentage(t *testing.T) {
	assert.Equal(t, 0, ExperiencePercentage(0, 1))
	assert.Equal(t, 50, ExperiencePercentage(50, 1))
	assert.Equal(t, 8, ExperiencePercentage(13, 4)) // 13/152
	assert.Equal(t, 100, ExperiencePercentage(500, 1))
	assert.Equal(t, 0, ExperiencePercentage(-5, 1))
}
