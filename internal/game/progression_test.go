package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrantPlayerXPCascades(t *testing.T) {
	p := NewPlayerData()
	require.Equal(t, 1, p.Level)
	require.Equal(t, BasePlayerXPToNext, p.XPToNextLevel)

	// 100 + 125 + 10: enough for exactly two levels with 10 left over.
	p, levels := GrantPlayerXP(p, 235)

	assert.Equal(t, 2, levels)
	assert.Equal(t, 3, p.Level)
	assert.Equal(t, 10, p.XP)
	assert.Equal(t, 156, p.XPToNextLevel) // floor(125 * 1.25)
	assert.Equal(t, 2, p.PerkPoints)
}

func TestGrantPlayerXPSingleLevelBoundary(t *testing.T) {
	p := NewPlayerData()

	p, levels := GrantPlayerXP(p, 100)

	assert.Equal(t, 1, levels)
	assert.Equal(t, 2, p.Level)
	assert.Equal(t, 0, p.XP)
	assert.Equal(t, 125, p.XPToNextLevel)
}

func TestGrantXPRecoversCorruptedRequirement(t *testing.T) {
	// A decoded save can carry a zero requirement; the cascade must reset it
	// instead of spinning.
	p := NewPlayerData()
	p.XPToNextLevel = 0

	p, levels := GrantPlayerXP(p, 50)
	assert.Equal(t, 0, levels)
	assert.Equal(t, 50, p.XP)
	assert.Equal(t, BasePlayerXPToNext, p.XPToNextLevel)

	s := NewStudioSkill(GenreJazz)
	s.XPToNextLevel = -10
	s, levels = GrantSkillXP(s, 120)
	assert.Equal(t, 1, levels)
	assert.Equal(t, 2, s.Level)
	assert.Equal(t, 20, s.XP)

	m := StaffMember{ID: "s1", LevelInRole: 0}
	m, levels = GrantStaffXP(m, 30)
	assert.Equal(t, 0, levels)
	assert.Equal(t, 1, m.LevelInRole)
	assert.Equal(t, 30, m.XPInRole)
}

func TestGrantPlayerXPNoLevel(t *testing.T) {
	p := NewPlayerData()

	p, levels := GrantPlayerXP(p, 99)

	assert.Equal(t, 0, levels)
	assert.Equal(t, 1, p.Level)
	assert.Equal(t, 99, p.XP)
	assert.Equal(t, 0, p.PerkPoints)
}

func TestGrantSkillXPCascades(t *testing.T) {
	s := NewStudioSkill(GenreJazz)
	require.Equal(t, BaseSkillXPToNext, s.XPToNextLevel)

	// 100 + 150 + 5: two levels, steeper curve than the player's.
	s, levels := GrantSkillXP(s, 255)

	assert.Equal(t, 2, levels)
	assert.Equal(t, 3, s.Level)
	assert.Equal(t, 5, s.XP)
	assert.Equal(t, 225, s.XPToNextLevel) // floor(150 * 1.5)
}

func TestGrantStaffXPLevelsAndStats(t *testing.T) {
	s := StaffMember{
		LevelInRole:  1,
		PrimaryStats: PrimaryStats{Creativity: 30, Technical: 30, Speed: 30},
	}

	s, levels := GrantStaffXP(s, 100)

	assert.Equal(t, 1, levels)
	assert.Equal(t, 2, s.LevelInRole)
	assert.Equal(t, 32, s.PrimaryStats.Creativity)
	assert.Equal(t, 32, s.PrimaryStats.Technical)
	assert.Equal(t, 31, s.PrimaryStats.Speed)
}

func TestApplyMilestonesIdempotent(t *testing.T) {
	state := NewGameState()
	state.Player.Level = 3

	state, unlocked := ApplyMilestones(state)
	require.NotEmpty(t, unlocked)
	assert.True(t, state.FeatureUnlocked(FeatureHiring))
	assert.True(t, state.FeatureUnlocked(FeatureFocusPresets))
	assert.False(t, state.FeatureUnlocked(FeatureTraining))

	pointsAfterFirst := state.Player.AttributePoints
	perksAfterFirst := state.Player.PerkPoints

	state, unlocked = ApplyMilestones(state)
	assert.Empty(t, unlocked)
	assert.Equal(t, pointsAfterFirst, state.Player.AttributePoints)
	assert.Equal(t, perksAfterFirst, state.Player.PerkPoints)
}

func TestStudioSkillLevelNeverDecreases(t *testing.T) {
	s := NewStudioSkill(GenrePop)
	for i := 0; i < 10; i++ {
		prev := s.Level
		s, _ = GrantSkillXP(s, 40)
		assert.GreaterOrEqual(t, s.Level, prev)
	}
}
