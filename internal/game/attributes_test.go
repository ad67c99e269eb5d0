package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAttributeBonusPercent(t *testing.T) {
	cases := []struct {
		level int
		want  int
	}{
		{0, 0}, {1, 0}, {2, 5}, {4, 15}, {11, 50},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, AttributeBonusPercent(tc.level), "level %d", tc.level)
	}
}

func TestXPMultiplier(t *testing.T) {
	base := Attributes{FocusMastery: 1, Charisma: 1}
	assert.InDelta(t, 1.0, XPMultiplier(base), 1e-9)

	// 15% mastery bonus and 25% charisma bonus each land at half weight.
	boosted := Attributes{FocusMastery: 4, Charisma: 6}
	assert.InDelta(t, 1.2, XPMultiplier(boosted), 1e-9)
}

func TestClientSatisfactionMultiplier(t *testing.T) {
	base := Attributes{Charisma: 1, BusinessAcumen: 1}
	assert.InDelta(t, 1.0, ClientSatisfactionMultiplier(base), 1e-9)

	// Full charisma weight, half acumen weight.
	boosted := Attributes{Charisma: 3, BusinessAcumen: 5}
	assert.InDelta(t, 1.2, ClientSatisfactionMultiplier(boosted), 1e-9)
}

func TestCriticalSuccessChance(t *testing.T) {
	assert.InDelta(t, 0, CriticalSuccessChance(Attributes{}), 1e-9)
	assert.InDelta(t, 15, CriticalSuccessChance(Attributes{Luck: 3}), 1e-9)
	// Capped at certainty.
	assert.InDelta(t, 100, CriticalSuccessChance(Attributes{Luck: 50}), 1e-9)
}

func TestStudioSkillBonusPercents(t *testing.T) {
	skill := StudioSkill{Genre: GenreRock, Level: 4}
	assert.InDelta(t, 8, StudioSkillCreativityBonusPercent(skill), 1e-9)
	assert.InDelta(t, 6, StudioSkillTechnicalBonusPercent(skill), 1e-9)
}
