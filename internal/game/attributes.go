package game

const (
	// AttributeBonusRate is the per-level percentage bonus above level 1.
	AttributeBonusRate = 5

	// CriticalChancePerLuck is the critical-success chance in percent per
	// luck point.
	CriticalChancePerLuck = 5.0

	// CriticalMultiplier scales a review's rewards on a critical success.
	CriticalMultiplier = 1.5
)

// AttributeBonusPercent returns the flat percentage bonus an attribute level
// grants. Level 1 grants nothing.
func AttributeBonusPercent(level int) int {
	if level <= 1 {
		return 0
	}
	return (level - 1) * AttributeBonusRate
}

// XPMultiplier scales experience rewards.
func XPMultiplier(a Attributes) float64 {
	return 1 + float64(AttributeBonusPercent(a.FocusMastery))/200 +
		float64(AttributeBonusPercent(a.Charisma))/200
}

// ClientSatisfactionMultiplier scales reputation gains on project
// completion.
func ClientSatisfactionMultiplier(a Attributes) float64 {
	return 1 + float64(AttributeBonusPercent(a.Charisma))/100 +
		float64(AttributeBonusPercent(a.BusinessAcumen))/200
}

// CriticalSuccessChance returns the percent chance [0,100] that a completed
// project is upgraded to a critical success. The roll itself happens outside
// the pure core.
func CriticalSuccessChance(a Attributes) float64 {
	c := float64(a.Luck) * CriticalChancePerLuck
	if c > 100 {
		return 100
	}
	return c
}

// StudioSkillCreativityBonusPercent is the creativity uplift a genre skill
// level grants to base gains.
func StudioSkillCreativityBonusPercent(skill StudioSkill) float64 {
	return float64(skill.Level) * 2
}

// StudioSkillTechnicalBonusPercent is the technical uplift a genre skill
// level grants to base gains.
func StudioSkillTechnicalBonusPercent(skill StudioSkill) float64 {
	return float64(skill.Level) * 1.5
}
