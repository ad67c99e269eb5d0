package game

import "math"

const (
	// BasePlayerXPToNext is the XP needed to go from level 1 to 2.
	BasePlayerXPToNext = 100

	// PlayerXPCurve is the per-level growth of the player XP requirement.
	PlayerXPCurve = 1.25

	// SkillXPCurve is the per-level growth of a studio skill's requirement.
	SkillXPCurve = 1.5

	// BaseSkillXPToNext is the XP needed to take a studio skill from level
	// 1 to 2.
	BaseSkillXPToNext = 100

	// StaffXPPerLevel scales the role XP a staff member needs per level.
	StaffXPPerLevel = 100
)

// NewPlayerData returns a fresh level-1 player.
func NewPlayerData() PlayerData {
	return PlayerData{
		Level:         1,
		XPToNextLevel: BasePlayerXPToNext,
		Attributes: Attributes{
			CreativeIntuition: 1,
			TechnicalAptitude: 1,
			FocusMastery:      1,
			BusinessAcumen:    1,
			Charisma:          1,
			Luck:              1,
		},
	}
}

// NewStudioSkill returns a level-1 skill for the genre.
func NewStudioSkill(genre Genre) StudioSkill {
	return StudioSkill{Genre: genre, Level: 1, XPToNextLevel: BaseSkillXPToNext}
}

// GrantPlayerXP adds XP and cascades level-ups: a single large grant can
// produce several levels, each awarding one perk point, and no remainder XP
// is ever lost.
func GrantPlayerXP(p PlayerData, amount int) (PlayerData, int) {
	if amount <= 0 {
		return p, 0
	}
	if p.XPToNextLevel <= 0 {
		// A corrupted save would otherwise spin the cascade forever.
		p.XPToNextLevel = BasePlayerXPToNext
	}
	p.XP += amount
	levelUps := 0
	for p.XP >= p.XPToNextLevel {
		p.XP -= p.XPToNextLevel
		p.Level++
		p.PerkPoints++
		p.XPToNextLevel = int(math.Floor(float64(p.XPToNextLevel) * PlayerXPCurve))
		levelUps++
	}
	return p, levelUps
}

// GrantSkillXP adds XP to a studio skill with the same cascading pattern as
// player leveling, on a steeper curve.
func GrantSkillXP(s StudioSkill, amount int) (StudioSkill, int) {
	if amount <= 0 {
		return s, 0
	}
	if s.XPToNextLevel <= 0 {
		s.XPToNextLevel = BaseSkillXPToNext
	}
	s.XP += amount
	levelUps := 0
	for s.XP >= s.XPToNextLevel {
		s.XP -= s.XPToNextLevel
		s.Level++
		s.XPToNextLevel = int(math.Floor(float64(s.XPToNextLevel) * SkillXPCurve))
		levelUps++
	}
	return s, levelUps
}

// GrantStaffXP adds role XP to a staff member; each level-up improves the
// member's primary stats. Remainder XP carries over.
func GrantStaffXP(s StaffMember, amount int) (StaffMember, int) {
	if amount <= 0 {
		return s, 0
	}
	if s.LevelInRole < 1 {
		s.LevelInRole = 1
	}
	s.XPInRole += amount
	levelUps := 0
	for s.XPInRole >= s.LevelInRole*StaffXPPerLevel {
		s.XPInRole -= s.LevelInRole * StaffXPPerLevel
		s.LevelInRole++
		s.PrimaryStats.Creativity += 2
		s.PrimaryStats.Technical += 2
		s.PrimaryStats.Speed++
		levelUps++
	}
	return s, levelUps
}

// Milestone is a level-gated unlock: feature flags plus bonus points.
type Milestone struct {
	Level           int
	Features        []string
	PerkPoints      int
	AttributePoints int
	Message         string
}

// Milestones is the unlock schedule, in ascending level order.
var Milestones = []Milestone{
	{
		Level:    2,
		Features: []string{FeatureHiring},
		Message:  "You can now hire staff to help with sessions.",
	},
	{
		Level:           3,
		Features:        []string{FeatureFocusPresets},
		AttributePoints: 1,
		Message:         "Focus presets unlocked, and you earned an attribute point.",
	},
	{
		Level:      5,
		Features:   []string{FeatureTraining},
		PerkPoints: 1,
		Message:    "Staff training unlocked.",
	},
	{
		Level:           8,
		Features:        []string{FeatureDashboard},
		AttributePoints: 1,
		PerkPoints:      1,
		Message:         "The studio dashboard now tracks advanced analytics.",
	},
}

const (
	FeatureHiring       = "hiring"
	FeatureFocusPresets = "focus_presets"
	FeatureTraining     = "training"
	FeatureDashboard    = "dashboard"
)

// ApplyMilestones grants every milestone the player level has reached but the
// save has not yet claimed. Idempotent per level: re-applying never
// double-grants.
func ApplyMilestones(state GameState) (GameState, []Milestone) {
	out := state.Clone()
	claimed := make(map[int]bool, len(out.ClaimedMilestones))
	for _, lvl := range out.ClaimedMilestones {
		claimed[lvl] = true
	}

	var applied []Milestone
	for _, m := range Milestones {
		if out.Player.Level < m.Level || claimed[m.Level] {
			continue
		}
		out.Player.PerkPoints += m.PerkPoints
		out.Player.AttributePoints += m.AttributePoints
		for _, f := range m.Features {
			if !hasFeature(out.UnlockedFeatures, f) {
				out.UnlockedFeatures = append(out.UnlockedFeatures, f)
			}
		}
		out.ClaimedMilestones = append(out.ClaimedMilestones, m.Level)
		applied = append(applied, m)
	}
	return out, applied
}

// FeatureUnlocked reports whether a feature flag is present in the save.
func (g *GameState) FeatureUnlocked(feature string) bool {
	return hasFeature(g.UnlockedFeatures, feature)
}

func hasFeature(features []string, f string) bool {
	for _, have := range features {
		if have == f {
			return true
		}
	}
	return false
}
