package game

import (
	"fmt"
	"math"
)

// PointsPerUnit converts a stage's work-unit requirement into the point total
// a perfect run would bank against it.
const PointsPerUnit = 10

// XP rewards on project completion scale with the star rating.
const (
	BaseCompletionPlayerXP = 20
	PlayerXPPerStar        = 10
	BaseCompletionSkillXP  = 5
	SkillXPPerStar         = 3
	BaseCompletionStaffXP  = 10
	StaffXPPerStar         = 5
)

// StageOutcome is one line of the review's per-stage breakdown.
type StageOutcome struct {
	Name           string  `json:"name"`
	CompletionPct  float64 `json:"completionPct"`
	CreativityPart int     `json:"creativityPart"`
	TechnicalPart  int     `json:"technicalPart"`
	Feedback       string  `json:"feedback"`
}

// StaffOutcome credits one staff member in the review.
type StaffOutcome struct {
	StaffID           string  `json:"staffId"`
	Name              string  `json:"name"`
	Ratio             float64 `json:"ratio"`
	PointsContributed int     `json:"pointsContributed"`
	XPGained          int     `json:"xpGained"`
	Feedback          string  `json:"feedback"`
}

// ProjectReview is the immutable completion report. It is created exactly
// once per finished project and persisted as-is.
type ProjectReview struct {
	ProjectID    string `json:"projectId"`
	ProjectTitle string `json:"projectTitle"`
	Genre        Genre  `json:"genre"`
	Day          int    `json:"day"`

	FinalScore     int     `json:"finalScore"` // 0-100
	StarRating     int     `json:"starRating"` // 1-5
	CompletionPct  float64 `json:"completionPct"`
	Payout         int     `json:"payout"`
	ReputationGain int     `json:"reputationGain"`

	PlayerXPGain int           `json:"playerXpGain"`
	SkillXPGains map[Genre]int `json:"skillXpGains"`

	StageOutcomes []StageOutcome `json:"stageOutcomes"`
	StaffOutcomes []StaffOutcome `json:"staffOutcomes"`

	CriticalSuccess bool `json:"criticalSuccess"`
}

// CompletionResult bundles the post-completion snapshot with its review.
type CompletionResult struct {
	State          GameState
	Review         *ProjectReview
	PlayerLevelUps int

	// Warnings carry defensive-path diagnostics (stale staff assignments)
	// for the caller's log.
	Warnings []string
}

// StarRating maps a completion ratio onto the 1-5 star scale.
func StarRating(completion float64) int {
	switch {
	case completion < 0.4:
		return 1
	case completion < 0.6:
		return 2
	case completion < 0.75:
		return 3
	case completion < 0.9:
		return 4
	default:
		return 5
	}
}

// CompleteProject retires the active project and produces its review. The
// active project must be sitting on its completed final stage; anything else
// is a sequencing bug in the caller and is rejected with ErrProjectNotComplete
// and an untouched snapshot.
//
// All rewards land here: money and reputation, player XP, studio-skill XP for
// every required skill, and staff XP split by contribution. Each XP grant goes
// through the cascading level logic so a large award can clear several levels
// at once.
func CompleteProject(state GameState) (CompletionResult, error) {
	out := state.Clone()

	project := out.ActiveProject
	if project == nil || !project.OnFinalStage() {
		return CompletionResult{State: out}, ErrProjectNotComplete
	}
	if final := project.CurrentStage(); final == nil || !final.Completed {
		return CompletionResult{State: out}, ErrProjectNotComplete
	}

	totalUnits := 0
	for _, st := range project.Stages {
		totalUnits += st.WorkUnitsRequired
	}
	totalPossible := totalUnits * PointsPerUnit
	totalPoints := project.AccumulatedCreativity + project.AccumulatedTechnical

	completion := 1.0
	if totalPossible > 0 {
		completion = math.Min(1, float64(totalPoints)/float64(totalPossible))
	}
	rating := StarRating(completion)

	attrs := out.Player.Attributes
	matchMod := project.MatchRating.Modifier()
	businessBonus := 1 + float64(attrs.BusinessAcumen)*0.05

	payout := int(math.Floor(float64(project.PayoutBase) * completion * matchMod * businessBonus))
	repGain := int(math.Floor(float64(project.RepGainBase) * completion * matchMod * ClientSatisfactionMultiplier(attrs)))

	review := &ProjectReview{
		ProjectID:      project.ID,
		ProjectTitle:   project.Title,
		Genre:          project.Genre,
		Day:            out.CurrentDay,
		FinalScore:     int(math.Round(completion * 100)),
		StarRating:     rating,
		CompletionPct:  completion,
		Payout:         payout,
		ReputationGain: repGain,
		SkillXPGains:   map[Genre]int{},
		StageOutcomes:  stageOutcomes(project, totalUnits),
	}

	// Player XP, uplifted by attribute bonuses and run through the cascade.
	playerXP := int(math.Floor(float64(BaseCompletionPlayerXP+rating*PlayerXPPerStar) * XPMultiplier(attrs)))
	review.PlayerXPGain = playerXP
	var levelUps int
	out.Player, levelUps = GrantPlayerXP(out.Player, playerXP)

	// Studio skills grow once per required skill.
	skillXP := BaseCompletionSkillXP + rating*SkillXPPerStar
	for genre := range project.RequiredSkills {
		skill, ok := out.StudioSkills[genre]
		if !ok {
			skill = NewStudioSkill(genre)
		}
		skill, _ = GrantSkillXP(skill, skillXP)
		out.StudioSkills[genre] = skill
		review.SkillXPGains[genre] = skillXP
	}

	staffOutcomes, staffWarnings := creditStaff(&out, project, totalPoints, rating)
	review.StaffOutcomes = staffOutcomes

	out.Money += payout
	out.Reputation += repGain

	// Retire the project and release its staff.
	out.CompletedProjects = append(out.CompletedProjects, project.Clone())
	out.ActiveProject = nil
	for i := range out.HiredStaff {
		s := &out.HiredStaff[i]
		if s.AssignedProjectID == project.ID {
			s.AssignedProjectID = ""
			if s.Status == StatusWorking {
				s.Status = StatusIdle
			}
		}
	}

	out, _ = ApplyMilestones(out)

	return CompletionResult{State: out, Review: review, PlayerLevelUps: levelUps, Warnings: staffWarnings}, nil
}

// stageOutcomes splits the banked points across stages by each stage's share
// of the total work-unit requirement.
func stageOutcomes(project *Project, totalUnits int) []StageOutcome {
	outcomes := make([]StageOutcome, 0, len(project.Stages))
	for _, st := range project.Stages {
		share := 0.0
		if totalUnits > 0 {
			share = float64(st.WorkUnitsRequired) / float64(totalUnits)
		}
		pct := st.Progress() * 100
		outcomes = append(outcomes, StageOutcome{
			Name:           st.Name,
			CompletionPct:  pct,
			CreativityPart: int(math.Round(float64(project.AccumulatedCreativity) * share)),
			TechnicalPart:  int(math.Round(float64(project.AccumulatedTechnical) * share)),
			Feedback:       stageFeedback(pct),
		})
	}
	return outcomes
}

func stageFeedback(pct float64) string {
	switch {
	case pct < 50:
		return "Barely took shape; the client noticed."
	case pct < 100:
		return "Solid work, though it could have gone further."
	default:
		return "Nailed it. Every pass landed."
	}
}

// playerCreditWeight puts the player's attribute levels on the same scale as
// staff primary stats for the contribution split.
func playerCreditWeight(a Attributes) int {
	return (a.CreativeIntuition + a.TechnicalAptitude + a.FocusMastery) * 10
}

// creditStaff splits the project's total points across the assigned staff by
// their stat weight relative to everyone who contributed, player included, and
// grants each member their XP share. Stale assignment ids contribute nothing
// and come back as warnings.
func creditStaff(state *GameState, project *Project, totalPoints, rating int) ([]StaffOutcome, []string) {
	var assigned []*StaffMember
	var warnings []string
	totalWeight := playerCreditWeight(state.Player.Attributes)
	for _, id := range project.AssignedStaffIDs {
		s := state.StaffByID(id)
		if s == nil {
			warnings = append(warnings,
				fmt.Sprintf("assigned staff %s is no longer on the roster; skipped in the review", id))
			continue
		}
		assigned = append(assigned, s)
		totalWeight += statWeight(*s)
	}
	if len(assigned) == 0 || totalWeight == 0 {
		return nil, warnings
	}

	staffXP := BaseCompletionStaffXP + rating*StaffXPPerStar
	outcomes := make([]StaffOutcome, 0, len(assigned))
	for _, s := range assigned {
		ratio := float64(statWeight(*s)) / float64(totalWeight)
		points := int(math.Round(float64(totalPoints) * ratio))
		*s, _ = GrantStaffXP(*s, staffXP)
		outcomes = append(outcomes, StaffOutcome{
			StaffID:           s.ID,
			Name:              s.Name,
			Ratio:             ratio,
			PointsContributed: points,
			XPGained:          staffXP,
			Feedback:          staffFeedback(ratio),
		})
	}
	return outcomes, warnings
}

func staffFeedback(ratio float64) string {
	switch {
	case ratio >= 0.4:
		return "Carried the session."
	case ratio >= 0.2:
		return "Dependable throughout."
	default:
		return "Chipped in where it counted."
	}
}

// ApplyCriticalSuccess upgrades an already-applied review: payout and
// reputation are rescaled by the critical multiplier and the difference is
// banked on top of what CompleteProject already granted. XP is not rerolled.
// The roll that decides whether this fires lives outside the pure core.
func ApplyCriticalSuccess(state GameState, review ProjectReview) (GameState, ProjectReview) {
	out := state.Clone()

	newPayout := int(math.Floor(float64(review.Payout) * CriticalMultiplier))
	newRep := int(math.Floor(float64(review.ReputationGain) * CriticalMultiplier))
	out.Money += newPayout - review.Payout
	out.Reputation += newRep - review.ReputationGain

	review.Payout = newPayout
	review.ReputationGain = newRep
	review.CriticalSuccess = true
	return out, review
}
