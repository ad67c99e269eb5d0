package game

import "fmt"

const (
	// BaseDailyCapacity is the work units a player gets before attribute,
	// staff, and equipment modifiers.
	BaseDailyCapacity = 3

	// WorkEnergyCost is the energy a working staff member spends per tick.
	WorkEnergyCost = 10
)

// WorkStatus classifies the outcome of a work tick. Blocked statuses are
// normal, recoverable conditions, not errors: the caller surfaces them as
// messages and the state comes back unchanged.
type WorkStatus int

const (
	WorkApplied WorkStatus = iota
	WorkBlockedNoProject
	WorkBlockedAlreadyWorked
	WorkBlockedStageComplete
)

func (s WorkStatus) String() string {
	switch s {
	case WorkApplied:
		return "applied"
	case WorkBlockedNoProject:
		return "no active project"
	case WorkBlockedAlreadyWorked:
		return "already worked today"
	case WorkBlockedStageComplete:
		return "stage already complete"
	default:
		return fmt.Sprintf("WorkStatus(%d)", int(s))
	}
}

// Blocked reports whether the tick was rejected without changing state.
func (s WorkStatus) Blocked() bool { return s != WorkApplied }

// WorkInput carries the per-tick inputs that come from outside the snapshot.
type WorkInput struct {
	// Minigame is the result of an externally resolved minigame, if one
	// finished since the last tick. Nil (or a cancelled game) adds nothing.
	Minigame *MinigameResult
}

// WorkOutcome reports what a tick did.
type WorkOutcome struct {
	Status WorkStatus

	WorkUnitsAdded  int
	CreativityGain  int
	TechnicalGain   int
	MinigameXP      int

	StageCompleted   bool
	CompletedStage   string
	ProjectCompleted bool
	Review           *ProjectReview

	PlayerLevelUps int

	// Warnings are defensive-path diagnostics (zero-weight stages, stale
	// staff assignments). The caller logs them; they never fail a tick.
	Warnings []string
}

// DailyWorkCapacity is the number of work units one tick advances: a base
// plus focus mastery, plus each working assigned staff member's speed, all
// uplifted by equipment speed bonuses.
func DailyWorkCapacity(state *GameState, project *Project) int {
	capacity := BaseDailyCapacity + state.Player.Attributes.FocusMastery
	for _, s := range state.WorkingStaffOn(project.ID) {
		capacity += s.PrimaryStats.Speed / 10
	}
	effect := ComputeEquipmentEffect(state.OwnedEquipment, project.Genre)
	capacity += capacity * effect.SpeedPct / 100
	if capacity < 1 {
		capacity = 1
	}
	return capacity
}

// PerformDailyWork applies one day of effort to the active project. It is a
// pure transform: the input snapshot is never mutated, and a blocked tick
// returns it unchanged (aside from the deep copy) with the blocking reason in
// the outcome.
//
// Sequence per tick: guards, capacity, point gains (player base + studio
// skill uplift + equipment uplift + staff + minigame), progress and
// accumulation, the once-per-day stamp, then stage advancement or project
// completion. Staff energy loss is applied after gains are computed so it
// never affects the tick that spent the energy.
func PerformDailyWork(state GameState, input WorkInput) (GameState, WorkOutcome) {
	out := state.Clone()

	project := out.ActiveProject
	if project == nil {
		return out, WorkOutcome{Status: WorkBlockedNoProject}
	}
	if project.LastWorkDay >= out.CurrentDay {
		return out, WorkOutcome{Status: WorkBlockedAlreadyWorked}
	}
	stage := project.CurrentStage()
	if stage == nil || stage.Completed {
		return out, WorkOutcome{Status: WorkBlockedStageComplete}
	}

	outcome := WorkOutcome{Status: WorkApplied}

	workUnits := DailyWorkCapacity(&out, project)
	outcome.WorkUnitsAdded = workUnits

	// Player base gain from focus allocation.
	points := ComputeStagePoints(stage.FocusAreas, out.Player.Attributes, workUnits)
	if points.Creativity == 0 && points.Technical == 0 && zeroWeight(stage.FocusAreas) {
		outcome.Warnings = append(outcome.Warnings,
			fmt.Sprintf("stage %q has zero focus weight; player contributes nothing", stage.Name))
	}
	creativity := points.Creativity
	technical := points.Technical

	// Studio-skill uplift for the project's genre.
	if skill, ok := out.StudioSkills[project.Genre]; ok {
		creativity += creativity * int(StudioSkillCreativityBonusPercent(skill)) / 100
		technical += technical * int(StudioSkillTechnicalBonusPercent(skill)) / 100
	}

	// Equipment uplift.
	effect := ComputeEquipmentEffect(out.OwnedEquipment, project.Genre)
	creativity += creativity * effect.CreativityPct / 100
	technical += technical * effect.TechnicalPct / 100

	// Staff contribution is additive, computed per member and floored there.
	staffGain := ComputeStaffContribution(out.HiredStaff, project)
	creativity += staffGain.Creativity
	technical += staffGain.Technical

	// Minigame rewards merge additively; a cancelled game contributes nothing.
	mgCreativity, mgTechnical, mgXP := splitRewards(input.Minigame)
	creativity += mgCreativity
	technical += mgTechnical
	outcome.MinigameXP = mgXP
	if mgXP > 0 {
		var ups int
		out.Player, ups = GrantPlayerXP(out.Player, mgXP)
		outcome.PlayerLevelUps += ups
	}

	outcome.CreativityGain = creativity
	outcome.TechnicalGain = technical

	// Advance progress; completion clamps at the requirement and the
	// accumulated totals only ever grow.
	stage.WorkUnitsCompleted += workUnits
	if stage.WorkUnitsCompleted >= stage.WorkUnitsRequired {
		stage.WorkUnitsCompleted = stage.WorkUnitsRequired
		stage.Completed = true
	}
	project.AccumulatedCreativity += creativity
	project.AccumulatedTechnical += technical
	project.LastWorkDay = out.CurrentDay

	// Staff energy loss is informational for this tick; status transitions
	// happen on the next daily update.
	for i := range out.HiredStaff {
		s := &out.HiredStaff[i]
		if s.Status == StatusWorking && s.AssignedProjectID == project.ID {
			s.Energy -= WorkEnergyCost
			if s.Energy < 0 {
				s.Energy = 0
			}
		}
	}

	if !stage.Completed {
		return out, outcome
	}

	outcome.StageCompleted = true
	outcome.CompletedStage = stage.Name

	if !project.OnFinalStage() {
		project.CurrentStageIndex++
		return out, outcome
	}

	// Final stage done: generate the review and retire the project
	// atomically with the completion transition.
	completed, err := CompleteProject(out)
	if err != nil {
		// Unreachable under correct sequencing; keep the worked state and
		// surface the inconsistency to the caller's log.
		outcome.Warnings = append(outcome.Warnings, "completion rejected: "+err.Error())
		return out, outcome
	}
	outcome.ProjectCompleted = true
	outcome.Review = completed.Review
	outcome.PlayerLevelUps += completed.PlayerLevelUps
	outcome.Warnings = append(outcome.Warnings, completed.Warnings...)
	return completed.State, outcome
}

func zeroWeight(areas []FocusArea) bool {
	for _, a := range areas {
		if a.Value > 0 && (a.CreativityWeight > 0 || a.TechnicalWeight > 0) {
			return false
		}
	}
	return true
}
