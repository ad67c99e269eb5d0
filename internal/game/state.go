package game

import "fmt"

const (
	StartingMoney = 2000

	// Pool sizes the day cycle refills toward.
	OfferPoolSize     = 3
	CandidatePoolSize = 3
)

// NewGameState builds a fresh day-one studio with starter equipment and an
// empty offer pool. Callers refill the pools with their factories so a seeded
// run is reproducible end to end.
func NewGameState() GameState {
	skills := make(map[Genre]StudioSkill, len(Genres))
	for _, g := range Genres {
		skills[g] = NewStudioSkill(g)
	}
	return GameState{
		CurrentDay:     1,
		Money:          StartingMoney,
		Player:         NewPlayerData(),
		StudioSkills:   skills,
		OwnedEquipment: StarterEquipment(),
	}
}

// AcceptProject moves an offer into the active slot. Only one project can be
// active at a time.
func AcceptProject(state GameState, projectID string) (GameState, error) {
	out := state.Clone()

	if out.ActiveProject != nil {
		return out, fmt.Errorf("project %q is already in progress", out.ActiveProject.Title)
	}
	for i := range out.AvailableProjects {
		if out.AvailableProjects[i].ID != projectID {
			continue
		}
		p := out.AvailableProjects[i].Clone()
		out.AvailableProjects = append(out.AvailableProjects[:i], out.AvailableProjects[i+1:]...)
		out.ActiveProject = &p
		return out, nil
	}
	return out, fmt.Errorf("no available project with id %q", projectID)
}

// SetStageFocus applies a three-axis allocation to the active project's
// current stage. The three values must sum to exactly 100.
func SetStageFocus(state GameState, alloc FocusAllocation) (GameState, error) {
	out := state.Clone()

	if out.ActiveProject == nil {
		return out, fmt.Errorf("no active project to focus on")
	}
	if alloc.Total() != 100 {
		return out, fmt.Errorf("focus allocation must sum to 100, got %d", alloc.Total())
	}
	stage := out.ActiveProject.CurrentStage()
	if stage == nil {
		return out, fmt.Errorf("active project has no current stage")
	}
	*stage = ApplyAllocation(*stage, alloc)
	return out, nil
}

// DayOutcome reports what happened overnight.
type DayOutcome struct {
	NewDay        int
	SalariesPaid  int
	StaffRested   []string
	StaffReturned []string
	Unlocked      []Milestone
}

// AdvanceDay closes out the current day: staff run their energy cycle,
// salaries come due on the weekly boundary, and any newly reached milestones
// apply. Pool refills are left to the caller's factories so this stays
// deterministic.
func AdvanceDay(state GameState) (GameState, DayOutcome) {
	out := state.Clone()
	var res DayOutcome

	for i := range out.HiredStaff {
		before := out.HiredStaff[i].Status
		out.HiredStaff[i] = advanceStaffDay(out.HiredStaff[i])
		after := out.HiredStaff[i].Status
		if before == StatusWorking && after == StatusResting {
			res.StaffRested = append(res.StaffRested, out.HiredStaff[i].Name)
			if out.ActiveProject != nil {
				out.ActiveProject.AssignedStaffIDs = removeString(out.ActiveProject.AssignedStaffIDs, out.HiredStaff[i].ID)
			}
		}
		if before == StatusResting && after == StatusIdle {
			res.StaffReturned = append(res.StaffReturned, out.HiredStaff[i].Name)
		}
	}

	out.CurrentDay++
	res.NewDay = out.CurrentDay

	if out.CurrentDay%SalaryIntervalDays == 0 {
		for _, s := range out.HiredStaff {
			res.SalariesPaid += s.Salary
		}
		out.Money -= res.SalariesPaid
	}

	out, res.Unlocked = ApplyMilestones(out)
	return out, res
}
