package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hiringState(t *testing.T) GameState {
	t.Helper()
	state := NewGameState()
	state.Player.Level = 2
	state, _ = ApplyMilestones(state)
	require.True(t, state.FeatureUnlocked(FeatureHiring))
	return state
}

func TestGenerateCandidateRanges(t *testing.T) {
	f := NewStaffFactory(rand.New(rand.NewSource(7)))

	for i := 0; i < 50; i++ {
		c := f.GenerateCandidate()
		assert.NotEmpty(t, c.ID)
		assert.NotEmpty(t, c.Name)
		assert.Equal(t, 1, c.LevelInRole)
		assert.Equal(t, 100, c.Energy)
		assert.Equal(t, StatusIdle, c.Status)
		for _, stat := range []int{c.PrimaryStats.Creativity, c.PrimaryStats.Technical, c.PrimaryStats.Speed} {
			assert.GreaterOrEqual(t, stat, 20)
			assert.LessOrEqual(t, stat, 50)
		}
		assert.Greater(t, c.Salary, 0)
		if c.GenreAffinity != nil {
			assert.True(t, c.GenreAffinity.Genre.IsValid())
			assert.GreaterOrEqual(t, c.GenreAffinity.BonusPercent, 5)
			assert.LessOrEqual(t, c.GenreAffinity.BonusPercent, 20)
		}
	}
}

func TestGenerateCandidateDeterministicPerSeed(t *testing.T) {
	a := NewStaffFactory(rand.New(rand.NewSource(42)))
	b := NewStaffFactory(rand.New(rand.NewSource(42)))
	a.newID = func() string { return "fixed" }
	b.newID = func() string { return "fixed" }

	assert.Equal(t, a.GenerateCandidate(), b.GenerateCandidate())
}

func TestHireStaffGatedByMilestone(t *testing.T) {
	state := NewGameState()
	f := NewStaffFactory(rand.New(rand.NewSource(1)))
	state = f.RefillCandidates(state, 1)

	_, err := HireStaff(state, state.Candidates[0].ID)

	var locked LockedFeatureError
	require.ErrorAs(t, err, &locked)
	assert.Equal(t, FeatureHiring, locked.Feature)
}

func TestHireStaffChargesSigningFee(t *testing.T) {
	state := hiringState(t)
	f := NewStaffFactory(rand.New(rand.NewSource(1)))
	state = f.RefillCandidates(state, 1)
	candidate := state.Candidates[0]

	next, err := HireStaff(state, candidate.ID)
	require.NoError(t, err)

	assert.Equal(t, state.Money-candidate.Salary*SigningFeeMultiple, next.Money)
	assert.Empty(t, next.Candidates)
	require.Len(t, next.HiredStaff, 1)
	assert.Equal(t, candidate.ID, next.HiredStaff[0].ID)
	// Input state untouched.
	assert.Len(t, state.Candidates, 1)
	assert.Empty(t, state.HiredStaff)
}

func TestHireStaffInsufficientFunds(t *testing.T) {
	state := hiringState(t)
	f := NewStaffFactory(rand.New(rand.NewSource(1)))
	state = f.RefillCandidates(state, 1)
	state.Money = 1

	_, err := HireStaff(state, state.Candidates[0].ID)

	var broke NotEnoughMoneyError
	require.ErrorAs(t, err, &broke)
	assert.Equal(t, 1, broke.Have)
}

func TestAssignAndRestStaff(t *testing.T) {
	project := fixtureProject()
	state := fixtureState(project)
	state.HiredStaff = []StaffMember{{ID: "s1", Name: "A", Energy: 90, Status: StatusIdle}}

	next, err := AssignStaff(state, "s1")
	require.NoError(t, err)
	assert.Equal(t, StatusWorking, next.StaffByID("s1").Status)
	assert.Equal(t, project.ID, next.StaffByID("s1").AssignedProjectID)
	assert.Contains(t, next.ActiveProject.AssignedStaffIDs, "s1")

	rested, err := RestStaff(next, "s1")
	require.NoError(t, err)
	assert.Equal(t, StatusResting, rested.StaffByID("s1").Status)
	assert.Empty(t, rested.StaffByID("s1").AssignedProjectID)
	assert.NotContains(t, rested.ActiveProject.AssignedStaffIDs, "s1")
}

func TestAssignStaffRejectsExhausted(t *testing.T) {
	state := fixtureState(fixtureProject())
	state.HiredStaff = []StaffMember{{ID: "s1", Name: "A", Energy: 5, Status: StatusIdle}}

	_, err := AssignStaff(state, "s1")

	assert.Error(t, err)
}

func TestTrainStaffGatedByMilestone(t *testing.T) {
	state := hiringState(t)
	state.HiredStaff = []StaffMember{{ID: "s1", Name: "A", Energy: 90, Status: StatusIdle}}

	_, err := TrainStaff(state, "s1")

	var locked LockedFeatureError
	require.ErrorAs(t, err, &locked)
	assert.Equal(t, FeatureTraining, locked.Feature)
}

func trainingState(t *testing.T) GameState {
	t.Helper()
	state := NewGameState()
	state.Player.Level = 5
	state, _ = ApplyMilestones(state)
	require.True(t, state.FeatureUnlocked(FeatureTraining))
	return state
}

func TestTrainStaffChargesFeeAndEarnsXPOvernight(t *testing.T) {
	state := trainingState(t)
	state.HiredStaff = []StaffMember{{ID: "s1", Name: "A", Energy: 90, Status: StatusIdle, LevelInRole: 1}}

	next, err := TrainStaff(state, "s1")
	require.NoError(t, err)
	assert.Equal(t, state.Money-TrainingFee, next.Money)
	assert.Equal(t, StatusTraining, next.StaffByID("s1").Status)

	morning, _ := AdvanceDay(next)
	trainee := morning.StaffByID("s1")
	assert.Equal(t, TrainingXPPerDay, trainee.XPInRole)
	assert.Equal(t, StatusTraining, trainee.Status)
	assert.Equal(t, 95, trainee.Energy)
}

func TestTrainStaffRejectsWorking(t *testing.T) {
	state := trainingState(t)
	state.HiredStaff = []StaffMember{{ID: "s1", Name: "A", Energy: 90, Status: StatusWorking, AssignedProjectID: "p"}}

	_, err := TrainStaff(state, "s1")

	assert.Error(t, err)
}

func TestAdvanceDayStaffCycle(t *testing.T) {
	state := fixtureState(fixtureProject())
	state.CurrentDay = 1
	state.HiredStaff = []StaffMember{
		{ID: "worn", Name: "Worn", Energy: 10, Status: StatusWorking, AssignedProjectID: "proj-1"},
		{ID: "rest", Name: "Rest", Energy: 70, Status: StatusResting},
		{ID: "idle", Name: "Idle", Energy: 98, Status: StatusIdle},
	}
	state.ActiveProject.AssignedStaffIDs = []string{"worn"}

	next, out := AdvanceDay(state)

	assert.Equal(t, 2, out.NewDay)
	assert.Equal(t, 2, next.CurrentDay)

	worn := next.StaffByID("worn")
	assert.Equal(t, StatusResting, worn.Status)
	assert.Empty(t, worn.AssignedProjectID)
	assert.NotContains(t, next.ActiveProject.AssignedStaffIDs, "worn")

	rest := next.StaffByID("rest")
	assert.Equal(t, StatusIdle, rest.Status)
	assert.Equal(t, 85, rest.Energy)

	idle := next.StaffByID("idle")
	assert.Equal(t, 100, idle.Energy) // capped
}

func TestAdvanceDayPaysSalariesWeekly(t *testing.T) {
	state := NewGameState()
	state.HiredStaff = []StaffMember{
		{ID: "s1", Salary: 50, Status: StatusIdle, Energy: 100},
		{ID: "s2", Salary: 70, Status: StatusIdle, Energy: 100},
	}

	// Day 6 -> 7: payday.
	state.CurrentDay = 6
	next, out := AdvanceDay(state)
	assert.Equal(t, 120, out.SalariesPaid)
	assert.Equal(t, state.Money-120, next.Money)

	// Day 7 -> 8: not payday.
	next2, out2 := AdvanceDay(next)
	assert.Zero(t, out2.SalariesPaid)
	assert.Equal(t, next.Money, next2.Money)
}
