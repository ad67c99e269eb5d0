package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// completedProject returns a benchmark project parked on its finished final
// stage with the given accumulated point totals.
func completedProject(creativity, technical int) *Project {
	p := fixtureProject()
	for i := range p.Stages {
		p.Stages[i].WorkUnitsCompleted = p.Stages[i].WorkUnitsRequired
		p.Stages[i].Completed = true
	}
	p.CurrentStageIndex = len(p.Stages) - 1
	p.AccumulatedCreativity = creativity
	p.AccumulatedTechnical = technical
	return p
}

func TestStarRatingThresholds(t *testing.T) {
	cases := []struct {
		completion float64
		want       int
	}{
		{0.0, 1}, {0.39, 1},
		{0.4, 2}, {0.59, 2},
		{0.6, 3}, {0.74, 3},
		{0.75, 4}, {0.89, 4},
		{0.9, 5}, {1.0, 5},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, StarRating(tc.completion), "completion %.2f", tc.completion)
	}
}

func TestCompleteProjectRejectsUnfinished(t *testing.T) {
	project := fixtureProject()
	project.Stages[0].WorkUnitsCompleted = 5
	state := fixtureState(project)

	res, err := CompleteProject(state)

	require.ErrorIs(t, err, ErrProjectNotComplete)
	assert.Nil(t, res.Review)
	assert.NotNil(t, res.State.ActiveProject)
	assert.Equal(t, state.Money, res.State.Money)
}

func TestCompleteProjectRejectsMidProject(t *testing.T) {
	project := fixtureProject()
	project.Stages[0].WorkUnitsCompleted = project.Stages[0].WorkUnitsRequired
	project.Stages[0].Completed = true
	// Still on stage 0 of 3.
	state := fixtureState(project)

	_, err := CompleteProject(state)

	require.ErrorIs(t, err, ErrProjectNotComplete)
}

func TestCompleteProjectPayoutFormula(t *testing.T) {
	// 37 total units * 10 points/unit = 370 possible; 185 banked = 50%.
	state := fixtureState(completedProject(100, 85))

	res, err := CompleteProject(state)
	require.NoError(t, err)
	review := res.Review
	require.NotNil(t, review)

	assert.InDelta(t, 0.5, review.CompletionPct, 1e-9)
	assert.Equal(t, 2, review.StarRating)

	// payoutBase 1000 * 0.5 completion * 1.2 match * 1.2 business = 720.
	assert.Equal(t, 720, review.Payout)
	// repGainBase 10 * 0.5 * 1.2 * 1.075 satisfaction = 6.45 -> 6; the
	// payout-only business bonus does not apply.
	assert.Equal(t, 6, review.ReputationGain)

	assert.Equal(t, state.Money+720, res.State.Money)
	assert.Equal(t, state.Reputation+6, res.State.Reputation)
}

func TestCompleteProjectCharismaLiftsReputation(t *testing.T) {
	state := fixtureState(completedProject(100, 85))
	state.Player.Attributes.Charisma = 11

	res, err := CompleteProject(state)
	require.NoError(t, err)

	// Satisfaction multiplier 1 + 50/100 charisma + 15/200 acumen = 1.575;
	// repGainBase 10 * 0.5 * 1.2 * 1.575 = 9.45 -> 9.
	assert.Equal(t, 9, res.Review.ReputationGain)
	assert.Equal(t, state.Reputation+9, res.State.Reputation)
}

func TestCompleteProjectGrantsXP(t *testing.T) {
	state := fixtureState(completedProject(400, 400))
	state.StudioSkills[GenreRock] = NewStudioSkill(GenreRock)

	res, err := CompleteProject(state)
	require.NoError(t, err)
	review := res.Review

	assert.Equal(t, 5, review.StarRating)
	// 20 + 5*10, uplifted by the XP attribute multiplier.
	assert.GreaterOrEqual(t, review.PlayerXPGain, 70)
	assert.Greater(t, res.State.Player.XP+res.State.Player.Level, state.Player.XP+state.Player.Level)

	skillXP, ok := review.SkillXPGains[GenreRock]
	require.True(t, ok)
	assert.Equal(t, 5+5*3, skillXP)
	assert.Greater(t, res.State.StudioSkills[GenreRock].XP+res.State.StudioSkills[GenreRock].Level,
		state.StudioSkills[GenreRock].XP+state.StudioSkills[GenreRock].Level)
}

func TestCompleteProjectCreditsStaff(t *testing.T) {
	project := completedProject(200, 200)
	project.AssignedStaffIDs = []string{"s1", "s2", "ghost"}
	state := fixtureState(project)
	state.HiredStaff = []StaffMember{
		{ID: "s1", Name: "A", Status: StatusWorking, AssignedProjectID: project.ID,
			PrimaryStats: PrimaryStats{Creativity: 40, Technical: 40, Speed: 40}},
		{ID: "s2", Name: "B", Status: StatusWorking, AssignedProjectID: project.ID,
			PrimaryStats: PrimaryStats{Creativity: 20, Technical: 20, Speed: 20}},
	}

	res, err := CompleteProject(state)
	require.NoError(t, err)

	require.Len(t, res.Review.StaffOutcomes, 2)

	// The roster-less assignment is skipped, but loudly.
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "ghost")

	var ratioSum float64
	for _, o := range res.Review.StaffOutcomes {
		ratioSum += o.Ratio
		assert.Greater(t, o.XPGained, 0)
	}
	assert.Less(t, ratioSum, 1.0) // the player keeps a share
	assert.Greater(t, res.Review.StaffOutcomes[0].PointsContributed,
		res.Review.StaffOutcomes[1].PointsContributed)

	// Staff released back to the idle pool.
	for _, s := range res.State.HiredStaff {
		assert.Equal(t, StatusIdle, s.Status)
		assert.Empty(t, s.AssignedProjectID)
	}
}

func TestCompleteProjectStageBreakdown(t *testing.T) {
	state := fixtureState(completedProject(370, 0))

	res, err := CompleteProject(state)
	require.NoError(t, err)

	require.Len(t, res.Review.StageOutcomes, 3)
	for _, o := range res.Review.StageOutcomes {
		assert.Equal(t, 100.0, o.CompletionPct)
		assert.NotEmpty(t, o.Feedback)
	}
	// Shares follow work-unit weight: 10/37, 15/37, 12/37 of 370 points.
	assert.Equal(t, 100, res.Review.StageOutcomes[0].CreativityPart)
	assert.Equal(t, 150, res.Review.StageOutcomes[1].CreativityPart)
	assert.Equal(t, 120, res.Review.StageOutcomes[2].CreativityPart)
}

func TestApplyCriticalSuccess(t *testing.T) {
	state := fixtureState(completedProject(400, 400))
	res, err := CompleteProject(state)
	require.NoError(t, err)

	upgraded, review := ApplyCriticalSuccess(res.State, *res.Review)

	assert.True(t, review.CriticalSuccess)
	assert.Equal(t, int(float64(res.Review.Payout)*CriticalMultiplier), review.Payout)
	assert.Equal(t, upgraded.Money-res.State.Money, review.Payout-res.Review.Payout)
	assert.Equal(t, upgraded.Reputation-res.State.Reputation, review.ReputationGain-res.Review.ReputationGain)
}
