package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testEngineer(energy int) StaffMember {
	return StaffMember{
		ID:     "eng-1",
		Name:   "Test Engineer",
		Role:   RoleEngineer,
		Energy: energy,
		Status: StatusWorking,
		Skills: StaffSkills{
			Songwriting:   20,
			Arrangement:   20,
			Ear:           20,
			SoundDesign:   40,
			TechKnowledge: 40,
			Mixing:        40,
			Mastering:     40,
		},
		AssignedProjectID: "proj-1",
	}
}

func TestMemberContributionLowEnergyPenalty(t *testing.T) {
	fresh := MemberContribution(testEngineer(80), GenrePop)
	tired := MemberContribution(testEngineer(10), GenrePop)

	assert.Less(t, tired.Creativity, fresh.Creativity)
	assert.Less(t, tired.Technical, fresh.Technical)
	// weightedTechnical=40, rate 0.15, engineer blend 1.25: 7.5 -> 7; at
	// 30% output: 2.25 -> 2.
	assert.Equal(t, 7, fresh.Technical)
	assert.Equal(t, 2, tired.Technical)
}

func TestMemberContributionEnergyThresholdBoundary(t *testing.T) {
	atThreshold := MemberContribution(testEngineer(LowEnergyThreshold), GenrePop)
	below := MemberContribution(testEngineer(LowEnergyThreshold-1), GenrePop)

	assert.Greater(t, atThreshold.Technical, below.Technical)
}

func TestMemberContributionGenreAffinity(t *testing.T) {
	s := testEngineer(80)
	s.GenreAffinity = &GenreAffinity{Genre: GenreJazz, BonusPercent: 20}

	matched := MemberContribution(s, GenreJazz)
	unmatched := MemberContribution(s, GenrePop)

	assert.GreaterOrEqual(t, matched.Technical, unmatched.Technical)
	assert.Greater(t, matched.Creativity+matched.Technical, unmatched.Creativity+unmatched.Technical)
}

func TestMemberContributionRoleBlend(t *testing.T) {
	eng := testEngineer(80)
	writer := testEngineer(80)
	writer.Role = RoleSongwriter

	engOut := MemberContribution(eng, GenrePop)
	writerOut := MemberContribution(writer, GenrePop)

	assert.Greater(t, engOut.Technical, writerOut.Technical)
	assert.Greater(t, writerOut.Creativity, engOut.Creativity)
}

func TestComputeStaffContributionFiltersByAssignment(t *testing.T) {
	project := &Project{ID: "proj-1", Genre: GenrePop}
	roster := []StaffMember{
		testEngineer(80),
		func() StaffMember {
			s := testEngineer(80)
			s.ID = "eng-2"
			s.Status = StatusResting
			return s
		}(),
		func() StaffMember {
			s := testEngineer(80)
			s.ID = "eng-3"
			s.AssignedProjectID = "other"
			return s
		}(),
	}

	solo := ComputeStaffContribution(roster[:1], project)
	all := ComputeStaffContribution(roster, project)

	assert.Equal(t, solo, all)
}

func TestComputeStaffContributionNilProject(t *testing.T) {
	got := ComputeStaffContribution([]StaffMember{testEngineer(80)}, nil)
	assert.Zero(t, got.Creativity)
	assert.Zero(t, got.Technical)
}
