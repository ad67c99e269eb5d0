package game

import "math"

const (
	// LowEnergyThreshold is the energy level below which a staff member
	// struggles.
	LowEnergyThreshold = 20

	// LowEnergyMultiplier keeps a struggling member contributing at 30% so
	// low energy is never strictly worse than being unassigned.
	LowEnergyMultiplier = 0.3

	// ContributionRate converts a weighted stat sum into daily points.
	ContributionRate = 0.15
)

// roleBlend skews a member's creative/technical output by role.
type roleBlend struct {
	creativity float64
	technical  float64
}

var roleBlends = map[StaffRole]roleBlend{
	RoleSongwriter: {1.25, 0.75},
	RoleEngineer:   {0.75, 1.25},
	RoleProducer:   {1.1, 1.1},
	RoleAssistant:  {0.6, 0.6},
}

// WeightedCreativity blends the creative disciplines into one score.
func (s StaffSkills) WeightedCreativity() float64 {
	return float64(s.Songwriting)*0.4 + float64(s.Arrangement)*0.3 + float64(s.Ear)*0.3
}

// WeightedTechnical blends the technical disciplines into one score.
func (s StaffSkills) WeightedTechnical() float64 {
	return float64(s.SoundDesign)*0.25 + float64(s.TechKnowledge)*0.25 +
		float64(s.Mixing)*0.3 + float64(s.Mastering)*0.2
}

// StaffContribution is one work tick's worth of staff point output.
type StaffContribution struct {
	Creativity int
	Technical  int
}

// MemberContribution computes one staff member's point output for a project.
// Points are floored before they are summed so fractional drift never
// accumulates across a large roster.
func MemberContribution(staff StaffMember, projectGenre Genre) StaffContribution {
	creativity := staff.Skills.WeightedCreativity() * ContributionRate
	technical := staff.Skills.WeightedTechnical() * ContributionRate

	if blend, ok := roleBlends[staff.Role]; ok {
		creativity *= blend.creativity
		technical *= blend.technical
	}

	if staff.Energy < LowEnergyThreshold {
		creativity *= LowEnergyMultiplier
		technical *= LowEnergyMultiplier
	}

	if staff.GenreAffinity != nil && staff.GenreAffinity.Genre == projectGenre {
		bonus := 1 + float64(staff.GenreAffinity.BonusPercent)/100
		creativity *= bonus
		technical *= bonus
	}

	return StaffContribution{
		Creativity: int(math.Floor(creativity)),
		Technical:  int(math.Floor(technical)),
	}
}

// ComputeStaffContribution sums the tick contribution of every hired member
// actively working on the project. Members whose assignment does not match
// the project contribute nothing.
func ComputeStaffContribution(staff []StaffMember, project *Project) StaffContribution {
	if project == nil {
		return StaffContribution{}
	}
	var total StaffContribution
	for _, s := range staff {
		if s.Status != StatusWorking || s.AssignedProjectID != project.ID {
			continue
		}
		c := MemberContribution(s, project.Genre)
		total.Creativity += c.Creativity
		total.Technical += c.Technical
	}
	return total
}

// statWeight is a member's share-weight when splitting credit at review time.
func statWeight(s StaffMember) int {
	return s.PrimaryStats.Creativity + s.PrimaryStats.Technical + s.PrimaryStats.Speed
}
