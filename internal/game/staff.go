package game

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
)

const (
	// SigningFeeMultiple is the upfront cost of a hire, in salaries.
	SigningFeeMultiple = 2

	// SalaryIntervalDays is how often staff salaries come due.
	SalaryIntervalDays = 7

	// Energy recovery per day by status.
	RestRecovery = 15
	IdleRecovery = 5

	// ExhaustionThreshold sends a working member to rest; RestedThreshold
	// returns a resting member to the idle pool.
	ExhaustionThreshold = 20
	RestedThreshold     = 80

	// TrainingFee is the one-time cost of enrolling a member in training;
	// TrainingXPPerDay is the role XP paid out each night spent training.
	TrainingFee      = 100
	TrainingXPPerDay = 10
)

var candidateFirstNames = []string{
	"Sam", "Riley", "Jordan", "Alex", "Casey", "Morgan", "Quinn", "Devon",
	"Jamie", "Reese", "Skyler", "Drew", "Marley", "Toni", "Lee", "Frankie",
}

var candidateLastNames = []string{
	"Reyes", "Okafor", "Lindqvist", "Marsh", "Ito", "Delgado", "Whitfield",
	"Novak", "Ferris", "Ayala", "Brandt", "Kowalski", "Moreau", "Tan",
}

var candidateRoles = []StaffRole{RoleEngineer, RoleProducer, RoleSongwriter, RoleAssistant}

// StaffFactory generates hiring-pool candidates. Like ProjectFactory, its
// randomness and id source are injected.
type StaffFactory struct {
	rng   *rand.Rand
	newID func() string
}

func NewStaffFactory(rng *rand.Rand) *StaffFactory {
	return &StaffFactory{rng: rng, newID: uuid.NewString}
}

func (f *StaffFactory) intn(n int) int {
	if f.rng != nil {
		return f.rng.Intn(n)
	}
	return rand.Intn(n)
}

// statRange for generated candidates.
func (f *StaffFactory) stat() int { return 20 + f.intn(31) }

func (f *StaffFactory) skill() int { return 10 + f.intn(41) }

// GenerateCandidate rolls one hireable staff member. Roughly a third of
// candidates come with a genre affinity.
func (f *StaffFactory) GenerateCandidate() StaffMember {
	stats := PrimaryStats{
		Creativity: f.stat(),
		Technical:  f.stat(),
		Speed:      f.stat(),
	}

	var affinity *GenreAffinity
	if f.intn(100) < 30 {
		affinity = &GenreAffinity{
			Genre:        Genres[f.intn(len(Genres))],
			BonusPercent: 5 + f.intn(16),
		}
	}

	return StaffMember{
		ID:   f.newID(),
		Name: fmt.Sprintf("%s %s", candidateFirstNames[f.intn(len(candidateFirstNames))], candidateLastNames[f.intn(len(candidateLastNames))]),
		Role: candidateRoles[f.intn(len(candidateRoles))],
		PrimaryStats: stats,
		Skills: StaffSkills{
			Songwriting:   f.skill(),
			Arrangement:   f.skill(),
			Ear:           f.skill(),
			SoundDesign:   f.skill(),
			TechKnowledge: f.skill(),
			Mixing:        f.skill(),
			Mastering:     f.skill(),
		},
		LevelInRole:   1,
		GenreAffinity: affinity,
		Energy:        100,
		Status:        StatusIdle,
		Salary:        salaryFor(stats),
	}
}

// RefillCandidates tops the hiring pool back up to target.
func (f *StaffFactory) RefillCandidates(state GameState, target int) GameState {
	out := state.Clone()
	for len(out.Candidates) < target {
		out.Candidates = append(out.Candidates, f.GenerateCandidate())
	}
	return out
}

// salaryFor derives a weekly salary from a candidate's raw stats.
func salaryFor(stats PrimaryStats) int {
	return 30 + (stats.Creativity+stats.Technical+stats.Speed)/3
}

// HireStaff moves a candidate onto the payroll, charging the signing fee.
// Hiring is gated behind its milestone feature.
func HireStaff(state GameState, candidateID string) (GameState, error) {
	out := state.Clone()

	if !out.FeatureUnlocked(FeatureHiring) {
		return out, LockedFeatureError{Feature: FeatureHiring, RequiredLevel: 2}
	}

	idx := -1
	for i := range out.Candidates {
		if out.Candidates[i].ID == candidateID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return out, fmt.Errorf("no candidate with id %q", candidateID)
	}

	c := out.Candidates[idx]
	fee := c.Salary * SigningFeeMultiple
	if out.Money < fee {
		return out, NotEnoughMoneyError{Need: fee, Have: out.Money}
	}

	out.Money -= fee
	out.Candidates = append(out.Candidates[:idx], out.Candidates[idx+1:]...)
	c.Status = StatusIdle
	out.HiredStaff = append(out.HiredStaff, c)
	return out, nil
}

// AssignStaff puts an idle or resting member to work on the active project.
func AssignStaff(state GameState, staffID string) (GameState, error) {
	out := state.Clone()

	if out.ActiveProject == nil {
		return out, fmt.Errorf("no active project to assign staff to")
	}
	s := out.StaffByID(staffID)
	if s == nil {
		return out, fmt.Errorf("no staff member with id %q", staffID)
	}
	if s.Energy < ExhaustionThreshold {
		return out, fmt.Errorf("%s is too exhausted to work (energy %d)", s.Name, s.Energy)
	}

	s.Status = StatusWorking
	s.AssignedProjectID = out.ActiveProject.ID
	if !containsString(out.ActiveProject.AssignedStaffIDs, staffID) {
		out.ActiveProject.AssignedStaffIDs = append(out.ActiveProject.AssignedStaffIDs, staffID)
	}
	return out, nil
}

// RestStaff pulls a member off their assignment to recover energy.
func RestStaff(state GameState, staffID string) (GameState, error) {
	out := state.Clone()

	s := out.StaffByID(staffID)
	if s == nil {
		return out, fmt.Errorf("no staff member with id %q", staffID)
	}
	if out.ActiveProject != nil {
		out.ActiveProject.AssignedStaffIDs = removeString(out.ActiveProject.AssignedStaffIDs, staffID)
	}
	s.Status = StatusResting
	s.AssignedProjectID = ""
	return out, nil
}

// TrainStaff enrolls a member in training. Gated behind its milestone
// feature; the member keeps training (earning role XP each night) until
// they are assigned or sent to rest.
func TrainStaff(state GameState, staffID string) (GameState, error) {
	out := state.Clone()

	if !out.FeatureUnlocked(FeatureTraining) {
		return out, LockedFeatureError{Feature: FeatureTraining, RequiredLevel: 5}
	}
	s := out.StaffByID(staffID)
	if s == nil {
		return out, fmt.Errorf("no staff member with id %q", staffID)
	}
	if s.Status == StatusWorking {
		return out, fmt.Errorf("%s is mid-session; rest them before training", s.Name)
	}
	if out.Money < TrainingFee {
		return out, NotEnoughMoneyError{Need: TrainingFee, Have: out.Money}
	}

	out.Money -= TrainingFee
	s.Status = StatusTraining
	s.AssignedProjectID = ""
	return out, nil
}

// advanceStaffDay runs the overnight energy cycle for one member: the
// exhausted go to rest, the rested come back, the idle drift upward.
func advanceStaffDay(s StaffMember) StaffMember {
	switch s.Status {
	case StatusWorking:
		if s.Energy < ExhaustionThreshold {
			s.Status = StatusResting
			s.AssignedProjectID = ""
		}
	case StatusResting:
		s.Energy += RestRecovery
		if s.Energy >= RestedThreshold {
			s.Status = StatusIdle
		}
	case StatusIdle:
		s.Energy += IdleRecovery
	case StatusTraining:
		s.Energy += IdleRecovery
		s, _ = GrantStaffXP(s, TrainingXPPerDay)
	}
	if s.Energy > 100 {
		s.Energy = 100
	}
	return s
}

func containsString(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

func removeString(list []string, v string) []string {
	out := list[:0]
	for _, s := range list {
		if s != v {
			out = append(out, s)
		}
	}
	return out
}
