// Package game holds the pure simulation core: every exported operation is a
// transform of (snapshot, inputs) -> new snapshot and never mutates its
// arguments. All types serialize to a plain JSON tree so the whole state can
// round-trip through a save.
package game

type Genre string

const (
	GenreRock       Genre = "rock"
	GenrePop        Genre = "pop"
	GenreElectronic Genre = "electronic"
	GenreHipHop     Genre = "hiphop"
	GenreAcoustic   Genre = "acoustic"
	GenreJazz       Genre = "jazz"
	GenreClassical  Genre = "classical"
	GenreSoul       Genre = "soul"
)

// Genres lists every genre the project factory draws from.
var Genres = []Genre{
	GenreRock, GenrePop, GenreElectronic, GenreHipHop,
	GenreAcoustic, GenreJazz, GenreClassical, GenreSoul,
}

func (g Genre) IsValid() bool {
	for _, k := range Genres {
		if g == k {
			return true
		}
	}
	return false
}

// StageCategory is assigned when a project is generated so downstream code
// switches on a closed enum instead of re-parsing stage display names.
type StageCategory string

const (
	StageWriting    StageCategory = "writing"
	StageRecording  StageCategory = "recording"
	StageProduction StageCategory = "production"
	StageMixing     StageCategory = "mixing"
	StageMastering  StageCategory = "mastering"
	StageGeneral    StageCategory = "general"
)

type MatchRating string

const (
	MatchPoor      MatchRating = "Poor"
	MatchGood      MatchRating = "Good"
	MatchExcellent MatchRating = "Excellent"
)

// Modifier returns the payout/reputation multiplier for a match rating.
func (m MatchRating) Modifier() float64 {
	switch m {
	case MatchExcellent:
		return 1.2
	case MatchPoor:
		return 0.8
	default:
		return 1.0
	}
}

// FocusArea is one weighted slider within a stage. Value is a 0-100
// percentage; the values of all areas in a stage sum to 100.
type FocusArea struct {
	Name             string  `json:"name"`
	Value            int     `json:"value"`
	CreativityWeight float64 `json:"creativityWeight"`
	TechnicalWeight  float64 `json:"technicalWeight"`
}

type ProjectStage struct {
	Name               string        `json:"name"`
	Category           StageCategory `json:"category"`
	FocusAreas         []FocusArea   `json:"focusAreas"`
	WorkUnitsRequired  int           `json:"workUnitsRequired"`
	WorkUnitsCompleted int           `json:"workUnitsCompleted"`
	Completed          bool          `json:"completed"`
}

// Progress returns stage completion in [0,1].
func (s ProjectStage) Progress() float64 {
	if s.WorkUnitsRequired <= 0 {
		return 1
	}
	p := float64(s.WorkUnitsCompleted) / float64(s.WorkUnitsRequired)
	if p > 1 {
		return 1
	}
	return p
}

type Project struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Genre      Genre  `json:"genre"`
	ClientType string `json:"clientType"`
	Difficulty int    `json:"difficulty"` // 1-5

	Stages            []ProjectStage `json:"stages"`
	CurrentStageIndex int            `json:"currentStageIndex"`

	AccumulatedCreativity int `json:"accumulatedCreativity"`
	AccumulatedTechnical  int `json:"accumulatedTechnical"`

	// LastWorkDay is the in-game day of the last applied work tick. It
	// enforces at most one tick per project per day.
	LastWorkDay int `json:"lastWorkDay"`

	AssignedStaffIDs []string       `json:"assignedStaffIds"`
	RequiredSkills   map[Genre]int  `json:"requiredSkills"`
	MatchRating      MatchRating    `json:"matchRating"`
	PayoutBase       int            `json:"payoutBase"`
	RepGainBase      int            `json:"repGainBase"`
}

// CurrentStage returns the stage the project is working on, or nil when the
// stage index is out of range (defensive; should not occur).
func (p *Project) CurrentStage() *ProjectStage {
	if p == nil || p.CurrentStageIndex < 0 || p.CurrentStageIndex >= len(p.Stages) {
		return nil
	}
	return &p.Stages[p.CurrentStageIndex]
}

// OnFinalStage reports whether the current stage is the last one.
func (p *Project) OnFinalStage() bool {
	return p != nil && p.CurrentStageIndex == len(p.Stages)-1
}

type StaffRole string

const (
	RoleEngineer   StaffRole = "Engineer"
	RoleProducer   StaffRole = "Producer"
	RoleSongwriter StaffRole = "Songwriter"
	RoleAssistant  StaffRole = "Assistant"
)

type StaffStatus string

const (
	StatusIdle     StaffStatus = "Idle"
	StatusWorking  StaffStatus = "Working"
	StatusResting  StaffStatus = "Resting"
	StatusTraining StaffStatus = "Training"
)

type PrimaryStats struct {
	Creativity int `json:"creativity"`
	Technical  int `json:"technical"`
	Speed      int `json:"speed"`
}

// StaffSkills are the per-discipline skill scores a staff member brings to a
// session; the contribution calculator blends them into creativity/technical
// point output.
type StaffSkills struct {
	Songwriting   int `json:"songwriting"`
	Arrangement   int `json:"arrangement"`
	Ear           int `json:"ear"`
	SoundDesign   int `json:"soundDesign"`
	TechKnowledge int `json:"techKnowledge"`
	Mixing        int `json:"mixing"`
	Mastering     int `json:"mastering"`
}

type GenreAffinity struct {
	Genre        Genre `json:"genre"`
	BonusPercent int   `json:"bonusPercent"`
}

type StaffMember struct {
	ID   string    `json:"id"`
	Name string    `json:"name"`
	Role StaffRole `json:"role"`

	PrimaryStats PrimaryStats `json:"primaryStats"`
	Skills       StaffSkills  `json:"skills"`

	LevelInRole int `json:"levelInRole"`
	XPInRole    int `json:"xpInRole"`

	GenreAffinity *GenreAffinity `json:"genreAffinity,omitempty"`

	Energy            int         `json:"energy"` // 0-100
	Status            StaffStatus `json:"status"`
	AssignedProjectID string      `json:"assignedProjectId,omitempty"`
	Salary            int         `json:"salary"`
}

// Attributes are the player's permanent stat levels. Each level grants a 5%
// bonus above level 1 in its domain.
type Attributes struct {
	CreativeIntuition int `json:"creativeIntuition"`
	TechnicalAptitude int `json:"technicalAptitude"`
	FocusMastery      int `json:"focusMastery"`
	BusinessAcumen    int `json:"businessAcumen"`
	Charisma          int `json:"charisma"`
	Luck              int `json:"luck"`
}

type PlayerData struct {
	XP              int        `json:"xp"`
	Level           int        `json:"level"`
	XPToNextLevel   int        `json:"xpToNextLevel"`
	PerkPoints      int        `json:"perkPoints"`
	AttributePoints int        `json:"attributePoints"`
	Attributes      Attributes `json:"attributes"`
}

// StudioSkill is the studio's per-genre proficiency. Level never decreases.
type StudioSkill struct {
	Genre         Genre `json:"genre"`
	Level         int   `json:"level"`
	XP            int   `json:"xp"`
	XPToNextLevel int   `json:"xpToNextLevel"`
}

type EquipmentBonuses struct {
	CreativityPct int           `json:"creativityPct"`
	TechnicalPct  int           `json:"technicalPct"`
	SpeedPct      int           `json:"speedPct"`
	GenreBonus    map[Genre]int `json:"genreBonus,omitempty"`
}

type Equipment struct {
	ID      string           `json:"id"`
	Name    string           `json:"name"`
	Price   int              `json:"price"`
	Bonuses EquipmentBonuses `json:"bonuses"`
}

// FocusAllocation is the player's three-axis split of daily effort. The three
// values sum to 100.
type FocusAllocation struct {
	Performance  int    `json:"performance"`
	SoundCapture int    `json:"soundCapture"`
	Layering     int    `json:"layering"`
	Reasoning    string `json:"reasoning,omitempty"`
}

func (f FocusAllocation) Total() int {
	return f.Performance + f.SoundCapture + f.Layering
}

// GameState is the full serializable snapshot. The engine never mutates one
// in place; every operation deep-copies and returns a new snapshot.
type GameState struct {
	CurrentDay int `json:"currentDay"`
	Money      int `json:"money"`
	Reputation int `json:"reputation"`

	Player       PlayerData            `json:"player"`
	StudioSkills map[Genre]StudioSkill `json:"studioSkills"`

	ActiveProject     *Project  `json:"activeProject,omitempty"`
	AvailableProjects []Project `json:"availableProjects"`
	CompletedProjects []Project `json:"completedProjects"`

	HiredStaff []StaffMember `json:"hiredStaff"`
	Candidates []StaffMember `json:"candidates"`

	OwnedEquipment []Equipment `json:"ownedEquipment"`

	// ClaimedMilestones records milestone levels already applied so that
	// re-applying a milestone never double-grants.
	ClaimedMilestones []int `json:"claimedMilestones"`

	UnlockedFeatures []string `json:"unlockedFeatures"`
}

// StaffByID returns the hired staff member with the given id, or nil.
func (g *GameState) StaffByID(id string) *StaffMember {
	for i := range g.HiredStaff {
		if g.HiredStaff[i].ID == id {
			return &g.HiredStaff[i]
		}
	}
	return nil
}

// WorkingStaffOn returns the hired staff that are actively working on the
// given project.
func (g *GameState) WorkingStaffOn(projectID string) []StaffMember {
	var out []StaffMember
	for _, s := range g.HiredStaff {
		if s.Status == StatusWorking && s.AssignedProjectID == projectID {
			out = append(out, s)
		}
	}
	return out
}
