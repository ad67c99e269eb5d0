package game

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
)

// stageTemplate describes one stage of a project blueprint before difficulty
// scaling.
type stageTemplate struct {
	name       string
	category   StageCategory
	focusAreas []string
	unitsBase  int
}

// projectTemplate is a blueprint the factory stamps projects from.
type projectTemplate struct {
	titlePattern string
	clientType   string
	difficulty   int
	payoutBase   int
	repGainBase  int
	stages       []stageTemplate
}

var projectTemplates = []projectTemplate{
	{
		titlePattern: "Simple %s Demo",
		clientType:   "Indie Band",
		difficulty:   1,
		payoutBase:   300,
		repGainBase:  3,
		stages: []stageTemplate{
			{"Basic Recording", StageRecording, []string{"performance", "soundCapture"}, 1},
			{"Quick Mix", StageMixing, []string{"mixing"}, 1},
			{"Final Touches", StageMastering, []string{"mastering"}, 1},
		},
	},
	{
		titlePattern: "%s Album Track",
		clientType:   "Record Label",
		difficulty:   3,
		payoutBase:   800,
		repGainBase:  8,
		stages: []stageTemplate{
			{"Pre-production", StageWriting, []string{"planning", "arrangement"}, 3},
			{"Recording", StageRecording, []string{"performance", "soundCapture", "layering"}, 5},
			{"Mixing", StageMixing, []string{"mixing"}, 3},
			{"Mastering", StageMastering, []string{"mastering"}, 1},
		},
	},
	{
		titlePattern: "%s Film Score",
		clientType:   "Commercial",
		difficulty:   5,
		payoutBase:   1500,
		repGainBase:  15,
		stages: []stageTemplate{
			{"Concept Development", StageWriting, []string{"planning"}, 4},
			{"Orchestration", StageProduction, []string{"arrangement", "layering"}, 6},
			{"Recording Sessions", StageRecording, []string{"performance", "soundCapture"}, 5},
			{"Post-production", StageMixing, []string{"mixing", "mastering"}, 5},
		},
	},
}

// focusAreaWeights maps a named focus axis onto its creativity/technical
// blend. Unknown axis names fall back to an even split.
var focusAreaWeights = map[string][2]float64{
	"performance":  {0.7, 0.3},
	"soundCapture": {0.3, 0.7},
	"layering":     {0.5, 0.5},
	"mixing":       {0.2, 0.8},
	"mastering":    {0.1, 0.9},
	"planning":     {0.6, 0.4},
	"arrangement":  {0.8, 0.2},
}

// focusAreaEmphasis is each axis's raw slider weight before a stage's areas
// are rescaled to an exact 100 split.
var focusAreaEmphasis = map[string]int{
	"performance":  40,
	"soundCapture": 35,
	"layering":     25,
	"mixing":       60,
	"mastering":    55,
	"planning":     45,
	"arrangement":  50,
}

// ProjectFactory stamps out offer-pool projects. The random source and the id
// generator are injected so tests and replays stay deterministic.
type ProjectFactory struct {
	rng   *rand.Rand
	newID func() string
}

// NewProjectFactory builds a factory around the given random source. A nil
// source falls back to the shared global one.
func NewProjectFactory(rng *rand.Rand) *ProjectFactory {
	return &ProjectFactory{rng: rng, newID: uuid.NewString}
}

func (f *ProjectFactory) intn(n int) int {
	if f.rng != nil {
		return f.rng.Intn(n)
	}
	return rand.Intn(n)
}

// Generate produces one fresh project offer. Difficulty is capped by the
// studio's reputation tier; match rating is fixed from current studio skills
// and never re-evaluated.
func (f *ProjectFactory) Generate(state *GameState) Project {
	tier := reputationTier(state.Reputation)
	candidates := make([]projectTemplate, 0, len(projectTemplates))
	for _, t := range projectTemplates {
		if t.difficulty <= tier {
			candidates = append(candidates, t)
		}
	}
	if len(candidates) == 0 {
		candidates = projectTemplates[:1]
	}
	tmpl := candidates[f.intn(len(candidates))]
	genre := Genres[f.intn(len(Genres))]

	stages := make([]ProjectStage, 0, len(tmpl.stages))
	for _, st := range tmpl.stages {
		stages = append(stages, ProjectStage{
			Name:              st.name,
			Category:          st.category,
			FocusAreas:        buildFocusAreas(st.focusAreas),
			WorkUnitsRequired: st.unitsBase * (1 + tmpl.difficulty),
		})
	}

	required := map[Genre]int{genre: tmpl.difficulty}

	return Project{
		ID:             f.newID(),
		Title:          fmt.Sprintf(tmpl.titlePattern, titleGenre(genre)),
		Genre:          genre,
		ClientType:     tmpl.clientType,
		Difficulty:     tmpl.difficulty,
		Stages:         stages,
		LastWorkDay:    -1,
		RequiredSkills: required,
		MatchRating:    rateMatch(state.StudioSkills, required),
		PayoutBase:     tmpl.payoutBase + f.intn(tmpl.payoutBase/4+1),
		RepGainBase:    tmpl.repGainBase,
	}
}

// RefillOffers tops the available-project pool back up to target.
func (f *ProjectFactory) RefillOffers(state GameState, target int) GameState {
	out := state.Clone()
	for len(out.AvailableProjects) < target {
		out.AvailableProjects = append(out.AvailableProjects, f.Generate(&out))
	}
	return out
}

// buildFocusAreas seeds each named axis with its emphasis weight and rescales
// the set so the stage always sums to exactly 100.
func buildFocusAreas(names []string) []FocusArea {
	if len(names) == 0 {
		return nil
	}
	areas := make([]FocusArea, 0, len(names))
	for _, name := range names {
		w, ok := focusAreaWeights[name]
		if !ok {
			w = [2]float64{0.5, 0.5}
		}
		value, ok := focusAreaEmphasis[name]
		if !ok {
			value = 30
		}
		areas = append(areas, FocusArea{
			Name:             name,
			Value:            value,
			CreativityWeight: w[0],
			TechnicalWeight:  w[1],
		})
	}
	return NormalizeFocusAreas(areas)
}

// rateMatch grades how well the studio's current skills cover a project's
// requirements. Coverage >= 80% is Excellent, >= 50% Good, else Poor.
func rateMatch(skills map[Genre]StudioSkill, required map[Genre]int) MatchRating {
	if len(required) == 0 {
		return MatchGood
	}
	var coverage float64
	for genre, need := range required {
		if need <= 0 {
			coverage++
			continue
		}
		have := skills[genre].Level
		c := float64(have) / float64(need)
		if c > 1 {
			c = 1
		}
		coverage += c
	}
	coverage /= float64(len(required))
	switch {
	case coverage >= 0.8:
		return MatchExcellent
	case coverage >= 0.5:
		return MatchGood
	default:
		return MatchPoor
	}
}

// reputationTier converts reputation into the highest offered difficulty.
func reputationTier(rep int) int {
	switch {
	case rep >= 60:
		return 5
	case rep >= 40:
		return 4
	case rep >= 20:
		return 3
	case rep >= 10:
		return 2
	default:
		return 1
	}
}

// titleGenre formats a genre for display inside project titles.
func titleGenre(g Genre) string {
	switch g {
	case GenreHipHop:
		return "Hip-Hop"
	case GenreRock:
		return "Rock"
	case GenrePop:
		return "Pop"
	case GenreElectronic:
		return "Electronic"
	case GenreAcoustic:
		return "Acoustic"
	case GenreJazz:
		return "Jazz"
	case GenreClassical:
		return "Classical"
	case GenreSoul:
		return "Soul"
	default:
		return string(g)
	}
}
