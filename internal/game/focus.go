package game

import "math"

const (
	// AttributePointRate is the per-attribute-level scaling applied to
	// weighted focus points.
	AttributePointRate = 0.1

	// FocusMasteryPointRate is the per-focus-mastery-level scaling applied
	// to both point totals.
	FocusMasteryPointRate = 0.05

	// StaffSkillAxisCap bounds the per-skill boost a staff roster can give
	// an optimal-focus axis.
	StaffSkillAxisCap = 0.5
)

// StagePoints is the creativity/technical output of one tick's focus work.
type StagePoints struct {
	Creativity int
	Technical  int
}

// ComputeStagePoints converts a stage's focus sliders into creativity and
// technical points for workUnits worth of effort. Pure: no randomness, no
// state access beyond the arguments. A stage with zero focus weight yields
// zero points.
func ComputeStagePoints(areas []FocusArea, attrs Attributes, workUnits int) StagePoints {
	if workUnits <= 0 {
		return StagePoints{}
	}

	var creativity, technical float64
	for _, area := range areas {
		base := float64(area.Value) / 100 * float64(workUnits)
		creativity += base * area.CreativityWeight * (1 + float64(attrs.CreativeIntuition)*AttributePointRate)
		technical += base * area.TechnicalWeight * (1 + float64(attrs.TechnicalAptitude)*AttributePointRate)
	}

	mastery := 1 + float64(attrs.FocusMastery)*FocusMasteryPointRate
	creativity *= mastery
	technical *= mastery

	return StagePoints{
		Creativity: int(math.Floor(creativity)),
		Technical:  int(math.Floor(technical)),
	}
}

// baseFocusForCategory is the starting three-way split per stage category.
func baseFocusForCategory(cat StageCategory) (FocusAllocation, string) {
	switch cat {
	case StageRecording:
		return FocusAllocation{Performance: 45, SoundCapture: 40, Layering: 15},
			"Recording stages benefit from performance coaching and quality capture"
	case StageMixing:
		return FocusAllocation{Performance: 25, SoundCapture: 35, Layering: 40},
			"Mixing balances technical precision with spatial arrangement"
	case StageMastering:
		return FocusAllocation{Performance: 20, SoundCapture: 50, Layering: 30},
			"Mastering prioritizes technical excellence and final cohesion"
	case StageWriting:
		return FocusAllocation{Performance: 50, SoundCapture: 20, Layering: 30},
			"Creative stages benefit from inspiration and arrangement focus"
	case StageProduction:
		return FocusAllocation{Performance: 35, SoundCapture: 30, Layering: 35},
			"Production stages need balanced attention across all areas"
	default:
		return FocusAllocation{Performance: 35, SoundCapture: 35, Layering: 30},
			"Balanced approach for general project work"
	}
}

type genreFocusModifier struct {
	performance  float64
	soundCapture float64
	layering     float64
	reasoning    string
}

var genreFocusModifiers = map[Genre]genreFocusModifier{
	GenreRock:       {1.2, 1.0, 0.9, "Rock emphasizes powerful performances"},
	GenreElectronic: {0.8, 0.9, 1.3, "Electronic music relies heavily on layering and arrangement"},
	GenreAcoustic:   {1.3, 1.1, 0.7, "Acoustic music prioritizes natural performance and capture"},
	GenreJazz:       {1.25, 1.05, 0.85, "Jazz lives on live interplay and room sound"},
	GenreHipHop:     {0.9, 0.95, 1.2, "Hip-hop production leans on beat construction and layering"},
	GenreClassical:  {1.15, 1.2, 0.7, "Classical sessions depend on performance and pristine capture"},
	GenreSoul:       {1.2, 1.0, 0.95, "Soul and R&B thrive on vocal performance energy"},
}

// staffSkillAxis maps a skill name from a roster summary onto the focus axis
// it strengthens.
var staffSkillAxis = map[string]int{
	"songwriting": 0, "arrangement": 0, "ear": 0,
	"soundDesign": 1, "techKnowledge": 1, "recording": 1,
	"mixing": 2, "mastering": 2, "layering": 2,
}

// OptimalFocus recommends a three-axis allocation for a stage and genre. The
// optional staffSkills summary (skill name -> aggregate level) further scales
// axes by up to +50% per matched skill. The returned axes always sum to
// exactly 100.
func OptimalFocus(cat StageCategory, genre Genre, staffSkills map[string]int) FocusAllocation {
	base, reasoning := baseFocusForCategory(cat)

	mod, ok := genreFocusModifiers[genre]
	if !ok {
		mod = genreFocusModifier{1, 1, 1, "Balanced approach works well for this genre"}
	}

	axes := [3]float64{
		float64(base.Performance) * mod.performance,
		float64(base.SoundCapture) * mod.soundCapture,
		float64(base.Layering) * mod.layering,
	}

	for skill, level := range staffSkills {
		idx, ok := staffSkillAxis[skill]
		if !ok || level <= 0 {
			continue
		}
		boost := float64(level) * 0.05
		if boost > StaffSkillAxisCap {
			boost = StaffSkillAxisCap
		}
		axes[idx] *= 1 + boost
	}

	p, s, l := normalizeAxes(axes)
	return FocusAllocation{
		Performance:  p,
		SoundCapture: s,
		Layering:     l,
		Reasoning:    reasoning + ". " + mod.reasoning,
	}
}

// normalizeAxes rescales three weights so they sum to exactly 100:
// proportional rescale with the rounding remainder assigned to the last axis.
func normalizeAxes(axes [3]float64) (int, int, int) {
	total := axes[0] + axes[1] + axes[2]
	if total <= 0 {
		return 33, 34, 33
	}
	p := int(math.Round(axes[0] / total * 100))
	s := int(math.Round(axes[1] / total * 100))
	l := 100 - p - s
	if l < 0 {
		// Rounding pushed the first two axes past 100; take it back from
		// the larger of the two.
		if p >= s {
			p += l
		} else {
			s += l
		}
		l = 0
	}
	return p, s, l
}

// NormalizeFocusAreas rescales legacy per-area slider values so they sum to
// exactly 100, proportionally, with the remainder assigned to the last area.
// All-zero input is left untouched (the work engine treats it as a
// zero-weight defensive no-op).
func NormalizeFocusAreas(areas []FocusArea) []FocusArea {
	out := cloneFocusAreas(areas)
	if len(out) == 0 {
		return out
	}
	total := 0
	for _, a := range out {
		total += a.Value
	}
	if total == 0 || total == 100 {
		return out
	}
	acc := 0
	for i := range out[:len(out)-1] {
		out[i].Value = int(math.Round(float64(out[i].Value) / float64(total) * 100))
		acc += out[i].Value
	}
	last := 100 - acc
	if last < 0 {
		// Rounding pushed the leading areas past 100; take the excess back
		// from the largest of them.
		big := 0
		for i := range out[:len(out)-1] {
			if out[i].Value > out[big].Value {
				big = i
			}
		}
		out[big].Value += last
		last = 0
	}
	out[len(out)-1].Value = last
	return out
}

// ApplyAllocation spreads a three-axis allocation across a stage's focus
// areas: performance maps to the first area, sound capture to the second,
// layering to the rest (split evenly, remainder to the last). Stages with
// fewer than three areas fold the trailing axes into the final area.
func ApplyAllocation(stage ProjectStage, alloc FocusAllocation) ProjectStage {
	stage.FocusAreas = cloneFocusAreas(stage.FocusAreas)
	n := len(stage.FocusAreas)
	switch n {
	case 0:
		return stage
	case 1:
		stage.FocusAreas[0].Value = 100
	case 2:
		stage.FocusAreas[0].Value = alloc.Performance
		stage.FocusAreas[1].Value = 100 - alloc.Performance
	default:
		stage.FocusAreas[0].Value = alloc.Performance
		stage.FocusAreas[1].Value = alloc.SoundCapture
		rest := n - 2
		per := alloc.Layering / rest
		used := alloc.Performance + alloc.SoundCapture
		for i := 2; i < n-1; i++ {
			stage.FocusAreas[i].Value = per
			used += per
		}
		stage.FocusAreas[n-1].Value = 100 - used
	}
	return stage
}
