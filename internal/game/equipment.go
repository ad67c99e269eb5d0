package game

// EquipmentEffect is the aggregate percentage uplift the studio's gear gives
// a work tick for a particular genre.
type EquipmentEffect struct {
	CreativityPct int
	TechnicalPct  int
	SpeedPct      int
}

// ComputeEquipmentEffect sums the owned equipment's bonuses. Genre-matched
// bonuses add to both creativity and technical.
func ComputeEquipmentEffect(owned []Equipment, genre Genre) EquipmentEffect {
	var e EquipmentEffect
	for _, item := range owned {
		e.CreativityPct += item.Bonuses.CreativityPct
		e.TechnicalPct += item.Bonuses.TechnicalPct
		e.SpeedPct += item.Bonuses.SpeedPct
		if g, ok := item.Bonuses.GenreBonus[genre]; ok {
			e.CreativityPct += g
			e.TechnicalPct += g
		}
	}
	return e
}

// StarterEquipment is the gear a new studio opens with.
func StarterEquipment() []Equipment {
	return []Equipment{
		{
			ID:    "eq-basic-interface",
			Name:  "2-Channel Interface",
			Price: 0,
			Bonuses: EquipmentBonuses{
				TechnicalPct: 2,
			},
		},
		{
			ID:    "eq-dynamic-mic",
			Name:  "Dynamic Stage Mic",
			Price: 0,
			Bonuses: EquipmentBonuses{
				CreativityPct: 1,
				GenreBonus:    map[Genre]int{GenreRock: 3},
			},
		},
		{
			ID:    "eq-reference-monitors",
			Name:  "Nearfield Monitors",
			Price: 0,
			Bonuses: EquipmentBonuses{
				TechnicalPct: 3,
				SpeedPct:     5,
			},
		},
	}
}
