package game

// Deep-copy helpers. The snapshot types contain only value fields, slices,
// maps, and one optional pointer each, so copies are spelled out rather than
// round-tripped through JSON.

func cloneFocusAreas(areas []FocusArea) []FocusArea {
	if areas == nil {
		return nil
	}
	out := make([]FocusArea, len(areas))
	copy(out, areas)
	return out
}

func cloneStages(stages []ProjectStage) []ProjectStage {
	if stages == nil {
		return nil
	}
	out := make([]ProjectStage, len(stages))
	for i, s := range stages {
		s.FocusAreas = cloneFocusAreas(s.FocusAreas)
		out[i] = s
	}
	return out
}

// Clone returns a deep copy of the project.
func (p Project) Clone() Project {
	p.Stages = cloneStages(p.Stages)
	p.AssignedStaffIDs = append([]string(nil), p.AssignedStaffIDs...)
	if p.RequiredSkills != nil {
		m := make(map[Genre]int, len(p.RequiredSkills))
		for k, v := range p.RequiredSkills {
			m[k] = v
		}
		p.RequiredSkills = m
	}
	return p
}

func cloneProjects(projects []Project) []Project {
	if projects == nil {
		return nil
	}
	out := make([]Project, len(projects))
	for i, p := range projects {
		out[i] = p.Clone()
	}
	return out
}

// Clone returns a deep copy of the staff member.
func (s StaffMember) Clone() StaffMember {
	if s.GenreAffinity != nil {
		a := *s.GenreAffinity
		s.GenreAffinity = &a
	}
	return s
}

func cloneStaff(staff []StaffMember) []StaffMember {
	if staff == nil {
		return nil
	}
	out := make([]StaffMember, len(staff))
	for i, s := range staff {
		out[i] = s.Clone()
	}
	return out
}

func cloneEquipment(items []Equipment) []Equipment {
	if items == nil {
		return nil
	}
	out := make([]Equipment, len(items))
	for i, e := range items {
		if e.Bonuses.GenreBonus != nil {
			m := make(map[Genre]int, len(e.Bonuses.GenreBonus))
			for k, v := range e.Bonuses.GenreBonus {
				m[k] = v
			}
			e.Bonuses.GenreBonus = m
		}
		out[i] = e
	}
	return out
}

// Clone returns a deep copy of the whole snapshot.
func (g GameState) Clone() GameState {
	if g.StudioSkills != nil {
		m := make(map[Genre]StudioSkill, len(g.StudioSkills))
		for k, v := range g.StudioSkills {
			m[k] = v
		}
		g.StudioSkills = m
	}
	if g.ActiveProject != nil {
		p := g.ActiveProject.Clone()
		g.ActiveProject = &p
	}
	g.AvailableProjects = cloneProjects(g.AvailableProjects)
	g.CompletedProjects = cloneProjects(g.CompletedProjects)
	g.HiredStaff = cloneStaff(g.HiredStaff)
	g.Candidates = cloneStaff(g.Candidates)
	g.OwnedEquipment = cloneEquipment(g.OwnedEquipment)
	g.ClaimedMilestones = append([]int(nil), g.ClaimedMilestones...)
	g.UnlockedFeatures = append([]string(nil), g.UnlockedFeatures...)
	return g
}
