package engine

import (
	"context"

	"studioline/internal/game"
)

// Accept moves an offered project into the active slot.
func (s *Service) Accept(ctx context.Context, projectID string) (game.GameState, error) {
	state, err := s.load(ctx)
	if err != nil {
		return game.GameState{}, err
	}
	next, err := game.AcceptProject(state, projectID)
	if err != nil {
		return game.GameState{}, err
	}
	if err := s.store(ctx, next); err != nil {
		return game.GameState{}, err
	}
	return next, nil
}

// SetFocus applies a three-axis allocation to the active project's current
// stage.
func (s *Service) SetFocus(ctx context.Context, alloc game.FocusAllocation) (game.GameState, error) {
	state, err := s.load(ctx)
	if err != nil {
		return game.GameState{}, err
	}
	next, err := game.SetStageFocus(state, alloc)
	if err != nil {
		return game.GameState{}, err
	}
	if err := s.store(ctx, next); err != nil {
		return game.GameState{}, err
	}
	return next, nil
}

// SuggestFocus recommends an allocation for the active project's current
// stage, folding the working roster's dominant skills into the weighting.
func (s *Service) SuggestFocus(ctx context.Context) (game.FocusAllocation, error) {
	state, err := s.load(ctx)
	if err != nil {
		return game.FocusAllocation{}, err
	}
	project := state.ActiveProject
	if project == nil {
		return game.FocusAllocation{}, errNoActiveProject
	}
	stage := project.CurrentStage()
	if stage == nil {
		return game.FocusAllocation{}, errNoActiveProject
	}

	skills := map[string]int{}
	for _, m := range state.WorkingStaffOn(project.ID) {
		skills["songwriting"] += m.Skills.Songwriting
		skills["arrangement"] += m.Skills.Arrangement
		skills["ear"] += m.Skills.Ear
		skills["soundDesign"] += m.Skills.SoundDesign
		skills["techKnowledge"] += m.Skills.TechKnowledge
		skills["mixing"] += m.Skills.Mixing
		skills["mastering"] += m.Skills.Mastering
	}
	return game.OptimalFocus(stage.Category, project.Genre, skills), nil
}
