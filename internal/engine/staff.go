package engine

import (
	"context"

	"studioline/internal/game"
)

// Hire signs a candidate from the hiring pool.
func (s *Service) Hire(ctx context.Context, candidateID string) (game.GameState, error) {
	state, err := s.load(ctx)
	if err != nil {
		return game.GameState{}, err
	}
	next, err := game.HireStaff(state, candidateID)
	if err != nil {
		return game.GameState{}, err
	}
	if err := s.store(ctx, next); err != nil {
		return game.GameState{}, err
	}
	return next, nil
}

// Assign puts a hired member to work on the active project.
func (s *Service) Assign(ctx context.Context, staffID string) (game.GameState, error) {
	state, err := s.load(ctx)
	if err != nil {
		return game.GameState{}, err
	}
	next, err := game.AssignStaff(state, staffID)
	if err != nil {
		return game.GameState{}, err
	}
	if err := s.store(ctx, next); err != nil {
		return game.GameState{}, err
	}
	return next, nil
}

// Train enrolls a hired member in training.
func (s *Service) Train(ctx context.Context, staffID string) (game.GameState, error) {
	state, err := s.load(ctx)
	if err != nil {
		return game.GameState{}, err
	}
	next, err := game.TrainStaff(state, staffID)
	if err != nil {
		return game.GameState{}, err
	}
	if err := s.store(ctx, next); err != nil {
		return game.GameState{}, err
	}
	return next, nil
}

// Rest pulls a member off their assignment to recover energy.
func (s *Service) Rest(ctx context.Context, staffID string) (game.GameState, error) {
	state, err := s.load(ctx)
	if err != nil {
		return game.GameState{}, err
	}
	next, err := game.RestStaff(state, staffID)
	if err != nil {
		return game.GameState{}, err
	}
	if err := s.store(ctx, next); err != nil {
		return game.GameState{}, err
	}
	return next, nil
}
