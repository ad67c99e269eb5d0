package engine

import (
	"context"

	"studioline/internal/game"
)

// SleepResult reports the overnight transition.
type SleepResult struct {
	Outcome game.DayOutcome
	State   game.GameState
}

// Sleep ends the current day: the staff energy cycle runs, salaries come due
// on the weekly boundary, milestones apply, and both pools refill from the
// factories.
func (s *Service) Sleep(ctx context.Context) (SleepResult, error) {
	state, err := s.load(ctx)
	if err != nil {
		return SleepResult{}, err
	}

	next, outcome := game.AdvanceDay(state)
	next = s.projects.RefillOffers(next, s.offerPool)
	if next.FeatureUnlocked(game.FeatureHiring) {
		next = s.staff.RefillCandidates(next, s.candidatePool)
	}

	if next.Money < 0 {
		s.log.Printf("warn: studio balance negative after salaries (day %d, $%d)", next.CurrentDay, next.Money)
	}

	if err := s.store(ctx, next); err != nil {
		return SleepResult{}, err
	}
	return SleepResult{Outcome: outcome, State: next}, nil
}
