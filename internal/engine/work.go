package engine

import (
	"context"
	"database/sql"

	"studioline/internal/game"
	"studioline/internal/storage"
)

// WorkResult is what one `sl work` invocation reports back to the CLI.
type WorkResult struct {
	Outcome game.WorkOutcome
	State   game.GameState

	// CriticalRolled is set when a completed project's review was upgraded
	// by the luck roll.
	CriticalRolled bool
}

// Work applies one day of effort to the active project. When the tick
// completes the project, the review row and the updated save are committed
// in one transaction; a completed review may also be upgraded by the
// critical-success roll before it is persisted.
func (s *Service) Work(ctx context.Context, minigame *game.MinigameResult) (WorkResult, error) {
	state, err := s.load(ctx)
	if err != nil {
		return WorkResult{}, err
	}

	next, outcome := game.PerformDailyWork(state, game.WorkInput{Minigame: minigame})
	s.warn(outcome.Warnings)

	res := WorkResult{Outcome: outcome, State: next}
	if outcome.Status.Blocked() {
		// Nothing changed; skip the write.
		return res, nil
	}

	if outcome.ProjectCompleted && outcome.Review != nil {
		if s.rollCritical(next.Player.Attributes) {
			upgraded, review := game.ApplyCriticalSuccess(next, *outcome.Review)
			next = upgraded
			outcome.Review = &review
			res.CriticalRolled = true
			res.Outcome = outcome
			res.State = next
		}
		if err := s.persistCompletion(ctx, next, outcome.Review); err != nil {
			return WorkResult{}, err
		}
		return res, nil
	}

	if err := s.store(ctx, next); err != nil {
		return WorkResult{}, err
	}
	res.State = next
	return res, nil
}

// rollCritical is the only nondeterminism in the completion path; everything
// downstream of the roll is a pure transform.
func (s *Service) rollCritical(attrs game.Attributes) bool {
	chance := game.CriticalSuccessChance(attrs)
	if chance <= 0 {
		return false
	}
	return s.rng.Float64()*100 < chance
}

func (s *Service) persistCompletion(ctx context.Context, state game.GameState, review *game.ProjectReview) error {
	rec, err := reviewRecord(s.saveName, review)
	if err != nil {
		return err
	}
	return storage.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		if _, err := s.reviews.InsertTx(ctx, tx, rec); err != nil {
			return err
		}
		return s.storeTx(ctx, tx, state)
	})
}
