package game

import (
	"errors"
	"fmt"
)

// ErrProjectNotComplete signals a programming error: completion was requested
// for a project whose final stage has not finished. Callers must leave the
// state unchanged when they see it.
var ErrProjectNotComplete = errors.New("project is not on a completed final stage")

// LockedFeatureError indicates a feature gated behind a level milestone.
type LockedFeatureError struct {
	Feature       string
	RequiredLevel int
}

func (e LockedFeatureError) Error() string {
	if e.RequiredLevel <= 0 {
		return fmt.Sprintf("feature '%s' is locked", e.Feature)
	}
	return fmt.Sprintf("feature '%s' unlocks at level %d", e.Feature, e.RequiredLevel)
}

// NotEnoughMoneyError indicates a purchase or signing the studio cannot
// afford.
type NotEnoughMoneyError struct {
	Need int
	Have int
}

func (e NotEnoughMoneyError) Error() string {
	return fmt.Sprintf("not enough money: need $%d, have $%d", e.Need, e.Have)
}
