// Package engine wires the pure simulation core to persistence: each command
// loads the save snapshot, applies one core transform, and writes the result
// back inside a transaction.
package engine

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"studioline/internal/game"
	"studioline/internal/logging"
	"studioline/internal/storage"
)

type Service struct {
	db       *sql.DB
	saves    *storage.SaveRepo
	reviews  *storage.ReviewRepo
	projects *game.ProjectFactory
	staff    *game.StaffFactory
	rng      *rand.Rand
	log      *logging.Logger

	saveName      string
	offerPool     int
	candidatePool int
}

// Option adjusts service construction.
type Option func(*Service)

// WithSeed makes every random draw (project generation, candidates, critical
// rolls) reproducible.
func WithSeed(seed int64) Option {
	return func(s *Service) {
		s.rng = rand.New(rand.NewSource(seed))
	}
}

// WithSave selects a save slot other than the default.
func WithSave(name string) Option {
	return func(s *Service) {
		if name != "" {
			s.saveName = name
		}
	}
}

// WithPoolSizes overrides how many project offers and hire candidates the
// pools are refilled to. Non-positive values keep the defaults.
func WithPoolSizes(offers, candidates int) Option {
	return func(s *Service) {
		if offers > 0 {
			s.offerPool = offers
		}
		if candidates > 0 {
			s.candidatePool = candidates
		}
	}
}

// WithLogger attaches a diagnostic log. Nil is fine; warnings are dropped.
func WithLogger(log *logging.Logger) Option {
	return func(s *Service) {
		s.log = log
	}
}

func NewService(db *sql.DB, opts ...Option) *Service {
	s := &Service{
		db:            db,
		saves:         storage.NewSaveRepo(db),
		reviews:       storage.NewReviewRepo(db),
		saveName:      storage.MainSaveName,
		rng:           rand.New(rand.NewSource(time.Now().UnixNano())),
		offerPool:     game.OfferPoolSize,
		candidatePool: game.CandidatePoolSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.projects = game.NewProjectFactory(s.rng)
	s.staff = game.NewStaffFactory(s.rng)
	return s
}

func (s *Service) SaveRepo() *storage.SaveRepo     { return s.saves }
func (s *Service) ReviewRepo() *storage.ReviewRepo { return s.reviews }
func (s *Service) SaveName() string                { return s.saveName }

// NewGame starts a fresh save in the slot, refusing to clobber an existing
// one unless overwrite is set.
func (s *Service) NewGame(ctx context.Context, overwrite bool) (game.GameState, error) {
	existing, err := s.saves.Get(ctx, s.saveName)
	if err != nil {
		return game.GameState{}, err
	}
	if existing != nil && !overwrite {
		return game.GameState{}, fmt.Errorf("save %q already exists (day %d); use --force to overwrite", s.saveName, existing.Day)
	}

	state := game.NewGameState()
	state = s.projects.RefillOffers(state, s.offerPool)
	state = s.staff.RefillCandidates(state, s.candidatePool)

	if err := s.store(ctx, state); err != nil {
		return game.GameState{}, err
	}
	return state, nil
}

// Snapshot loads the current save.
func (s *Service) Snapshot(ctx context.Context) (game.GameState, error) {
	return s.load(ctx)
}

func (s *Service) load(ctx context.Context) (game.GameState, error) {
	save, err := s.saves.Get(ctx, s.saveName)
	if err != nil {
		return game.GameState{}, err
	}
	if save == nil {
		return game.GameState{}, fmt.Errorf("no save named %q; run 'sl new' first", s.saveName)
	}
	var state game.GameState
	if err := json.Unmarshal(save.Data, &state); err != nil {
		return game.GameState{}, fmt.Errorf("decode save %q: %w", s.saveName, err)
	}
	return state, nil
}

func (s *Service) store(ctx context.Context, state game.GameState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode save %q: %w", s.saveName, err)
	}
	return s.saves.Put(ctx, s.saveName, data, state.CurrentDay)
}

// storeTx writes the snapshot inside an existing transaction.
func (s *Service) storeTx(ctx context.Context, tx *sql.Tx, state game.GameState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode save %q: %w", s.saveName, err)
	}
	return s.saves.PutTx(ctx, tx, s.saveName, data, state.CurrentDay)
}

func (s *Service) warn(warnings []string) {
	for _, w := range warnings {
		s.log.Printf("warn: %s", w)
	}
}
