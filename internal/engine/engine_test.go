package engine

import (
	"context"
	"path/filepath"
	"testing"

	"studioline/internal/game"
	"studioline/internal/storage"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := storage.Open(ctx, path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	return NewService(db, WithSeed(1))
}

// seedState writes an arbitrary snapshot into the service's save slot.
func seedState(t *testing.T, svc *Service, state game.GameState) {
	t.Helper()
	if err := svc.store(context.Background(), state); err != nil {
		t.Fatalf("seed state: %v", err)
	}
}

// benchProject is a tiny single-stage project that one tick finishes.
func benchProject() *game.Project {
	return &game.Project{
		ID:          "proj-t",
		Title:       "Test Session",
		Genre:       game.GenreRock,
		Difficulty:  1,
		LastWorkDay: -1,
		Stages: []game.ProjectStage{{
			Name:              "Tracking",
			Category:          game.StageRecording,
			WorkUnitsRequired: 1,
			FocusAreas: []game.FocusArea{
				{Name: "performance", Value: 100, CreativityWeight: 1, TechnicalWeight: 1},
			},
		}},
		RequiredSkills: map[game.Genre]int{game.GenreRock: 1},
		MatchRating:    game.MatchGood,
		PayoutBase:     500,
		RepGainBase:    5,
	}
}

func TestNewGameCreatesPools(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	state, err := svc.NewGame(ctx, false)
	if err != nil {
		t.Fatalf("new game: %v", err)
	}
	if state.CurrentDay != 1 {
		t.Fatalf("day = %d, want 1", state.CurrentDay)
	}
	if len(state.AvailableProjects) != game.OfferPoolSize {
		t.Fatalf("offers = %d, want %d", len(state.AvailableProjects), game.OfferPoolSize)
	}
	if len(state.OwnedEquipment) == 0 {
		t.Fatal("expected starter equipment")
	}

	// Second new game without --force must refuse.
	if _, err := svc.NewGame(ctx, false); err == nil {
		t.Fatal("expected overwrite refusal")
	}
	if _, err := svc.NewGame(ctx, true); err != nil {
		t.Fatalf("forced new game: %v", err)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	created, err := svc.NewGame(ctx, false)
	if err != nil {
		t.Fatalf("new game: %v", err)
	}

	loaded, err := svc.Snapshot(ctx)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if loaded.Money != created.Money || loaded.CurrentDay != created.CurrentDay {
		t.Fatalf("snapshot = day %d $%d, want day %d $%d",
			loaded.CurrentDay, loaded.Money, created.CurrentDay, created.Money)
	}
	if len(loaded.AvailableProjects) != len(created.AvailableProjects) {
		t.Fatalf("offers = %d, want %d", len(loaded.AvailableProjects), len(created.AvailableProjects))
	}
}

func TestSnapshotWithoutSave(t *testing.T) {
	svc := newTestService(t)
	if _, err := svc.Snapshot(context.Background()); err == nil {
		t.Fatal("expected missing-save error")
	}
}

func TestAcceptAndWorkFlow(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	if _, err := svc.NewGame(ctx, false); err != nil {
		t.Fatalf("new game: %v", err)
	}
	state, err := svc.Snapshot(ctx)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}

	accepted, err := svc.Accept(ctx, state.AvailableProjects[0].ID)
	if err != nil {
		t.Fatalf("accept: %v", err)
	}
	if accepted.ActiveProject == nil {
		t.Fatal("no active project after accept")
	}

	res, err := svc.Work(ctx, nil)
	if err != nil {
		t.Fatalf("work: %v", err)
	}
	if res.Outcome.Status != game.WorkApplied {
		t.Fatalf("work status = %v, want applied", res.Outcome.Status)
	}

	// Same day again: blocked, and the block must not touch the save.
	res2, err := svc.Work(ctx, nil)
	if err != nil {
		t.Fatalf("second work: %v", err)
	}
	if res2.Outcome.Status != game.WorkBlockedAlreadyWorked {
		t.Fatalf("second work status = %v, want blocked", res2.Outcome.Status)
	}
}

func TestWorkCompletionPersistsReview(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	state := game.NewGameState()
	state.ActiveProject = benchProject()
	state.Player.Attributes = game.Attributes{
		CreativeIntuition: 10, TechnicalAptitude: 10, FocusMastery: 10,
		BusinessAcumen: 1, Charisma: 1, Luck: 1,
	}
	seedState(t, svc, state)

	res, err := svc.Work(ctx, nil)
	if err != nil {
		t.Fatalf("work: %v", err)
	}
	if !res.Outcome.ProjectCompleted {
		t.Fatal("expected project completion")
	}
	if res.Outcome.Review == nil {
		t.Fatal("expected a review")
	}

	reviews, err := svc.History(ctx, 5)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(reviews) != 1 {
		t.Fatalf("history len = %d, want 1", len(reviews))
	}
	if reviews[0].ProjectID != "proj-t" {
		t.Fatalf("review project = %q", reviews[0].ProjectID)
	}
	if reviews[0].Payout != res.Outcome.Review.Payout {
		t.Fatalf("persisted payout %d != returned %d", reviews[0].Payout, res.Outcome.Review.Payout)
	}

	// The save and the review row committed together.
	loaded, err := svc.Snapshot(ctx)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if loaded.ActiveProject != nil {
		t.Fatal("active project still set after completion")
	}
	if len(loaded.CompletedProjects) != 1 {
		t.Fatalf("completed = %d, want 1", len(loaded.CompletedProjects))
	}
}

func TestSleepAdvancesDayAndRefills(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	if _, err := svc.NewGame(ctx, false); err != nil {
		t.Fatalf("new game: %v", err)
	}
	before, _ := svc.Snapshot(ctx)

	res, err := svc.Sleep(ctx)
	if err != nil {
		t.Fatalf("sleep: %v", err)
	}
	if res.State.CurrentDay != before.CurrentDay+1 {
		t.Fatalf("day = %d, want %d", res.State.CurrentDay, before.CurrentDay+1)
	}
	if len(res.State.AvailableProjects) != game.OfferPoolSize {
		t.Fatalf("offers = %d, want %d", len(res.State.AvailableProjects), game.OfferPoolSize)
	}
}

func TestHireGatedUntilMilestone(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	state := game.NewGameState()
	factory := game.NewStaffFactory(nil)
	state = factory.RefillCandidates(state, 1)
	seedState(t, svc, state)

	if _, err := svc.Hire(ctx, state.Candidates[0].ID); err == nil {
		t.Fatal("expected locked-feature error")
	}

	state.Player.Level = 2
	state, _ = game.ApplyMilestones(state)
	seedState(t, svc, state)

	next, err := svc.Hire(ctx, state.Candidates[0].ID)
	if err != nil {
		t.Fatalf("hire: %v", err)
	}
	if len(next.HiredStaff) != 1 {
		t.Fatalf("hired = %d, want 1", len(next.HiredStaff))
	}
}

func TestSetFocusPersists(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	state := game.NewGameState()
	state.ActiveProject = benchProject()
	seedState(t, svc, state)

	if _, err := svc.SetFocus(ctx, game.FocusAllocation{Performance: 60, SoundCapture: 25, Layering: 15}); err != nil {
		t.Fatalf("set focus: %v", err)
	}

	loaded, err := svc.Snapshot(ctx)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	total := 0
	for _, a := range loaded.ActiveProject.CurrentStage().FocusAreas {
		total += a.Value
	}
	if total != 100 {
		t.Fatalf("focus total = %d, want 100", total)
	}

	if _, err := svc.SetFocus(ctx, game.FocusAllocation{Performance: 90, SoundCapture: 20, Layering: 10}); err == nil {
		t.Fatal("expected invalid allocation error")
	}
}

func TestSuggestFocus(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	state := game.NewGameState()
	state.ActiveProject = benchProject()
	seedState(t, svc, state)

	alloc, err := svc.SuggestFocus(ctx)
	if err != nil {
		t.Fatalf("suggest focus: %v", err)
	}
	if alloc.Total() != 100 {
		t.Fatalf("suggestion total = %d, want 100", alloc.Total())
	}
}
