package store

import (
	"context"
	"testing"

	"github.com/abhisek/mathquest/internal/mathgen"
	"github.com/abhisek/mathquest/internal/state"
	"github.com/abhisek/mathquest/internal/worlds"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestMigrationCreatesTable(t *testing.T) {
	s := openTestStore(t)

	var name string
	err := s.DB().QueryRow(
		"SELECT name FROM sqlite_master WHERE type='table' AND name='saves'",
	).Scan(&name)
	if err != nil {
		t.Fatalf("query sqlite_master: %v", err)
	}
	if name != "saves" {
		t.Errorf("table name = %q, want 'saves'", name)
	}
}

func TestLoadWithoutSaveReturnsDefaults(t *testing.T) {
	s := openTestStore(t)
	repo := s.SaveRepo()

	got, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("load (empty): %v", err)
	}
	if got.UnlockedLevelIndex != 0 || got.Crystals != 0 {
		t.Errorf("empty load returned non-default state: %+v", got)
	}
	if !got.HasItem("hat_novice") {
		t.Error("empty load missing starter inventory")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.SaveRepo()
	ctx := context.Background()

	gs := state.New()
	gs.Crystals = 250
	gs.Score = 42
	gs.UnlockedLevelIndex = 4
	gs.LevelProgress[worlds.AddSub] = state.LevelProgress{
		Stars:                 3,
		Completed:             true,
		CompletedDifficulties: []mathgen.Difficulty{mathgen.Normal, mathgen.Hard},
	}
	gs.UnlockedGrimoirePages = []string{"page_numbers", "page_addsub"}
	gs.UnlockedAchievements = []string{worlds.AchNoviceExplorer}

	if err := repo.Save(ctx, gs); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Crystals != 250 || got.Score != 42 || got.UnlockedLevelIndex != 4 {
		t.Errorf("loaded state = %+v", got)
	}
	p := got.Progress(worlds.AddSub)
	if p.Stars != 3 || !p.HasDifficulty(mathgen.Hard) {
		t.Errorf("loaded progress = %+v", p)
	}
	if len(got.UnlockedGrimoirePages) != 2 {
		t.Errorf("loaded pages = %v", got.UnlockedGrimoirePages)
	}
}

func TestSaveOverwrites(t *testing.T) {
	s := openTestStore(t)
	repo := s.SaveRepo()
	ctx := context.Background()

	gs := state.New()
	gs.Crystals = 10
	if err := repo.Save(ctx, gs); err != nil {
		t.Fatal(err)
	}
	gs.Crystals = 99
	if err := repo.Save(ctx, gs); err != nil {
		t.Fatal(err)
	}

	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if got.Crystals != 99 {
		t.Errorf("crystals = %d after overwrite, want 99", got.Crystals)
	}

	var count int
	if err := s.DB().QueryRow("SELECT COUNT(*) FROM saves").Scan(&count); err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("save rows = %d, want 1", count)
	}
}

func TestCorruptSaveFallsBackToDefaults(t *testing.T) {
	s := openTestStore(t)
	repo := s.SaveRepo()
	ctx := context.Background()

	_, err := s.DB().Exec("INSERT INTO saves (key, data) VALUES (?, ?)", state.SaveKey, "{not json")
	if err != nil {
		t.Fatal(err)
	}

	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load of corrupt save errored: %v", err)
	}
	if got.UnlockedLevelIndex != 0 || got.Score != 0 {
		t.Errorf("corrupt load returned %+v, want defaults", got)
	}
}

func TestReset(t *testing.T) {
	s := openTestStore(t)
	repo := s.SaveRepo()
	ctx := context.Background()

	gs := state.New()
	gs.Crystals = 500
	if err := repo.Save(ctx, gs); err != nil {
		t.Fatal(err)
	}
	if err := repo.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}

	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if got.Crystals != 0 {
		t.Errorf("crystals = %d after reset, want 0", got.Crystals)
	}
}

func TestLoadClampsOutOfRangeSave(t *testing.T) {
	s := openTestStore(t)
	repo := s.SaveRepo()
	ctx := context.Background()

	gs := state.New()
	gs.Crystals = -10
	gs.UnlockedLevelIndex = 42
	gs.LevelProgress[worlds.Numbers] = state.LevelProgress{Stars: 7, Completed: true}
	if err := repo.Save(ctx, gs); err != nil {
		t.Fatal(err)
	}

	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load of out-of-range save errored: %v", err)
	}
	if stars := got.LevelProgress[worlds.Numbers].Stars; stars != 3 {
		t.Errorf("stars = %d after load, want 3", stars)
	}
	if got.Crystals != 0 {
		t.Errorf("crystals = %d after load, want 0", got.Crystals)
	}
	if got.UnlockedLevelIndex != worlds.Count()-1 {
		t.Errorf("unlock index = %d, want %d", got.UnlockedLevelIndex, worlds.Count()-1)
	}
}
