package state

import (
	"testing"

	"github.com/abhisek/mathquest/internal/mathgen"
	"github.com/abhisek/mathquest/internal/worlds"
)

func TestNewDefaults(t *testing.T) {
	s := New()

	if s.UnlockedLevelIndex != 0 {
		t.Errorf("UnlockedLevelIndex = %d, want 0", s.UnlockedLevelIndex)
	}
	if s.Crystals != 0 || s.Score != 0 {
		t.Errorf("fresh state has score %d, crystals %d", s.Score, s.Crystals)
	}
	for _, id := range []string{"hat_novice", "wand_wood", "outfit_novice"} {
		if !s.HasItem(id) {
			t.Errorf("starter item %q not in inventory", id)
		}
	}
	if s.Equipped.Hat != "hat_novice" || s.Equipped.Wand != "wand_wood" || s.Equipped.Outfit != "outfit_novice" {
		t.Errorf("starter items not equipped: %+v", s.Equipped)
	}
	if s.Equipped.Pet != "" {
		t.Errorf("fresh state has pet %q equipped", s.Equipped.Pet)
	}
	if s.Avatar.Race != RaceHuman {
		t.Errorf("default race = %q", s.Avatar.Race)
	}
}

func TestWorldUnlocked(t *testing.T) {
	s := New()
	if !s.WorldUnlocked(0) {
		t.Error("first world must start unlocked")
	}
	if s.WorldUnlocked(1) {
		t.Error("second world must start locked")
	}
	s.UnlockedLevelIndex = 3
	for ord := 0; ord <= 3; ord++ {
		if !s.WorldUnlocked(ord) {
			t.Errorf("ordinal %d should be unlocked at index 3", ord)
		}
	}
}

func TestHardUnlocked(t *testing.T) {
	s := New()
	if s.HardUnlocked(worlds.AddSub) {
		t.Error("hard must start locked")
	}

	s.LevelProgress[worlds.AddSub] = LevelProgress{
		Completed:             true,
		Stars:                 2,
		CompletedDifficulties: []mathgen.Difficulty{mathgen.Normal},
	}
	if !s.HardUnlocked(worlds.AddSub) {
		t.Error("hard should unlock after a normal pass")
	}

	// Saves from before difficulty tracking only carry stars.
	s.LevelProgress[worlds.Mult] = LevelProgress{Completed: true, Stars: 1}
	if !s.HardUnlocked(worlds.Mult) {
		t.Error("hard should unlock for legacy progress with stars")
	}

	// Passing only easy does not unlock hard.
	s.LevelProgress[worlds.Div] = LevelProgress{
		Completed:             true,
		CompletedDifficulties: []mathgen.Difficulty{mathgen.Easy},
	}
	if s.HardUnlocked(worlds.Div) {
		t.Error("an easy-only pass must not unlock hard")
	}
}

func TestProgressZeroValueForUnplayedWorld(t *testing.T) {
	s := New()
	p := s.Progress(worlds.Geo)
	if p.Completed || p.Stars != 0 || len(p.CompletedDifficulties) != 0 {
		t.Errorf("unplayed world progress = %+v", p)
	}
}

func TestStarRatingClamps(t *testing.T) {
	tests := []struct {
		stars int
		want  int
	}{
		{-2, 0},
		{0, 0},
		{2, 2},
		{3, 3},
		{7, 3},
	}
	for _, tt := range tests {
		p := LevelProgress{Stars: tt.stars}
		if got := p.StarRating(); got != tt.want {
			t.Errorf("StarRating() for %d stars = %d, want %d", tt.stars, got, tt.want)
		}
	}
}

func TestSanitizeClampsForeignSave(t *testing.T) {
	s := &GameState{
		UnlockedLevelIndex: 99,
		Score:              -4,
		Crystals:           -50,
		LevelProgress: map[worlds.ID]LevelProgress{
			worlds.Numbers: {Stars: 7, Completed: true},
			worlds.AddSub:  {Stars: -1},
		},
	}

	s.Sanitize()

	if got := s.LevelProgress[worlds.Numbers].Stars; got != 3 {
		t.Errorf("stars above the cap = %d after sanitize, want 3", got)
	}
	if got := s.LevelProgress[worlds.AddSub].Stars; got != 0 {
		t.Errorf("negative stars = %d after sanitize, want 0", got)
	}
	if s.Crystals != 0 || s.Score != 0 {
		t.Errorf("negative totals survived sanitize: score %d, crystals %d", s.Score, s.Crystals)
	}
	if s.UnlockedLevelIndex != worlds.Count()-1 {
		t.Errorf("unlock index = %d, want %d", s.UnlockedLevelIndex, worlds.Count()-1)
	}
}

func TestSanitizeInitializesProgressMap(t *testing.T) {
	s := &GameState{}
	s.Sanitize()
	if s.LevelProgress == nil {
		t.Fatal("progress map still nil after sanitize")
	}
}
