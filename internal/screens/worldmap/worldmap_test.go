package worldmap

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathquest/internal/audio"
	"github.com/abhisek/mathquest/internal/mathgen"
	"github.com/abhisek/mathquest/internal/router"
	"github.com/abhisek/mathquest/internal/screens/level"
	"github.com/abhisek/mathquest/internal/state"
	"github.com/abhisek/mathquest/internal/worlds"
)

type nopSaves struct{}

func (nopSaves) Load(context.Context) (*state.GameState, error) { return state.New(), nil }
func (nopSaves) Save(context.Context, *state.GameState) error   { return nil }
func (nopSaves) Reset(context.Context) error                    { return nil }

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func enter() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyEnter}
}

func newTestMap(gs *state.GameState) *WorldMapScreen {
	return New(gs, nopSaves{}, nil, audio.NopPlayer{})
}

func TestLockedWorldRejectsSelection(t *testing.T) {
	w := newTestMap(state.New())

	// Move to the second world, locked on a fresh save.
	w.Update(keyPress('j'))
	w.Update(enter())

	if w.picking {
		t.Error("difficulty picker opened for a locked world")
	}
}

func TestUnlockedWorldOpensDifficultyPicker(t *testing.T) {
	w := newTestMap(state.New())

	w.Update(enter())

	if !w.picking {
		t.Fatal("difficulty picker did not open for the first world")
	}
	if difficulties[w.diffCursor] != mathgen.Normal {
		t.Errorf("default difficulty = %v, want normal", difficulties[w.diffCursor])
	}
}

func TestHardLockedUntilNormalPassed(t *testing.T) {
	gs := state.New()
	w := newTestMap(gs)

	w.Update(enter())
	w.Update(keyPress('j')) // normal -> hard
	_, cmd := w.Update(enter())

	if cmd != nil {
		t.Error("hard difficulty started without a normal pass")
	}
	if !w.picking {
		t.Error("picker should stay open after a rejected selection")
	}
}

func TestHardSelectableAfterNormalPass(t *testing.T) {
	gs := state.New()
	gs.LevelProgress[worlds.Numbers] = state.LevelProgress{
		Stars:                 2,
		Completed:             true,
		CompletedDifficulties: []mathgen.Difficulty{mathgen.Normal},
	}
	w := newTestMap(gs)

	w.Update(enter())
	w.Update(keyPress('j'))
	_, cmd := w.Update(enter())

	if cmd == nil {
		t.Fatal("expected a push command for the level screen")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	if _, ok := msg.Screen.(*level.LevelScreen); !ok {
		t.Errorf("expected level screen, got %T", msg.Screen)
	}
}

func TestCursorStaysInBounds(t *testing.T) {
	w := newTestMap(state.New())

	w.Update(keyPress('k'))
	if w.cursor != 0 {
		t.Errorf("cursor moved above the first world: %d", w.cursor)
	}

	for i := 0; i < worlds.Count()+3; i++ {
		w.Update(keyPress('j'))
	}
	if w.cursor != worlds.Count()-1 {
		t.Errorf("cursor = %d, want %d", w.cursor, worlds.Count()-1)
	}
}

func TestViewMarksLockedWorlds(t *testing.T) {
	w := newTestMap(state.New())
	view := w.View(100, 30)

	if view == "" {
		t.Fatal("empty view")
	}
	// A fresh save shows exactly one unlocked realm.
	if got := countRune(view, '🔒'); got != worlds.Count()-1 {
		t.Errorf("locked markers = %d, want %d", got, worlds.Count()-1)
	}
}

func countRune(s string, r rune) int {
	n := 0
	for _, c := range s {
		if c == r {
			n++
		}
	}
	return n
}

func TestViewSurvivesOutOfRangeStars(t *testing.T) {
	gs := state.New()
	gs.LevelProgress[worlds.Numbers] = state.LevelProgress{Stars: 7, Completed: true}
	w := newTestMap(gs)

	view := w.View(100, 30)
	if !strings.Contains(view, "★★★") {
		t.Error("out-of-range stars should render as the full three-star meter")
	}
}
