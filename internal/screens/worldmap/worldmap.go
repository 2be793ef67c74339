// Package worldmap is the root screen: the seven realms with their
// lock state and earned stars, plus entry points to the shop, the
// grimoire and the apprentice tower.
package worldmap

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathquest/internal/audio"
	"github.com/abhisek/mathquest/internal/companion"
	"github.com/abhisek/mathquest/internal/mathgen"
	"github.com/abhisek/mathquest/internal/router"
	"github.com/abhisek/mathquest/internal/screen"
	"github.com/abhisek/mathquest/internal/screens/grimoire"
	"github.com/abhisek/mathquest/internal/screens/level"
	"github.com/abhisek/mathquest/internal/screens/shop"
	"github.com/abhisek/mathquest/internal/screens/tower"
	"github.com/abhisek/mathquest/internal/state"
	"github.com/abhisek/mathquest/internal/store"
	"github.com/abhisek/mathquest/internal/ui/layout"
	"github.com/abhisek/mathquest/internal/ui/theme"
	"github.com/abhisek/mathquest/internal/worlds"
)

var difficulties = []mathgen.Difficulty{
	mathgen.Easy,
	mathgen.Normal,
	mathgen.Hard,
}

var difficultyLabels = map[mathgen.Difficulty]string{
	mathgen.Easy:   "Easy",
	mathgen.Normal: "Normal",
	mathgen.Hard:   "Hard",
}

// WorldMapScreen lets the player pick a world and difficulty.
type WorldMapScreen struct {
	gs     *state.GameState
	saves  store.SaveRepo
	sparky *companion.Sparky
	player audio.Player

	cursor     int
	picking    bool // difficulty selector open for the cursor world
	diffCursor int
}

var _ screen.Screen = (*WorldMapScreen)(nil)
var _ screen.KeyHintProvider = (*WorldMapScreen)(nil)

// New creates the world map over the loaded game state.
func New(gs *state.GameState, saves store.SaveRepo, sparky *companion.Sparky, player audio.Player) *WorldMapScreen {
	return &WorldMapScreen{
		gs:     gs,
		saves:  saves,
		sparky: sparky,
		player: player,
	}
}

func (w *WorldMapScreen) Init() tea.Cmd {
	w.player.PlayTrack(audio.TrackMap)
	return nil
}

func (w *WorldMapScreen) Title() string {
	return "World Map"
}

func (w *WorldMapScreen) KeyHints() []layout.KeyHint {
	if w.picking {
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Difficulty"},
			{Key: "Enter", Description: "Play"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "S", Description: "Shop"},
		{Key: "G", Description: "Grimoire"},
		{Key: "T", Description: "Tower"},
		{Key: "Q", Description: "Quit"},
	}
}

func (w *WorldMapScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return w, nil
	}
	key := kmsg.String()

	if w.picking {
		return w.updatePicking(key)
	}

	switch key {
	case "up", "k":
		if w.cursor > 0 {
			w.cursor--
		}
	case "down", "j":
		if w.cursor < worlds.Count()-1 {
			w.cursor++
		}
	case "enter", " ":
		cfg, err := worlds.ByOrdinal(w.cursor)
		if err != nil || !w.gs.WorldUnlocked(cfg.Ordinal) {
			w.player.PlayEffect(audio.EffectError)
			return w, nil
		}
		w.player.PlayEffect(audio.EffectClick)
		w.picking = true
		w.diffCursor = 1 // default to Normal
	case "s", "S":
		return w, push(shop.New(w.gs, w.saves, w.player))
	case "g", "G":
		return w, push(grimoire.New(w.gs))
	case "t", "T":
		return w, push(tower.New(w.gs, w.saves, w.player))
	case "q", "Q", "esc":
		return w, tea.Quit
	}
	return w, nil
}

func (w *WorldMapScreen) updatePicking(key string) (screen.Screen, tea.Cmd) {
	cfg, err := worlds.ByOrdinal(w.cursor)
	if err != nil {
		w.picking = false
		return w, nil
	}

	switch key {
	case "esc", "q":
		w.picking = false
	case "up", "k":
		if w.diffCursor > 0 {
			w.diffCursor--
		}
	case "down", "j":
		if w.diffCursor < len(difficulties)-1 {
			w.diffCursor++
		}
	case "enter", " ":
		d := difficulties[w.diffCursor]
		if d == mathgen.Hard && !w.gs.HardUnlocked(cfg.ID) {
			w.player.PlayEffect(audio.EffectError)
			return w, nil
		}
		w.picking = false
		w.player.PlayEffect(audio.EffectClick)
		return w, push(level.New(w.gs, w.saves, w.sparky, w.player, cfg.ID, d))
	}
	return w, nil
}

func push(s screen.Screen) tea.Cmd {
	return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
}

func (w *WorldMapScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Choose your realm"))
	b.WriteString("\n\n")

	for i := 0; i < worlds.Count(); i++ {
		cfg, err := worlds.ByOrdinal(i)
		if err != nil {
			continue
		}
		b.WriteString(w.renderWorldRow(cfg, i == w.cursor, width))
		b.WriteString("\n")
		if w.picking && i == w.cursor {
			b.WriteString(w.renderDifficultyPicker(cfg, width))
		}
	}

	return b.String()
}

func (w *WorldMapScreen) renderWorldRow(cfg worlds.Config, selected bool, width int) string {
	unlocked := w.gs.WorldUnlocked(cfg.Ordinal)
	prog := w.gs.Progress(cfg.ID)

	cursor := "  "
	if selected {
		cursor = "▸ "
	}

	rating := prog.StarRating()
	stars := strings.Repeat("★", rating) + strings.Repeat("☆", 3-rating)

	var nameStyle lipgloss.Style
	switch {
	case !unlocked:
		nameStyle = theme.Locked
	case selected:
		nameStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	default:
		nameStyle = lipgloss.NewStyle().Foreground(theme.Text)
	}

	name := fmt.Sprintf("%-24s", cfg.Title)
	desc := cfg.Description
	if !unlocked {
		desc = "Locked. Conquer the previous realm first."
	}

	line := fmt.Sprintf("  %s%s %s  %s  %s",
		cursor,
		lockIcon(unlocked),
		nameStyle.Render(name),
		theme.Stars.Render(stars),
		theme.Hint.Render(desc),
	)
	return line
}

func (w *WorldMapScreen) renderDifficultyPicker(cfg worlds.Config, width int) string {
	var b strings.Builder
	for i, d := range difficulties {
		label := difficultyLabels[d]
		locked := d == mathgen.Hard && !w.gs.HardUnlocked(cfg.ID)

		cursor := "   "
		if i == w.diffCursor {
			cursor = " ▸ "
		}

		var style lipgloss.Style
		switch {
		case locked:
			style = theme.Locked
		case i == w.diffCursor:
			style = lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
		default:
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		}

		suffix := ""
		if locked {
			suffix = "  (pass Normal first)"
		} else if w.gs.Progress(cfg.ID).HasDifficulty(d) {
			suffix = "  ✓"
		}

		b.WriteString("      " + cursor + style.Render(label+suffix))
		b.WriteString("\n")
	}
	return b.String()
}

func lockIcon(unlocked bool) string {
	if unlocked {
		return "◈"
	}
	return "🔒"
}
