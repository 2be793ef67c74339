// Package app assembles the game: storage, the saved state, the
// optional LLM companion and the screen router, wrapped in the root
// Bubble Tea model.
package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathquest/internal/audio"
	"github.com/abhisek/mathquest/internal/companion"
	"github.com/abhisek/mathquest/internal/llm"
	"github.com/abhisek/mathquest/internal/router"
	"github.com/abhisek/mathquest/internal/screen"
	"github.com/abhisek/mathquest/internal/screens/worldmap"
	"github.com/abhisek/mathquest/internal/state"
	"github.com/abhisek/mathquest/internal/store"
	"github.com/abhisek/mathquest/internal/ui/layout"
)

// Model is the root Bubble Tea model.
type Model struct {
	router *router.Router
	gs     *state.GameState
	width  int
	height int
}

func newModel(gs *state.GameState, saves store.SaveRepo, sparky *companion.Sparky, player audio.Player) Model {
	return Model{
		router: router.New(worldmap.New(gs, saves, sparky, player)),
		gs:     gs,
	}
}

func (m Model) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.gs.Crystals, m.gs.Score, m.width)

	footerHints := []layout.KeyHint{
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if provider, ok := active.(screen.KeyHintProvider); ok {
		if hints := provider.KeyHints(); len(hints) > 0 {
			footerHints = append(hints, footerHints...)
		}
	}
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run opens the store at dbPath, loads the save and starts the game.
func Run(ctx context.Context, dbPath string) error {
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer st.Close()

	saves := st.SaveRepo()
	gs, err := saves.Load(ctx)
	if err != nil {
		return fmt.Errorf("loading save: %w", err)
	}

	// The companion is optional: without an API key Sparky falls back
	// to canned lines and the internal question generator.
	var sparky *companion.Sparky
	if cfg, ok := llm.DiscoverConfig(); ok {
		provider, perr := llm.NewProvider(ctx, cfg)
		if perr != nil {
			fmt.Fprintf(os.Stderr, "warning: companion disabled: %v\n", perr)
		} else {
			sparky = companion.New(provider)
		}
	}

	p := tea.NewProgram(newModel(gs, saves, sparky, audio.NopPlayer{}))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}
