// Package grimoire shows the lore pages earned by conquering worlds.
// Locked pages appear as silhouettes.
package grimoire

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathquest/internal/router"
	"github.com/abhisek/mathquest/internal/screen"
	"github.com/abhisek/mathquest/internal/state"
	"github.com/abhisek/mathquest/internal/ui/layout"
	"github.com/abhisek/mathquest/internal/ui/theme"
	"github.com/abhisek/mathquest/internal/worlds"
)

// GrimoireScreen is the unlocked-pages browser.
type GrimoireScreen struct {
	gs     *state.GameState
	cursor int
}

var _ screen.Screen = (*GrimoireScreen)(nil)
var _ screen.KeyHintProvider = (*GrimoireScreen)(nil)

// New creates the grimoire browser over the loaded game state.
func New(gs *state.GameState) *GrimoireScreen {
	return &GrimoireScreen{gs: gs}
}

func (g *GrimoireScreen) Init() tea.Cmd {
	return nil
}

func (g *GrimoireScreen) Title() string {
	return "Grimoire"
}

func (g *GrimoireScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Pages"},
		{Key: "Esc", Description: "Back"},
	}
}

func (g *GrimoireScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "up", "k":
			if g.cursor > 0 {
				g.cursor--
			}
		case "down", "j":
			if g.cursor < len(worlds.GrimoirePages)-1 {
				g.cursor++
			}
		case "esc", "q":
			return g, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return g, nil
}

func (g *GrimoireScreen) View(width, height int) string {
	var b strings.Builder

	unlockedCount := 0
	for _, p := range worlds.GrimoirePages {
		if g.gs.HasGrimoirePage(p.ID) {
			unlockedCount++
		}
	}

	b.WriteString(centered(width, lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(fmt.Sprintf("📖 The Grimoire  (%d/%d pages)", unlockedCount, len(worlds.GrimoirePages)))))
	b.WriteString("\n\n")

	for i, p := range worlds.GrimoirePages {
		b.WriteString(g.renderPageRow(p, i == g.cursor))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(g.renderOpenPage(width))

	return b.String()
}

func (g *GrimoireScreen) renderPageRow(p worlds.GrimoirePage, selected bool) string {
	cursor := "  "
	if selected {
		cursor = "▸ "
	}

	if !g.gs.HasGrimoirePage(p.ID) {
		return "  " + cursor + theme.Locked.Render("??? (conquer its realm to unlock)")
	}

	style := lipgloss.NewStyle().Foreground(theme.Text)
	if selected {
		style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	}
	return "  " + cursor + style.Render(p.Title)
}

// renderOpenPage shows the content of the page under the cursor.
func (g *GrimoireScreen) renderOpenPage(width int) string {
	p := worlds.GrimoirePages[g.cursor]
	if !g.gs.HasGrimoirePage(p.ID) {
		return centered(width, theme.Hint.Render("The ink on this page is still invisible..."))
	}

	card := theme.Card.Width(minInt(width-8, 64)).Render(
		lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(p.Title) +
			"\n\n" + theme.Body.Render(p.Content) +
			"\n\n" + theme.Hint.Render(p.Summary))
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, card)
}

func centered(width int, text string) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
