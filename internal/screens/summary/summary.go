// Package summary shows the rewards from one finished level: stars,
// crystals, frontier unlock, grimoire page and achievement toasts.
package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathquest/internal/mathgen"
	"github.com/abhisek/mathquest/internal/progression"
	"github.com/abhisek/mathquest/internal/router"
	"github.com/abhisek/mathquest/internal/screen"
	"github.com/abhisek/mathquest/internal/state"
	"github.com/abhisek/mathquest/internal/ui/layout"
	"github.com/abhisek/mathquest/internal/ui/theme"
	"github.com/abhisek/mathquest/internal/worlds"
)

// SummaryScreen displays the reward summary for a completed level.
type SummaryScreen struct {
	gs         *state.GameState
	cfg        worlds.Config
	difficulty mathgen.Difficulty
	sum        progression.Summary
	saveErr    error
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates the summary screen for one completion.
func New(gs *state.GameState, cfg worlds.Config, difficulty mathgen.Difficulty, sum progression.Summary, saveErr error) *SummaryScreen {
	return &SummaryScreen{
		gs:         gs,
		cfg:        cfg,
		difficulty: difficulty,
		sum:        sum,
		saveErr:    saveErr,
	}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Level Complete"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "World Map"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	var b strings.Builder

	title := fmt.Sprintf("%s conquered!", s.cfg.Title)
	if !s.sum.Passed {
		title = fmt.Sprintf("%s resists... for now", s.cfg.Title)
	}
	b.WriteString("\n")
	b.WriteString(centered(width, lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(title)))
	b.WriteString("\n\n")

	rating := min(max(s.sum.Stars, 0), 3)
	stars := strings.Repeat("★", rating) + strings.Repeat("☆", 3-rating)
	b.WriteString(centered(width, theme.Stars.Render(stars)))
	b.WriteString("\n\n")

	b.WriteString(centered(width, theme.Crystals.Render(
		fmt.Sprintf("◆ +%d crystals", s.sum.CrystalsEarned))))
	b.WriteString("\n")
	b.WriteString(centered(width, theme.Hint.Render(
		fmt.Sprintf("Balance: %d", s.gs.Crystals))))
	b.WriteString("\n")

	if s.sum.UnlockedWorld {
		b.WriteString("\n")
		b.WriteString(centered(width, lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true).
			Render("🗺  A new realm appears on the map!")))
	}

	if s.sum.NewGrimoirePage != "" {
		b.WriteString("\n")
		line := "📖  New grimoire page!"
		for _, p := range worlds.GrimoirePages {
			if p.ID == s.sum.NewGrimoirePage {
				line = fmt.Sprintf("📖  New grimoire page: %s", p.Title)
				break
			}
		}
		b.WriteString(centered(width, lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Bold(true).
			Render(line)))
	}

	for _, id := range s.sum.NewAchievements {
		ach := worlds.AchievementByID(id)
		if ach == nil {
			continue
		}
		b.WriteString("\n")
		b.WriteString(centered(width, lipgloss.NewStyle().
			Foreground(theme.Accent).
			Render(fmt.Sprintf("🏆  %s — %s", ach.Title, ach.Description))))
	}

	if s.saveErr != nil {
		b.WriteString("\n\n")
		b.WriteString(centered(width, theme.Incorrect.Render(
			"Could not save your progress: "+s.saveErr.Error())))
	}

	b.WriteString("\n\n")
	b.WriteString(centered(width, theme.Hint.Render("Press Enter to return to the map")))

	return b.String()
}

func centered(width int, text string) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
}
