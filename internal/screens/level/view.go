package level

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathquest/internal/mathgen"
	sess "github.com/abhisek/mathquest/internal/session"
	"github.com/abhisek/mathquest/internal/ui/components"
	"github.com/abhisek/mathquest/internal/ui/theme"
	"github.com/abhisek/mathquest/internal/worlds"
)

func (s *LevelScreen) View(width, height int) string {
	switch {
	case s.saving:
		return centered(width, theme.Hint.Render("\n\n  Tallying your rewards..."))
	case s.showingQuit:
		return renderQuitConfirm(width)
	case s.runner.Phase() == sess.PhaseIntro:
		return s.renderIntro(width)
	case s.showingFeedback:
		return s.renderFeedback(width)
	default:
		return s.renderQuestion(width)
	}
}

func (s *LevelScreen) renderIntro(width int) string {
	g := s.cfg.Guardian

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centered(width, lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(s.cfg.Title)))
	b.WriteString("\n\n")
	b.WriteString(centered(width, theme.Body.Render(s.cfg.Intro)))
	b.WriteString("\n\n")
	b.WriteString(centered(width, lipgloss.NewStyle().
		Foreground(theme.Accent).
		Bold(true).
		Render(fmt.Sprintf("%s  %s", g.Avatar, g.Name))))
	b.WriteString("\n")
	b.WriteString(centered(width, theme.Hint.Render(fmt.Sprintf("“%s”", g.Taunt))))
	b.WriteString("\n\n")
	b.WriteString(centered(width, theme.Hint.Render("Press Enter to begin")))
	return b.String()
}

func (s *LevelScreen) renderQuestion(width int) string {
	q := s.runner.Current()

	var b strings.Builder

	// Progress line: question position, score, streak.
	info := fmt.Sprintf("Question %d/%d    Score %d",
		s.runner.Index()+1, worlds.QuestionsPerLevel, s.runner.Score())
	if streak := s.runner.Streak(); streak > 2 {
		info += fmt.Sprintf("    🔥 %d streak", streak)
	}
	b.WriteString("  " + theme.Hint.Render(info))
	b.WriteString("\n")
	bar := components.NewProgressBar("", float64(s.runner.Index())/float64(worlds.QuestionsPerLevel), false, max(width-4, 10))
	b.WriteString("  " + bar.View())
	b.WriteString("\n\n")

	if s.runner.BossReached() {
		banner := fmt.Sprintf("⚔  BOSS  %s %s  ⚔", s.cfg.Guardian.Avatar, s.cfg.Guardian.Name)
		b.WriteString(centered(width, lipgloss.NewStyle().
			Foreground(theme.Error).
			Bold(true).
			Render(banner)))
		b.WriteString("\n\n")
	}

	b.WriteString(centered(width, lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render(q.Text)))
	b.WriteString("\n\n")

	if q.Visual != nil {
		b.WriteString(centered(width, renderVisual(q.Visual)))
		b.WriteString("\n\n")
	}

	if s.mcActive {
		b.WriteString(s.renderOptions(width, q))
	} else {
		b.WriteString(centered(width, "Answer: "+s.input.View()))
	}

	if s.runner.Attempts() > 0 {
		b.WriteString("\n\n")
		b.WriteString(centered(width, theme.Incorrect.Render("Not quite. Try again!")))
	}

	if s.hintPending {
		b.WriteString("\n")
		b.WriteString(centered(width, theme.Hint.Render("✨ Sparky is thinking...")))
	} else if s.hint != "" {
		b.WriteString("\n")
		b.WriteString(centered(width, lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Render("✨ Sparky: "+s.hint)))
	}

	return b.String()
}

func (s *LevelScreen) renderOptions(width int, q mathgen.Question) string {
	var b strings.Builder
	for i, opt := range q.Options {
		prefix := "  "
		if i == s.mcSelected {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%d) %s", prefix, i+1, opt)
		if i == s.mcSelected {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line))
		} else {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(line))
		}
		b.WriteString("\n")
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, b.String())
}

func (s *LevelScreen) renderFeedback(width int) string {
	var b strings.Builder
	b.WriteString("\n\n")
	if s.lastCorrect {
		b.WriteString(centered(width, theme.Correct.Render("Correct! ✨")))
	} else {
		b.WriteString(centered(width, theme.Incorrect.Render("Not quite. Give it another try!")))
	}
	b.WriteString("\n\n")
	b.WriteString(centered(width, theme.Hint.Render("Press any key to continue...")))
	return b.String()
}

func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(centered(width, lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render("Leave this level?")))
	b.WriteString("\n")
	b.WriteString(centered(width, theme.Hint.Render("Progress in this level is lost, your crystals are safe.")))
	b.WriteString("\n\n")
	b.WriteString(centered(width, theme.Correct.Render("[Y] Yes, leave")))
	b.WriteString("\n")
	b.WriteString(centered(width, lipgloss.NewStyle().Foreground(theme.Primary).Render("[N] No, keep going")))
	return b.String()
}

// renderVisual draws the shape or clock face a question carries.
func renderVisual(v *mathgen.Visual) string {
	switch v.Kind {
	case mathgen.VisualSquare:
		return strings.Join([]string{
			"┌──────┐",
			"│      │",
			"│      │",
			"└──────┘",
		}, "\n")
	case mathgen.VisualRectangle:
		return strings.Join([]string{
			"┌────────────┐",
			"│            │",
			"└────────────┘",
		}, "\n")
	case mathgen.VisualTriangle:
		return strings.Join([]string{
			"    ▲    ",
			"   ╱ ╲   ",
			"  ╱   ╲  ",
			" ╱─────╲ ",
		}, "\n")
	case mathgen.VisualCircle:
		return strings.Join([]string{
			"  ╭───╮  ",
			" │     │ ",
			"  ╰───╯  ",
		}, "\n")
	case mathgen.VisualClock:
		return renderClock(v.Hour, v.Minute)
	}
	return ""
}

// renderClock draws a small analog face with the hands as compass
// directions, coarse but readable at terminal resolution.
func renderClock(hour, minute int) string {
	return strings.Join([]string{
		"   ╭──12──╮   ",
		"  9    ●    3 ",
		"   ╰───6──╯   ",
		fmt.Sprintf("  hour ➜ %s  minute ➜ %s", handLabel(hour*5%60), handLabel(minute)),
	}, "\n")
}

// handLabel names the dial position a hand points at.
func handLabel(minutePos int) string {
	mark := (minutePos + 2) / 5 % 12
	if mark == 0 {
		mark = 12
	}
	return fmt.Sprintf("%d", mark)
}

func centered(width int, text string) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
}
