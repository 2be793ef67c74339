// Package shop is the Magic Shop: spend crystals on cosmetics. Equip
// and avatar customization live in the apprentice tower.
package shop

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathquest/internal/audio"
	"github.com/abhisek/mathquest/internal/progression"
	"github.com/abhisek/mathquest/internal/router"
	"github.com/abhisek/mathquest/internal/screen"
	"github.com/abhisek/mathquest/internal/state"
	"github.com/abhisek/mathquest/internal/store"
	"github.com/abhisek/mathquest/internal/ui/layout"
	"github.com/abhisek/mathquest/internal/ui/theme"
	"github.com/abhisek/mathquest/internal/worlds"
)

// savedMsg reports the async persist after a purchase.
type savedMsg struct {
	Err error
}

// ShopScreen lists the store catalog grouped by slot.
type ShopScreen struct {
	gs     *state.GameState
	saves  store.SaveRepo
	player audio.Player

	cursor int
	notice string
	toast  string
}

var _ screen.Screen = (*ShopScreen)(nil)
var _ screen.KeyHintProvider = (*ShopScreen)(nil)

// New creates the shop over the loaded game state.
func New(gs *state.GameState, saves store.SaveRepo, player audio.Player) *ShopScreen {
	return &ShopScreen{gs: gs, saves: saves, player: player}
}

func (s *ShopScreen) Init() tea.Cmd {
	s.player.PlayTrack(audio.TrackShop)
	return nil
}

func (s *ShopScreen) Title() string {
	return "Magic Shop"
}

func (s *ShopScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Browse"},
		{Key: "Enter", Description: "Buy"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ShopScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case savedMsg:
		if msg.Err != nil {
			s.notice = "Could not save: " + msg.Err.Error()
		}
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
			}
			s.notice = ""
		case "down", "j":
			if s.cursor < len(worlds.StoreItems)-1 {
				s.cursor++
			}
			s.notice = ""
		case "enter", " ":
			return s, s.buy()
		case "esc", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

// buy attempts to purchase the item under the cursor.
func (s *ShopScreen) buy() tea.Cmd {
	item := worlds.StoreItems[s.cursor]

	unlocked, err := progression.Purchase(s.gs, item.ID)
	if err != nil {
		s.player.PlayEffect(audio.EffectError)
		switch {
		case errors.Is(err, progression.ErrAlreadyOwned):
			s.notice = "You already own that."
		case errors.Is(err, progression.ErrInsufficientCrystals):
			s.notice = fmt.Sprintf("Not enough crystals. You need %d more.", item.Cost-s.gs.Crystals)
		default:
			s.notice = err.Error()
		}
		return nil
	}

	s.player.PlayEffect(audio.EffectBuy)
	s.notice = fmt.Sprintf("%s is yours! Equip it in the tower.", item.Name)
	s.toast = ""
	for _, id := range unlocked {
		if ach := worlds.AchievementByID(id); ach != nil {
			s.toast = fmt.Sprintf("🏆  %s — %s", ach.Title, ach.Description)
			s.player.PlayEffect(audio.EffectUnlock)
		}
	}

	gs := s.gs
	saves := s.saves
	return func() tea.Msg {
		return savedMsg{Err: saves.Save(context.Background(), gs)}
	}
}

func (s *ShopScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(centered(width, theme.Crystals.Render(
		fmt.Sprintf("Your crystals: ◆ %d", s.gs.Crystals))))
	b.WriteString("\n\n")

	var lastType worlds.ItemType
	for i, item := range worlds.StoreItems {
		if item.Type != lastType {
			lastType = item.Type
			b.WriteString(lipgloss.NewStyle().
				Foreground(theme.Secondary).
				Bold(true).
				Render("  " + strings.ToUpper(string(item.Type)+"s")))
			b.WriteString("\n")
		}
		b.WriteString(s.renderItemRow(item, i == s.cursor))
		b.WriteString("\n")
	}

	if s.notice != "" {
		b.WriteString("\n")
		b.WriteString(centered(width, theme.Hint.Render(s.notice)))
	}
	if s.toast != "" {
		b.WriteString("\n")
		b.WriteString(centered(width, lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true).
			Render(s.toast)))
	}

	return b.String()
}

func (s *ShopScreen) renderItemRow(item worlds.StoreItem, selected bool) string {
	cursor := "  "
	if selected {
		cursor = "▸ "
	}

	var price string
	switch {
	case s.gs.HasItem(item.ID):
		price = theme.Correct.Render("owned")
	case item.Cost == 0:
		price = theme.Hint.Render("free")
	case item.Cost > s.gs.Crystals:
		price = theme.Locked.Render(fmt.Sprintf("◆ %d", item.Cost))
	default:
		price = theme.Crystals.Render(fmt.Sprintf("◆ %d", item.Cost))
	}

	style := lipgloss.NewStyle().Foreground(theme.Text)
	if selected {
		style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	}

	name := fmt.Sprintf("%-20s", item.Name)
	return fmt.Sprintf("    %s%s %s %s  %s",
		cursor, item.Icon, style.Render(name), price, theme.Hint.Render(item.Description))
}

func centered(width int, text string) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
}
