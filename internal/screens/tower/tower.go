// Package tower is the apprentice tower: equip owned cosmetics, change
// the avatar's race and magic tone, and admire earned trophies.
package tower

import (
	"context"
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

type tab int

const (
	tabWardrobe tab = iota
	tabAvatar
	tabTrophies
)

var tabNames = []string{"Wardrobe", "Avatar", "Trophies"}

var races = []struct {
	ID    state.Race
	Name  string
	Emoji string
}{
	{state.RaceHuman, "Human", "🧒"},
	{state.RaceElf, "Elf", "🧝"},
	{state.RaceGoblin, "Goblin", "👺"},
}

// Magic tones mirror the hue filters the avatar can wear.
var tones = []struct {
	ID   string
	Name string
}{
	{"none", "Natural"},
	{"90deg", "Forest"},
	{"180deg", "Ice"},
	{"270deg", "Void"},
}

// savedMsg reports the async persist after an equip or avatar change.
type savedMsg struct {
	Err error
}

// TowerScreen hosts the wardrobe, avatar and trophies tabs.
type TowerScreen struct {
	gs     *state.GameState
	saves  store.SaveRepo
	player audio.Player

	active tab
	cursor int
	notice string
}

var _ screen.Screen = (*TowerScreen)(nil)
var _ screen.KeyHintProvider = (*TowerScreen)(nil)

// New creates the tower over the loaded game state.
func New(gs *state.GameState, saves store.SaveRepo, player audio.Player) *TowerScreen {
	return &TowerScreen{gs: gs, saves: saves, player: player}
}

func (t *TowerScreen) Init() tea.Cmd {
	return nil
}

func (t *TowerScreen) Title() string {
	return "Apprentice Tower"
}

func (t *TowerScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Tab", Description: "Section"},
		{Key: "↑↓", Description: "Navigate"},
	}
	switch t.active {
	case tabWardrobe:
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Equip"})
	case tabAvatar:
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Choose"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

// ownedItems returns the wardrobe list: starters plus purchases.
func (t *TowerScreen) ownedItems() []worlds.StoreItem {
	var items []worlds.StoreItem
	for _, item := range worlds.StoreItems {
		if item.Cost == 0 || t.gs.HasItem(item.ID) {
			items = append(items, item)
		}
	}
	return items
}

// avatarRows is the Avatar tab length: races then tones.
func (t *TowerScreen) avatarRows() int {
	return len(races) + len(tones)
}

func (t *TowerScreen) rowCount() int {
	switch t.active {
	case tabWardrobe:
		return len(t.ownedItems())
	case tabAvatar:
		return t.avatarRows()
	default:
		return len(worlds.Achievements)
	}
}

func (t *TowerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case savedMsg:
		if msg.Err != nil {
			t.notice = "Could not save: " + msg.Err.Error()
		}
		return t, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "tab":
			t.active = (t.active + 1) % 3
			t.cursor = 0
			t.notice = ""
		case "shift+tab":
			t.active = (t.active + 2) % 3
			t.cursor = 0
			t.notice = ""
		case "up", "k":
			if t.cursor > 0 {
				t.cursor--
			}
		case "down", "j":
			if t.cursor < t.rowCount()-1 {
				t.cursor++
			}
		case "enter", " ":
			return t, t.selectRow()
		case "esc", "q":
			return t, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return t, nil
}

func (t *TowerScreen) selectRow() tea.Cmd {
	switch t.active {
	case tabWardrobe:
		items := t.ownedItems()
		if t.cursor >= len(items) {
			return nil
		}
		if err := progression.Equip(t.gs, items[t.cursor].ID); err != nil {
			t.player.PlayEffect(audio.EffectError)
			t.notice = err.Error()
			return nil
		}
		t.player.PlayEffect(audio.EffectClick)
		t.notice = ""
		return t.save()

	case tabAvatar:
		if t.cursor < len(races) {
			r := races[t.cursor]
			progression.UpdateAvatar(t.gs, r.ID, t.gs.Avatar.SkinColor)
		} else {
			tone := tones[t.cursor-len(races)]
			progression.UpdateAvatar(t.gs, t.gs.Avatar.Race, tone.ID)
		}
		t.player.PlayEffect(audio.EffectClick)
		return t.save()
	}
	return nil
}

func (t *TowerScreen) save() tea.Cmd {
	gs := t.gs
	saves := t.saves
	return func() tea.Msg {
		return savedMsg{Err: saves.Save(context.Background(), gs)}
	}
}

func (t *TowerScreen) View(width, height int) string {
	var b strings.Builder

	// Tab bar.
	var tabsLine []string
	for i, name := range tabNames {
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		if tab(i) == t.active {
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Underline(true)
		}
		tabsLine = append(tabsLine, style.Render(name))
	}
	b.WriteString(centered(width, strings.Join(tabsLine, "    ")))
	b.WriteString("\n\n")

	switch t.active {
	case tabWardrobe:
		b.WriteString(t.viewWardrobe(width))
	case tabAvatar:
		b.WriteString(t.viewAvatar(width))
	case tabTrophies:
		b.WriteString(t.viewTrophies(width))
	}

	if t.notice != "" {
		b.WriteString("\n")
		b.WriteString(centered(width, theme.Hint.Render(t.notice)))
	}
	return b.String()
}

func (t *TowerScreen) viewWardrobe(width int) string {
	var b strings.Builder
	var lastType worlds.ItemType
	for i, item := range t.ownedItems() {
		if item.Type != lastType {
			lastType = item.Type
			b.WriteString(lipgloss.NewStyle().
				Foreground(theme.Secondary).
				Bold(true).
				Render("  " + strings.ToUpper(string(item.Type)+"s")))
			b.WriteString("\n")
		}

		cursor := "  "
		if i == t.cursor {
			cursor = "▸ "
		}
		mark := ""
		if t.equipped(item) {
			mark = theme.Correct.Render("  ● equipped")
		}
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == t.cursor {
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(fmt.Sprintf("    %s%s %s%s\n", cursor, item.Icon, style.Render(item.Name), mark))
	}
	return b.String()
}

func (t *TowerScreen) equipped(item worlds.StoreItem) bool {
	eq := t.gs.Equipped
	switch item.Type {
	case worlds.ItemHat:
		return eq.Hat == item.ID
	case worlds.ItemWand:
		return eq.Wand == item.ID
	case worlds.ItemOutfit:
		return eq.Outfit == item.ID
	case worlds.ItemPet:
		return eq.Pet == item.ID
	case worlds.ItemFurniture:
		for _, id := range eq.Furniture {
			if id == item.ID {
				return true
			}
		}
	}
	return false
}

func (t *TowerScreen) viewAvatar(width int) string {
	var b strings.Builder

	current := races[0]
	for _, r := range races {
		if r.ID == t.gs.Avatar.Race {
			current = r
		}
	}
	b.WriteString(centered(width, lipgloss.NewStyle().Bold(true).Render(current.Emoji+"  "+current.Name)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("  RACE"))
	b.WriteString("\n")
	for i, r := range races {
		b.WriteString(t.avatarRow(i, fmt.Sprintf("%s %s", r.Emoji, r.Name), r.ID == t.gs.Avatar.Race))
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("  MAGIC TONE"))
	b.WriteString("\n")
	for i, tone := range tones {
		b.WriteString(t.avatarRow(len(races)+i, tone.Name, tone.ID == t.gs.Avatar.SkinColor))
	}
	return b.String()
}

func (t *TowerScreen) avatarRow(idx int, label string, active bool) string {
	cursor := "  "
	if idx == t.cursor {
		cursor = "▸ "
	}
	mark := ""
	if active {
		mark = theme.Correct.Render("  ●")
	}
	style := lipgloss.NewStyle().Foreground(theme.Text)
	if idx == t.cursor {
		style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	}
	return fmt.Sprintf("    %s%s%s\n", cursor, style.Render(label), mark)
}

func (t *TowerScreen) viewTrophies(width int) string {
	var b strings.Builder
	for i, ach := range worlds.Achievements {
		cursor := "  "
		if i == t.cursor {
			cursor = "▸ "
		}
		if t.gs.HasAchievement(ach.ID) {
			b.WriteString(fmt.Sprintf("    %s%s %s  %s\n",
				cursor, ach.Icon,
				lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(ach.Title),
				theme.Hint.Render(ach.Description)))
		} else {
			b.WriteString(fmt.Sprintf("    %s%s\n",
				cursor, theme.Locked.Render("🔒 "+ach.Title+" — "+ach.Description)))
		}
	}
	return b.String()
}

func centered(width int, text string) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
}
