// Package state defines the durable game record. The progression engine
// and the cosmetic handlers are its only writers; everything else reads.
// The JSON field names are the save-format contract and must not change
// without bumping the save key version.
package state

import (
	"github.com/abhisek/mathquest/internal/mathgen"
	"github.com/abhisek/mathquest/internal/worlds"
)

// SaveKey names the durable record holding the full game state.
// Bump the version suffix on any breaking schema change.
const SaveKey = "mm_gamestate_v4"

// Race selects the avatar's base character.
type Race string

const (
	RaceHuman  Race = "human"
	RaceElf    Race = "elf"
	RaceGoblin Race = "goblin"
)

// LevelProgress is the per-world durable record. Stars only ever go up
// and CompletedDifficulties is append-only.
type LevelProgress struct {
	Stars                 int                  `json:"stars"`
	Completed             bool                 `json:"completed"`
	CompletedDifficulties []mathgen.Difficulty `json:"completedDifficulties"`
}

// StarRating returns Stars clamped to the displayable 0 to 3 range.
// Foreign saves may carry values the game never writes.
func (p LevelProgress) StarRating() int {
	switch {
	case p.Stars < 0:
		return 0
	case p.Stars > 3:
		return 3
	default:
		return p.Stars
	}
}

// HasDifficulty reports whether the world was ever passed at d.
func (p LevelProgress) HasDifficulty(d mathgen.Difficulty) bool {
	for _, have := range p.CompletedDifficulties {
		if have == d {
			return true
		}
	}
	return false
}

// Avatar is the player's cosmetic base look.
type Avatar struct {
	Race      Race   `json:"race"`
	SkinColor string `json:"skinColor"`
}

// Equipped tracks which owned item occupies each cosmetic slot.
// Empty string means the slot is empty.
type Equipped struct {
	Hat       string   `json:"hat"`
	Wand      string   `json:"wand"`
	Outfit    string   `json:"outfit"`
	Pet       string   `json:"pet"`
	Furniture []string `json:"furniture"`
}

// GameState is the full persisted record.
type GameState struct {
	// UnlockedLevelIndex is the highest reachable world ordinal.
	// Monotonically non-decreasing.
	UnlockedLevelIndex int `json:"unlockedLevelIndex"`

	// Score is the lifetime sum of per-session correct counts.
	Score int `json:"score"`

	// Crystals is the currency balance. Never negative.
	Crystals int `json:"crystals"`

	LevelProgress map[worlds.ID]LevelProgress `json:"levelProgress"`

	Inventory []string `json:"inventory"`
	Avatar    Avatar   `json:"avatar"`
	Equipped  Equipped `json:"equipped"`

	UnlockedGrimoirePages []string `json:"unlockedGrimoirePages"`
	UnlockedAchievements  []string `json:"unlockedAchievements"`
}

// New returns a default-initialized game state: first world unlocked,
// no currency, and the free starter cosmetics owned and equipped.
func New() *GameState {
	return &GameState{
		UnlockedLevelIndex: 0,
		Score:              0,
		Crystals:           0,
		LevelProgress:      map[worlds.ID]LevelProgress{},
		Inventory:          []string{"hat_novice", "wand_wood", "outfit_novice"},
		Avatar: Avatar{
			Race:      RaceHuman,
			SkinColor: "none",
		},
		Equipped: Equipped{
			Hat:       "hat_novice",
			Wand:      "wand_wood",
			Outfit:    "outfit_novice",
			Furniture: []string{},
		},
		UnlockedGrimoirePages: []string{},
		UnlockedAchievements:  []string{},
	}
}

// Sanitize pulls semantically corrupt values from a foreign or
// hand-edited save back into their documented ranges. Out-of-range
// values are clamped rather than the whole save being discarded.
func (s *GameState) Sanitize() {
	if s.LevelProgress == nil {
		s.LevelProgress = map[worlds.ID]LevelProgress{}
	}
	for id, p := range s.LevelProgress {
		p.Stars = p.StarRating()
		s.LevelProgress[id] = p
	}
	if s.Crystals < 0 {
		s.Crystals = 0
	}
	if s.Score < 0 {
		s.Score = 0
	}
	if s.UnlockedLevelIndex < 0 {
		s.UnlockedLevelIndex = 0
	}
	if last := worlds.Count() - 1; s.UnlockedLevelIndex > last {
		s.UnlockedLevelIndex = last
	}
}

// Progress returns the durable record for a world, zero-valued if the
// world has never been played.
func (s *GameState) Progress(id worlds.ID) LevelProgress {
	return s.LevelProgress[id]
}

// HasItem reports whether the player owns the given shop item.
func (s *GameState) HasItem(id string) bool {
	return contains(s.Inventory, id)
}

// HasAchievement reports whether the achievement is already unlocked.
func (s *GameState) HasAchievement(id string) bool {
	return contains(s.UnlockedAchievements, id)
}

// HasGrimoirePage reports whether the lore page is already unlocked.
func (s *GameState) HasGrimoirePage(id string) bool {
	return contains(s.UnlockedGrimoirePages, id)
}

// WorldUnlocked reports whether the world at the given ordinal is
// reachable from the map.
func (s *GameState) WorldUnlocked(ordinal int) bool {
	return ordinal <= s.UnlockedLevelIndex
}

// HardUnlocked reports whether hard mode is available for a world: the
// world must have been passed on normal at least once, or carry stars
// from a save predating difficulty tracking.
func (s *GameState) HardUnlocked(id worlds.ID) bool {
	p := s.Progress(id)
	return p.HasDifficulty(mathgen.Normal) || p.Stars > 0
}

func contains(vals []string, want string) bool {
	for _, v := range vals {
		if v == want {
			return true
		}
	}
	return false
}
