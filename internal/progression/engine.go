// Package progression computes post-level rewards and mutates the
// durable game state: stars, crystals, unlock advancement, grimoire
// pages and achievements. All mutations for one completion are applied
// together before the caller persists.
package progression

import (
	"errors"
	"fmt"

	"github.com/abhisek/mathquest/internal/mathgen"
	"github.com/abhisek/mathquest/internal/state"
	"github.com/abhisek/mathquest/internal/worlds"
)

// PassScore is the fixed pass threshold. It is a design constant, not
// derived from the session length or the star bands.
const PassScore = 3

// speedsterLimit is the completion time under which the speed
// achievement fires, in seconds.
const speedsterLimit = 45

// collectorSize is the owned-item count that fires the collector
// achievement.
const collectorSize = 8

// Summary is what the completion screen shows for one finished level.
type Summary struct {
	Stars          int
	CrystalsEarned int
	Passed         bool

	// UnlockedWorld is set when this completion advanced the frontier.
	UnlockedWorld bool

	// NewGrimoirePage holds the freshly unlocked page id, empty if none.
	NewGrimoirePage string

	// NewAchievements lists achievement ids unlocked by this completion,
	// in evaluation order.
	NewAchievements []string
}

// Stars rates a final score: 3 for a perfect run, 2 within two of
// perfect, 1 otherwise.
func Stars(finalScore int) int {
	switch {
	case finalScore == worlds.QuestionsPerLevel:
		return 3
	case finalScore >= worlds.QuestionsPerLevel-2:
		return 2
	default:
		return 1
	}
}

// Crystals computes the currency reward for a star rating at a
// difficulty: a per-star base scaled by the difficulty multiplier,
// floored.
func Crystals(stars int, difficulty mathgen.Difficulty) int {
	base := 10
	switch stars {
	case 3:
		base = 50
	case 2:
		base = 30
	}
	switch difficulty {
	case mathgen.Easy:
		return base / 2
	case mathgen.Hard:
		return base * 2
	default:
		return base
	}
}

// ApplyCompletion applies one finished session to the game state and
// returns the reward summary. Stars and crystals are granted even below
// the pass threshold; only unlock advancement, grimoire pages and
// difficulty tracking are pass-gated.
func ApplyCompletion(s *state.GameState, world worlds.ID, difficulty mathgen.Difficulty, finalScore int, durationSeconds float64) Summary {
	cfg, err := worlds.ByID(world)
	if err != nil {
		return Summary{}
	}

	stars := Stars(finalScore)
	earned := Crystals(stars, difficulty)
	passed := finalScore >= PassScore

	sum := Summary{
		Stars:          stars,
		CrystalsEarned: earned,
		Passed:         passed,
	}

	s.Score += finalScore
	s.Crystals += earned

	// Only a pass on the frontier world advances the unlock index.
	if passed && cfg.Ordinal == s.UnlockedLevelIndex && s.UnlockedLevelIndex < worlds.Count()-1 {
		s.UnlockedLevelIndex++
		sum.UnlockedWorld = true
	}

	if passed {
		if page := worlds.PageForWorld(world); page != "" && !s.HasGrimoirePage(page) {
			s.UnlockedGrimoirePages = append(s.UnlockedGrimoirePages, page)
			sum.NewGrimoirePage = page
		}
	}

	progress := s.Progress(world)
	progress.Stars = max(progress.Stars, stars)
	progress.Completed = true
	if passed && !progress.HasDifficulty(difficulty) {
		progress.CompletedDifficulties = append(progress.CompletedDifficulties, difficulty)
	}
	s.LevelProgress[world] = progress

	if passed {
		unlock(s, worlds.AchNoviceExplorer, &sum)
	}
	if world == worlds.AddSub && difficulty == mathgen.Hard && stars == 3 {
		unlock(s, worlds.AchMasterAdd, &sum)
	}
	if world == worlds.Geo && stars == 3 {
		unlock(s, worlds.AchGeoDetective, &sum)
	}
	if stars == 3 && durationSeconds < speedsterLimit {
		unlock(s, worlds.AchSpeedster, &sum)
	}

	return sum
}

// unlock adds an achievement if it is not already held. Idempotent.
func unlock(s *state.GameState, id string, sum *Summary) {
	if s.HasAchievement(id) {
		return
	}
	s.UnlockedAchievements = append(s.UnlockedAchievements, id)
	sum.NewAchievements = append(sum.NewAchievements, id)
}

var (
	ErrUnknownItem          = errors.New("unknown shop item")
	ErrAlreadyOwned         = errors.New("item already owned")
	ErrInsufficientCrystals = errors.New("not enough crystals")
	ErrNotOwned             = errors.New("item not owned")
)

// Purchase buys a shop item, deducting its cost. The balance can never
// go negative: an unaffordable purchase is rejected whole. Returns the
// achievement ids unlocked by the purchase, if any.
func Purchase(s *state.GameState, itemID string) ([]string, error) {
	item := worlds.ItemByID(itemID)
	if item == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownItem, itemID)
	}
	if s.HasItem(itemID) {
		return nil, fmt.Errorf("%w: %s", ErrAlreadyOwned, itemID)
	}
	if s.Crystals < item.Cost {
		return nil, fmt.Errorf("%w: %s costs %d, have %d", ErrInsufficientCrystals, itemID, item.Cost, s.Crystals)
	}

	s.Crystals -= item.Cost
	s.Inventory = append(s.Inventory, itemID)

	var sum Summary
	if len(s.Inventory) >= collectorSize {
		unlock(s, worlds.AchCollector, &sum)
	}
	return sum.NewAchievements, nil
}

// Equip puts an owned item into its cosmetic slot. Free starter items
// count as owned even when absent from a legacy inventory. Furniture
// toggles in and out of the room instead of replacing a slot.
func Equip(s *state.GameState, itemID string) error {
	item := worlds.ItemByID(itemID)
	if item == nil {
		return fmt.Errorf("%w: %s", ErrUnknownItem, itemID)
	}
	if !s.HasItem(itemID) && item.Cost > 0 {
		return fmt.Errorf("%w: %s", ErrNotOwned, itemID)
	}

	switch item.Type {
	case worlds.ItemHat:
		s.Equipped.Hat = itemID
	case worlds.ItemWand:
		s.Equipped.Wand = itemID
	case worlds.ItemOutfit:
		s.Equipped.Outfit = itemID
	case worlds.ItemPet:
		s.Equipped.Pet = itemID
	case worlds.ItemFurniture:
		for i, have := range s.Equipped.Furniture {
			if have == itemID {
				s.Equipped.Furniture = append(s.Equipped.Furniture[:i], s.Equipped.Furniture[i+1:]...)
				return nil
			}
		}
		s.Equipped.Furniture = append(s.Equipped.Furniture, itemID)
	}
	return nil
}

// UpdateAvatar sets the player's base look.
func UpdateAvatar(s *state.GameState, race state.Race, skinColor string) {
	s.Avatar = state.Avatar{Race: race, SkinColor: skinColor}
}
