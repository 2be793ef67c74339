package mathgen

import (
	"strconv"

	"github.com/google/uuid"

	"github.com/abhisek/mathquest/internal/rng"
	"github.com/abhisek/mathquest/internal/worlds"
)

// Generate produces a single question for the given world, difficulty and
// current streak. When isBoss is set the question is the level's final,
// themed encounter. The Challenge world always delegates to AddSub forced
// to hard, whatever difficulty the caller asked for.
func Generate(world worlds.ID, difficulty Difficulty, streak int, isBoss bool) Question {
	switch world {
	case worlds.Numbers:
		return numberQuestion(difficulty, streak, isBoss)
	case worlds.AddSub:
		return addSubQuestion(difficulty, streak)
	case worlds.Mult:
		return multQuestion(difficulty, streak, isBoss)
	case worlds.Div:
		return divQuestion(difficulty, streak, isBoss)
	case worlds.Geo:
		return geoQuestion(difficulty, isBoss)
	case worlds.Time:
		return timeQuestion(difficulty, streak, isBoss)
	case worlds.Challenge:
		return addSubQuestion(Hard, streak)
	default:
		return numberQuestion(Normal, 0, false)
	}
}

func newID() string {
	return uuid.NewString()
}

func itoa(n int) string {
	return strconv.Itoa(n)
}

// shuffled shuffles the given options in place and returns them.
func shuffled(options ...string) []string {
	rng.Shuffle(options)
	return options
}
