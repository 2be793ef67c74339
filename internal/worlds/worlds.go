// Package worlds holds the static game catalogs: the world progression,
// grimoire pages, achievements, and shop inventory. All data here is
// read-only; durable progress lives in the state package.
package worlds

import "fmt"

// ID identifies a world (topic area) in the progression.
type ID string

const (
	Numbers   ID = "numbers"
	AddSub    ID = "add_sub"
	Mult      ID = "mult"
	Div       ID = "div"
	Geo       ID = "geo"
	Time      ID = "time"
	Challenge ID = "challenge"
)

// QuestionsPerLevel is the fixed session length for every world. The
// question at index QuestionsPerLevel-1 is always the boss question.
const QuestionsPerLevel = 5

// Guardian is the boss character faced on a world's final question.
type Guardian struct {
	Name   string
	Avatar string
	Taunt  string
}

// Config describes one world in the progression catalog.
type Config struct {
	ID          ID
	Title       string
	Description string
	Ordinal     int // position in the unlock sequence, 0-based
	Intro       string
	Guardian    Guardian
}

// All is the world catalog in unlock order.
var All = []Config{
	{
		ID:          Numbers,
		Title:       "Number Isle",
		Description: "The Golem's bridge has collapsed.",
		Ordinal:     0,
		Intro:       "Welcome, apprentice! Order the number stones so the Golem lets us cross.",
		Guardian: Guardian{
			Name:   "Stone Golem",
			Avatar: "🗿",
			Taunt:  "My stones are scattered! Complete the sequence or the bridge falls.",
		},
	},
	{
		ID:          AddSub,
		Title:       "Valley of Sums",
		Description: "The magic gates have lost their power.",
		Ordinal:     1,
		Intro:       "Adding opens paths, subtracting clears obstacles. Balance the valley's magic!",
		Guardian: Guardian{
			Name:   "Bridge Troll",
			Avatar: "👹",
			Taunt:  "Nobody passes without paying the exact toll!",
		},
	},
	{
		ID:          Mult,
		Title:       "Multiplication Forest",
		Description: "The magic crops have stopped growing.",
		Ordinal:     2,
		Intro:       "Planting one by one is too slow. Use multiplication to grow whole forests!",
		Guardian: Guardian{
			Name:   "Weaver Spider",
			Avatar: "🕷️",
			Taunt:  "Solve my multiplication webs or you'll be dinner!",
		},
	},
	{
		ID:          Div,
		Title:       "Division Falls",
		Description: "The pirates are fighting over cursed treasure.",
		Ordinal:     3,
		Intro:       "Use division so every pirate gets an exact share and the waters calm down.",
		Guardian: Guardian{
			Name:   "Quartermaster Pirate",
			Avatar: "🏴‍☠️",
			Taunt:  "Arr! If a single coin is left over, ye walk the plank!",
		},
	},
	{
		ID:          Geo,
		Title:       "City of Shapes",
		Description: "The city's blueprints are fading.",
		Ordinal:     4,
		Intro:       "Everything has a shape. Help the Architect see the patterns and hold up the world.",
		Guardian: Guardian{
			Name:   "Cubic Architect",
			Avatar: "🤖",
			Taunt:  "My calculations must be exact. Does this shape fit my final design?",
		},
	},
	{
		ID:          Time,
		Title:       "Realm of Time",
		Description: "The Great Clock has stopped.",
		Ordinal:     5,
		Intro:       "Time is the oldest magic. Read the hands and let tomorrow arrive!",
		Guardian: Guardian{
			Name:   "Chrono Owl",
			Avatar: "🦉",
			Taunt:  "Tick-tock... tell me the exact hour to free the last trapped second.",
		},
	},
	{
		ID:          Challenge,
		Title:       "Cave of Trials",
		Description: "Recover the lost pages of the Great Book.",
		Ordinal:     6,
		Intro:       "The Chaos Dragon will use every trick you've learned against you. Restore the balance!",
		Guardian: Guardian{
			Name:   "Chaos Dragon",
			Avatar: "🐲",
			Taunt:  "ROAARR! You think mere numbers can defeat me?",
		},
	},
}

// ByID returns the world config for id.
func ByID(id ID) (Config, error) {
	for _, w := range All {
		if w.ID == id {
			return w, nil
		}
	}
	return Config{}, fmt.Errorf("unknown world %q", id)
}

// ByOrdinal returns the world at the given position in the unlock sequence.
func ByOrdinal(n int) (Config, error) {
	if n < 0 || n >= len(All) {
		return Config{}, fmt.Errorf("world ordinal %d out of range", n)
	}
	return All[n], nil
}

// Count returns the number of worlds in the progression.
func Count() int {
	return len(All)
}
