package mathgen

import (
	"github.com/abhisek/mathquest/internal/rng"
	"github.com/abhisek/mathquest/internal/worlds"
)

// maxResamples caps retry loops on degenerate samples. After the cap a
// forced-distinct construction is used instead of sampling again.
const maxResamples = 10

type intRange struct {
	Min, Max int
}

// operandRanges holds the per-difficulty sampling ranges for the numeric
// worlds. For Mult and Div the range covers the multiplicand and divisor
// respectively, not the full operand.
var operandRanges = map[worlds.ID]map[Difficulty]intRange{
	worlds.Numbers: {
		Easy:   {1, 20},
		Normal: {10, 100},
		Hard:   {100, 1000},
	},
	worlds.AddSub: {
		Easy:   {1, 9},
		Normal: {10, 50},
		Hard:   {50, 500},
	},
	worlds.Mult: {
		Easy:   {1, 5},
		Normal: {2, 9},
		Hard:   {6, 12},
	},
	worlds.Div: {
		Easy:   {2, 5},
		Normal: {2, 9},
		Hard:   {6, 12},
	},
}

// clockMinutes holds the candidate minute values per difficulty.
var clockMinutes = map[Difficulty][]int{
	Easy:   {0, 30},
	Normal: {0, 15, 30, 45},
	Hard:   {0, 5, 10, 15, 20, 25, 30, 35, 40, 45, 50, 55},
}

// adaptive applies the streak bias to a sampling range.
func adaptive(r intRange, streak int) intRange {
	min, max := rng.AdaptiveRange(r.Min, r.Max, streak)
	return intRange{Min: min, Max: max}
}
