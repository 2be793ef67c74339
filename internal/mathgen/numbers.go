package mathgen

import (
	"fmt"

	"github.com/abhisek/mathquest/internal/rng"
	"github.com/abhisek/mathquest/internal/worlds"
)

func numberQuestion(difficulty Difficulty, streak int, isBoss bool) Question {
	// The boss always poses a sequence with a harder step.
	if isBoss {
		start := rng.IntBetween(50, 150)
		step := rng.IntBetween(10, 25)
		next := start + step*3
		return Question{
			ID:     newID(),
			Kind:   KindMultipleChoice,
			Text:   fmt.Sprintf("Guardian's challenge! What number comes next? %d, %d, %d, ...", start, start+step, start+step*2),
			Answer: itoa(next),
			Options: shuffled(
				itoa(next),
				itoa(next+step),
				itoa(next-5),
				itoa(next+10),
			),
		}
	}

	r := adaptive(operandRanges[worlds.Numbers][difficulty], streak)

	if difficulty == Easy {
		if rng.IntBetween(0, 1) == 0 {
			return compareQuestion(r, "Which is bigger? %d or %d", twoOptions)
		}
		// Simple counting run.
		start := rng.IntBetween(1, 10)
		return Question{
			ID:     newID(),
			Kind:   KindMultipleChoice,
			Text:   fmt.Sprintf("What comes after %d, %d, %d?", start, start+1, start+2),
			Answer: itoa(start + 3),
			Options: shuffled(
				itoa(start+3),
				itoa(start+4),
				itoa(start+2),
			),
		}
	}

	switch rng.IntBetween(0, 2) {
	case 0:
		// Even or odd.
		num := rng.IntBetween(r.Min, r.Max)
		answer := "Odd"
		if num%2 == 0 {
			answer = "Even"
		}
		return Question{
			ID:      newID(),
			Kind:    KindMultipleChoice,
			Text:    fmt.Sprintf("Is the number %d Even or Odd?", num),
			Answer:  answer,
			Options: []string{"Even", "Odd"},
		}
	case 1:
		return compareQuestion(r, "Which symbol goes here? %d ___ %d", symbolOptions)
	default:
		start := rng.IntBetween(r.Min, r.Max-20)
		step := rng.IntBetween(2, 5)
		if difficulty == Hard {
			step = rng.IntBetween(5, 15)
		}
		next := start + step*3
		return Question{
			ID:     newID(),
			Kind:   KindMultipleChoice,
			Text:   fmt.Sprintf("What number comes next? %d, %d, %d, ...", start, start+step, start+step*2),
			Answer: itoa(next),
			Options: shuffled(
				itoa(next),
				itoa(next+1),
				itoa(next-2),
				itoa(next+step),
			),
		}
	}
}

// compareQuestion samples two distinct numbers and builds a comparison
// question from them. Equal operands are resampled; after the retry cap
// the second operand is forced distinct.
func compareQuestion(r intRange, format string, build func(a, b int) (answer string, options []string)) Question {
	a := rng.IntBetween(r.Min, r.Max)
	b := rng.IntBetween(r.Min, r.Max)
	for i := 0; a == b && i < maxResamples; i++ {
		b = rng.IntBetween(r.Min, r.Max)
	}
	if a == b {
		if a > r.Min {
			b = a - 1
		} else {
			b = a + 1
		}
	}
	answer, options := build(a, b)
	return Question{
		ID:      newID(),
		Kind:    KindMultipleChoice,
		Text:    fmt.Sprintf(format, a, b),
		Answer:  answer,
		Options: options,
	}
}

func twoOptions(a, b int) (string, []string) {
	answer := itoa(max(a, b))
	return answer, []string{itoa(a), itoa(b)}
}

func symbolOptions(a, b int) (string, []string) {
	answer := "<"
	if a > b {
		answer = ">"
	}
	return answer, []string{">", "<", "="}
}
