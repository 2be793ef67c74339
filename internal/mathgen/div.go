package mathgen

import (
	"fmt"

	"github.com/abhisek/mathquest/internal/rng"
	"github.com/abhisek/mathquest/internal/worlds"
)

func divQuestion(difficulty Difficulty, streak int, isBoss bool) Question {
	r := adaptive(operandRanges[worlds.Div][difficulty], streak)

	// Sample the quotient first and derive the dividend, so division is
	// always exact.
	divisor := rng.IntBetween(r.Min, r.Max)
	quotient := rng.IntBetween(2, 10)
	dividend := divisor * quotient

	text := fmt.Sprintf("Share %d gems among %d chests. How many go in each chest? (%d / %d)", dividend, divisor, dividend, divisor)
	if isBoss {
		text = fmt.Sprintf("The Pirate is watching! You have %d coins and %d chests. How many go in each one?", dividend, divisor)
	}

	kind := KindFreeInput
	if difficulty == Easy {
		kind = KindMultipleChoice
	}

	q := Question{
		ID:     newID(),
		Kind:   kind,
		Text:   text,
		Answer: itoa(quotient),
	}
	if kind == KindMultipleChoice {
		q.Options = nearMissOptions(quotient)
	}
	return q
}
