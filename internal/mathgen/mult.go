package mathgen

import (
	"fmt"

	"github.com/abhisek/mathquest/internal/rng"
	"github.com/abhisek/mathquest/internal/worlds"
)

func multQuestion(difficulty Difficulty, streak int, isBoss bool) Question {
	table := adaptive(operandRanges[worlds.Mult][difficulty], streak)
	a := rng.IntBetween(table.Min, table.Max)
	b := rng.IntBetween(1, 10)
	answer := a * b

	text := fmt.Sprintf("What is %d x %d?", a, b)
	if isBoss {
		text = fmt.Sprintf("The Spider dares you! What is %d x %d?", a, b)
	}

	// Normal and hard use free input to drill the tables.
	kind := KindFreeInput
	if difficulty == Easy {
		kind = KindMultipleChoice
	}

	q := Question{
		ID:     newID(),
		Kind:   kind,
		Text:   text,
		Answer: itoa(answer),
	}
	if kind == KindMultipleChoice {
		q.Options = shuffled(
			itoa(answer),
			itoa(answer+a),
			itoa(answer-1),
			itoa(answer+rng.IntBetween(2, 5)),
		)
	}
	return q
}
