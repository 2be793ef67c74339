package mathgen

import (
	"fmt"

	"github.com/abhisek/mathquest/internal/rng"
	"github.com/abhisek/mathquest/internal/worlds"
)

func addSubQuestion(difficulty Difficulty, streak int) Question {
	r := adaptive(operandRanges[worlds.AddSub][difficulty], streak)
	a := rng.IntBetween(r.Min, r.Max)
	b := rng.IntBetween(r.Min, r.Max)

	prefix := ""
	kind := KindMultipleChoice
	if difficulty == Hard {
		prefix = "Advanced magic! "
		kind = KindFreeInput
	}

	// Hard sometimes hides an operand instead of asking for the result.
	missingOperand := difficulty == Hard && rng.IntBetween(0, 9) < 4

	if rng.IntBetween(0, 1) == 0 {
		sum := a + b
		if missingOperand {
			return Question{
				ID:     newID(),
				Kind:   KindFreeInput,
				Text:   fmt.Sprintf("%s%d + ? = %d", prefix, a, sum),
				Answer: itoa(b),
			}
		}
		q := Question{
			ID:     newID(),
			Kind:   kind,
			Text:   fmt.Sprintf("%sWhat is %d + %d?", prefix, a, b),
			Answer: itoa(sum),
		}
		if kind == KindMultipleChoice {
			q.Options = nearMissOptions(sum)
		}
		return q
	}

	// Subtraction always presents (larger, smaller) so the result is
	// never negative.
	large, small := max(a, b), min(a, b)
	diff := large - small

	if missingOperand {
		return Question{
			ID:     newID(),
			Kind:   KindFreeInput,
			Text:   fmt.Sprintf("%s%d - ? = %d", prefix, large, diff),
			Answer: itoa(small),
		}
	}
	q := Question{
		ID:     newID(),
		Kind:   kind,
		Text:   fmt.Sprintf("%sWhat is %d - %d?", prefix, large, small),
		Answer: itoa(diff),
	}
	if kind == KindMultipleChoice {
		q.Options = nearMissOptions(diff)
	}
	return q
}

// nearMissOptions builds the standard distractor set around an answer.
func nearMissOptions(answer int) []string {
	return shuffled(
		itoa(answer),
		itoa(answer+1),
		itoa(answer-1),
		itoa(answer+2),
	)
}
