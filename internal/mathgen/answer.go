package mathgen

import (
	"strconv"
	"strings"
)

// CheckAnswer compares the player's input against the correct answer.
//
// Normalization rules:
// - Whitespace is trimmed; empty input is never correct
// - Comparison is case-insensitive
// - For free input: leading zeros are ignored ("007" matches "7")
// - For multiple choice: matches against the option text or index (1-N)
func CheckAnswer(input string, question Question) bool {
	input = strings.TrimSpace(input)
	if input == "" {
		return false
	}

	if question.Kind == KindMultipleChoice {
		return checkMultipleChoice(input, question)
	}

	if normIn, ok := normalizeInt(input); ok {
		if normAns, ok := normalizeInt(question.Answer); ok {
			return normIn == normAns
		}
	}
	return strings.EqualFold(input, strings.TrimSpace(question.Answer))
}

func checkMultipleChoice(input string, question Question) bool {
	// Try matching by option index first.
	if idx, err := strconv.Atoi(input); err == nil && idx >= 1 && idx <= len(question.Options) {
		return strings.EqualFold(
			strings.TrimSpace(question.Options[idx-1]),
			strings.TrimSpace(question.Answer),
		)
	}
	return strings.EqualFold(input, strings.TrimSpace(question.Answer))
}

func normalizeInt(s string) (string, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return "", false
	}
	return strconv.FormatInt(n, 10), true
}
