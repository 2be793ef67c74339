package mathgen

import (
	"fmt"

	"github.com/abhisek/mathquest/internal/rng"
)

func timeQuestion(difficulty Difficulty, streak int, isBoss bool) Question {
	hour := rng.IntBetween(1, 12)

	minutes := clockMinutes[difficulty]
	if isBoss {
		minutes = clockMinutes[Hard]
	}

	// On a hard streak, force awkward minute values by dropping the
	// quarter-hour marks.
	if difficulty == Hard && streak > 2 {
		var awkward []int
		for _, m := range minutes {
			if m%15 != 0 {
				awkward = append(awkward, m)
			}
		}
		if len(awkward) == 0 {
			awkward = []int{10, 20, 40, 50}
		}
		minutes = awkward
	}

	minute := rng.Pick(minutes)

	text := "What time does the clock show?"
	if isBoss {
		text = "Time flies! What is the exact time?"
	}

	return Question{
		ID:     newID(),
		Kind:   KindMultipleChoice,
		Text:   text,
		Answer: formatClock(hour, minute),
		Options: shuffled(
			formatClock(hour, minute),
			formatClock(nextHour(hour), minute),
			formatClock(hour, shiftMinute(minute)),
			formatClock(prevHour(hour), minute),
		),
		Visual: &Visual{Kind: VisualClock, Hour: hour, Minute: minute},
	}
}

func formatClock(hour, minute int) string {
	return fmt.Sprintf("%d:%02d", hour, minute)
}

func nextHour(hour int) int {
	if hour == 12 {
		return 1
	}
	return hour + 1
}

func prevHour(hour int) int {
	if hour == 1 {
		return 12
	}
	return hour - 1
}

// shiftMinute produces the minute-shifted distractor: half past becomes
// o'clock, anything else moves a quarter hour forward.
func shiftMinute(minute int) int {
	if minute == 30 {
		return 0
	}
	return (minute + 15) % 60
}
