package mathgen

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/abhisek/mathquest/internal/worlds"
)

var allDifficulties = []Difficulty{Easy, Normal, Hard}

// Every input combination must yield a well-formed question: non-empty
// text and answer, and for multiple choice the answer present in the
// options exactly once.
func TestGenerateWellFormed(t *testing.T) {
	for _, w := range worlds.All {
		for _, d := range allDifficulties {
			for _, streak := range []int{0, 3} {
				for _, boss := range []bool{false, true} {
					name := fmt.Sprintf("%s/%s/streak=%d/boss=%v", w.ID, d, streak, boss)
					t.Run(name, func(t *testing.T) {
						for range 50 {
							q := Generate(w.ID, d, streak, boss)
							if q.ID == "" {
								t.Fatal("empty question ID")
							}
							if q.Text == "" {
								t.Fatal("empty question text")
							}
							if q.Answer == "" {
								t.Fatal("empty answer")
							}
							switch q.Kind {
							case KindMultipleChoice:
								assertAnswerInOptionsOnce(t, q)
							case KindFreeInput:
								if len(q.Options) != 0 {
									t.Fatalf("free input question carries options: %v", q.Options)
								}
							default:
								t.Fatalf("unknown kind %q", q.Kind)
							}
						}
					})
				}
			}
		}
	}
}

func assertAnswerInOptionsOnce(t *testing.T, q Question) {
	t.Helper()
	if len(q.Options) < 2 {
		t.Fatalf("multiple choice with %d options: %v", len(q.Options), q.Options)
	}
	count := 0
	for _, opt := range q.Options {
		if opt == q.Answer {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("answer %q appears %d times in options %v (text: %q)", q.Answer, count, q.Options, q.Text)
	}
}

// The comparison sub-type must never present equal operands.
func TestNumbersComparisonOperandsDistinct(t *testing.T) {
	re := regexp.MustCompile(`(\d+) ___ (\d+)`)
	seen := 0
	for range 2000 {
		q := Generate(worlds.Numbers, Normal, 0, false)
		m := re.FindStringSubmatch(q.Text)
		if m == nil {
			continue
		}
		seen++
		a, _ := strconv.Atoi(m[1])
		b, _ := strconv.Atoi(m[2])
		if a == b {
			t.Fatalf("comparison with equal operands: %q", q.Text)
		}
		want := "<"
		if a > b {
			want = ">"
		}
		if q.Answer != want {
			t.Fatalf("comparison %q answered %q, want %q", q.Text, q.Answer, want)
		}
	}
	if seen == 0 {
		t.Fatal("no comparison questions generated in 2000 samples")
	}
}

// Division must be exact by construction.
func TestDivExact(t *testing.T) {
	re := regexp.MustCompile(`\((\d+) / (\d+)\)`)
	for _, d := range allDifficulties {
		for range 200 {
			q := Generate(worlds.Div, d, 0, false)
			m := re.FindStringSubmatch(q.Text)
			if m == nil {
				t.Fatalf("no dividend/divisor in %q", q.Text)
			}
			dividend, _ := strconv.Atoi(m[1])
			divisor, _ := strconv.Atoi(m[2])
			if dividend%divisor != 0 {
				t.Fatalf("%d is not divisible by %d", dividend, divisor)
			}
			if q.Answer != strconv.Itoa(dividend/divisor) {
				t.Fatalf("answer %q, want %d", q.Answer, dividend/divisor)
			}
		}
	}
}

func TestAddSubSubtractionNeverNegative(t *testing.T) {
	re := regexp.MustCompile(`(\d+) - (\d+)\?`)
	for range 500 {
		q := Generate(worlds.AddSub, Normal, 0, false)
		m := re.FindStringSubmatch(q.Text)
		if m == nil {
			continue
		}
		a, _ := strconv.Atoi(m[1])
		b, _ := strconv.Atoi(m[2])
		if a < b {
			t.Fatalf("subtraction presented smaller first: %q", q.Text)
		}
	}
}

func TestAddSubHardUsesFreeInput(t *testing.T) {
	for range 100 {
		q := Generate(worlds.AddSub, Hard, 0, false)
		if q.Kind != KindFreeInput {
			t.Fatalf("hard add/sub kind = %q, want free input", q.Kind)
		}
	}
}

func TestMultInteraction(t *testing.T) {
	tests := []struct {
		difficulty Difficulty
		want       Kind
	}{
		{Easy, KindMultipleChoice},
		{Normal, KindFreeInput},
		{Hard, KindFreeInput},
	}
	for _, tt := range tests {
		q := Generate(worlds.Mult, tt.difficulty, 0, false)
		if q.Kind != tt.want {
			t.Errorf("mult %s kind = %q, want %q", tt.difficulty, q.Kind, tt.want)
		}
	}
}

func TestChallengeDelegatesToHardAddSub(t *testing.T) {
	for range 100 {
		q := Generate(worlds.Challenge, Easy, 0, false)
		if q.Kind != KindFreeInput {
			t.Fatalf("challenge question kind = %q, want free input", q.Kind)
		}
		if !strings.Contains(q.Text, "+") && !strings.Contains(q.Text, "-") {
			t.Fatalf("challenge question is not add/sub: %q", q.Text)
		}
	}
}

func TestGeoHardIsSquareSidesFact(t *testing.T) {
	q := Generate(worlds.Geo, Hard, 0, false)
	if q.Answer != "4" {
		t.Errorf("answer = %q, want 4", q.Answer)
	}
	want := []string{"3", "4", "5", "6"}
	for i, opt := range q.Options {
		if opt != want[i] {
			t.Fatalf("options = %v, want %v", q.Options, want)
		}
	}
	if q.Visual == nil || q.Visual.Kind != VisualSquare {
		t.Errorf("visual = %+v, want square", q.Visual)
	}
}

func TestGeoEasyNamesAShape(t *testing.T) {
	for range 100 {
		q := Generate(worlds.Geo, Easy, 0, false)
		if q.Visual == nil {
			t.Fatal("geo question without visual")
		}
		if shapeNames[q.Visual.Kind] != q.Answer {
			t.Fatalf("visual %q but answer %q", q.Visual.Kind, q.Answer)
		}
	}
}

func TestTimeFormatting(t *testing.T) {
	re := regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
	for _, d := range allDifficulties {
		for range 200 {
			q := Generate(worlds.Time, d, 0, false)
			m := re.FindStringSubmatch(q.Answer)
			if m == nil {
				t.Fatalf("time answer %q not H:MM", q.Answer)
			}
			hour, _ := strconv.Atoi(m[1])
			minute, _ := strconv.Atoi(m[2])
			if hour < 1 || hour > 12 {
				t.Fatalf("hour %d out of range", hour)
			}
			if minute%5 != 0 {
				t.Fatalf("minute %d not a multiple of 5", minute)
			}
			if q.Visual == nil || q.Visual.Kind != VisualClock {
				t.Fatalf("time question visual = %+v", q.Visual)
			}
			if q.Visual.Hour != hour || q.Visual.Minute != minute {
				t.Fatalf("visual %d:%d does not match answer %q", q.Visual.Hour, q.Visual.Minute, q.Answer)
			}
		}
	}
}

// A hot streak on hard forces awkward minute values.
func TestTimeHardStreakAvoidsQuarterHours(t *testing.T) {
	for range 200 {
		q := Generate(worlds.Time, Hard, 3, false)
		if q.Visual.Minute%15 == 0 {
			t.Fatalf("hard streak produced quarter-hour minute %d", q.Visual.Minute)
		}
	}
}

func TestShiftMinute(t *testing.T) {
	tests := []struct {
		minute, want int
	}{
		{30, 0},
		{0, 15},
		{45, 0},
		{50, 5},
		{5, 20},
	}
	for _, tt := range tests {
		if got := shiftMinute(tt.minute); got != tt.want {
			t.Errorf("shiftMinute(%d) = %d, want %d", tt.minute, got, tt.want)
		}
	}
}
