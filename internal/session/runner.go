// Package session drives one play-through of a level: sequential
// question delivery, answer evaluation, streak tracking, timing and
// scoring. A runner is single-use; exiting before completion simply
// drops it, no progress is committed.
package session

import (
	"strings"
	"time"

	"github.com/abhisek/mathquest/internal/mathgen"
	"github.com/abhisek/mathquest/internal/worlds"
)

// Phase is the runner's state machine position.
type Phase string

const (
	PhaseIntro      Phase = "intro"
	PhaseInProgress Phase = "in_progress"
	PhaseCompleted  Phase = "completed"
)

// helpThreshold is the failed-attempt count on a single question after
// which remedial help should be offered. Advisory only, answering is
// never blocked.
const helpThreshold = 2

// GenerateFunc produces the next question. The default is the internal
// generator; callers can wrap it to splice in externally produced
// questions.
type GenerateFunc func(world worlds.ID, difficulty mathgen.Difficulty, streak int, isBoss bool) mathgen.Question

// Result reports the outcome of one answer submission.
type Result struct {
	// Accepted is false when the input was empty/malformed and the
	// submission was ignored entirely.
	Accepted bool

	Correct bool

	// OfferHelp is set after repeated failed attempts on the same
	// question. Advisory only.
	OfferHelp bool

	// Completed is set on the correct answer to the final question.
	// FinalScore and DurationSeconds are only meaningful then.
	Completed       bool
	FinalScore      int
	DurationSeconds float64
}

// Runner is the level state machine.
type Runner struct {
	world      worlds.ID
	difficulty mathgen.Difficulty

	phase     Phase
	index     int
	score     int
	streak    int
	attempts  int
	questions []mathgen.Question

	startTime time.Time
	generate  GenerateFunc
	now       func() time.Time
}

// Option configures a Runner.
type Option func(*Runner)

// WithGenerator replaces the question source.
func WithGenerator(g GenerateFunc) Option {
	return func(r *Runner) { r.generate = g }
}

// WithClock replaces the time source.
func WithClock(now func() time.Time) Option {
	return func(r *Runner) { r.now = now }
}

// New builds a runner in the intro phase for one world and difficulty.
func New(world worlds.ID, difficulty mathgen.Difficulty, opts ...Option) *Runner {
	r := &Runner{
		world:      world,
		difficulty: difficulty,
		phase:      PhaseIntro,
		generate:   mathgen.Generate,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Start records the session start time and generates the first question.
// Calling Start more than once is a no-op returning the current question.
func (r *Runner) Start() mathgen.Question {
	if r.phase != PhaseIntro {
		return r.Current()
	}
	r.phase = PhaseInProgress
	r.startTime = r.now()
	r.questions = append(r.questions, r.generate(r.world, r.difficulty, 0, false))
	return r.questions[0]
}

// Submit evaluates one answer. Empty input is ignored with no state
// change. A wrong answer keeps the current question, resets the streak
// and counts the attempt. A correct answer advances to the next
// question, generated with the updated streak, or completes the session
// on the final index.
func (r *Runner) Submit(raw string) Result {
	if r.phase != PhaseInProgress {
		return Result{}
	}
	if strings.TrimSpace(raw) == "" {
		return Result{}
	}

	if !mathgen.CheckAnswer(raw, r.Current()) {
		r.attempts++
		r.streak = 0
		return Result{
			Accepted:  true,
			OfferHelp: r.attempts >= helpThreshold,
		}
	}

	r.score++
	r.streak++
	r.attempts = 0

	if r.index == worlds.QuestionsPerLevel-1 {
		r.phase = PhaseCompleted
		return Result{
			Accepted:        true,
			Correct:         true,
			Completed:       true,
			FinalScore:      r.score,
			DurationSeconds: r.now().Sub(r.startTime).Seconds(),
		}
	}

	r.index++
	isBoss := r.index == worlds.QuestionsPerLevel-1
	r.questions = append(r.questions, r.generate(r.world, r.difficulty, r.streak, isBoss))
	return Result{Accepted: true, Correct: true}
}

// Current returns the question awaiting an answer. Zero value outside
// the in-progress phase.
func (r *Runner) Current() mathgen.Question {
	if r.index < len(r.questions) {
		return r.questions[r.index]
	}
	return mathgen.Question{}
}

// Phase returns the state machine position.
func (r *Runner) Phase() Phase { return r.phase }

// Index returns the zero-based position of the current question.
func (r *Runner) Index() int { return r.index }

// Score returns the running count of correct answers.
func (r *Runner) Score() int { return r.score }

// Streak returns the consecutive-correct counter.
func (r *Runner) Streak() int { return r.streak }

// Attempts returns the failed-attempt count for the current question.
func (r *Runner) Attempts() int { return r.attempts }

// World returns the world this session plays.
func (r *Runner) World() worlds.ID { return r.world }

// Difficulty returns the session's fixed difficulty.
func (r *Runner) Difficulty() mathgen.Difficulty { return r.difficulty }

// BossReached reports whether the current question is the boss.
func (r *Runner) BossReached() bool {
	return r.phase == PhaseInProgress && r.index == worlds.QuestionsPerLevel-1
}
