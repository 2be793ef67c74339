// Package level runs one play-through of a world at a chosen
// difficulty: intro, five questions with the boss last, feedback,
// Sparky hints after repeated misses, then reward application.
package level

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathquest/internal/audio"
	"github.com/abhisek/mathquest/internal/companion"
	"github.com/abhisek/mathquest/internal/mathgen"
	"github.com/abhisek/mathquest/internal/progression"
	"github.com/abhisek/mathquest/internal/router"
	"github.com/abhisek/mathquest/internal/screen"
	"github.com/abhisek/mathquest/internal/screens/summary"
	sess "github.com/abhisek/mathquest/internal/session"
	"github.com/abhisek/mathquest/internal/state"
	"github.com/abhisek/mathquest/internal/store"
	"github.com/abhisek/mathquest/internal/ui/components"
	"github.com/abhisek/mathquest/internal/ui/layout"
	"github.com/abhisek/mathquest/internal/worlds"
)

// LevelScreen implements screen.Screen for an active level.
type LevelScreen struct {
	gs     *state.GameState
	saves  store.SaveRepo
	sparky *companion.Sparky
	player audio.Player

	cfg        worlds.Config
	difficulty mathgen.Difficulty
	runner     *sess.Runner

	input      components.TextInput
	mcSelected int
	mcActive   bool

	showingFeedback bool
	showingQuit     bool
	lastCorrect     bool
	lastAnswer      string
	hint            string
	hintPending     bool

	// spliced holds an AI-generated question waiting to replace the
	// boss slot in the Cave of Trials.
	spliced *mathgen.Question

	saving bool
}

var _ screen.Screen = (*LevelScreen)(nil)
var _ screen.KeyHintProvider = (*LevelScreen)(nil)

// New creates a level screen in the intro phase.
func New(gs *state.GameState, saves store.SaveRepo, sparky *companion.Sparky, player audio.Player, world worlds.ID, difficulty mathgen.Difficulty) *LevelScreen {
	cfg, _ := worlds.ByID(world)

	s := &LevelScreen{
		gs:         gs,
		saves:      saves,
		sparky:     sparky,
		player:     player,
		cfg:        cfg,
		difficulty: difficulty,
		input:      components.NewTextInput("Type your answer...", true, 12),
	}
	s.runner = sess.New(world, difficulty, sess.WithGenerator(s.generate))
	return s
}

// generate serves the runner. The Cave of Trials boss slot is replaced
// by a pending AI question when one arrived in time.
func (s *LevelScreen) generate(world worlds.ID, difficulty mathgen.Difficulty, streak int, isBoss bool) mathgen.Question {
	if isBoss && s.spliced != nil {
		q := *s.spliced
		s.spliced = nil
		return q
	}
	return mathgen.Generate(world, difficulty, streak, isBoss)
}

func (s *LevelScreen) Init() tea.Cmd {
	s.player.PlayTrack(audio.Track(s.cfg.ID))

	var cmds []tea.Cmd
	cmds = append(cmds, s.input.Init())
	if s.cfg.ID == worlds.Challenge && s.sparky != nil {
		cmds = append(cmds, s.fetchChallenge())
	}
	return tea.Batch(cmds...)
}

func (s *LevelScreen) Title() string {
	return s.cfg.Title
}

func (s *LevelScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.showingQuit:
		return []layout.KeyHint{
			{Key: "Y", Description: "Leave level"},
			{Key: "N", Description: "Keep going"},
		}
	case s.showingFeedback:
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	case s.runner.Phase() == sess.PhaseIntro:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Begin"},
			{Key: "Esc", Description: "Back"},
		}
	default:
		hints := []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
		}
		if s.sparky != nil && s.runner.Attempts() >= 1 {
			hints = append(hints, layout.KeyHint{Key: "H", Description: "Hint"})
		}
		hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Leave"})
		return hints
	}
}

func (s *LevelScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case hintMsg:
		s.hintPending = false
		s.hint = msg.Text
		return s, nil

	case challengeReadyMsg:
		// A nil question means the fallback generator stays in place.
		s.spliced = msg.Question
		return s, nil

	case completionSavedMsg:
		s.player.PlayEffect(audio.EffectWin)
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{
				Screen: summary.New(s.gs, s.cfg, s.difficulty, msg.Summary, msg.Err),
			}
		}

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.textInputActive() {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *LevelScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.saving {
		return s, nil
	}

	if s.showingQuit {
		switch key {
		case "y", "Y":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.showingQuit = false
		}
		return s, nil
	}

	if s.showingFeedback {
		s.showingFeedback = false
		return s, nil
	}

	switch s.runner.Phase() {
	case sess.PhaseIntro:
		switch key {
		case "enter", " ":
			q := s.runner.Start()
			s.prepareFor(q)
		case "esc", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil

	case sess.PhaseInProgress:
		switch key {
		case "esc":
			s.showingQuit = true
			return s, nil
		case "enter":
			return s.submit()
		case "h", "H":
			if s.runner.Attempts() >= 1 {
				return s, s.requestHint()
			}
		}

		if s.mcActive {
			q := s.runner.Current()
			switch key {
			case "up", "k":
				if s.mcSelected > 0 {
					s.mcSelected--
				}
			case "down", "j":
				if s.mcSelected < len(q.Options)-1 {
					s.mcSelected++
				}
			case "1", "2", "3", "4":
				idx := int(key[0] - '1')
				if idx < len(q.Options) {
					s.mcSelected = idx
					return s.submit()
				}
			}
			return s, nil
		}

		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	return s, nil
}

// submit evaluates the current answer through the runner.
func (s *LevelScreen) submit() (screen.Screen, tea.Cmd) {
	q := s.runner.Current()

	var raw string
	if s.mcActive {
		if s.mcSelected < 0 || s.mcSelected >= len(q.Options) {
			return s, nil
		}
		raw = q.Options[s.mcSelected]
	} else {
		raw = s.input.Value()
	}

	res := s.runner.Submit(raw)
	if !res.Accepted {
		return s, nil
	}

	s.lastAnswer = raw
	s.lastCorrect = res.Correct
	s.showingFeedback = true

	if res.Completed {
		s.player.PlayEffect(audio.EffectSuccess)
		s.showingFeedback = false
		s.saving = true
		return s, s.applyCompletion(res)
	}

	if res.Correct {
		s.player.PlayEffect(audio.EffectSuccess)
		s.prepareFor(s.runner.Current())
		return s, nil
	}

	s.player.PlayEffect(audio.EffectError)
	if res.OfferHelp && s.hint == "" && !s.hintPending {
		return s, s.requestHint()
	}
	return s, nil
}

// prepareFor resets per-question input state.
func (s *LevelScreen) prepareFor(q mathgen.Question) {
	s.mcActive = q.Kind == mathgen.KindMultipleChoice
	s.mcSelected = 0
	s.hint = ""
	s.hintPending = false
	s.input = components.NewTextInput("Type your answer...", true, 12)
}

func (s *LevelScreen) textInputActive() bool {
	return s.runner.Phase() == sess.PhaseInProgress &&
		!s.mcActive && !s.showingFeedback && !s.showingQuit && !s.saving
}

// requestHint asks Sparky for help with the current question.
func (s *LevelScreen) requestHint() tea.Cmd {
	if s.sparky == nil || s.hintPending {
		return nil
	}
	s.hintPending = true
	question := s.runner.Current().Text
	wrong := s.lastAnswer
	sparky := s.sparky
	return func() tea.Msg {
		return hintMsg{Text: sparky.Hint(context.Background(), question, wrong)}
	}
}

// fetchChallenge asks Sparky for a Cave of Trials boss question.
func (s *LevelScreen) fetchChallenge() tea.Cmd {
	sparky := s.sparky
	return func() tea.Msg {
		q, err := sparky.ChallengeQuestion(context.Background())
		if err != nil {
			return challengeReadyMsg{}
		}
		return challengeReadyMsg{Question: q}
	}
}

// applyCompletion grants rewards and persists the game state.
func (s *LevelScreen) applyCompletion(res sess.Result) tea.Cmd {
	sum := progression.ApplyCompletion(s.gs, s.cfg.ID, s.difficulty, res.FinalScore, res.DurationSeconds)

	gs := s.gs
	saves := s.saves
	return func() tea.Msg {
		err := saves.Save(context.Background(), gs)
		return completionSavedMsg{Summary: sum, Err: err}
	}
}
