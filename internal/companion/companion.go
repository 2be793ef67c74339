// Package companion implements Sparky, the in-game helper sprite.
// Sparky can produce an encouraging hint for a stuck player and, when a
// provider is configured, whole AI-written word problems. Every call
// degrades to a static fallback or the internal generator; gameplay
// never blocks on a provider.
package companion

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/mathquest/internal/llm"
	"github.com/abhisek/mathquest/internal/mathgen"
	"github.com/abhisek/mathquest/internal/rng"
)

// defaultTimeout bounds the wait for a provider response. The session
// keeps running on the fallback if the provider is slower.
const defaultTimeout = 8 * time.Second

// Static hint fallbacks, in order of specificity.
const (
	fallbackNoProvider = "Ask a grown-up to help you set up the magic key!"
	fallbackHintError  = "Keep trying! Look at the numbers carefully."
	fallbackHintEmpty  = "Try again! You can do it."
)

const hintSystemPrompt = `You are "Sparky", a magical, energetic and friendly math sprite for children.
Your mission: give a USEFUL hint WITHOUT revealing the answer.
Style: short (20 words max), enthusiastic, use magic emojis (sparkles, fairy, lightning).
Example: "So close! Remember that adding means putting together. Try counting on your fingers!"`

const challengePrompt = `Write a math word problem for a 9-10 year old child.
Theme: fantasy (wizards, dragons, potions).
Difficulty: requires two steps (e.g. add then subtract, or a simple multiplication).
Respond with JSON only: the question text, the correct answer as a bare number string,
and four answer options that include the correct one.`

// Sparky wraps an optional LLM provider. A nil provider is valid and
// means fully offline behavior.
type Sparky struct {
	provider llm.Provider
	timeout  time.Duration
}

// Option configures a Sparky.
type Option func(*Sparky)

// WithTimeout overrides the provider wait bound.
func WithTimeout(d time.Duration) Option {
	return func(s *Sparky) { s.timeout = d }
}

// New builds a Sparky. provider may be nil for offline play.
func New(provider llm.Provider, opts ...Option) *Sparky {
	s := &Sparky{provider: provider, timeout: defaultTimeout}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Hint asks for a nudge on a question the player just got wrong. It
// always returns displayable text; provider failures surface as static
// encouragement, never as an error.
func (s *Sparky) Hint(ctx context.Context, questionText, wrongAnswer string) string {
	if s.provider == nil {
		return fallbackNoProvider
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	ctx = llm.WithTask(ctx, "hint")

	userMsg := fmt.Sprintf(
		"The child is stuck on this question: %q.\nThe child answered incorrectly: %q.\nGive one hint.",
		questionText, wrongAnswer,
	)

	resp, err := s.provider.Generate(ctx, llm.Request{
		System:    hintSystemPrompt,
		Messages:  []llm.Message{{Role: llm.RoleUser, Content: userMsg}},
		MaxTokens: 100,
	})
	if err != nil {
		return fallbackHintError
	}

	var text string
	if err := json.Unmarshal(resp.Content, &text); err != nil {
		text = strings.TrimSpace(string(resp.Content))
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return fallbackHintEmpty
	}
	return text
}

// challengeOutput is the raw provider response before validation.
type challengeOutput struct {
	Text          string   `json:"text"`
	CorrectAnswer string   `json:"correctAnswer"`
	Options       []string `json:"options"`
}

// ChallengeQuestion asks the provider for an AI-written word problem.
// Any failure, timeout or malformed payload returns an error; callers
// fall back to the internal generator and must never block on this.
func (s *Sparky) ChallengeQuestion(ctx context.Context) (*mathgen.Question, error) {
	if s.provider == nil {
		return nil, fmt.Errorf("no provider configured")
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	ctx = llm.WithTask(ctx, "challenge-question")

	resp, err := s.provider.Generate(ctx, llm.Request{
		Messages:  []llm.Message{{Role: llm.RoleUser, Content: challengePrompt}},
		Schema:    ChallengeSchema,
		MaxTokens: 300,
	})
	if err != nil {
		return nil, fmt.Errorf("challenge generation failed: %w", err)
	}

	var raw challengeOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("parse challenge response: %w", err)
	}
	if err := checkChallenge(raw); err != nil {
		return nil, err
	}

	options := append([]string(nil), raw.Options...)
	rng.Shuffle(options)

	return &mathgen.Question{
		ID:      uuid.NewString(),
		Kind:    mathgen.KindMultipleChoice,
		Text:    raw.Text,
		Answer:  raw.CorrectAnswer,
		Options: options,
	}, nil
}

// checkChallenge rejects payloads the game cannot safely present.
func checkChallenge(raw challengeOutput) error {
	if strings.TrimSpace(raw.Text) == "" {
		return fmt.Errorf("challenge question has empty text")
	}
	if strings.TrimSpace(raw.CorrectAnswer) == "" {
		return fmt.Errorf("challenge question has empty answer")
	}
	if len(raw.Options) != 4 {
		return fmt.Errorf("challenge question has %d options, want 4", len(raw.Options))
	}
	found := 0
	for _, opt := range raw.Options {
		if opt == raw.CorrectAnswer {
			found++
		}
	}
	if found != 1 {
		return fmt.Errorf("correct answer appears %d times in options", found)
	}
	return nil
}
