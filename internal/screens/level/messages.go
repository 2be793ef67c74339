package level

import (
	"github.com/abhisek/mathquest/internal/mathgen"
	"github.com/abhisek/mathquest/internal/progression"
)

// hintMsg carries Sparky's hint for the current question.
type hintMsg struct {
	Text string
}

// challengeReadyMsg carries an AI-generated challenge question, or nil
// when generation failed and the internal generator should be used.
type challengeReadyMsg struct {
	Question *mathgen.Question
}

// completionSavedMsg is sent after rewards were applied and the game
// state was persisted.
type completionSavedMsg struct {
	Summary progression.Summary
	Err     error
}
