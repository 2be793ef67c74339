// Package mathgen procedurally generates math questions for every world.
// Generation is pure given its inputs and internal randomness: it never
// fails, and degenerate samples (equal operands in a comparison) are
// retried a bounded number of times before a forced-distinct fallback.
package mathgen

// Question is a generated question ready for display.
type Question struct {
	// ID uniquely identifies this question instance.
	ID string

	// Kind indicates how the player answers this question.
	Kind Kind

	// Text is the question prompt displayed to the player.
	Text string

	// Answer is the canonical correct answer as a string.
	// Comparison at evaluation time is case-insensitive.
	Answer string

	// Options is populated only when Kind is KindMultipleChoice.
	// It always contains Answer exactly once.
	Options []string

	// Visual is an optional shape or clock face to render alongside
	// the text. Nil when the question is text-only.
	Visual *Visual
}

// Kind describes how the player provides their answer.
type Kind string

const (
	// KindMultipleChoice means the player picks from the Options list.
	KindMultipleChoice Kind = "multiple_choice"

	// KindFreeInput means the player types a numeric answer.
	KindFreeInput Kind = "free_input"
)

// Difficulty selects the numeric ranges and interaction kinds for a
// session. It is chosen by the caller and fixed for the whole session.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Normal Difficulty = "normal"
	Hard   Difficulty = "hard"
)

// VisualKind tags the variant carried by a Visual payload.
type VisualKind string

const (
	VisualSquare    VisualKind = "square"
	VisualCircle    VisualKind = "circle"
	VisualTriangle  VisualKind = "triangle"
	VisualRectangle VisualKind = "rectangle"
	VisualClock     VisualKind = "clock"
)

// Visual is a pure data payload describing a shape or clock face.
// Hour and Minute are meaningful only when Kind is VisualClock.
type Visual struct {
	Kind   VisualKind
	Hour   int
	Minute int
}
