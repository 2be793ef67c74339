// Package llm abstracts the model backends Sparky can talk to. The
// game only ever makes short single-turn requests: a hint for a stuck
// player, or one schema-constrained word problem. Everything a backend
// returns beyond the content itself is dropped at this boundary.
package llm

import (
	"context"
	"encoding/json"
)

// Provider sends one prompt and returns the model's output.
type Provider interface {
	// Generate performs a single completion. When the request carries a
	// Schema the returned Content is JSON already validated against it;
	// otherwise Content is the raw text.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID names the configured model, for diagnostics.
	ModelID() string
}

// Request is one prompt. The game never sends multi-turn histories,
// but Messages stays a slice so a backend can thread role-tagged
// content the way its SDK expects.
type Request struct {
	// System sets the model's persona and constraints.
	System string

	Messages []Message

	// Schema, when set, switches the backend to its structured output
	// mode and the response is validated before it is returned.
	Schema *Schema

	// MaxTokens caps the response length. A response cut off at the cap
	// is returned as a TruncatedError, not as partial content.
	MaxTokens int
}

// Message is one role-tagged piece of conversation.
type Message struct {
	Role    Role
	Content string
}

// Role tags a message sender.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema describes the JSON shape a structured response must have.
type Schema struct {
	// Name identifies the schema to backends that want one (tool name,
	// response-format name). Kebab-case, e.g. "challenge-question".
	Name string

	// Description is sent to the model to guide generation.
	Description string

	// Definition is a JSON Schema document as a plain map.
	Definition map[string]any
}

// Response is the model output the game cares about: the content and
// the model that produced it. Token accounting and stop reasons stay
// inside the backends.
type Response struct {
	// Content is validated JSON when the request carried a Schema,
	// otherwise the raw text.
	Content json.RawMessage

	// Model is the backend's report of which model served the request.
	Model string
}
