package companion

import "github.com/abhisek/mathquest/internal/llm"

// ChallengeSchema defines the JSON schema for AI-written word problems.
var ChallengeSchema = &llm.Schema{
	Name:        "challenge-question",
	Description: "A two-step fantasy-themed math word problem for a child",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"text": map[string]any{
				"type":        "string",
				"description": "The question text shown to the child",
			},
			"correctAnswer": map[string]any{
				"type":        "string",
				"description": "The correct answer as a bare number string, e.g. '15'",
			},
			"options": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"minItems":    4,
				"maxItems":    4,
				"description": "Four answer options including the correct one, shuffled",
			},
		},
		"required":             []any{"text", "correctAnswer", "options"},
		"additionalProperties": false,
	},
}
