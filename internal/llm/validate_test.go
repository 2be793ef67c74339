package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func questionSchema() *Schema {
	return &Schema{
		Name:        "challenge-question",
		Description: "A multiple-choice math question",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"text":          map[string]any{"type": "string"},
				"correctAnswer": map[string]any{"type": "integer"},
				"options": map[string]any{
					"type":     "array",
					"items":    map[string]any{"type": "integer"},
					"minItems": 4,
					"maxItems": 4,
				},
				"difficulty": map[string]any{
					"type": "string",
					"enum": []any{"easy", "medium", "hard"},
				},
			},
			"required": []any{"text", "correctAnswer", "options"},
		},
	}
}

func TestSchemaCheckAccepts(t *testing.T) {
	raw := json.RawMessage(`{
		"text": "A dragon guards 3 piles of 6 gems. How many gems in all?",
		"correctAnswer": 18,
		"options": [12, 15, 18, 21],
		"difficulty": "medium"
	}`)

	if err := questionSchema().Check(raw); err != nil {
		t.Fatalf("Check: %v", err)
	}
}

func TestSchemaCheckRejects(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{
			name: "missing required field",
			raw:  `{"text": "How many?", "options": [1, 2, 3, 4]}`,
		},
		{
			name: "wrong type for answer",
			raw:  `{"text": "How many?", "correctAnswer": "eighteen", "options": [1, 2, 3, 4]}`,
		},
		{
			name: "too few options",
			raw:  `{"text": "How many?", "correctAnswer": 2, "options": [2]}`,
		},
		{
			name: "difficulty outside enum",
			raw:  `{"text": "How many?", "correctAnswer": 2, "options": [1, 2, 3, 4], "difficulty": "brutal"}`,
		},
		{
			name: "not JSON at all",
			raw:  `Sure! Here is your question:`,
		},
		{
			name: "empty",
			raw:  ``,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := questionSchema().Check(json.RawMessage(tt.raw))
			var invalid *InvalidResponseError
			if !errors.As(err, &invalid) {
				t.Fatalf("expected InvalidResponseError, got %T (%v)", err, err)
			}
		})
	}
}

func TestSchemaCheckNilAcceptsAnything(t *testing.T) {
	var s *Schema
	if err := s.Check(json.RawMessage(`not even json`)); err != nil {
		t.Fatalf("nil schema rejected input: %v", err)
	}
}

func TestSchemaCheckNested(t *testing.T) {
	s := &Schema{
		Name: "hint-reply",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"hint": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"message": map[string]any{"type": "string"},
						"tone":    map[string]any{"type": "string", "enum": []any{"cheerful", "gentle"}},
					},
					"required": []any{"message"},
				},
			},
			"required": []any{"hint"},
		},
	}

	good := json.RawMessage(`{"hint": {"message": "Try counting up from 30!", "tone": "cheerful"}}`)
	if err := s.Check(good); err != nil {
		t.Fatalf("Check: %v", err)
	}

	bad := json.RawMessage(`{"hint": {"tone": "cheerful"}}`)
	var invalid *InvalidResponseError
	if err := s.Check(bad); !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidResponseError, got %v", err)
	}
}
