package llm

import (
	"testing"

	"google.golang.org/genai"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.0-pro"},
		{"gemini-2.5-flash", "gemini-2.5-flash"}, // pass-through
	}
	for _, tt := range tests {
		if got := resolveModel(tt.input, geminiModels); got != tt.want {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestGeminiSchemaConversion(t *testing.T) {
	def := map[string]any{
		"type":        "object",
		"description": "A multiple-choice math question",
		"properties": map[string]any{
			"text":          map[string]any{"type": "string"},
			"correctAnswer": map[string]any{"type": "integer"},
			"options": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "integer"},
			},
			"difficulty": map[string]any{
				"type": "string",
				"enum": []any{"easy", "medium", "hard"},
			},
		},
		"required": []any{"text", "correctAnswer", "options"},
	}

	schema := geminiSchema(def)

	if schema.Type != genai.TypeObject {
		t.Errorf("type = %v, want object", schema.Type)
	}
	if schema.Description != "A multiple-choice math question" {
		t.Errorf("description = %q", schema.Description)
	}
	if len(schema.Properties) != 4 {
		t.Fatalf("properties = %d, want 4", len(schema.Properties))
	}
	if schema.Properties["text"].Type != genai.TypeString {
		t.Errorf("text type = %v, want string", schema.Properties["text"].Type)
	}
	if schema.Properties["correctAnswer"].Type != genai.TypeInteger {
		t.Errorf("correctAnswer type = %v, want integer", schema.Properties["correctAnswer"].Type)
	}
	opts := schema.Properties["options"]
	if opts.Type != genai.TypeArray || opts.Items == nil || opts.Items.Type != genai.TypeInteger {
		t.Errorf("options not mapped as integer array: %+v", opts)
	}
	if got := schema.Properties["difficulty"].Enum; len(got) != 3 || got[0] != "easy" {
		t.Errorf("difficulty enum = %v", got)
	}
	if len(schema.Required) != 3 {
		t.Errorf("required = %v", schema.Required)
	}
}

func TestGeminiTypeFallsBackToString(t *testing.T) {
	if got := geminiType("duration"); got != genai.TypeString {
		t.Errorf("geminiType(duration) = %v, want string", got)
	}
}

func TestTruncatedGeminiResponse(t *testing.T) {
	truncated := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{FinishReason: "MAX_TOKENS"}},
	}
	if !truncatedGeminiResponse(truncated) {
		t.Error("MAX_TOKENS finish reason not detected")
	}

	done := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{FinishReason: "STOP"}},
	}
	if truncatedGeminiResponse(done) {
		t.Error("STOP finish reason flagged as truncated")
	}

	empty := &genai.GenerateContentResponse{}
	if truncatedGeminiResponse(empty) {
		t.Error("empty response flagged as truncated")
	}
}
