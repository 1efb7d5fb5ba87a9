package llm

import (
	"testing"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.5-flash"},
		{"gemini-flash-lite", "gemini-2.5-flash-lite"},
		{"gemini-pro", "gemini-2.5-pro"},
		{"gemini-flash-latest", "gemini-flash-latest"}, // Pass-through
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, geminiModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"character": map[string]any{"type": "string"},
			"strokes":   map[string]any{"type": "integer"},
			"jlpt":      map[string]any{"type": "string", "enum": []any{"N5", "N4", "N3"}},
			"readings": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required": []any{"character", "strokes"},
	}

	schema := geminiSchema(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	if len(schema.Properties) != 4 {
		t.Fatalf("expected 4 properties, got %d", len(schema.Properties))
	}
	if schema.Properties["character"].Type != "STRING" {
		t.Fatalf("expected STRING for character, got %s", schema.Properties["character"].Type)
	}
	if schema.Properties["strokes"].Type != "INTEGER" {
		t.Fatalf("expected INTEGER for strokes, got %s", schema.Properties["strokes"].Type)
	}
	if len(schema.Properties["jlpt"].Enum) != 3 {
		t.Fatalf("expected 3 enum values, got %d", len(schema.Properties["jlpt"].Enum))
	}
	if schema.Properties["readings"].Type != "ARRAY" {
		t.Fatalf("expected ARRAY for readings, got %s", schema.Properties["readings"].Type)
	}
	if schema.Properties["readings"].Items.Type != "STRING" {
		t.Fatalf("expected STRING for readings items, got %s", schema.Properties["readings"].Items.Type)
	}
	if len(schema.Required) != 2 {
		t.Fatalf("expected 2 required fields, got %d", len(schema.Required))
	}
}
