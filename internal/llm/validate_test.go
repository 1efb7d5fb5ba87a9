package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func cardSchema() *Schema {
	return &Schema{
		Name:        "card-schema-test",
		Description: "A kanji card",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"character": map[string]any{"type": "string"},
				"strokes":   map[string]any{"type": "integer", "minimum": 1},
				"jlpt":      map[string]any{"type": "string", "enum": []any{"N5", "N4", "N3"}},
			},
			"required": []any{"character", "strokes"},
		},
	}
}

func TestValidateResponse_ValidJSON(t *testing.T) {
	raw := json.RawMessage(`{"character":"山","strokes":3,"jlpt":"N5"}`)
	if err := validateResponse(cardSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_ValidWithoutOptional(t *testing.T) {
	raw := json.RawMessage(`{"character":"川","strokes":3}`)
	if err := validateResponse(cardSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_MissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"character":"火"}`)
	err := validateResponse(cardSchema(), raw)
	if err == nil {
		t.Fatal("expected error for missing required field")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_WrongType(t *testing.T) {
	raw := json.RawMessage(`{"character":"水","strokes":"four"}`)
	err := validateResponse(cardSchema(), raw)
	if err == nil {
		t.Fatal("expected error for wrong type")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_InvalidEnum(t *testing.T) {
	raw := json.RawMessage(`{"character":"木","strokes":4,"jlpt":"N9"}`)
	err := validateResponse(cardSchema(), raw)
	if err == nil {
		t.Fatal("expected error for invalid enum value")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_MalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{not json}`)
	err := validateResponse(cardSchema(), raw)
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_EmptyResponse(t *testing.T) {
	raw := json.RawMessage(``)
	if err := validateResponse(cardSchema(), raw); err == nil {
		t.Fatal("expected error for empty response")
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	raw := json.RawMessage(`{"anything":"goes"}`)
	if err := validateResponse(nil, raw); err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}

func TestValidateResponse_NestedObjects(t *testing.T) {
	schema := &Schema{
		Name:        "nested-card-test",
		Description: "Readings grouped by kind",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"readings": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"onyomi": map[string]any{
							"type":  "array",
							"items": map[string]any{"type": "string"},
						},
					},
					"required": []any{"onyomi"},
				},
				"examples": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
			},
			"required": []any{"readings", "examples"},
		},
	}

	valid := json.RawMessage(`{"readings":{"onyomi":["サン"]},"examples":["火山","富士山"]}`)
	if err := validateResponse(schema, valid); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	invalid := json.RawMessage(`{"readings":{"onyomi":["サン"]},"examples":[1,2]}`)
	if err := validateResponse(schema, invalid); err == nil {
		t.Fatal("expected error for wrong array item type")
	}
}
