package assistant

import "github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/llm"

// KanjiCardSchema defines the JSON schema for structured kanji explanations.
var KanjiCardSchema = &llm.Schema{
	Name:        "kanji-card",
	Description: "A structured study card for a single kanji character",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"meaning": map[string]any{
				"type":        "string",
				"description": "Primary English meaning of the character",
			},
			"mnemonic": map[string]any{
				"type":        "string",
				"description": "A vivid memory aid connecting the character's shape to its meaning (2-3 sentences)",
			},
			"onyomi": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Common on'yomi readings in katakana",
			},
			"kunyomi": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Common kun'yomi readings in hiragana",
			},
			"example_words": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"word": map[string]any{
							"type":        "string",
							"description": "A common word using the character",
						},
						"reading": map[string]any{
							"type":        "string",
							"description": "Reading of the word in hiragana",
						},
						"meaning": map[string]any{
							"type":        "string",
							"description": "English meaning of the word",
						},
					},
					"required":             []any{"word", "reading", "meaning"},
					"additionalProperties": false,
				},
				"description": "2-4 common example words",
			},
		},
		"required":             []any{"meaning", "mnemonic", "onyomi", "kunyomi", "example_words"},
		"additionalProperties": false,
	},
}
