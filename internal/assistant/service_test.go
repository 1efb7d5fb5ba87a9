package assistant

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/llm"
)

func TestChatSendsTranscript(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`"水 means water."`),
	})
	svc := NewService(mock, DefaultConfig())

	transcript := []Turn{
		{FromUser: true, Text: "What does 水 mean?"},
		{FromUser: false, Text: "It means water."},
	}
	reply, err := svc.Chat(context.Background(), transcript, "Give me an example word.")
	if err != nil {
		t.Fatalf("Chat() error = %v", err)
	}
	if reply != "水 means water." {
		t.Errorf("reply = %q", reply)
	}

	if len(mock.Calls) != 1 {
		t.Fatalf("calls = %d, want 1", len(mock.Calls))
	}
	req := mock.Calls[0]
	if len(req.Messages) != 3 {
		t.Fatalf("messages = %d, want 3", len(req.Messages))
	}
	if req.Messages[0].Role != llm.RoleUser || req.Messages[1].Role != llm.RoleAssistant {
		t.Errorf("transcript roles wrong: %v, %v", req.Messages[0].Role, req.Messages[1].Role)
	}
	if req.Messages[2].Content != "Give me an example word." {
		t.Errorf("last message = %q", req.Messages[2].Content)
	}
	if req.Schema != nil {
		t.Error("chat should not request structured output")
	}
}

func TestChatUnwrapsPlainText(t *testing.T) {
	// A provider that doesn't wrap text as a JSON string should still work.
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`plain text reply`),
	})
	svc := NewService(mock, DefaultConfig())

	reply, err := svc.Chat(context.Background(), nil, "hi")
	if err != nil {
		t.Fatalf("Chat() error = %v", err)
	}
	if reply != "plain text reply" {
		t.Errorf("reply = %q", reply)
	}
}

func TestChatPropagatesProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrRateLimit{},
	})
	svc := NewService(mock, DefaultConfig())

	_, err := svc.Chat(context.Background(), nil, "hi")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestExplainKanji(t *testing.T) {
	card := map[string]any{
		"meaning":  "water",
		"mnemonic": "A stream splitting around a rock.",
		"onyomi":   []string{"スイ"},
		"kunyomi":  []string{"みず"},
		"example_words": []map[string]string{
			{"word": "水曜日", "reading": "すいようび", "meaning": "Wednesday"},
		},
	}
	raw, err := json.Marshal(card)
	if err != nil {
		t.Fatal(err)
	}
	mock := llm.NewMockProvider(llm.MockResponse{Content: raw})
	svc := NewService(mock, DefaultConfig())

	got, err := svc.ExplainKanji(context.Background(), "水", "water", 2)
	if err != nil {
		t.Fatalf("ExplainKanji() error = %v", err)
	}
	if got.Character != "水" {
		t.Errorf("Character = %q, want 水", got.Character)
	}
	if got.Meaning != "water" {
		t.Errorf("Meaning = %q, want water", got.Meaning)
	}
	if len(got.Onyomi) != 1 || got.Onyomi[0] != "スイ" {
		t.Errorf("Onyomi = %v", got.Onyomi)
	}
	if len(got.ExampleWords) != 1 || got.ExampleWords[0].Meaning != "Wednesday" {
		t.Errorf("ExampleWords = %v", got.ExampleWords)
	}

	req := mock.Calls[0]
	if req.Schema != KanjiCardSchema {
		t.Error("explain request did not carry the kanji card schema")
	}
}

func TestExplainKanjiBadJSON(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"meaning": `),
	})
	svc := NewService(mock, DefaultConfig())

	if _, err := svc.ExplainKanji(context.Background(), "水", "", 0); err == nil {
		t.Fatal("expected parse error, got nil")
	}
}
