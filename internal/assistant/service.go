// Package assistant wraps the LLM layer with the two tutor features: free
// chat and structured kanji explanations.
package assistant

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/llm"
)

// Config tunes generation for the assistant features.
type Config struct {
	ChatMaxTokens    int
	ExplainMaxTokens int
	Temperature      float64
}

// DefaultConfig returns the assistant defaults.
func DefaultConfig() Config {
	return Config{
		ChatMaxTokens:    1024,
		ExplainMaxTokens: 1024,
		Temperature:      0.7,
	}
}

// Service answers tutor chat turns and generates kanji cards.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates an assistant service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Chat sends the full transcript plus the new user message and returns the
// tutor's reply.
func (s *Service) Chat(ctx context.Context, transcript []Turn, userMsg string) (string, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeChat)

	messages := make([]llm.Message, 0, len(transcript)+1)
	for _, t := range transcript {
		role := llm.RoleAssistant
		if t.FromUser {
			role = llm.RoleUser
		}
		messages = append(messages, llm.Message{Role: role, Content: t.Text})
	}
	messages = append(messages, llm.Message{Role: llm.RoleUser, Content: userMsg})

	resp, err := s.provider.Generate(ctx, llm.Request{
		System:      chatSystemPrompt,
		Messages:    messages,
		MaxTokens:   s.cfg.ChatMaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("tutor chat: %w", err)
	}

	// Without a schema the provider wraps plain text as a JSON string.
	var text string
	if err := json.Unmarshal(resp.Content, &text); err != nil {
		text = string(resp.Content)
	}
	return text, nil
}

type kanjiCardOutput struct {
	Meaning      string   `json:"meaning"`
	Mnemonic     string   `json:"mnemonic"`
	Onyomi       []string `json:"onyomi"`
	Kunyomi      []string `json:"kunyomi"`
	ExampleWords []struct {
		Word    string `json:"word"`
		Reading string `json:"reading"`
		Meaning string `json:"meaning"`
	} `json:"example_words"`
}

// ExplainKanji generates a structured study card for one character.
func (s *Service) ExplainKanji(ctx context.Context, character, meaning string, level int) (*KanjiCard, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeExplain)

	resp, err := s.provider.Generate(ctx, llm.Request{
		System: explainSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildExplainUserMessage(character, meaning, level)},
		},
		Schema:      KanjiCardSchema,
		MaxTokens:   s.cfg.ExplainMaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("kanji card generation: %w", err)
	}

	var out kanjiCardOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse kanji card response: %w", err)
	}

	card := &KanjiCard{
		Character: character,
		Meaning:   out.Meaning,
		Mnemonic:  out.Mnemonic,
		Onyomi:    out.Onyomi,
		Kunyomi:   out.Kunyomi,
	}
	for _, w := range out.ExampleWords {
		card.ExampleWords = append(card.ExampleWords, ExampleWord{
			Word:    w.Word,
			Reading: w.Reading,
			Meaning: w.Meaning,
		})
	}
	return card, nil
}
