package api

import (
	"context"
	"fmt"
)

// EntityKind selects which dictionary the level browsing screens list.
type EntityKind string

const (
	KindRadical    EntityKind = "radical"
	KindKanji      EntityKind = "kanji"
	KindVocabulary EntityKind = "vocabulary"
)

// MaxLevel is the highest level the backend serves content for.
const MaxLevel = 60

// EntitySummary is one row of a per-level listing. Kanji and radicals carry
// a single character, vocabulary a compound.
type EntitySummary struct {
	UUID       string `json:"uuid"`
	Character  string `json:"character,omitempty"`
	Characters string `json:"characters,omitempty"`
}

// Display returns whichever character field the entity carries.
func (e EntitySummary) Display() string {
	if e.Characters != "" {
		return e.Characters
	}
	return e.Character
}

// CharacterDetail is the full per-character payload used by detail views
// and SRS sessions, including the canonical reference strokes.
type CharacterDetail struct {
	UUID             string         `json:"uuid"`
	Character        string         `json:"character"`
	Meaning          string         `json:"meaning"`
	Level            int            `json:"level"`
	Type             string         `json:"type"`
	ReferenceStrokes [][][2]float64 `json:"referenceStrokes"`
}

// ListByLevel fetches the entity listing for one level.
func (c *Client) ListByLevel(ctx context.Context, kind EntityKind, level int) ([]EntitySummary, error) {
	var path string
	switch kind {
	case KindVocabulary:
		path = fmt.Sprintf("/api/v1/vocabulary/%d", level)
	default:
		path = fmt.Sprintf("/api/v1/%s/level/%d", kind, level)
	}

	var out []EntitySummary
	if err := c.get(ctx, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CharacterByUUID fetches the full detail for one character.
func (c *Client) CharacterByUUID(ctx context.Context, uuid string) (*CharacterDetail, error) {
	var out CharacterDetail
	if err := c.get(ctx, "/api/v1/kanji/"+uuid, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
