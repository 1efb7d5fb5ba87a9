// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/FUJI-ZPI/FUJI-frontend-sub000/ent/attemptevent"
	"github.com/FUJI-ZPI/FUJI-frontend-sub000/ent/llmrequestevent"
	"github.com/FUJI-ZPI/FUJI-frontend-sub000/ent/schema"
	"github.com/FUJI-ZPI/FUJI-frontend-sub000/ent/sessionevent"
	"github.com/FUJI-ZPI/FUJI-frontend-sub000/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attempteventMixin := schema.AttemptEvent{}.Mixin()
	attempteventMixinFields0 := attempteventMixin[0].Fields()
	_ = attempteventMixinFields0
	attempteventFields := schema.AttemptEvent{}.Fields()
	_ = attempteventFields
	// attempteventDescTimestamp is the schema descriptor for timestamp field.
	attempteventDescTimestamp := attempteventMixinFields0[1].Descriptor()
	// attemptevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	attemptevent.DefaultTimestamp = attempteventDescTimestamp.Default.(func() time.Time)
	// attempteventDescSessionID is the schema descriptor for session_id field.
	attempteventDescSessionID := attempteventFields[0].Descriptor()
	// attemptevent.DefaultSessionID holds the default value on creation for the session_id field.
	attemptevent.DefaultSessionID = attempteventDescSessionID.Default.(string)
	// attempteventDescCharacterUUID is the schema descriptor for character_uuid field.
	attempteventDescCharacterUUID := attempteventFields[1].Descriptor()
	// attemptevent.CharacterUUIDValidator is a validator for the "character_uuid" field. It is called by the builders before save.
	attemptevent.CharacterUUIDValidator = attempteventDescCharacterUUID.Validators[0].(func(string) error)
	// attempteventDescCharacter is the schema descriptor for character field.
	attempteventDescCharacter := attempteventFields[2].Descriptor()
	// attemptevent.CharacterValidator is a validator for the "character" field. It is called by the builders before save.
	attemptevent.CharacterValidator = attempteventDescCharacter.Validators[0].(func(string) error)
	// attempteventDescKind is the schema descriptor for kind field.
	attempteventDescKind := attempteventFields[3].Descriptor()
	// attemptevent.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	attemptevent.KindValidator = attempteventDescKind.Validators[0].(func(string) error)
	// attempteventDescStrokeCount is the schema descriptor for stroke_count field.
	attempteventDescStrokeCount := attempteventFields[5].Descriptor()
	// attemptevent.DefaultStrokeCount holds the default value on creation for the stroke_count field.
	attemptevent.DefaultStrokeCount = attempteventDescStrokeCount.Default.(int)
	// attempteventDescMismatch is the schema descriptor for mismatch field.
	attempteventDescMismatch := attempteventFields[6].Descriptor()
	// attemptevent.DefaultMismatch holds the default value on creation for the mismatch field.
	attemptevent.DefaultMismatch = attempteventDescMismatch.Default.(bool)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescKind is the schema descriptor for kind field.
	sessioneventDescKind := sessioneventFields[1].Descriptor()
	// sessionevent.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	sessionevent.KindValidator = sessioneventDescKind.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[2].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescItemsTotal is the schema descriptor for items_total field.
	sessioneventDescItemsTotal := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultItemsTotal holds the default value on creation for the items_total field.
	sessionevent.DefaultItemsTotal = sessioneventDescItemsTotal.Default.(int)
	// sessioneventDescItemsCompleted is the schema descriptor for items_completed field.
	sessioneventDescItemsCompleted := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultItemsCompleted holds the default value on creation for the items_completed field.
	sessionevent.DefaultItemsCompleted = sessioneventDescItemsCompleted.Default.(int)
	// sessioneventDescAverageScore is the schema descriptor for average_score field.
	sessioneventDescAverageScore := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultAverageScore holds the default value on creation for the average_score field.
	sessionevent.DefaultAverageScore = sessioneventDescAverageScore.Default.(float64)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[6].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
