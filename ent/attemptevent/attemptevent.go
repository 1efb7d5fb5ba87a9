// Code generated by ent, DO NOT EDIT.

package attemptevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the attemptevent type in the database.
	Label = "attempt_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldCharacterUUID holds the string denoting the character_uuid field in the database.
	FieldCharacterUUID = "character_uuid"
	// FieldCharacter holds the string denoting the character field in the database.
	FieldCharacter = "character"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// FieldScore holds the string denoting the score field in the database.
	FieldScore = "score"
	// FieldStrokeCount holds the string denoting the stroke_count field in the database.
	FieldStrokeCount = "stroke_count"
	// FieldMismatch holds the string denoting the mismatch field in the database.
	FieldMismatch = "mismatch"
	// Table holds the table name of the attemptevent in the database.
	Table = "attempt_events"
)

// Columns holds all SQL columns for attemptevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldCharacterUUID,
	FieldCharacter,
	FieldKind,
	FieldScore,
	FieldStrokeCount,
	FieldMismatch,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// DefaultSessionID holds the default value on creation for the "session_id" field.
	DefaultSessionID string
	// CharacterUUIDValidator is a validator for the "character_uuid" field. It is called by the builders before save.
	CharacterUUIDValidator func(string) error
	// CharacterValidator is a validator for the "character" field. It is called by the builders before save.
	CharacterValidator func(string) error
	// KindValidator is a validator for the "kind" field. It is called by the builders before save.
	KindValidator func(string) error
	// DefaultStrokeCount holds the default value on creation for the "stroke_count" field.
	DefaultStrokeCount int
	// DefaultMismatch holds the default value on creation for the "mismatch" field.
	DefaultMismatch bool
)

// OrderOption defines the ordering options for the AttemptEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByCharacterUUID orders the results by the character_uuid field.
func ByCharacterUUID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCharacterUUID, opts...).ToFunc()
}

// ByCharacter orders the results by the character field.
func ByCharacter(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCharacter, opts...).ToFunc()
}

// ByKind orders the results by the kind field.
func ByKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKind, opts...).ToFunc()
}

// ByScore orders the results by the score field.
func ByScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore, opts...).ToFunc()
}

// ByStrokeCount orders the results by the stroke_count field.
func ByStrokeCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStrokeCount, opts...).ToFunc()
}

// ByMismatch orders the results by the mismatch field.
func ByMismatch(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMismatch, opts...).ToFunc()
}
