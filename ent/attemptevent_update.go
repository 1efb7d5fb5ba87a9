// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/FUJI-ZPI/FUJI-frontend-sub000/ent/attemptevent"
	"github.com/FUJI-ZPI/FUJI-frontend-sub000/ent/predicate"
)

// AttemptEventUpdate is the builder for updating AttemptEvent entities.
type AttemptEventUpdate struct {
	config
	hooks    []Hook
	mutation *AttemptEventMutation
}

// Where appends a list predicates to the AttemptEventUpdate builder.
func (_u *AttemptEventUpdate) Where(ps ...predicate.AttemptEvent) *AttemptEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AttemptEventUpdate) SetSessionID(v string) *AttemptEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableSessionID(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetCharacterUUID sets the "character_uuid" field.
func (_u *AttemptEventUpdate) SetCharacterUUID(v string) *AttemptEventUpdate {
	_u.mutation.SetCharacterUUID(v)
	return _u
}

// SetNillableCharacterUUID sets the "character_uuid" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableCharacterUUID(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetCharacterUUID(*v)
	}
	return _u
}

// SetCharacter sets the "character" field.
func (_u *AttemptEventUpdate) SetCharacter(v string) *AttemptEventUpdate {
	_u.mutation.SetCharacter(v)
	return _u
}

// SetNillableCharacter sets the "character" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableCharacter(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetCharacter(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *AttemptEventUpdate) SetKind(v string) *AttemptEventUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableKind(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *AttemptEventUpdate) SetScore(v int) *AttemptEventUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableScore(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *AttemptEventUpdate) AddScore(v int) *AttemptEventUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetStrokeCount sets the "stroke_count" field.
func (_u *AttemptEventUpdate) SetStrokeCount(v int) *AttemptEventUpdate {
	_u.mutation.ResetStrokeCount()
	_u.mutation.SetStrokeCount(v)
	return _u
}

// SetNillableStrokeCount sets the "stroke_count" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableStrokeCount(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetStrokeCount(*v)
	}
	return _u
}

// AddStrokeCount adds value to the "stroke_count" field.
func (_u *AttemptEventUpdate) AddStrokeCount(v int) *AttemptEventUpdate {
	_u.mutation.AddStrokeCount(v)
	return _u
}

// SetMismatch sets the "mismatch" field.
func (_u *AttemptEventUpdate) SetMismatch(v bool) *AttemptEventUpdate {
	_u.mutation.SetMismatch(v)
	return _u
}

// SetNillableMismatch sets the "mismatch" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableMismatch(v *bool) *AttemptEventUpdate {
	if v != nil {
		_u.SetMismatch(*v)
	}
	return _u
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_u *AttemptEventUpdate) Mutation() *AttemptEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AttemptEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AttemptEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptEventUpdate) check() error {
	if v, ok := _u.mutation.CharacterUUID(); ok {
		if err := attemptevent.CharacterUUIDValidator(v); err != nil {
			return &ValidationError{Name: "character_uuid", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.character_uuid": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Character(); ok {
		if err := attemptevent.CharacterValidator(v); err != nil {
			return &ValidationError{Name: "character", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.character": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := attemptevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.kind": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptevent.Table, attemptevent.Columns, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(attemptevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CharacterUUID(); ok {
		_spec.SetField(attemptevent.FieldCharacterUUID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Character(); ok {
		_spec.SetField(attemptevent.FieldCharacter, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(attemptevent.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(attemptevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(attemptevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StrokeCount(); ok {
		_spec.SetField(attemptevent.FieldStrokeCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStrokeCount(); ok {
		_spec.AddField(attemptevent.FieldStrokeCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Mismatch(); ok {
		_spec.SetField(attemptevent.FieldMismatch, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AttemptEventUpdateOne is the builder for updating a single AttemptEvent entity.
type AttemptEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AttemptEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *AttemptEventUpdateOne) SetSessionID(v string) *AttemptEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableSessionID(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetCharacterUUID sets the "character_uuid" field.
func (_u *AttemptEventUpdateOne) SetCharacterUUID(v string) *AttemptEventUpdateOne {
	_u.mutation.SetCharacterUUID(v)
	return _u
}

// SetNillableCharacterUUID sets the "character_uuid" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableCharacterUUID(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetCharacterUUID(*v)
	}
	return _u
}

// SetCharacter sets the "character" field.
func (_u *AttemptEventUpdateOne) SetCharacter(v string) *AttemptEventUpdateOne {
	_u.mutation.SetCharacter(v)
	return _u
}

// SetNillableCharacter sets the "character" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableCharacter(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetCharacter(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *AttemptEventUpdateOne) SetKind(v string) *AttemptEventUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableKind(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *AttemptEventUpdateOne) SetScore(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableScore(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *AttemptEventUpdateOne) AddScore(v int) *AttemptEventUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetStrokeCount sets the "stroke_count" field.
func (_u *AttemptEventUpdateOne) SetStrokeCount(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetStrokeCount()
	_u.mutation.SetStrokeCount(v)
	return _u
}

// SetNillableStrokeCount sets the "stroke_count" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableStrokeCount(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetStrokeCount(*v)
	}
	return _u
}

// AddStrokeCount adds value to the "stroke_count" field.
func (_u *AttemptEventUpdateOne) AddStrokeCount(v int) *AttemptEventUpdateOne {
	_u.mutation.AddStrokeCount(v)
	return _u
}

// SetMismatch sets the "mismatch" field.
func (_u *AttemptEventUpdateOne) SetMismatch(v bool) *AttemptEventUpdateOne {
	_u.mutation.SetMismatch(v)
	return _u
}

// SetNillableMismatch sets the "mismatch" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableMismatch(v *bool) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetMismatch(*v)
	}
	return _u
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_u *AttemptEventUpdateOne) Mutation() *AttemptEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AttemptEventUpdate builder.
func (_u *AttemptEventUpdateOne) Where(ps ...predicate.AttemptEvent) *AttemptEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AttemptEventUpdateOne) Select(field string, fields ...string) *AttemptEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AttemptEvent entity.
func (_u *AttemptEventUpdateOne) Save(ctx context.Context) (*AttemptEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptEventUpdateOne) SaveX(ctx context.Context) *AttemptEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AttemptEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptEventUpdateOne) check() error {
	if v, ok := _u.mutation.CharacterUUID(); ok {
		if err := attemptevent.CharacterUUIDValidator(v); err != nil {
			return &ValidationError{Name: "character_uuid", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.character_uuid": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Character(); ok {
		if err := attemptevent.CharacterValidator(v); err != nil {
			return &ValidationError{Name: "character", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.character": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := attemptevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.kind": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptEventUpdateOne) sqlSave(ctx context.Context) (_node *AttemptEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptevent.Table, attemptevent.Columns, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AttemptEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, attemptevent.FieldID)
		for _, f := range fields {
			if !attemptevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != attemptevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(attemptevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CharacterUUID(); ok {
		_spec.SetField(attemptevent.FieldCharacterUUID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Character(); ok {
		_spec.SetField(attemptevent.FieldCharacter, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(attemptevent.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(attemptevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(attemptevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StrokeCount(); ok {
		_spec.SetField(attemptevent.FieldStrokeCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStrokeCount(); ok {
		_spec.AddField(attemptevent.FieldStrokeCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Mismatch(); ok {
		_spec.SetField(attemptevent.FieldMismatch, field.TypeBool, value)
	}
	_node = &AttemptEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
