// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/masteryforge/ent/masterystate"
	"github.com/abhisek/masteryforge/ent/predicate"
)

// MasteryStateUpdate is the builder for updating MasteryState entities.
type MasteryStateUpdate struct {
	config
	hooks    []Hook
	mutation *MasteryStateMutation
}

// Where appends a list predicates to the MasteryStateUpdate builder.
func (_u *MasteryStateUpdate) Where(ps ...predicate.MasteryState) *MasteryStateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMasteryScore sets the "mastery_score" field.
func (_u *MasteryStateUpdate) SetMasteryScore(v float64) *MasteryStateUpdate {
	_u.mutation.ResetMasteryScore()
	_u.mutation.SetMasteryScore(v)
	return _u
}

// SetNillableMasteryScore sets the "mastery_score" field if the given value is not nil.
func (_u *MasteryStateUpdate) SetNillableMasteryScore(v *float64) *MasteryStateUpdate {
	if v != nil {
		_u.SetMasteryScore(*v)
	}
	return _u
}

// AddMasteryScore adds value to the "mastery_score" field.
func (_u *MasteryStateUpdate) AddMasteryScore(v float64) *MasteryStateUpdate {
	_u.mutation.AddMasteryScore(v)
	return _u
}

// SetConfidenceScore sets the "confidence_score" field.
func (_u *MasteryStateUpdate) SetConfidenceScore(v float64) *MasteryStateUpdate {
	_u.mutation.ResetConfidenceScore()
	_u.mutation.SetConfidenceScore(v)
	return _u
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_u *MasteryStateUpdate) SetNillableConfidenceScore(v *float64) *MasteryStateUpdate {
	if v != nil {
		_u.SetConfidenceScore(*v)
	}
	return _u
}

// AddConfidenceScore adds value to the "confidence_score" field.
func (_u *MasteryStateUpdate) AddConfidenceScore(v float64) *MasteryStateUpdate {
	_u.mutation.AddConfidenceScore(v)
	return _u
}

// SetFrustrationScore sets the "frustration_score" field.
func (_u *MasteryStateUpdate) SetFrustrationScore(v float64) *MasteryStateUpdate {
	_u.mutation.ResetFrustrationScore()
	_u.mutation.SetFrustrationScore(v)
	return _u
}

// SetNillableFrustrationScore sets the "frustration_score" field if the given value is not nil.
func (_u *MasteryStateUpdate) SetNillableFrustrationScore(v *float64) *MasteryStateUpdate {
	if v != nil {
		_u.SetFrustrationScore(*v)
	}
	return _u
}

// AddFrustrationScore adds value to the "frustration_score" field.
func (_u *MasteryStateUpdate) AddFrustrationScore(v float64) *MasteryStateUpdate {
	_u.mutation.AddFrustrationScore(v)
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *MasteryStateUpdate) SetAttempts(v int) *MasteryStateUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *MasteryStateUpdate) SetNillableAttempts(v *int) *MasteryStateUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *MasteryStateUpdate) AddAttempts(v int) *MasteryStateUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetRecommendedByAdapter sets the "recommended_by_adapter" field.
func (_u *MasteryStateUpdate) SetRecommendedByAdapter(v bool) *MasteryStateUpdate {
	_u.mutation.SetRecommendedByAdapter(v)
	return _u
}

// SetNillableRecommendedByAdapter sets the "recommended_by_adapter" field if the given value is not nil.
func (_u *MasteryStateUpdate) SetNillableRecommendedByAdapter(v *bool) *MasteryStateUpdate {
	if v != nil {
		_u.SetRecommendedByAdapter(*v)
	}
	return _u
}

// SetLastSeen sets the "last_seen" field.
func (_u *MasteryStateUpdate) SetLastSeen(v time.Time) *MasteryStateUpdate {
	_u.mutation.SetLastSeen(v)
	return _u
}

// SetNillableLastSeen sets the "last_seen" field if the given value is not nil.
func (_u *MasteryStateUpdate) SetNillableLastSeen(v *time.Time) *MasteryStateUpdate {
	if v != nil {
		_u.SetLastSeen(*v)
	}
	return _u
}

// Mutation returns the MasteryStateMutation object of the builder.
func (_u *MasteryStateUpdate) Mutation() *MasteryStateMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MasteryStateUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MasteryStateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MasteryStateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MasteryStateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MasteryStateUpdate) check() error {
	if v, ok := _u.mutation.MasteryScore(); ok {
		if err := masterystate.MasteryScoreValidator(v); err != nil {
			return &ValidationError{Name: "mastery_score", err: fmt.Errorf(`ent: validator failed for field "MasteryState.mastery_score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConfidenceScore(); ok {
		if err := masterystate.ConfidenceScoreValidator(v); err != nil {
			return &ValidationError{Name: "confidence_score", err: fmt.Errorf(`ent: validator failed for field "MasteryState.confidence_score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FrustrationScore(); ok {
		if err := masterystate.FrustrationScoreValidator(v); err != nil {
			return &ValidationError{Name: "frustration_score", err: fmt.Errorf(`ent: validator failed for field "MasteryState.frustration_score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Attempts(); ok {
		if err := masterystate.AttemptsValidator(v); err != nil {
			return &ValidationError{Name: "attempts", err: fmt.Errorf(`ent: validator failed for field "MasteryState.attempts": %w`, err)}
		}
	}
	return nil
}

func (_u *MasteryStateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(masterystate.Table, masterystate.Columns, sqlgraph.NewFieldSpec(masterystate.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.MasteryScore(); ok {
		_spec.SetField(masterystate.FieldMasteryScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMasteryScore(); ok {
		_spec.AddField(masterystate.FieldMasteryScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ConfidenceScore(); ok {
		_spec.SetField(masterystate.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidenceScore(); ok {
		_spec.AddField(masterystate.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.FrustrationScore(); ok {
		_spec.SetField(masterystate.FieldFrustrationScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFrustrationScore(); ok {
		_spec.AddField(masterystate.FieldFrustrationScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(masterystate.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(masterystate.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RecommendedByAdapter(); ok {
		_spec.SetField(masterystate.FieldRecommendedByAdapter, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastSeen(); ok {
		_spec.SetField(masterystate.FieldLastSeen, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{masterystate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MasteryStateUpdateOne is the builder for updating a single MasteryState entity.
type MasteryStateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MasteryStateMutation
}

// SetMasteryScore sets the "mastery_score" field.
func (_u *MasteryStateUpdateOne) SetMasteryScore(v float64) *MasteryStateUpdateOne {
	_u.mutation.ResetMasteryScore()
	_u.mutation.SetMasteryScore(v)
	return _u
}

// SetNillableMasteryScore sets the "mastery_score" field if the given value is not nil.
func (_u *MasteryStateUpdateOne) SetNillableMasteryScore(v *float64) *MasteryStateUpdateOne {
	if v != nil {
		_u.SetMasteryScore(*v)
	}
	return _u
}

// AddMasteryScore adds value to the "mastery_score" field.
func (_u *MasteryStateUpdateOne) AddMasteryScore(v float64) *MasteryStateUpdateOne {
	_u.mutation.AddMasteryScore(v)
	return _u
}

// SetConfidenceScore sets the "confidence_score" field.
func (_u *MasteryStateUpdateOne) SetConfidenceScore(v float64) *MasteryStateUpdateOne {
	_u.mutation.ResetConfidenceScore()
	_u.mutation.SetConfidenceScore(v)
	return _u
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_u *MasteryStateUpdateOne) SetNillableConfidenceScore(v *float64) *MasteryStateUpdateOne {
	if v != nil {
		_u.SetConfidenceScore(*v)
	}
	return _u
}

// AddConfidenceScore adds value to the "confidence_score" field.
func (_u *MasteryStateUpdateOne) AddConfidenceScore(v float64) *MasteryStateUpdateOne {
	_u.mutation.AddConfidenceScore(v)
	return _u
}

// SetFrustrationScore sets the "frustration_score" field.
func (_u *MasteryStateUpdateOne) SetFrustrationScore(v float64) *MasteryStateUpdateOne {
	_u.mutation.ResetFrustrationScore()
	_u.mutation.SetFrustrationScore(v)
	return _u
}

// SetNillableFrustrationScore sets the "frustration_score" field if the given value is not nil.
func (_u *MasteryStateUpdateOne) SetNillableFrustrationScore(v *float64) *MasteryStateUpdateOne {
	if v != nil {
		_u.SetFrustrationScore(*v)
	}
	return _u
}

// AddFrustrationScore adds value to the "frustration_score" field.
func (_u *MasteryStateUpdateOne) AddFrustrationScore(v float64) *MasteryStateUpdateOne {
	_u.mutation.AddFrustrationScore(v)
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *MasteryStateUpdateOne) SetAttempts(v int) *MasteryStateUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *MasteryStateUpdateOne) SetNillableAttempts(v *int) *MasteryStateUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *MasteryStateUpdateOne) AddAttempts(v int) *MasteryStateUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetRecommendedByAdapter sets the "recommended_by_adapter" field.
func (_u *MasteryStateUpdateOne) SetRecommendedByAdapter(v bool) *MasteryStateUpdateOne {
	_u.mutation.SetRecommendedByAdapter(v)
	return _u
}

// SetNillableRecommendedByAdapter sets the "recommended_by_adapter" field if the given value is not nil.
func (_u *MasteryStateUpdateOne) SetNillableRecommendedByAdapter(v *bool) *MasteryStateUpdateOne {
	if v != nil {
		_u.SetRecommendedByAdapter(*v)
	}
	return _u
}

// SetLastSeen sets the "last_seen" field.
func (_u *MasteryStateUpdateOne) SetLastSeen(v time.Time) *MasteryStateUpdateOne {
	_u.mutation.SetLastSeen(v)
	return _u
}

// SetNillableLastSeen sets the "last_seen" field if the given value is not nil.
func (_u *MasteryStateUpdateOne) SetNillableLastSeen(v *time.Time) *MasteryStateUpdateOne {
	if v != nil {
		_u.SetLastSeen(*v)
	}
	return _u
}

// Mutation returns the MasteryStateMutation object of the builder.
func (_u *MasteryStateUpdateOne) Mutation() *MasteryStateMutation {
	return _u.mutation
}

// Where appends a list predicates to the MasteryStateUpdate builder.
func (_u *MasteryStateUpdateOne) Where(ps ...predicate.MasteryState) *MasteryStateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MasteryStateUpdateOne) Select(field string, fields ...string) *MasteryStateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MasteryState entity.
func (_u *MasteryStateUpdateOne) Save(ctx context.Context) (*MasteryState, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MasteryStateUpdateOne) SaveX(ctx context.Context) *MasteryState {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MasteryStateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MasteryStateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MasteryStateUpdateOne) check() error {
	if v, ok := _u.mutation.MasteryScore(); ok {
		if err := masterystate.MasteryScoreValidator(v); err != nil {
			return &ValidationError{Name: "mastery_score", err: fmt.Errorf(`ent: validator failed for field "MasteryState.mastery_score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConfidenceScore(); ok {
		if err := masterystate.ConfidenceScoreValidator(v); err != nil {
			return &ValidationError{Name: "confidence_score", err: fmt.Errorf(`ent: validator failed for field "MasteryState.confidence_score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FrustrationScore(); ok {
		if err := masterystate.FrustrationScoreValidator(v); err != nil {
			return &ValidationError{Name: "frustration_score", err: fmt.Errorf(`ent: validator failed for field "MasteryState.frustration_score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Attempts(); ok {
		if err := masterystate.AttemptsValidator(v); err != nil {
			return &ValidationError{Name: "attempts", err: fmt.Errorf(`ent: validator failed for field "MasteryState.attempts": %w`, err)}
		}
	}
	return nil
}

func (_u *MasteryStateUpdateOne) sqlSave(ctx context.Context) (_node *MasteryState, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(masterystate.Table, masterystate.Columns, sqlgraph.NewFieldSpec(masterystate.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MasteryState.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, masterystate.FieldID)
		for _, f := range fields {
			if !masterystate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != masterystate.FieldID {
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
	if value, ok := _u.mutation.MasteryScore(); ok {
		_spec.SetField(masterystate.FieldMasteryScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMasteryScore(); ok {
		_spec.AddField(masterystate.FieldMasteryScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ConfidenceScore(); ok {
		_spec.SetField(masterystate.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidenceScore(); ok {
		_spec.AddField(masterystate.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.FrustrationScore(); ok {
		_spec.SetField(masterystate.FieldFrustrationScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFrustrationScore(); ok {
		_spec.AddField(masterystate.FieldFrustrationScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(masterystate.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(masterystate.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RecommendedByAdapter(); ok {
		_spec.SetField(masterystate.FieldRecommendedByAdapter, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastSeen(); ok {
		_spec.SetField(masterystate.FieldLastSeen, field.TypeTime, value)
	}
	_node = &MasteryState{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{masterystate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
