// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/masteryforge/ent/learningsession"
	"github.com/abhisek/masteryforge/ent/predicate"
)

// LearningSessionUpdate is the builder for updating LearningSession entities.
type LearningSessionUpdate struct {
	config
	hooks    []Hook
	mutation *LearningSessionMutation
}

// Where appends a list predicates to the LearningSessionUpdate builder.
func (_u *LearningSessionUpdate) Where(ps ...predicate.LearningSession) *LearningSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *LearningSessionUpdate) SetEndTime(v time.Time) *LearningSessionUpdate {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *LearningSessionUpdate) SetNillableEndTime(v *time.Time) *LearningSessionUpdate {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// ClearEndTime clears the value of the "end_time" field.
func (_u *LearningSessionUpdate) ClearEndTime() *LearningSessionUpdate {
	_u.mutation.ClearEndTime()
	return _u
}

// SetTotalQuestions sets the "total_questions" field.
func (_u *LearningSessionUpdate) SetTotalQuestions(v int) *LearningSessionUpdate {
	_u.mutation.ResetTotalQuestions()
	_u.mutation.SetTotalQuestions(v)
	return _u
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (_u *LearningSessionUpdate) SetNillableTotalQuestions(v *int) *LearningSessionUpdate {
	if v != nil {
		_u.SetTotalQuestions(*v)
	}
	return _u
}

// AddTotalQuestions adds value to the "total_questions" field.
func (_u *LearningSessionUpdate) AddTotalQuestions(v int) *LearningSessionUpdate {
	_u.mutation.AddTotalQuestions(v)
	return _u
}

// SetAverageScore sets the "average_score" field.
func (_u *LearningSessionUpdate) SetAverageScore(v float64) *LearningSessionUpdate {
	_u.mutation.ResetAverageScore()
	_u.mutation.SetAverageScore(v)
	return _u
}

// SetNillableAverageScore sets the "average_score" field if the given value is not nil.
func (_u *LearningSessionUpdate) SetNillableAverageScore(v *float64) *LearningSessionUpdate {
	if v != nil {
		_u.SetAverageScore(*v)
	}
	return _u
}

// AddAverageScore adds value to the "average_score" field.
func (_u *LearningSessionUpdate) AddAverageScore(v float64) *LearningSessionUpdate {
	_u.mutation.AddAverageScore(v)
	return _u
}

// SetConceptsCovered sets the "concepts_covered" field.
func (_u *LearningSessionUpdate) SetConceptsCovered(v []string) *LearningSessionUpdate {
	_u.mutation.SetConceptsCovered(v)
	return _u
}

// AppendConceptsCovered appends value to the "concepts_covered" field.
func (_u *LearningSessionUpdate) AppendConceptsCovered(v []string) *LearningSessionUpdate {
	_u.mutation.AppendConceptsCovered(v)
	return _u
}

// ClearConceptsCovered clears the value of the "concepts_covered" field.
func (_u *LearningSessionUpdate) ClearConceptsCovered() *LearningSessionUpdate {
	_u.mutation.ClearConceptsCovered()
	return _u
}

// Mutation returns the LearningSessionMutation object of the builder.
func (_u *LearningSessionUpdate) Mutation() *LearningSessionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LearningSessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearningSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LearningSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearningSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LearningSessionUpdate) check() error {
	if v, ok := _u.mutation.TotalQuestions(); ok {
		if err := learningsession.TotalQuestionsValidator(v); err != nil {
			return &ValidationError{Name: "total_questions", err: fmt.Errorf(`ent: validator failed for field "LearningSession.total_questions": %w`, err)}
		}
	}
	return nil
}

func (_u *LearningSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(learningsession.Table, learningsession.Columns, sqlgraph.NewFieldSpec(learningsession.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(learningsession.FieldEndTime, field.TypeTime, value)
	}
	if _u.mutation.EndTimeCleared() {
		_spec.ClearField(learningsession.FieldEndTime, field.TypeTime)
	}
	if value, ok := _u.mutation.TotalQuestions(); ok {
		_spec.SetField(learningsession.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalQuestions(); ok {
		_spec.AddField(learningsession.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AverageScore(); ok {
		_spec.SetField(learningsession.FieldAverageScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAverageScore(); ok {
		_spec.AddField(learningsession.FieldAverageScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ConceptsCovered(); ok {
		_spec.SetField(learningsession.FieldConceptsCovered, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConceptsCovered(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, learningsession.FieldConceptsCovered, value)
		})
	}
	if _u.mutation.ConceptsCoveredCleared() {
		_spec.ClearField(learningsession.FieldConceptsCovered, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learningsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LearningSessionUpdateOne is the builder for updating a single LearningSession entity.
type LearningSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LearningSessionMutation
}

// SetEndTime sets the "end_time" field.
func (_u *LearningSessionUpdateOne) SetEndTime(v time.Time) *LearningSessionUpdateOne {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *LearningSessionUpdateOne) SetNillableEndTime(v *time.Time) *LearningSessionUpdateOne {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// ClearEndTime clears the value of the "end_time" field.
func (_u *LearningSessionUpdateOne) ClearEndTime() *LearningSessionUpdateOne {
	_u.mutation.ClearEndTime()
	return _u
}

// SetTotalQuestions sets the "total_questions" field.
func (_u *LearningSessionUpdateOne) SetTotalQuestions(v int) *LearningSessionUpdateOne {
	_u.mutation.ResetTotalQuestions()
	_u.mutation.SetTotalQuestions(v)
	return _u
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (_u *LearningSessionUpdateOne) SetNillableTotalQuestions(v *int) *LearningSessionUpdateOne {
	if v != nil {
		_u.SetTotalQuestions(*v)
	}
	return _u
}

// AddTotalQuestions adds value to the "total_questions" field.
func (_u *LearningSessionUpdateOne) AddTotalQuestions(v int) *LearningSessionUpdateOne {
	_u.mutation.AddTotalQuestions(v)
	return _u
}

// SetAverageScore sets the "average_score" field.
func (_u *LearningSessionUpdateOne) SetAverageScore(v float64) *LearningSessionUpdateOne {
	_u.mutation.ResetAverageScore()
	_u.mutation.SetAverageScore(v)
	return _u
}

// SetNillableAverageScore sets the "average_score" field if the given value is not nil.
func (_u *LearningSessionUpdateOne) SetNillableAverageScore(v *float64) *LearningSessionUpdateOne {
	if v != nil {
		_u.SetAverageScore(*v)
	}
	return _u
}

// AddAverageScore adds value to the "average_score" field.
func (_u *LearningSessionUpdateOne) AddAverageScore(v float64) *LearningSessionUpdateOne {
	_u.mutation.AddAverageScore(v)
	return _u
}

// SetConceptsCovered sets the "concepts_covered" field.
func (_u *LearningSessionUpdateOne) SetConceptsCovered(v []string) *LearningSessionUpdateOne {
	_u.mutation.SetConceptsCovered(v)
	return _u
}

// AppendConceptsCovered appends value to the "concepts_covered" field.
func (_u *LearningSessionUpdateOne) AppendConceptsCovered(v []string) *LearningSessionUpdateOne {
	_u.mutation.AppendConceptsCovered(v)
	return _u
}

// ClearConceptsCovered clears the value of the "concepts_covered" field.
func (_u *LearningSessionUpdateOne) ClearConceptsCovered() *LearningSessionUpdateOne {
	_u.mutation.ClearConceptsCovered()
	return _u
}

// Mutation returns the LearningSessionMutation object of the builder.
func (_u *LearningSessionUpdateOne) Mutation() *LearningSessionMutation {
	return _u.mutation
}

// Where appends a list predicates to the LearningSessionUpdate builder.
func (_u *LearningSessionUpdateOne) Where(ps ...predicate.LearningSession) *LearningSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LearningSessionUpdateOne) Select(field string, fields ...string) *LearningSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LearningSession entity.
func (_u *LearningSessionUpdateOne) Save(ctx context.Context) (*LearningSession, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearningSessionUpdateOne) SaveX(ctx context.Context) *LearningSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LearningSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearningSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LearningSessionUpdateOne) check() error {
	if v, ok := _u.mutation.TotalQuestions(); ok {
		if err := learningsession.TotalQuestionsValidator(v); err != nil {
			return &ValidationError{Name: "total_questions", err: fmt.Errorf(`ent: validator failed for field "LearningSession.total_questions": %w`, err)}
		}
	}
	return nil
}

func (_u *LearningSessionUpdateOne) sqlSave(ctx context.Context) (_node *LearningSession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(learningsession.Table, learningsession.Columns, sqlgraph.NewFieldSpec(learningsession.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LearningSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, learningsession.FieldID)
		for _, f := range fields {
			if !learningsession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != learningsession.FieldID {
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
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(learningsession.FieldEndTime, field.TypeTime, value)
	}
	if _u.mutation.EndTimeCleared() {
		_spec.ClearField(learningsession.FieldEndTime, field.TypeTime)
	}
	if value, ok := _u.mutation.TotalQuestions(); ok {
		_spec.SetField(learningsession.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalQuestions(); ok {
		_spec.AddField(learningsession.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AverageScore(); ok {
		_spec.SetField(learningsession.FieldAverageScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAverageScore(); ok {
		_spec.AddField(learningsession.FieldAverageScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ConceptsCovered(); ok {
		_spec.SetField(learningsession.FieldConceptsCovered, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConceptsCovered(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, learningsession.FieldConceptsCovered, value)
		})
	}
	if _u.mutation.ConceptsCoveredCleared() {
		_spec.ClearField(learningsession.FieldConceptsCovered, field.TypeJSON)
	}
	_node = &LearningSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learningsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
