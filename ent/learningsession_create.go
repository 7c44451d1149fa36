// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/masteryforge/ent/learningsession"
	"github.com/google/uuid"
)

// LearningSessionCreate is the builder for creating a LearningSession entity.
type LearningSessionCreate struct {
	config
	mutation *LearningSessionMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *LearningSessionCreate) SetUserID(v string) *LearningSessionCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetStartTime sets the "start_time" field.
func (_c *LearningSessionCreate) SetStartTime(v time.Time) *LearningSessionCreate {
	_c.mutation.SetStartTime(v)
	return _c
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_c *LearningSessionCreate) SetNillableStartTime(v *time.Time) *LearningSessionCreate {
	if v != nil {
		_c.SetStartTime(*v)
	}
	return _c
}

// SetEndTime sets the "end_time" field.
func (_c *LearningSessionCreate) SetEndTime(v time.Time) *LearningSessionCreate {
	_c.mutation.SetEndTime(v)
	return _c
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_c *LearningSessionCreate) SetNillableEndTime(v *time.Time) *LearningSessionCreate {
	if v != nil {
		_c.SetEndTime(*v)
	}
	return _c
}

// SetTotalQuestions sets the "total_questions" field.
func (_c *LearningSessionCreate) SetTotalQuestions(v int) *LearningSessionCreate {
	_c.mutation.SetTotalQuestions(v)
	return _c
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (_c *LearningSessionCreate) SetNillableTotalQuestions(v *int) *LearningSessionCreate {
	if v != nil {
		_c.SetTotalQuestions(*v)
	}
	return _c
}

// SetAverageScore sets the "average_score" field.
func (_c *LearningSessionCreate) SetAverageScore(v float64) *LearningSessionCreate {
	_c.mutation.SetAverageScore(v)
	return _c
}

// SetNillableAverageScore sets the "average_score" field if the given value is not nil.
func (_c *LearningSessionCreate) SetNillableAverageScore(v *float64) *LearningSessionCreate {
	if v != nil {
		_c.SetAverageScore(*v)
	}
	return _c
}

// SetConceptsCovered sets the "concepts_covered" field.
func (_c *LearningSessionCreate) SetConceptsCovered(v []string) *LearningSessionCreate {
	_c.mutation.SetConceptsCovered(v)
	return _c
}

// SetID sets the "id" field.
func (_c *LearningSessionCreate) SetID(v uuid.UUID) *LearningSessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *LearningSessionCreate) SetNillableID(v *uuid.UUID) *LearningSessionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the LearningSessionMutation object of the builder.
func (_c *LearningSessionCreate) Mutation() *LearningSessionMutation {
	return _c.mutation
}

// Save creates the LearningSession in the database.
func (_c *LearningSessionCreate) Save(ctx context.Context) (*LearningSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LearningSessionCreate) SaveX(ctx context.Context) *LearningSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LearningSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LearningSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LearningSessionCreate) defaults() {
	if _, ok := _c.mutation.StartTime(); !ok {
		v := learningsession.DefaultStartTime()
		_c.mutation.SetStartTime(v)
	}
	if _, ok := _c.mutation.TotalQuestions(); !ok {
		v := learningsession.DefaultTotalQuestions
		_c.mutation.SetTotalQuestions(v)
	}
	if _, ok := _c.mutation.AverageScore(); !ok {
		v := learningsession.DefaultAverageScore
		_c.mutation.SetAverageScore(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := learningsession.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LearningSessionCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "LearningSession.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := learningsession.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "LearningSession.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartTime(); !ok {
		return &ValidationError{Name: "start_time", err: errors.New(`ent: missing required field "LearningSession.start_time"`)}
	}
	if _, ok := _c.mutation.TotalQuestions(); !ok {
		return &ValidationError{Name: "total_questions", err: errors.New(`ent: missing required field "LearningSession.total_questions"`)}
	}
	if v, ok := _c.mutation.TotalQuestions(); ok {
		if err := learningsession.TotalQuestionsValidator(v); err != nil {
			return &ValidationError{Name: "total_questions", err: fmt.Errorf(`ent: validator failed for field "LearningSession.total_questions": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AverageScore(); !ok {
		return &ValidationError{Name: "average_score", err: errors.New(`ent: missing required field "LearningSession.average_score"`)}
	}
	return nil
}

func (_c *LearningSessionCreate) sqlSave(ctx context.Context) (*LearningSession, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LearningSessionCreate) createSpec() (*LearningSession, *sqlgraph.CreateSpec) {
	var (
		_node = &LearningSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(learningsession.Table, sqlgraph.NewFieldSpec(learningsession.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(learningsession.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.StartTime(); ok {
		_spec.SetField(learningsession.FieldStartTime, field.TypeTime, value)
		_node.StartTime = value
	}
	if value, ok := _c.mutation.EndTime(); ok {
		_spec.SetField(learningsession.FieldEndTime, field.TypeTime, value)
		_node.EndTime = &value
	}
	if value, ok := _c.mutation.TotalQuestions(); ok {
		_spec.SetField(learningsession.FieldTotalQuestions, field.TypeInt, value)
		_node.TotalQuestions = value
	}
	if value, ok := _c.mutation.AverageScore(); ok {
		_spec.SetField(learningsession.FieldAverageScore, field.TypeFloat64, value)
		_node.AverageScore = value
	}
	if value, ok := _c.mutation.ConceptsCovered(); ok {
		_spec.SetField(learningsession.FieldConceptsCovered, field.TypeJSON, value)
		_node.ConceptsCovered = value
	}
	return _node, _spec
}

// LearningSessionCreateBulk is the builder for creating many LearningSession entities in bulk.
type LearningSessionCreateBulk struct {
	config
	err      error
	builders []*LearningSessionCreate
}

// Save creates the LearningSession entities in the database.
func (_c *LearningSessionCreateBulk) Save(ctx context.Context) ([]*LearningSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LearningSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LearningSessionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *LearningSessionCreateBulk) SaveX(ctx context.Context) []*LearningSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LearningSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LearningSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
