// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/masteryforge/ent/masterystate"
)

// MasteryStateCreate is the builder for creating a MasteryState entity.
type MasteryStateCreate struct {
	config
	mutation *MasteryStateMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *MasteryStateCreate) SetCreatedAt(v time.Time) *MasteryStateCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MasteryStateCreate) SetNillableCreatedAt(v *time.Time) *MasteryStateCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *MasteryStateCreate) SetUserID(v string) *MasteryStateCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetConceptID sets the "concept_id" field.
func (_c *MasteryStateCreate) SetConceptID(v string) *MasteryStateCreate {
	_c.mutation.SetConceptID(v)
	return _c
}

// SetMasteryScore sets the "mastery_score" field.
func (_c *MasteryStateCreate) SetMasteryScore(v float64) *MasteryStateCreate {
	_c.mutation.SetMasteryScore(v)
	return _c
}

// SetNillableMasteryScore sets the "mastery_score" field if the given value is not nil.
func (_c *MasteryStateCreate) SetNillableMasteryScore(v *float64) *MasteryStateCreate {
	if v != nil {
		_c.SetMasteryScore(*v)
	}
	return _c
}

// SetConfidenceScore sets the "confidence_score" field.
func (_c *MasteryStateCreate) SetConfidenceScore(v float64) *MasteryStateCreate {
	_c.mutation.SetConfidenceScore(v)
	return _c
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_c *MasteryStateCreate) SetNillableConfidenceScore(v *float64) *MasteryStateCreate {
	if v != nil {
		_c.SetConfidenceScore(*v)
	}
	return _c
}

// SetFrustrationScore sets the "frustration_score" field.
func (_c *MasteryStateCreate) SetFrustrationScore(v float64) *MasteryStateCreate {
	_c.mutation.SetFrustrationScore(v)
	return _c
}

// SetNillableFrustrationScore sets the "frustration_score" field if the given value is not nil.
func (_c *MasteryStateCreate) SetNillableFrustrationScore(v *float64) *MasteryStateCreate {
	if v != nil {
		_c.SetFrustrationScore(*v)
	}
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *MasteryStateCreate) SetAttempts(v int) *MasteryStateCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_c *MasteryStateCreate) SetNillableAttempts(v *int) *MasteryStateCreate {
	if v != nil {
		_c.SetAttempts(*v)
	}
	return _c
}

// SetRecommendedByAdapter sets the "recommended_by_adapter" field.
func (_c *MasteryStateCreate) SetRecommendedByAdapter(v bool) *MasteryStateCreate {
	_c.mutation.SetRecommendedByAdapter(v)
	return _c
}

// SetNillableRecommendedByAdapter sets the "recommended_by_adapter" field if the given value is not nil.
func (_c *MasteryStateCreate) SetNillableRecommendedByAdapter(v *bool) *MasteryStateCreate {
	if v != nil {
		_c.SetRecommendedByAdapter(*v)
	}
	return _c
}

// SetLastSeen sets the "last_seen" field.
func (_c *MasteryStateCreate) SetLastSeen(v time.Time) *MasteryStateCreate {
	_c.mutation.SetLastSeen(v)
	return _c
}

// SetNillableLastSeen sets the "last_seen" field if the given value is not nil.
func (_c *MasteryStateCreate) SetNillableLastSeen(v *time.Time) *MasteryStateCreate {
	if v != nil {
		_c.SetLastSeen(*v)
	}
	return _c
}

// Mutation returns the MasteryStateMutation object of the builder.
func (_c *MasteryStateCreate) Mutation() *MasteryStateMutation {
	return _c.mutation
}

// Save creates the MasteryState in the database.
func (_c *MasteryStateCreate) Save(ctx context.Context) (*MasteryState, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MasteryStateCreate) SaveX(ctx context.Context) *MasteryState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MasteryStateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MasteryStateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MasteryStateCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := masterystate.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.MasteryScore(); !ok {
		v := masterystate.DefaultMasteryScore
		_c.mutation.SetMasteryScore(v)
	}
	if _, ok := _c.mutation.ConfidenceScore(); !ok {
		v := masterystate.DefaultConfidenceScore
		_c.mutation.SetConfidenceScore(v)
	}
	if _, ok := _c.mutation.FrustrationScore(); !ok {
		v := masterystate.DefaultFrustrationScore
		_c.mutation.SetFrustrationScore(v)
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		v := masterystate.DefaultAttempts
		_c.mutation.SetAttempts(v)
	}
	if _, ok := _c.mutation.RecommendedByAdapter(); !ok {
		v := masterystate.DefaultRecommendedByAdapter
		_c.mutation.SetRecommendedByAdapter(v)
	}
	if _, ok := _c.mutation.LastSeen(); !ok {
		v := masterystate.DefaultLastSeen()
		_c.mutation.SetLastSeen(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MasteryStateCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "MasteryState.created_at"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "MasteryState.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := masterystate.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "MasteryState.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ConceptID(); !ok {
		return &ValidationError{Name: "concept_id", err: errors.New(`ent: missing required field "MasteryState.concept_id"`)}
	}
	if v, ok := _c.mutation.ConceptID(); ok {
		if err := masterystate.ConceptIDValidator(v); err != nil {
			return &ValidationError{Name: "concept_id", err: fmt.Errorf(`ent: validator failed for field "MasteryState.concept_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MasteryScore(); !ok {
		return &ValidationError{Name: "mastery_score", err: errors.New(`ent: missing required field "MasteryState.mastery_score"`)}
	}
	if v, ok := _c.mutation.MasteryScore(); ok {
		if err := masterystate.MasteryScoreValidator(v); err != nil {
			return &ValidationError{Name: "mastery_score", err: fmt.Errorf(`ent: validator failed for field "MasteryState.mastery_score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ConfidenceScore(); !ok {
		return &ValidationError{Name: "confidence_score", err: errors.New(`ent: missing required field "MasteryState.confidence_score"`)}
	}
	if v, ok := _c.mutation.ConfidenceScore(); ok {
		if err := masterystate.ConfidenceScoreValidator(v); err != nil {
			return &ValidationError{Name: "confidence_score", err: fmt.Errorf(`ent: validator failed for field "MasteryState.confidence_score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FrustrationScore(); !ok {
		return &ValidationError{Name: "frustration_score", err: errors.New(`ent: missing required field "MasteryState.frustration_score"`)}
	}
	if v, ok := _c.mutation.FrustrationScore(); ok {
		if err := masterystate.FrustrationScoreValidator(v); err != nil {
			return &ValidationError{Name: "frustration_score", err: fmt.Errorf(`ent: validator failed for field "MasteryState.frustration_score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		return &ValidationError{Name: "attempts", err: errors.New(`ent: missing required field "MasteryState.attempts"`)}
	}
	if v, ok := _c.mutation.Attempts(); ok {
		if err := masterystate.AttemptsValidator(v); err != nil {
			return &ValidationError{Name: "attempts", err: fmt.Errorf(`ent: validator failed for field "MasteryState.attempts": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RecommendedByAdapter(); !ok {
		return &ValidationError{Name: "recommended_by_adapter", err: errors.New(`ent: missing required field "MasteryState.recommended_by_adapter"`)}
	}
	if _, ok := _c.mutation.LastSeen(); !ok {
		return &ValidationError{Name: "last_seen", err: errors.New(`ent: missing required field "MasteryState.last_seen"`)}
	}
	return nil
}

func (_c *MasteryStateCreate) sqlSave(ctx context.Context) (*MasteryState, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MasteryStateCreate) createSpec() (*MasteryState, *sqlgraph.CreateSpec) {
	var (
		_node = &MasteryState{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(masterystate.Table, sqlgraph.NewFieldSpec(masterystate.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(masterystate.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(masterystate.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.ConceptID(); ok {
		_spec.SetField(masterystate.FieldConceptID, field.TypeString, value)
		_node.ConceptID = value
	}
	if value, ok := _c.mutation.MasteryScore(); ok {
		_spec.SetField(masterystate.FieldMasteryScore, field.TypeFloat64, value)
		_node.MasteryScore = value
	}
	if value, ok := _c.mutation.ConfidenceScore(); ok {
		_spec.SetField(masterystate.FieldConfidenceScore, field.TypeFloat64, value)
		_node.ConfidenceScore = value
	}
	if value, ok := _c.mutation.FrustrationScore(); ok {
		_spec.SetField(masterystate.FieldFrustrationScore, field.TypeFloat64, value)
		_node.FrustrationScore = value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(masterystate.FieldAttempts, field.TypeInt, value)
		_node.Attempts = value
	}
	if value, ok := _c.mutation.RecommendedByAdapter(); ok {
		_spec.SetField(masterystate.FieldRecommendedByAdapter, field.TypeBool, value)
		_node.RecommendedByAdapter = value
	}
	if value, ok := _c.mutation.LastSeen(); ok {
		_spec.SetField(masterystate.FieldLastSeen, field.TypeTime, value)
		_node.LastSeen = value
	}
	return _node, _spec
}

// MasteryStateCreateBulk is the builder for creating many MasteryState entities in bulk.
type MasteryStateCreateBulk struct {
	config
	err      error
	builders []*MasteryStateCreate
}

// Save creates the MasteryState entities in the database.
func (_c *MasteryStateCreateBulk) Save(ctx context.Context) ([]*MasteryState, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MasteryState, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MasteryStateMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *MasteryStateCreateBulk) SaveX(ctx context.Context) []*MasteryState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MasteryStateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MasteryStateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
