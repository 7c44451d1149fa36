// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/masteryforge/ent/quizattempt"
)

// QuizAttemptCreate is the builder for creating a QuizAttempt entity.
type QuizAttemptCreate struct {
	config
	mutation *QuizAttemptMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *QuizAttemptCreate) SetCreatedAt(v time.Time) *QuizAttemptCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *QuizAttemptCreate) SetNillableCreatedAt(v *time.Time) *QuizAttemptCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *QuizAttemptCreate) SetUserID(v string) *QuizAttemptCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetConceptID sets the "concept_id" field.
func (_c *QuizAttemptCreate) SetConceptID(v string) *QuizAttemptCreate {
	_c.mutation.SetConceptID(v)
	return _c
}

// SetCourseID sets the "course_id" field.
func (_c *QuizAttemptCreate) SetCourseID(v string) *QuizAttemptCreate {
	_c.mutation.SetCourseID(v)
	return _c
}

// SetScorePercent sets the "score_percent" field.
func (_c *QuizAttemptCreate) SetScorePercent(v float64) *QuizAttemptCreate {
	_c.mutation.SetScorePercent(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *QuizAttemptCreate) SetSessionID(v string) *QuizAttemptCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_c *QuizAttemptCreate) SetNillableSessionID(v *string) *QuizAttemptCreate {
	if v != nil {
		_c.SetSessionID(*v)
	}
	return _c
}

// Mutation returns the QuizAttemptMutation object of the builder.
func (_c *QuizAttemptCreate) Mutation() *QuizAttemptMutation {
	return _c.mutation
}

// Save creates the QuizAttempt in the database.
func (_c *QuizAttemptCreate) Save(ctx context.Context) (*QuizAttempt, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuizAttemptCreate) SaveX(ctx context.Context) *QuizAttempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuizAttemptCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuizAttemptCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuizAttemptCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := quizattempt.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		v := quizattempt.DefaultSessionID
		_c.mutation.SetSessionID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuizAttemptCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "QuizAttempt.created_at"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "QuizAttempt.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := quizattempt.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "QuizAttempt.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ConceptID(); !ok {
		return &ValidationError{Name: "concept_id", err: errors.New(`ent: missing required field "QuizAttempt.concept_id"`)}
	}
	if v, ok := _c.mutation.ConceptID(); ok {
		if err := quizattempt.ConceptIDValidator(v); err != nil {
			return &ValidationError{Name: "concept_id", err: fmt.Errorf(`ent: validator failed for field "QuizAttempt.concept_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CourseID(); !ok {
		return &ValidationError{Name: "course_id", err: errors.New(`ent: missing required field "QuizAttempt.course_id"`)}
	}
	if _, ok := _c.mutation.ScorePercent(); !ok {
		return &ValidationError{Name: "score_percent", err: errors.New(`ent: missing required field "QuizAttempt.score_percent"`)}
	}
	if v, ok := _c.mutation.ScorePercent(); ok {
		if err := quizattempt.ScorePercentValidator(v); err != nil {
			return &ValidationError{Name: "score_percent", err: fmt.Errorf(`ent: validator failed for field "QuizAttempt.score_percent": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "QuizAttempt.session_id"`)}
	}
	return nil
}

func (_c *QuizAttemptCreate) sqlSave(ctx context.Context) (*QuizAttempt, error) {
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

func (_c *QuizAttemptCreate) createSpec() (*QuizAttempt, *sqlgraph.CreateSpec) {
	var (
		_node = &QuizAttempt{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(quizattempt.Table, sqlgraph.NewFieldSpec(quizattempt.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(quizattempt.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(quizattempt.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.ConceptID(); ok {
		_spec.SetField(quizattempt.FieldConceptID, field.TypeString, value)
		_node.ConceptID = value
	}
	if value, ok := _c.mutation.CourseID(); ok {
		_spec.SetField(quizattempt.FieldCourseID, field.TypeString, value)
		_node.CourseID = value
	}
	if value, ok := _c.mutation.ScorePercent(); ok {
		_spec.SetField(quizattempt.FieldScorePercent, field.TypeFloat64, value)
		_node.ScorePercent = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(quizattempt.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	return _node, _spec
}

// QuizAttemptCreateBulk is the builder for creating many QuizAttempt entities in bulk.
type QuizAttemptCreateBulk struct {
	config
	err      error
	builders []*QuizAttemptCreate
}

// Save creates the QuizAttempt entities in the database.
func (_c *QuizAttemptCreateBulk) Save(ctx context.Context) ([]*QuizAttempt, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QuizAttempt, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuizAttemptMutation)
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
func (_c *QuizAttemptCreateBulk) SaveX(ctx context.Context) []*QuizAttempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuizAttemptCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuizAttemptCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
