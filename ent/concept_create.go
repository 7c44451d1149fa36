// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/masteryforge/ent/concept"
)

// ConceptCreate is the builder for creating a Concept entity.
type ConceptCreate struct {
	config
	mutation *ConceptMutation
	hooks    []Hook
}

// SetCourseID sets the "course_id" field.
func (_c *ConceptCreate) SetCourseID(v string) *ConceptCreate {
	_c.mutation.SetCourseID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *ConceptCreate) SetTitle(v string) *ConceptCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *ConceptCreate) SetDescription(v string) *ConceptCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *ConceptCreate) SetNillableDescription(v *string) *ConceptCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *ConceptCreate) SetDifficulty(v int) *ConceptCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_c *ConceptCreate) SetNillableDifficulty(v *int) *ConceptCreate {
	if v != nil {
		_c.SetDifficulty(*v)
	}
	return _c
}

// SetOrderIndex sets the "order_index" field.
func (_c *ConceptCreate) SetOrderIndex(v int) *ConceptCreate {
	_c.mutation.SetOrderIndex(v)
	return _c
}

// SetNillableOrderIndex sets the "order_index" field if the given value is not nil.
func (_c *ConceptCreate) SetNillableOrderIndex(v *int) *ConceptCreate {
	if v != nil {
		_c.SetOrderIndex(*v)
	}
	return _c
}

// SetPrerequisites sets the "prerequisites" field.
func (_c *ConceptCreate) SetPrerequisites(v []string) *ConceptCreate {
	_c.mutation.SetPrerequisites(v)
	return _c
}

// SetActive sets the "active" field.
func (_c *ConceptCreate) SetActive(v bool) *ConceptCreate {
	_c.mutation.SetActive(v)
	return _c
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_c *ConceptCreate) SetNillableActive(v *bool) *ConceptCreate {
	if v != nil {
		_c.SetActive(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ConceptCreate) SetID(v string) *ConceptCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ConceptMutation object of the builder.
func (_c *ConceptCreate) Mutation() *ConceptMutation {
	return _c.mutation
}

// Save creates the Concept in the database.
func (_c *ConceptCreate) Save(ctx context.Context) (*Concept, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ConceptCreate) SaveX(ctx context.Context) *Concept {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConceptCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConceptCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ConceptCreate) defaults() {
	if _, ok := _c.mutation.Description(); !ok {
		v := concept.DefaultDescription
		_c.mutation.SetDescription(v)
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		v := concept.DefaultDifficulty
		_c.mutation.SetDifficulty(v)
	}
	if _, ok := _c.mutation.OrderIndex(); !ok {
		v := concept.DefaultOrderIndex
		_c.mutation.SetOrderIndex(v)
	}
	if _, ok := _c.mutation.Active(); !ok {
		v := concept.DefaultActive
		_c.mutation.SetActive(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ConceptCreate) check() error {
	if _, ok := _c.mutation.CourseID(); !ok {
		return &ValidationError{Name: "course_id", err: errors.New(`ent: missing required field "Concept.course_id"`)}
	}
	if v, ok := _c.mutation.CourseID(); ok {
		if err := concept.CourseIDValidator(v); err != nil {
			return &ValidationError{Name: "course_id", err: fmt.Errorf(`ent: validator failed for field "Concept.course_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Concept.title"`)}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "Concept.description"`)}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "Concept.difficulty"`)}
	}
	if v, ok := _c.mutation.Difficulty(); ok {
		if err := concept.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "Concept.difficulty": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OrderIndex(); !ok {
		return &ValidationError{Name: "order_index", err: errors.New(`ent: missing required field "Concept.order_index"`)}
	}
	if _, ok := _c.mutation.Active(); !ok {
		return &ValidationError{Name: "active", err: errors.New(`ent: missing required field "Concept.active"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := concept.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "Concept.id": %w`, err)}
		}
	}
	return nil
}

func (_c *ConceptCreate) sqlSave(ctx context.Context) (*Concept, error) {
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
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Concept.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ConceptCreate) createSpec() (*Concept, *sqlgraph.CreateSpec) {
	var (
		_node = &Concept{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(concept.Table, sqlgraph.NewFieldSpec(concept.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CourseID(); ok {
		_spec.SetField(concept.FieldCourseID, field.TypeString, value)
		_node.CourseID = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(concept.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(concept.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(concept.FieldDifficulty, field.TypeInt, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.OrderIndex(); ok {
		_spec.SetField(concept.FieldOrderIndex, field.TypeInt, value)
		_node.OrderIndex = value
	}
	if value, ok := _c.mutation.Prerequisites(); ok {
		_spec.SetField(concept.FieldPrerequisites, field.TypeJSON, value)
		_node.Prerequisites = value
	}
	if value, ok := _c.mutation.Active(); ok {
		_spec.SetField(concept.FieldActive, field.TypeBool, value)
		_node.Active = value
	}
	return _node, _spec
}

// ConceptCreateBulk is the builder for creating many Concept entities in bulk.
type ConceptCreateBulk struct {
	config
	err      error
	builders []*ConceptCreate
}

// Save creates the Concept entities in the database.
func (_c *ConceptCreateBulk) Save(ctx context.Context) ([]*Concept, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Concept, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ConceptMutation)
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
func (_c *ConceptCreateBulk) SaveX(ctx context.Context) []*Concept {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConceptCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConceptCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
