// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/medalizer/blood-report-analyzer/gen/ent/recommendation"
	"github.com/medalizer/blood-report-analyzer/gen/ent/report"
)

// RecommendationCreate is the builder for creating a Recommendation entity.
type RecommendationCreate struct {
	config
	mutation *RecommendationMutation
	hooks    []Hook
}

// SetReportID sets the "report_id" field.
func (_c *RecommendationCreate) SetReportID(v uuid.UUID) *RecommendationCreate {
	_c.mutation.SetReportID(v)
	return _c
}

// SetText sets the "text" field.
func (_c *RecommendationCreate) SetText(v string) *RecommendationCreate {
	_c.mutation.SetText(v)
	return _c
}

// SetPosition sets the "position" field.
func (_c *RecommendationCreate) SetPosition(v int) *RecommendationCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetID sets the "id" field.
func (_c *RecommendationCreate) SetID(v uuid.UUID) *RecommendationCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *RecommendationCreate) SetNillableID(v *uuid.UUID) *RecommendationCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetReport sets the "report" edge to the Report entity.
func (_c *RecommendationCreate) SetReport(v *Report) *RecommendationCreate {
	return _c.SetReportID(v.ID)
}

// Mutation returns the RecommendationMutation object of the builder.
func (_c *RecommendationCreate) Mutation() *RecommendationMutation {
	return _c.mutation
}

// Save creates the Recommendation in the database.
func (_c *RecommendationCreate) Save(ctx context.Context) (*Recommendation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RecommendationCreate) SaveX(ctx context.Context) *Recommendation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RecommendationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RecommendationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RecommendationCreate) defaults() {
	if _, ok := _c.mutation.ID(); !ok {
		v := recommendation.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RecommendationCreate) check() error {
	if _, ok := _c.mutation.ReportID(); !ok {
		return &ValidationError{Name: "report_id", err: errors.New(`ent: missing required field "Recommendation.report_id"`)}
	}
	if _, ok := _c.mutation.Text(); !ok {
		return &ValidationError{Name: "text", err: errors.New(`ent: missing required field "Recommendation.text"`)}
	}
	if v, ok := _c.mutation.Text(); ok {
		if err := recommendation.TextValidator(v); err != nil {
			return &ValidationError{Name: "text", err: fmt.Errorf(`ent: validator failed for field "Recommendation.text": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required field "Recommendation.position"`)}
	}
	if v, ok := _c.mutation.Position(); ok {
		if err := recommendation.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "Recommendation.position": %w`, err)}
		}
	}
	if len(_c.mutation.ReportIDs()) == 0 {
		return &ValidationError{Name: "report", err: errors.New(`ent: missing required edge "Recommendation.report"`)}
	}
	return nil
}

func (_c *RecommendationCreate) sqlSave(ctx context.Context) (*Recommendation, error) {
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

func (_c *RecommendationCreate) createSpec() (*Recommendation, *sqlgraph.CreateSpec) {
	var (
		_node = &Recommendation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(recommendation.Table, sqlgraph.NewFieldSpec(recommendation.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Text(); ok {
		_spec.SetField(recommendation.FieldText, field.TypeString, value)
		_node.Text = value
	}
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(recommendation.FieldPosition, field.TypeInt, value)
		_node.Position = value
	}
	if nodes := _c.mutation.ReportIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   recommendation.ReportTable,
			Columns: []string{recommendation.ReportColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(report.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ReportID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// RecommendationCreateBulk is the builder for creating many Recommendation entities in bulk.
type RecommendationCreateBulk struct {
	config
	err      error
	builders []*RecommendationCreate
}

// Save creates the Recommendation entities in the database.
func (_c *RecommendationCreateBulk) Save(ctx context.Context) ([]*Recommendation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Recommendation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RecommendationMutation)
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
func (_c *RecommendationCreateBulk) SaveX(ctx context.Context) []*Recommendation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RecommendationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RecommendationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
