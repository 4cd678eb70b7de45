// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/medalizer/blood-report-analyzer/gen/ent/metric"
	"github.com/medalizer/blood-report-analyzer/gen/ent/report"
)

// MetricCreate is the builder for creating a Metric entity.
type MetricCreate struct {
	config
	mutation *MetricMutation
	hooks    []Hook
}

// SetReportID sets the "report_id" field.
func (_c *MetricCreate) SetReportID(v uuid.UUID) *MetricCreate {
	_c.mutation.SetReportID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *MetricCreate) SetName(v string) *MetricCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetValue sets the "value" field.
func (_c *MetricCreate) SetValue(v float64) *MetricCreate {
	_c.mutation.SetValue(v)
	return _c
}

// SetUnit sets the "unit" field.
func (_c *MetricCreate) SetUnit(v string) *MetricCreate {
	_c.mutation.SetUnit(v)
	return _c
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_c *MetricCreate) SetNillableUnit(v *string) *MetricCreate {
	if v != nil {
		_c.SetUnit(*v)
	}
	return _c
}

// SetReferenceMin sets the "reference_min" field.
func (_c *MetricCreate) SetReferenceMin(v float64) *MetricCreate {
	_c.mutation.SetReferenceMin(v)
	return _c
}

// SetReferenceMax sets the "reference_max" field.
func (_c *MetricCreate) SetReferenceMax(v float64) *MetricCreate {
	_c.mutation.SetReferenceMax(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *MetricCreate) SetStatus(v string) *MetricCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetID sets the "id" field.
func (_c *MetricCreate) SetID(v uuid.UUID) *MetricCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *MetricCreate) SetNillableID(v *uuid.UUID) *MetricCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetReport sets the "report" edge to the Report entity.
func (_c *MetricCreate) SetReport(v *Report) *MetricCreate {
	return _c.SetReportID(v.ID)
}

// Mutation returns the MetricMutation object of the builder.
func (_c *MetricCreate) Mutation() *MetricMutation {
	return _c.mutation
}

// Save creates the Metric in the database.
func (_c *MetricCreate) Save(ctx context.Context) (*Metric, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MetricCreate) SaveX(ctx context.Context) *Metric {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MetricCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MetricCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MetricCreate) defaults() {
	if _, ok := _c.mutation.ID(); !ok {
		v := metric.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MetricCreate) check() error {
	if _, ok := _c.mutation.ReportID(); !ok {
		return &ValidationError{Name: "report_id", err: errors.New(`ent: missing required field "Metric.report_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Metric.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := metric.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Metric.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Value(); !ok {
		return &ValidationError{Name: "value", err: errors.New(`ent: missing required field "Metric.value"`)}
	}
	if _, ok := _c.mutation.ReferenceMin(); !ok {
		return &ValidationError{Name: "reference_min", err: errors.New(`ent: missing required field "Metric.reference_min"`)}
	}
	if _, ok := _c.mutation.ReferenceMax(); !ok {
		return &ValidationError{Name: "reference_max", err: errors.New(`ent: missing required field "Metric.reference_max"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Metric.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := metric.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Metric.status": %w`, err)}
		}
	}
	if len(_c.mutation.ReportIDs()) == 0 {
		return &ValidationError{Name: "report", err: errors.New(`ent: missing required edge "Metric.report"`)}
	}
	return nil
}

func (_c *MetricCreate) sqlSave(ctx context.Context) (*Metric, error) {
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

func (_c *MetricCreate) createSpec() (*Metric, *sqlgraph.CreateSpec) {
	var (
		_node = &Metric{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(metric.Table, sqlgraph.NewFieldSpec(metric.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(metric.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Value(); ok {
		_spec.SetField(metric.FieldValue, field.TypeFloat64, value)
		_node.Value = value
	}
	if value, ok := _c.mutation.Unit(); ok {
		_spec.SetField(metric.FieldUnit, field.TypeString, value)
		_node.Unit = value
	}
	if value, ok := _c.mutation.ReferenceMin(); ok {
		_spec.SetField(metric.FieldReferenceMin, field.TypeFloat64, value)
		_node.ReferenceMin = value
	}
	if value, ok := _c.mutation.ReferenceMax(); ok {
		_spec.SetField(metric.FieldReferenceMax, field.TypeFloat64, value)
		_node.ReferenceMax = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(metric.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if nodes := _c.mutation.ReportIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   metric.ReportTable,
			Columns: []string{metric.ReportColumn},
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

// MetricCreateBulk is the builder for creating many Metric entities in bulk.
type MetricCreateBulk struct {
	config
	err      error
	builders []*MetricCreate
}

// Save creates the Metric entities in the database.
func (_c *MetricCreateBulk) Save(ctx context.Context) ([]*Metric, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Metric, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MetricMutation)
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
func (_c *MetricCreateBulk) SaveX(ctx context.Context) []*Metric {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MetricCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MetricCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
