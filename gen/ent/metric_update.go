// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/medalizer/blood-report-analyzer/gen/ent/metric"
	"github.com/medalizer/blood-report-analyzer/gen/ent/predicate"
	"github.com/medalizer/blood-report-analyzer/gen/ent/report"
)

// MetricUpdate is the builder for updating Metric entities.
type MetricUpdate struct {
	config
	hooks    []Hook
	mutation *MetricMutation
}

// Where appends a list predicates to the MetricUpdate builder.
func (_u *MetricUpdate) Where(ps ...predicate.Metric) *MetricUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetReportID sets the "report_id" field.
func (_u *MetricUpdate) SetReportID(v uuid.UUID) *MetricUpdate {
	_u.mutation.SetReportID(v)
	return _u
}

// SetNillableReportID sets the "report_id" field if the given value is not nil.
func (_u *MetricUpdate) SetNillableReportID(v *uuid.UUID) *MetricUpdate {
	if v != nil {
		_u.SetReportID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *MetricUpdate) SetName(v string) *MetricUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *MetricUpdate) SetNillableName(v *string) *MetricUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *MetricUpdate) SetValue(v float64) *MetricUpdate {
	_u.mutation.ResetValue()
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *MetricUpdate) SetNillableValue(v *float64) *MetricUpdate {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// AddValue adds value to the "value" field.
func (_u *MetricUpdate) AddValue(v float64) *MetricUpdate {
	_u.mutation.AddValue(v)
	return _u
}

// SetUnit sets the "unit" field.
func (_u *MetricUpdate) SetUnit(v string) *MetricUpdate {
	_u.mutation.SetUnit(v)
	return _u
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_u *MetricUpdate) SetNillableUnit(v *string) *MetricUpdate {
	if v != nil {
		_u.SetUnit(*v)
	}
	return _u
}

// ClearUnit clears the value of the "unit" field.
func (_u *MetricUpdate) ClearUnit() *MetricUpdate {
	_u.mutation.ClearUnit()
	return _u
}

// SetReferenceMin sets the "reference_min" field.
func (_u *MetricUpdate) SetReferenceMin(v float64) *MetricUpdate {
	_u.mutation.ResetReferenceMin()
	_u.mutation.SetReferenceMin(v)
	return _u
}

// SetNillableReferenceMin sets the "reference_min" field if the given value is not nil.
func (_u *MetricUpdate) SetNillableReferenceMin(v *float64) *MetricUpdate {
	if v != nil {
		_u.SetReferenceMin(*v)
	}
	return _u
}

// AddReferenceMin adds value to the "reference_min" field.
func (_u *MetricUpdate) AddReferenceMin(v float64) *MetricUpdate {
	_u.mutation.AddReferenceMin(v)
	return _u
}

// SetReferenceMax sets the "reference_max" field.
func (_u *MetricUpdate) SetReferenceMax(v float64) *MetricUpdate {
	_u.mutation.ResetReferenceMax()
	_u.mutation.SetReferenceMax(v)
	return _u
}

// SetNillableReferenceMax sets the "reference_max" field if the given value is not nil.
func (_u *MetricUpdate) SetNillableReferenceMax(v *float64) *MetricUpdate {
	if v != nil {
		_u.SetReferenceMax(*v)
	}
	return _u
}

// AddReferenceMax adds value to the "reference_max" field.
func (_u *MetricUpdate) AddReferenceMax(v float64) *MetricUpdate {
	_u.mutation.AddReferenceMax(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *MetricUpdate) SetStatus(v string) *MetricUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *MetricUpdate) SetNillableStatus(v *string) *MetricUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetReport sets the "report" edge to the Report entity.
func (_u *MetricUpdate) SetReport(v *Report) *MetricUpdate {
	return _u.SetReportID(v.ID)
}

// Mutation returns the MetricMutation object of the builder.
func (_u *MetricUpdate) Mutation() *MetricMutation {
	return _u.mutation
}

// ClearReport clears the "report" edge to the Report entity.
func (_u *MetricUpdate) ClearReport() *MetricUpdate {
	_u.mutation.ClearReport()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MetricUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MetricUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MetricUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MetricUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MetricUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := metric.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Metric.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := metric.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Metric.status": %w`, err)}
		}
	}
	if _u.mutation.ReportCleared() && len(_u.mutation.ReportIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Metric.report"`)
	}
	return nil
}

func (_u *MetricUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(metric.Table, metric.Columns, sqlgraph.NewFieldSpec(metric.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(metric.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(metric.FieldValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedValue(); ok {
		_spec.AddField(metric.FieldValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Unit(); ok {
		_spec.SetField(metric.FieldUnit, field.TypeString, value)
	}
	if _u.mutation.UnitCleared() {
		_spec.ClearField(metric.FieldUnit, field.TypeString)
	}
	if value, ok := _u.mutation.ReferenceMin(); ok {
		_spec.SetField(metric.FieldReferenceMin, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedReferenceMin(); ok {
		_spec.AddField(metric.FieldReferenceMin, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ReferenceMax(); ok {
		_spec.SetField(metric.FieldReferenceMax, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedReferenceMax(); ok {
		_spec.AddField(metric.FieldReferenceMax, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(metric.FieldStatus, field.TypeString, value)
	}
	if _u.mutation.ReportCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReportIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{metric.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MetricUpdateOne is the builder for updating a single Metric entity.
type MetricUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MetricMutation
}

// SetReportID sets the "report_id" field.
func (_u *MetricUpdateOne) SetReportID(v uuid.UUID) *MetricUpdateOne {
	_u.mutation.SetReportID(v)
	return _u
}

// SetNillableReportID sets the "report_id" field if the given value is not nil.
func (_u *MetricUpdateOne) SetNillableReportID(v *uuid.UUID) *MetricUpdateOne {
	if v != nil {
		_u.SetReportID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *MetricUpdateOne) SetName(v string) *MetricUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *MetricUpdateOne) SetNillableName(v *string) *MetricUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *MetricUpdateOne) SetValue(v float64) *MetricUpdateOne {
	_u.mutation.ResetValue()
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *MetricUpdateOne) SetNillableValue(v *float64) *MetricUpdateOne {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// AddValue adds value to the "value" field.
func (_u *MetricUpdateOne) AddValue(v float64) *MetricUpdateOne {
	_u.mutation.AddValue(v)
	return _u
}

// SetUnit sets the "unit" field.
func (_u *MetricUpdateOne) SetUnit(v string) *MetricUpdateOne {
	_u.mutation.SetUnit(v)
	return _u
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_u *MetricUpdateOne) SetNillableUnit(v *string) *MetricUpdateOne {
	if v != nil {
		_u.SetUnit(*v)
	}
	return _u
}

// ClearUnit clears the value of the "unit" field.
func (_u *MetricUpdateOne) ClearUnit() *MetricUpdateOne {
	_u.mutation.ClearUnit()
	return _u
}

// SetReferenceMin sets the "reference_min" field.
func (_u *MetricUpdateOne) SetReferenceMin(v float64) *MetricUpdateOne {
	_u.mutation.ResetReferenceMin()
	_u.mutation.SetReferenceMin(v)
	return _u
}

// SetNillableReferenceMin sets the "reference_min" field if the given value is not nil.
func (_u *MetricUpdateOne) SetNillableReferenceMin(v *float64) *MetricUpdateOne {
	if v != nil {
		_u.SetReferenceMin(*v)
	}
	return _u
}

// AddReferenceMin adds value to the "reference_min" field.
func (_u *MetricUpdateOne) AddReferenceMin(v float64) *MetricUpdateOne {
	_u.mutation.AddReferenceMin(v)
	return _u
}

// SetReferenceMax sets the "reference_max" field.
func (_u *MetricUpdateOne) SetReferenceMax(v float64) *MetricUpdateOne {
	_u.mutation.ResetReferenceMax()
	_u.mutation.SetReferenceMax(v)
	return _u
}

// SetNillableReferenceMax sets the "reference_max" field if the given value is not nil.
func (_u *MetricUpdateOne) SetNillableReferenceMax(v *float64) *MetricUpdateOne {
	if v != nil {
		_u.SetReferenceMax(*v)
	}
	return _u
}

// AddReferenceMax adds value to the "reference_max" field.
func (_u *MetricUpdateOne) AddReferenceMax(v float64) *MetricUpdateOne {
	_u.mutation.AddReferenceMax(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *MetricUpdateOne) SetStatus(v string) *MetricUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *MetricUpdateOne) SetNillableStatus(v *string) *MetricUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetReport sets the "report" edge to the Report entity.
func (_u *MetricUpdateOne) SetReport(v *Report) *MetricUpdateOne {
	return _u.SetReportID(v.ID)
}

// Mutation returns the MetricMutation object of the builder.
func (_u *MetricUpdateOne) Mutation() *MetricMutation {
	return _u.mutation
}

// ClearReport clears the "report" edge to the Report entity.
func (_u *MetricUpdateOne) ClearReport() *MetricUpdateOne {
	_u.mutation.ClearReport()
	return _u
}

// Where appends a list predicates to the MetricUpdate builder.
func (_u *MetricUpdateOne) Where(ps ...predicate.Metric) *MetricUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MetricUpdateOne) Select(field string, fields ...string) *MetricUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Metric entity.
func (_u *MetricUpdateOne) Save(ctx context.Context) (*Metric, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MetricUpdateOne) SaveX(ctx context.Context) *Metric {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MetricUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MetricUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MetricUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := metric.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Metric.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := metric.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Metric.status": %w`, err)}
		}
	}
	if _u.mutation.ReportCleared() && len(_u.mutation.ReportIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Metric.report"`)
	}
	return nil
}

func (_u *MetricUpdateOne) sqlSave(ctx context.Context) (_node *Metric, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(metric.Table, metric.Columns, sqlgraph.NewFieldSpec(metric.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Metric.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, metric.FieldID)
		for _, f := range fields {
			if !metric.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != metric.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(metric.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(metric.FieldValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedValue(); ok {
		_spec.AddField(metric.FieldValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Unit(); ok {
		_spec.SetField(metric.FieldUnit, field.TypeString, value)
	}
	if _u.mutation.UnitCleared() {
		_spec.ClearField(metric.FieldUnit, field.TypeString)
	}
	if value, ok := _u.mutation.ReferenceMin(); ok {
		_spec.SetField(metric.FieldReferenceMin, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedReferenceMin(); ok {
		_spec.AddField(metric.FieldReferenceMin, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ReferenceMax(); ok {
		_spec.SetField(metric.FieldReferenceMax, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedReferenceMax(); ok {
		_spec.AddField(metric.FieldReferenceMax, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(metric.FieldStatus, field.TypeString, value)
	}
	if _u.mutation.ReportCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReportIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Metric{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{metric.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
