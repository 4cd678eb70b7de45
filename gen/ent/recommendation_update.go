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
	"github.com/medalizer/blood-report-analyzer/gen/ent/predicate"
	"github.com/medalizer/blood-report-analyzer/gen/ent/recommendation"
	"github.com/medalizer/blood-report-analyzer/gen/ent/report"
)

// RecommendationUpdate is the builder for updating Recommendation entities.
type RecommendationUpdate struct {
	config
	hooks    []Hook
	mutation *RecommendationMutation
}

// Where appends a list predicates to the RecommendationUpdate builder.
func (_u *RecommendationUpdate) Where(ps ...predicate.Recommendation) *RecommendationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetReportID sets the "report_id" field.
func (_u *RecommendationUpdate) SetReportID(v uuid.UUID) *RecommendationUpdate {
	_u.mutation.SetReportID(v)
	return _u
}

// SetNillableReportID sets the "report_id" field if the given value is not nil.
func (_u *RecommendationUpdate) SetNillableReportID(v *uuid.UUID) *RecommendationUpdate {
	if v != nil {
		_u.SetReportID(*v)
	}
	return _u
}

// SetText sets the "text" field.
func (_u *RecommendationUpdate) SetText(v string) *RecommendationUpdate {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *RecommendationUpdate) SetNillableText(v *string) *RecommendationUpdate {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *RecommendationUpdate) SetPosition(v int) *RecommendationUpdate {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *RecommendationUpdate) SetNillablePosition(v *int) *RecommendationUpdate {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *RecommendationUpdate) AddPosition(v int) *RecommendationUpdate {
	_u.mutation.AddPosition(v)
	return _u
}

// SetReport sets the "report" edge to the Report entity.
func (_u *RecommendationUpdate) SetReport(v *Report) *RecommendationUpdate {
	return _u.SetReportID(v.ID)
}

// Mutation returns the RecommendationMutation object of the builder.
func (_u *RecommendationUpdate) Mutation() *RecommendationMutation {
	return _u.mutation
}

// ClearReport clears the "report" edge to the Report entity.
func (_u *RecommendationUpdate) ClearReport() *RecommendationUpdate {
	_u.mutation.ClearReport()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RecommendationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RecommendationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RecommendationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RecommendationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RecommendationUpdate) check() error {
	if v, ok := _u.mutation.Text(); ok {
		if err := recommendation.TextValidator(v); err != nil {
			return &ValidationError{Name: "text", err: fmt.Errorf(`ent: validator failed for field "Recommendation.text": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Position(); ok {
		if err := recommendation.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "Recommendation.position": %w`, err)}
		}
	}
	if _u.mutation.ReportCleared() && len(_u.mutation.ReportIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Recommendation.report"`)
	}
	return nil
}

func (_u *RecommendationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(recommendation.Table, recommendation.Columns, sqlgraph.NewFieldSpec(recommendation.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(recommendation.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(recommendation.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(recommendation.FieldPosition, field.TypeInt, value)
	}
	if _u.mutation.ReportCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReportIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{recommendation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RecommendationUpdateOne is the builder for updating a single Recommendation entity.
type RecommendationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RecommendationMutation
}

// SetReportID sets the "report_id" field.
func (_u *RecommendationUpdateOne) SetReportID(v uuid.UUID) *RecommendationUpdateOne {
	_u.mutation.SetReportID(v)
	return _u
}

// SetNillableReportID sets the "report_id" field if the given value is not nil.
func (_u *RecommendationUpdateOne) SetNillableReportID(v *uuid.UUID) *RecommendationUpdateOne {
	if v != nil {
		_u.SetReportID(*v)
	}
	return _u
}

// SetText sets the "text" field.
func (_u *RecommendationUpdateOne) SetText(v string) *RecommendationUpdateOne {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *RecommendationUpdateOne) SetNillableText(v *string) *RecommendationUpdateOne {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *RecommendationUpdateOne) SetPosition(v int) *RecommendationUpdateOne {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *RecommendationUpdateOne) SetNillablePosition(v *int) *RecommendationUpdateOne {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *RecommendationUpdateOne) AddPosition(v int) *RecommendationUpdateOne {
	_u.mutation.AddPosition(v)
	return _u
}

// SetReport sets the "report" edge to the Report entity.
func (_u *RecommendationUpdateOne) SetReport(v *Report) *RecommendationUpdateOne {
	return _u.SetReportID(v.ID)
}

// Mutation returns the RecommendationMutation object of the builder.
func (_u *RecommendationUpdateOne) Mutation() *RecommendationMutation {
	return _u.mutation
}

// ClearReport clears the "report" edge to the Report entity.
func (_u *RecommendationUpdateOne) ClearReport() *RecommendationUpdateOne {
	_u.mutation.ClearReport()
	return _u
}

// Where appends a list predicates to the RecommendationUpdate builder.
func (_u *RecommendationUpdateOne) Where(ps ...predicate.Recommendation) *RecommendationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RecommendationUpdateOne) Select(field string, fields ...string) *RecommendationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Recommendation entity.
func (_u *RecommendationUpdateOne) Save(ctx context.Context) (*Recommendation, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RecommendationUpdateOne) SaveX(ctx context.Context) *Recommendation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RecommendationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RecommendationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RecommendationUpdateOne) check() error {
	if v, ok := _u.mutation.Text(); ok {
		if err := recommendation.TextValidator(v); err != nil {
			return &ValidationError{Name: "text", err: fmt.Errorf(`ent: validator failed for field "Recommendation.text": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Position(); ok {
		if err := recommendation.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "Recommendation.position": %w`, err)}
		}
	}
	if _u.mutation.ReportCleared() && len(_u.mutation.ReportIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Recommendation.report"`)
	}
	return nil
}

func (_u *RecommendationUpdateOne) sqlSave(ctx context.Context) (_node *Recommendation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(recommendation.Table, recommendation.Columns, sqlgraph.NewFieldSpec(recommendation.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Recommendation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, recommendation.FieldID)
		for _, f := range fields {
			if !recommendation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != recommendation.FieldID {
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
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(recommendation.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(recommendation.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(recommendation.FieldPosition, field.TypeInt, value)
	}
	if _u.mutation.ReportCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReportIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Recommendation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{recommendation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
