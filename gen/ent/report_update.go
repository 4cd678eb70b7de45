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
	"github.com/google/uuid"
	"github.com/medalizer/blood-report-analyzer/gen/ent/metric"
	"github.com/medalizer/blood-report-analyzer/gen/ent/predicate"
	"github.com/medalizer/blood-report-analyzer/gen/ent/recommendation"
	"github.com/medalizer/blood-report-analyzer/gen/ent/report"
	"github.com/medalizer/blood-report-analyzer/gen/ent/user"
)

// ReportUpdate is the builder for updating Report entities.
type ReportUpdate struct {
	config
	hooks    []Hook
	mutation *ReportMutation
}

// Where appends a list predicates to the ReportUpdate builder.
func (_u *ReportUpdate) Where(ps ...predicate.Report) *ReportUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ReportUpdate) SetUserID(v uuid.UUID) *ReportUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableUserID(v *uuid.UUID) *ReportUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetFilename sets the "filename" field.
func (_u *ReportUpdate) SetFilename(v string) *ReportUpdate {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableFilename(v *string) *ReportUpdate {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetFilePath sets the "file_path" field.
func (_u *ReportUpdate) SetFilePath(v string) *ReportUpdate {
	_u.mutation.SetFilePath(v)
	return _u
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableFilePath(v *string) *ReportUpdate {
	if v != nil {
		_u.SetFilePath(*v)
	}
	return _u
}

// SetExtractedText sets the "extracted_text" field.
func (_u *ReportUpdate) SetExtractedText(v string) *ReportUpdate {
	_u.mutation.SetExtractedText(v)
	return _u
}

// SetNillableExtractedText sets the "extracted_text" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableExtractedText(v *string) *ReportUpdate {
	if v != nil {
		_u.SetExtractedText(*v)
	}
	return _u
}

// ClearExtractedText clears the value of the "extracted_text" field.
func (_u *ReportUpdate) ClearExtractedText() *ReportUpdate {
	_u.mutation.ClearExtractedText()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *ReportUpdate) SetSummary(v string) *ReportUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableSummary(v *string) *ReportUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *ReportUpdate) ClearSummary() *ReportUpdate {
	_u.mutation.ClearSummary()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ReportUpdate) SetStatus(v string) *ReportUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableStatus(v *string) *ReportUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ReportUpdate) SetCreatedAt(v time.Time) *ReportUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableCreatedAt(v *time.Time) *ReportUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *ReportUpdate) SetUser(v *User) *ReportUpdate {
	return _u.SetUserID(v.ID)
}

// AddMetricIDs adds the "metrics" edge to the Metric entity by IDs.
func (_u *ReportUpdate) AddMetricIDs(ids ...uuid.UUID) *ReportUpdate {
	_u.mutation.AddMetricIDs(ids...)
	return _u
}

// AddMetrics adds the "metrics" edges to the Metric entity.
func (_u *ReportUpdate) AddMetrics(v ...*Metric) *ReportUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMetricIDs(ids...)
}

// AddRecommendationIDs adds the "recommendations" edge to the Recommendation entity by IDs.
func (_u *ReportUpdate) AddRecommendationIDs(ids ...uuid.UUID) *ReportUpdate {
	_u.mutation.AddRecommendationIDs(ids...)
	return _u
}

// AddRecommendations adds the "recommendations" edges to the Recommendation entity.
func (_u *ReportUpdate) AddRecommendations(v ...*Recommendation) *ReportUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRecommendationIDs(ids...)
}

// Mutation returns the ReportMutation object of the builder.
func (_u *ReportUpdate) Mutation() *ReportMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *ReportUpdate) ClearUser() *ReportUpdate {
	_u.mutation.ClearUser()
	return _u
}

// ClearMetrics clears all "metrics" edges to the Metric entity.
func (_u *ReportUpdate) ClearMetrics() *ReportUpdate {
	_u.mutation.ClearMetrics()
	return _u
}

// RemoveMetricIDs removes the "metrics" edge to Metric entities by IDs.
func (_u *ReportUpdate) RemoveMetricIDs(ids ...uuid.UUID) *ReportUpdate {
	_u.mutation.RemoveMetricIDs(ids...)
	return _u
}

// RemoveMetrics removes "metrics" edges to Metric entities.
func (_u *ReportUpdate) RemoveMetrics(v ...*Metric) *ReportUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMetricIDs(ids...)
}

// ClearRecommendations clears all "recommendations" edges to the Recommendation entity.
func (_u *ReportUpdate) ClearRecommendations() *ReportUpdate {
	_u.mutation.ClearRecommendations()
	return _u
}

// RemoveRecommendationIDs removes the "recommendations" edge to Recommendation entities by IDs.
func (_u *ReportUpdate) RemoveRecommendationIDs(ids ...uuid.UUID) *ReportUpdate {
	_u.mutation.RemoveRecommendationIDs(ids...)
	return _u
}

// RemoveRecommendations removes "recommendations" edges to Recommendation entities.
func (_u *ReportUpdate) RemoveRecommendations(v ...*Recommendation) *ReportUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRecommendationIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReportUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReportUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReportUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReportUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReportUpdate) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := report.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Report.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FilePath(); ok {
		if err := report.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`ent: validator failed for field "Report.file_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := report.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Report.status": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Report.user"`)
	}
	return nil
}

func (_u *ReportUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(report.Table, report.Columns, sqlgraph.NewFieldSpec(report.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(report.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.FilePath(); ok {
		_spec.SetField(report.FieldFilePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExtractedText(); ok {
		_spec.SetField(report.FieldExtractedText, field.TypeString, value)
	}
	if _u.mutation.ExtractedTextCleared() {
		_spec.ClearField(report.FieldExtractedText, field.TypeString)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(report.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(report.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(report.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(report.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   report.UserTable,
			Columns: []string{report.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   report.UserTable,
			Columns: []string{report.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MetricsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   report.MetricsTable,
			Columns: []string{report.MetricsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(metric.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMetricsIDs(); len(nodes) > 0 && !_u.mutation.MetricsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   report.MetricsTable,
			Columns: []string{report.MetricsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(metric.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MetricsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   report.MetricsTable,
			Columns: []string{report.MetricsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(metric.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RecommendationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   report.RecommendationsTable,
			Columns: []string{report.RecommendationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(recommendation.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRecommendationsIDs(); len(nodes) > 0 && !_u.mutation.RecommendationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   report.RecommendationsTable,
			Columns: []string{report.RecommendationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(recommendation.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RecommendationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   report.RecommendationsTable,
			Columns: []string{report.RecommendationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(recommendation.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{report.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReportUpdateOne is the builder for updating a single Report entity.
type ReportUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReportMutation
}

// SetUserID sets the "user_id" field.
func (_u *ReportUpdateOne) SetUserID(v uuid.UUID) *ReportUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableUserID(v *uuid.UUID) *ReportUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetFilename sets the "filename" field.
func (_u *ReportUpdateOne) SetFilename(v string) *ReportUpdateOne {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableFilename(v *string) *ReportUpdateOne {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetFilePath sets the "file_path" field.
func (_u *ReportUpdateOne) SetFilePath(v string) *ReportUpdateOne {
	_u.mutation.SetFilePath(v)
	return _u
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableFilePath(v *string) *ReportUpdateOne {
	if v != nil {
		_u.SetFilePath(*v)
	}
	return _u
}

// SetExtractedText sets the "extracted_text" field.
func (_u *ReportUpdateOne) SetExtractedText(v string) *ReportUpdateOne {
	_u.mutation.SetExtractedText(v)
	return _u
}

// SetNillableExtractedText sets the "extracted_text" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableExtractedText(v *string) *ReportUpdateOne {
	if v != nil {
		_u.SetExtractedText(*v)
	}
	return _u
}

// ClearExtractedText clears the value of the "extracted_text" field.
func (_u *ReportUpdateOne) ClearExtractedText() *ReportUpdateOne {
	_u.mutation.ClearExtractedText()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *ReportUpdateOne) SetSummary(v string) *ReportUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableSummary(v *string) *ReportUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *ReportUpdateOne) ClearSummary() *ReportUpdateOne {
	_u.mutation.ClearSummary()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ReportUpdateOne) SetStatus(v string) *ReportUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableStatus(v *string) *ReportUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ReportUpdateOne) SetCreatedAt(v time.Time) *ReportUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableCreatedAt(v *time.Time) *ReportUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *ReportUpdateOne) SetUser(v *User) *ReportUpdateOne {
	return _u.SetUserID(v.ID)
}

// AddMetricIDs adds the "metrics" edge to the Metric entity by IDs.
func (_u *ReportUpdateOne) AddMetricIDs(ids ...uuid.UUID) *ReportUpdateOne {
	_u.mutation.AddMetricIDs(ids...)
	return _u
}

// AddMetrics adds the "metrics" edges to the Metric entity.
func (_u *ReportUpdateOne) AddMetrics(v ...*Metric) *ReportUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMetricIDs(ids...)
}

// AddRecommendationIDs adds the "recommendations" edge to the Recommendation entity by IDs.
func (_u *ReportUpdateOne) AddRecommendationIDs(ids ...uuid.UUID) *ReportUpdateOne {
	_u.mutation.AddRecommendationIDs(ids...)
	return _u
}

// AddRecommendations adds the "recommendations" edges to the Recommendation entity.
func (_u *ReportUpdateOne) AddRecommendations(v ...*Recommendation) *ReportUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRecommendationIDs(ids...)
}

// Mutation returns the ReportMutation object of the builder.
func (_u *ReportUpdateOne) Mutation() *ReportMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *ReportUpdateOne) ClearUser() *ReportUpdateOne {
	_u.mutation.ClearUser()
	return _u
}

// ClearMetrics clears all "metrics" edges to the Metric entity.
func (_u *ReportUpdateOne) ClearMetrics() *ReportUpdateOne {
	_u.mutation.ClearMetrics()
	return _u
}

// RemoveMetricIDs removes the "metrics" edge to Metric entities by IDs.
func (_u *ReportUpdateOne) RemoveMetricIDs(ids ...uuid.UUID) *ReportUpdateOne {
	_u.mutation.RemoveMetricIDs(ids...)
	return _u
}

// RemoveMetrics removes "metrics" edges to Metric entities.
func (_u *ReportUpdateOne) RemoveMetrics(v ...*Metric) *ReportUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMetricIDs(ids...)
}

// ClearRecommendations clears all "recommendations" edges to the Recommendation entity.
func (_u *ReportUpdateOne) ClearRecommendations() *ReportUpdateOne {
	_u.mutation.ClearRecommendations()
	return _u
}

// RemoveRecommendationIDs removes the "recommendations" edge to Recommendation entities by IDs.
func (_u *ReportUpdateOne) RemoveRecommendationIDs(ids ...uuid.UUID) *ReportUpdateOne {
	_u.mutation.RemoveRecommendationIDs(ids...)
	return _u
}

// RemoveRecommendations removes "recommendations" edges to Recommendation entities.
func (_u *ReportUpdateOne) RemoveRecommendations(v ...*Recommendation) *ReportUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRecommendationIDs(ids...)
}

// Where appends a list predicates to the ReportUpdate builder.
func (_u *ReportUpdateOne) Where(ps ...predicate.Report) *ReportUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReportUpdateOne) Select(field string, fields ...string) *ReportUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Report entity.
func (_u *ReportUpdateOne) Save(ctx context.Context) (*Report, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReportUpdateOne) SaveX(ctx context.Context) *Report {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReportUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReportUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReportUpdateOne) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := report.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Report.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FilePath(); ok {
		if err := report.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`ent: validator failed for field "Report.file_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := report.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Report.status": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Report.user"`)
	}
	return nil
}

func (_u *ReportUpdateOne) sqlSave(ctx context.Context) (_node *Report, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(report.Table, report.Columns, sqlgraph.NewFieldSpec(report.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Report.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, report.FieldID)
		for _, f := range fields {
			if !report.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != report.FieldID {
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
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(report.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.FilePath(); ok {
		_spec.SetField(report.FieldFilePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExtractedText(); ok {
		_spec.SetField(report.FieldExtractedText, field.TypeString, value)
	}
	if _u.mutation.ExtractedTextCleared() {
		_spec.ClearField(report.FieldExtractedText, field.TypeString)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(report.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(report.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(report.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(report.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   report.UserTable,
			Columns: []string{report.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   report.UserTable,
			Columns: []string{report.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MetricsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   report.MetricsTable,
			Columns: []string{report.MetricsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(metric.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMetricsIDs(); len(nodes) > 0 && !_u.mutation.MetricsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   report.MetricsTable,
			Columns: []string{report.MetricsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(metric.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MetricsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   report.MetricsTable,
			Columns: []string{report.MetricsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(metric.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RecommendationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   report.RecommendationsTable,
			Columns: []string{report.RecommendationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(recommendation.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRecommendationsIDs(); len(nodes) > 0 && !_u.mutation.RecommendationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   report.RecommendationsTable,
			Columns: []string{report.RecommendationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(recommendation.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RecommendationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   report.RecommendationsTable,
			Columns: []string{report.RecommendationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(recommendation.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Report{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{report.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
