// Code generated by ent, DO NOT EDIT.

package metric

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/medalizer/blood-report-analyzer/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Metric {
	return predicate.Metric(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Metric {
	return predicate.Metric(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Metric {
	return predicate.Metric(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Metric {
	return predicate.Metric(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Metric {
	return predicate.Metric(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Metric {
	return predicate.Metric(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Metric {
	return predicate.Metric(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Metric {
	return predicate.Metric(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Metric {
	return predicate.Metric(sql.FieldLTE(FieldID, id))
}

// ReportID applies equality check predicate on the "report_id" field. It's identical to ReportIDEQ.
func ReportID(v uuid.UUID) predicate.Metric {
	return predicate.Metric(sql.FieldEQ(FieldReportID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Metric {
	return predicate.Metric(sql.FieldEQ(FieldName, v))
}

// Value applies equality check predicate on the "value" field. It's identical to ValueEQ.
func Value(v float64) predicate.Metric {
	return predicate.Metric(sql.FieldEQ(FieldValue, v))
}

// Unit applies equality check predicate on the "unit" field. It's identical to UnitEQ.
func Unit(v string) predicate.Metric {
	return predicate.Metric(sql.FieldEQ(FieldUnit, v))
}

// ReferenceMin applies equality check predicate on the "reference_min" field. It's identical to ReferenceMinEQ.
func ReferenceMin(v float64) predicate.Metric {
	return predicate.Metric(sql.FieldEQ(FieldReferenceMin, v))
}

// ReferenceMax applies equality check predicate on the "reference_max" field. It's identical to ReferenceMaxEQ.
func ReferenceMax(v float64) predicate.Metric {
	return predicate.Metric(sql.FieldEQ(FieldReferenceMax, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Metric {
	return predicate.Metric(sql.FieldEQ(FieldStatus, v))
}

// ReportIDEQ applies the EQ predicate on the "report_id" field.
func ReportIDEQ(v uuid.UUID) predicate.Metric {
	return predicate.Metric(sql.FieldEQ(FieldReportID, v))
}

// ReportIDNEQ applies the NEQ predicate on the "report_id" field.
func ReportIDNEQ(v uuid.UUID) predicate.Metric {
	return predicate.Metric(sql.FieldNEQ(FieldReportID, v))
}

// ReportIDIn applies the In predicate on the "report_id" field.
func ReportIDIn(vs ...uuid.UUID) predicate.Metric {
	return predicate.Metric(sql.FieldIn(FieldReportID, vs...))
}

// ReportIDNotIn applies the NotIn predicate on the "report_id" field.
func ReportIDNotIn(vs ...uuid.UUID) predicate.Metric {
	return predicate.Metric(sql.FieldNotIn(FieldReportID, vs...))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Metric {
	return predicate.Metric(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Metric {
	return predicate.Metric(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Metric {
	return predicate.Metric(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Metric {
	return predicate.Metric(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Metric {
	return predicate.Metric(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Metric {
	return predicate.Metric(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Metric {
	return predicate.Metric(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Metric {
	return predicate.Metric(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Metric {
	return predicate.Metric(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Metric {
	return predicate.Metric(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Metric {
	return predicate.Metric(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Metric {
	return predicate.Metric(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Metric {
	return predicate.Metric(sql.FieldContainsFold(FieldName, v))
}

// ValueEQ applies the EQ predicate on the "value" field.
func ValueEQ(v float64) predicate.Metric {
	return predicate.Metric(sql.FieldEQ(FieldValue, v))
}

// ValueNEQ applies the NEQ predicate on the "value" field.
func ValueNEQ(v float64) predicate.Metric {
	return predicate.Metric(sql.FieldNEQ(FieldValue, v))
}

// ValueIn applies the In predicate on the "value" field.
func ValueIn(vs ...float64) predicate.Metric {
	return predicate.Metric(sql.FieldIn(FieldValue, vs...))
}

// ValueNotIn applies the NotIn predicate on the "value" field.
func ValueNotIn(vs ...float64) predicate.Metric {
	return predicate.Metric(sql.FieldNotIn(FieldValue, vs...))
}

// ValueGT applies the GT predicate on the "value" field.
func ValueGT(v float64) predicate.Metric {
	return predicate.Metric(sql.FieldGT(FieldValue, v))
}

// ValueGTE applies the GTE predicate on the "value" field.
func ValueGTE(v float64) predicate.Metric {
	return predicate.Metric(sql.FieldGTE(FieldValue, v))
}

// ValueLT applies the LT predicate on the "value" field.
func ValueLT(v float64) predicate.Metric {
	return predicate.Metric(sql.FieldLT(FieldValue, v))
}

// ValueLTE applies the LTE predicate on the "value" field.
func ValueLTE(v float64) predicate.Metric {
	return predicate.Metric(sql.FieldLTE(FieldValue, v))
}

// UnitEQ applies the EQ predicate on the "unit" field.
func UnitEQ(v string) predicate.Metric {
	return predicate.Metric(sql.FieldEQ(FieldUnit, v))
}

// UnitNEQ applies the NEQ predicate on the "unit" field.
func UnitNEQ(v string) predicate.Metric {
	return predicate.Metric(sql.FieldNEQ(FieldUnit, v))
}

// UnitIn applies the In predicate on the "unit" field.
func UnitIn(vs ...string) predicate.Metric {
	return predicate.Metric(sql.FieldIn(FieldUnit, vs...))
}

// UnitNotIn applies the NotIn predicate on the "unit" field.
func UnitNotIn(vs ...string) predicate.Metric {
	return predicate.Metric(sql.FieldNotIn(FieldUnit, vs...))
}

// UnitGT applies the GT predicate on the "unit" field.
func UnitGT(v string) predicate.Metric {
	return predicate.Metric(sql.FieldGT(FieldUnit, v))
}

// UnitGTE applies the GTE predicate on the "unit" field.
func UnitGTE(v string) predicate.Metric {
	return predicate.Metric(sql.FieldGTE(FieldUnit, v))
}

// UnitLT applies the LT predicate on the "unit" field.
func UnitLT(v string) predicate.Metric {
	return predicate.Metric(sql.FieldLT(FieldUnit, v))
}

// UnitLTE applies the LTE predicate on the "unit" field.
func UnitLTE(v string) predicate.Metric {
	return predicate.Metric(sql.FieldLTE(FieldUnit, v))
}

// UnitContains applies the Contains predicate on the "unit" field.
func UnitContains(v string) predicate.Metric {
	return predicate.Metric(sql.FieldContains(FieldUnit, v))
}

// UnitHasPrefix applies the HasPrefix predicate on the "unit" field.
func UnitHasPrefix(v string) predicate.Metric {
	return predicate.Metric(sql.FieldHasPrefix(FieldUnit, v))
}

// UnitHasSuffix applies the HasSuffix predicate on the "unit" field.
func UnitHasSuffix(v string) predicate.Metric {
	return predicate.Metric(sql.FieldHasSuffix(FieldUnit, v))
}

// UnitIsNil applies the IsNil predicate on the "unit" field.
func UnitIsNil() predicate.Metric {
	return predicate.Metric(sql.FieldIsNull(FieldUnit))
}

// UnitNotNil applies the NotNil predicate on the "unit" field.
func UnitNotNil() predicate.Metric {
	return predicate.Metric(sql.FieldNotNull(FieldUnit))
}

// UnitEqualFold applies the EqualFold predicate on the "unit" field.
func UnitEqualFold(v string) predicate.Metric {
	return predicate.Metric(sql.FieldEqualFold(FieldUnit, v))
}

// UnitContainsFold applies the ContainsFold predicate on the "unit" field.
func UnitContainsFold(v string) predicate.Metric {
	return predicate.Metric(sql.FieldContainsFold(FieldUnit, v))
}

// ReferenceMinEQ applies the EQ predicate on the "reference_min" field.
func ReferenceMinEQ(v float64) predicate.Metric {
	return predicate.Metric(sql.FieldEQ(FieldReferenceMin, v))
}

// ReferenceMinNEQ applies the NEQ predicate on the "reference_min" field.
func ReferenceMinNEQ(v float64) predicate.Metric {
	return predicate.Metric(sql.FieldNEQ(FieldReferenceMin, v))
}

// ReferenceMinIn applies the In predicate on the "reference_min" field.
func ReferenceMinIn(vs ...float64) predicate.Metric {
	return predicate.Metric(sql.FieldIn(FieldReferenceMin, vs...))
}

// ReferenceMinNotIn applies the NotIn predicate on the "reference_min" field.
func ReferenceMinNotIn(vs ...float64) predicate.Metric {
	return predicate.Metric(sql.FieldNotIn(FieldReferenceMin, vs...))
}

// ReferenceMinGT applies the GT predicate on the "reference_min" field.
func ReferenceMinGT(v float64) predicate.Metric {
	return predicate.Metric(sql.FieldGT(FieldReferenceMin, v))
}

// ReferenceMinGTE applies the GTE predicate on the "reference_min" field.
func ReferenceMinGTE(v float64) predicate.Metric {
	return predicate.Metric(sql.FieldGTE(FieldReferenceMin, v))
}

// ReferenceMinLT applies the LT predicate on the "reference_min" field.
func ReferenceMinLT(v float64) predicate.Metric {
	return predicate.Metric(sql.FieldLT(FieldReferenceMin, v))
}

// ReferenceMinLTE applies the LTE predicate on the "reference_min" field.
func ReferenceMinLTE(v float64) predicate.Metric {
	return predicate.Metric(sql.FieldLTE(FieldReferenceMin, v))
}

// ReferenceMaxEQ applies the EQ predicate on the "reference_max" field.
func ReferenceMaxEQ(v float64) predicate.Metric {
	return predicate.Metric(sql.FieldEQ(FieldReferenceMax, v))
}

// ReferenceMaxNEQ applies the NEQ predicate on the "reference_max" field.
func ReferenceMaxNEQ(v float64) predicate.Metric {
	return predicate.Metric(sql.FieldNEQ(FieldReferenceMax, v))
}

// ReferenceMaxIn applies the In predicate on the "reference_max" field.
func ReferenceMaxIn(vs ...float64) predicate.Metric {
	return predicate.Metric(sql.FieldIn(FieldReferenceMax, vs...))
}

// ReferenceMaxNotIn applies the NotIn predicate on the "reference_max" field.
func ReferenceMaxNotIn(vs ...float64) predicate.Metric {
	return predicate.Metric(sql.FieldNotIn(FieldReferenceMax, vs...))
}

// ReferenceMaxGT applies the GT predicate on the "reference_max" field.
func ReferenceMaxGT(v float64) predicate.Metric {
	return predicate.Metric(sql.FieldGT(FieldReferenceMax, v))
}

// ReferenceMaxGTE applies the GTE predicate on the "reference_max" field.
func ReferenceMaxGTE(v float64) predicate.Metric {
	return predicate.Metric(sql.FieldGTE(FieldReferenceMax, v))
}

// ReferenceMaxLT applies the LT predicate on the "reference_max" field.
func ReferenceMaxLT(v float64) predicate.Metric {
	return predicate.Metric(sql.FieldLT(FieldReferenceMax, v))
}

// ReferenceMaxLTE applies the LTE predicate on the "reference_max" field.
func ReferenceMaxLTE(v float64) predicate.Metric {
	return predicate.Metric(sql.FieldLTE(FieldReferenceMax, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Metric {
	return predicate.Metric(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Metric {
	return predicate.Metric(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Metric {
	return predicate.Metric(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Metric {
	return predicate.Metric(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Metric {
	return predicate.Metric(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Metric {
	return predicate.Metric(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Metric {
	return predicate.Metric(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Metric {
	return predicate.Metric(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Metric {
	return predicate.Metric(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Metric {
	return predicate.Metric(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Metric {
	return predicate.Metric(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Metric {
	return predicate.Metric(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Metric {
	return predicate.Metric(sql.FieldContainsFold(FieldStatus, v))
}

// HasReport applies the HasEdge predicate on the "report" edge.
func HasReport() predicate.Metric {
	return predicate.Metric(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ReportTable, ReportColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasReportWith applies the HasEdge predicate on the "report" edge with a given conditions (other predicates).
func HasReportWith(preds ...predicate.Report) predicate.Metric {
	return predicate.Metric(func(s *sql.Selector) {
		step := newReportStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Metric) predicate.Metric {
	return predicate.Metric(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Metric) predicate.Metric {
	return predicate.Metric(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Metric) predicate.Metric {
	return predicate.Metric(sql.NotPredicates(p))
}
