package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"

	"github.com/medalizer/blood-report-analyzer/db/ent/schema/utils"
)

type Metric struct{ ent.Schema }

func (Metric) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "metrics"},
	}
}

func (Metric) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("report_id", uuid.UUID{}),
		field.String("name").NotEmpty(),
		field.Float("value").
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,3)"}),
		field.String("unit").Optional(),
		field.Float("reference_min").
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,3)"}),
		field.Float("reference_max").
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,3)"}),
		field.String("status").
			Validate(utils.EnumValidator("low", "normal", "high", "critical")),
	}
}

func (Metric) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY metrics -> ONE report (FK: metrics.report_id)
		edge.From("report", Report.Type).
			Ref("metrics").
			Field("report_id").
			Required().
			Unique(),
	}
}
