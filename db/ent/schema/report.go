package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/medalizer/blood-report-analyzer/db/ent/schema/utils"
)

type Report struct{ ent.Schema }

func (Report) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "reports"},
	}
}

func (Report) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("user_id", uuid.UUID{}),
		field.String("filename").NotEmpty(),
		field.String("file_path").NotEmpty(),
		field.Text("extracted_text").Optional().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Text("summary").Optional(),
		field.String("status").Default("normal").
			Validate(utils.EnumValidator("normal", "warning", "critical")),
		field.Time("created_at").Default(time.Now),
	}
}

func (Report) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY reports -> ONE user (FK: reports.user_id)
		edge.From("user", User.Type).
			Ref("reports").
			Field("user_id").
			Required().
			Unique(),
		// ONE report -> MANY metrics, deleted with the report
		edge.To("metrics", Metric.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		// ONE report -> MANY recommendations, deleted with the report
		edge.To("recommendations", Recommendation.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

func (Report) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "created_at"),
	}
}
