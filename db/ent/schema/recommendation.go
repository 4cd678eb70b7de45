package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

type Recommendation struct{ ent.Schema }

func (Recommendation) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "recommendations"},
	}
}

func (Recommendation) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("report_id", uuid.UUID{}),
		field.Text("text").NotEmpty(),
		// position preserves advice ordering on read-back
		field.Int("position").NonNegative(),
	}
}

func (Recommendation) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY recommendations -> ONE report (FK: recommendations.report_id)
		edge.From("report", Report.Type).
			Ref("recommendations").
			Field("report_id").
			Required().
			Unique(),
	}
}
