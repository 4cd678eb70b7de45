// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// MetricsColumns holds the columns for the "metrics" table.
	MetricsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "value", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,3)"}},
		{Name: "unit", Type: field.TypeString, Nullable: true},
		{Name: "reference_min", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,3)"}},
		{Name: "reference_max", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,3)"}},
		{Name: "status", Type: field.TypeString},
		{Name: "report_id", Type: field.TypeUUID},
	}
	// MetricsTable holds the schema information for the "metrics" table.
	MetricsTable = &schema.Table{
		Name:       "metrics",
		Columns:    MetricsColumns,
		PrimaryKey: []*schema.Column{MetricsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "metrics_reports_metrics",
				Columns:    []*schema.Column{MetricsColumns[7]},
				RefColumns: []*schema.Column{ReportsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// RecommendationsColumns holds the columns for the "recommendations" table.
	RecommendationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "text", Type: field.TypeString, Size: 2147483647},
		{Name: "position", Type: field.TypeInt},
		{Name: "report_id", Type: field.TypeUUID},
	}
	// RecommendationsTable holds the schema information for the "recommendations" table.
	RecommendationsTable = &schema.Table{
		Name:       "recommendations",
		Columns:    RecommendationsColumns,
		PrimaryKey: []*schema.Column{RecommendationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "recommendations_reports_recommendations",
				Columns:    []*schema.Column{RecommendationsColumns[3]},
				RefColumns: []*schema.Column{ReportsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// ReportsColumns holds the columns for the "reports" table.
	ReportsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "filename", Type: field.TypeString},
		{Name: "file_path", Type: field.TypeString},
		{Name: "extracted_text", Type: field.TypeString, Nullable: true, Size: 2147483647, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "status", Type: field.TypeString, Default: "normal"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeUUID},
	}
	// ReportsTable holds the schema information for the "reports" table.
	ReportsTable = &schema.Table{
		Name:       "reports",
		Columns:    ReportsColumns,
		PrimaryKey: []*schema.Column{ReportsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "reports_users_reports",
				Columns:    []*schema.Column{ReportsColumns[7]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "report_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ReportsColumns[7], ReportsColumns[6]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "username", Type: field.TypeString, Unique: true},
		{Name: "email", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		MetricsTable,
		RecommendationsTable,
		ReportsTable,
		UsersTable,
	}
)

func init() {
	MetricsTable.ForeignKeys[0].RefTable = ReportsTable
	MetricsTable.Annotation = &entsql.Annotation{
		Table: "metrics",
	}
	RecommendationsTable.ForeignKeys[0].RefTable = ReportsTable
	RecommendationsTable.Annotation = &entsql.Annotation{
		Table: "recommendations",
	}
	ReportsTable.ForeignKeys[0].RefTable = UsersTable
	ReportsTable.Annotation = &entsql.Annotation{
		Table: "reports",
	}
	UsersTable.Annotation = &entsql.Annotation{
		Table: "users",
	}
}
