// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/medalizer/blood-report-analyzer/db/ent/schema"
	"github.com/medalizer/blood-report-analyzer/gen/ent/metric"
	"github.com/medalizer/blood-report-analyzer/gen/ent/recommendation"
	"github.com/medalizer/blood-report-analyzer/gen/ent/report"
	"github.com/medalizer/blood-report-analyzer/gen/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	metricFields := schema.Metric{}.Fields()
	_ = metricFields
	// metricDescName is the schema descriptor for name field.
	metricDescName := metricFields[2].Descriptor()
	// metric.NameValidator is a validator for the "name" field. It is called by the builders before save.
	metric.NameValidator = metricDescName.Validators[0].(func(string) error)
	// metricDescStatus is the schema descriptor for status field.
	metricDescStatus := metricFields[7].Descriptor()
	// metric.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	metric.StatusValidator = metricDescStatus.Validators[0].(func(string) error)
	// metricDescID is the schema descriptor for id field.
	metricDescID := metricFields[0].Descriptor()
	// metric.DefaultID holds the default value on creation for the id field.
	metric.DefaultID = metricDescID.Default.(func() uuid.UUID)
	recommendationFields := schema.Recommendation{}.Fields()
	_ = recommendationFields
	// recommendationDescText is the schema descriptor for text field.
	recommendationDescText := recommendationFields[2].Descriptor()
	// recommendation.TextValidator is a validator for the "text" field. It is called by the builders before save.
	recommendation.TextValidator = recommendationDescText.Validators[0].(func(string) error)
	// recommendationDescPosition is the schema descriptor for position field.
	recommendationDescPosition := recommendationFields[3].Descriptor()
	// recommendation.PositionValidator is a validator for the "position" field. It is called by the builders before save.
	recommendation.PositionValidator = recommendationDescPosition.Validators[0].(func(int) error)
	// recommendationDescID is the schema descriptor for id field.
	recommendationDescID := recommendationFields[0].Descriptor()
	// recommendation.DefaultID holds the default value on creation for the id field.
	recommendation.DefaultID = recommendationDescID.Default.(func() uuid.UUID)
	reportFields := schema.Report{}.Fields()
	_ = reportFields
	// reportDescFilename is the schema descriptor for filename field.
	reportDescFilename := reportFields[2].Descriptor()
	// report.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	report.FilenameValidator = reportDescFilename.Validators[0].(func(string) error)
	// reportDescFilePath is the schema descriptor for file_path field.
	reportDescFilePath := reportFields[3].Descriptor()
	// report.FilePathValidator is a validator for the "file_path" field. It is called by the builders before save.
	report.FilePathValidator = reportDescFilePath.Validators[0].(func(string) error)
	// reportDescStatus is the schema descriptor for status field.
	reportDescStatus := reportFields[6].Descriptor()
	// report.DefaultStatus holds the default value on creation for the status field.
	report.DefaultStatus = reportDescStatus.Default.(string)
	// report.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	report.StatusValidator = reportDescStatus.Validators[0].(func(string) error)
	// reportDescCreatedAt is the schema descriptor for created_at field.
	reportDescCreatedAt := reportFields[7].Descriptor()
	// report.DefaultCreatedAt holds the default value on creation for the created_at field.
	report.DefaultCreatedAt = reportDescCreatedAt.Default.(func() time.Time)
	// reportDescID is the schema descriptor for id field.
	reportDescID := reportFields[0].Descriptor()
	// report.DefaultID holds the default value on creation for the id field.
	report.DefaultID = reportDescID.Default.(func() uuid.UUID)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescUsername is the schema descriptor for username field.
	userDescUsername := userFields[1].Descriptor()
	// user.UsernameValidator is a validator for the "username" field. It is called by the builders before save.
	user.UsernameValidator = userDescUsername.Validators[0].(func(string) error)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[3].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescID is the schema descriptor for id field.
	userDescID := userFields[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
}
