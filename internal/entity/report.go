package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/medalizer/blood-report-analyzer/constants"
)

// Report represents an analyzed blood-test document.
type Report struct {
	ID            uuid.UUID              `json:"id"`
	UserID        uuid.UUID              `json:"user_id"`
	Filename      string                 `json:"filename"`
	FilePath      string                 `json:"file_path"`
	ExtractedText string                 `json:"extracted_text,omitempty"`
	Summary       string                 `json:"summary,omitempty"`
	Status        constants.ReportStatus `json:"status"`
	CreatedAt     time.Time              `json:"created_at"`
}

// Metric is one classified parameter reading extracted from a report.
// Immutable after creation.
type Metric struct {
	Name         string                 `json:"name"`
	Value        float64                `json:"value"`
	Unit         string                 `json:"unit,omitempty"`
	ReferenceMin float64                `json:"reference_min"`
	ReferenceMax float64                `json:"reference_max"`
	Status       constants.MetricStatus `json:"status"`
}

// Recommendation is one line of synthesized advice attached to a report.
type Recommendation struct {
	Text   string `json:"text"`
	Source string `json:"source,omitempty"`
}

// AnalysisResult is the full outcome of one pipeline invocation. It is
// transient: the caller decides whether and how to persist it.
type AnalysisResult struct {
	ReportID        uuid.UUID              `json:"report_id,omitempty"`
	Filename        string                 `json:"filename"`
	ExtractedText   string                 `json:"extracted_text,omitempty"`
	Metrics         []Metric               `json:"metrics"`
	Status          constants.ReportStatus `json:"status"`
	Recommendations []string               `json:"recommendations"`
	Summary         string                 `json:"summary"`
	Pages           int                    `json:"pages,omitempty"`
	OCRDuration     time.Duration          `json:"-"`
}
