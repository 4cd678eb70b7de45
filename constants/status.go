package constants

// MetricStatus classifies a single measured value against its reference range.
type MetricStatus string

// Stable values (store these exact strings in DB).
const (
	MetricLow      MetricStatus = "low"
	MetricNormal   MetricStatus = "normal"
	MetricHigh     MetricStatus = "high"
	MetricCritical MetricStatus = "critical" // reserved; not produced by extraction yet
)

// ReportStatus aggregates metric statuses for a whole report.
type ReportStatus string

const (
	ReportNormal   ReportStatus = "normal"
	ReportWarning  ReportStatus = "warning"
	ReportCritical ReportStatus = "critical"
)

// DeriveReportStatus aggregates per-metric statuses: critical wins over
// warning, warning over normal. An empty slice is normal.
func DeriveReportStatus(statuses []MetricStatus) ReportStatus {
	out := ReportNormal
	for _, s := range statuses {
		switch s {
		case MetricCritical:
			return ReportCritical
		case MetricLow, MetricHigh:
			out = ReportWarning
		}
	}
	return out
}
