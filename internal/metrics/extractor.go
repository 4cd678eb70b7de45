// Package metrics turns recovered report text into classified parameter
// readings. The scan is precision-biased: ambiguous or malformed candidates
// are dropped rather than guessed, since a wrong clinical reading is worse
// than a missing one.
package metrics

import (
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/medalizer/blood-report-analyzer/constants"
	"github.com/medalizer/blood-report-analyzer/internal/catalog"
	"github.com/medalizer/blood-report-analyzer/internal/entity"
)

// reCandidate matches the shape "<label words> : <number> <optional unit>".
// Label words are alphabetic/space runs; the separator is a colon or hyphen;
// the unit is an optional run of letters and slashes (g/dL, cells/mcL, ...).
var reCandidate = regexp.MustCompile(`([a-zA-Z\s]+?)\s*[:\-]\s*(\d+\.?\d*)\s*([a-zA-Z/]+)?`)

// Analysis is the outcome of scanning one text blob.
type Analysis struct {
	Metrics []entity.Metric
	Status  constants.ReportStatus
}

// Extractor scans text for catalog parameters. It holds only read-only state
// and is safe for concurrent use.
type Extractor struct {
	catalog *catalog.Catalog
	logger  *slog.Logger
}

func NewExtractor(c *catalog.Catalog, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{catalog: c, logger: logger}
}

// ExtractMetrics scans text left-to-right for non-overlapping candidate
// matches and resolves each label against the catalog. It never fails:
// unresolvable labels and unparsable numbers are skipped, and garbage input
// yields an empty slice. Output order follows text order.
func (e *Extractor) ExtractMetrics(text string) []entity.Metric {
	var out []entity.Metric
	for _, m := range reCandidate.FindAllStringSubmatch(text, -1) {
		label := strings.TrimSpace(m[1])
		value, err := strconv.ParseFloat(strings.TrimSpace(m[2]), 64)
		if err != nil {
			continue
		}
		entry, ok := e.catalog.Resolve(label)
		if !ok {
			continue
		}
		unit := strings.TrimSpace(m[3])
		if unit == "" {
			unit = entry.Unit
		}
		out = append(out, entity.Metric{
			Name:         capitalize(entry.Name),
			Value:        value,
			Unit:         unit,
			ReferenceMin: entry.Min,
			ReferenceMax: entry.Max,
			Status:       entry.Classify(value),
		})
	}
	return out
}

// Analyze extracts metrics and derives the report-level status.
func (e *Extractor) Analyze(text string) Analysis {
	ms := e.ExtractMetrics(text)
	statuses := make([]constants.MetricStatus, len(ms))
	for i, m := range ms {
		statuses[i] = m.Status
	}
	e.logger.Debug("metric extraction done", "candidates_resolved", len(ms))
	return Analysis{
		Metrics: ms,
		Status:  constants.DeriveReportStatus(statuses),
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
