// Package advice turns classified metrics into human-readable recommendation
// lines and a one-paragraph summary. Both functions are pure: all curated
// text comes from the knowledge base loaded at startup.
package advice

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/medalizer/blood-report-analyzer/constants"
	"github.com/medalizer/blood-report-analyzer/internal/entity"
	"github.com/medalizer/blood-report-analyzer/internal/knowledge"
)

// Fixed lines emitted when no metric produced targeted advice, and the
// closing line appended when at least one did.
const (
	allNormalLine = "✓ All values appear to be within normal ranges."
	dietLine      = "• Maintain a balanced diet and regular exercise."
	hydrationLine = "• Stay hydrated and get adequate sleep."
	followUpLine  = "• Follow up with your healthcare provider for personalized advice."
)

// Recommendations assembles the ordered, deduplicated advice list for a set
// of metrics. Normal metrics and metrics without a knowledge entry contribute
// nothing; if nothing at all was generated the fixed fallback set is returned
// instead.
func Recommendations(ms []entity.Metric, base *knowledge.Base) []string {
	var out []string
	seen := make(map[string]struct{})
	add := func(line string) {
		if _, dup := seen[line]; dup {
			return
		}
		seen[line] = struct{}{}
		out = append(out, line)
	}

	for _, m := range ms {
		if m.Status == constants.MetricNormal {
			continue
		}
		entry, ok := base.Lookup(m.Name)
		if !ok {
			continue
		}
		if entry.Description != "" {
			add(fmt.Sprintf("ℹ️ %s: %s", m.Name, entry.Description))
		}
		for _, rec := range entry.RecommendationsFor(m.Status) {
			add(fmt.Sprintf("• %s (%s): %s", m.Name, m.Status, rec))
		}
	}

	if len(out) == 0 {
		return []string{allNormalLine, dietLine, hydrationLine}
	}
	out = append(out, followUpLine)
	return out
}

// Summary counts metrics per status and renders the fixed summary sentence.
func Summary(ms []entity.Metric) string {
	total := len(ms)
	var normal, low, high int
	for _, m := range ms {
		switch m.Status {
		case constants.MetricNormal:
			normal++
		case constants.MetricLow:
			low++
		case constants.MetricHigh:
			high++
		}
	}

	if normal == total {
		return fmt.Sprintf("All %d tested parameters are within normal ranges.", total)
	}

	var issues []string
	if low > 0 {
		issues = append(issues, fmt.Sprintf("%d parameter(s) below normal", low))
	}
	if high > 0 {
		issues = append(issues, fmt.Sprintf("%d parameter(s) above normal", high))
	}
	clause := capitalizeFirst(strings.Join(issues, " and "))
	return fmt.Sprintf("Out of %d parameters tested, %d are normal. %s.", total, normal, clause)
}

func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
