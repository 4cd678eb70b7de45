package metrics

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"testing"

	"github.com/medalizer/blood-report-analyzer/constants"
	"github.com/medalizer/blood-report-analyzer/internal/catalog"
)

func newTestExtractor(t *testing.T) *Extractor {
	t.Helper()
	return NewExtractor(catalog.Default(), nil)
}

func TestExtractMetricsEndToEnd(t *testing.T) {
	e := newTestExtractor(t)
	text := "Hemoglobin: 9.5 g/dL\nWBC: 7500 cells/mcL\nGlucose: 180 mg/dL"

	a := e.Analyze(text)
	if len(a.Metrics) != 3 {
		t.Fatalf("got %d metrics, want 3: %+v", len(a.Metrics), a.Metrics)
	}

	want := []struct {
		name   string
		value  float64
		unit   string
		status constants.MetricStatus
	}{
		{"Hemoglobin", 9.5, "g/dL", constants.MetricLow},
		{"Wbc", 7500, "cells/mcL", constants.MetricNormal},
		{"Glucose", 180, "mg/dL", constants.MetricHigh},
	}
	for i, w := range want {
		m := a.Metrics[i]
		if m.Name != w.name || m.Value != w.value || m.Unit != w.unit || m.Status != w.status {
			t.Errorf("metric[%d] = %+v, want %+v", i, m, w)
		}
	}
	if a.Status != constants.ReportWarning {
		t.Errorf("overall status = %v, want warning", a.Status)
	}
}

// Every catalog entry must classify correctly from a synthetic report line.
// Entries whose lower bound is zero are skipped for the low case: a negative
// value cannot appear in a report line. Entries whose canonical name carries a
// digit (t3, t4) are never matched by the label pattern, which accepts letters
// and spaces only; for those the expected outcome is no extraction.
func TestExtractMetricsPerCatalogEntry(t *testing.T) {
	e := newTestExtractor(t)
	for _, entry := range catalog.Default().Entries() {
		if strings.ContainsAny(entry.Name, "0123456789") {
			line := fmt.Sprintf("%s: %s %s", entry.Name,
				strconv.FormatFloat((entry.Min+entry.Max)/2, 'f', -1, 64), entry.Unit)
			if got := e.ExtractMetrics(line); len(got) != 0 {
				t.Errorf("%q: got %+v, want no match for a digit-bearing label", line, got)
			}
			continue
		}
		cases := []struct {
			value float64
			want  constants.MetricStatus
		}{
			{entry.Max + 1, constants.MetricHigh},
			{(entry.Min + entry.Max) / 2, constants.MetricNormal},
		}
		if entry.Min >= 1 {
			cases = append(cases, struct {
				value float64
				want  constants.MetricStatus
			}{entry.Min - 1, constants.MetricLow})
		}
		for _, c := range cases {
			line := fmt.Sprintf("%s: %s %s", entry.Name, strconv.FormatFloat(c.value, 'f', -1, 64), entry.Unit)
			got := e.ExtractMetrics(line)
			if len(got) != 1 {
				t.Errorf("%q: got %d metrics, want 1", line, len(got))
				continue
			}
			if got[0].Status != c.want {
				t.Errorf("%q: status = %v, want %v", line, got[0].Status, c.want)
			}
			if got[0].ReferenceMin != entry.Min || got[0].ReferenceMax != entry.Max {
				t.Errorf("%q: range = [%v,%v], want [%v,%v]",
					line, got[0].ReferenceMin, got[0].ReferenceMax, entry.Min, entry.Max)
			}
		}
	}
}

// Thyroid panel names carry digits, which the label pattern never matches;
// reports spelling them out resolve through the aliases instead.
func TestExtractMetricsDigitBearingNamesNeedAliases(t *testing.T) {
	e := newTestExtractor(t)
	if got := e.ExtractMetrics("t3: 140 ng/dL\nt4: 8.5 mcg/dL"); len(got) != 0 {
		t.Errorf("got %+v, want no match for t3/t4 labels", got)
	}
	got := e.ExtractMetrics("Triiodothyronine: 140 ng/dL\nThyroxine: 8.5 mcg/dL")
	if len(got) != 2 {
		t.Fatalf("got %d metrics, want 2: %+v", len(got), got)
	}
	if got[0].Name != "T3" || got[0].Status != constants.MetricNormal {
		t.Errorf("metric[0] = %+v, want normal T3", got[0])
	}
	if got[1].Name != "T4" || got[1].Status != constants.MetricNormal {
		t.Errorf("metric[1] = %+v, want normal T4", got[1])
	}
}

func TestExtractMetricsAlias(t *testing.T) {
	e := newTestExtractor(t)
	got := e.ExtractMetrics("hb: 10 g/dL")
	if len(got) != 1 {
		t.Fatalf("got %d metrics, want 1", len(got))
	}
	if got[0].Name != "Hemoglobin" {
		t.Errorf("name = %q, want Hemoglobin", got[0].Name)
	}
	if got[0].Status != constants.MetricLow {
		t.Errorf("status = %v, want low", got[0].Status)
	}
}

func TestExtractMetricsUnitFallsBackToCatalog(t *testing.T) {
	e := newTestExtractor(t)
	got := e.ExtractMetrics("tsh: 2.1\t")
	if len(got) != 1 {
		t.Fatalf("got %d metrics, want 1", len(got))
	}
	if got[0].Unit != "mIU/L" {
		t.Errorf("unit = %q, want catalog unit mIU/L", got[0].Unit)
	}
}

func TestExtractMetricsGarbage(t *testing.T) {
	e := newTestExtractor(t)
	for _, text := range []string{"", "asdkjaslkdj", "no numbers here", "patient: john doe"} {
		if got := e.ExtractMetrics(text); len(got) != 0 {
			t.Errorf("ExtractMetrics(%q) = %+v, want empty", text, got)
		}
	}
	if a := e.Analyze("asdkjaslkdj"); a.Status != constants.ReportNormal {
		t.Errorf("Analyze(garbage).Status = %v, want normal", a.Status)
	}
}

func TestExtractMetricsIdempotent(t *testing.T) {
	e := newTestExtractor(t)
	text := "Hemoglobin: 9.5 g/dL\nGlucose: 180 mg/dL"
	first := e.ExtractMetrics(text)
	second := e.ExtractMetrics(text)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated extraction differs:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestExtractMetricsDropsUnknownLabels(t *testing.T) {
	e := newTestExtractor(t)
	got := e.ExtractMetrics("Vitamin D: 30 ng/mL\nGlucose: 85 mg/dL")
	if len(got) != 1 || got[0].Name != "Glucose" {
		t.Errorf("got %+v, want only Glucose", got)
	}
}

func TestAnalyzeAllNormal(t *testing.T) {
	e := newTestExtractor(t)
	a := e.Analyze("Hemoglobin: 13.5 g/dL\nWBC: 7500 cells/mcL\nGlucose: 85 mg/dL")
	if len(a.Metrics) != 3 {
		t.Fatalf("got %d metrics, want 3", len(a.Metrics))
	}
	if a.Status != constants.ReportNormal {
		t.Errorf("status = %v, want normal", a.Status)
	}
}
