package advice

import (
	"strings"
	"testing"

	"github.com/medalizer/blood-report-analyzer/constants"
	"github.com/medalizer/blood-report-analyzer/internal/entity"
	"github.com/medalizer/blood-report-analyzer/internal/knowledge"
)

func testBase(t *testing.T) *knowledge.Base {
	t.Helper()
	b, err := knowledge.LoadOrCreate(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("LoadOrCreate: %v", err)
	}
	return b
}

func metric(name string, status constants.MetricStatus) entity.Metric {
	return entity.Metric{Name: name, Status: status}
}

func TestRecommendationsForAbnormalMetrics(t *testing.T) {
	base := testBase(t)
	recs := Recommendations([]entity.Metric{
		metric("Hemoglobin", constants.MetricLow),
		metric("Wbc", constants.MetricNormal),
		metric("Glucose", constants.MetricHigh),
	}, base)

	var hbLow, gluHigh, closing bool
	for _, r := range recs {
		if strings.Contains(r, "Hemoglobin (low):") {
			hbLow = true
		}
		if strings.Contains(r, "Glucose (high):") {
			gluHigh = true
		}
		if r == followUpLine {
			closing = true
		}
		if strings.Contains(r, "Wbc") {
			t.Errorf("normal metric produced advice: %q", r)
		}
	}
	if !hbLow {
		t.Error("missing hemoglobin-low recommendation")
	}
	if !gluHigh {
		t.Error("missing glucose-high recommendation")
	}
	if !closing {
		t.Error("missing follow-up closing line")
	}
	if recs[len(recs)-1] != followUpLine {
		t.Errorf("closing line must be last, got %q", recs[len(recs)-1])
	}
}

func TestRecommendationsDescriptionOncePerMetric(t *testing.T) {
	base := testBase(t)
	recs := Recommendations([]entity.Metric{metric("Glucose", constants.MetricHigh)}, base)

	descCount := 0
	for _, r := range recs {
		if strings.HasPrefix(r, "ℹ️ Glucose:") {
			descCount++
		}
	}
	if descCount != 1 {
		t.Errorf("description appeared %d times, want 1", descCount)
	}
}

func TestRecommendationsFallback(t *testing.T) {
	base := testBase(t)
	want := []string{allNormalLine, dietLine, hydrationLine}

	cases := map[string][]entity.Metric{
		"no metrics":  nil,
		"all normal":  {metric("Hemoglobin", constants.MetricNormal), metric("Glucose", constants.MetricNormal)},
		"no kb entry": {metric("Creatinine", constants.MetricHigh)},
	}
	for name, ms := range cases {
		t.Run(name, func(t *testing.T) {
			recs := Recommendations(ms, base)
			if len(recs) != len(want) {
				t.Fatalf("got %d lines, want %d: %v", len(recs), len(want), recs)
			}
			for i := range want {
				if recs[i] != want[i] {
					t.Errorf("line %d = %q, want %q", i, recs[i], want[i])
				}
			}
		})
	}
}

func TestRecommendationsDeduplicates(t *testing.T) {
	base := testBase(t)
	// the same abnormal metric extracted twice must not double its advice
	recs := Recommendations([]entity.Metric{
		metric("Glucose", constants.MetricHigh),
		metric("Glucose", constants.MetricHigh),
	}, base)
	seen := make(map[string]int)
	for _, r := range recs {
		seen[r]++
	}
	for line, n := range seen {
		if n > 1 {
			t.Errorf("line repeated %d times: %q", n, line)
		}
	}
}

func TestSummaryAllNormal(t *testing.T) {
	got := Summary([]entity.Metric{
		metric("Hemoglobin", constants.MetricNormal),
		metric("Wbc", constants.MetricNormal),
		metric("Glucose", constants.MetricNormal),
	})
	want := "All 3 tested parameters are within normal ranges."
	if got != want {
		t.Errorf("Summary = %q, want %q", got, want)
	}
}

func TestSummaryMixed(t *testing.T) {
	tests := []struct {
		name    string
		metrics []entity.Metric
		want    string
	}{
		{
			"low and high",
			[]entity.Metric{
				metric("Hemoglobin", constants.MetricLow),
				metric("Wbc", constants.MetricNormal),
				metric("Glucose", constants.MetricHigh),
			},
			"Out of 3 parameters tested, 1 are normal. 1 parameter(s) below normal and 1 parameter(s) above normal.",
		},
		{
			"only low",
			[]entity.Metric{
				metric("Hemoglobin", constants.MetricLow),
				metric("Glucose", constants.MetricNormal),
			},
			"Out of 2 parameters tested, 1 are normal. 1 parameter(s) below normal.",
		},
		{
			"only high",
			[]entity.Metric{
				metric("Glucose", constants.MetricHigh),
				metric("Tsh", constants.MetricHigh),
			},
			"Out of 2 parameters tested, 0 are normal. 2 parameter(s) above normal.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Summary(tt.metrics); got != tt.want {
				t.Errorf("Summary = %q, want %q", got, tt.want)
			}
		})
	}
}
