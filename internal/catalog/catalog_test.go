package catalog

import (
	"testing"

	"github.com/medalizer/blood-report-analyzer/constants"
)

func TestNewRejectsBadEntries(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry
	}{
		{"empty name", []Entry{{Name: "  ", Unit: "g/dL", Min: 1, Max: 2}}},
		{"duplicate name", []Entry{
			{Name: "glucose", Unit: "mg/dL", Min: 70, Max: 100},
			{Name: "Glucose", Unit: "mg/dL", Min: 70, Max: 100},
		}},
		{"inverted range", []Entry{{Name: "glucose", Unit: "mg/dL", Min: 100, Max: 70}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.entries); err == nil {
				t.Errorf("New(%v): expected error", tt.entries)
			}
		})
	}
}

func TestResolveAlias(t *testing.T) {
	c := Default()

	tests := []struct {
		label    string
		wantName string
	}{
		{"hemoglobin", "hemoglobin"},
		{"Hemoglobin ", "hemoglobin"},
		{"hb", "hemoglobin"},
		{"haemoglobin", "hemoglobin"},
		{"white blood cells", "wbc"},
		{"total cholesterol", "cholesterol"},
		{"blood sugar", "glucose"},
		{"fasting glucose level", "glucose"},
		{"sgpt", "alt"},
		{"thyroid stimulating hormone", "tsh"},
	}
	for _, tt := range tests {
		got, ok := c.Resolve(tt.label)
		if !ok {
			t.Errorf("Resolve(%q): no match", tt.label)
			continue
		}
		if got.Name != tt.wantName {
			t.Errorf("Resolve(%q) = %q, want %q", tt.label, got.Name, tt.wantName)
		}
	}
}

func TestResolveMiss(t *testing.T) {
	c := Default()
	for _, label := range []string{"", "   ", "vitamin d", "patient name"} {
		if _, ok := c.Resolve(label); ok {
			t.Errorf("Resolve(%q): unexpected match", label)
		}
	}
}

// Resolution is first-match-wins in insertion order; this pins the order so an
// accidental reorder of the table shows up as a failure.
func TestResolveOrderIsInsertionOrder(t *testing.T) {
	c, err := New([]Entry{
		{Name: "t3", Unit: "ng/dL", Min: 80, Max: 200},
		{Name: "t3 uptake", Unit: "%", Min: 24, Max: 39},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got, ok := c.Resolve("t3 uptake")
	if !ok || got.Name != "t3" {
		t.Errorf("Resolve(\"t3 uptake\") = %q, want first entry \"t3\"", got.Name)
	}
}

func TestClassify(t *testing.T) {
	e := Entry{Name: "glucose", Unit: "mg/dL", Min: 70, Max: 100}
	tests := []struct {
		value float64
		want  constants.MetricStatus
	}{
		{69.9, constants.MetricLow},
		{70, constants.MetricNormal},
		{85, constants.MetricNormal},
		{100, constants.MetricNormal},
		{100.1, constants.MetricHigh},
	}
	for _, tt := range tests {
		if got := e.Classify(tt.value); got != tt.want {
			t.Errorf("Classify(%v) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestDefaultCoversCorePanel(t *testing.T) {
	c := Default()
	if c.Len() != 16 {
		t.Fatalf("Default().Len() = %d, want 16", c.Len())
	}
	for _, e := range c.Entries() {
		if e.Min > e.Max {
			t.Errorf("entry %q: min %v > max %v", e.Name, e.Min, e.Max)
		}
		if e.Unit == "" {
			t.Errorf("entry %q: empty unit", e.Name)
		}
	}
}
