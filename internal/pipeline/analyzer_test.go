package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/medalizer/blood-report-analyzer/internal/catalog"
	"github.com/medalizer/blood-report-analyzer/internal/common"
	"github.com/medalizer/blood-report-analyzer/internal/knowledge"
	"github.com/medalizer/blood-report-analyzer/internal/ocr"
)

type stubExtractor struct {
	text  string
	pages int
	err   error
}

func (s stubExtractor) Extract(context.Context, string) (ocr.ExtractionResult, error) {
	if s.err != nil {
		return ocr.ExtractionResult{}, s.err
	}
	return ocr.ExtractionResult{
		Text:     s.text,
		Pages:    s.pages,
		Method:   "image-ocr",
		Duration: 42 * time.Millisecond,
	}, nil
}

func newTestAnalyzer(t *testing.T, tx TextExtractor) *Analyzer {
	t.Helper()
	kb, err := knowledge.LoadOrCreate(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("LoadOrCreate: %v", err)
	}
	return NewAnalyzer(tx, catalog.Default(), kb, nil)
}

func TestAnalyzeSuccess(t *testing.T) {
	a := newTestAnalyzer(t, stubExtractor{
		text:  "Hemoglobin: 9.5 g/dL\nGlucose: 180 mg/dL",
		pages: 2,
	})

	res, err := a.Analyze(context.Background(), "/uploads/report.pdf")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if res.Filename != "report.pdf" {
		t.Errorf("filename = %q, want report.pdf", res.Filename)
	}
	if res.Pages != 2 {
		t.Errorf("pages = %d, want 2", res.Pages)
	}
	if len(res.Metrics) != 2 {
		t.Fatalf("metrics = %d, want 2", len(res.Metrics))
	}
	if res.Status != "warning" {
		t.Errorf("status = %q, want warning", res.Status)
	}
	if len(res.Recommendations) == 0 {
		t.Fatal("no recommendations produced")
	}
	last := res.Recommendations[len(res.Recommendations)-1]
	if !strings.Contains(last, "healthcare provider") {
		t.Errorf("last recommendation = %q, want the follow-up line", last)
	}
	if !strings.Contains(res.Summary, "Out of 2 parameters tested") {
		t.Errorf("summary = %q", res.Summary)
	}
}

func TestAnalyzePropagatesExtractionError(t *testing.T) {
	wrapped := errors.New("tesseract exploded")
	a := newTestAnalyzer(t, stubExtractor{err: wrapped})

	_, err := a.Analyze(context.Background(), "report.pdf")
	if !errors.Is(err, wrapped) {
		t.Errorf("err = %v, want the extractor error", err)
	}
}

func TestAnalyzeInsufficientContent(t *testing.T) {
	for _, text := range []string{"", "   \n\n ", "Hb 9"} {
		a := newTestAnalyzer(t, stubExtractor{text: text, pages: 1})
		_, err := a.Analyze(context.Background(), "report.png")
		if !errors.Is(err, common.ErrInsufficientContent) {
			t.Errorf("Analyze(text=%q): err = %v, want ErrInsufficientContent", text, err)
		}
	}
}

func TestAnalyzeNoMetricsFound(t *testing.T) {
	a := newTestAnalyzer(t, stubExtractor{
		text:  "This prose is long enough but names no parameters at all.",
		pages: 1,
	})
	_, err := a.Analyze(context.Background(), "report.png")
	if !errors.Is(err, common.ErrNoMetricsFound) {
		t.Errorf("err = %v, want ErrNoMetricsFound", err)
	}
}

func TestAnalyzeTextAllNormal(t *testing.T) {
	a := newTestAnalyzer(t, nil)
	res, err := a.AnalyzeText("Hemoglobin: 14.0 g/dL\nGlucose: 90 mg/dL")
	if err != nil {
		t.Fatalf("AnalyzeText: %v", err)
	}
	if res.Status != "normal" {
		t.Errorf("status = %q, want normal", res.Status)
	}
	if res.Summary != "All 2 tested parameters are within normal ranges." {
		t.Errorf("summary = %q", res.Summary)
	}
}
