// Package pipeline chains the three analysis stages: text recovery, metric
// extraction, and advice synthesis. One Analyze call is a single blocking
// chain with no internal parallelism or retries; callers that need
// concurrency run invocations on independent workers (see internal/async).
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/medalizer/blood-report-analyzer/constants"
	"github.com/medalizer/blood-report-analyzer/internal/advice"
	"github.com/medalizer/blood-report-analyzer/internal/catalog"
	"github.com/medalizer/blood-report-analyzer/internal/common"
	"github.com/medalizer/blood-report-analyzer/internal/entity"
	"github.com/medalizer/blood-report-analyzer/internal/knowledge"
	"github.com/medalizer/blood-report-analyzer/internal/metrics"
	"github.com/medalizer/blood-report-analyzer/internal/ocr"
)

// TextExtractor is stage 1: document file -> raw text.
type TextExtractor interface {
	Extract(ctx context.Context, path string) (ocr.ExtractionResult, error)
}

// Analyzer runs the full analysis chain. All referenced state (catalog,
// knowledge base) is read-only, so one Analyzer serves concurrent
// invocations without locking.
type Analyzer struct {
	ocr       TextExtractor
	extractor *metrics.Extractor
	kb        *knowledge.Base
	logger    *slog.Logger
}

func NewAnalyzer(tx TextExtractor, cat *catalog.Catalog, kb *knowledge.Base, logger *slog.Logger) *Analyzer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Analyzer{
		ocr:       tx,
		extractor: metrics.NewExtractor(cat, logger),
		kb:        kb,
		logger:    logger,
	}
}

// Analyze recovers text from the document at path and analyzes it. Fails
// with one of the common.Err* taxonomy errors; all of them are terminal for
// the request and the caller decides whether to re-submit a clearer scan.
func (a *Analyzer) Analyze(ctx context.Context, path string) (*entity.AnalysisResult, error) {
	res, err := a.ocr.Extract(ctx, path)
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(res.Text)) < constants.MinReportTextLength {
		return nil, fmt.Errorf("%w: recovered %d characters", common.ErrInsufficientContent, len(strings.TrimSpace(res.Text)))
	}

	out, err := a.AnalyzeText(res.Text)
	if err != nil {
		return nil, err
	}
	out.Filename = filepath.Base(path)
	out.Pages = res.Pages
	out.OCRDuration = res.Duration

	a.logger.Info("analysis complete",
		"file", out.Filename,
		"pages", res.Pages,
		"metrics", len(out.Metrics),
		"status", out.Status,
		"ocr_ms", res.Duration.Milliseconds(),
	)
	return out, nil
}

// AnalyzeText runs the post-OCR stages on already-recovered text. Fails only
// with common.ErrNoMetricsFound: a scan in which no catalog parameter
// resolves is either an unsupported layout or not a blood-test report.
func (a *Analyzer) AnalyzeText(text string) (*entity.AnalysisResult, error) {
	analysis := a.extractor.Analyze(text)
	if len(analysis.Metrics) == 0 {
		return nil, common.ErrNoMetricsFound
	}

	return &entity.AnalysisResult{
		ExtractedText:   text,
		Metrics:         analysis.Metrics,
		Status:          analysis.Status,
		Recommendations: advice.Recommendations(analysis.Metrics, a.kb),
		Summary:         advice.Summary(analysis.Metrics),
	}, nil
}
