package pipeline

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/medalizer/blood-report-analyzer/internal/async"
	"github.com/medalizer/blood-report-analyzer/internal/entity"
	"github.com/medalizer/blood-report-analyzer/internal/repository"
)

// Processor runs one full analysis and persists the outcome as a report with
// its metrics and recommendations. It does not own the document file:
// removing a stored upload after a failed run is the transport layer's job.
type Processor struct {
	Logger   *slog.Logger
	Analyzer *Analyzer
	Reports  repository.ReportRepository
}

func NewProcessor(logger *slog.Logger, analyzer *Analyzer, reports repository.ReportRepository) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{Logger: logger, Analyzer: analyzer, Reports: reports}
}

// ProcessFile analyzes the document at path on behalf of userID and saves
// report, metrics, and recommendations in one transaction. The returned
// result carries the persisted report ID.
func (p *Processor) ProcessFile(ctx context.Context, userID uuid.UUID, path string) (*entity.AnalysisResult, error) {
	res, err := p.Analyzer.Analyze(ctx, path)
	if err != nil {
		p.Logger.Error("processor.analyze.failed", "user_id", userID, "file", filepath.Base(path), "err", err)
		return nil, err
	}

	rep, err := p.Reports.SaveAnalysis(ctx, userID, path, res)
	if err != nil {
		p.Logger.Error("processor.save.failed", "user_id", userID, "file", res.Filename, "err", err)
		return nil, err
	}
	res.ReportID = rep.ID

	p.Logger.Info("processor.ok",
		"user_id", userID,
		"report_id", rep.ID,
		"metrics", len(res.Metrics),
		"status", res.Status,
	)
	return res, nil
}

// Process adapts ProcessFile to the async worker-pool contract.
func (p *Processor) Process(ctx context.Context, job async.Job) error {
	_, err := p.ProcessFile(ctx, job.UserID, job.Path)
	return err
}
