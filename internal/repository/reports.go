package repository

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/medalizer/blood-report-analyzer/gen/ent"
	entmetric "github.com/medalizer/blood-report-analyzer/gen/ent/metric"
	entrec "github.com/medalizer/blood-report-analyzer/gen/ent/recommendation"
	entreport "github.com/medalizer/blood-report-analyzer/gen/ent/report"
	"github.com/medalizer/blood-report-analyzer/internal/entity"
	"github.com/medalizer/blood-report-analyzer/internal/utils"
)

// ReportDetail is a report together with its metrics and recommendations,
// the shape handed back to transport layers for a single-report read.
type ReportDetail struct {
	Report          *entity.Report
	Metrics         []entity.Metric
	Recommendations []string
}

type ReportRepository interface {
	SaveAnalysis(ctx context.Context, userID uuid.UUID, path string, res *entity.AnalysisResult) (*entity.Report, error)
	GetByID(ctx context.Context, id, userID uuid.UUID) (*ReportDetail, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Report, error)
	// Delete removes the report row (metrics and recommendations cascade)
	// and returns the stored file path so the caller can unlink it.
	Delete(ctx context.Context, id, userID uuid.UUID) (string, error)
}

type reportRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewReportRepository(client *ent.Client, logger *slog.Logger) ReportRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &reportRepository{
		client: client,
		logger: logger,
	}
}

// SaveAnalysis persists one analysis outcome atomically: the report row, its
// metrics, and its recommendations all commit together or not at all.
func (r *reportRepository) SaveAnalysis(ctx context.Context, userID uuid.UUID, path string, res *entity.AnalysisResult) (*entity.Report, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, err
	}

	rep, err := r.saveAnalysisTx(ctx, tx, userID, path, res)
	if err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			r.logger.Error("rollback failed", "error", rbErr)
		}
		r.logger.Error("failed to save analysis", "user_id", userID, "file", res.Filename, "error", err)
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return utils.ToReport(rep), nil
}

func (r *reportRepository) saveAnalysisTx(ctx context.Context, tx *ent.Tx, userID uuid.UUID, path string, res *entity.AnalysisResult) (*ent.Report, error) {
	rep, err := tx.Report.Create().
		SetUserID(userID).
		SetFilename(filepath.Base(path)).
		SetFilePath(path).
		SetExtractedText(res.ExtractedText).
		SetSummary(res.Summary).
		SetStatus(string(res.Status)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating report: %w", err)
	}

	metrics := make([]*ent.MetricCreate, len(res.Metrics))
	for i, m := range res.Metrics {
		metrics[i] = tx.Metric.Create().
			SetReportID(rep.ID).
			SetName(m.Name).
			SetValue(m.Value).
			SetUnit(m.Unit).
			SetReferenceMin(m.ReferenceMin).
			SetReferenceMax(m.ReferenceMax).
			SetStatus(string(m.Status))
	}
	if _, err := tx.Metric.CreateBulk(metrics...).Save(ctx); err != nil {
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	recs := make([]*ent.RecommendationCreate, len(res.Recommendations))
	for i, text := range res.Recommendations {
		recs[i] = tx.Recommendation.Create().
			SetReportID(rep.ID).
			SetText(text).
			SetPosition(i)
	}
	if _, err := tx.Recommendation.CreateBulk(recs...).Save(ctx); err != nil {
		return nil, fmt.Errorf("creating recommendations: %w", err)
	}
	return rep, nil
}

func (r *reportRepository) GetByID(ctx context.Context, id, userID uuid.UUID) (*ReportDetail, error) {
	rep, err := r.client.Report.Query().
		Where(entreport.ID(id), entreport.UserID(userID)).
		Only(ctx)
	if err != nil {
		return nil, err
	}

	ms, err := r.client.Metric.Query().
		Where(entmetric.ReportID(id)).
		Order(entmetric.ByName()).
		All(ctx)
	if err != nil {
		return nil, err
	}
	recs, err := r.client.Recommendation.Query().
		Where(entrec.ReportID(id)).
		Order(entrec.ByPosition()).
		All(ctx)
	if err != nil {
		return nil, err
	}

	detail := &ReportDetail{
		Report:  utils.ToReport(rep),
		Metrics: make([]entity.Metric, len(ms)),
	}
	for i, m := range ms {
		detail.Metrics[i] = *utils.ToMetric(m)
	}
	detail.Recommendations = make([]string, len(recs))
	for i, rec := range recs {
		detail.Recommendations[i] = rec.Text
	}
	return detail, nil
}

func (r *reportRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Report, error) {
	reps, err := r.client.Report.Query().
		Where(entreport.UserID(userID)).
		Order(entreport.ByCreatedAt(sql.OrderDesc())).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list reports", "user_id", userID, "error", err)
		return nil, err
	}
	out := make([]*entity.Report, len(reps))
	for i, rep := range reps {
		out[i] = utils.ToReport(rep)
	}
	return out, nil
}

func (r *reportRepository) Delete(ctx context.Context, id, userID uuid.UUID) (string, error) {
	rep, err := r.client.Report.Query().
		Where(entreport.ID(id), entreport.UserID(userID)).
		Only(ctx)
	if err != nil {
		return "", err
	}
	if err := r.client.Report.DeleteOneID(id).Exec(ctx); err != nil {
		r.logger.Error("failed to delete report", "report_id", id, "error", err)
		return "", err
	}
	return rep.FilePath, nil
}
