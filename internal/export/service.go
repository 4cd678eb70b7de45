package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/medalizer/blood-report-analyzer/internal/repository"
)

// Service produces XLSX bytes for report-history exports.
type Service struct {
	reports repository.ReportRepository
	logger  *slog.Logger
}

func NewService(reports repository.ReportRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{reports: reports, logger: logger}
}

// ExportReportsXLSX returns a workbook with one row per analyzed report plus
// a second sheet listing every extracted metric.
func (s *Service) ExportReportsXLSX(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	start := time.Now()

	reps, err := s.reports.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("query reports: %w", err)
	}

	f := excelize.NewFile()
	const reportsSheet = "Reports"
	const metricsSheet = "Metrics"

	if err := f.SetSheetName("Sheet1", reportsSheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(metricsSheet); err != nil {
		return nil, err
	}
	if idx, _ := f.GetSheetIndex(reportsSheet); idx != -1 {
		f.SetActiveSheet(idx)
	}

	setRow := func(sheet string, row int, values []any) {
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	setRow(reportsSheet, 1, []any{"Analyzed", "Filename", "Status", "Summary"})
	setRow(metricsSheet, 1, []any{"Report", "Parameter", "Value", "Unit", "Reference Min", "Reference Max", "Status"})

	metricRow := 2
	for i, r := range reps {
		setRow(reportsSheet, i+2, []any{
			r.CreatedAt.UTC().Format("2006-01-02 15:04"),
			r.Filename,
			string(r.Status),
			r.Summary,
		})

		detail, err := s.reports.GetByID(ctx, r.ID, userID)
		if err != nil {
			return nil, fmt.Errorf("load report %s: %w", r.ID, err)
		}
		for _, m := range detail.Metrics {
			setRow(metricsSheet, metricRow, []any{
				r.Filename,
				m.Name,
				m.Value,
				m.Unit,
				m.ReferenceMin,
				m.ReferenceMax,
				string(m.Status),
			})
			metricRow++
		}
	}

	_ = f.SetColWidth(reportsSheet, "A", "A", 18)
	_ = f.SetColWidth(reportsSheet, "B", "B", 32)
	_ = f.SetColWidth(reportsSheet, "C", "C", 10)
	_ = f.SetColWidth(reportsSheet, "D", "D", 72)
	_ = f.SetColWidth(metricsSheet, "A", "B", 28)
	_ = f.SetColWidth(metricsSheet, "C", "G", 14)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"user_id", userID.String(),
		"rows", len(reps),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
