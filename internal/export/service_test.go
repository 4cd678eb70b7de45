package export

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/medalizer/blood-report-analyzer/constants"
	"github.com/medalizer/blood-report-analyzer/internal/entity"
	"github.com/medalizer/blood-report-analyzer/internal/repository"
)

type stubReportRepo struct {
	reports []*entity.Report
	details map[uuid.UUID]*repository.ReportDetail
}

func (s *stubReportRepo) SaveAnalysis(context.Context, uuid.UUID, string, *entity.AnalysisResult) (*entity.Report, error) {
	panic("not used")
}

func (s *stubReportRepo) GetByID(_ context.Context, id, _ uuid.UUID) (*repository.ReportDetail, error) {
	return s.details[id], nil
}

func (s *stubReportRepo) ListByUser(context.Context, uuid.UUID) ([]*entity.Report, error) {
	return s.reports, nil
}

func (s *stubReportRepo) Delete(context.Context, uuid.UUID, uuid.UUID) (string, error) {
	panic("not used")
}

func TestExportReportsXLSX(t *testing.T) {
	userID := uuid.New()
	reportID := uuid.New()
	rep := &entity.Report{
		ID:        reportID,
		UserID:    userID,
		Filename:  "cbc.pdf",
		Summary:   "Out of 2 parameters tested, 1 are normal.",
		Status:    constants.ReportWarning,
		CreatedAt: time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC),
	}
	repo := &stubReportRepo{
		reports: []*entity.Report{rep},
		details: map[uuid.UUID]*repository.ReportDetail{
			reportID: {
				Report: rep,
				Metrics: []entity.Metric{
					{Name: "Hemoglobin", Value: 9.5, Unit: "g/dL", ReferenceMin: 12, ReferenceMax: 16, Status: constants.MetricLow},
					{Name: "Glucose", Value: 90, Unit: "mg/dL", ReferenceMin: 70, ReferenceMax: 100, Status: constants.MetricNormal},
				},
			},
		},
	}

	data, err := NewService(repo, nil).ExportReportsXLSX(context.Background(), userID)
	if err != nil {
		t.Fatalf("ExportReportsXLSX: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("opening workbook: %v", err)
	}
	defer f.Close()

	cell := func(sheet, ref string) string {
		t.Helper()
		v, err := f.GetCellValue(sheet, ref)
		if err != nil {
			t.Fatalf("GetCellValue(%s!%s): %v", sheet, ref, err)
		}
		return v
	}

	if got := cell("Reports", "B2"); got != "cbc.pdf" {
		t.Errorf("Reports!B2 = %q, want cbc.pdf", got)
	}
	if got := cell("Reports", "C2"); got != "warning" {
		t.Errorf("Reports!C2 = %q, want warning", got)
	}
	if got := cell("Metrics", "B2"); got != "Hemoglobin" {
		t.Errorf("Metrics!B2 = %q, want Hemoglobin", got)
	}
	if got := cell("Metrics", "G3"); got != "normal" {
		t.Errorf("Metrics!G3 = %q, want normal", got)
	}
}

func TestExportReportsXLSXEmptyHistory(t *testing.T) {
	data, err := NewService(&stubReportRepo{}, nil).ExportReportsXLSX(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("ExportReportsXLSX: %v", err)
	}
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("opening workbook: %v", err)
	}
	defer f.Close()

	if got, _ := f.GetCellValue("Reports", "A1"); got != "Analyzed" {
		t.Errorf("header A1 = %q, want Analyzed", got)
	}
	if got, _ := f.GetCellValue("Reports", "A2"); got != "" {
		t.Errorf("unexpected data row in empty export: %q", got)
	}
}
