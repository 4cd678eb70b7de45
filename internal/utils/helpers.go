package utils

import (
	"time"

	"github.com/medalizer/blood-report-analyzer/constants"
	"github.com/medalizer/blood-report-analyzer/gen/ent"
	reportpb "github.com/medalizer/blood-report-analyzer/gen/proto/bloodreport/v1"
	"github.com/medalizer/blood-report-analyzer/internal/entity"
)

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func ToUser(e *ent.User) *entity.User {
	return &entity.User{
		ID:        e.ID,
		Username:  e.Username,
		Email:     e.Email,
		CreatedAt: e.CreatedAt,
	}
}

func ToReport(e *ent.Report) *entity.Report {
	return &entity.Report{
		ID:            e.ID,
		UserID:        e.UserID,
		Filename:      e.Filename,
		FilePath:      e.FilePath,
		ExtractedText: e.ExtractedText,
		Summary:       e.Summary,
		Status:        constants.ReportStatus(e.Status),
		CreatedAt:     e.CreatedAt,
	}
}

func ToMetric(e *ent.Metric) *entity.Metric {
	return &entity.Metric{
		Name:         e.Name,
		Value:        e.Value,
		Unit:         e.Unit,
		ReferenceMin: e.ReferenceMin,
		ReferenceMax: e.ReferenceMax,
		Status:       constants.MetricStatus(e.Status),
	}
}

func ToPBUser(u *entity.User) *reportpb.User {
	return &reportpb.User{
		Id:        u.ID.String(),
		Username:  u.Username,
		Email:     strOrEmpty(u.Email),
		CreatedAt: u.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBReport(r *entity.Report) *reportpb.Report {
	return &reportpb.Report{
		Id:        r.ID.String(),
		UserId:    r.UserID.String(),
		Filename:  r.Filename,
		Status:    string(r.Status),
		Summary:   r.Summary,
		CreatedAt: r.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBMetric(m *entity.Metric) *reportpb.Metric {
	return &reportpb.Metric{
		Name:         m.Name,
		Value:        m.Value,
		Unit:         m.Unit,
		ReferenceMin: m.ReferenceMin,
		ReferenceMax: m.ReferenceMax,
		Status:       string(m.Status),
	}
}
