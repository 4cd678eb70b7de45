package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/medalizer/blood-report-analyzer/internal/async"
	"github.com/medalizer/blood-report-analyzer/internal/common"
	"github.com/medalizer/blood-report-analyzer/internal/entity"
	"github.com/medalizer/blood-report-analyzer/internal/repository"
)

type stubReportRepo struct {
	saved   []*entity.AnalysisResult
	saveErr error
	id      uuid.UUID
}

func (s *stubReportRepo) SaveAnalysis(_ context.Context, userID uuid.UUID, path string, res *entity.AnalysisResult) (*entity.Report, error) {
	if s.saveErr != nil {
		return nil, s.saveErr
	}
	s.saved = append(s.saved, res)
	return &entity.Report{ID: s.id, UserID: userID, Filename: res.Filename}, nil
}

func (s *stubReportRepo) GetByID(context.Context, uuid.UUID, uuid.UUID) (*repository.ReportDetail, error) {
	return nil, errors.New("not implemented")
}

func (s *stubReportRepo) ListByUser(context.Context, uuid.UUID) ([]*entity.Report, error) {
	return nil, nil
}

func (s *stubReportRepo) Delete(context.Context, uuid.UUID, uuid.UUID) (string, error) {
	return "", errors.New("not implemented")
}

func TestProcessFilePersistsAndFillsReportID(t *testing.T) {
	a := newTestAnalyzer(t, stubExtractor{text: "Hemoglobin: 9.5 g/dL", pages: 1})
	repo := &stubReportRepo{id: uuid.New()}
	p := NewProcessor(nil, a, repo)

	res, err := p.ProcessFile(context.Background(), uuid.New(), "/uploads/cbc.png")
	if err != nil {
		t.Fatalf("ProcessFile: %v", err)
	}
	if res.ReportID != repo.id {
		t.Errorf("ReportID = %s, want %s", res.ReportID, repo.id)
	}
	if len(repo.saved) != 1 {
		t.Fatalf("saved %d results, want 1", len(repo.saved))
	}
}

func TestProcessFileAnalysisFailureSkipsPersistence(t *testing.T) {
	a := newTestAnalyzer(t, stubExtractor{text: "no parameters in this prose at all", pages: 1})
	repo := &stubReportRepo{id: uuid.New()}
	p := NewProcessor(nil, a, repo)

	_, err := p.ProcessFile(context.Background(), uuid.New(), "junk.png")
	if !errors.Is(err, common.ErrNoMetricsFound) {
		t.Fatalf("err = %v, want ErrNoMetricsFound", err)
	}
	if len(repo.saved) != 0 {
		t.Errorf("nothing should be persisted on analysis failure")
	}
}

func TestProcessFileSaveFailurePropagates(t *testing.T) {
	a := newTestAnalyzer(t, stubExtractor{text: "Hemoglobin: 9.5 g/dL", pages: 1})
	dbErr := errors.New("connection reset")
	p := NewProcessor(nil, a, &stubReportRepo{saveErr: dbErr})

	_, err := p.ProcessFile(context.Background(), uuid.New(), "cbc.png")
	if !errors.Is(err, dbErr) {
		t.Errorf("err = %v, want the repository error", err)
	}
}

func TestProcessAdaptsQueueJobs(t *testing.T) {
	a := newTestAnalyzer(t, stubExtractor{text: "Hemoglobin: 9.5 g/dL", pages: 1})
	repo := &stubReportRepo{id: uuid.New()}
	p := NewProcessor(nil, a, repo)

	err := p.Process(context.Background(), async.Job{UserID: uuid.New(), Path: "cbc.png"})
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if len(repo.saved) != 1 {
		t.Errorf("saved %d results, want 1", len(repo.saved))
	}
}
