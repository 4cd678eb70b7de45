package server

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"log/slog"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/medalizer/blood-report-analyzer/constants"
	reportpb "github.com/medalizer/blood-report-analyzer/gen/proto/bloodreport/v1"
	"github.com/medalizer/blood-report-analyzer/internal/async"
	"github.com/medalizer/blood-report-analyzer/internal/common"
	"github.com/medalizer/blood-report-analyzer/internal/export"
	"github.com/medalizer/blood-report-analyzer/internal/pipeline"
	"github.com/medalizer/blood-report-analyzer/internal/repository"
	"github.com/medalizer/blood-report-analyzer/internal/utils"
)

type ReportsService struct {
	reportpb.UnimplementedReportsServiceServer
	processor  *pipeline.Processor
	reportRepo repository.ReportRepository
	userRepo   repository.UserRepository
	queue      async.Queue
	exporter   *export.Service
	uploadDir  string
	maxUpload  int64
	logger     *slog.Logger
}

func NewReportsService(
	proc *pipeline.Processor,
	reports repository.ReportRepository,
	users repository.UserRepository,
	queue async.Queue,
	exporter *export.Service,
	uploadDir string,
	maxUpload int64,
	logger *slog.Logger,
) *ReportsService {
	if logger == nil {
		logger = slog.Default()
	}
	if maxUpload <= 0 {
		maxUpload = constants.MaxUploadSizeDefault
	}
	return &ReportsService{
		processor:  proc,
		reportRepo: reports,
		userRepo:   users,
		queue:      queue,
		exporter:   exporter,
		uploadDir:  uploadDir,
		maxUpload:  maxUpload,
		logger:     logger,
	}
}

func (s *ReportsService) parseUserID(ctx context.Context, raw string) (uuid.UUID, error) {
	id := strings.TrimSpace(raw)
	if id == "" {
		return uuid.Nil, status.Error(codes.InvalidArgument, "user_id is required")
	}
	userID, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, status.Error(codes.InvalidArgument, "user_id must be a UUID")
	}
	if exists, _ := s.userRepo.Exists(ctx, userID); !exists {
		return uuid.Nil, status.Error(codes.NotFound, "user not found")
	}
	return userID, nil
}

// AnalyzeReport stores the uploaded document, runs the full pipeline on it,
// and persists the outcome. On any failure after storage the file is removed
// again; nothing partial survives.
func (s *ReportsService) AnalyzeReport(ctx context.Context, req *reportpb.AnalyzeReportRequest) (*reportpb.AnalyzeReportResponse, error) {
	userID, err := s.parseUserID(ctx, req.GetUserId())
	if err != nil {
		return nil, err
	}

	filename := strings.TrimSpace(req.GetFilename())
	if filename == "" {
		return nil, status.Error(codes.InvalidArgument, "filename is required")
	}
	if err := ValidateUpload(filename, int64(len(req.GetContent())), s.maxUpload); err != nil {
		s.logger.Warn("upload rejected", "user_id", userID, "filename", filename, "reason", err)
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	path, err := StoreUpload(s.uploadDir, userID, filename, req.GetContent())
	if err != nil {
		s.logger.Error("upload store failed", "user_id", userID, "filename", filename, "error", err)
		return nil, status.Error(codes.Internal, "could not store upload")
	}

	s.logger.Info("starting report analysis", "user_id", userID, "filename", filename)
	res, err := s.processor.ProcessFile(ctx, userID, path)
	if err != nil {
		if rmErr := os.Remove(path); rmErr != nil {
			s.logger.Error("failed to remove stored upload", "path", path, "error", rmErr)
		}
		return nil, common.GRPCStatus(err)
	}

	detail, err := s.reportRepo.GetByID(ctx, res.ReportID, userID)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "load saved report: %v", err)
	}

	out := &reportpb.AnalyzeReportResponse{
		Report:          utils.ToPBReport(detail.Report),
		Metrics:         make([]*reportpb.Metric, 0, len(res.Metrics)),
		Recommendations: res.Recommendations,
		Pages:           int32(res.Pages),
	}
	for i := range res.Metrics {
		out.Metrics = append(out.Metrics, utils.ToPBMetric(&res.Metrics[i]))
	}
	return out, nil
}

// AnalyzeDirectory queues every supported document under root_path for
// background analysis. Files are copied into the upload store first so the
// workers never depend on the caller's directory staying put.
func (s *ReportsService) AnalyzeDirectory(ctx context.Context, req *reportpb.AnalyzeDirectoryRequest) (*reportpb.AnalyzeDirectoryResponse, error) {
	userID, err := s.parseUserID(ctx, req.GetUserId())
	if err != nil {
		return nil, err
	}

	root := strings.TrimSpace(req.GetRootPath())
	if root == "" {
		return nil, status.Error(codes.InvalidArgument, "root_path is required")
	}
	if info, err := os.Stat(root); err != nil || !info.IsDir() {
		return nil, status.Error(codes.InvalidArgument, "root_path is not a readable directory")
	}

	var queued, skipped int32
	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") && path != root {
				return filepath.SkipDir
			}
			return nil
		}
		if constants.MapExtToFormat(filepath.Ext(path)) == "" {
			skipped++
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil || ValidateUpload(path, int64(len(content)), s.maxUpload) != nil {
			s.logger.Warn("skipping file", "path", path, "error", err)
			skipped++
			return nil
		}
		stored, err := StoreUpload(s.uploadDir, userID, filepath.Base(path), content)
		if err != nil {
			s.logger.Error("failed to store file for analysis", "path", path, "error", err)
			skipped++
			return nil
		}
		if err := s.queue.Enqueue(ctx, async.Job{UserID: userID, Path: stored, SubmittedAt: time.Now()}); err != nil {
			s.logger.Error("enqueue failed", "path", stored, "error", err)
			skipped++
			return nil
		}
		queued++
		return nil
	})
	if walkErr != nil {
		return nil, status.Errorf(codes.Internal, "walking %s: %v", root, walkErr)
	}

	s.logger.Info("directory analysis queued", "user_id", userID, "root", root, "queued", queued, "skipped", skipped)
	return &reportpb.AnalyzeDirectoryResponse{Queued: queued, Skipped: skipped}, nil
}

func (s *ReportsService) GetReport(ctx context.Context, req *reportpb.GetReportRequest) (*reportpb.GetReportResponse, error) {
	userID, err := s.parseUserID(ctx, req.GetUserId())
	if err != nil {
		return nil, err
	}
	reportID, err := uuid.Parse(strings.TrimSpace(req.GetReportId()))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "report_id must be a UUID")
	}

	detail, err := s.reportRepo.GetByID(ctx, reportID, userID)
	if err != nil {
		return nil, status.Error(codes.NotFound, "report not found")
	}

	out := &reportpb.GetReportResponse{
		Report:          utils.ToPBReport(detail.Report),
		Metrics:         make([]*reportpb.Metric, 0, len(detail.Metrics)),
		Recommendations: detail.Recommendations,
		ExtractedText:   detail.Report.ExtractedText,
	}
	for i := range detail.Metrics {
		out.Metrics = append(out.Metrics, utils.ToPBMetric(&detail.Metrics[i]))
	}
	return out, nil
}

func (s *ReportsService) ListReports(ctx context.Context, req *reportpb.ListReportsRequest) (*reportpb.ListReportsResponse, error) {
	userID, err := s.parseUserID(ctx, req.GetUserId())
	if err != nil {
		return nil, err
	}

	reps, err := s.reportRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "list reports: %v", err)
	}
	out := make([]*reportpb.Report, 0, len(reps))
	for _, r := range reps {
		out = append(out, utils.ToPBReport(r))
	}
	return &reportpb.ListReportsResponse{Reports: out}, nil
}

func (s *ReportsService) DeleteReport(ctx context.Context, req *reportpb.DeleteReportRequest) (*reportpb.DeleteReportResponse, error) {
	userID, err := s.parseUserID(ctx, req.GetUserId())
	if err != nil {
		return nil, err
	}
	reportID, err := uuid.Parse(strings.TrimSpace(req.GetReportId()))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "report_id must be a UUID")
	}

	path, err := s.reportRepo.Delete(ctx, reportID, userID)
	if err != nil {
		return nil, status.Error(codes.NotFound, "report not found")
	}
	if path != "" {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			// report row is already gone; losing the file is not fatal
			s.logger.Warn("failed to remove report file", "path", path, "error", err)
		}
	}

	s.logger.Info("report deleted", "user_id", userID, "report_id", reportID)
	return &reportpb.DeleteReportResponse{Deleted: true}, nil
}

func (s *ReportsService) ExportReports(ctx context.Context, req *reportpb.ExportReportsRequest) (*reportpb.ExportReportsResponse, error) {
	userID, err := s.parseUserID(ctx, req.GetUserId())
	if err != nil {
		return nil, err
	}

	xlsx, err := s.exporter.ExportReportsXLSX(ctx, userID)
	if err != nil {
		s.logger.Error("export.xlsx.failed", "user_id", userID, "err", err)
		return nil, status.Errorf(codes.Internal, "export: %v", err)
	}
	return &reportpb.ExportReportsResponse{Xlsx: xlsx}, nil
}
