package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	v1 "github.com/medalizer/blood-report-analyzer/gen/proto/bloodreport/v1"
	"github.com/medalizer/blood-report-analyzer/internal/async"
	"github.com/medalizer/blood-report-analyzer/internal/catalog"
	"github.com/medalizer/blood-report-analyzer/internal/common"
	"github.com/medalizer/blood-report-analyzer/internal/export"
	"github.com/medalizer/blood-report-analyzer/internal/knowledge"
	"github.com/medalizer/blood-report-analyzer/internal/ocr"
	"github.com/medalizer/blood-report-analyzer/internal/pipeline"
	repo "github.com/medalizer/blood-report-analyzer/internal/repository"
	svc "github.com/medalizer/blood-report-analyzer/internal/server"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close(logger)

	if err := db.HealthCheck(ctx, 5*time.Second); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	if err := db.Migrate(ctx); err != nil {
		logger.Error("failed to migrate schema", "error", err)
		os.Exit(1)
	}

	kb, err := knowledge.LoadOrCreate(cfg.Storage.KnowledgeBaseDir, logger)
	if err != nil {
		logger.Error("failed to load knowledge base", "dir", cfg.Storage.KnowledgeBaseDir, "error", err)
		os.Exit(1)
	}

	extractor, err := ocr.NewExtractor(ocr.Config{
		Tesseract:     cfg.OCR.Tesseract,
		Pdftoppm:      cfg.OCR.Pdftoppm,
		TesseractLang: cfg.OCR.Language,
		TessdataDir:   cfg.OCR.TessdataDir,
		DPI:           cfg.OCR.DPI,
		MaxPages:      cfg.OCR.MaxPages,
		Engine:        cfg.OCR.Engine,
	}, logger)
	if err != nil {
		logger.Error("failed to build OCR extractor", "error", err)
		os.Exit(1)
	}

	usersRepo := repo.NewUserRepository(db.Ent, logger)
	reportsRepo := repo.NewReportRepository(db.Ent, logger)

	analyzer := pipeline.NewAnalyzer(extractor, catalog.Default(), kb, logger)
	processor := pipeline.NewProcessor(logger, analyzer, reportsRepo)

	queue := async.NewProcessorQueue(processor, logger,
		async.WithWorkers(4),
		async.WithQueueSize(256),
		async.WithProcessTimeout(3*time.Minute),
	)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	exporter := export.NewService(reportsRepo, logger)
	reportsService := svc.NewReportsService(processor, reportsRepo, usersRepo, queue, exporter,
		cfg.Storage.UploadDir, cfg.Storage.MaxUploadSize, logger)
	v1.RegisterReportsServiceServer(grpcServer, reportsService)
	usersService := svc.NewUsersService(usersRepo, logger)
	v1.RegisterUsersServiceServer(grpcServer, usersService)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)

	logger.Info("blood-report-analyzer listening", "addr", cfg.Server.GRPCAddr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	queue.Shutdown(context.Background())
	grpcServer.GracefulStop()
}
