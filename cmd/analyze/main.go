// Command analyze runs the analysis pipeline on a single document and prints
// the result as JSON, without touching the database. Useful for checking a
// scan before uploading it, and for debugging OCR quality.
package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"time"

	"github.com/medalizer/blood-report-analyzer/internal/catalog"
	"github.com/medalizer/blood-report-analyzer/internal/common"
	"github.com/medalizer/blood-report-analyzer/internal/knowledge"
	"github.com/medalizer/blood-report-analyzer/internal/ocr"
	"github.com/medalizer/blood-report-analyzer/internal/pipeline"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "analyze <report.pdf|report.png>")
		os.Exit(2)
	}
	path := os.Args[1]

	cfg := common.LoadConfig()

	kb, err := knowledge.LoadOrCreate(cfg.Storage.KnowledgeBaseDir, logger)
	if err != nil {
		logger.Error("load knowledge base", "error", err)
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
		logger.Error("build OCR extractor", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	analyzer := pipeline.NewAnalyzer(extractor, catalog.Default(), kb, logger)
	res, err := analyzer.Analyze(ctx, path)
	if err != nil {
		logger.Error("analysis failed", "file", path, "error", err)
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res); err != nil {
		logger.Error("encode result", "error", err)
		os.Exit(1)
	}
}
