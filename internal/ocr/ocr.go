// Package ocr recovers raw text from scanned report documents. Images are
// cleaned up with a fixed preprocessing sequence before recognition; PDFs are
// rasterized page by page and treated the same way.
package ocr

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/medalizer/blood-report-analyzer/constants"
	"github.com/medalizer/blood-report-analyzer/internal/common"
)

type Config struct {
	Tesseract string // binary name or absolute path; if empty -> "tesseract"
	Pdftoppm  string // binary name or absolute path; if empty -> "pdftoppm"

	TesseractLang string // default "eng"
	DPI           int    // rasterization DPI for PDFs, default 300
	MaxPages      int    // 0 = no limit

	TessdataDir string

	PSM int // default 6: assume a single uniform block of text
	OEM int // default 3: tesseract's default engine selection

	// Engine selects the recognition backend: "exec" (default) shells out to
	// the tesseract binary through Runner; "native" uses the in-process
	// gosseract bindings (requires the ocr_cgo build tag).
	Engine string
}

type ExtractionResult struct {
	Text       string
	Pages      int
	SourceType string // constants.PDF | constants.IMAGE
	Method     string // "pdf-ocr" | "image-ocr"
	Language   string
	Duration   time.Duration
}

type Extractor struct {
	cfg    Config
	runner Runner
	engine Engine
	logger *slog.Logger
}

func NewExtractor(cfg Config, logger *slog.Logger) (*Extractor, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.TesseractLang == "" {
		cfg.TesseractLang = "eng"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 300
	}
	if cfg.PSM <= 0 {
		cfg.PSM = 6
	}
	if cfg.OEM <= 0 {
		cfg.OEM = 3
	}

	e := &Extractor{cfg: cfg, runner: execRunner{}, logger: logger}
	switch cfg.Engine {
	case "", "exec":
		e.engine = execEngine{cfg: cfg, runner: e.runner}
	case "native":
		native, err := newNativeEngine(cfg)
		if err != nil {
			return nil, err
		}
		e.engine = native
	default:
		return nil, fmt.Errorf("unknown ocr engine %q", cfg.Engine)
	}
	return e, nil
}

// Extract picks a strategy based on file extension. Unsupported extensions
// fail with common.ErrUnsupportedFormat before any work happens.
func (e *Extractor) Extract(ctx context.Context, path string) (ExtractionResult, error) {
	start := time.Now()
	ext := constants.NormalizeExt(filepath.Ext(path))
	e.logger.Debug("starting text recovery", "path", path, "ext", ext)

	switch constants.MapExtToFormat(ext) {
	case constants.PDF:
		res, err := e.extractPDF(ctx, path)
		res.Duration = time.Since(start)
		return res, err
	case constants.IMAGE:
		res, err := e.extractImage(ctx, path)
		res.Duration = time.Since(start)
		return res, err
	default:
		e.logger.Error("unsupported document extension", "extension", ext)
		return ExtractionResult{}, fmt.Errorf("%w: extension %q", common.ErrUnsupportedFormat, ext)
	}
}
