package ocr

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/medalizer/blood-report-analyzer/constants"
	"github.com/medalizer/blood-report-analyzer/internal/common"
)

// extractPDF rasterizes each page at the configured DPI, runs the same
// cleanup-and-recognize path as standalone images, and concatenates pages in
// original order behind "--- Page N ---" markers. A failure on any page
// aborts the whole document: partial reports are worse than no report.
func (e *Extractor) extractPDF(ctx context.Context, path string) (ExtractionResult, error) {
	res := ExtractionResult{SourceType: constants.PDF, Method: "pdf-ocr", Language: e.cfg.TesseractLang}

	tmpDir, err := os.MkdirTemp("", "bra-pp-*")
	if err != nil {
		return res, fmt.Errorf("%w: temp dir: %v", common.ErrExtraction, err)
	}
	defer func() {
		if rerr := os.RemoveAll(tmpDir); rerr != nil {
			e.logger.Warn("failed to remove temp dir", "path", tmpDir, "error", rerr)
		}
	}()

	prefix := filepath.Join(tmpDir, "page")
	// pdftoppm -r 300 -png <in.pdf> <tmp/page>
	_, errb, err := e.runner.Run(ctx, e.cfg.Pdftoppm, "-r", strconv.Itoa(e.cfg.DPI), "-png", path, prefix)
	if err != nil {
		return res, fmt.Errorf("%w: pdftoppm: %v: %s", common.ErrExtraction, err, truncate(string(errb), 512))
	}

	// pdftoppm zero-pads page numbers, so lexicographic order is page order
	pages, _ := filepath.Glob(prefix + "-*.png")
	sort.Strings(pages)
	if e.cfg.MaxPages > 0 && len(pages) > e.cfg.MaxPages {
		pages = pages[:e.cfg.MaxPages]
	}
	if len(pages) == 0 {
		return res, fmt.Errorf("%w: pdftoppm produced no page images", common.ErrExtraction)
	}

	var b strings.Builder
	for i, img := range pages {
		txt, err := e.recognizeFile(ctx, img)
		if err != nil {
			return res, fmt.Errorf("page %d: %w", i+1, err)
		}
		if b.Len() > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "--- Page %d ---\n%s", i+1, Normalize(txt))
	}

	res.Text = b.String()
	res.Pages = len(pages)
	return res, nil
}
