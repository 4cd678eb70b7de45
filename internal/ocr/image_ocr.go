package ocr

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"

	"github.com/medalizer/blood-report-analyzer/constants"
	"github.com/medalizer/blood-report-analyzer/internal/common"
)

func (e *Extractor) extractImage(ctx context.Context, path string) (ExtractionResult, error) {
	txt, err := e.recognizeFile(ctx, path)
	if err != nil {
		return ExtractionResult{SourceType: constants.IMAGE}, err
	}

	return ExtractionResult{
		Text:       Normalize(txt),
		Pages:      1,
		SourceType: constants.IMAGE,
		Method:     "image-ocr",
		Language:   e.cfg.TesseractLang,
	}, nil
}

// recognizeFile loads one page image, runs the cleanup sequence, and hands
// the cleaned copy to the recognition engine via a temp file.
func (e *Extractor) recognizeFile(ctx context.Context, path string) (string, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: decode %s: %v", common.ErrExtraction, filepath.Base(path), err)
	}

	cleaned := Preprocess(img)

	tmp, err := os.CreateTemp("", "bra-page-*.png")
	if err != nil {
		return "", fmt.Errorf("%w: temp file: %v", common.ErrExtraction, err)
	}
	tmpPath := tmp.Name()
	_ = tmp.Close()
	defer func() {
		if rerr := os.Remove(tmpPath); rerr != nil {
			e.logger.Warn("failed to remove temp page image", "path", tmpPath, "error", rerr)
		}
	}()

	if err := imaging.Save(cleaned, tmpPath); err != nil {
		return "", fmt.Errorf("%w: encode cleaned page: %v", common.ErrExtraction, err)
	}

	return e.engine.Recognize(ctx, tmpPath)
}
