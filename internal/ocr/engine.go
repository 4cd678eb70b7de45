package ocr

import (
	"context"
	"fmt"
	"strconv"

	"github.com/medalizer/blood-report-analyzer/internal/common"
)

// Engine turns one (already preprocessed) page image into raw text.
type Engine interface {
	Recognize(ctx context.Context, imagePath string) (string, error)
}

// execEngine shells out to the tesseract binary.
type execEngine struct {
	cfg    Config
	runner Runner
}

func (e execEngine) Recognize(ctx context.Context, imagePath string) (string, error) {
	// tesseract <file> stdout -l <lang> --psm 6 --oem 3
	args := []string{imagePath, "stdout", "-l", e.cfg.TesseractLang,
		"--psm", strconv.Itoa(e.cfg.PSM),
		"--oem", strconv.Itoa(e.cfg.OEM),
	}
	if e.cfg.TessdataDir != "" {
		args = append(args, "--tessdata-dir", e.cfg.TessdataDir)
	}

	out, errb, err := e.runner.Run(ctx, e.cfg.Tesseract, args...)
	if err != nil {
		return "", fmt.Errorf("%w: tesseract: %v: %s", common.ErrExtraction, err, truncate(string(errb), 512))
	}
	return string(out), nil
}
