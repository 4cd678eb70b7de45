//go:build ocr_cgo

package ocr

import (
	"context"
	"fmt"

	"github.com/otiai10/gosseract/v2"

	"github.com/medalizer/blood-report-analyzer/internal/common"
)

// nativeEngine recognizes text in-process through the gosseract bindings.
// Built only with the ocr_cgo tag; the default build shells out instead.
type nativeEngine struct {
	cfg Config
}

func newNativeEngine(cfg Config) (Engine, error) {
	return nativeEngine{cfg: cfg}, nil
}

func (n nativeEngine) Recognize(ctx context.Context, imagePath string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	client := gosseract.NewClient()
	defer client.Close()

	if n.cfg.TessdataDir != "" {
		if err := client.SetTessdataPrefix(n.cfg.TessdataDir); err != nil {
			return "", fmt.Errorf("%w: set tessdata path: %v", common.ErrExtraction, err)
		}
	}
	if err := client.SetLanguage(n.cfg.TesseractLang); err != nil {
		return "", fmt.Errorf("%w: set language: %v", common.ErrExtraction, err)
	}
	if err := client.SetPageSegMode(gosseract.PSM_SINGLE_BLOCK); err != nil {
		return "", fmt.Errorf("%w: set page seg mode: %v", common.ErrExtraction, err)
	}
	if err := client.SetImage(imagePath); err != nil {
		return "", fmt.Errorf("%w: set image: %v", common.ErrExtraction, err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrExtraction, err)
	}
	return text, nil
}
