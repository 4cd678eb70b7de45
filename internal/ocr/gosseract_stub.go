//go:build !ocr_cgo

package ocr

import "errors"

func newNativeEngine(Config) (Engine, error) {
	return nil, errors.New(`ocr engine "native" requires building with -tags ocr_cgo`)
}
