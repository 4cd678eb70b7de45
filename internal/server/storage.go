package server

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/medalizer/blood-report-analyzer/constants"
)

// ValidateUpload rejects an upload before any file is written: the extension
// must be on the allow-list and the payload within the configured cap.
func ValidateUpload(filename string, size int64, maxSize int64) error {
	ext := constants.NormalizeExt(filepath.Ext(filename))
	if _, ok := constants.AllowedExtensions[ext]; !ok {
		return fmt.Errorf("file type %q not allowed", ext)
	}
	if size == 0 {
		return fmt.Errorf("file is empty")
	}
	if maxSize > 0 && size > maxSize {
		return fmt.Errorf("file exceeds maximum size of %d bytes", maxSize)
	}
	return nil
}

// StoreUpload writes an uploaded document under dir/<userID>/ with a
// collision-proof name and returns the stored path.
func StoreUpload(dir string, userID uuid.UUID, filename string, content []byte) (string, error) {
	userDir := filepath.Join(dir, userID.String())
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		return "", fmt.Errorf("creating upload dir: %w", err)
	}

	base := filepath.Base(strings.TrimSpace(filename))
	path := filepath.Join(userDir, uuid.NewString()+"_"+base)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", fmt.Errorf("writing upload: %w", err)
	}
	return path, nil
}
