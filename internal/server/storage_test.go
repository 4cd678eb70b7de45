package server

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestValidateUpload(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		size     int64
		max      int64
		wantErr  bool
	}{
		{"pdf ok", "report.pdf", 1024, 1 << 20, false},
		{"png ok", "scan.PNG", 1024, 1 << 20, false},
		{"jpeg ok", "scan.jpeg", 1024, 1 << 20, false},
		{"docx rejected", "report.docx", 1024, 1 << 20, true},
		{"no extension", "report", 1024, 1 << 20, true},
		{"empty file", "report.pdf", 0, 1 << 20, true},
		{"too large", "report.pdf", 2 << 20, 1 << 20, true},
		{"at the cap", "report.pdf", 1 << 20, 1 << 20, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUpload(tt.filename, tt.size, tt.max)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateUpload(%q, %d, %d) err = %v, wantErr %v",
					tt.filename, tt.size, tt.max, err, tt.wantErr)
			}
		})
	}
}

func TestStoreUpload(t *testing.T) {
	dir := t.TempDir()
	userID := uuid.New()
	content := []byte("%PDF-1.4 fake")

	path, err := StoreUpload(dir, userID, "report.pdf", content)
	if err != nil {
		t.Fatalf("StoreUpload: %v", err)
	}
	if !strings.HasPrefix(path, filepath.Join(dir, userID.String())) {
		t.Errorf("path %q not under the user's directory", path)
	}
	if !strings.HasSuffix(path, "_report.pdf") {
		t.Errorf("path %q should keep the original basename", path)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading stored file: %v", err)
	}
	if string(got) != string(content) {
		t.Errorf("stored content mismatch")
	}

	// same filename twice must not collide
	other, err := StoreUpload(dir, userID, "report.pdf", content)
	if err != nil {
		t.Fatalf("StoreUpload (second): %v", err)
	}
	if other == path {
		t.Error("two uploads of the same filename collided")
	}
}

func TestStoreUploadStripsDirectoryComponents(t *testing.T) {
	dir := t.TempDir()
	path, err := StoreUpload(dir, uuid.New(), "../../etc/passwd.png", []byte("x"))
	if err != nil {
		t.Fatalf("StoreUpload: %v", err)
	}
	rel, err := filepath.Rel(dir, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		t.Errorf("stored path %q escaped the upload dir", path)
	}
}
