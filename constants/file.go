package constants

import "strings"

// Format identifies the document family a report file belongs to.
const (
	PDF   = "PDF"
	IMAGE = "IMAGE"
)

// AllowedExtensions holds the file extensions accepted for report uploads.
var AllowedExtensions = map[string]struct{}{
	"pdf":  {},
	"png":  {},
	"jpg":  {},
	"jpeg": {},
	"gif":  {},
}

// MaxUploadSizeDefault is the default upload cap in bytes (10 MiB).
const MaxUploadSizeDefault = 10 << 20

// MinReportTextLength is the minimum number of characters of recovered text
// for a document to count as a readable report.
const MinReportTextLength = 10

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToFormat maps a (normalized or raw) extension to a document format.
// Returns "" for unsupported extensions.
func MapExtToFormat(ext string) string {
	switch NormalizeExt(ext) {
	case "pdf":
		return PDF
	case "png", "jpg", "jpeg", "gif":
		return IMAGE
	default:
		return ""
	}
}
