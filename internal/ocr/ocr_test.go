package ocr

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"path/filepath"
	"strings"
	"testing"

	"github.com/disintegration/imaging"

	"github.com/medalizer/blood-report-analyzer/internal/common"
)

func fillImage(w, h int, c color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// stubRunner emulates pdftoppm by writing blank page images, and fails for
// anything else.
type stubRunner struct {
	pages int
}

func (s stubRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	if !strings.Contains(name, "pdftoppm") {
		return nil, nil, fmt.Errorf("unexpected command %q", name)
	}
	prefix := args[len(args)-1]
	for i := 1; i <= s.pages; i++ {
		path := fmt.Sprintf("%s-%02d.png", prefix, i)
		if err := imaging.Save(fillImage(8, 8, color.White), path); err != nil {
			return nil, nil, err
		}
	}
	return nil, nil, nil
}

// stubEngine returns canned text per page index, or an error.
type stubEngine struct {
	texts []string
	fail  map[int]bool
	calls int
}

func (s *stubEngine) Recognize(context.Context, string) (string, error) {
	i := s.calls
	s.calls++
	if s.fail[i] {
		return "", fmt.Errorf("%w: recognition failed", common.ErrExtraction)
	}
	if i < len(s.texts) {
		return s.texts[i], nil
	}
	return "", nil
}

func newStubExtractor(t *testing.T, pages int, engine Engine) *Extractor {
	t.Helper()
	e, err := NewExtractor(Config{}, nil)
	if err != nil {
		t.Fatalf("NewExtractor: %v", err)
	}
	e.runner = stubRunner{pages: pages}
	e.engine = engine
	return e
}

func TestExtractUnsupportedExtension(t *testing.T) {
	e, err := NewExtractor(Config{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"report.docx", "report.txt", "report"} {
		_, err := e.Extract(context.Background(), name)
		if !errors.Is(err, common.ErrUnsupportedFormat) {
			t.Errorf("Extract(%q): err = %v, want ErrUnsupportedFormat", name, err)
		}
	}
}

func TestNewExtractorRejectsUnknownEngine(t *testing.T) {
	if _, err := NewExtractor(Config{Engine: "quantum"}, nil); err == nil {
		t.Error("expected error for unknown engine")
	}
}

func TestExtractImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scan.png")
	if err := imaging.Save(fillImage(32, 32, color.White), path); err != nil {
		t.Fatal(err)
	}

	eng := &stubEngine{texts: []string{"Hemoglobin: 9.5  g/dL \r\n"}}
	e := newStubExtractor(t, 0, eng)

	res, err := e.Extract(context.Background(), path)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if res.Pages != 1 || res.Method != "image-ocr" {
		t.Errorf("result = %+v, want 1 page image-ocr", res)
	}
	if res.Text != "Hemoglobin: 9.5 g/dL" {
		t.Errorf("text = %q, want normalized line", res.Text)
	}
}

func TestExtractImageBlankPage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blank.png")
	if err := imaging.Save(fillImage(32, 32, color.White), path); err != nil {
		t.Fatal(err)
	}

	e := newStubExtractor(t, 0, &stubEngine{texts: []string{"  \n \n"}})
	res, err := e.Extract(context.Background(), path)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if res.Text != "" {
		t.Errorf("blank page produced text %q", res.Text)
	}
}

func TestExtractPDFConcatenatesPagesInOrder(t *testing.T) {
	eng := &stubEngine{texts: []string{"Hemoglobin: 9.5 g/dL", "Glucose: 180 mg/dL"}}
	e := newStubExtractor(t, 2, eng)

	res, err := e.Extract(context.Background(), filepath.Join(t.TempDir(), "report.pdf"))
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if res.Pages != 2 {
		t.Errorf("pages = %d, want 2", res.Pages)
	}
	p1 := strings.Index(res.Text, "--- Page 1 ---")
	p2 := strings.Index(res.Text, "--- Page 2 ---")
	if p1 == -1 || p2 == -1 || p1 > p2 {
		t.Fatalf("page markers wrong or out of order:\n%s", res.Text)
	}
	if !strings.Contains(res.Text[p1:p2], "Hemoglobin") || !strings.Contains(res.Text[p2:], "Glucose") {
		t.Errorf("page text not attached to its marker:\n%s", res.Text)
	}
}

func TestExtractPDFPageFailureAbortsDocument(t *testing.T) {
	eng := &stubEngine{texts: []string{"Hemoglobin: 9.5 g/dL"}, fail: map[int]bool{1: true}}
	e := newStubExtractor(t, 3, eng)

	_, err := e.Extract(context.Background(), filepath.Join(t.TempDir(), "report.pdf"))
	if !errors.Is(err, common.ErrExtraction) {
		t.Fatalf("err = %v, want ErrExtraction", err)
	}
	if !strings.Contains(err.Error(), "page 2") {
		t.Errorf("error should name the failing page: %v", err)
	}
}

func TestExtractPDFNoPagesRendered(t *testing.T) {
	e := newStubExtractor(t, 0, &stubEngine{})
	_, err := e.Extract(context.Background(), filepath.Join(t.TempDir(), "report.pdf"))
	if !errors.Is(err, common.ErrExtraction) {
		t.Errorf("err = %v, want ErrExtraction", err)
	}
}

func TestExtractPDFHonorsMaxPages(t *testing.T) {
	e, err := NewExtractor(Config{MaxPages: 1}, nil)
	if err != nil {
		t.Fatal(err)
	}
	eng := &stubEngine{texts: []string{"Hemoglobin: 9.5 g/dL", "Glucose: 180 mg/dL"}}
	e.runner = stubRunner{pages: 3}
	e.engine = eng

	res, err := e.Extract(context.Background(), filepath.Join(t.TempDir(), "report.pdf"))
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if res.Pages != 1 || eng.calls != 1 {
		t.Errorf("pages = %d, engine calls = %d, want 1 and 1", res.Pages, eng.calls)
	}
}
