package ocr

import (
	"image"
	"image/color"
	"testing"

	"github.com/anthonynsimon/bild/effect"
)

// halfToneImage returns an image whose left half is dark and right half
// bright, a crude stand-in for ink on paper.
func halfToneImage(w, h int, dark, bright uint8) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := bright
			if x < w/2 {
				v = dark
			}
			img.Set(x, y, color.NRGBA{v, v, v, 255})
		}
	}
	return img
}

func grayAt(img image.Image, x, y int) uint8 {
	r, _, _, _ := img.At(x, y).RGBA()
	return uint8(r >> 8)
}

func TestOtsuLevelBimodal(t *testing.T) {
	gray := effect.Grayscale(halfToneImage(64, 64, 50, 200))
	level := otsuLevel(gray)
	if level < 50 || level >= 200 {
		t.Errorf("otsuLevel = %d, want a level between the two modes", level)
	}
}

func TestPreprocessBinarizesBimodalScan(t *testing.T) {
	out := Preprocess(halfToneImage(64, 64, 40, 220))

	// sample well inside each half, away from the boundary and borders
	if got := grayAt(out, 8, 32); got != 0 {
		t.Errorf("ink region pixel = %d, want 0", got)
	}
	if got := grayAt(out, 56, 32); got != 255 {
		t.Errorf("background pixel = %d, want 255", got)
	}
}

func TestPreprocessBlankPageStaysBlank(t *testing.T) {
	out := Preprocess(halfToneImage(32, 32, 255, 255))
	for _, p := range []image.Point{{4, 4}, {16, 16}, {28, 28}} {
		if got := grayAt(out, p.X, p.Y); got != 255 {
			t.Errorf("pixel %v = %d, want 255 on a blank page", p, got)
		}
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"crlf and tabs", "Hb:\t9.5\r\ng/dL", "Hb: 9.5\ng/dL"},
		{"multi space", "Glucose:   180  mg/dL", "Glucose: 180 mg/dL"},
		{"table rules", "Hb: 9.5\n-----\nGlucose: 180", "Hb: 9.5\n\nGlucose: 180"},
		{"blank line runs", "a\n\n\n\n\nb", "a\n\nb"},
		{"digits untouched", "t3: 0.95 ng/dL", "t3: 0.95 ng/dL"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
