package ocr

import (
	"image"

	"github.com/anthonynsimon/bild/effect"
	"github.com/anthonynsimon/bild/segment"
)

// Preprocess runs the fixed image-cleanup sequence applied to every page
// before recognition: grayscale, Otsu binarization, a small morphological
// closing over the dark strokes, then a median blur. The order is
// load-bearing: recognition accuracy degrades sharply on low-contrast or
// speckled scans unless cleanup happens exactly this way.
func Preprocess(img image.Image) image.Image {
	gray := effect.Grayscale(img)
	bin := segment.Threshold(gray, otsuLevel(gray))
	// closing over the dark strokes: erode brightens last, dilate first in
	// luminance terms bridges broken glyph strokes
	closed := effect.Dilate(effect.Erode(bin, 1), 1)
	return effect.Median(closed, 3)
}

// otsuLevel picks the global threshold maximizing inter-class variance over
// the luminance histogram.
func otsuLevel(gray *image.RGBA) uint8 {
	var hist [256]int
	bounds := gray.Bounds()
	total := bounds.Dx() * bounds.Dy()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		i := gray.PixOffset(bounds.Min.X, y)
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			// grayscale image: R == G == B
			hist[gray.Pix[i]]++
			i += 4
		}
	}
	if total == 0 {
		return 128
	}

	var sum float64
	for v, n := range hist {
		sum += float64(v) * float64(n)
	}

	var sumBack, weightBack float64
	var best float64
	var level uint8
	for v := 0; v < 256; v++ {
		weightBack += float64(hist[v])
		if weightBack == 0 {
			continue
		}
		weightFore := float64(total) - weightBack
		if weightFore == 0 {
			break
		}
		sumBack += float64(v) * float64(hist[v])
		meanBack := sumBack / weightBack
		meanFore := (sum - sumBack) / weightFore
		between := weightBack * weightFore * (meanBack - meanFore) * (meanBack - meanFore)
		if between > best {
			best = between
			// midway between the class means, so the cut stays clear of
			// both modes
			level = uint8((meanBack + meanFore) / 2)
		}
	}
	return level
}
