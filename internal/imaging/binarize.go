package imaging

import (
	"errors"
	"image"

	"github.com/anthonynsimon/bild/effect"
	"github.com/anthonynsimon/bild/segment"
	"github.com/disintegration/imaging"
)

// ErrInvalidRegion is returned when a crop has no pixels to process.
// It aborts the current capture attempt; the session survives it.
var ErrInvalidRegion = errors.New("invalid region: image has zero area")

// Binarize converts a cropped region to a two-level image suited to OCR.
//
// The pipeline is:
//  1. Reduce to a single luminance channel.
//  2. Choose a global threshold with Otsu's method, which minimizes
//     intra-class variance over the luminance histogram. This adapts to
//     ambient lighting without manual tuning.
//  3. Classify pixels on the inverted side of the threshold as foreground,
//     so dark-on-light source text becomes light-on-dark output, matching
//     the text-polarity assumption of the recognition engine.
//
// The output has the same pixel dimensions as the input. Returns
// ErrInvalidRegion for a zero-area input.
func Binarize(img image.Image) (*image.Gray, error) {
	bounds := img.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return nil, ErrInvalidRegion
	}

	gray := imaging.Grayscale(img)
	threshold := otsuThreshold(gray)

	// Inverting first and thresholding at the mirrored level is equivalent
	// to an inverted binary threshold: luminance <= threshold -> white.
	inverted := effect.Invert(gray)
	return segment.Threshold(inverted, 255-threshold), nil
}

// otsuThreshold picks the luminance cutoff that maximizes between-class
// variance over the image histogram. Ties resolve to the highest cutoff.
func otsuThreshold(img image.Image) uint8 {
	var hist [256]int
	bounds := img.Bounds()
	total := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, _, _, _ := img.At(x, y).RGBA()
			hist[r>>8]++
			total++
		}
	}

	var sum float64
	for level, count := range hist {
		sum += float64(level) * float64(count)
	}

	var (
		best      float64
		threshold uint8
		sumBack   float64
		weightB   int
	)
	for t := 0; t < 256; t++ {
		weightB += hist[t]
		if weightB == 0 {
			continue
		}
		weightF := total - weightB
		if weightF == 0 {
			break
		}
		sumBack += float64(t) * float64(hist[t])

		meanB := sumBack / float64(weightB)
		meanF := (sum - sumBack) / float64(weightF)
		diff := meanB - meanF
		variance := float64(weightB) * float64(weightF) * diff * diff

		if variance >= best {
			best = variance
			threshold = uint8(t)
		}
	}

	return threshold
}
