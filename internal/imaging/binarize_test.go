package imaging

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

// createLabelImage builds a light background with a dark block standing in
// for printed text.
func createLabelImage(width, height int, background, ink uint8, inkRect image.Rectangle) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := background
			if image.Pt(x, y).In(inkRect) {
				v = ink
			}
			img.Set(x, y, color.RGBA{R: v, G: v, B: v, A: 255})
		}
	}
	return img
}

func TestBinarize_InvertsPolarity(t *testing.T) {
	// Dark-on-light input must come out light-on-dark.
	inkRect := image.Rect(10, 5, 40, 15)
	img := createLabelImage(60, 20, 200, 30, inkRect)

	got, err := Binarize(img)
	if err != nil {
		t.Fatalf("Binarize failed: %v", err)
	}

	if got.Bounds().Dx() != 60 || got.Bounds().Dy() != 20 {
		t.Errorf("dimensions: got %dx%d, want 60x20", got.Bounds().Dx(), got.Bounds().Dy())
	}

	if v := got.GrayAt(20, 10).Y; v != 255 {
		t.Errorf("ink pixel: got %d, want 255 (foreground)", v)
	}
	if v := got.GrayAt(2, 2).Y; v != 0 {
		t.Errorf("background pixel: got %d, want 0", v)
	}
}

func TestBinarize_TwoLevelsOnly(t *testing.T) {
	img := createLabelImage(60, 20, 220, 40, image.Rect(5, 5, 30, 12))

	got, err := Binarize(img)
	if err != nil {
		t.Fatalf("Binarize failed: %v", err)
	}

	bounds := got.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if v := got.GrayAt(x, y).Y; v != 0 && v != 255 {
				t.Fatalf("pixel (%d,%d): got %d, want 0 or 255", x, y, v)
			}
		}
	}
}

func TestBinarize_AdaptsToLighting(t *testing.T) {
	// The same label under different ambient light must binarize the same
	// way; that is the point of choosing the threshold per image.
	tests := []struct {
		name            string
		background, ink uint8
	}{
		{"bright", 240, 60},
		{"dim", 120, 20},
		{"low contrast", 160, 110},
	}

	inkRect := image.Rect(10, 5, 40, 15)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := createLabelImage(60, 20, tt.background, tt.ink, inkRect)

			got, err := Binarize(img)
			if err != nil {
				t.Fatalf("Binarize failed: %v", err)
			}

			if v := got.GrayAt(20, 10).Y; v != 255 {
				t.Errorf("ink pixel: got %d, want 255", v)
			}
			if v := got.GrayAt(2, 2).Y; v != 0 {
				t.Errorf("background pixel: got %d, want 0", v)
			}
		})
	}
}

func TestBinarize_ZeroArea(t *testing.T) {
	tests := []struct {
		name string
		img  image.Image
	}{
		{"empty", image.NewRGBA(image.Rect(0, 0, 0, 0))},
		{"zero width", image.NewRGBA(image.Rect(0, 0, 0, 10))},
		{"zero height", image.NewRGBA(image.Rect(0, 0, 10, 0))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Binarize(tt.img)
			if err == nil {
				t.Fatal("Binarize should fail for zero-area input")
			}
			if !errors.Is(err, ErrInvalidRegion) {
				t.Errorf("error: got %v, want ErrInvalidRegion", err)
			}
		})
	}
}

func TestOtsuThreshold_Bimodal(t *testing.T) {
	// A clean two-level image must threshold between its two levels.
	img := createLabelImage(40, 40, 200, 30, image.Rect(0, 0, 40, 20))

	gray := image.NewGray(img.Bounds())
	for y := 0; y < 40; y++ {
		for x := 0; x < 40; x++ {
			r, _, _, _ := img.At(x, y).RGBA()
			gray.SetGray(x, y, color.Gray{Y: uint8(r >> 8)})
		}
	}

	threshold := otsuThreshold(gray)
	if threshold < 30 || threshold >= 200 {
		t.Errorf("threshold: got %d, want in [30, 200)", threshold)
	}
}
