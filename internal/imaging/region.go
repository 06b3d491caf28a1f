package imaging

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Region fractions of the parent frame. The capture region is a wide,
// short band centered in the frame, sized for a single printed word.
const (
	regionWidthFraction  = 0.8
	regionHeightFraction = 0.3
)

// ComputeRegion returns the capture region for a frame of the given size.
//
// The region is 80% of the frame width and 30% of the frame height,
// centered. Both offsets and dimensions are computed with floor division,
// so the region is always fully contained in (0,0)-(width,height) for any
// positive frame size.
//
// Parameters:
//   - width: Frame width in pixels. Must be > 0.
//   - height: Frame height in pixels. Must be > 0.
//
// Returns:
//   - image.Rectangle: The capture region in frame coordinates.
//   - error: Non-nil if either dimension is not strictly positive.
func ComputeRegion(width, height int) (image.Rectangle, error) {
	if width <= 0 || height <= 0 {
		return image.Rectangle{}, fmt.Errorf("invalid frame size %dx%d: dimensions must be positive", width, height)
	}

	rw := int(float64(width) * regionWidthFraction)
	rh := int(float64(height) * regionHeightFraction)
	x := (width - rw) / 2
	y := (height - rh) / 2

	return image.Rect(x, y, x+rw, y+rh), nil
}

// CropRegion extracts a rectangular region from a frame.
//
// The returned image has the region's dimensions with its origin at (0,0).
// The region is clipped to the frame bounds; callers that pass a region
// produced by ComputeRegion never hit the clipping path.
func CropRegion(frame image.Image, region image.Rectangle) image.Image {
	return imaging.Crop(frame, region)
}
