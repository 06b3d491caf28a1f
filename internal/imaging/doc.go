// Package imaging provides the pure image stages of the capture pipeline:
// the capture-region geometry and the preprocessing that turns a cropped
// region into a binarized image for the recognizer.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with (0,0) at the top-left corner,
// X increasing rightward and Y increasing downward. Regions follow the
// standard image.Rectangle convention: Min is inclusive, Max is exclusive.
//
// # Capture Region
//
// ComputeRegion derives a centered band (80% of frame width, 30% of frame
// height) from frame dimensions alone. It is deterministic and has no
// failure modes for positive input; the result is always fully contained
// in the frame.
//
// # Preprocessing
//
// Binarize performs grayscale reduction, Otsu adaptive thresholding, and
// inverted classification so that dark printed text becomes white
// foreground on black, matching the polarity the recognition engine
// expects. The only error condition is a degenerate zero-area input,
// reported as ErrInvalidRegion.
package imaging
