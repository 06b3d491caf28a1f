package capture

import (
	"fmt"
	"image"
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
	"gocv.io/x/gocv"

	"github.com/ironsheep/label-reader/internal/log"
)

// Trigger is a discrete operator input event.
type Trigger int

const (
	// TriggerNone means no input is pending.
	TriggerNone Trigger = iota

	// TriggerCapture requests recognition of the current frame.
	TriggerCapture

	// TriggerQuit requests session termination.
	TriggerQuit
)

// Key bindings. Space captures, q quits.
const (
	keySpace = 32
	keyQuit  = 'q'
)

const (
	previewTitle    = "Live OCR Feed - Press SPACE"
	diagnosticTitle = "Analyzed ROI"

	overlayThickness = 2

	// pollInterval is the WaitKey timeout in milliseconds. It bounds how
	// long each loop iteration blocks waiting for operator input.
	pollInterval = 1
)

// Console is the operator interface: a live preview window with the capture
// region outlined, an optional diagnostic window showing the last binarized
// capture, and the keyboard triggers.
type Console struct {
	preview    *gocv.Window
	diagnostic *gocv.Window
	overlay    color.RGBA
}

// NewConsole opens the preview surface. overlayHex is the outline color as
// "#RRGGBB"; an unparsable value falls back to green with a warning.
// When showDiagnostic is true a secondary window is opened for the last
// binarized capture.
func NewConsole(overlayHex string, showDiagnostic bool) *Console {
	c := &Console{
		preview: gocv.NewWindow(previewTitle),
		overlay: parseOverlayColor(overlayHex),
	}
	if showDiagnostic {
		c.diagnostic = gocv.NewWindow(diagnosticTitle)
	}
	return c
}

func parseOverlayColor(hex string) color.RGBA {
	parsed, err := colorful.Hex(hex)
	if err != nil {
		log.Warn("invalid overlay color, using green", "value", hex)
		return color.RGBA{G: 255}
	}
	r, g, b := parsed.RGB255()
	return color.RGBA{R: r, G: g, B: b}
}

// Preview renders the frame with the capture region outlined.
func (c *Console) Preview(frame image.Image, region image.Rectangle) error {
	rgba, err := gocv.ImageToMatRGBA(frame)
	if err != nil {
		return fmt.Errorf("failed to convert frame for display: %w", err)
	}
	defer rgba.Close()

	bgr := gocv.NewMat()
	defer bgr.Close()
	gocv.CvtColor(rgba, &bgr, gocv.ColorRGBAToBGR)

	gocv.Rectangle(&bgr, region, c.overlay, overlayThickness)
	c.preview.IMShow(bgr)
	return nil
}

// ShowDiagnostic displays the last binarized capture. It stays visible
// until the next capture replaces it. No-op when the diagnostic window is
// disabled.
func (c *Console) ShowDiagnostic(img *image.Gray) {
	if c.diagnostic == nil {
		return
	}
	mat, err := gocv.ImageGrayToMatGray(img)
	if err != nil {
		log.Warn("could not display diagnostic image", "error", err)
		return
	}
	defer mat.Close()
	c.diagnostic.IMShow(mat)
}

// Poll checks for a pending operator trigger, returning promptly if none
// is. It also services the window event loop; without it the preview
// freezes.
func (c *Console) Poll() Trigger {
	switch c.preview.WaitKey(pollInterval) {
	case keySpace:
		return TriggerCapture
	case keyQuit:
		return TriggerQuit
	}
	return TriggerNone
}

// Close destroys the preview surfaces.
func (c *Console) Close() error {
	if c.diagnostic != nil {
		if err := c.diagnostic.Close(); err != nil {
			return err
		}
	}
	return c.preview.Close()
}
