package capture

import (
	"fmt"
	"image"
	"io"

	"gocv.io/x/gocv"

	"github.com/ironsheep/label-reader/internal/log"
)

// Capture resolution requested from the device. Low resolution keeps the
// loop responsive on single-board hardware and is plenty for one word.
const (
	frameWidth  = 640
	frameHeight = 480
)

// Camera is a frame source backed by a V4L2/OpenCV video capture device.
type Camera struct {
	device *gocv.VideoCapture
	mat    gocv.Mat
}

// OpenCamera opens the capture device at the given index and configures it
// for the working resolution. An unopenable device is a fatal configuration
// error; the caller should report it and exit before the loop starts.
func OpenCamera(deviceIndex int) (*Camera, error) {
	device, err := gocv.OpenVideoCapture(deviceIndex)
	if err != nil {
		return nil, fmt.Errorf("failed to open camera at index %d: %w", deviceIndex, err)
	}
	if !device.IsOpened() {
		device.Close()
		return nil, fmt.Errorf("camera at index %d did not open", deviceIndex)
	}

	device.Set(gocv.VideoCaptureFrameWidth, frameWidth)
	device.Set(gocv.VideoCaptureFrameHeight, frameHeight)
	log.Info("camera initialized", "index", deviceIndex)

	return &Camera{device: device, mat: gocv.NewMat()}, nil
}

// Read pulls the next frame from the device.
//
// A device that stops producing frames (unplugged, stream ended) returns
// io.EOF; the session treats that as fatal and terminates cleanly. The
// returned frame is owned by the caller and valid after the next Read.
func (c *Camera) Read() (image.Image, error) {
	if ok := c.device.Read(&c.mat); !ok || c.mat.Empty() {
		return nil, io.EOF
	}

	frame, err := c.mat.ToImage()
	if err != nil {
		return nil, fmt.Errorf("failed to convert frame: %w", err)
	}
	return frame, nil
}

// Close releases the capture device.
func (c *Camera) Close() error {
	c.mat.Close()
	if err := c.device.Close(); err != nil {
		return fmt.Errorf("failed to release camera: %w", err)
	}
	log.Info("camera released")
	return nil
}
