package session

import (
	"errors"
	"fmt"
	"image"
	"io"
	"strings"

	"github.com/ironsheep/label-reader/internal/capture"
	"github.com/ironsheep/label-reader/internal/imaging"
	"github.com/ironsheep/label-reader/internal/log"
	"github.com/ironsheep/label-reader/internal/sink"
	"github.com/ironsheep/label-reader/internal/token"
)

// FrameSource supplies sequential frames on demand. Read returns io.EOF
// when the source stops producing frames, which ends the session.
type FrameSource interface {
	Read() (image.Image, error)
	Close() error
}

// Console is the operator surface: preview rendering, diagnostic display,
// and trigger polling.
type Console interface {
	Preview(frame image.Image, region image.Rectangle) error
	ShowDiagnostic(img *image.Gray)
	Poll() capture.Trigger
	Close() error
}

// Recognizer turns a binarized image into raw text. An image with no
// detectable text yields an empty string, not an error.
type Recognizer interface {
	Recognize(img image.Image) (string, error)
}

// Session owns the frame source, the console, and the sinks for one run of
// the capture loop. All resources are released on every termination path.
type Session struct {
	source     FrameSource
	console    Console
	recognizer Recognizer
	sinks      []sink.Sink
}

// New assembles a session. The session takes ownership of the source, the
// console, and every sink; they are closed when Run returns. The recognizer
// stays with the caller, which typically closes it alongside the process.
func New(source FrameSource, console Console, recognizer Recognizer, sinks []sink.Sink) *Session {
	return &Session{
		source:     source,
		console:    console,
		recognizer: recognizer,
		sinks:      sinks,
	}
}

// Run drives the capture loop until the operator quits or the frame source
// is exhausted.
//
// Each iteration previews one frame with the capture region outlined, then
// polls for a trigger. The capture trigger runs one recognize-dispatch
// attempt; a failure inside that attempt (a degenerate crop, an engine
// fault) is logged and the loop continues. Frame-source exhaustion and the
// quit trigger both terminate cleanly with a nil error; only unexpected
// frame conversion faults surface as a non-nil error. Resources are
// released exactly once on every path.
func (s *Session) Run() error {
	defer s.shutdown()

	for {
		frame, err := s.source.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				log.Info("frame source exhausted, terminating session")
				return nil
			}
			return fmt.Errorf("failed to read frame: %w", err)
		}

		bounds := frame.Bounds()
		region, err := imaging.ComputeRegion(bounds.Dx(), bounds.Dy())
		if err != nil {
			return fmt.Errorf("frame geometry: %w", err)
		}

		if err := s.console.Preview(frame, region); err != nil {
			log.Warn("preview failed", "error", err)
		}

		switch s.console.Poll() {
		case capture.TriggerQuit:
			log.Info("quit requested, terminating session")
			return nil
		case capture.TriggerCapture:
			if err := s.capture(frame, region); err != nil {
				log.Warn("capture attempt failed", "error", err)
			}
		}
	}
}

// capture runs one recognize-dispatch attempt against the current frame.
// Any error aborts only this attempt; the loop returns to preview.
func (s *Session) capture(frame image.Image, region image.Rectangle) error {
	cropped := imaging.CropRegion(frame, region)

	binarized, err := imaging.Binarize(cropped)
	if err != nil {
		return err
	}

	raw, err := s.recognizer.Recognize(binarized)
	if err != nil {
		return fmt.Errorf("recognition: %w", err)
	}
	log.Info("recognizer raw output", "text", strings.TrimSpace(raw))

	word := token.Extract(raw)
	report := sink.Dispatch(word, s.sinks)
	if report.NoToken() {
		log.Info("no valid alphabetic word found")
	} else {
		for _, d := range report.Deliveries {
			log.Info("dispatched", "word", report.Word, "sink", d.Sink,
				"outcome", d.Outcome, "error", d.Error)
		}
	}

	s.console.ShowDiagnostic(binarized)
	return nil
}

// shutdown releases everything the session owns. Sink failures during
// close are logged, never raised; teardown always completes.
func (s *Session) shutdown() {
	for _, snk := range s.sinks {
		if err := snk.Close(); err != nil {
			log.Warn("failed to close sink", "sink", snk.Name(), "error", err)
		}
	}
	if err := s.source.Close(); err != nil {
		log.Warn("failed to close frame source", "error", err)
	}
	if err := s.console.Close(); err != nil {
		log.Warn("failed to close console", "error", err)
	}
	log.Info("session closed")
}
