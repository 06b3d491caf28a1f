package ocr

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/otiai10/gosseract/v2"
)

// Tesseract is a recognizer backed by a single long-lived gosseract client.
//
// The client is configured once at startup for single-text-line
// interpretation: the engine treats the whole image as one line, which
// favors short labels over paragraphs. The session loop is single-threaded,
// so the client needs no locking.
type Tesseract struct {
	client *gosseract.Client
}

// New creates a recognizer for the given Tesseract language code
// (e.g. "eng").
//
// A missing or misconfigured engine is a fatal configuration error surfaced
// here, once, rather than on every capture. The returned recognizer must be
// closed when the session ends.
func New(language string) (*Tesseract, error) {
	client := gosseract.NewClient()

	if version := client.Version(); version == "" {
		client.Close()
		return nil, fmt.Errorf("tesseract engine not available")
	}

	if err := client.SetLanguage(language); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to set language %q: %w", language, err)
	}

	if err := client.SetPageSegMode(gosseract.PSM_SINGLE_LINE); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to set page segmentation mode: %w", err)
	}

	return &Tesseract{client: client}, nil
}

// Recognize runs the engine against a preprocessed image and returns the
// raw recognized text.
//
// The call is synchronous and bounded by image size. An image with no
// detectable text yields an empty string, not an error; errors indicate an
// engine-level fault for this capture only.
func (t *Tesseract) Recognize(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("failed to encode image: %w", err)
	}

	if err := t.client.SetImageFromBytes(buf.Bytes()); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := t.client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}

	return text, nil
}

// Version reports the engine version, for startup logging.
func (t *Tesseract) Version() string {
	return t.client.Version()
}

// Close releases the engine client.
func (t *Tesseract) Close() error {
	return t.client.Close()
}
