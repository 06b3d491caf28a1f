// Package ocr wraps the Tesseract OCR engine (via gosseract/v2) as the
// recognizer stage of the capture pipeline.
//
// # Prerequisites
//
// Tesseract must be installed on the system:
//   - Ubuntu/Debian/Raspberry Pi OS: apt-get install tesseract-ocr
//   - macOS: brew install tesseract
//
// Language data files are required for each language:
//   - Ubuntu/Debian: apt-get install tesseract-ocr-eng (for English)
//   - Other languages: tesseract-ocr-<lang> packages
//
// # Lifecycle
//
// One client serves the whole session. New configures it for single-line
// page segmentation and fails fast when the engine is missing, so a broken
// installation is reported once at startup instead of on every capture.
// Recognize is synchronous; an image without detectable text yields an
// empty string rather than an error.
package ocr
