// Package config provides configuration for the label-reader binary.
//
// Every setting has a built-in default and can be overridden through a
// LABEL_READER_* environment variable. Variables may also be placed in a
// .env file next to the binary, which is loaded if present. The camera
// device index additionally accepts a single positional command-line
// argument, matching how the tool is launched on the target device.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/ironsheep/label-reader/internal/log"
	"github.com/ironsheep/label-reader/internal/sink"
)

// Built-in defaults for settings without a natural home elsewhere.
const (
	DefaultCameraIndex  = 0
	DefaultLanguage     = "eng"
	DefaultOverlayColor = "#00FF00"
)

// Config holds every runtime setting for a session.
type Config struct {
	// CameraIndex selects the video capture device.
	CameraIndex int

	// SerialEnabled and SpeechEnabled select the sink configuration.
	// Disabling both leaves a recognize-only session.
	SerialEnabled bool
	SpeechEnabled bool

	// SerialPort and BaudRate describe the downstream serial link.
	SerialPort string
	BaudRate   int

	// SpeechVoice and SpeechRate tune the speech engine.
	SpeechVoice string
	SpeechRate  int

	// Language is the recognition language code (Tesseract notation).
	Language string

	// OverlayColor is the capture-region outline color as "#RRGGBB".
	OverlayColor string

	// ShowDiagnostic controls the secondary window that shows the last
	// binarized capture.
	ShowDiagnostic bool

	// LogLevel is one of "debug", "info", "warn", "error".
	LogLevel string
}

// Load assembles the configuration from defaults, an optional .env file,
// and the environment. It never fails; malformed values fall back to their
// defaults with a warning once logging is up.
func Load() *Config {
	// Missing .env is the normal case.
	_ = godotenv.Load()

	return &Config{
		CameraIndex:    envInt("LABEL_READER_CAMERA", DefaultCameraIndex),
		SerialEnabled:  envBool("LABEL_READER_SERIAL", true),
		SpeechEnabled:  envBool("LABEL_READER_SPEECH", true),
		SerialPort:     envString("LABEL_READER_SERIAL_PORT", sink.DefaultSerialPort),
		BaudRate:       envInt("LABEL_READER_BAUD", sink.DefaultBaudRate),
		SpeechVoice:    envString("LABEL_READER_VOICE", sink.DefaultSpeechVoice),
		SpeechRate:     envInt("LABEL_READER_SPEECH_RATE", sink.DefaultSpeechRate),
		Language:       envString("LABEL_READER_LANG", DefaultLanguage),
		OverlayColor:   envString("LABEL_READER_OVERLAY", DefaultOverlayColor),
		ShowDiagnostic: envBool("LABEL_READER_DIAGNOSTIC", true),
		LogLevel:       envString("LABEL_READER_LOG_LEVEL", "info"),
	}
}

// ApplyArgs overlays positional command-line arguments onto the config.
// The only positional argument is the camera device index; a non-integer
// value is not fatal, it logs a warning and keeps the configured default.
func (c *Config) ApplyArgs(args []string) {
	if len(args) == 0 {
		return
	}
	index, err := strconv.Atoi(args[0])
	if err != nil {
		log.Warn("invalid camera index argument, using default",
			"argument", args[0], "default", c.CameraIndex)
		return
	}
	c.CameraIndex = index
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %s=%q is not an integer, using %d\n", key, v, fallback)
		return fallback
	}
	return n
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %s=%q is not a boolean, using %t\n", key, v, fallback)
		return fallback
	}
	return b
}
