package main

import (
	"fmt"
	"os"

	"github.com/ironsheep/label-reader/internal/capture"
	"github.com/ironsheep/label-reader/internal/config"
	"github.com/ironsheep/label-reader/internal/log"
	"github.com/ironsheep/label-reader/internal/ocr"
	"github.com/ironsheep/label-reader/internal/session"
	"github.com/ironsheep/label-reader/internal/sink"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("label-reader %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("label-reader - camera OCR word reader")
			fmt.Println()
			fmt.Println("Usage: label-reader [camera-index]")
			fmt.Println()
			fmt.Println("  camera-index     Video device index (default 0)")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  LABEL_READER_SERIAL=false       Disable the serial sink")
			fmt.Println("  LABEL_READER_SPEECH=false       Disable the speech sink")
			fmt.Println("  LABEL_READER_SERIAL_PORT=...    Serial device (default /dev/ttyUSB0)")
			fmt.Println("  LABEL_READER_BAUD=...           Baud rate (default 115200)")
			fmt.Println("  LABEL_READER_LANG=...           OCR language (default eng)")
			fmt.Println("  LABEL_READER_DIAGNOSTIC=false   Hide the analyzed-ROI window")
			fmt.Println("  LABEL_READER_LOG_LEVEL=debug    Enable debug logging")
			fmt.Println()
			fmt.Println("A .env file next to the binary is loaded if present.")
			return
		}
	}

	cfg := config.Load()
	log.Init(cfg.LogLevel)
	cfg.ApplyArgs(os.Args[1:])

	if err := run(cfg); err != nil {
		log.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	recognizer, err := ocr.New(cfg.Language)
	if err != nil {
		return fmt.Errorf("recognition engine: %w", err)
	}
	defer recognizer.Close()
	log.Info("recognition engine ready", "version", recognizer.Version(), "language", cfg.Language)

	camera, err := capture.OpenCamera(cfg.CameraIndex)
	if err != nil {
		return err
	}

	var sinks []sink.Sink
	if cfg.SerialEnabled {
		sinks = append(sinks, sink.NewSerial(cfg.SerialPort, cfg.BaudRate))
	}
	if cfg.SpeechEnabled {
		sinks = append(sinks, sink.NewSpeech(cfg.SpeechVoice, cfg.SpeechRate))
	}

	console := capture.NewConsole(cfg.OverlayColor, cfg.ShowDiagnostic)

	printInstructions()

	// The session owns camera, console, and sinks from here; it releases
	// them on every exit path.
	return session.New(camera, console, recognizer, sinks).Run()
}

func printInstructions() {
	fmt.Println()
	fmt.Println("--- INSTRUCTIONS ---")
	fmt.Println("1. A window with the camera feed will open.")
	fmt.Println("2. Position the text you want to read inside the rectangle.")
	fmt.Println("3. Press [SPACEBAR] to capture, recognize, speak, and send the word.")
	fmt.Println("4. Press [q] to quit.")
	fmt.Println("--------------------")
	fmt.Println()
}
