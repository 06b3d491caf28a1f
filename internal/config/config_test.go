package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.CameraIndex != DefaultCameraIndex {
		t.Errorf("CameraIndex: got %d, want %d", cfg.CameraIndex, DefaultCameraIndex)
	}
	if !cfg.SerialEnabled || !cfg.SpeechEnabled {
		t.Error("both sinks should be enabled by default")
	}
	if cfg.Language != DefaultLanguage {
		t.Errorf("Language: got %q, want %q", cfg.Language, DefaultLanguage)
	}
	if cfg.OverlayColor != DefaultOverlayColor {
		t.Errorf("OverlayColor: got %q, want %q", cfg.OverlayColor, DefaultOverlayColor)
	}
	if !cfg.ShowDiagnostic {
		t.Error("diagnostic window should be enabled by default")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("LABEL_READER_CAMERA", "2")
	t.Setenv("LABEL_READER_SERIAL", "false")
	t.Setenv("LABEL_READER_SERIAL_PORT", "/dev/ttyACM0")
	t.Setenv("LABEL_READER_BAUD", "9600")
	t.Setenv("LABEL_READER_LANG", "deu")

	cfg := Load()

	if cfg.CameraIndex != 2 {
		t.Errorf("CameraIndex: got %d, want 2", cfg.CameraIndex)
	}
	if cfg.SerialEnabled {
		t.Error("SerialEnabled should be false")
	}
	if cfg.SerialPort != "/dev/ttyACM0" {
		t.Errorf("SerialPort: got %q, want /dev/ttyACM0", cfg.SerialPort)
	}
	if cfg.BaudRate != 9600 {
		t.Errorf("BaudRate: got %d, want 9600", cfg.BaudRate)
	}
	if cfg.Language != "deu" {
		t.Errorf("Language: got %q, want deu", cfg.Language)
	}
}

func TestLoad_MalformedEnvFallsBack(t *testing.T) {
	t.Setenv("LABEL_READER_CAMERA", "first")
	t.Setenv("LABEL_READER_SPEECH", "yep")

	cfg := Load()

	if cfg.CameraIndex != DefaultCameraIndex {
		t.Errorf("CameraIndex: got %d, want default %d", cfg.CameraIndex, DefaultCameraIndex)
	}
	if !cfg.SpeechEnabled {
		t.Error("SpeechEnabled should fall back to its default")
	}
}

func TestApplyArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want int
	}{
		{"no args keeps default", nil, DefaultCameraIndex},
		{"valid index", []string{"1"}, 1},
		{"another valid index", []string{"3"}, 3},
		{"non-integer falls back", []string{"camera"}, DefaultCameraIndex},
		{"extra args ignored", []string{"2", "junk"}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Load()
			cfg.ApplyArgs(tt.args)
			if cfg.CameraIndex != tt.want {
				t.Errorf("CameraIndex: got %d, want %d", cfg.CameraIndex, tt.want)
			}
		})
	}
}
