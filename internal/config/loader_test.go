package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestEmbeddedDefaultMatchesBuiltin(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, source, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if source != SourceEmbedded {
		t.Errorf("Load() source = %q, expected %q", source, SourceEmbedded)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("embedded YAML and Default() disagree:\n%+v\n%+v", cfg, Default())
	}
}

func TestLoadCustomPathOverridesKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "flight:\n  physics:\n    gravity: 0.35\naudio:\n  input: keyboard\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, source, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if source != path {
		t.Errorf("Load() source = %q, expected %q", source, path)
	}
	if cfg.Flight.Physics.Gravity != 0.35 {
		t.Errorf("Gravity = %v, expected 0.35", cfg.Flight.Physics.Gravity)
	}
	if cfg.Audio.Input != InputKeyboard {
		t.Errorf("Input = %q, expected %q", cfg.Audio.Input, InputKeyboard)
	}
	// Untouched keys keep their defaults
	if cfg.Flight.Physics.FlapImpulse != -4 {
		t.Errorf("FlapImpulse = %v, expected default -4", cfg.Flight.Physics.FlapImpulse)
	}
	if cfg.Flight.Calibration.SilenceFrames != 100 {
		t.Errorf("SilenceFrames = %d, expected default 100", cfg.Flight.Calibration.SilenceFrames)
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".shoutbird")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("display:\n  tick_rate: 30\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, source, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if source != path {
		t.Errorf("Load() source = %q, expected %q", source, path)
	}
	if cfg.Display.TickRate != 30 {
		t.Errorf("TickRate = %d, expected 30", cfg.Display.TickRate)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	if _, _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() of a missing file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("flight: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, _, err := Load(bad); err == nil {
		t.Error("Load() of malformed YAML should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("display:\n  tick_rate: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, _, err := Load(invalid)
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("Load() of invalid values = %v, expected ErrInvalid", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"silence frames", func(c *Config) { c.Flight.Calibration.SilenceFrames = 0 }, "silence_frames"},
		{"scroll speed", func(c *Config) { c.Flight.Physics.ScrollSpeed = -1 }, "scroll_speed"},
		{"pipe width", func(c *Config) { c.Flight.Obstacles.PipeWidth = 0 }, "pipe_width"},
		{"input mode", func(c *Config) { c.Audio.Input = "midi" }, "audio.input"},
		{"decibel range", func(c *Config) { c.Audio.MaxDecibels = -120 }, "max_decibels"},
		{"smoothing", func(c *Config) { c.Audio.Smoothing = 1 }, "smoothing"},
		{"cell size", func(c *Config) { c.Display.CellH = 0 }, "cell size"},
	}

	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v, expected nil", err)
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalid) {
				t.Fatalf("Validate() = %v, expected ErrInvalid", err)
			}
			if !strings.Contains(err.Error(), tc.field) {
				t.Errorf("Validate() error %q should mention %q", err, tc.field)
			}
		})
	}
}

func TestMarshalRoundTripsDefaults(t *testing.T) {
	data, err := Marshal(Default())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if !strings.Contains(string(data), "silence_frames: 100") {
		t.Errorf("Marshal() output missing silence_frames:\n%s", data)
	}
}
