// Package config provides YAML-based configuration loading for shoutbird.
package config

import (
	"errors"
	"fmt"
)

// Config is the complete configuration of a shoutbird process.
type Config struct {
	Flight  Flight  `yaml:"flight"`
	Audio   Audio   `yaml:"audio"`
	Display Display `yaml:"display"`
}

// Flight holds the simulation constants, in world units per frame.
type Flight struct {
	Physics     Physics     `yaml:"physics"`
	Calibration Calibration `yaml:"calibration"`
	Bird        Bird        `yaml:"bird"`
	Obstacles   Obstacles   `yaml:"obstacles"`
}

// Physics defines bird integration and scrolling parameters.
type Physics struct {
	Gravity       float64 `yaml:"gravity"`
	FlapImpulse   float64 `yaml:"flap_impulse"`
	ScrollSpeed   float64 `yaml:"scroll_speed"`
	RotationScale float64 `yaml:"rotation_scale"` // rotation = velocity / scale while flying
	DeathRotation float64 `yaml:"death_rotation"` // degrees added per frame during the death fall
	MaxRotation   float64 `yaml:"max_rotation"`   // degrees
}

// Calibration defines the silence/shout bootstrap.
type Calibration struct {
	SilenceFrames     int     `yaml:"silence_frames"`
	SilenceMultiplier float64 `yaml:"silence_multiplier"`
}

// Bird defines the bird hitbox and animation.
type Bird struct {
	X             float64 `yaml:"x"`
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	TicksPerFrame int     `yaml:"ticks_per_frame"`
}

// Obstacles defines pipe geometry.
type Obstacles struct {
	PipeWidth       float64 `yaml:"pipe_width"`
	CapTopHeight    float64 `yaml:"cap_top_height"`    // cap above the gap, the bottom end of the hanging pipe; lowest gap top
	CapBottomHeight float64 `yaml:"cap_bottom_height"` // cap below the gap, the top end of the standing pipe
	GroundHeight    float64 `yaml:"ground_height"`
	GapBirdHeights  float64 `yaml:"gap_bird_heights"` // gap height in multiples of the bird height
	PeriodDivisor   float64 `yaml:"period_divisor"`   // spawn period = viewport height / divisor
}

// Audio defines amplitude input and cue output.
type Audio struct {
	Input           string  `yaml:"input"` // "mic" or "keyboard"
	Device          string  `yaml:"device"`
	SampleRate      int     `yaml:"sample_rate"`
	FramesPerBuffer int     `yaml:"frames_per_buffer"`
	Smoothing       float64 `yaml:"smoothing"`
	MinDecibels     float64 `yaml:"min_decibels"`
	MaxDecibels     float64 `yaml:"max_decibels"`
	Cues            bool    `yaml:"cues"`
	CueVolume       float64 `yaml:"cue_volume"`
}

// Display defines the host frame rate and world-to-cell scale.
type Display struct {
	TickRate int `yaml:"tick_rate"`
	CellW    int `yaml:"cell_width"`
	CellH    int `yaml:"cell_height"`
}

// Input modes.
const (
	InputMic      = "mic"
	InputKeyboard = "keyboard"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Validate checks the values the engine divides by or iterates over.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("config: %w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	f := c.Flight
	check(f.Calibration.SilenceFrames > 0, "calibration.silence_frames must be positive, got %d", f.Calibration.SilenceFrames)
	check(f.Calibration.SilenceMultiplier > 0, "calibration.silence_multiplier must be positive, got %v", f.Calibration.SilenceMultiplier)
	check(f.Physics.ScrollSpeed > 0, "physics.scroll_speed must be positive, got %v", f.Physics.ScrollSpeed)
	check(f.Physics.RotationScale > 0, "physics.rotation_scale must be positive, got %v", f.Physics.RotationScale)
	check(f.Bird.Width > 0 && f.Bird.Height > 0, "bird size must be positive, got %vx%v", f.Bird.Width, f.Bird.Height)
	check(f.Bird.TicksPerFrame > 0, "bird.ticks_per_frame must be positive, got %d", f.Bird.TicksPerFrame)
	check(f.Obstacles.PipeWidth > 0, "obstacles.pipe_width must be positive, got %v", f.Obstacles.PipeWidth)
	check(f.Obstacles.PeriodDivisor > 0, "obstacles.period_divisor must be positive, got %v", f.Obstacles.PeriodDivisor)

	a := c.Audio
	check(a.Input == InputMic || a.Input == InputKeyboard, "audio.input must be %q or %q, got %q", InputMic, InputKeyboard, a.Input)
	check(a.SampleRate > 0, "audio.sample_rate must be positive, got %d", a.SampleRate)
	check(a.FramesPerBuffer > 0, "audio.frames_per_buffer must be positive, got %d", a.FramesPerBuffer)
	check(a.MaxDecibels > a.MinDecibels, "audio.max_decibels (%v) must exceed min_decibels (%v)", a.MaxDecibels, a.MinDecibels)
	check(a.Smoothing >= 0 && a.Smoothing < 1, "audio.smoothing must be in [0,1), got %v", a.Smoothing)

	d := c.Display
	check(d.TickRate > 0, "display.tick_rate must be positive, got %d", d.TickRate)
	check(d.CellW > 0 && d.CellH > 0, "display cell size must be positive, got %dx%d", d.CellW, d.CellH)

	return errors.Join(errs...)
}
