package flight

import "github.com/vovakirdan/shoutbird/internal/config"

// CalibrationStage is the progress of a Calibrator.
type CalibrationStage int

const (
	StageSilence CalibrationStage = iota // collecting the silence baseline
	StageShout                           // waiting for, then collecting, a shout
	StageDone                            // static threshold resolved
)

// Calibrator learns a player's silence and shout levels one sample per frame.
//
// The silence stage takes exactly N samples. The shout stage latches on the
// first sample above the silent threshold and resolves on the first sample at
// or below it afterwards. A player who never gets louder than the silent
// threshold keeps the calibrator in StageShout forever.
type Calibrator struct {
	frames     int
	multiplier float64

	stage   CalibrationStage
	silence []float64
	silent  float64
	active  bool
	shout   []float64
	static  float64
}

// NewCalibrator creates a calibrator in StageSilence.
func NewCalibrator(cfg config.Calibration) *Calibrator {
	return &Calibrator{
		frames:     cfg.SilenceFrames,
		multiplier: cfg.SilenceMultiplier,
		silence:    make([]float64, 0, cfg.SilenceFrames),
	}
}

// Feed consumes one amplitude sample and reports whether calibration has
// completed. Samples fed after completion are ignored.
func (c *Calibrator) Feed(sample float64) bool {
	switch c.stage {
	case StageSilence:
		c.silence = append(c.silence, sample)
		if len(c.silence) >= c.frames {
			c.silent = maxOf(c.silence) * c.multiplier
			c.stage = StageShout
		}
	case StageShout:
		if sample > c.silent {
			c.active = true
			c.shout = append(c.shout, sample)
		} else if c.active {
			c.static = (maxOf(c.shout) + c.silent) / 2
			c.stage = StageDone
		}
	}
	return c.stage == StageDone
}

// Stage returns the current stage.
func (c *Calibrator) Stage() CalibrationStage {
	return c.stage
}

// Active reports whether the shout stage has latched.
func (c *Calibrator) Active() bool {
	return c.active
}

// SilenceSamples returns the samples consumed by the silence stage.
func (c *Calibrator) SilenceSamples() []float64 {
	return c.silence
}

// SilentThreshold is max(silence) times the multiplier, valid after StageSilence.
func (c *Calibrator) SilentThreshold() float64 {
	return c.silent
}

// ShoutSamples returns the samples collected while the shout stage was active.
func (c *Calibrator) ShoutSamples() []float64 {
	return c.shout
}

// StaticThreshold is the average of the loudest shout sample and the silent
// threshold, valid once Feed has returned true.
func (c *Calibrator) StaticThreshold() float64 {
	return c.static
}

func maxOf(xs []float64) float64 {
	m := 0.0
	for i, x := range xs {
		if i == 0 || x > m {
			m = x
		}
	}
	return m
}
