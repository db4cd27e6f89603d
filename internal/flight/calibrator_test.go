package flight

import (
	"testing"

	"github.com/vovakirdan/shoutbird/internal/audio"
	"github.com/vovakirdan/shoutbird/internal/config"
)

func feedAll(c *Calibrator, samples []float64) (done bool, consumed int) {
	for i, s := range samples {
		if c.Feed(s) {
			return true, i + 1
		}
	}
	return false, len(samples)
}

func TestCalibratorSilenceConsumesExactlyN(t *testing.T) {
	cfg := config.Default().Flight.Calibration
	c := NewCalibrator(cfg)

	var samples []float64
	for i := 0; i < cfg.SilenceFrames+50; i++ {
		samples = append(samples, float64(i%7)*0.01)
	}
	for _, s := range samples[:cfg.SilenceFrames] {
		c.Feed(s)
	}

	if c.Stage() != StageShout {
		t.Fatalf("Stage() = %v, expected StageShout after %d samples", c.Stage(), cfg.SilenceFrames)
	}
	if got := len(c.SilenceSamples()); got != cfg.SilenceFrames {
		t.Errorf("len(SilenceSamples()) = %d, expected %d", got, cfg.SilenceFrames)
	}
	loudest := 6.0
	if want := loudest * 0.01 * 1.5; c.SilentThreshold() != want {
		t.Errorf("SilentThreshold() = %v, expected %v", c.SilentThreshold(), want)
	}

	// Further samples belong to the shout stage.
	c.Feed(0.5)
	if got := len(c.SilenceSamples()); got != cfg.SilenceFrames {
		t.Errorf("silence stage consumed %d samples, expected %d", got, cfg.SilenceFrames)
	}
}

func TestCalibratorShoutCollectsActiveRun(t *testing.T) {
	tests := []struct {
		name    string
		lead    int // quiet samples before the shout
		k       int // loud samples
		trigger float64
	}{
		{"immediate", 0, 1, 0},
		{"after quiet lead", 7, 3, 0.1},
		{"long shout", 2, 40, 0.2},
		{"drop to threshold", 0, 5, 0.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCalibrator(config.Calibration{SilenceFrames: 3, SilenceMultiplier: 2})
			feedAll(c, []float64{0.1, 0.05, 0.1}) // silent threshold 0.2

			script := audio.Repeat(0.15, tt.lead)
			for i := 0; i < tt.k; i++ {
				script = append(script, 0.5+float64(i)*0.01)
			}
			script = append(script, tt.trigger, 0.9)

			done, consumed := feedAll(c, script)
			if !done {
				t.Fatal("calibration did not resolve")
			}
			if consumed != tt.lead+tt.k+1 {
				t.Errorf("resolved after %d samples, expected %d", consumed, tt.lead+tt.k+1)
			}
			if got := len(c.ShoutSamples()); got != tt.k {
				t.Errorf("len(ShoutSamples()) = %d, expected %d", got, tt.k)
			}
		})
	}
}

func TestCalibratorScenario(t *testing.T) {
	c := NewCalibrator(config.Default().Flight.Calibration)

	script := append(audio.Repeat(0, 100), audio.Repeat(0.9, 5)...)
	script = append(script, 0)
	done, consumed := feedAll(c, script)

	if !done || consumed != len(script) {
		t.Fatalf("Feed() done=%v after %d samples, expected done after %d", done, consumed, len(script))
	}
	if c.SilentThreshold() != 0 {
		t.Errorf("SilentThreshold() = %v, expected 0", c.SilentThreshold())
	}
	want := []float64{0.9, 0.9, 0.9, 0.9, 0.9}
	got := c.ShoutSamples()
	if len(got) != len(want) {
		t.Fatalf("ShoutSamples() = %v, expected %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ShoutSamples()[%d] = %v, expected %v", i, got[i], want[i])
		}
	}
	if c.StaticThreshold() != 0.45 {
		t.Errorf("StaticThreshold() = %v, expected 0.45", c.StaticThreshold())
	}
}

func TestCalibratorStallsWithoutShout(t *testing.T) {
	c := NewCalibrator(config.Calibration{SilenceFrames: 10, SilenceMultiplier: 1.5})
	feedAll(c, audio.Repeat(0.2, 10)) // threshold 0.3

	done, _ := feedAll(c, audio.Repeat(0.3, 1000))
	if done {
		t.Error("calibration resolved without a sample above the silent threshold")
	}
	if c.Active() {
		t.Error("Active() = true, expected false")
	}
	if c.Stage() != StageShout {
		t.Errorf("Stage() = %v, expected StageShout", c.Stage())
	}
}

func TestCalibratorIgnoresFeedAfterDone(t *testing.T) {
	c := NewCalibrator(config.Calibration{SilenceFrames: 1, SilenceMultiplier: 1})
	feedAll(c, []float64{0, 0.6, 0})
	static := c.StaticThreshold()

	if !c.Feed(1) {
		t.Error("Feed() after completion = false, expected true")
	}
	if c.StaticThreshold() != static || len(c.ShoutSamples()) != 1 {
		t.Error("samples fed after completion changed the calibration")
	}
}
