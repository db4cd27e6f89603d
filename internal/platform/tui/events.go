package tui

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/shoutbird/internal/audio/sfx"
	"github.com/vovakirdan/shoutbird/internal/flight"
)

// cueEvents maps session events to the cue they sound.
var cueEvents = []struct {
	ev  flight.Events
	cue sfx.CueID
}{
	{flight.EventCalibrated, sfx.CueSwoosh},
	{flight.EventFlap, sfx.CueWing},
	{flight.EventPoint, sfx.CuePoint},
	{flight.EventHit, sfx.CueHit},
	{flight.EventGrounded, sfx.CueDie},
}

// PlayCues triggers the cue of every event in ev.
func PlayCues(bank *sfx.Bank, ev flight.Events) {
	for _, ce := range cueEvents {
		if ev.Has(ce.ev) {
			bank.Trigger(ce.cue)
		}
	}
}

// LogEvents writes a log line for each notable event of one frame.
func LogEvents(logger *log.Logger, s *flight.Session, r flight.StepResult) {
	ev := r.Events
	if ev.Has(flight.EventSplashShown) {
		logger.Info("silence measured", "silent_threshold", s.Calibrator().SilentThreshold())
	}
	if ev.Has(flight.EventCalibrated) {
		logger.Info("calibrated",
			"static_threshold", s.Thresholds().Static,
			"shout_samples", len(s.Calibrator().ShoutSamples()),
		)
	}
	if ev.Has(flight.EventFlap) {
		logger.Debug("flap", "amplitude", r.Amplitude, "y", s.Bird().Y)
	}
	if ev.Has(flight.EventPoint) {
		logger.Debug("point", "score", r.Score)
	}
	if ev.Has(flight.EventHit) {
		logger.Info("obstacle hit", "score", r.Score, "distance", s.State().Distance)
	}
	if ev.Has(flight.EventGrounded) {
		logger.Info("grounded", "score", r.Score)
	}
	if ev.Has(flight.EventFinished) {
		logger.Info("session finished", "score", r.FinalScore, "frames", s.State().FrameCount)
	}
}
