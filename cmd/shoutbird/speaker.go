package main

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/shoutbird/internal/audio/sfx"
	"github.com/vovakirdan/shoutbird/internal/config"
)

// speakerOutput plays cues through the beep speaker.
type speakerOutput struct{}

func (speakerOutput) Play(s ...beep.Streamer) { speaker.Play(s...) }
func (speakerOutput) Lock()                   { speaker.Lock() }
func (speakerOutput) Unlock()                 { speaker.Unlock() }

// openCues initialises the speaker and renders the cue bank. Cues are
// optional: any failure falls back to a silent bank.
func openCues(cfg config.Audio, mute bool, logger *log.Logger) *sfx.Bank {
	if mute || !cfg.Cues {
		logger.Info("audio cues disabled")
		return sfx.Silent()
	}

	rate := beep.SampleRate(cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(time.Second/20)); err != nil {
		logger.Warn("audio cues unavailable", "err", err)
		return sfx.Silent()
	}
	return sfx.NewBank(rate, speakerOutput{}, cfg.CueVolume)
}
