package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/gopxl/beep"

	"github.com/vovakirdan/shoutbird/internal/audio/sfx"
	"github.com/vovakirdan/shoutbird/internal/core"
	"github.com/vovakirdan/shoutbird/internal/flight"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawTextColored(0, 0, "bird", core.ColorBird)
	s.DrawTextColored(4, 0, "pipe", core.ColorPipe)
	s.DrawTextColored(0, 1, "ground", core.ColorDefault)

	out := ansi.Strip(RenderScreen(s))
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("RenderScreen() has %d lines, expected 2", len(lines))
	}
	if lines[0] != "birdpipe  " {
		t.Errorf("line 0 = %q, expected %q", lines[0], "birdpipe  ")
	}
	if lines[1] != "ground    " {
		t.Errorf("line 1 = %q, expected %q", lines[1], "ground    ")
	}
}

func TestEveryColorHasStyle(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorDim; c++ {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("no style for %v", c)
		}
	}
}

type countingOutput struct {
	plays int
}

func (o *countingOutput) Play(s ...beep.Streamer) { o.plays += len(s) }
func (o *countingOutput) Lock()                   {}
func (o *countingOutput) Unlock()                 {}

func TestPlayCues(t *testing.T) {
	tests := []struct {
		ev   flight.Events
		want int
	}{
		{0, 0},
		{flight.EventFlap, 1},
		{flight.EventFlap | flight.EventPoint, 2},
		{flight.EventHit, 1},
		{flight.EventSplashShown | flight.EventFinished, 0},
		{flight.EventCalibrated | flight.EventGrounded, 2},
	}

	for _, tt := range tests {
		out := &countingOutput{}
		PlayCues(sfx.NewBank(beep.SampleRate(8000), out, 0.5), tt.ev)
		if out.plays != tt.want {
			t.Errorf("PlayCues(%v) played %d cues, expected %d", tt.ev, out.plays, tt.want)
		}
	}
}
