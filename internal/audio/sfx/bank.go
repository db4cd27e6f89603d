// Package sfx synthesises the game's short audio cues with beep.
//
// Cues are rendered once into buffers; playing one hands a fresh streamer to
// an Output, normally the beep speaker.
package sfx

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Cue is a replayable sound effect.
type Cue interface {
	Reset()
	Play()
}

// Output receives streamers to mix. Lock/Unlock guard streamers that are
// already playing, the way speaker.Lock does.
type Output interface {
	Play(s ...beep.Streamer)
	Lock()
	Unlock()
}

// CueID names one of the game's cues.
type CueID int

const (
	CuePoint CueID = iota
	CueWing
	CueHit
	CueDie
	CueSwoosh
	cueCount
)

// String returns the cue name.
func (id CueID) String() string {
	switch id {
	case CuePoint:
		return "point"
	case CueWing:
		return "wing"
	case CueHit:
		return "hit"
	case CueDie:
		return "die"
	case CueSwoosh:
		return "swoosh"
	default:
		return "unknown"
	}
}

// Format is the sample format all cues are rendered in.
func Format(rate beep.SampleRate) beep.Format {
	return beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2}
}

// Bank holds one cue per CueID.
type Bank struct {
	cues [cueCount]Cue
}

// NewBank renders all cues at the given rate and volume (0..1).
func NewBank(rate beep.SampleRate, out Output, volume float64) *Bank {
	b := &Bank{}
	for id := CueID(0); id < cueCount; id++ {
		b.cues[id] = newBufferCue(render(id, rate, volume), out)
	}
	return b
}

// Silent returns a bank whose cues do nothing.
func Silent() *Bank {
	b := &Bank{}
	for id := range b.cues {
		b.cues[id] = nopCue{}
	}
	return b
}

// Cue returns the cue for id.
func (b *Bank) Cue(id CueID) Cue {
	if id < 0 || id >= cueCount {
		return nopCue{}
	}
	return b.cues[id]
}

// Trigger rewinds and plays a cue, cutting off its previous instance.
func (b *Bank) Trigger(id CueID) {
	c := b.Cue(id)
	c.Reset()
	c.Play()
}

// render synthesises one cue into a buffer.
func render(id CueID, rate beep.SampleRate, volume float64) *beep.Buffer {
	ms := time.Millisecond
	var s beep.Streamer
	switch id {
	case CuePoint:
		s = beep.Seq(
			note(988, 988, 60*ms, WaveSquare, rate),
			note(1319, 1319, 140*ms, WaveSquare, rate),
		)
	case CueWing:
		s = note(300, 700, 70*ms, WaveSaw, rate)
	case CueHit:
		s = beep.Mix(
			note(0, 0, 90*ms, WaveNoise, rate),
			note(180, 90, 90*ms, WaveSquare, rate),
		)
	case CueDie:
		s = beep.Seq(
			note(440, 392, 90*ms, WaveSine, rate),
			note(330, 294, 90*ms, WaveSine, rate),
			note(220, 110, 180*ms, WaveSine, rate),
		)
	case CueSwoosh:
		s = shape(tone(0, 0, 220*ms, WaveNoise, rate), 220*ms, 80*ms, 120*ms, rate)
	}

	buf := beep.NewBuffer(Format(rate))
	buf.Append(gain(s, volume*0.5))
	return buf
}

// gain scales a streamer linearly; beep's Volume effect works in log units.
func gain(s beep.Streamer, g float64) beep.Streamer {
	if g <= 0 {
		return &effects.Volume{Streamer: s, Silent: true}
	}
	return &effects.Gain{Streamer: s, Gain: g - 1}
}

// bufferCue plays a rendered buffer, keeping a handle on the last instance.
type bufferCue struct {
	buf *beep.Buffer
	out Output

	mu   sync.Mutex
	ctrl *beep.Ctrl
}

func newBufferCue(buf *beep.Buffer, out Output) *bufferCue {
	return &bufferCue{buf: buf, out: out}
}

// Reset stops the instance started by the previous Play, if still playing.
func (c *bufferCue) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ctrl == nil {
		return
	}
	c.out.Lock()
	c.ctrl.Streamer = nil
	c.out.Unlock()
	c.ctrl = nil
}

// Play starts a new instance from the beginning.
func (c *bufferCue) Play() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ctrl = &beep.Ctrl{Streamer: c.buf.Streamer(0, c.buf.Len())}
	c.out.Play(c.ctrl)
}

// Len returns the cue length in samples.
func (c *bufferCue) Len() int {
	return c.buf.Len()
}

type nopCue struct{}

func (nopCue) Reset() {}
func (nopCue) Play()  {}
