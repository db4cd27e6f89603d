// Package audio turns captured sound into per-frame loudness samples.
package audio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync/atomic"
)

// AmplitudeSource produces one normalized loudness sample in [0,1] per frame.
// Sample must not block; the frame loop calls it at most once per frame.
type AmplitudeSource interface {
	Sample() float64
}

// Clamp01 restricts a loudness value to [0,1]. NaN maps to 0.
func Clamp01(v float64) float64 {
	if !(v > 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// ScriptedSource replays a fixed list of samples, then repeats Tail forever.
type ScriptedSource struct {
	samples []float64
	pos     int
	Tail    float64
}

// NewScriptedSource creates a source that yields samples in order.
func NewScriptedSource(samples ...float64) *ScriptedSource {
	return &ScriptedSource{samples: samples}
}

// Sample returns the next scripted value.
func (s *ScriptedSource) Sample() float64 {
	if s.pos < len(s.samples) {
		v := s.samples[s.pos]
		s.pos++
		return Clamp01(v)
	}
	return Clamp01(s.Tail)
}

// Remaining reports how many scripted samples have not been consumed.
func (s *ScriptedSource) Remaining() int {
	return len(s.samples) - s.pos
}

// Repeat returns n copies of v, for building scripts.
func Repeat(v float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

// KeySource turns key presses into loudness spikes for terminals without a microphone.
// Each press yields one full-scale sample on the next frame.
type KeySource struct {
	pressed atomic.Bool
	Level   float64 // sample value for a press, 1 if zero
}

// Press registers a shout for the next frame.
func (k *KeySource) Press() {
	k.pressed.Store(true)
}

// Sample returns the spike level once per press and 0 otherwise.
func (k *KeySource) Sample() float64 {
	if !k.pressed.Swap(false) {
		return 0
	}
	if k.Level == 0 {
		return 1
	}
	return Clamp01(k.Level)
}

// ReadScript parses amplitude samples, one number per line. Blank lines and
// lines starting with '#' are skipped; trailing '#' comments are allowed.
func ReadScript(r io.Reader) ([]float64, error) {
	var out []float64
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, fmt.Errorf("audio: script line %d: %w", line, err)
		}
		out = append(out, v)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("audio: reading script: %w", err)
	}
	return out, nil
}
