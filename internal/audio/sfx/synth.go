package sfx

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
)

// Wave selects an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator streams a fixed-length tone, optionally gliding to an end frequency.
type oscillator struct {
	from, to float64
	wave     Wave
	rate     beep.SampleRate
	length   int
	pos      int
	phase    float64
	rng      *rand.Rand
}

func tone(from, to float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		from:   from,
		to:     to,
		wave:   wave,
		rate:   rate,
		length: rate.N(d),
		rng:    rand.New(rand.NewSource(int64(from))),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.pos >= o.length {
			return i, i > 0
		}

		var v float64
		switch o.wave {
		case WaveSine:
			v = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			v = 1
			if o.phase >= 0.5 {
				v = -1
			}
		case WaveSaw:
			v = 2 * (o.phase - 0.5)
		case WaveNoise:
			v = o.rng.Float64()*2 - 1
		}
		samples[i][0] = v
		samples[i][1] = v

		t := float64(o.pos) / float64(o.length)
		freq := o.from + (o.to-o.from)*t
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.pos++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release over a streamer of known length.
type envelope struct {
	s       beep.Streamer
	length  int
	attack  int
	release int
	pos     int
}

func shape(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		s:       s,
		length:  rate.N(d),
		attack:  rate.N(attack),
		release: rate.N(release),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.s.Stream(samples)
	for i := 0; i < n; i++ {
		g := 1.0
		if e.attack > 0 && e.pos < e.attack {
			g = float64(e.pos) / float64(e.attack)
		}
		if left := e.length - e.pos; e.release > 0 && left < e.release {
			g = math.Min(g, math.Max(0, float64(left)/float64(e.release)))
		}
		samples[i][0] *= g
		samples[i][1] *= g
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.s.Err() }

// note is one shaped oscillator segment.
func note(from, to float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return shape(tone(from, to, d, wave, rate), d, 5*time.Millisecond, d/2, rate)
}
