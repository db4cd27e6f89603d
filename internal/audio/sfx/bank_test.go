package sfx

import (
	"sync"
	"testing"

	"github.com/gopxl/beep"
)

const testRate = beep.SampleRate(8000)

// recorder is an Output that keeps every streamer it is asked to play.
type recorder struct {
	mu     sync.Mutex
	played []beep.Streamer
	locks  int
}

func (r *recorder) Play(s ...beep.Streamer) {
	r.played = append(r.played, s...)
}

func (r *recorder) Lock() {
	r.mu.Lock()
	r.locks++
}

func (r *recorder) Unlock() {
	r.mu.Unlock()
}

// drain streams s to the end and returns the number of samples and the peak.
func drain(s beep.Streamer) (int, float64) {
	buf := make([][2]float64, 256)
	total, peak := 0, 0.0
	for {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			if smp[0] > peak {
				peak = smp[0]
			}
			if -smp[0] > peak {
				peak = -smp[0]
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}
}

func TestBankRendersEveryCue(t *testing.T) {
	rec := &recorder{}
	bank := NewBank(testRate, rec, 1)

	for id := CueID(0); id < cueCount; id++ {
		c, ok := bank.Cue(id).(*bufferCue)
		if !ok {
			t.Fatalf("Cue(%v) is %T, expected *bufferCue", id, bank.Cue(id))
		}
		if c.Len() == 0 {
			t.Errorf("Cue(%v) rendered no samples", id)
		}
	}
}

func TestTriggerPlaysFromStart(t *testing.T) {
	rec := &recorder{}
	bank := NewBank(testRate, rec, 1)

	bank.Trigger(CuePoint)
	if len(rec.played) != 1 {
		t.Fatalf("Trigger() played %d streamers, expected 1", len(rec.played))
	}

	want := bank.Cue(CuePoint).(*bufferCue).Len()
	n, peak := drain(rec.played[0])
	if n != want {
		t.Errorf("played %d samples, expected %d", n, want)
	}
	if peak == 0 || peak > 1 {
		t.Errorf("peak amplitude = %v, expected within (0,1]", peak)
	}
}

func TestResetCutsPreviousInstance(t *testing.T) {
	rec := &recorder{}
	bank := NewBank(testRate, rec, 1)

	bank.Trigger(CueWing)
	first := rec.played[0]
	bank.Trigger(CueWing)

	if n, _ := drain(first); n != 0 {
		t.Errorf("first instance streamed %d samples after reset, expected 0", n)
	}
	if rec.locks == 0 {
		t.Error("Reset should lock the output while stopping a playing cue")
	}
	if n, _ := drain(rec.played[1]); n == 0 {
		t.Error("second instance should play")
	}
}

func TestSilentBank(t *testing.T) {
	bank := Silent()
	for id := CueID(0); id < cueCount; id++ {
		bank.Trigger(id)
	}
	bank.Trigger(CueID(99))
}

func TestZeroVolumeIsSilent(t *testing.T) {
	rec := &recorder{}
	bank := NewBank(testRate, rec, 0)

	bank.Trigger(CueHit)
	if _, peak := drain(rec.played[0]); peak != 0 {
		t.Errorf("peak at zero volume = %v, expected 0", peak)
	}
}

func TestCueIDString(t *testing.T) {
	names := map[CueID]string{
		CuePoint:  "point",
		CueWing:   "wing",
		CueHit:    "hit",
		CueDie:    "die",
		CueSwoosh: "swoosh",
		cueCount:  "unknown",
	}
	for id, want := range names {
		if id.String() != want {
			t.Errorf("CueID(%d).String() = %q, expected %q", id, id.String(), want)
		}
	}
}
