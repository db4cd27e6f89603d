package audio

import (
	"math"
	"math/cmplx"
	"sync/atomic"

	"github.com/mjibson/go-dsp/fft"
)

// Analyser reduces blocks of captured PCM to a single loudness level,
// the mean of the byte-scaled frequency spectrum divided by 255.
//
// Process is called from the capture goroutine; Sample may be called from any
// goroutine and only reads the last published level.
type Analyser struct {
	size      int
	smoothing float64
	minDB     float64
	maxDB     float64

	window   []float64
	frame    []float64
	smoothed []float64

	level atomic.Uint64
}

// NewAnalyser creates an analyser for blocks of size samples.
// smoothing is the spectral time constant in [0,1); minDB/maxDB bound the byte scale.
func NewAnalyser(size int, smoothing, minDB, maxDB float64) *Analyser {
	a := &Analyser{
		size:      size,
		smoothing: smoothing,
		minDB:     minDB,
		maxDB:     maxDB,
		window:    make([]float64, size),
		frame:     make([]float64, size),
		smoothed:  make([]float64, size/2),
	}
	// Hann window
	for i := range a.window {
		a.window[i] = 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(size)))
	}
	return a
}

// Process analyses one block and publishes its level.
// Short blocks are zero padded; long blocks are truncated.
func (a *Analyser) Process(block []float32) float64 {
	for i := range a.frame {
		v := 0.0
		if i < len(block) {
			v = float64(block[i])
		}
		a.frame[i] = v * a.window[i]
	}

	spectrum := fft.FFTReal(a.frame)

	var sum float64
	for k := range a.smoothed {
		mag := cmplx.Abs(spectrum[k]) / float64(a.size)
		a.smoothed[k] = a.smoothing*a.smoothed[k] + (1-a.smoothing)*mag
		sum += a.byteLevel(a.smoothed[k])
	}

	level := Clamp01(sum / float64(len(a.smoothed)) / 255)
	a.level.Store(math.Float64bits(level))
	return level
}

// byteLevel maps a magnitude onto 0..255 between minDB and maxDB.
func (a *Analyser) byteLevel(mag float64) float64 {
	if mag <= 0 {
		return 0
	}
	db := 20 * math.Log10(mag)
	scaled := (db - a.minDB) / (a.maxDB - a.minDB)
	return math.Floor(255 * Clamp01(scaled))
}

// Sample returns the most recently published level without blocking.
func (a *Analyser) Sample() float64 {
	return math.Float64frombits(a.level.Load())
}

// Size returns the block size the analyser expects.
func (a *Analyser) Size() int {
	return a.size
}
