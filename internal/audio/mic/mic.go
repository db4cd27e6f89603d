// Package mic acquires the microphone once per process and feeds it into an
// audio.Analyser.
//
// The capture stream is opened on first use and never stopped or terminated
// while the process runs; every later session reuses the same Acquisition.
package mic

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gordonklaus/portaudio"

	"github.com/vovakirdan/shoutbird/internal/audio"
	"github.com/vovakirdan/shoutbird/internal/config"
)

const readRetryDelay = 10 * time.Millisecond

// Acquisition is the pending or granted microphone handle.
type Acquisition struct {
	ready    chan struct{}
	failed   chan struct{}
	analyser *audio.Analyser
	err      error
	stream   *portaudio.Stream
}

var (
	once    sync.Once
	current *Acquisition
)

// Acquire starts microphone acquisition on first call and returns the same
// Acquisition on every call after that. It never blocks.
func Acquire(cfg config.Audio) *Acquisition {
	once.Do(func() {
		current = &Acquisition{
			ready:  make(chan struct{}),
			failed: make(chan struct{}),
		}
		go current.open(cfg)
	})
	return current
}

// Ready is closed once the analyser is producing samples.
// It stays open forever if the microphone cannot be acquired.
func (a *Acquisition) Ready() <-chan struct{} {
	return a.ready
}

// Failed is closed if acquisition gave up. Only used for diagnostics.
func (a *Acquisition) Failed() <-chan struct{} {
	return a.failed
}

// Analyser returns the live amplitude source. Valid after Ready is closed.
func (a *Acquisition) Analyser() *audio.Analyser {
	select {
	case <-a.ready:
		return a.analyser
	default:
		return nil
	}
}

// Source returns the analyser as an amplitude source. Valid after Ready is closed.
func (a *Acquisition) Source() audio.AmplitudeSource {
	return a.Analyser()
}

// Err returns the acquisition failure, if any. Valid after Failed is closed.
func (a *Acquisition) Err() error {
	select {
	case <-a.failed:
		return a.err
	default:
		return nil
	}
}

func (a *Acquisition) fail(err error) {
	a.err = err
	close(a.failed)
}

func (a *Acquisition) open(cfg config.Audio) {
	if err := portaudio.Initialize(); err != nil {
		a.fail(fmt.Errorf("mic: cannot initialize portaudio: %w", err))
		return
	}

	dev, err := inputDevice(cfg.Device)
	if err != nil {
		a.fail(err)
		return
	}

	buf := make([]float32, cfg.FramesPerBuffer)
	params := portaudio.LowLatencyParameters(dev, nil)
	params.Input.Channels = 1
	params.SampleRate = float64(cfg.SampleRate)
	params.FramesPerBuffer = len(buf)

	stream, err := portaudio.OpenStream(params, buf)
	if err != nil {
		a.fail(fmt.Errorf("mic: cannot open input stream on %q: %w", dev.Name, err))
		return
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		a.fail(fmt.Errorf("mic: cannot start input stream: %w", err))
		return
	}

	a.stream = stream
	a.analyser = audio.NewAnalyser(len(buf), cfg.Smoothing, cfg.MinDecibels, cfg.MaxDecibels)
	close(a.ready)

	a.capture(buf)
}

// capture blocks on the stream for the rest of the process.
func (a *Acquisition) capture(buf []float32) {
	for {
		if err := a.stream.Read(); err != nil && !errors.Is(err, portaudio.InputOverflowed) {
			// Keep the last published level; the frame loop never waits on capture.
			time.Sleep(readRetryDelay)
			continue
		}
		a.analyser.Process(buf)
	}
}

// inputDevice returns the named input device, or the default one if name is empty.
func inputDevice(name string) (*portaudio.DeviceInfo, error) {
	if name == "" {
		dev, err := portaudio.DefaultInputDevice()
		if err != nil {
			return nil, fmt.Errorf("mic: no default input device: %w", err)
		}
		return dev, nil
	}

	devices, err := portaudio.Devices()
	if err != nil {
		return nil, fmt.Errorf("mic: cannot list devices: %w", err)
	}
	for _, d := range devices {
		if d.MaxInputChannels > 0 && strings.EqualFold(d.Name, name) {
			return d, nil
		}
	}
	return nil, fmt.Errorf("mic: input device %q not found", name)
}

// Device describes one capture-capable device.
type Device struct {
	Name              string
	HostAPI           string
	MaxInputChannels  int
	DefaultSampleRate float64
	Default           bool
}

// Devices lists input devices. It initializes portaudio for the call only.
func Devices() ([]Device, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("mic: cannot initialize portaudio: %w", err)
	}
	defer portaudio.Terminate()

	infos, err := portaudio.Devices()
	if err != nil {
		return nil, fmt.Errorf("mic: cannot list devices: %w", err)
	}
	def, _ := portaudio.DefaultInputDevice()

	var out []Device
	for _, d := range infos {
		if d.MaxInputChannels == 0 {
			continue
		}
		dev := Device{
			Name:              d.Name,
			MaxInputChannels:  d.MaxInputChannels,
			DefaultSampleRate: d.DefaultSampleRate,
			Default:           def != nil && def.Name == d.Name,
		}
		if d.HostApi != nil {
			dev.HostAPI = d.HostApi.Name
		}
		out = append(out, dev)
	}
	return out, nil
}
