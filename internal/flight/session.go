// Package flight is the voice-controlled flight engine: calibration, flap
// detection, bird physics, obstacles, collisions, scoring and the session
// state machine that steps them once per frame.
//
// The package performs no I/O. Hosts call Session.Step from their frame
// scheduler and react to the returned events.
package flight

import (
	"strings"

	"github.com/vovakirdan/shoutbird/internal/audio"
	"github.com/vovakirdan/shoutbird/internal/config"
	"github.com/vovakirdan/shoutbird/internal/core"
)

// wingFrames is the number of frames in the bird's wing cycle.
const wingFrames = 4

// Viewport is the visible area in world units.
type Viewport struct {
	Width  float64
	Height float64
}

// ViewportFor returns the world-sized viewport of a terminal screen.
func ViewportFor(rc core.RuntimeConfig) Viewport {
	w, h := rc.WorldSize()
	return Viewport{Width: w, Height: h}
}

// Phase is the session's position in its lifecycle.
type Phase int

const (
	PhaseCalibratingSilence Phase = iota
	PhaseCalibratingShout
	PhasePlaying
	PhaseEndedFalling
	PhaseEndedGrounded
	PhaseFinished
)

// String returns a short name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseCalibratingSilence:
		return "calibrating-silence"
	case PhaseCalibratingShout:
		return "calibrating-shout"
	case PhasePlaying:
		return "playing"
	case PhaseEndedFalling:
		return "ended-falling"
	case PhaseEndedGrounded:
		return "ended-grounded"
	case PhaseFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Calibrating reports whether the phase is one of the calibration stages.
func (p Phase) Calibrating() bool {
	return p == PhaseCalibratingSilence || p == PhaseCalibratingShout
}

// Events is the set of things that happened during one Step.
type Events uint16

const (
	EventFlap Events = 1 << iota
	EventPoint
	EventHit
	EventGrounded
	EventCalibrated
	EventSplashShown
	EventFinished
)

var eventNames = []string{"flap", "point", "hit", "grounded", "calibrated", "splash", "finished"}

// Has reports whether all of the given events are set.
func (e Events) Has(x Events) bool {
	return e&x == x
}

// String lists the set events separated by '|'.
func (e Events) String() string {
	var parts []string
	for i, name := range eventNames {
		if e&(1<<i) != 0 {
			parts = append(parts, name)
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

// State is the mutable record of one play-through.
type State struct {
	Distance   float64
	FrameCount int
	Score      int
	Ended      bool
	Grounded   bool
}

// StepResult reports the outcome of one frame.
type StepResult struct {
	Phase      Phase
	Events     Events
	Amplitude  float64 // sample read this frame, 0 if none was read
	Score      int
	FinalScore int // valid when Done
	Done       bool
}

// Session is one play-through, from calibration to the final score.
// It is not safe for concurrent use; a host steps it from a single goroutine.
type Session struct {
	cfg config.Flight
	vp  Viewport

	source     audio.AmplitudeSource
	calibrator *Calibrator
	detector   *FlapDetector
	physics    Physics
	obstacles  *ObstacleGenerator
	collision  CollisionEngine
	scorer     *ScoreTracker

	bird      Bird
	state     State
	phase     Phase
	amplitude float64
	scroll    float64
	anim      int
	done      chan int
}

// NewSession creates a session waiting for an amplitude source.
func NewSession(cfg config.Flight, vp Viewport, seed int64) *Session {
	obstacles := NewObstacleGenerator(cfg.Obstacles, cfg.Bird.Height, vp, seed)
	return &Session{
		cfg:        cfg,
		vp:         vp,
		calibrator: NewCalibrator(cfg.Calibration),
		physics:    NewPhysics(cfg.Physics),
		obstacles:  obstacles,
		collision:  NewCollisionEngine(vp, cfg.Obstacles.GroundHeight, cfg.Obstacles.PipeWidth),
		scorer:     NewScoreTracker(obstacles.Period(), vp.Width, cfg.Bird.X),
		bird: Bird{
			X:      cfg.Bird.X,
			Y:      (vp.Height - cfg.Obstacles.GroundHeight - cfg.Bird.Height) / 2,
			Width:  cfg.Bird.Width,
			Height: cfg.Bird.Height,
		},
		done: make(chan int, 1),
	}
}

// AttachSource supplies the amplitude source once it becomes available.
// Until then Step only animates.
func (s *Session) AttachSource(src audio.AmplitudeSource) {
	s.source = src
}

// Step advances the session by exactly one frame.
func (s *Session) Step() StepResult {
	if s.phase == PhaseFinished {
		return s.result(0)
	}

	s.amplitude = 0
	s.anim++
	s.scroll += s.cfg.Physics.ScrollSpeed

	var ev Events
	switch s.phase {
	case PhaseCalibratingSilence, PhaseCalibratingShout:
		ev = s.calibrate()
	case PhasePlaying:
		ev = s.play()
	case PhaseEndedFalling:
		ev = s.fall()
	case PhaseEndedGrounded:
		s.phase = PhaseFinished
		s.done <- s.state.Score
		close(s.done)
		ev = EventFinished
	}
	return s.result(ev)
}

func (s *Session) calibrate() Events {
	if s.source == nil {
		return 0
	}
	s.amplitude = audio.Clamp01(s.source.Sample())

	var ev Events
	done := s.calibrator.Feed(s.amplitude)
	if s.phase == PhaseCalibratingSilence && s.calibrator.Stage() != StageSilence {
		s.phase = PhaseCalibratingShout
		ev |= EventSplashShown
	}
	if done {
		s.detector = NewFlapDetector(s.calibrator.StaticThreshold())
		s.phase = PhasePlaying
		ev |= EventCalibrated
	}
	return ev
}

func (s *Session) play() Events {
	s.amplitude = audio.Clamp01(s.source.Sample())
	s.state.FrameCount++

	var ev Events
	if s.detector.Detect(s.amplitude) {
		s.physics.Flap(&s.bird)
		ev |= EventFlap
	}
	s.physics.Integrate(&s.bird)
	s.physics.Ease(&s.bird, false, false)

	prev := s.state.Distance
	s.state.Distance += s.cfg.Physics.ScrollSpeed
	s.obstacles.Spawn(prev, s.state.Distance)
	s.obstacles.Retire(s.state.Distance)

	switch {
	case s.collision.Ground(&s.bird):
		s.state.Ended = true
		s.state.Grounded = true
		s.phase = PhaseEndedGrounded
		return ev | EventGrounded
	case s.collision.Obstacle(s.bird, s.obstacles.Obstacles(), s.state.Distance):
		s.state.Ended = true
		s.phase = PhaseEndedFalling
		return ev | EventHit
	}

	if s.scorer.Advance(prev, s.state.Distance) > 0 {
		s.state.Score = s.scorer.Score()
		ev |= EventPoint
	}
	return ev
}

// fall runs the death fall after an obstacle hit: gravity still pulls the
// bird down, while flaps, spawning, scoring and obstacle checks are frozen.
func (s *Session) fall() Events {
	s.state.FrameCount++
	s.physics.Integrate(&s.bird)
	if s.collision.Ground(&s.bird) {
		s.state.Grounded = true
		s.phase = PhaseEndedGrounded
		return EventGrounded
	}
	s.physics.Ease(&s.bird, true, false)
	return 0
}

func (s *Session) result(ev Events) StepResult {
	r := StepResult{
		Phase:     s.phase,
		Events:    ev,
		Amplitude: s.amplitude,
		Score:     s.state.Score,
		Done:      s.phase == PhaseFinished,
	}
	if r.Done {
		r.FinalScore = s.state.Score
	}
	return r
}

// Done returns a channel that receives the final score once the session
// finishes, and is closed afterwards.
func (s *Session) Done() <-chan int {
	return s.done
}

// Phase returns the current phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Bird returns a copy of the bird state.
func (s *Session) Bird() Bird {
	return s.bird
}

// Obstacles returns the live obstacles. The slice is owned by the session.
func (s *Session) Obstacles() []Obstacle {
	return s.obstacles.Obstacles()
}

// State returns a copy of the session record.
func (s *Session) State() State {
	return s.state
}

// Viewport returns the session's viewport.
func (s *Session) Viewport() Viewport {
	return s.vp
}

// GroundY returns the world y of the top of the ground.
func (s *Session) GroundY() float64 {
	return s.collision.GroundY()
}

// PipeWidth returns the obstacle width in world units.
func (s *Session) PipeWidth() float64 {
	return s.cfg.Obstacles.PipeWidth
}

// Thresholds returns the detector thresholds, zero until calibrated.
func (s *Session) Thresholds() Thresholds {
	if s.detector == nil {
		return Thresholds{}
	}
	return s.detector.Thresholds()
}

// Calibrator exposes calibration progress.
func (s *Session) Calibrator() *Calibrator {
	return s.calibrator
}

// SplashVisible reports whether the "shout now" prompt should be shown.
func (s *Session) SplashVisible() bool {
	return s.phase == PhaseCalibratingShout
}

// WingFrame returns the bird's wing animation frame.
func (s *Session) WingFrame() int {
	return (s.anim / s.cfg.Bird.TicksPerFrame) % wingFrames
}

// Scroll returns the background scroll offset in world units.
func (s *Session) Scroll() float64 {
	return s.scroll
}

// Meter returns the last amplitude relative to the static threshold, scaled
// so that the threshold sits at one half. It is zero before calibration.
func (s *Session) Meter() float64 {
	static := s.Thresholds().Static
	if static <= 0 || s.phase != PhasePlaying {
		return 0
	}
	return s.amplitude / static * 0.5
}
