package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/shoutbird/internal/audio"
	"github.com/vovakirdan/shoutbird/internal/audio/sfx"
	"github.com/vovakirdan/shoutbird/internal/config"
	"github.com/vovakirdan/shoutbird/internal/core"
	"github.com/vovakirdan/shoutbird/internal/flight"
)

// StatusLines is the number of terminal rows below the game screen.
const StatusLines = 2

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	shoutStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true)
)

// Microphone is a pending microphone acquisition.
type Microphone interface {
	Ready() <-chan struct{}
	Failed() <-chan struct{}
	Source() audio.AmplitudeSource
	Err() error
}

// Options configures a game screen.
type Options struct {
	Config     config.Config
	Runtime    core.RuntimeConfig // screen size excludes the status lines
	Logger     *log.Logger
	Cues       *sfx.Bank
	Microphone Microphone // required unless the keyboard is the input
}

// Result is what a finished program reports to its caller.
type Result struct {
	Score    int  // final score of the last finished session
	Finished bool // whether any session finished
	Sessions int
}

// micReadyMsg delivers the live analyser once the microphone is open.
type micReadyMsg struct {
	source audio.AmplitudeSource
}

// micFailedMsg reports why the microphone could not be opened.
type micFailedMsg struct {
	err error
}

// Model is the Bubble Tea model running flight sessions.
type Model struct {
	cfg     config.Config
	runtime core.RuntimeConfig
	logger  *log.Logger
	cues    *sfx.Bank

	session *flight.Session
	screen  *core.Screen
	last    flight.StepResult
	result  Result

	source   audio.AmplitudeSource
	keyboard *audio.KeySource
	mic      Microphone

	keys     KeyMap
	help     help.Model
	spinner  spinner.Model
	meter    progress.Model
	quitting bool
}

// NewModel creates a model with a fresh session.
func NewModel(opts Options) Model {
	cfg := opts.Runtime
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	cues := opts.Cues
	if cues == nil {
		cues = sfx.Silent()
	}

	keyboardInput := opts.Config.Audio.Input == config.InputKeyboard
	h := help.New()
	h.ShowAll = false

	m := Model{
		cfg:     opts.Config,
		runtime: cfg,
		logger:  logger,
		cues:    cues,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		keys:    DefaultKeyMap(keyboardInput),
		help:    h,
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(shoutStyle),
		),
		meter: progress.New(
			progress.WithSolidFill("196"),
			progress.WithoutPercentage(),
			progress.WithWidth(24),
		),
	}

	if keyboardInput {
		m.keyboard = &audio.KeySource{}
		m.source = m.keyboard
	} else {
		m.mic = opts.Microphone
	}
	m.newSession()
	return m
}

// newSession starts a session sized to the current screen, reusing the
// amplitude source of earlier sessions.
func (m *Model) newSession() {
	seed := m.runtime.Seed + int64(m.result.Sessions)
	m.session = flight.NewSession(m.cfg.Flight, flight.ViewportFor(m.runtime), seed)
	if m.source != nil {
		m.session.AttachSource(m.source)
	}
	m.last = flight.StepResult{Phase: m.session.Phase()}
	m.keys.Restart.SetEnabled(false)
	m.logger.Debug("session started", "seed", seed, "viewport", fmt.Sprintf("%vx%v", m.session.Viewport().Width, m.session.Viewport().Height))
}

// Init starts the frame loop, the spinner and, in microphone mode, waits for
// the microphone.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd(m.runtime.TickRate), m.spinner.Tick}
	if m.mic != nil {
		cmds = append(cmds, waitForMic(m.mic))
	}
	return tea.Batch(cmds...)
}

// waitForMic blocks in a command goroutine until acquisition settles.
func waitForMic(mic Microphone) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-mic.Ready():
			return micReadyMsg{source: mic.Source()}
		case <-mic.Failed():
			return micFailedMsg{err: mic.Err()}
		}
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case micReadyMsg:
		m.source = msg.source
		m.session.AttachSource(msg.source)
		m.logger.Info("microphone ready")
		return m, nil

	case micFailedMsg:
		// The session stays in calibration; only the log says why.
		m.logger.Error("microphone unavailable", "err", msg.err)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Shout):
		m.keyboard.Press()
	case key.Matches(msg, m.keys.Restart):
		m.newSession()
		return m, tickCmd(m.runtime.TickRate)
	}
	return m, nil
}

// handleResize resizes the screen buffer. The running session keeps its
// viewport; the next session uses the new size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = max(msg.Height-StatusLines, 1)
	m.screen.Resize(m.runtime.ScreenW, m.runtime.ScreenH)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick steps the session once and keeps ticking until it finishes.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.last.Done {
		return m, nil
	}

	prev := m.last.Phase
	r := m.session.Step()
	m.last = r

	PlayCues(m.cues, r.Events)
	LogEvents(m.logger, m.session, r)
	if r.Phase != prev {
		m.logger.Debug("phase", "from", prev, "to", r.Phase)
	}

	if r.Done {
		select {
		case score := <-m.session.Done():
			m.result.Score = score
		default:
			m.result.Score = r.FinalScore
		}
		m.result.Finished = true
		m.result.Sessions++
		m.keys.Restart.SetEnabled(true)
		return m, nil
	}
	return m, tickCmd(m.runtime.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	flight.Render(m.screen, m.session, m.runtime)

	dir, err := config.StateDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}
	dir = filepath.Join(dir, "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}

	path := filepath.Join(dir, fmt.Sprintf("shoutbird_%s.txt", time.Now().Format("20060102_150405")))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the game screen, the status line and the key help.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	flight.Render(m.screen, m.session, m.runtime)
	return RenderScreen(m.screen) + "\n" + m.statusLine() + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// statusLine describes the session phase under the game screen, with a hint
// while the terminal size differs from the running session's viewport.
func (m Model) statusLine() string {
	line := m.phaseLine()
	if m.session.Phase() != flight.PhaseFinished && m.session.Viewport() != flight.ViewportFor(m.runtime) {
		line += dimStyle.Render(resizeHint)
	}
	return line
}

// resizeHint is shown while the session is drawn clipped to a resized terminal.
const resizeHint = "  (new size applies next session)"

func (m Model) phaseLine() string {
	s := m.session
	switch phase := s.Phase(); phase {
	case flight.PhaseCalibratingSilence:
		if m.source == nil {
			return m.spinner.View() + statusStyle.Render(" waiting for microphone")
		}
		n := len(s.Calibrator().SilenceSamples())
		return m.spinner.View() + statusStyle.Render(fmt.Sprintf(" measuring silence %d/%d, stay quiet", n, m.cfg.Flight.Calibration.SilenceFrames))
	case flight.PhaseCalibratingShout:
		return m.spinner.View() + shoutStyle.Render(" now SHOUT!")
	case flight.PhasePlaying:
		return statusStyle.Render("voice ") + m.meter.ViewAs(core.ClampF(s.Meter(), 0, 1)) +
			statusStyle.Render(fmt.Sprintf("  score %d", s.State().Score))
	case flight.PhaseFinished:
		return statusStyle.Render(fmt.Sprintf("final score %d", m.result.Score))
	default:
		return statusStyle.Render(fmt.Sprintf("ouch! score %d", s.State().Score))
	}
}

// Run starts the Bubble Tea program and returns the last final score.
func Run(opts Options) (Result, error) {
	p := tea.NewProgram(NewModel(opts), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return Result{}, fmt.Errorf("tui: %w", err)
	}
	if m, ok := final.(Model); ok {
		return m.result, nil
	}
	return Result{}, nil
}
