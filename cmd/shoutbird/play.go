package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/shoutbird/internal/audio/mic"
	"github.com/vovakirdan/shoutbird/internal/config"
	"github.com/vovakirdan/shoutbird/internal/core"
	"github.com/vovakirdan/shoutbird/internal/platform/tui"
)

var (
	flagMute    bool
	flagLogFile string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Calibrate and play",
	Long: `Start a session in the terminal.

The session first measures silence (stay quiet), then waits for one shout.
Once calibrated, each sharp shout makes the bird flap.

Controls:
  Space/Up   - Shout (only with --input keyboard)
  R          - Play again (after the final score)
  Ctrl+S     - Save a screenshot to ~/.shoutbird/screenshots
  ?          - Show all keys
  Q/Ctrl+C   - Quit

Resizing the terminal takes effect on the next session; until then the
running session is clipped to the new size.

The game owns the terminal, so logs go to ~/.shoutbird/shoutbird.log
unless --log-file says otherwise.

Examples:
  shoutbird play
  shoutbird play --input keyboard --mute
  shoutbird play --seed 42 --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&flagMute, "mute", false, "Disable audio cues")
	cmd.Flags().StringVar(&flagLogFile, "log-file", "", "Log file (default ~/.shoutbird/shoutbird.log)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, source, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logFile, err := openLogFile(flagLogFile)
	if err != nil {
		return err
	}
	defer logFile.Close()

	logger, err := newLogger(logFile)
	if err != nil {
		return err
	}
	logger.Info("config loaded", "source", source, "input", cfg.Audio.Input)

	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	opts := tui.Options{
		Config: cfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  max(height-tui.StatusLines, 1),
			TickRate: cfg.Display.TickRate,
			Seed:     flagSeed,
			CellW:    cfg.Display.CellW,
			CellH:    cfg.Display.CellH,
		},
		Logger: logger,
		Cues:   openCues(cfg.Audio, flagMute, logger),
	}
	if cfg.Audio.Input == config.InputMic {
		logger.Info("requesting microphone", "device", cfg.Audio.Device)
		opts.Microphone = mic.Acquire(cfg.Audio)
	}

	res, err := tui.Run(opts)
	if err != nil {
		return err
	}
	if res.Finished {
		fmt.Printf("Final score: %d\n", res.Score)
	}
	return nil
}

// openLogFile opens the play log for appending, creating its directory.
func openLogFile(path string) (*os.File, error) {
	if path == "" {
		dir, err := config.StateDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(dir, "shoutbird.log")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, nil
}
