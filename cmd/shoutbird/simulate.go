package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/shoutbird/internal/audio"
	"github.com/vovakirdan/shoutbird/internal/core"
	"github.com/vovakirdan/shoutbird/internal/flight"
	"github.com/vovakirdan/shoutbird/internal/platform/tui"
)

var (
	flagSamples   string
	flagMaxFrames int
	flagWidth     int
	flagHeight    int
	flagTail      float64
	flagShow      bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless session on recorded amplitudes",
	Long: `Feed amplitude samples from a file into a session, one per frame, and
print the calibration thresholds and the final score.

The file holds one sample in [0,1] per line; '#' starts a comment. After the
file runs out the session keeps receiving --tail. A session that never
calibrates stops at --max-frames.

Examples:
  shoutbird simulate --samples run.txt
  shoutbird simulate --samples run.txt --seed 7 --show`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().StringVar(&flagSamples, "samples", "", "File with one amplitude sample per line")
	simulateCmd.Flags().IntVar(&flagMaxFrames, "max-frames", 100000, "Stop after this many frames")
	simulateCmd.Flags().IntVar(&flagWidth, "width", 80, "Screen width in columns")
	simulateCmd.Flags().IntVar(&flagHeight, "height", 22, "Screen height in rows")
	simulateCmd.Flags().Float64Var(&flagTail, "tail", 0, "Sample used after the file runs out")
	simulateCmd.Flags().BoolVar(&flagShow, "show", false, "Print the last frame")
	//nolint:errcheck // flag exists
	simulateCmd.MarkFlagRequired("samples")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	cfg, source, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	logger.Debug("config loaded", "source", source)

	if flagWidth <= 0 || flagHeight <= 0 {
		return fmt.Errorf("screen size must be positive, got %dx%d", flagWidth, flagHeight)
	}

	f, err := os.Open(flagSamples)
	if err != nil {
		return fmt.Errorf("cannot open samples: %w", err)
	}
	samples, err := audio.ReadScript(f)
	f.Close()
	if err != nil {
		return err
	}

	rc := core.RuntimeConfig{
		ScreenW: flagWidth,
		ScreenH: flagHeight,
		Seed:    flagSeed,
		CellW:   cfg.Display.CellW,
		CellH:   cfg.Display.CellH,
	}
	src := audio.NewScriptedSource(samples...)
	src.Tail = flagTail

	s := flight.NewSession(cfg.Flight, flight.ViewportFor(rc), rc.Seed)
	s.AttachSource(src)

	frames := 0
	for frames < flagMaxFrames {
		r := s.Step()
		frames++
		tui.LogEvents(logger, s, r)
		if r.Done {
			break
		}
	}

	if flagShow {
		screen := core.NewScreen(rc.ScreenW, rc.ScreenH)
		flight.Render(screen, s, rc)
		fmt.Println(screen.String())
	}

	cal := s.Calibrator()
	fmt.Printf("samples:          %d (%d unused)\n", len(samples), max(src.Remaining(), 0))
	fmt.Printf("frames:           %d\n", frames)
	fmt.Printf("silent threshold: %.4f\n", cal.SilentThreshold())
	fmt.Printf("static threshold: %.4f\n", s.Thresholds().Static)

	select {
	case score := <-s.Done():
		fmt.Printf("final score:      %d\n", score)
	default:
		fmt.Printf("no final score, stopped in phase %s\n", s.Phase())
	}
	return nil
}
