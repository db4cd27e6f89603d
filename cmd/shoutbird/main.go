// shoutbird is a side-scrolling flying game controlled by the loudness of
// your voice.
//
// Usage:
//
//	shoutbird [play]                   - Calibrate the microphone and play
//	shoutbird simulate --samples FILE  - Run a session on recorded amplitudes
//	shoutbird devices                  - List audio input devices
//	shoutbird config                   - Print the effective configuration
//
// Global flags:
//
//	--config <path>    - Configuration file (default: search path)
//	--fps <rate>       - Frame rate (default: from config, 60)
//	--seed <value>     - RNG seed for gap placement (0 = time based)
//	--input <mode>     - mic or keyboard
//	--log-level <lvl>  - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/shoutbird/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagSeed     int64
	flagInput    string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shoutbird",
	Short: "Shoutbird - fly by shouting at your terminal",
	Long: `Shoutbird is a flappy-bird style game played with your voice.

A session first listens to the room to learn how quiet it is, then asks you
to shout once to learn how loud you are. After that every sharp shout makes
the bird flap. Terminals without a microphone can use --input keyboard and
the space bar.

Available commands:
  play      - Play (default)
  simulate  - Run a headless session on recorded amplitude samples
  devices   - List audio input devices
  config    - Print the effective configuration

Examples:
  shoutbird
  shoutbird play --input keyboard
  shoutbird simulate --samples run.txt
  shoutbird config > ~/.shoutbird/config.yaml`,
	Args:          cobra.NoArgs,
	RunE:          runPlay,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frame rate (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagInput, "input", "", "Amplitude input: mic or keyboard (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	addPlayFlags(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(devicesCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the process logger in the same shape everywhere.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "shoutbird",
		Level:           level,
	}), nil
}

// loadConfig loads the configuration and applies flag overrides.
func loadConfig(cmd *cobra.Command) (config.Config, string, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return cfg, source, err
	}
	flags := cmd.Flags()
	if flags.Changed("fps") && flagFPS > 0 {
		cfg.Display.TickRate = flagFPS
	}
	if flags.Changed("input") {
		cfg.Audio.Input = flagInput
	}
	return cfg, source, cfg.Validate()
}
