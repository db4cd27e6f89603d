package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/shoutbird/internal/audio/mic"
)

var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "List audio input devices",
	Long: `Shows the capture devices portaudio can see. Put a device name in
audio.device to use it instead of the default input.`,
	Args: cobra.NoArgs,
	RunE: runDevices,
}

func runDevices(cmd *cobra.Command, args []string) error {
	devices, err := mic.Devices()
	if err != nil {
		return err
	}

	if len(devices) == 0 {
		fmt.Println("No input devices found.")
		return nil
	}

	fmt.Println("Input devices:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, d := range devices {
		if len(d.Name) > maxNameLen {
			maxNameLen = len(d.Name)
		}
	}

	fmt.Printf("    %-*s  %-8s  %8s  %s\n", maxNameLen, "Name", "Channels", "Rate", "Host API")
	fmt.Printf("    %-*s  %-8s  %8s  %s\n", maxNameLen, "----", "--------", "----", "--------")
	for _, d := range devices {
		marker := "  "
		if d.Default {
			marker = "* "
		}
		fmt.Printf("  %s%-*s  %-8d  %8.0f  %s\n", marker, maxNameLen, d.Name, d.MaxInputChannels, d.DefaultSampleRate, d.HostAPI)
	}

	fmt.Println()
	fmt.Println("* marks the default input.")
	return nil
}
