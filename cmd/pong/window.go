//go:build raylib

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/termpong/internal/config"
	"github.com/vovakirdan/termpong/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a resizable desktop window with Start, Pause, Reset and
Expand buttons. Keys are the same as in the terminal; F11 toggles
fullscreen.

Examples:
  pong window
  pong window --expanded --record`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().BoolVar(&flagRecord, "record", false, "Record the game into the replay database")
	windowCmd.Flags().StringVar(&flagTelemetry, "telemetry", "", "Write per-rally statistics to this CSV file")
	windowCmd.Flags().BoolVar(&flagExpanded, "expanded", false, "Start with the field expanded to the window")
	rootCmd.AddCommand(windowCmd)
}

func runWindow(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	cfg, preset, err := loadGameConfig(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	config.ApplyPongPreset(&cfg, preset)

	s, err := newSession(cfg, sessionSeed(), flagRecord, flagTelemetry, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	window.Run(s.driver, window.Options{
		Title:    "Pong",
		FPS:      flagFPS,
		Expanded: flagExpanded,
		Logger:   logger,
	})

	id, err := s.finish(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not save replay: %v\n", err)
	}
	if id != 0 {
		fmt.Printf("Replay saved as #%d\n", id)
	}
}
