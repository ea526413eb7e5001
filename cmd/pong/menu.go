package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/termpong/internal/platform/tui"
	"github.com/vovakirdan/termpong/internal/pong"
	"github.com/vovakirdan/termpong/internal/replay"
	"github.com/vovakirdan/termpong/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start pong with a title menu",
	Long: `Start pong in interactive menu mode.

Pick a difficulty with the arrow keys, then play normally or with the
field expanded to the terminal. After a game ends you return to the menu.
Recorded games can be browsed and watched from the Replays entry.

Controls:
  Up/Down/j/k  - Navigate menu
  Left/Right   - Change difficulty
  Enter/Space  - Select
  Q            - Quit

Examples:
  pong menu
  pong menu --record
  pong menu --fps 30 --db ./replays.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func init() {
	menuCmd.Flags().BoolVar(&flagRecord, "record", false, "Record games into the replay database")
	menuCmd.Flags().StringVar(&flagTelemetry, "telemetry", "", "Append per-rally statistics to this CSV file")
}

func runMenu(_ *cobra.Command, _ []string) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: menu needs an interactive terminal")
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(io.Discard)
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

	// The browser needs the store for the whole menu session.
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open replay database: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	for {
		result, err := tui.RunMenu(preset, store != nil)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}
		preset = result.Difficulty

		switch result.Choice {
		case tui.ChoicePlay, tui.ChoicePlayExpanded:
			if err := playGame(cfg, preset, result.Choice == tui.ChoicePlayExpanded, logger); err != nil {
				fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			}
		case tui.ChoiceReplays:
			if !browseReplays(store) {
				return
			}
		default:
			return
		}
	}
}

// browseReplays runs the replay browser until the viewer goes back to the
// menu (true) or quits (false).
func browseReplays(store *storage.Store) bool {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	for {
		res, err := tui.RunReplays(store, width, height)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return false
		}
		if res.Selected == 0 {
			return res.Back
		}

		rep, err := store.Replay(res.Selected)
		if err != nil || rep == nil {
			fmt.Fprintf(os.Stderr, "Error: cannot load replay %d: %v\n", res.Selected, err)
			continue
		}
		player, err := replay.NewPlayer(rep, time.Now(), pong.Hooks{})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}
		if err := tui.RunPlayback(player, flagFPS); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return false
		}
	}
}
