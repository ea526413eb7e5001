package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/termpong/internal/config"
	"github.com/vovakirdan/termpong/internal/core"
	"github.com/vovakirdan/termpong/internal/platform/tui"
)

var (
	flagRecord    bool
	flagTelemetry string
	flagExpanded  bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a local two-player game",
	Long: `Start a game for two players sharing the keyboard.

Controls (default bindings, see 'pong config'):
  W/S        - Left paddle
  Up/Down    - Right paddle
  Space      - Serve / start
  Enter      - Start
  P/Esc      - Pause
  R          - Reset scores
  F          - Toggle expanded field
  Ctrl+S     - Save screenshot
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Slower ball, gentle speed-up
  normal - Configured values
  hard   - Faster ball, shorter paddles

Examples:
  pong play
  pong play --difficulty hard
  pong play --expanded
  pong play --record --telemetry ./rallies.csv
  pong play --config ./my-pong.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagRecord, "record", false, "Record the game into the replay database")
	playCmd.Flags().StringVar(&flagTelemetry, "telemetry", "", "Append per-rally statistics to this CSV file")
	playCmd.Flags().BoolVar(&flagExpanded, "expanded", false, "Start with the field expanded to the terminal")
}

func runPlay(_ *cobra.Command, _ []string) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: play needs an interactive terminal")
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

	if err := playGame(cfg, preset, flagExpanded, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}

// playGame runs one game in the terminal and stores its recording.
func playGame(cfg config.PongConfig, preset config.DifficultyPreset, expanded bool, logger *log.Logger) error {
	config.ApplyPongPreset(&cfg, preset)

	s, err := newSession(cfg, sessionSeed(), flagRecord, flagTelemetry, logger)
	if err != nil {
		return err
	}

	rt := core.RuntimeConfig{
		TickRate: flagFPS,
		Seed:     s.seed,
		Expanded: expanded,
	}
	runErr := tui.Run(s.driver, rt, tui.WithLogger(logger))

	id, err := s.finish(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not save replay: %v\n", err)
	}

	score := s.driver.Game().Score()
	fmt.Printf("Final score: %d - %d\n", score.Left, score.Right)
	if id != 0 {
		fmt.Printf("Replay saved as #%d (watch with 'pong replay %d')\n", id, id)
	}
	return runErr
}
