package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/termpong/internal/platform/tui"
	"github.com/vovakirdan/termpong/internal/pong"
	"github.com/vovakirdan/termpong/internal/replay"
	"github.com/vovakirdan/termpong/internal/storage"
)

var (
	flagReplayLimit int
	flagHeadless    bool
	flagDelete      bool
)

var replaysCmd = &cobra.Command{
	Use:   "replays",
	Short: "List recorded replays",
	Long: `Display the most recent replays in the database.

Record a game with 'pong play --record'.

Examples:
  pong replays
  pong replays --limit 50`,
	Args: cobra.NoArgs,
	Run:  runReplays,
}

var replayCmd = &cobra.Command{
	Use:   "replay <id>",
	Short: "Watch a recorded replay",
	Long: `Play a recorded game back in real time.

With --headless the replay is run as fast as possible and only the final
score is printed, which checks that the recording still reproduces.

Examples:
  pong replay 3
  pong replay 3 --headless
  pong replay 3 --delete`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func init() {
	replaysCmd.Flags().IntVar(&flagReplayLimit, "limit", 20, "Number of replays to list")
	replayCmd.Flags().BoolVar(&flagHeadless, "headless", false, "Run without a display and print the final state")
	replayCmd.Flags().BoolVar(&flagDelete, "delete", false, "Delete the replay instead of playing it")
}

func runReplays(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening replay database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	replays, err := store.Replays(flagReplayLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving replays: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Replays")
	fmt.Println()

	if len(replays) == 0 {
		fmt.Println("No replays recorded yet.")
		fmt.Println()
		fmt.Println("Play 'pong play --record' to record one!")
		return
	}

	fmt.Printf("  %-5s  %-16s  %-20s  %-8s  %s\n", "ID", "Date", "Seed", "Length", "Events")
	fmt.Printf("  %-5s  %-16s  %-20s  %-8s  %s\n", "--", "----", "----", "------", "------")
	for _, r := range replays {
		fmt.Printf("  %-5d  %-16s  %-20d  %-8s  %d\n",
			r.ID, r.CreatedAt.Format("2006-01-02 15:04"), r.Seed,
			r.Duration.Round(time.Second), r.EventCount)
	}
}

func runReplay(cmd *cobra.Command, args []string) {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		fmt.Fprintf(os.Stderr, "Error: invalid replay id %q\n", args[0])
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening replay database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagDelete {
		if err := store.DeleteReplay(id); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Deleted replay #%d\n", id)
		return
	}

	rep, err := store.Replay(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading replay: %v\n", err)
		os.Exit(1)
	}
	if rep == nil {
		fmt.Fprintf(os.Stderr, "Error: replay #%d not found\n", id)
		fmt.Fprintln(os.Stderr, "Run 'pong replays' to see recorded replays.")
		os.Exit(1)
	}

	player, err := replay.NewPlayer(rep, time.Now(), pong.Hooks{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if !flagHeadless {
		if err := tui.RunPlayback(player, flagFPS); err != nil {
			fmt.Fprintf(os.Stderr, "Error running playback: %v\n", err)
			os.Exit(1)
		}
		return
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	snap, err := player.Play(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "Error running replay: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Replay #%d: %d events over %s\n", rep.ID, rep.EventCount, rep.Duration.Round(time.Millisecond))
	fmt.Printf("Final score: %d - %d\n", snap.Score.Left, snap.Score.Right)
	fmt.Printf("State hash:  %016x\n", snap.Hash())
}
