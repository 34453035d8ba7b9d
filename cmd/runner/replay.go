package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/endless-runner/internal/games/runner"
	"github.com/vovakirdan/endless-runner/internal/replay"
	"github.com/vovakirdan/endless-runner/internal/storage"
)

var replayCmd = &cobra.Command{
	Use:   "replay <id>",
	Short: "Re-simulate a recorded run",
	Long: `Load a run from the journal and simulate it again from its seed,
config and input trace. The replayed result must match the recording; a
mismatch means the simulation is no longer deterministic for that run.

Examples:
  runner replay 3
  runner replay 3 --log-level info`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func runReplay(_ *cobra.Command, args []string) {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid run id %q\n", args[0])
		os.Exit(1)
	}

	logger, err := newLogger("replay")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run journal: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	rec, err := replay.Load(store, id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading run: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'runner runs' to see recorded runs.")
		os.Exit(1)
	}

	start := time.Now()
	got, _, err := replay.Run(rec.Config, rec.Seed, rec.Trace, runner.WithLogger(logger))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error replaying run: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Run %d (seed %d, %d frames) replayed in %s\n",
		rec.ID, rec.Seed, rec.Trace.Len(), time.Since(start).Round(time.Millisecond))
	fmt.Printf("  %-12s  %-10s  %s\n", "", "Recorded", "Replayed")
	fmt.Printf("  %-12s  %-10d  %d\n", "Ticks", rec.Result.Ticks, got.Ticks)
	fmt.Printf("  %-12s  %-10d  %d\n", "Deaths", rec.Result.Deaths, got.Deaths)
	fmt.Printf("  %-12s  %-10d  %d\n", "Best score", rec.Result.BestScore, got.BestScore)
	fmt.Printf("  %-12s  %-10d  %d\n", "Final score", rec.Result.FinalScore, got.FinalScore)

	if got != rec.Result {
		fmt.Fprintln(os.Stderr, "Replay diverged from the recording")
		os.Exit(1)
	}
	fmt.Println("Replay matches the recording.")
}
