package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/endless-runner/internal/games/runner"
	"github.com/vovakirdan/endless-runner/internal/replay"
	"github.com/vovakirdan/endless-runner/internal/storage"
)

var (
	flagTicks  int
	flagRecord bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless autopilot session",
	Long: `Simulate a run without a terminal UI. A simple autopilot steers the
player and every game over is logged. Useful for tuning configs and for
producing recordings to replay.

Examples:
  runner sim --ticks 36000
  runner sim --seed 7 --difficulty hard --log-level info
  runner sim --record`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 3600, "Number of ticks to simulate")
	simCmd.Flags().BoolVar(&flagRecord, "record", false, "Record the run to the journal")
}

func runSim(_ *cobra.Command, _ []string) {
	logger, err := newLogger("sim")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, preset, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	sim, err := runner.New(cfg, seed,
		runner.WithLogger(logger),
		runner.WithGameOverSink(func(g runner.GameOver) {
			logger.Debug("run ended", "score", g.FinalScore, "tick", g.Tick, "cause", g.Cause)
		}),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var (
		trace replay.Trace
		res   replay.Result
	)
	start := time.Now()
	for i := 0; i < flagTicks && !sim.State().GameOver; i++ {
		in := autopilot(sim.Snapshot())
		trace.Record(in)
		res.Observe(sim, sim.Tick(in))
	}
	elapsed := time.Since(start)

	fmt.Printf("Seed:        %d\n", seed)
	fmt.Printf("Ticks:       %d\n", res.Ticks)
	fmt.Printf("Deaths:      %d\n", res.Deaths)
	fmt.Printf("Best score:  %d\n", res.BestScore)
	fmt.Printf("Final score: %d\n", res.FinalScore)
	snap := sim.Snapshot()
	fmt.Printf("Entities:    %d live, %d retired\n", snap.Live, snap.Retired)
	fmt.Printf("Elapsed:     %s\n", elapsed.Round(time.Millisecond))

	if !flagRecord {
		return
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run journal: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	id, err := replay.Save(store, cfg, string(preset), seed, &trace, res)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error recording run: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Recorded as run %d\n", id)
}
