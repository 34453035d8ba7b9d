package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/endless-runner/internal/storage"
)

var (
	flagLimit  int
	flagDelete int64
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recorded runs",
	Long: `Display recorded runs, newest first. Use 'runner replay <id>' to
re-simulate one.

Examples:
  runner runs
  runner runs --limit 50
  runner runs --delete 12`,
	Args: cobra.NoArgs,
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	runsCmd.Flags().Int64Var(&flagDelete, "delete", 0, "Delete the run with this ID")
}

func runRuns(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run journal: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagDelete != 0 {
		if err := store.DeleteRun(flagDelete); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Deleted run %d\n", flagDelete)
		return
	}

	runs, err := store.ListRuns(flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}

	fmt.Println("Recorded Runs")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'runner play' or 'runner sim --record' to record one!")
		return
	}

	fmt.Printf("  %-5s  %-8s  %-7s  %-8s  %-20s  %s\n", "ID", "Ticks", "Deaths", "Level", "Seed", "Date")
	fmt.Printf("  %-5s  %-8s  %-7s  %-8s  %-20s  %s\n", "--", "-----", "------", "-----", "----", "----")

	for _, r := range runs {
		level := r.Difficulty
		if level == "" {
			level = "-"
		}
		fmt.Printf("  %-5d  %-8d  %-7d  %-8s  %-20d  %s\n",
			r.ID, r.Ticks, r.Deaths, level, r.Seed, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.Stats(); err == nil {
		fmt.Println()
		fmt.Printf("Runs: %d  Ticks recorded: %d  Deaths: %d\n",
			stats.Runs, stats.Frames, stats.Deaths)
	}
}
