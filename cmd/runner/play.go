package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/endless-runner/internal/core"
	"github.com/vovakirdan/endless-runner/internal/platform/tui"
	"github.com/vovakirdan/endless-runner/internal/storage"
)

var flagNoRecord bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a run in the terminal. The run is recorded to the journal when
you quit or restart.

Controls:
  ←/a →/d    - Move
  Space/↑    - Jump
  P/Esc      - Pause
  R          - Restart
  ?          - Help
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - More health, slow speed-up, spawn chances start low
  normal - Spawn chances start at 30% of the ramp
  hard   - Less health, faster world, spawn chances start at 70%
  fixed  - No spawn ramp

Examples:
  runner play
  runner play --difficulty easy
  runner play --seed 42
  runner play --config ./my-runner.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagNoRecord, "no-record", false, "Do not record runs to the journal")
}

func runPlay(_ *cobra.Command, _ []string) {
	logger, err := newLogger("runner")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, preset, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	var store *storage.Store
	if !flagNoRecord {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			logger.Warn("could not open run journal", "error", err)
			// Continue without recording - game still works
			store = nil
		}
	}

	runErr := tui.Run(rt, tui.HostOptions{
		Config:     cfg,
		Difficulty: string(preset),
		Store:      store,
		Logger:     logger,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
