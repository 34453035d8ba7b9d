package runner

import (
	"testing"

	"github.com/vovakirdan/endless-runner/internal/config"
	"github.com/vovakirdan/endless-runner/internal/core"
)

// rngFunc adapts a function to the RNG interface.
type rngFunc func(lo, hi int) int

func (f rngFunc) IntRange(lo, hi int) int { return f(lo, hi) }

// lowRNG always draws the bottom of the range: every roll with a non-zero
// chance succeeds and every range yields its minimum.
var lowRNG = rngFunc(func(lo, _ int) int { return lo })

// highRNG always draws the top of the range: rolls below 1.0 fail.
var highRNG = rngFunc(func(_, hi int) int { return hi })

// quietConfig returns the default tuning with random hazards and enemies off.
func quietConfig() config.RunnerConfig {
	cfg := config.DefaultRunnerConfig()
	cfg.Spawn.Hazard.Chance = 0
	cfg.Spawn.Enemy.Chance = 0
	return cfg
}

func newTestSimulator(t *testing.T, cfg config.RunnerConfig, opts ...Option) *Simulator {
	t.Helper()
	s, err := New(cfg, 1, opts...)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return s
}

func idle() core.InputFrame {
	return core.NewInputFrame()
}

func countEvents(events []Event, kind EventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}
