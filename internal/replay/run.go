package replay

import (
	"fmt"

	"github.com/vovakirdan/endless-runner/internal/config"
	"github.com/vovakirdan/endless-runner/internal/games/runner"
)

// Result summarizes a simulated run.
type Result struct {
	Ticks      int // Simulated ticks, excluding paused ones
	FinalScore int // Score at the end of the trace
	BestScore  int // Highest score reached, including before deaths
	Deaths     int
}

// Observe folds one tick of a run into r.
func (r *Result) Observe(sim *runner.Simulator, step runner.StepResult) {
	for _, ev := range step.Events {
		if ev.Kind == runner.EventGameOver {
			r.Deaths++
			r.BestScore = max(r.BestScore, ev.Score)
		}
	}
	r.Ticks = sim.Ticks()
	r.FinalScore = step.State.Score
	r.BestScore = max(r.BestScore, r.FinalScore)
}

// Run re-simulates trace from a fresh simulator and returns the result along
// with the simulator in its final state.
func Run(cfg config.RunnerConfig, seed int64, trace *Trace, opts ...runner.Option) (Result, *runner.Simulator, error) {
	sim, err := runner.New(cfg, seed, opts...)
	if err != nil {
		return Result{}, nil, fmt.Errorf("replay: %w", err)
	}

	var res Result
	for _, f := range trace.Frames() {
		res.Observe(sim, sim.Tick(f))
	}
	return res, sim, nil
}
