package replay

import (
	"fmt"

	"github.com/vovakirdan/endless-runner/internal/config"
	"github.com/vovakirdan/endless-runner/internal/storage"
)

// Recording is a run loaded back from the journal.
type Recording struct {
	ID         int64
	Seed       int64
	Difficulty string
	Config     config.RunnerConfig
	Trace      *Trace
	Result     Result
}

// Save writes a finished run to the journal and returns its ID.
func Save(store *storage.Store, cfg config.RunnerConfig, difficulty string, seed int64, trace *Trace, res Result) (int64, error) {
	if trace.Len() > MaxFrames {
		return 0, fmt.Errorf("replay: trace of %d frames exceeds %d", trace.Len(), MaxFrames)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return 0, fmt.Errorf("replay: %w", err)
	}

	return store.SaveRun(storage.RunRecord{
		Seed:       seed,
		Difficulty: difficulty,
		ConfigYAML: data,
		Trace:      trace.Encode(),
		Ticks:      res.Ticks,
		FinalScore: res.FinalScore,
		BestScore:  res.BestScore,
		Deaths:     res.Deaths,
	})
}

// Load reads a run with the configuration it was recorded under.
func Load(store *storage.Store, id int64) (*Recording, error) {
	rec, err := store.LoadRun(id)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Parse(rec.ConfigYAML)
	if err != nil {
		return nil, fmt.Errorf("replay: run %d: %w", id, err)
	}

	trace, err := Decode(rec.Trace)
	if err != nil {
		return nil, fmt.Errorf("replay: run %d: %w", id, err)
	}

	return &Recording{
		ID:         rec.ID,
		Seed:       rec.Seed,
		Difficulty: rec.Difficulty,
		Config:     cfg,
		Trace:      trace,
		Result: Result{
			Ticks:      rec.Ticks,
			FinalScore: rec.FinalScore,
			BestScore:  rec.BestScore,
			Deaths:     rec.Deaths,
		},
	}, nil
}
