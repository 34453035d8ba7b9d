package runner

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/endless-runner/internal/config"
	"github.com/vovakirdan/endless-runner/internal/core"
)

// StepResult is returned by Tick.
// Contains the updated run state and the events of this tick in order.
type StepResult struct {
	State  core.GameState
	Events []Event
}

// Simulator owns the world, the player and the session progression for one
// run and advances them once per Tick.
type Simulator struct {
	cfg        config.RunnerConfig
	seed       int64
	newRNG     func(seed int64) RNG
	difficulty *config.DifficultyManager

	world   *World
	player  *Player
	spawner *SpawnPolicy
	session SessionState

	ticks  int
	paused bool
	halted bool // Waiting for Restart after game over

	events    []Event
	respawned bool // A respawn happened this tick

	sink   func(GameOver)
	logger *log.Logger
}

// Option configures a Simulator.
type Option func(*Simulator)

// WithLogger sets the logger used for respawn and game-over diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(s *Simulator) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithGameOverSink registers a callback invoked on every game over.
func WithGameOverSink(fn func(GameOver)) Option {
	return func(s *Simulator) {
		s.sink = fn
	}
}

// WithRNG replaces the default seeded math/rand source.
func WithRNG(fn func(seed int64) RNG) Option {
	return func(s *Simulator) {
		if fn != nil {
			s.newRNG = fn
		}
	}
}

// New validates cfg and creates a simulator ready for its first tick.
func New(cfg config.RunnerConfig, seed int64, opts ...Option) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("runner: %w", err)
	}

	s := &Simulator{
		cfg:    cfg,
		newRNG: func(seed int64) RNG { return NewRNG(seed) },
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.Restart(seed)
	return s, nil
}

// Restart begins a new run with the given seed.
func (s *Simulator) Restart(seed int64) {
	s.seed = seed
	s.difficulty = config.NewDifficultyManager(s.cfg.Difficulty)
	s.world = NewWorld(s.cfg.World.Width, s.cfg.World.Height)
	s.player = NewPlayer(s.cfg)
	s.spawner = NewSpawnPolicy(s.cfg.Spawn, s.newRNG(seed), s.difficulty)
	s.session = NewSession(s.cfg.Progression)
	s.ticks = 0
	s.paused = false
	s.halted = false

	if s.cfg.Spawn.Platform.Runway {
		s.spawner.SeedRunway(s.world)
	}
}

// Tick advances the run by one step.
func (s *Simulator) Tick(in core.InputSource) StepResult {
	if s.halted {
		return StepResult{State: s.State()}
	}

	if in.Pressed(core.ActionPause) {
		s.paused = !s.paused
	}
	if s.paused {
		return StepResult{State: s.State()}
	}

	s.ticks++
	s.events = nil
	s.respawned = false

	s.applyInput(in)

	if ev := s.player.Update(); ev.Has(PlayerDied) {
		s.playerDied(CauseFall)
	}

	s.spawner.MaybeSpawnPlatform(s.world)
	s.spawner.MaybeSpawnHazard(s.world, s.session.Score, s.ticks)
	s.spawner.MaybeSpawnEnemy(s.world, s.session.Score, s.ticks)

	s.world.Advance(s.session.ScrollSpeed)
	s.world.RetireOffscreen()

	s.resolveCollisions()

	// A tick that ends in respawn leaves score and speed at their reset values.
	if !s.respawned {
		s.session.Advance(s.cfg.Progression)
	}

	return StepResult{State: s.State(), Events: s.events}
}

// applyInput moves the player for every held direction and jumps if asked.
func (s *Simulator) applyInput(in core.InputSource) {
	if in.Pressed(core.ActionLeft) {
		s.player.MoveLeft()
	}
	if in.Pressed(core.ActionRight) {
		s.player.MoveRight()
	}
	if in.Pressed(core.ActionJump) {
		s.player.Jump()
	}
}

// resolveCollisions lands the player on the first overlapping platform, then
// takes at most one hit per hazard or enemy category.
func (s *Simulator) resolveCollisions() {
	if i := FirstIntersecting(s.world.Platforms, s.player.Bounds()); i >= 0 {
		if s.player.Land(s.world.Platforms[i].Top()) {
			s.emit(EventLanded, CauseNone)
		}
	}

	if i := FirstIntersecting(s.world.Hazards, s.player.Bounds()); i >= 0 {
		s.world.RemoveHazard(i)
		s.hit(CauseHazard)
	}

	if i := FirstIntersecting(s.world.Enemies, s.player.Bounds()); i >= 0 {
		s.world.RemoveEnemy(i)
		s.hit(CauseEnemy)
	}
}

func (s *Simulator) hit(cause Cause) {
	s.emit(EventHit, cause)
	if ev := s.player.Hit(); ev.Has(PlayerDied) {
		s.playerDied(cause)
	}
}

// playerDied reports the game over with the score reached before the
// player's automatic respawn, then resets the session.
func (s *Simulator) playerDied(cause Cause) {
	over := GameOver{
		FinalScore: s.session.Score,
		Tick:       s.ticks,
		Cause:      cause,
	}

	s.emit(EventDied, cause)
	s.emit(EventGameOver, cause)
	s.session.Reset(s.cfg.Progression)
	s.respawned = true
	s.emit(EventRespawned, cause)

	s.logger.Info("game over", "score", over.FinalScore, "tick", over.Tick, "cause", cause)
	if s.sink != nil {
		s.sink(over)
	}
	if s.cfg.Gameplay.HaltOnGameOver {
		s.halted = true
	}
	s.logger.Debug("player respawned", "halted", s.halted)
}

func (s *Simulator) emit(kind EventKind, cause Cause) {
	s.events = append(s.events, Event{Kind: kind, Cause: cause, Score: s.session.Score})
}

// State returns the current run state.
func (s *Simulator) State() core.GameState {
	return core.GameState{
		Score:    s.session.Score,
		Health:   s.player.Health,
		GameOver: s.halted,
		Paused:   s.paused,
	}
}

// Session returns the current progression.
func (s *Simulator) Session() SessionState {
	return s.session
}

// Ticks returns the number of simulated ticks since the last Restart.
func (s *Simulator) Ticks() int {
	return s.ticks
}

// Seed returns the seed of the current run.
func (s *Simulator) Seed() int64 {
	return s.seed
}

// Config returns the configuration the simulator was built with.
func (s *Simulator) Config() config.RunnerConfig {
	return s.cfg
}
