package runner

import "github.com/vovakirdan/endless-runner/internal/config"

// SessionState is the progression owned by the Simulator.
type SessionState struct {
	ScrollSpeed float64
	Score       int
}

// NewSession returns the progression at the start of a run.
func NewSession(cfg config.SpeedConfig) SessionState {
	return SessionState{ScrollSpeed: cfg.BaseSpeed}
}

// Advance applies one tick of progression.
func (s *SessionState) Advance(cfg config.SpeedConfig) {
	s.Score += cfg.ScorePerTick
	s.ScrollSpeed += cfg.SpeedIncrement
}

// Reset returns to base speed and zero score.
func (s *SessionState) Reset(cfg config.SpeedConfig) {
	*s = NewSession(cfg)
}
