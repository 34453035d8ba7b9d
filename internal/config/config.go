// Package config provides YAML-based runner configuration loading,
// validation and difficulty management.
package config

import (
	"errors"
	"fmt"
)

// RunnerConfig contains all tuning for the endless runner simulation.
type RunnerConfig struct {
	World       WorldConfig      `yaml:"world"`
	Physics     PhysicsConfig    `yaml:"physics"`
	Player      PlayerConfig     `yaml:"player"`
	Spawn       SpawnConfig      `yaml:"spawn"`
	Progression SpeedConfig      `yaml:"progression"`
	Gameplay    GameplayConfig   `yaml:"gameplay"`
	Difficulty  DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig defines the screen bounds in world units.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig defines player physics parameters.
type PhysicsConfig struct {
	Gravity   float64 `yaml:"gravity"`
	JumpPower float64 `yaml:"jump_power"`
	MoveStep  float64 `yaml:"move_step"`
}

// PlayerConfig defines the player body and spawn point.
type PlayerConfig struct {
	SpawnX       float64 `yaml:"spawn_x"`
	SpawnY       float64 `yaml:"spawn_y"`
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	MaxHealth    int     `yaml:"max_health"`
	JumpBaseline float64 `yaml:"jump_baseline"` // Jumps allowed only while y >= baseline
}

// SpawnConfig defines spawn rules for every obstacle category.
type SpawnConfig struct {
	Platform PlatformSpawn `yaml:"platform"`
	Hazard   ObstacleSpawn `yaml:"hazard"`
	Enemy    EnemySpawn    `yaml:"enemy"`
}

// PlatformSpawn defines gap-based platform spawning.
type PlatformSpawn struct {
	Width     float64 `yaml:"width"`
	Lookahead float64 `yaml:"lookahead"` // New platform once the last one's right edge is this far from the right bound
	MinGap    int     `yaml:"min_gap"`
	MaxGap    int     `yaml:"max_gap"`
	Runway    bool    `yaml:"runway"` // Seed platforms under the spawn point at game start
}

// ObstacleSpawn defines probabilistic spawning of hazards and enemies.
type ObstacleSpawn struct {
	Chance    float64 `yaml:"chance"` // Per-tick probability in [0, 1]
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	MinOffset int     `yaml:"min_offset"` // Spawn y = world height - uniform(min_offset, max_offset)
	MaxOffset int     `yaml:"max_offset"`
}

// EnemySpawn adds the patrol velocity range to obstacle spawning.
type EnemySpawn struct {
	ObstacleSpawn `yaml:",inline"`
	MinVelocity   int `yaml:"min_velocity"` // Vertical velocity = uniform(min_velocity, max_velocity)
	MaxVelocity   int `yaml:"max_velocity"`
}

// SpeedConfig defines scroll speed and score progression.
type SpeedConfig struct {
	BaseSpeed      float64 `yaml:"base_speed"`
	SpeedIncrement float64 `yaml:"speed_increment"`
	ScorePerTick   int     `yaml:"score_per_tick"`
}

// GameplayConfig defines how a run reacts to game over.
type GameplayConfig struct {
	HaltOnGameOver bool `yaml:"halt_on_game_over"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	ChanceMultiplier float64 `yaml:"chance_multiplier"` // Added to spawn chance multiplier at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string into a preset.
// Empty input yields an empty preset, meaning "use the config as loaded".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// Validate checks the configuration for values the simulation cannot run with.
func (c RunnerConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.World.Width > 0 && c.World.Height > 0, "world size must be positive, got %vx%v", c.World.Width, c.World.Height)
	check(c.Player.Width > 0 && c.Player.Height > 0, "player size must be positive, got %vx%v", c.Player.Width, c.Player.Height)
	check(c.Player.Width <= c.World.Width, "player width %v exceeds world width %v", c.Player.Width, c.World.Width)
	check(c.Player.MaxHealth > 0, "player max_health must be positive, got %d", c.Player.MaxHealth)
	check(c.Physics.MoveStep >= 0, "physics move_step must not be negative, got %v", c.Physics.MoveStep)
	check(c.Physics.JumpPower >= 0, "physics jump_power must not be negative, got %v", c.Physics.JumpPower)

	p := c.Spawn.Platform
	check(p.Width > 0, "platform width must be positive, got %v", p.Width)
	check(p.Lookahead >= 0, "platform lookahead must not be negative, got %v", p.Lookahead)
	check(p.MinGap > 0 && p.MinGap <= p.MaxGap, "platform gap range [%d, %d] is invalid", p.MinGap, p.MaxGap)

	obstacles := []struct {
		name string
		ObstacleSpawn
	}{{"hazard", c.Spawn.Hazard}, {"enemy", c.Spawn.Enemy.ObstacleSpawn}}
	for _, o := range obstacles {
		name := o.name
		check(o.Chance >= 0 && o.Chance <= 1, "%s chance %v outside [0, 1]", name, o.Chance)
		check(o.Width > 0 && o.Height > 0, "%s size must be positive, got %vx%v", name, o.Width, o.Height)
		check(o.MinOffset <= o.MaxOffset, "%s offset range [%d, %d] is inverted", name, o.MinOffset, o.MaxOffset)
	}
	e := c.Spawn.Enemy
	check(e.MinVelocity <= e.MaxVelocity, "enemy velocity range [%d, %d] is inverted", e.MinVelocity, e.MaxVelocity)

	check(c.Progression.BaseSpeed >= 0, "progression base_speed must not be negative, got %v", c.Progression.BaseSpeed)
	check(c.Progression.SpeedIncrement >= 0, "progression speed_increment must not be negative, got %v", c.Progression.SpeedIncrement)

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid runner config: %w", err)
	}
	return nil
}
