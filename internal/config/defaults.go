package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the default runner configuration.
// It mirrors defaults/runner.yaml and is used when the embedded file cannot be parsed.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		World: WorldConfig{
			Width:  1920,
			Height: 1080,
		},
		Physics: PhysicsConfig{
			Gravity:   1,
			JumpPower: 20,
			MoveStep:  5,
		},
		Player: PlayerConfig{
			SpawnX:       50,
			SpawnY:       500,
			Width:        50,
			Height:       50,
			MaxHealth:    3,
			JumpBaseline: 500,
		},
		Spawn: SpawnConfig{
			Platform: PlatformSpawn{
				Width:     300,
				Lookahead: 300,
				MinGap:    50,
				MaxGap:    200,
				Runway:    true,
			},
			Hazard: ObstacleSpawn{
				Chance:    0.01,
				Width:     30,
				Height:    30,
				MinOffset: 200,
				MaxOffset: 300,
			},
			Enemy: EnemySpawn{
				ObstacleSpawn: ObstacleSpawn{
					Chance:    0.005,
					Width:     50,
					Height:    50,
					MinOffset: 200,
					MaxOffset: 300,
				},
				MinVelocity: -5,
				MaxVelocity: 5,
			},
		},
		Progression: SpeedConfig{
			BaseSpeed:      5,
			SpeedIncrement: 0.01,
			ScorePerTick:   1,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 5000,
			},
			Scaling: ScalingConfig{
				ChanceMultiplier: 2.0,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
