package config

import (
	_ "embed"
)

//go:embed defaults/blocks.yaml
var defaultBlocksYAML []byte

//go:embed defaults/frogger.yaml
var defaultFroggerYAML []byte

// DefaultBlocksConfig returns the default falling-block configuration.
func DefaultBlocksConfig() BlocksConfig {
	return BlocksConfig{
		Board: BlocksBoard{
			Width:  10,
			Height: 20,
		},
		Timing: BlocksTiming{
			BaseMs: 1000,
			StepMs: 100,
			MinMs:  100,
		},
		Scoring: BlocksScoring{
			LinePoints:    100,
			LinesPerLevel: 10,
		},
		Randomizer: "uniform",
		StartLevel: 1,
		Difficulty: DifficultyConfig{
			Enabled: true,
		},
	}
}

// DefaultFroggerConfig returns the default lane-crossing configuration.
func DefaultFroggerConfig() FroggerConfig {
	lane := func(row int, obs ...ObstacleConfig) LaneConfig {
		return LaneConfig{Row: row, Obstacles: obs}
	}
	return FroggerConfig{
		Grid:   FroggerGrid{Cols: 13, Rows: 13},
		Start:  GridPoint{X: 6, Y: 12},
		Lives:  3,
		TickMs: 50,
		Scoring: FroggerScoring{
			Forward: 10,
			Goal:    100,
		},
		Roads: []LaneConfig{
			lane(7, ObstacleConfig{0, 2, 0.05}, ObstacleConfig{6, 2, 0.05}),
			lane(8, ObstacleConfig{2, 3, -0.07}, ObstacleConfig{9, 2, -0.07}),
			lane(9, ObstacleConfig{1, 2, 0.06}, ObstacleConfig{7, 2, 0.06}),
			lane(10, ObstacleConfig{3, 3, -0.08}, ObstacleConfig{10, 2, -0.08}),
		},
		Rivers: []LaneConfig{
			lane(1, ObstacleConfig{0, 3, 0.04}, ObstacleConfig{7, 3, 0.04}),
			lane(2, ObstacleConfig{2, 4, -0.05}, ObstacleConfig{9, 3, -0.05}),
			lane(3, ObstacleConfig{1, 3, 0.045}, ObstacleConfig{8, 4, 0.045}),
			lane(4, ObstacleConfig{3, 3, -0.055}, ObstacleConfig{10, 3, -0.055}),
			lane(5, ObstacleConfig{0, 4, 0.05}, ObstacleConfig{6, 3, 0.05}),
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 2000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "blocks":
		return defaultBlocksYAML
	case "frogger":
		return defaultFroggerYAML
	default:
		return nil
	}
}
