// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

import (
	"errors"
	"fmt"
)

// BlocksConfig contains all configuration for the falling-block game.
type BlocksConfig struct {
	Board      BlocksBoard      `yaml:"board"`
	Timing     BlocksTiming     `yaml:"timing"`
	Scoring    BlocksScoring    `yaml:"scoring"`
	Randomizer string           `yaml:"randomizer"` // "uniform" or "bag"
	StartLevel int              `yaml:"start_level"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BlocksBoard defines the well dimensions.
type BlocksBoard struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// BlocksTiming defines the gravity curve:
// interval = max(min_ms, base_ms - (level-1) * step_ms).
type BlocksTiming struct {
	BaseMs int `yaml:"base_ms"`
	StepMs int `yaml:"step_ms"`
	MinMs  int `yaml:"min_ms"`
}

// BlocksScoring defines line clear rewards and level pacing.
type BlocksScoring struct {
	LinePoints    int `yaml:"line_points"`
	LinesPerLevel int `yaml:"lines_per_level"`
}

// FroggerConfig contains all configuration for the lane-crossing game.
type FroggerConfig struct {
	Grid       FroggerGrid      `yaml:"grid"`
	Start      GridPoint        `yaml:"start"`
	Lives      int              `yaml:"lives"`
	TickMs     int              `yaml:"tick_ms"`
	Scoring    FroggerScoring   `yaml:"scoring"`
	Roads      []LaneConfig     `yaml:"roads"`
	Rivers     []LaneConfig     `yaml:"rivers"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FroggerGrid defines the playfield dimensions.
type FroggerGrid struct {
	Cols int `yaml:"cols"`
	Rows int `yaml:"rows"`
}

// GridPoint is a cell coordinate.
type GridPoint struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// FroggerScoring defines per-move and goal rewards.
type FroggerScoring struct {
	Forward int `yaml:"forward"`
	Goal    int `yaml:"goal"`
}

// LaneConfig describes the initial obstacles of one row.
type LaneConfig struct {
	Row       int              `yaml:"row"`
	Obstacles []ObstacleConfig `yaml:"obstacles"`
}

// ObstacleConfig is one car or log. Speed is in cells per tick; its sign
// gives the direction of travel.
type ObstacleConfig struct {
	X     float64 `yaml:"x"`
	Width int     `yaml:"width"`
	Speed float64 `yaml:"speed"`
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
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ErrUnknownPreset is returned by ParsePreset for names outside the preset set.
var ErrUnknownPreset = errors.New("config: unknown difficulty preset")

// ParsePreset validates a preset name. The empty string means no preset.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.0
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}

// Validate rejects configurations the rules cannot run.
func (c BlocksConfig) Validate() error {
	if c.Board.Width < 4 || c.Board.Height < 4 {
		return invalid("blocks board %dx%d is smaller than 4x4", c.Board.Width, c.Board.Height)
	}
	if c.Timing.BaseMs <= 0 || c.Timing.MinMs <= 0 || c.Timing.StepMs < 0 {
		return invalid("blocks timing must be positive")
	}
	if c.Scoring.LinesPerLevel <= 0 {
		return invalid("blocks lines_per_level must be positive")
	}
	if c.StartLevel < 1 {
		return invalid("blocks start_level %d < 1", c.StartLevel)
	}
	switch c.Randomizer {
	case "", "uniform", "bag":
	default:
		return invalid("blocks randomizer %q", c.Randomizer)
	}
	return nil
}

// Validate rejects configurations the rules cannot run.
func (c FroggerConfig) Validate() error {
	if c.Grid.Cols <= 0 || c.Grid.Rows < 3 {
		return invalid("frogger grid %dx%d", c.Grid.Cols, c.Grid.Rows)
	}
	if c.Start.X < 0 || c.Start.X >= c.Grid.Cols || c.Start.Y <= 0 || c.Start.Y >= c.Grid.Rows {
		return invalid("frogger start (%d,%d) outside grid", c.Start.X, c.Start.Y)
	}
	if c.Lives <= 0 {
		return invalid("frogger lives must be positive")
	}
	if c.TickMs <= 0 {
		return invalid("frogger tick_ms must be positive")
	}

	seen := make(map[int]bool)
	check := func(kind string, lanes []LaneConfig) error {
		for _, l := range lanes {
			if l.Row <= 0 || l.Row >= c.Grid.Rows {
				return invalid("frogger %s row %d outside grid", kind, l.Row)
			}
			if l.Row == c.Start.Y {
				return invalid("frogger %s row %d is the start row", kind, l.Row)
			}
			if seen[l.Row] {
				return invalid("frogger row %d defined twice", l.Row)
			}
			seen[l.Row] = true
			if len(l.Obstacles) == 0 {
				return invalid("frogger %s row %d has no obstacles", kind, l.Row)
			}
			for _, o := range l.Obstacles {
				if o.Width <= 0 {
					return invalid("frogger %s row %d obstacle width %d", kind, l.Row, o.Width)
				}
			}
		}
		return nil
	}
	if err := check("road", c.Roads); err != nil {
		return err
	}
	return check("river", c.Rivers)
}
