package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadBlocks loads falling-block configuration.
// Search order: customPath -> ~/.arcade/configs/blocks.yaml -> ./configs/blocks.yaml -> embedded default
func LoadBlocks(customPath string) (BlocksConfig, error) {
	cfg, err := load("blocks.yaml", customPath, defaultBlocksYAML, DefaultBlocksConfig)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadFrogger loads lane-crossing configuration.
// Search order: customPath -> ~/.arcade/configs/frogger.yaml -> ./configs/frogger.yaml -> embedded default
func LoadFrogger(customPath string) (FroggerConfig, error) {
	cfg, err := load("frogger.yaml", customPath, defaultFroggerYAML, DefaultFroggerConfig)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// load decodes the first config found on the search path on top of the
// hardcoded defaults, so a file only needs the keys it overrides. Unreadable
// or malformed files on the implicit paths are skipped; an explicit
// customPath must be readable and well formed.
func load[T any](filename, customPath string, embedded []byte, defaults func() T) (T, error) {
	// Try custom path first
	if customPath != "" {
		cfg := defaults()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	candidates := []string{userConfigPath(filename), filepath.Join("configs", filename)}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg := defaults()
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg := defaults()
	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return defaults(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyBlocksPreset modifies the config based on a difficulty preset.
// Harder presets start at a higher level; fixed disables level progression.
func ApplyBlocksPreset(cfg *BlocksConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	switch preset {
	case DifficultyEasy, DifficultyNormal:
		cfg.StartLevel = 1
	case DifficultyHard:
		cfg.StartLevel = 5
	}
}

// ApplyFroggerPreset modifies the config based on a difficulty preset.
// Normal keeps the configured speeds and lives. Easy adds lives; hard takes
// lives away and speeds obstacles up with score.
func ApplyFroggerPreset(cfg *FroggerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Lives = 5
		cfg.Difficulty.Enabled = false
	case DifficultyHard:
		cfg.Lives = 2
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	default:
		if IsFixedPreset(preset) {
			cfg.Difficulty.Enabled = false
		}
	}
}
