package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	isolate(t)

	blocks, err := LoadBlocks("")
	if err != nil {
		t.Fatalf("LoadBlocks: %v", err)
	}
	if !reflect.DeepEqual(blocks, DefaultBlocksConfig()) {
		t.Errorf("blocks.yaml drifted from DefaultBlocksConfig:\n%+v\n%+v", blocks, DefaultBlocksConfig())
	}

	frogger, err := LoadFrogger("")
	if err != nil {
		t.Fatalf("LoadFrogger: %v", err)
	}
	if !reflect.DeepEqual(frogger, DefaultFroggerConfig()) {
		t.Errorf("frogger.yaml drifted from DefaultFroggerConfig:\n%+v\n%+v", frogger, DefaultFroggerConfig())
	}
}

func TestLoadPartialOverride(t *testing.T) {
	path := writeFile(t, "lives: 7\ntick_ms: 80\n")

	cfg, err := LoadFrogger(path)
	if err != nil {
		t.Fatalf("LoadFrogger: %v", err)
	}
	if cfg.Lives != 7 || cfg.TickMs != 80 {
		t.Errorf("override not applied: lives=%d tick=%d", cfg.Lives, cfg.TickMs)
	}
	if len(cfg.Roads) != 4 || len(cfg.Rivers) != 5 {
		t.Errorf("lanes should keep defaults, got %d roads %d rivers", len(cfg.Roads), len(cfg.Rivers))
	}
}

func TestLoadLocalConfigsDir(t *testing.T) {
	isolate(t)
	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "blocks.yaml"), []byte("randomizer: bag\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBlocks("")
	if err != nil {
		t.Fatalf("LoadBlocks: %v", err)
	}
	if cfg.Randomizer != "bag" {
		t.Errorf("Randomizer = %q, want bag", cfg.Randomizer)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := LoadBlocks(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing explicit config")
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		load func(string) error
	}{
		{"blocks tiny board", "board: {width: 2, height: 20}\n", func(p string) error { _, err := LoadBlocks(p); return err }},
		{"blocks randomizer", "randomizer: loaded\n", func(p string) error { _, err := LoadBlocks(p); return err }},
		{"frogger zero cols", "grid: {cols: 0, rows: 13}\n", func(p string) error { _, err := LoadFrogger(p); return err }},
		{"frogger empty lane", "roads:\n  - row: 7\n    obstacles: []\n", func(p string) error { _, err := LoadFrogger(p); return err }},
		{"frogger zero width", "rivers:\n  - row: 1\n    obstacles:\n      - {x: 0, width: 0, speed: 0.1}\n", func(p string) error { _, err := LoadFrogger(p); return err }},
		{"frogger lane on start row", "roads:\n  - row: 12\n    obstacles:\n      - {x: 0, width: 2, speed: 0.1}\n", func(p string) error { _, err := LoadFrogger(p); return err }},
		{"frogger no lives", "lives: 0\n", func(p string) error { _, err := LoadFrogger(p); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.load(writeFile(t, tt.yaml))
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("err = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	for _, name := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, err := ParsePreset(name); err != nil {
			t.Errorf("ParsePreset(%q): %v", name, err)
		}
	}
	if _, err := ParsePreset("nightmare"); !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("ParsePreset(nightmare) err = %v", err)
	}
}

func TestApplyPresets(t *testing.T) {
	b := DefaultBlocksConfig()
	ApplyBlocksPreset(&b, DifficultyHard)
	if b.StartLevel != 5 || !b.Difficulty.Enabled {
		t.Errorf("hard blocks: start=%d enabled=%v", b.StartLevel, b.Difficulty.Enabled)
	}
	ApplyBlocksPreset(&b, DifficultyFixed)
	if b.Difficulty.Enabled {
		t.Error("fixed preset should disable level progression")
	}

	f := DefaultFroggerConfig()
	ApplyFroggerPreset(&f, DifficultyEasy)
	if f.Lives != 5 || f.Difficulty.Enabled {
		t.Errorf("easy frogger: lives=%d enabled=%v", f.Lives, f.Difficulty.Enabled)
	}

	f = DefaultFroggerConfig()
	ApplyFroggerPreset(&f, DifficultyHard)
	if f.Lives != 2 || !f.Difficulty.Enabled || f.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard frogger: lives=%d enabled=%v initial=%v", f.Lives, f.Difficulty.Enabled, f.Difficulty.InitialLevel)
	}
}

func TestNormalPresetKeepsFroggerBaseline(t *testing.T) {
	f := DefaultFroggerConfig()
	ApplyFroggerPreset(&f, DifficultyNormal)
	if !reflect.DeepEqual(f, DefaultFroggerConfig()) {
		t.Errorf("normal preset changed frogger config:\n%+v", f)
	}

	d := NewDifficultyManager(f.Difficulty)
	if got := d.Speed(0.05, 5000, 5000); got != 0.05 {
		t.Errorf("normal frogger speed = %v, want the configured 0.05", got)
	}
}

func TestDifficultySpeed(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 100},
		Scaling:     ScalingConfig{SpeedMultiplier: 1.0},
	})

	if got := d.Speed(-0.05, 0, 0); got != -0.05 {
		t.Errorf("Speed at 0 = %v", got)
	}
	if got := d.Speed(-0.05, 100, 0); got != -0.1 {
		t.Errorf("Speed at max = %v, want -0.1", got)
	}
	if got := d.Speed(0.05, 500, 0); got != 0.1 {
		t.Errorf("Speed past max = %v, want 0.1", got)
	}

	off := NewDifficultyManager(DefaultFroggerConfig().Difficulty)
	if got := off.Speed(0.07, 1000, 1000); got != 0.07 {
		t.Errorf("disabled manager changed speed: %v", got)
	}
}

func TestGetDefaultYAML(t *testing.T) {
	for _, id := range []string{"blocks", "frogger"} {
		if len(GetDefaultYAML(id)) == 0 {
			t.Errorf("GetDefaultYAML(%q) is empty", id)
		}
	}
	if GetDefaultYAML("pong") != nil {
		t.Error("unknown game should have no default YAML")
	}
}
