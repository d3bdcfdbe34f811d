package main

import (
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/circuit-arcade/internal/core"
	"github.com/vovakirdan/circuit-arcade/internal/registry"
	"github.com/vovakirdan/circuit-arcade/internal/storage"
)

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.Seed = flagSeed
	return cfg
}

// gameOptions builds factory options from the global flags.
func gameOptions() registry.Options {
	return registry.Options{
		ConfigPath: flagConfig,
		Preset:     preset,
		Seed:       flagSeed,
	}
}

// openStoreOrWarn opens the score database. Play continues without
// persistence when it cannot be opened.
func openStoreOrWarn() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Warn("could not open scores database, scores will not be saved", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}
