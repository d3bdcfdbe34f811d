package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/circuit-arcade/internal/config"
)

var flagConfigWrite bool

var configCmd = &cobra.Command{
	Use:   "config <game>",
	Short: "Print the default YAML config for a game",
	Long: `Print the built-in configuration for a game as a starting point for
a custom file.

With --write the file is saved to ~/.arcade/configs/<game>.yaml, the first
implicit location on the config search path. An existing file is kept.

Examples:
  arcade config frogger > my-frogger.yaml
  arcade config blocks --write`,
	Args: cobra.ExactArgs(1),
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigWrite, "write", false, "Save to ~/.arcade/configs instead of printing")
}

func runConfig(cmd *cobra.Command, args []string) error {
	data := config.GetDefaultYAML(args[0])
	if data == nil {
		return fmt.Errorf("no config for game %q (run 'arcade list' to see available games)", args[0])
	}
	if !flagConfigWrite {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("locating home directory: %w", err)
	}
	path := filepath.Join(home, ".arcade", "configs", args[0]+".yaml")
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}
