package main

import (
	"os"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would run with, after applying the
config search order and --difficulty, as YAML.

Config search order:
  1. --config <path>
  2. ~/.tetris/configs/tetris.yaml
  3. ./configs/tetris.yaml
  4. Built-in defaults

Examples:
  tetris config
  tetris config --difficulty hard > ~/.tetris/configs/tetris.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	settings, err := loadSettings()
	if err != nil {
		fail("%v", err)
	}

	out, err := settings.Marshal()
	if err != nil {
		fail("%v", err)
	}
	os.Stdout.Write(out)
}
