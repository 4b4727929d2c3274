// tetris is a terminal tetris with SRS rotation, hold, ghost piece and a
// local high score table. It can also serve games over SSH.
//
// Usage:
//
//	tetris                  - Play (same as "tetris play")
//	tetris play             - Play a game
//	tetris menu             - Main menu
//	tetris scores           - Show high scores
//	tetris serve            - Start SSH server for remote play
//	tetris config           - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>            - Set tick rate (default: 60)
//	--seed <value>          - Set RNG seed for reproducible piece order
//	--db <path>             - Set database path (default: ~/.tetris/scores.db)
//	--config <path>         - Custom config YAML
//	--difficulty <preset>   - easy, normal or hard
//	--log-file <path>       - Write game debug logs to a file
//	--log-level <level>     - Log level for --log-file (default: debug)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris in your terminal",
	Long: `A terminal tetris with SRS rotation and wall kicks, hold, ghost piece,
T-spin and back-to-back scoring, and a local high score table.

Available commands:
  play     - Play a game (default)
  menu     - Main menu: play, pick a level, view scores
  scores   - View high scores
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  tetris
  tetris play --select-level
  tetris --difficulty hard
  tetris scores --limit 20
  tetris serve --port 2222`,
	Run: runPlay,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.tetris/scores.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	pf.StringVar(&flagLogFile, "log-file", "", "Write game debug logs to this file")
	pf.StringVar(&flagLogLevel, "log-level", "debug", "Log level for --log-file: debug, info, warn, error")

	rootCmd.Flags().BoolVar(&flagSelectLevel, "select-level", false, "Pick the start level before playing")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadSettings reads the config file and applies --difficulty.
func loadSettings() (config.TetrisConfig, error) {
	cfg, err := config.LoadTetris(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDifficulty != "" {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return cfg, err
		}
		config.ApplyTetrisPreset(&cfg, preset)
	}
	return cfg, nil
}

// openLogger returns the game debug logger. Without --log-file logs are
// discarded. The returned close function must be called on exit.
func openLogger(prefix string) (*log.Logger, func(), error) {
	if flagLogFile == "" {
		return log.New(io.Discard), func() {}, nil
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           level,
		Prefix:          prefix,
	})
	return logger, func() { f.Close() }, nil
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
