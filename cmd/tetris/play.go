package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var flagSelectLevel bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of tetris.

Controls:
  Left/Right, A/D   - Move
  Down, S           - Soft drop
  Space             - Hard drop
  Up, X             - Rotate clockwise
  Z                 - Rotate counterclockwise
  C                 - Hold
  P/Esc             - Pause
  R                 - Restart (after game over)
  Ctrl+S            - Save a screenshot
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - Start at level 1
  normal - Start at level 5
  hard   - Start at level 10

Examples:
  tetris play
  tetris play --difficulty hard
  tetris play --select-level
  tetris play --seed 42 --config ./my-tetris.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagSelectLevel, "select-level", false, "Pick the start level before playing")
}

func runPlay(_ *cobra.Command, _ []string) {
	settings, err := loadSettings()
	if err != nil {
		fail("%v", err)
	}

	logger, closeLog, err := openLogger("tetris")
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	if flagSelectLevel {
		level, ok, selErr := tui.RunLevelSelector(settings, cfg)
		if selErr != nil {
			fail("%v", selErr)
		}
		// User pressed back or quit
		if !ok {
			return
		}
		settings.Progression.StartLevel = level
	}

	game := tetris.New(settings)
	game.SetLogger(logger)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg, tui.ModelOptions{
		HoldWindow: config.Millis(settings.Input.HoldWindowMs),
		Logger:     logger,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fail("running game: %v", runErr)
	}
}
