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

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the main menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select.
After a game ends, quitting it returns you to the menu.

Examples:
  tetris menu
  tetris menu --difficulty normal`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	settings, err := loadSettings()
	if err != nil {
		fail("%v", err)
	}

	logger, closeLog, err := openLogger("tetris")
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	width, height := 80, 24
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

	probe := tetris.New(settings)
	gameID, title := probe.ID(), probe.Title()

	for {
		best := 0
		if store != nil {
			best, _ = store.HighScore(gameID)
		}

		choice, updatedCfg, menuErr := tui.RunMenu(cfg, best)
		if menuErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", menuErr)
			return
		}
		cfg = updatedCfg

		round := settings
		switch choice {
		case tui.MenuQuit:
			return

		case tui.MenuScores:
			goBack, sbErr := tui.RunScoreboard(store, gameID, title, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if !goBack {
				return
			}
			continue

		case tui.MenuSelectLevel:
			level, ok, selErr := tui.RunLevelSelector(settings, cfg)
			if selErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
				continue
			}
			if !ok {
				continue
			}
			round.Progression.StartLevel = level
		}

		game := tetris.New(round)
		game.SetLogger(logger)
		runErr := tui.Run(game, store, cfg, tui.ModelOptions{
			HoldWindow: config.Millis(round.Input.HoldWindowMs),
			Logger:     logger,
		})
		if runErr != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
			return
		}
	}
}
