package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/stroids/internal/platform/tui"
	"github.com/vovakirdan/stroids/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a game variant from a menu",
	Long: `Start stroids in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a variant.
Esc during a game saves the run and returns to the menu; Q quits.

Examples:
  stroids menu
  stroids menu --fps 30`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	s := currentSettings()
	logger, closer, err := fileLogger("stroids")
	if err != nil {
		return err
	}
	defer closer.Close()

	store := openStoreOrWarn(s.DBPath, logger)
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig(s)
	for {
		menuResult, err := tui.RunMenu(cfg)
		if err != nil {
			return err
		}
		cfg = menuResult.Config
		if menuResult.Quit || menuResult.GameID == "" {
			return nil
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			logger.Error("cannot create game", "game", menuResult.GameID, "err", err)
			continue
		}

		// Each game gets a fresh seed unless one was pinned
		rc := cfg
		if s.Seed == 0 {
			rc.Seed = time.Now().UnixNano()
		}

		res, err := tui.Run(game, rc, tui.Options{
			Store:     store,
			Logger:    logger,
			HoldTicks: s.HoldTicks,
			InMenu:    true,
		})
		if err != nil {
			return fmt.Errorf("running game: %w", err)
		}
		if !res.BackToMenu {
			printSessionSummary(game, res)
			return nil
		}
	}
}
