package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/stroids/internal/core"
	"github.com/vovakirdan/stroids/internal/games/stroids"
	"github.com/vovakirdan/stroids/internal/platform/tui"
	"github.com/vovakirdan/stroids/internal/registry"
	"github.com/vovakirdan/stroids/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified variant (default: stroids).

Controls:
  Left/A, Right/D  - Rotate
  Up/W             - Thrust
  Space            - Fire
  B                - Toggle ship tint
  P                - Pause
  Ctrl+S           - Screenshot
  Q/Ctrl+C/Esc     - Quit (the run is saved for replay)

Terminals only report key presses, so each press keeps its action held
for --hold ticks. Logs go to ~/.stroids/stroids.log.

Examples:
  stroids play
  stroids play stroids_classic
  stroids play --difficulty hard --seed 7
  stroids play --config ./my-stroids.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := stroids.IDPolar
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'stroids list' to see available games)", gameID)
	}
	if _, err := stroids.LoadConfig(); err != nil {
		return err
	}

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

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	res, err := tui.Run(game, runtimeConfig(s), tui.Options{
		Store:     store,
		Logger:    logger,
		HoldTicks: s.HoldTicks,
	})
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	printSessionSummary(game, res)
	return nil
}

// runtimeConfig sizes the simulation view to the current terminal.
func runtimeConfig(s settings) core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: s.FPS,
		Seed:     s.Seed,
	}
}

// openStoreOrWarn opens the runs database. Games still work without it, so
// a failure is only logged.
func openStoreOrWarn(path string, logger *log.Logger) *storage.Store {
	store, err := storage.Open(path)
	if err != nil {
		logger.Warn("runs will not be recorded", "db", path, "err", err)
		return nil
	}
	return store
}

func printSessionSummary(game registry.Game, res tui.Result) {
	st := game.State()
	fmt.Printf("Score: %d  Level: %d\n", st.Score, st.Level)
	if res.RunID != uuid.Nil {
		id := res.RunID.String()
		fmt.Printf("Run saved: %s\n", id)
		fmt.Printf("Replay with: stroids replay %s\n", id[:8])
	}
}
