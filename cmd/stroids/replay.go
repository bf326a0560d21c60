package main

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/stroids/internal/games/stroids"
	"github.com/vovakirdan/stroids/internal/games/stroids/engine"
	"github.com/vovakirdan/stroids/internal/storage"
)

// errDiverged is returned when a replay does not reach the recorded result.
var errDiverged = errors.New("replay diverged from the recorded run")

var replayCmd = &cobra.Command{
	Use:   "replay <id>",
	Short: "Re-simulate a recorded run",
	Long: `Rebuild a recorded run from its seed, config and per-tick actions and
check that the simulation reaches the same score and level.

The ID may be abbreviated to any unique prefix.

Examples:
  stroids replay 1f3a9c2e
  stroids replay 1f3a9c2e --log-level debug`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func runReplay(_ *cobra.Command, args []string) error {
	s := currentSettings()
	logger, err := stderrLogger("replay")
	if err != nil {
		return err
	}

	store, err := storage.Open(s.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	run, err := store.LoadRun(args[0])
	if err != nil {
		return err
	}
	return replayRun(*run, logger)
}

func replayRun(run storage.Run, logger *log.Logger) error {
	rec, err := stroids.RecordingFromRun(run)
	if err != nil {
		return err
	}

	out, err := stroids.Replay(rec, func(res engine.StepResult) {
		if res.Transition != engine.TransitionNone {
			logger.Debug("transition", "tick", res.Tick, "kind", res.Transition, "score", res.Score, "level", res.Level)
		}
	})
	if err != nil {
		return err
	}

	fmt.Printf("Run:     %s (%s, seed %d)\n", run.ID, run.GameID, run.Seed)
	fmt.Printf("Ticks:   %d\n", out.Ticks)
	fmt.Printf("Score:   %d (recorded %d)\n", out.Score, run.FinalScore)
	fmt.Printf("Level:   %d (recorded %d)\n", out.Level, run.FinalLevel)
	fmt.Printf("Cleared: %d  Deaths: %d\n", out.Cleared, out.Deaths)

	if out.Score != run.FinalScore || out.Level != run.FinalLevel {
		return errDiverged
	}
	logger.Info("replay matches recording", "run", run.ID.String()[:8])
	return nil
}
