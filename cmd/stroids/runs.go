package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/stroids/internal/platform/tui"
	"github.com/vovakirdan/stroids/internal/registry"
	"github.com/vovakirdan/stroids/internal/storage"
)

var (
	flagRunsLimit  int
	flagRunsBrowse bool
)

var runsCmd = &cobra.Command{
	Use:   "runs [game]",
	Short: "List recorded runs",
	Long: `Show the most recent recorded runs, optionally for one game variant.

With --browse, opens an interactive table; Enter replays the selected run.

Examples:
  stroids runs
  stroids runs stroids_classic --limit 5
  stroids runs --browse
  stroids runs delete 1f3a9c2e`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRuns,
}

var runsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a recorded run",
	Args:  cobra.ExactArgs(1),
	RunE:  runRunsDelete,
}

func init() {
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 20, "Maximum number of runs to list")
	runsCmd.Flags().BoolVar(&flagRunsBrowse, "browse", false, "Browse runs interactively")
	runsCmd.AddCommand(runsDeleteCmd)
}

func runRuns(_ *cobra.Command, args []string) error {
	gameID := ""
	if len(args) == 1 {
		gameID = args[0]
		if !registry.Exists(gameID) {
			return fmt.Errorf("unknown game %q (run 'stroids list' to see available games)", gameID)
		}
	}

	s := currentSettings()
	store, err := storage.Open(s.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagRunsBrowse {
		return browseRuns(store, s)
	}

	runs, err := store.ListRuns(gameID, flagRunsLimit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'stroids play' and quit to record one.")
		return nil
	}

	fmt.Printf("  %-8s  %-16s  %-8s  %-8s  %-5s  %s\n", "ID", "Game", "Ticks", "Score", "Level", "Recorded")
	fmt.Printf("  %-8s  %-16s  %-8s  %-8s  %-5s  %s\n", "--", "----", "-----", "-----", "-----", "--------")
	for _, r := range runs {
		fmt.Printf("  %-8s  %-16s  %-8d  %-8d  %-5d  %s\n",
			r.ID.String()[:8], r.GameID, r.Ticks, r.FinalScore, r.FinalLevel,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}
	fmt.Println()
	fmt.Println("Run 'stroids replay <id>' to re-simulate a run.")
	return nil
}

func browseRuns(store *storage.Store, s settings) error {
	rc := runtimeConfig(s)
	chosen, err := tui.RunRunsBrowser(store, rc.ScreenW, rc.ScreenH)
	if err != nil {
		return err
	}
	if chosen == uuid.Nil {
		return nil
	}

	logger, err := stderrLogger("replay")
	if err != nil {
		return err
	}
	run, err := store.LoadRun(chosen.String())
	if err != nil {
		return err
	}
	return replayRun(*run, logger)
}

func runRunsDelete(_ *cobra.Command, args []string) error {
	store, err := storage.Open(currentSettings().DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	run, err := store.LoadRun(args[0])
	if err != nil {
		return err
	}
	if err := store.DeleteRun(run.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted run %s\n", run.ID)
	return nil
}
