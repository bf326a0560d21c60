// stroids is a deterministic asteroids simulation played in the terminal.
//
// Usage:
//
//	stroids list              - List game variants
//	stroids play [game]       - Play a game (default: stroids)
//	stroids menu              - Pick a variant interactively
//	stroids serve             - Start SSH server for remote play
//	stroids simulate          - Run the engine headlessly with an autopilot
//	stroids runs [game]       - List recorded runs
//	stroids replay <id>       - Re-simulate a recorded run
//	stroids config            - Print or validate game configuration
//
// Global flags (also read from STROIDS_* environment variables):
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set runs database path (default: ~/.stroids/runs.db)
//	--config <path>       - Custom game config YAML
//	--difficulty <name>   - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
//	--hold <ticks>        - How long a key press stays held
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vovakirdan/stroids/internal/config"
	"github.com/vovakirdan/stroids/internal/games/stroids"
	"github.com/vovakirdan/stroids/internal/platform/tui"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "stroids",
	Short: "Stroids - a deterministic asteroids game for your terminal",
	Long: `Stroids is a fixed-step asteroids simulation. Every session is
recorded and can be replayed tick for tick from its seed.

Examples:
  stroids play
  stroids play stroids_classic --difficulty hard
  stroids simulate --ticks 3600 --seed 42
  stroids runs
  stroids replay 1f3a9c2e
  stroids serve --ssh :2222`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initializeSettings,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.Int("fps", 60, "Tick rate (frames per second)")
	pf.Int64("seed", 0, "RNG seed (0 = random based on time)")
	pf.String("db", "~/.stroids/runs.db", "Path to runs database")
	pf.String("config", "", "Path to custom game config YAML")
	pf.String("difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.String("log-level", "info", "Log level: debug, info, warn, error")
	pf.Int("hold", tui.DefaultHoldTicks, "Ticks a key press stays held")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(configCmd)
}

// settings are the process-wide options after flags and environment have
// been merged.
type settings struct {
	FPS        int
	Seed       int64
	DBPath     string
	ConfigPath string
	Difficulty string
	LogLevel   string
	HoldTicks  int
}

func initializeSettings(cmd *cobra.Command, _ []string) error {
	viper.SetEnvPrefix("STROIDS")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	if err := viper.BindEnv("config", "STROIDS_CONFIG", "STROIDS_CONFIG_PATH"); err != nil {
		return err
	}
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	s := currentSettings()
	if s.Difficulty != "" {
		if _, err := config.ParsePreset(s.Difficulty); err != nil {
			return err
		}
	}
	stroids.SetConfigPath(s.ConfigPath)
	stroids.SetDifficultyPreset(s.Difficulty)
	return nil
}

func currentSettings() settings {
	return settings{
		FPS:        viper.GetInt("fps"),
		Seed:       viper.GetInt64("seed"),
		DBPath:     viper.GetString("db"),
		ConfigPath: viper.GetString("config"),
		Difficulty: viper.GetString("difficulty"),
		LogLevel:   viper.GetString("log-level"),
		HoldTicks:  viper.GetInt("hold"),
	}
}
