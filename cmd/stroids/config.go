package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/stroids/internal/config"
	"github.com/vovakirdan/stroids/internal/games/stroids"
)

var (
	flagValidate  string
	flagEffective bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print or validate game configuration",
	Long: `Print the built-in default configuration as YAML, the effective
configuration after --config and --difficulty are applied, or validate a
config file.

Examples:
  stroids config > ~/.stroids/configs/stroids.yaml
  stroids config --effective --difficulty hard
  stroids config --validate ./my-stroids.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagValidate, "validate", "", "Validate the given config file")
	configCmd.Flags().BoolVar(&flagEffective, "effective", false, "Print the configuration games will use")
}

func runConfig(_ *cobra.Command, _ []string) error {
	switch {
	case flagValidate != "":
		data, err := os.ReadFile(flagValidate)
		if err != nil {
			return err
		}
		cfg, err := config.Parse(data)
		if err != nil {
			return fmt.Errorf("%s: %w", flagValidate, err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("%s: %w", flagValidate, err)
		}
		fmt.Printf("%s: ok\n", flagValidate)
		return nil

	case flagEffective:
		cfg, err := stroids.LoadConfig()
		if err != nil {
			return err
		}
		data, err := config.Marshal(cfg)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err

	default:
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}
}
