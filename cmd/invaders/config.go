package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/config"
)

var flagValidate bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a game would start with, as YAML.

The configuration is looked up in this order:
  1. --config <path>
  2. ~/.invaders/configs/invaders.yaml
  3. ./configs/invaders.yaml
  4. Built-in defaults

Examples:
  invaders config > ~/.invaders/configs/invaders.yaml
  invaders config --config ./my-invaders.yaml --validate`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagValidate, "validate", false, "Only validate the configuration")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if flagValidate {
		fmt.Fprintln(cmd.OutOrStdout(), "configuration is valid")
		return nil
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
