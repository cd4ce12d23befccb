package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake/internal/config"
)

var flagDefault bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration 'snake play' would use, after the search order
--config -> ~/.snake/config.yaml -> ./configs/snake.yaml -> built-in default.

Examples:
  snake config
  snake config --default > ~/.snake/config.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefault, "default", false, "Print the built-in default file")
}

func runConfig(cmd *cobra.Command, args []string) error {
	if flagDefault {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	fmt.Printf("# source: %s\n", cfg.Source)
	_, err = os.Stdout.Write(data)
	return err
}
