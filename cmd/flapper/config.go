package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flapper/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration flapper would use as YAML.

Lookup order: --config, ~/.flapper/config.yaml, ./configs/flapper.yaml,
then the built-in defaults. A file only needs the keys it changes.

Examples:
  flapper config
  flapper config --defaults > ~/.flapper/config.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults instead")
}

func runConfig(cmd *cobra.Command, args []string) {
	if flagDefaults {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	logger := newLogger(os.Stderr)
	cfg := loadConfig(logger)

	data, err := config.Marshal(cfg)
	if err != nil {
		fail("encoding config: %v", err)
	}
	os.Stdout.Write(data)
}
