package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/jollyjumper/internal/config"
)

var (
	flagFormat   string
	flagDefaults bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a game would use, after --config and
--difficulty are applied. The output is a valid config file.

--defaults prints the built-in default file instead, comments included.

Search order without --config:
  ~/.jolly/jolly.yaml, ~/.jolly/jolly.toml, ./configs/jolly.yaml, built-in defaults

Examples:
  jolly config
  jolly config --format toml > ~/.jolly/jolly.toml
  jolly config --difficulty hard
  jolly config --defaults > ~/.jolly/jolly.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagFormat, "format", "yaml", "Output format: yaml or toml")
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in default YAML file")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	format := config.Format(flagFormat)
	if format != config.FormatYAML && format != config.FormatTOML {
		return fmt.Errorf("unknown format %q (want yaml or toml)", flagFormat)
	}
	if flagDefaults {
		if format != config.FormatYAML {
			return errors.New("--defaults prints the YAML file only")
		}
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	data, err := config.Encode(cfg, format)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
