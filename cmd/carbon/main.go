package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/carbon/internal/config"
	"github.com/vango-dev/carbon/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// colors controls ANSI output of the message helpers.
var colors = true

func main() {
	if err := rootCmd().Execute(); err != nil {
		errors.Fprint(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "carbon",
		Short: "Inspect declarative list snapshots",
		Long: `Carbon reconciles declarative section trees against list views.

This tool works on snapshot files (YAML) and shows what a render would do:

  • diff two snapshots into the batch update a view would receive
  • validate a snapshot for duplicate identifiers

Settings are read from carbon.yaml in the working directory or its parents.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().String("config", "", "Path to carbon.yaml")

	cmd.AddCommand(
		diffCmd(),
		validateCmd(),
		versionCmd(),
	)
	return cmd
}

// loadConfig reads the --config file, or discovers carbon.yaml from the
// working directory, and applies its output settings.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")

	var (
		cfg *config.Config
		err error
	)
	if path != "" {
		cfg, err = config.LoadFile(path)
	} else {
		cfg, err = config.Discover(".")
	}
	if err != nil {
		return nil, err
	}

	colors = cfg.ColorEnabled()
	if colors {
		errors.EnableColors()
	} else {
		errors.DisableColors()
	}
	return cfg, nil
}

// success prints a success message.
func success(cmd *cobra.Command, format string, args ...any) {
	mark := "✓"
	if colors {
		mark = "\033[32m✓\033[0m"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", mark, fmt.Sprintf(format, args...))
}

// warn prints a warning message.
func warn(cmd *cobra.Command, format string, args ...any) {
	mark := "⚠"
	if colors {
		mark = "\033[33m⚠\033[0m"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", mark, fmt.Sprintf(format, args...))
}
