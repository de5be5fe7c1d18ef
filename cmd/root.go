// Package cmd implements the CLI commands for pagelift using Cobra.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gaurav-prasanna/pagelift/core/config"
	"github.com/gaurav-prasanna/pagelift/core/logger"
	"github.com/gaurav-prasanna/pagelift/wire"
)

// Global flag variables.
var (
	flagConfig  string
	flagVerbose bool
)

// Set up by the root pre-run for every subcommand.
var (
	app      *wire.App
	appViper *viper.Viper
)

var rootCmd = &cobra.Command{
	Use:   "pagelift",
	Short: "pagelift turns web pages into AI-enhanced reports",
	Long: `pagelift fetches a web page, extracts its main text, asks a language model
to enhance it and renders the result as PDF, Markdown, JSON or plain text.
It also converts free-form prompts into structured JSON.

Usage:
  pagelift convert <url> --pdf
  pagelift prompt-json "Write a haiku about autumn"
  pagelift ui`,
	SilenceUsage:       true,
	SilenceErrors:      true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file (toml|yaml)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
}

// Execute runs the root command.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}

// setup loads configuration and wires the application.
func setup(cmd *cobra.Command, _ []string) error {
	v := viper.New()
	if flagConfig != "" {
		v.SetConfigFile(flagConfig)
	}
	cfg, err := config.Load(v)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log, err := logger.New(logger.Options{
		Output:  cmd.ErrOrStderr(),
		JSON:    cfg.LogJSON,
		Verbose: flagVerbose,
	})
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	if used := v.ConfigFileUsed(); used != "" {
		log.Debug("config loaded", "file", used)
	}

	a, err := wire.BuildApp(cmd.Context(), cfg, log)
	if err != nil {
		_ = log.Close()
		return err
	}
	app, appViper = a, v
	return nil
}

func teardown(*cobra.Command, []string) error {
	if app == nil {
		return nil
	}
	return app.Log.Close()
}
