// Copyright Meridiano Data SL, 2026. All rights reserved.

// Package main is the entry point for the docs2md CLI. It converts source
// documents to Markdown and applies a configured pipeline of cleanup
// adjustments to the result.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/meridianodata/docs2md/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the docs2md CLI.
var rootCmd = &cobra.Command{
	Use:   "docs2md",
	Short: "Convert documents to Markdown and clean up conversion artifacts",
	Long: `docs2md converts office and PDF documents to Markdown through a conversion
backend, then applies a configured pipeline of named adjustments that clean
up conversion artifacts: malformed tables, stray index text, and usage-note
blocks.

The pipeline is an ordered list of adjustment names in the configuration
file; run "docs2md adjustments" to see what is available.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./docs2md.yaml or ~/.config/docs2md/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("docs2md")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "docs2md"))
		}
	}

	viper.SetEnvPrefix("DOCS2MD")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig builds the run configuration from viper, letting an optional
// positional argument override the config file location.
func loadConfig(args []string) (types.Config, error) {
	var cfg types.Config

	if len(args) == 1 {
		viper.SetConfigFile(args[0])
		if err := viper.ReadInConfig(); err != nil {
			return cfg, fmt.Errorf("reading configuration file %s: %w", args[0], err)
		}
	}

	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("parsing configuration: %w", err)
	}
	return cfg, nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) || ctx.Err() != nil {
			os.Exit(130)
		}
		os.Exit(1)
	}
}
