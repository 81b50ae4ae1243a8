// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the refnet CLI, a tool that fetches
// paper reference lists from the INSPIRE-HEP API and builds citation
// networks from them.
package main

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/refnet/internal/inspire"
	"github.com/pdiddy/refnet/internal/output"
	"github.com/pdiddy/refnet/internal/secrets"
	"github.com/pdiddy/refnet/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API tokens loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// rootCmd is the base command for the refnet CLI.
var rootCmd = &cobra.Command{
	Use:   "refnet",
	Short: "Fetch paper references and build citation networks via INSPIRE-HEP",
	Long: `refnet talks to the INSPIRE-HEP literature API. It resolves a paper by
its arXiv id, fetches the paper's reference list, and can follow references
recursively to assemble a citation network.

Output goes to stdout or a file as JSON, YAML, or BibTeX. Fetches are
sequential and rate limited; deep networks take time by design.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./refnet.toml or ~/.config/refnet/config.toml)")
	rootCmd.PersistentFlags().String("format", "", "output format: json, yaml, or bibtex (default json)")
	rootCmd.PersistentFlags().String("output", "", "output file (default stdout)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "print progress to stderr")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("refnet")
		viper.SetConfigType("toml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "refnet"))
		}
	}

	viper.SetEnvPrefix("REFNET")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig merges the built-in defaults with whatever the config file
// and environment provide. Flag overrides are applied per command.
func loadConfig() types.Config {
	cfg := types.DefaultConfig()
	if err := viper.Unmarshal(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "warning: ignoring malformed configuration: %v\n", err)
		return types.DefaultConfig()
	}
	return cfg
}

// effectiveWriter resolves the output format and path with flag-beats-config
// precedence.
func effectiveWriter(cmd *cobra.Command, cfg types.Config) (output.Writer, error) {
	formatName := cfg.Output.Format
	if cmd.Flags().Changed("format") {
		formatName, _ = cmd.Flags().GetString("format")
	}
	if formatName == "" {
		formatName = "json"
	}
	format, err := output.ParseFormat(formatName)
	if err != nil {
		return output.Writer{}, err
	}

	path := cfg.Output.Path
	if cmd.Flags().Changed("output") {
		path, _ = cmd.Flags().GetString("output")
	}

	return output.Writer{Format: format, Path: path}, nil
}

// effectiveVerbose resolves verbosity: the flag wins, the config file is
// the fallback.
func effectiveVerbose(cmd *cobra.Command, cfg types.Config) bool {
	if cmd.Flags().Changed("verbose") {
		v, _ := cmd.Flags().GetBool("verbose")
		return v
	}
	return cfg.Verbose
}

// newClient builds the INSPIRE client from the effective configuration,
// attaching the API token when one was loaded from .secrets/.
func newClient(cfg types.Config) *inspire.Client {
	opts := []inspire.Option{
		inspire.WithBaseURL(cfg.API.BaseURL),
		inspire.WithHTTPClient(&http.Client{Timeout: cfg.API.RequestTimeout()}),
		inspire.WithUserAgent(cfg.API.UserAgent),
		inspire.WithMaxRetries(cfg.API.MaxRetries),
	}
	if cfg.API.RateLimit > 0 {
		opts = append(opts, inspire.WithRateLimit(cfg.API.RateLimit))
	}
	if token := loadedSecrets[secrets.InspireToken]; token != "" {
		opts = append(opts, inspire.WithToken(token))
	}
	return inspire.NewClient(opts...)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
