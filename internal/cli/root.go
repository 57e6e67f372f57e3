// Package cli wires the folio commands: the HTTP service, schema migration,
// GitHub queries and the terminal gallery.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/just-nibble/folio-service/pkg/config"
	"github.com/just-nibble/folio-service/pkg/log"
)

//nolint:gochecknoglobals // Cobra boilerplate
var (
	configFile string
	verbose    bool
)

//nolint:gochecknoglobals // Cobra boilerplate
var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "Portfolio content service",
	Long: `folio serves the portfolio site API: GitHub profile data, the
portfolio, certification and project collections, dashboard sign-in and
media uploads.

Configuration comes from an optional YAML file, a .env file and FOLIO_*
environment variables.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (YAML)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(serveCmd, migrateCmd, reposCmd, statsCmd, browseCmd)
}

// setup loads configuration and builds the logger every command shares.
func setup() (cfg config.Config, logger log.Log, err error) {
	cfg, err = config.Load(configFile)
	if err != nil {
		return cfg, log.Nop(), err
	}

	level := cfg.Logging.Level
	if verbose {
		level = "debug"
	}
	logger = log.New(os.Stderr, level, cfg.Logging.Format)
	return cfg, logger, nil
}

// setupGitHub is setup for commands that read from GitHub.
func setupGitHub() (cfg config.Config, logger log.Log, err error) {
	cfg, logger, err = setup()
	if err != nil {
		return cfg, logger, err
	}
	err = cfg.RequireGitHub()
	return cfg, logger, err
}
