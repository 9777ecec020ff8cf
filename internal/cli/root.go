// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli implements the invoke command line tool: it runs proxy events
// through the API without an HTTP listener and issues tokens for the demo
// routes.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ToddHoff/lambda-api/internal/api"
	"github.com/ToddHoff/lambda-api/internal/config"
	"github.com/ToddHoff/lambda-api/internal/logger"
	"github.com/ToddHoff/lambda-api/internal/routes"
	"github.com/ToddHoff/lambda-api/models"
)

// options are the persistent flags shared by every subcommand.
type options struct {
	configPath string
	logLevel   string
	build      models.AppBuildInfo
}

// NewRootCmd returns the invoke command tree. Output goes to the command's
// configured writers, so tests can capture it with SetOut.
func NewRootCmd(build models.AppBuildInfo) *cobra.Command {
	opts := &options{build: build}

	rootCmd := &cobra.Command{
		Use:   "invoke",
		Short: "Run proxy events through the API locally",
		Long: `invoke - run lambda-api proxy events without a server

Each event is read from a JSON file (or stdin with "-"), dispatched to the
registered routes and the resulting envelope is printed as JSON.

Examples:
  invoke --event event.json               Run one event
  invoke --event - < event.json           Read the event from stdin
  invoke --event event.json -c api.yaml   Use a config file
  invoke routes                           List the registered routes
  invoke token --sub user-42 --ttl 1h     Issue a Bearer token for /whoami`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
	}
	rootCmd.Version = build.BuildVersion()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Path to a JSON or YAML config file")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level (defaults to the configured level)")

	var eventPath string
	var compact bool
	rootCmd.Flags().StringVarP(&eventPath, "event", "e", "", "Path to the event JSON file, or - for stdin")
	rootCmd.Flags().BoolVar(&compact, "compact", false, "Print the envelope without indentation")
	_ = rootCmd.MarkFlagRequired("event")

	rootCmd.RunE = func(cmd *cobra.Command, _ []string) error {
		return runInvoke(cmd, opts, eventPath, compact)
	}

	rootCmd.AddCommand(newRoutesCmd(opts), newTokenCmd(opts))
	return rootCmd
}

// Execute runs the command tree and exits non-zero on failure.
func Execute(build models.AppBuildInfo) {
	if err := NewRootCmd(build).Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads defaults, environment and the optional config file.
func (o *options) loadConfig() (*config.StructuredConfig, error) {
	cfg, err := config.GetStructuredConfigFromEnv(o.configPath)
	if err != nil {
		return nil, fmt.Errorf("error getting configs: %w", err)
	}
	if o.logLevel != "" {
		cfg.App.LogLevel = o.logLevel
	}
	return cfg, nil
}

// newAPI builds the API with the demo routes; logs go to stderr so the
// envelope on stdout stays machine-readable.
func (o *options) newAPI(cfg *config.StructuredConfig, stderr io.Writer) (*api.API, error) {
	log := logger.NewLoggerTo(stderr, "lambda-api-invoke", cfg.App.LogLevel)

	a, err := api.New(*cfg, log)
	if err != nil {
		return nil, err
	}
	routes.New(*cfg, o.build, routes.NewVerifier(cfg.App), log).Register(a)
	return a, nil
}
