package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/kamusis/skillbook/internal/catalog"
	"github.com/kamusis/skillbook/internal/config"
	"github.com/kamusis/skillbook/internal/logger"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "skillbook",
	Short:        "skillbook — list, search, show and copy SKILL.md skills",
	SilenceUsage: true, // don't print usage on operational errors
	Long: `skillbook catalogs the skills stored under a root directory.

Every subdirectory named <identifier>-skill that contains a SKILL.md file is a
skill. The optional header at the top of SKILL.md provides its name,
description, version and activation hints:

  ---
  name: SwiftUI Programming
  description: Modern SwiftUI patterns
  version: 1.2
  activation: swiftui, ios views
  ---`,
	PersistentPreRunE: setup,
}

// settings holds the effective options once setup has run.
var settings *config.Settings

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("root", "", "Skills root directory (default: current directory)")
	pf.String("color", "auto", "Colour output: auto, always or never")
	pf.String("log-level", "warn", "Log level: debug, info, warn or error")
	pf.String("log-format", "fmt", "Log format: fmt or json")
}

// setup resolves settings and configures logging and colour for every command.
func setup(cmd *cobra.Command, _ []string) error {
	s, err := config.Resolve(cmd.Flags())
	if err != nil {
		return err
	}
	if err := logger.SetLogLevel(s.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", s.LogLevel, err)
	}
	logger.SetLogFormat(s.LogFormat)
	applyColorMode(s.Color)
	settings = s

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	entry := logger.L.WithField("command", cmd.Name())
	cmd.SetContext(logger.WithLogger(ctx, entry))
	logger.G(cmd.Context()).WithField("root", s.Root).Debug("settings resolved")
	return nil
}

// openCatalog returns the catalog for the configured root.
func openCatalog() *catalog.Catalog {
	return catalog.New(settings.Root)
}

// Execute is called by main.go.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		printErr(os.Stderr, "", err.Error())
		os.Exit(1)
	}
}
