// Package cmd provides Cobra CLI commands for dimmer.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/dimmer/internal/cli"
	"github.com/bnema/dimmer/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info

	pageSpecs    []string
	databasePath string
	logLevel     string

	rootCmd = &cobra.Command{
		Use:   "dimmer",
		Short: "Dark mode for every page, with per-site exceptions",
		Long: `Dimmer - one switch to turn the web dark.

Dimmer keeps a global dark mode setting, an intensity (light, medium or deep)
and a list of per-site exceptions. Changing the global setting pushes the new
state to every open page; a site exception always wins over the global switch.

Pages are HTML files opened with --page, optionally tagged with the URL they
were saved from:

  dimmer --page saved.html@https://example.com/ enable --intensity medium

Each opened page is styled on load, receives broadcasts while the command runs
and is written back when it finishes.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion":
				return nil
			}

			var err error
			app, err = cli.NewApp(cli.Options{
				DatabasePath: databasePath,
				LogLevel:     logLevel,
			})
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo

			return app.Pages.OpenAll(app.Ctx(), pageSpecs)
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if app == nil {
				return nil
			}
			defer app.Close()
			return app.Pages.Save()
		},
	}
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringArrayVarP(&pageSpecs, "page", "p", nil, "open an HTML file as a page (file.html[@url]), repeatable")
	flags.StringVar(&databasePath, "database", "", "settings database path (overrides config)")
	flags.StringVar(&logLevel, "log-level", "", "log level: trace, debug, info, warn, error")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if app != nil {
			_ = app.Close()
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}

func requireApp() (*cli.App, error) {
	a := GetApp()
	if a == nil {
		return nil, fmt.Errorf("app not initialized")
	}
	return a, nil
}
