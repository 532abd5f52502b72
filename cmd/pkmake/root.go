// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/pkmake/pkmake/internal/config"
	"github.com/pkmake/pkmake/internal/issue"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// NewRootCommand builds the pk-make command tree around app.
func NewRootCommand(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pk-make",
		Short: "Compile pk build, install and recipe commands for a package checkout",
		Long: TitleStyle.Render("pk-make") + SubtitleStyle.Render(" - a front end for the pk package tool") + `

pk-make reads the package manifest and the DD_OS / DD_SHOW environment,
turns a handful of high-level options into the exact pk command lines
they stand for, and runs them from the package root.

` + SubtitleStyle.Render("Examples:") + `
  pk-make build -n              Print the pk build command
  pk-make install -c shared     Install into the show's shared level
  pk-make install -L facility   Tag the package and install to the facility
  pk-make run lint --fix        Run the 'lint' recipe with extra arguments
  pk-make config show           Show current configuration`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return app.initialize(cmd)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&app.configFile, "config", "", "config file (default is $HOME/.config/pk-make/config.cue)")
	pf.StringVar(&app.logLevel, "log-level", "", "log level: debug, info, warn or error (default from config, else warn)")
	pf.StringVar(&app.runtime, "runtime", "", "execution runtime: native or virtual (default from config, else native)")

	rootCmd.AddCommand(newBuildCommand(app))
	rootCmd.AddCommand(newInstallCommand(app))
	rootCmd.AddCommand(newDocsCommand(app))
	rootCmd.AddCommand(newTestCommand(app))
	rootCmd.AddCommand(newRunCommand(app))
	rootCmd.AddCommand(newConfigCommand(app))

	return rootCmd
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the pk-make command tree. It is called by main.main.
func Execute() {
	app := NewApp(Dependencies{})

	// Pass version via fang.WithVersion() since fang overrides rootCmd.Version
	if err := fang.Execute(
		context.Background(),
		NewRootCommand(app),
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(handleError),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(int(exitErr.Code))
		}
		os.Exit(1)
	}
}

// handleError prints errors cobra and fang surface on their own. Errors
// carrying an exit code were already reported by the failing command.
func handleError(w io.Writer, styles fang.Styles, err error) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return
	}
	fang.DefaultErrorHandler(w, styles, err)
}

// initialize loads configuration and installs the logger. A configuration
// that fails to load is reported and replaced by the defaults so the
// recipe commands still work.
func (a *App) initialize(cmd *cobra.Command) error {
	cfg, path, err := a.Config.Load(cmd.Context(), a.loadOptions())
	if err != nil {
		fmt.Fprintln(a.stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, false))
		if entry := issue.Get(issue.ConfigLoadFailedId); entry != nil && a.logLevel == "debug" {
			if rendered, renderErr := entry.Render("dark"); renderErr == nil {
				fmt.Fprint(a.stderr, rendered)
			}
		}
		cfg, path = config.DefaultConfig(), ""
	}
	a.cfg = cfg
	a.cfgPath = path

	level := cfg.Log.Level
	if a.logLevel != "" {
		level = config.LogLevel(a.logLevel)
		if ok, errs := level.IsValid(); !ok {
			fmt.Fprint(a.stderr, styledErrorMessage(errs[0], false))
			return &ExitError{Code: 1, Err: errs[0]}
		}
	}
	installLogger(a.stderr, level)
	return nil
}
