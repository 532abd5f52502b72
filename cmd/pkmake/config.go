// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pkmake/pkmake/internal/config"
)

// newConfigCommand creates the `pk-make config` command tree. The root
// command has already loaded the configuration these subcommands report on.
func newConfigCommand(app *App) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage pk-make configuration",
		Long: `Manage pk-make configuration.

Configuration is stored in:
  - Linux: ~/.config/pk-make/config.cue
  - macOS: ~/Library/Application Support/pk-make/config.cue
  - Windows: %APPDATA%\pk-make\config.cue

Any key can be overridden from the environment, e.g. PKMAKE_RUNTIME=virtual
or PKMAKE_LOG_LEVEL=debug.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			showConfig(app)
			return nil
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			path, err := config.FilePath(app.loadOptions())
			if err != nil {
				return err
			}
			fmt.Fprintln(app.stdout, path)
			return nil
		},
	})

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return initConfig(app, force)
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing configuration file")
	cfgCmd.AddCommand(initCmd)

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Output effective configuration as CUE",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			fmt.Fprint(app.stdout, config.GenerateCUE(app.settings()))
			return nil
		},
	})

	return cfgCmd
}

func showConfig(app *App) {
	cfg := app.settings()
	w := app.stdout

	keyStyle := CmdStyle
	valueStyle := SuccessStyle

	fmt.Fprintln(w, TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(w)

	if app.cfgPath != "" {
		fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("Config file"), app.cfgPath)
	} else {
		fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("runtime"), valueStyle.Render(cfg.Runtime.String()))
	shell := cfg.Shell
	if shell == "" {
		shell = SubtitleStyle.Render("(auto)")
	} else {
		shell = valueStyle.Render(shell)
	}
	fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("shell"), shell)

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s:\n", keyStyle.Render("ui"))
	fmt.Fprintf(w, "  color_scheme: %s\n", valueStyle.Render(cfg.UI.ColorScheme.String()))
	fmt.Fprintf(w, "  verbose: %s\n", valueStyle.Render(fmt.Sprintf("%v", cfg.UI.Verbose)))

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s:\n", keyStyle.Render("log"))
	fmt.Fprintf(w, "  level: %s\n", valueStyle.Render(cfg.Log.Level.String()))
}

func initConfig(app *App, force bool) error {
	path, err := config.FilePath(app.loadOptions())
	if err != nil {
		return err
	}

	created, err := config.CreateDefaultConfig(path, force)
	if err != nil {
		return fmt.Errorf("failed to create config: %w", err)
	}
	if !created {
		fmt.Fprintf(app.stdout, "%s Configuration already exists at %s (use --force to overwrite)\n", WarningStyle.Render("!"), path)
		return nil
	}

	fmt.Fprintf(app.stdout, "%s Created default configuration at %s\n", SuccessStyle.Render("✓"), path)
	return nil
}
