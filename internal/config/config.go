// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"github.com/spf13/viper"

	"github.com/pkmake/pkmake/internal/issue"
	"github.com/pkmake/pkmake/pkg/platform"
)

const (
	// AppName is the application name.
	AppName = "pk-make"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "cue"
	// EnvPrefix prefixes environment variables that override config keys,
	// e.g. PKMAKE_RUNTIME or PKMAKE_UI_VERBOSE.
	EnvPrefix = "PKMAKE"

	// maxFileSize bounds the config file read into memory.
	maxFileSize = 1 << 20
)

//go:embed config_schema.cue
var configSchema string

// ConfigDir returns the pk-make configuration directory using platform-specific
// conventions: Windows uses %APPDATA%, macOS uses ~/Library/Application Support,
// and Linux/others use $XDG_CONFIG_HOME (defaulting to ~/.config).
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	// Allow tests to override the config directory
	if configDirOverride != "" {
		return configDirOverride, nil
	}

	var configDir string

	switch runtime.GOOS {
	case platform.Windows:
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case platform.Darwin:
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default: // Linux and others
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, AppName), nil
}

// FilePath returns the config file that opts would load from, whether or
// not it exists.
func FilePath(opts LoadOptions) (string, error) {
	if opts.ConfigFilePath != "" {
		return opts.ConfigFilePath, nil
	}
	cfgDir, err := configDirWithOverride(opts.ConfigDirPath)
	if err != nil {
		return "", err
	}
	return filepath.Join(cfgDir, ConfigFileName+"."+ConfigFileExt), nil
}

// loadWithOptions performs option-driven config loading without mutating
// package-level state.
func loadWithOptions(ctx context.Context, opts LoadOptions) (*Config, string, error) {
	select {
	case <-ctx.Done():
		return nil, "", fmt.Errorf("load config canceled: %w", ctx.Err())
	default:
	}

	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("runtime", defaults.Runtime)
	v.SetDefault("shell", defaults.Shell)
	v.SetDefault("ui.color_scheme", defaults.UI.ColorScheme)
	v.SetDefault("ui.verbose", defaults.UI.Verbose)
	v.SetDefault("log.level", defaults.Log.Level)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	resolvedPath := ""

	// An explicit --config path must exist; the default location is optional.
	if opts.ConfigFilePath != "" {
		if !fileExists(opts.ConfigFilePath) {
			return nil, "", issue.Fail("load configuration", fmt.Errorf("config file not found: %s", opts.ConfigFilePath)).
				On(opts.ConfigFilePath).
				Hint("Verify the file path is correct",
					"Use 'pk-make config init' to create a default configuration")
		}
		resolvedPath = opts.ConfigFilePath
	} else {
		cuePath, err := FilePath(opts)
		if err != nil {
			return nil, "", err
		}
		if fileExists(cuePath) {
			resolvedPath = cuePath
		}
	}

	if resolvedPath != "" {
		if err := loadCUEIntoViper(v, resolvedPath); err != nil {
			return nil, "", issue.Fail("load configuration", err).
				On(resolvedPath).
				Hint("Check that the file contains valid CUE syntax",
					"Verify the configuration values match the expected schema",
					"See 'pk-make config --help' for configuration options")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse config: %w", err)
	}

	// Environment overrides bypass the CUE schema.
	if valid, errs := cfg.IsValid(); !valid {
		return nil, "", issue.Fail("validate configuration", errs[0]).
			Hint("Check PKMAKE_* environment variables for typos")
	}

	slog.Debug("configuration loaded", "path", resolvedPath, "runtime", cfg.Runtime)

	return &cfg, resolvedPath, nil
}

// configDirWithOverride resolves the configuration directory, honoring
// explicit provider options before platform defaults.
func configDirWithOverride(configDirPath string) (string, error) {
	if configDirPath != "" {
		return configDirPath, nil
	}

	return ConfigDir()
}

// loadCUEIntoViper parses a CUE file, validates it against the #Config schema,
// and merges its contents into Viper.
func loadCUEIntoViper(v *viper.Viper, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if len(data) > maxFileSize {
		return fmt.Errorf("config file %s is too large (%d bytes, max %d)", path, len(data), maxFileSize)
	}

	ctx := cuecontext.New()

	schemaValue := ctx.CompileString(configSchema)
	if schemaValue.Err() != nil {
		return fmt.Errorf("internal error: failed to compile config schema: %w", schemaValue.Err())
	}

	userValue := ctx.CompileBytes(data, cue.Filename(path))
	if userValue.Err() != nil {
		return formatCUEError(userValue.Err())
	}

	// Unify with schema to validate against #Config definition
	schema := schemaValue.LookupPath(cue.ParsePath("#Config"))
	unified := schema.Unify(userValue)
	if err := unified.Validate(cue.Concrete(false)); err != nil {
		return formatCUEError(err)
	}

	var configMap map[string]any
	if err := unified.Decode(&configMap); err != nil {
		return formatCUEError(err)
	}

	// Merge into Viper (preserves defaults, allows env overrides)
	if err := v.MergeConfigMap(configMap); err != nil {
		return fmt.Errorf("failed to merge config: %w", err)
	}

	return nil
}

// formatCUEError flattens a CUE error list into one message carrying the
// offending field paths and positions.
func formatCUEError(err error) error {
	return fmt.Errorf("invalid config: %s", strings.TrimSpace(cueerrors.Details(err, nil)))
}

// fileExists checks if a file exists and is not a directory
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}

// CreateDefaultConfig writes the default configuration to path, creating
// parent directories. An existing file is kept unless force is set; the
// returned bool reports whether the file was written.
func CreateDefaultConfig(path string, force bool) (bool, error) {
	if !force && fileExists(path) {
		return false, nil
	}
	if err := Save(DefaultConfig(), path); err != nil {
		return false, err
	}
	return true, nil
}

// Save writes cfg to path as CUE.
func Save(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, []byte(GenerateCUE(cfg)), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GenerateCUE generates a CUE representation of the configuration
func GenerateCUE(cfg *Config) string {
	var sb strings.Builder

	sb.WriteString("// pk-make configuration file\n")
	sb.WriteString("// Environment variables prefixed with " + EnvPrefix + "_ override these values.\n\n")

	fmt.Fprintf(&sb, "runtime: %q\n", cfg.Runtime)
	if cfg.Shell != "" {
		fmt.Fprintf(&sb, "shell: %q\n", cfg.Shell)
	}

	sb.WriteString("\nui: {\n")
	fmt.Fprintf(&sb, "\tcolor_scheme: %q\n", cfg.UI.ColorScheme)
	fmt.Fprintf(&sb, "\tverbose: %v\n", cfg.UI.Verbose)
	sb.WriteString("}\n")

	sb.WriteString("\nlog: {\n")
	fmt.Fprintf(&sb, "\tlevel: %q\n", cfg.Log.Level)
	sb.WriteString("}\n")

	return sb.String()
}
