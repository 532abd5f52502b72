// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"log/slog"
)

const (
	// RuntimeNative runs plans in the host system shell.
	RuntimeNative RuntimeMode = "native"
	// RuntimeVirtual runs plans in the embedded mvdan/sh interpreter.
	RuntimeVirtual RuntimeMode = "virtual"

	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"

	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

var (
	// ErrInvalidConfigRuntimeMode is returned when a config RuntimeMode value is not recognized.
	ErrInvalidConfigRuntimeMode = errors.New("invalid runtime mode")
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidLogLevel is returned when a LogLevel value is not recognized.
	ErrInvalidLogLevel = errors.New("invalid log level")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// RuntimeMode selects how compiled plans are executed.
	RuntimeMode string

	// InvalidConfigRuntimeModeError is returned when a config RuntimeMode value is not recognized.
	// It wraps ErrInvalidConfigRuntimeMode for errors.Is() compatibility.
	InvalidConfigRuntimeModeError struct {
		Value RuntimeMode
	}

	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not recognized.
	// It wraps ErrInvalidColorScheme for errors.Is() compatibility.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// LogLevel is the minimum level of diagnostic log output.
	LogLevel string

	// InvalidLogLevelError is returned when a LogLevel value is not recognized.
	InvalidLogLevelError struct {
		Value LogLevel
	}

	// InvalidConfigError is returned when a Config has invalid fields.
	// It wraps ErrInvalidConfig for errors.Is() compatibility and collects
	// field-level validation errors from all sub-components.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the application configuration.
	Config struct {
		// Runtime selects the plan execution runtime
		Runtime RuntimeMode `json:"runtime" mapstructure:"runtime"`
		// Shell overrides the native runtime's shell
		Shell string `json:"shell,omitempty" mapstructure:"shell"`
		// UI configures the user interface
		UI UIConfig `json:"ui" mapstructure:"ui"`
		// Log configures diagnostic logging
		Log LogConfig `json:"log" mapstructure:"log"`
	}

	// UIConfig configures the user interface.
	UIConfig struct {
		// ColorScheme sets the color scheme
		ColorScheme ColorScheme `json:"color_scheme" mapstructure:"color_scheme"`
		// Verbose enables verbose output for every target
		Verbose bool `json:"verbose" mapstructure:"verbose"`
	}

	// LogConfig configures diagnostic logging.
	LogConfig struct {
		Level LogLevel `json:"level" mapstructure:"level"`
	}
)

// IsValid returns whether the Config has valid fields.
func (c Config) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.Runtime.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.UI.ColorScheme.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.Log.Level.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	if len(e.FieldErrors) == 1 {
		return fmt.Sprintf("invalid config: %v", e.FieldErrors[0])
	}
	return fmt.Sprintf("invalid config: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidConfig for errors.Is() compatibility.
func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }

// Error implements the error interface for InvalidConfigRuntimeModeError.
func (e *InvalidConfigRuntimeModeError) Error() string {
	return fmt.Sprintf("invalid runtime mode %q (valid: native, virtual)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidConfigRuntimeModeError) Unwrap() error {
	return ErrInvalidConfigRuntimeMode
}

// String returns the string representation of the config RuntimeMode.
func (m RuntimeMode) String() string { return string(m) }

// IsValid returns whether the config RuntimeMode is one of the defined runtime modes,
// and a list of validation errors if it is not.
func (m RuntimeMode) IsValid() (bool, []error) {
	switch m {
	case RuntimeNative, RuntimeVirtual:
		return true, nil
	default:
		return false, []error{&InvalidConfigRuntimeModeError{Value: m}}
	}
}

// Error implements the error interface for InvalidColorSchemeError.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (valid: auto, dark, light)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidColorSchemeError) Unwrap() error {
	return ErrInvalidColorScheme
}

// String returns the string representation of the ColorScheme.
func (cs ColorScheme) String() string { return string(cs) }

// IsValid returns whether the ColorScheme is one of the defined color schemes,
// and a list of validation errors if it is not.
func (cs ColorScheme) IsValid() (bool, []error) {
	switch cs {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return true, nil
	default:
		return false, []error{&InvalidColorSchemeError{Value: cs}}
	}
}

// Error implements the error interface for InvalidLogLevelError.
func (e *InvalidLogLevelError) Error() string {
	return fmt.Sprintf("invalid log level %q (valid: debug, info, warn, error)", e.Value)
}

// Unwrap returns ErrInvalidLogLevel for errors.Is() compatibility.
func (e *InvalidLogLevelError) Unwrap() error { return ErrInvalidLogLevel }

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string { return string(l) }

// IsValid returns whether the LogLevel is a known level.
func (l LogLevel) IsValid() (bool, []error) {
	switch l {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		return true, nil
	default:
		return false, []error{&InvalidLogLevelError{Value: l}}
	}
}

// SlogLevel maps the level onto log/slog. Unknown levels map to warn.
func (l LogLevel) SlogLevel() slog.Level {
	switch l {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelInfo:
		return slog.LevelInfo
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Runtime: RuntimeNative,
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
			Verbose:     false,
		},
		Log: LogConfig{
			Level: LogLevelWarn,
		},
	}
}
