// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	goruntime "runtime"
	"strings"
	"testing"

	"github.com/pkmake/pkmake/internal/issue"
	"github.com/pkmake/pkmake/internal/testutil"
	"github.com/pkmake/pkmake/pkg/platform"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.cue")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	if cfg.Runtime != RuntimeNative {
		t.Errorf("expected default runtime to be native, got %s", cfg.Runtime)
	}
	if cfg.Shell != "" {
		t.Errorf("expected default shell to be empty, got %q", cfg.Shell)
	}
	if cfg.UI.ColorScheme != ColorSchemeAuto {
		t.Errorf("expected default color scheme to be auto, got %s", cfg.UI.ColorScheme)
	}
	if cfg.UI.Verbose {
		t.Error("expected default verbose to be false")
	}
	if cfg.Log.Level != LogLevelWarn {
		t.Errorf("expected default log level to be warn, got %s", cfg.Log.Level)
	}
	if valid, errs := cfg.IsValid(); !valid {
		t.Errorf("DefaultConfig().IsValid() = %v", errs)
	}
}

func TestConfigDir_Override(t *testing.T) {
	dir := t.TempDir()
	SetConfigDirOverride(dir)
	t.Cleanup(Reset)

	got, err := ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir() error: %v", err)
	}
	if got != dir {
		t.Errorf("ConfigDir() = %q, want %q", got, dir)
	}
}

func TestConfigDir_Home(t *testing.T) {
	// Not parallel: rewrites HOME and XDG_CONFIG_HOME.
	if goruntime.GOOS == platform.Windows {
		t.Skip("Windows resolves the config dir from APPDATA")
	}

	home := t.TempDir()
	t.Cleanup(testutil.SetHomeDir(t, home))
	t.Cleanup(testutil.MustUnsetenv(t, "XDG_CONFIG_HOME"))

	dir, err := ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir() error: %v", err)
	}
	want := filepath.Join(home, ".config", AppName)
	if goruntime.GOOS == platform.Darwin {
		want = filepath.Join(home, "Library", "Application Support", AppName)
	}
	if dir != want {
		t.Errorf("ConfigDir() = %q, want %q", dir, want)
	}
}

func TestFilePath(t *testing.T) {
	t.Parallel()

	got, err := FilePath(LoadOptions{ConfigFilePath: "/etc/pk-make.cue"})
	if err != nil || got != "/etc/pk-make.cue" {
		t.Errorf("FilePath(explicit) = %q, %v", got, err)
	}

	got, err = FilePath(LoadOptions{ConfigDirPath: "/tmp/cfg"})
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join("/tmp/cfg", "config.cue"); got != want {
		t.Errorf("FilePath(dir) = %q, want %q", got, want)
	}
}

func TestLoad_DefaultsWhenNoConfigFile(t *testing.T) {
	t.Parallel()

	cfg, path, err := NewProvider().Load(context.Background(), LoadOptions{ConfigDirPath: t.TempDir()})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if path != "" {
		t.Errorf("resolved path = %q, want empty", path)
	}
	if *cfg != *DefaultConfig() {
		t.Errorf("Load() = %+v, want defaults", cfg)
	}
}

func TestLoad_FromConfigDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	content := "runtime: \"virtual\"\nui: verbose: true\n"
	if err := os.WriteFile(filepath.Join(dir, "config.cue"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, path, err := NewProvider().Load(context.Background(), LoadOptions{ConfigDirPath: dir})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if path != filepath.Join(dir, "config.cue") {
		t.Errorf("resolved path = %q", path)
	}
	if cfg.Runtime != RuntimeVirtual {
		t.Errorf("Runtime = %s, want virtual", cfg.Runtime)
	}
	if !cfg.UI.Verbose {
		t.Error("UI.Verbose = false, want true")
	}
	// untouched keys keep their defaults
	if cfg.UI.ColorScheme != ColorSchemeAuto || cfg.Log.Level != LogLevelWarn {
		t.Errorf("defaults not preserved: %+v", cfg)
	}
}

func TestLoad_CustomPath(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
runtime: "native"
shell: "/bin/bash"
log: level: "debug"
`)

	cfg, resolved, err := NewProvider().Load(context.Background(), LoadOptions{ConfigFilePath: path})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if resolved != path {
		t.Errorf("resolved path = %q, want %q", resolved, path)
	}
	if cfg.Shell != "/bin/bash" {
		t.Errorf("Shell = %q, want /bin/bash", cfg.Shell)
	}
	if cfg.Log.Level != LogLevelDebug {
		t.Errorf("Log.Level = %s, want debug", cfg.Log.Level)
	}
}

func TestLoad_CustomPath_NotFound(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "missing.cue")
	_, _, err := NewProvider().Load(context.Background(), LoadOptions{ConfigFilePath: missing})
	if err == nil {
		t.Fatal("expected error for non-existent config file")
	}

	errStr := err.Error()
	for _, want := range []string{"load configuration", missing, "config file not found"} {
		if !strings.Contains(errStr, want) {
			t.Errorf("error %q should contain %q", errStr, want)
		}
	}

	var ae *issue.ActionableError
	if !errors.As(err, &ae) {
		t.Fatal("expected error to be *issue.ActionableError")
	}
	if len(ae.Hints) == 0 {
		t.Error("expected ActionableError to carry hints")
	}
}

func TestLoad_SchemaViolations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{name: "unknown runtime", content: `runtime: "container"`, want: "runtime"},
		{name: "unknown field", content: `container_engine: "docker"`, want: "container_engine"},
		{name: "empty shell", content: `shell: ""`, want: "shell"},
		{name: "bad log level", content: `log: level: "trace"`, want: "level"},
		{name: "syntax error", content: `runtime: "native`, want: "invalid config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := writeConfig(t, tt.content)
			_, _, err := NewProvider().Load(context.Background(), LoadOptions{ConfigFilePath: path})
			if err == nil {
				t.Fatal("Load() = nil error, want schema violation")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q should mention %q", err, tt.want)
			}
		})
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PKMAKE_RUNTIME", "virtual")
	t.Setenv("PKMAKE_UI_VERBOSE", "true")

	path := writeConfig(t, `runtime: "native"`)
	cfg, _, err := NewProvider().Load(context.Background(), LoadOptions{ConfigFilePath: path})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Runtime != RuntimeVirtual {
		t.Errorf("Runtime = %s, want env override virtual", cfg.Runtime)
	}
	if !cfg.UI.Verbose {
		t.Error("UI.Verbose = false, want env override true")
	}
}

func TestLoad_InvalidEnvOverride(t *testing.T) {
	t.Setenv("PKMAKE_LOG_LEVEL", "loud")

	_, _, err := NewProvider().Load(context.Background(), LoadOptions{ConfigDirPath: t.TempDir()})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("Load() error = %v, want ErrInvalidConfig", err)
	}
	if !strings.Contains(err.Error(), `"loud"`) {
		t.Errorf("error %q should name the rejected value", err)
	}
}

func TestLoad_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, _, err := NewProvider().Load(ctx, LoadOptions{}); !errors.Is(err, context.Canceled) {
		t.Errorf("Load() error = %v, want context.Canceled", err)
	}
}

func TestCreateDefaultConfig(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "config.cue")

	written, err := CreateDefaultConfig(path, false)
	if err != nil || !written {
		t.Fatalf("CreateDefaultConfig() = %v, %v", written, err)
	}

	// An existing file is kept without force.
	if err := os.WriteFile(path, []byte(`runtime: "virtual"`), 0o644); err != nil {
		t.Fatal(err)
	}
	if written, err := CreateDefaultConfig(path, false); err != nil || written {
		t.Errorf("CreateDefaultConfig(existing) = %v, %v", written, err)
	}

	if written, err := CreateDefaultConfig(path, true); err != nil || !written {
		t.Errorf("CreateDefaultConfig(force) = %v, %v", written, err)
	}
	cfg, _, err := NewProvider().Load(context.Background(), LoadOptions{ConfigFilePath: path})
	if err != nil {
		t.Fatalf("Load() of generated config: %v", err)
	}
	if *cfg != *DefaultConfig() {
		t.Errorf("generated config loads as %+v, want defaults", cfg)
	}
}

func TestGenerateCUE_RoundTrip(t *testing.T) {
	t.Parallel()

	cfg := &Config{
		Runtime: RuntimeVirtual,
		Shell:   "/usr/bin/zsh",
		UI:      UIConfig{ColorScheme: ColorSchemeDark, Verbose: true},
		Log:     LogConfig{Level: LogLevelInfo},
	}
	path := writeConfig(t, GenerateCUE(cfg))

	got, _, err := NewProvider().Load(context.Background(), LoadOptions{ConfigFilePath: path})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if *got != *cfg {
		t.Errorf("round trip = %+v, want %+v", got, cfg)
	}
}
