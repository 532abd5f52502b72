// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"io"
	"os"

	"github.com/pkmake/pkmake/internal/app/execute"
	"github.com/pkmake/pkmake/internal/buildenv"
	"github.com/pkmake/pkmake/internal/config"
	"github.com/pkmake/pkmake/internal/manifest"
	"github.com/pkmake/pkmake/internal/runtime"
)

type (
	// App wires CLI services and shared dependencies. It is the composition root for
	// the CLI layer; all Cobra command handlers receive an App reference.
	App struct {
		Config    ConfigProvider
		Env       execute.EnvResolver
		Manifests manifest.Reader
		Runtimes  *runtime.Registry
		stdout    io.Writer
		stderr    io.Writer

		// per-invocation state set by the root command
		cfg        *config.Config
		cfgPath    string
		configFile string
		logLevel   string
		runtime    string
	}

	// Dependencies defines the injection points for building an App. Nil fields are
	// replaced with production defaults by NewApp.
	Dependencies struct {
		Config    ConfigProvider
		Env       execute.EnvResolver
		Manifests manifest.Reader
		Runtimes  *runtime.Registry
		Stdout    io.Writer
		Stderr    io.Writer
	}

	// ConfigProvider loads configuration using explicit options.
	ConfigProvider interface {
		Load(ctx context.Context, opts config.LoadOptions) (*config.Config, string, error)
	}
)

// NewApp creates an App with defaults for omitted dependencies.
func NewApp(deps Dependencies) *App {
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}
	if deps.Env == nil {
		deps.Env = buildenv.Resolver{}
	}
	if deps.Manifests == nil {
		deps.Manifests = manifest.FileReader{}
	}

	return &App{
		Config:    deps.Config,
		Env:       deps.Env,
		Manifests: deps.Manifests,
		Runtimes:  deps.Runtimes,
		stdout:    deps.Stdout,
		stderr:    deps.Stderr,
	}
}

// settings returns the loaded configuration, or the defaults before the
// root command has run.
func (a *App) settings() *config.Config {
	if a.cfg == nil {
		return config.DefaultConfig()
	}
	return a.cfg
}

// service builds the execute service for the current invocation.
func (a *App) service() *execute.Service {
	return execute.NewService(execute.Dependencies{
		Env:       a.Env,
		Manifests: a.Manifests,
		Runtimes:  a.Runtimes,
		Stdout:    a.stdout,
		Stderr:    a.stderr,
	}, a.settings().Shell)
}

func (a *App) loadOptions() config.LoadOptions {
	return config.LoadOptions{ConfigFilePath: a.configFile}
}
