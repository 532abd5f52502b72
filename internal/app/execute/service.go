// SPDX-License-Identifier: MPL-2.0

package execute

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pkmake/pkmake/internal/buildenv"
	"github.com/pkmake/pkmake/internal/config"
	"github.com/pkmake/pkmake/internal/manifest"
	"github.com/pkmake/pkmake/internal/recipe"
	"github.com/pkmake/pkmake/internal/runtime"
)

type (
	// EnvResolver resolves the package environment rooted at a directory.
	EnvResolver interface {
		Resolve(root string) (*buildenv.Env, error)
	}

	// Dependencies are the collaborators a Service runs with. Zero fields
	// fall back to the process environment, the YAML manifest reader, the
	// default runtime registry and the process stdio.
	Dependencies struct {
		Env       EnvResolver
		Manifests manifest.Reader
		Runtimes  *runtime.Registry
		Stdout    io.Writer
		Stderr    io.Writer
		Stdin     io.Reader
	}

	// Service compiles and runs recipes.
	Service struct {
		env       EnvResolver
		manifests manifest.Reader
		runtimes  *runtime.Registry
		stdout    io.Writer
		stderr    io.Writer
		stdin     io.Reader
	}

	// Compiled is a recipe compiled against a resolved environment.
	Compiled struct {
		Recipe recipe.Recipe
		Env    *buildenv.Env
		Plan   recipe.Plan
	}
)

// NewService builds a Service from deps. shell is the native runtime shell
// override used when deps.Runtimes is nil.
func NewService(deps Dependencies, shell string) *Service {
	s := &Service{
		env:       deps.Env,
		manifests: deps.Manifests,
		runtimes:  deps.Runtimes,
		stdout:    deps.Stdout,
		stderr:    deps.Stderr,
		stdin:     deps.Stdin,
	}
	if s.env == nil {
		s.env = buildenv.Resolver{}
	}
	if s.manifests == nil {
		s.manifests = manifest.FileReader{}
	}
	if s.runtimes == nil {
		s.runtimes = runtime.NewDefaultRegistry(shell)
	}
	if s.stdout == nil {
		s.stdout = os.Stdout
	}
	if s.stderr == nil {
		s.stderr = os.Stderr
	}
	if s.stdin == nil {
		s.stdin = os.Stdin
	}
	return s
}

// Compile resolves the environment for rec's package root and compiles the plan.
func (s *Service) Compile(rec recipe.Recipe) (*Compiled, error) {
	env, err := s.env.Resolve(rec.Settings().Root())
	if err != nil {
		return nil, err
	}

	plan, err := rec.Compile(env, s.manifests)
	if err != nil {
		return nil, err
	}

	slog.Debug("compiled plan", "target", rec.Target(), "commands", plan.Len())
	return &Compiled{Recipe: rec, Env: env, Plan: plan}, nil
}

// Run executes the compiled plan as one script in the package root using
// the runtime of type typ.
func (s *Service) Run(ctx context.Context, c *Compiled, typ runtime.RuntimeType) *runtime.Result {
	if err := typ.Validate(); err != nil {
		return runtime.NewErrorResult(1, err)
	}

	execCtx := &runtime.ExecutionContext{
		Context: ctx,
		Script:  c.Plan.Script(),
		WorkDir: c.Env.PackageRoot,
		Stdout:  s.stdout,
		Stderr:  s.stderr,
		Stdin:   s.stdin,
	}

	slog.Debug("running plan", "runtime", typ, "workdir", execCtx.WorkDir)
	result := s.runtimes.Execute(typ, execCtx)
	slog.Debug("plan finished", "exit_code", result.ExitCode, "error", result.Error)
	return result
}

// ResolveRuntime applies runtime-selection precedence:
//  1. CLI override
//  2. Config runtime
//  3. native
func ResolveRuntime(override string, cfg *config.Config) (runtime.RuntimeType, error) {
	if override != "" {
		typ := runtime.RuntimeType(override)
		if err := typ.Validate(); err != nil {
			return "", err
		}
		return typ, nil
	}

	if cfg != nil && cfg.Runtime != "" {
		typ := runtime.RuntimeType(cfg.Runtime)
		if err := typ.Validate(); err != nil {
			return "", fmt.Errorf("invalid runtime in config: %w", err)
		}
		return typ, nil
	}

	return runtime.RuntimeTypeNative, nil
}
