// SPDX-License-Identifier: MPL-2.0

package execute

import (
	"context"
	"errors"
	"testing"

	"github.com/pkmake/pkmake/internal/buildenv"
	"github.com/pkmake/pkmake/internal/config"
	"github.com/pkmake/pkmake/internal/manifest"
	"github.com/pkmake/pkmake/internal/recipe"
	"github.com/pkmake/pkmake/internal/runtime"
	"github.com/pkmake/pkmake/pkg/platform"
	"github.com/pkmake/pkmake/pkg/types"
)

type (
	fakeEnv struct {
		env  *buildenv.Env
		err  error
		root string
	}

	fakeManifests struct{}

	recordingRuntime struct {
		ctx *runtime.ExecutionContext
	}
)

func (f *fakeEnv) Resolve(root string) (*buildenv.Env, error) {
	f.root = root
	return f.env, f.err
}

func (fakeManifests) Read(string) (*manifest.Info, error) {
	return &manifest.Info{Name: "pkg", Version: "2.1.0", Flavors: []types.Flavor{types.Vanilla}}, nil
}

func (r *recordingRuntime) Name() string { return "virtual" }
func (r *recordingRuntime) Available() bool { return true }
func (r *recordingRuntime) Validate(*runtime.ExecutionContext) error { return nil }
func (r *recordingRuntime) Execute(ctx *runtime.ExecutionContext) *runtime.Result {
	r.ctx = ctx
	return runtime.NewExitCodeResult(4)
}

func testEnv() *buildenv.Env {
	return &buildenv.Env{
		PackageRoot: "/work/pkg",
		Platform:    platform.Cent7,
		PrivateDir:  "/work/pkg/private",
		BuildDir:    "/work/pkg/private/build",
		DistDir:     "/work/pkg/private/dist",
		Manifest:    "/work/pkg/manifest.yaml",
		Show:        "DEV01",
	}
}

func TestService_CompileAndRun(t *testing.T) {
	t.Parallel()

	env := &fakeEnv{env: testEnv()}
	rt := &recordingRuntime{}
	reg := runtime.NewRegistry()
	reg.Register(runtime.RuntimeTypeVirtual, rt)

	svc := NewService(Dependencies{Env: env, Manifests: fakeManifests{}, Runtimes: reg}, "")

	req, err := recipe.NewInstall().PackageRoot("/work/pkg").Finalize()
	if err != nil {
		t.Fatalf("Finalize() error: %v", err)
	}

	compiled, err := svc.Compile(req)
	if err != nil {
		t.Fatalf("Compile() error: %v", err)
	}
	if env.root != "/work/pkg" {
		t.Errorf("resolver root = %q, want /work/pkg", env.root)
	}
	if compiled.Plan.Len() != 2 {
		t.Fatalf("plan = %q, want primary + one install", compiled.Plan)
	}

	result := svc.Run(context.Background(), compiled, runtime.RuntimeTypeVirtual)
	if result.ExitCode != 4 {
		t.Errorf("ExitCode = %d, want 4", result.ExitCode)
	}
	if rt.ctx.Script != compiled.Plan.Script() {
		t.Errorf("script = %q, want %q", rt.ctx.Script, compiled.Plan.Script())
	}
	if rt.ctx.WorkDir != "/work/pkg" {
		t.Errorf("WorkDir = %q, want package root", rt.ctx.WorkDir)
	}
}

func TestService_CompileErrors(t *testing.T) {
	t.Parallel()

	t.Run("environment", func(t *testing.T) {
		t.Parallel()
		missing := &buildenv.MissingEnvError{Name: buildenv.EnvPlatform}
		svc := NewService(Dependencies{Env: &fakeEnv{err: missing}}, "")

		req, err := recipe.NewBuild().Finalize()
		if err != nil {
			t.Fatal(err)
		}
		if _, err := svc.Compile(req); !errors.Is(err, buildenv.ErrEnvNotSet) {
			t.Errorf("Compile() error = %v, want ErrEnvNotSet", err)
		}
	})

	t.Run("recipe", func(t *testing.T) {
		t.Parallel()
		svc := NewService(Dependencies{Env: &fakeEnv{env: testEnv()}, Manifests: fakeManifests{}}, "")

		req, err := recipe.NewInstall().Level("facility").Finalize()
		if err != nil {
			t.Fatal(err)
		}
		// no VCS detected and none chosen
		if _, err := svc.Compile(req); !errors.Is(err, recipe.ErrUnknownVcs) {
			t.Errorf("Compile() error = %v, want ErrUnknownVcs", err)
		}
	})
}

func TestService_RunUnknownRuntime(t *testing.T) {
	t.Parallel()

	svc := NewService(Dependencies{Env: &fakeEnv{env: testEnv()}}, "")
	result := svc.Run(context.Background(), &Compiled{Env: testEnv(), Plan: recipe.Plan{"true"}}, "container")
	if !errors.Is(result.Error, runtime.ErrInvalidRuntimeType) {
		t.Errorf("Run() error = %v, want ErrInvalidRuntimeType", result.Error)
	}
}

func TestResolveRuntime(t *testing.T) {
	t.Parallel()

	virtualCfg := config.DefaultConfig()
	virtualCfg.Runtime = config.RuntimeVirtual

	tests := []struct {
		name     string
		override string
		cfg      *config.Config
		want     runtime.RuntimeType
		wantErr  error
	}{
		{name: "default", want: runtime.RuntimeTypeNative},
		{name: "config", cfg: virtualCfg, want: runtime.RuntimeTypeVirtual},
		{name: "override wins", override: "native", cfg: virtualCfg, want: runtime.RuntimeTypeNative},
		{name: "bad override", override: "container", wantErr: runtime.ErrInvalidRuntimeType},
		{name: "bad config", cfg: &config.Config{Runtime: "container"}, wantErr: runtime.ErrInvalidRuntimeType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ResolveRuntime(tt.override, tt.cfg)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("ResolveRuntime() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("ResolveRuntime() = %q, %v, want %q", got, err, tt.want)
			}
		})
	}
}
