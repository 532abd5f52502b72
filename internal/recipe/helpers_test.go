// SPDX-License-Identifier: MPL-2.0

package recipe

import (
	"errors"
	"slices"
	"testing"

	"github.com/pkmake/pkmake/internal/buildenv"
	"github.com/pkmake/pkmake/internal/manifest"
	"github.com/pkmake/pkmake/pkg/platform"
	"github.com/pkmake/pkmake/pkg/types"
)

const testDist = "/work/pkg/private/dist"

// stubManifests returns a fixed Info and counts reads.
type stubManifests struct {
	info  *manifest.Info
	err   error
	reads int
}

func (s *stubManifests) Read(string) (*manifest.Info, error) {
	s.reads++
	if s.err != nil {
		return nil, s.err
	}
	return s.info, nil
}

func pkgManifest(flavors ...types.Flavor) *stubManifests {
	if len(flavors) == 0 {
		flavors = []types.Flavor{types.Vanilla}
	}
	return &stubManifests{info: &manifest.Info{Name: "pkg", Version: "1.0.0", Flavors: flavors}}
}

func testEnv(show string, vcs types.Vcs) *buildenv.Env {
	return &buildenv.Env{
		PackageRoot: "/work/pkg",
		Platform:    platform.Cent7,
		PrivateDir:  "/work/pkg/private",
		BuildDir:    "/work/pkg/private/build",
		DistDir:     testDist,
		Vcs:         vcs,
		Manifest:    "/work/pkg/manifest.yaml",
		Show:        show,
	}
}

func assertPlan(t *testing.T, got Plan, want ...string) {
	t.Helper()
	if !slices.Equal([]string(got), want) {
		t.Errorf("plan mismatch\n got: %q\nwant: %q", []string(got), want)
	}
}

func mustCompile(t *testing.T, r Recipe, env *buildenv.Env, m manifest.Reader) Plan {
	t.Helper()
	plan, err := r.Compile(env, m)
	if err != nil {
		t.Fatalf("Compile() error: %v", err)
	}
	return plan
}

func assertErrorIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("error = %v, want %v", err, target)
	}
}
