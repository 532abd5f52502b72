// SPDX-License-Identifier: MPL-2.0

package recipe

import (
	"github.com/pkmake/pkmake/internal/buildenv"
	"github.com/pkmake/pkmake/internal/manifest"
)

type (
	// TestOptions accumulates the selections for a test run.
	TestOptions struct {
		acc accumulator
	}

	// TestRequest is a finalized test run.
	TestRequest struct {
		Common
	}
)

// NewTest returns empty test options.
func NewTest() *TestOptions { return &TestOptions{} }

// Err returns the first error recorded by a setter.
func (o *TestOptions) Err() error { return o.acc.err }

// DryRun prints the plan instead of running it.
func (o *TestOptions) DryRun(v bool) *TestOptions { o.acc.dryRun = v; return o }

// Verbose prints the request table and the plan before running it.
func (o *TestOptions) Verbose(v bool) *TestOptions { o.acc.verbose = v; return o }

// PackageRoot sets the checkout to test. Empty means the working directory.
func (o *TestOptions) PackageRoot(dir string) *TestOptions { o.acc.packageRoot = dir; return o }

// DistDir overrides the dist directory. Empty resets it.
func (o *TestOptions) DistDir(dir string) *TestOptions { o.acc.distDir = dir; return o }

// Platform adds platforms. See Platforms.
func (o *TestOptions) Platform(raw ...string) *TestOptions { return o.Platforms(raw...) }

// Platforms parses and adds platforms. If any value is invalid none are added.
func (o *TestOptions) Platforms(raw ...string) *TestOptions { o.acc.addPlatforms(raw); return o }

// ClearPlatforms empties the platform selection.
func (o *TestOptions) ClearPlatforms() *TestOptions { o.acc.platforms.Clear(); return o }

// Flavor adds flavors. See Flavors.
func (o *TestOptions) Flavor(raw ...string) *TestOptions { return o.Flavors(raw...) }

// Flavors parses and adds flavors. If any value is invalid none are added.
func (o *TestOptions) Flavors(raw ...string) *TestOptions { o.acc.addFlavors(raw); return o }

// ClearFlavors empties the flavor selection.
func (o *TestOptions) ClearFlavors() *TestOptions { o.acc.flavors.Clear(); return o }

// Defines adds key=value defines passed through to the recipe.
func (o *TestOptions) Defines(raw ...string) *TestOptions { o.acc.addDefines(raw); return o }

// ClearDefines empties the define list.
func (o *TestOptions) ClearDefines() *TestOptions { o.acc.defines.Clear(); return o }

// Finalize returns an immutable snapshot of the options.
func (o *TestOptions) Finalize() (*TestRequest, error) {
	if o.acc.err != nil {
		return nil, o.acc.err
	}
	return &TestRequest{Common: o.acc.common()}, nil
}

// Target implements Recipe.
func (r *TestRequest) Target() Target { return TargetTest }

// Settings implements Recipe.
func (r *TestRequest) Settings() Common { return r.Common.clone() }

// Describe implements Recipe.
func (r *TestRequest) Describe() []Field { return describeRunRecipe(r.Common) }

// Compile implements Recipe.
func (r *TestRequest) Compile(_ *buildenv.Env, _ manifest.Reader) (Plan, error) {
	return Plan{runRecipeCommand("test", r.Common)}, nil
}
