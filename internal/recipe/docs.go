// SPDX-License-Identifier: MPL-2.0

package recipe

import (
	"github.com/pkmake/pkmake/internal/buildenv"
	"github.com/pkmake/pkmake/internal/manifest"
)

type (
	// DocsOptions accumulates the selections for a documentation build.
	DocsOptions struct {
		acc accumulator
	}

	// DocsRequest is a finalized documentation build.
	DocsRequest struct {
		Common
	}
)

// NewDocs returns empty docs options.
func NewDocs() *DocsOptions { return &DocsOptions{} }

// Err returns the first error recorded by a setter.
func (o *DocsOptions) Err() error { return o.acc.err }

// DryRun prints the plan instead of running it.
func (o *DocsOptions) DryRun(v bool) *DocsOptions { o.acc.dryRun = v; return o }

// Verbose prints the request table and the plan before running it.
func (o *DocsOptions) Verbose(v bool) *DocsOptions { o.acc.verbose = v; return o }

// PackageRoot sets the checkout. Empty means the working directory.
func (o *DocsOptions) PackageRoot(dir string) *DocsOptions { o.acc.packageRoot = dir; return o }

// DistDir overrides the dist directory. Empty resets it.
func (o *DocsOptions) DistDir(dir string) *DocsOptions { o.acc.distDir = dir; return o }

// Platform adds platforms. See Platforms.
func (o *DocsOptions) Platform(raw ...string) *DocsOptions { return o.Platforms(raw...) }

// Platforms parses and adds platforms. If any value is invalid none are added.
func (o *DocsOptions) Platforms(raw ...string) *DocsOptions { o.acc.addPlatforms(raw); return o }

// ClearPlatforms empties the platform selection.
func (o *DocsOptions) ClearPlatforms() *DocsOptions { o.acc.platforms.Clear(); return o }

// Flavor adds flavors. See Flavors.
func (o *DocsOptions) Flavor(raw ...string) *DocsOptions { return o.Flavors(raw...) }

// Flavors parses and adds flavors. If any value is invalid none are added.
func (o *DocsOptions) Flavors(raw ...string) *DocsOptions { o.acc.addFlavors(raw); return o }

// ClearFlavors empties the flavor selection.
func (o *DocsOptions) ClearFlavors() *DocsOptions { o.acc.flavors.Clear(); return o }

// Defines adds key=value defines passed through to the recipe.
func (o *DocsOptions) Defines(raw ...string) *DocsOptions { o.acc.addDefines(raw); return o }

// ClearDefines empties the define list.
func (o *DocsOptions) ClearDefines() *DocsOptions { o.acc.defines.Clear(); return o }

// Finalize returns an immutable snapshot of the options.
func (o *DocsOptions) Finalize() (*DocsRequest, error) {
	if o.acc.err != nil {
		return nil, o.acc.err
	}
	return &DocsRequest{Common: o.acc.common()}, nil
}

// Target implements Recipe.
func (r *DocsRequest) Target() Target { return TargetDocs }

// Settings implements Recipe.
func (r *DocsRequest) Settings() Common { return r.Common.clone() }

// Describe implements Recipe.
func (r *DocsRequest) Describe() []Field { return describeRunRecipe(r.Common) }

// Compile implements Recipe.
func (r *DocsRequest) Compile(_ *buildenv.Env, _ manifest.Reader) (Plan, error) {
	return Plan{runRecipeCommand("docs", r.Common)}, nil
}

// runRecipeCommand assembles the run-recipe command shared by docs and test.
// No platform default is applied.
func runRecipeCommand(name string, c Common) string {
	t := runRecipeFlags
	return runRecipePrefix + " " + name +
		valueFlag("--dist-dir", c.DistDir) +
		format(t.define, c.Defines) +
		format(t.platform, c.Platforms) +
		format(t.flavor, c.Flavors) +
		boolFlag(c.DryRun, "--dry-run")
}

func describeRunRecipe(c Common) []Field {
	return []Field{
		boolField("dry_run", c.DryRun),
		boolField("verbose", c.Verbose),
		stringField("package_root", c.PackageRoot),
		stringField("dist_dir", c.DistDir),
		listField("platforms", c.Platforms),
		listField("flavors", c.Flavors),
		listField("defines", c.Defines),
	}
}
