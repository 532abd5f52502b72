// SPDX-License-Identifier: MPL-2.0

package recipe

import (
	"slices"
	"strings"

	"github.com/pkmake/pkmake/internal/buildenv"
	"github.com/pkmake/pkmake/internal/manifest"
)

type (
	// RunOptions accumulates the selections for running an arbitrary recipe.
	RunOptions struct {
		acc  accumulator
		vars []string
	}

	// RunRequest is a finalized recipe run. Vars holds the recipe name
	// followed by the arguments passed through to it.
	RunRequest struct {
		Common
		Vars []string
	}
)

// NewRun returns empty run options.
func NewRun() *RunOptions { return &RunOptions{} }

// Err returns the first error recorded by a setter.
func (o *RunOptions) Err() error { return o.acc.err }

// DryRun prints the plan instead of running it.
func (o *RunOptions) DryRun(v bool) *RunOptions { o.acc.dryRun = v; return o }

// Verbose prints the request table and the plan before running it.
func (o *RunOptions) Verbose(v bool) *RunOptions { o.acc.verbose = v; return o }

// PackageRoot sets the checkout. Empty means the working directory.
func (o *RunOptions) PackageRoot(dir string) *RunOptions { o.acc.packageRoot = dir; return o }

// Platform adds platforms. See Platforms.
func (o *RunOptions) Platform(raw ...string) *RunOptions { return o.Platforms(raw...) }

// Platforms parses and adds platforms. If any value is invalid none are added.
func (o *RunOptions) Platforms(raw ...string) *RunOptions { o.acc.addPlatforms(raw); return o }

// ClearPlatforms empties the platform selection.
func (o *RunOptions) ClearPlatforms() *RunOptions { o.acc.platforms.Clear(); return o }

// Flavor adds flavors. See Flavors.
func (o *RunOptions) Flavor(raw ...string) *RunOptions { return o.Flavors(raw...) }

// Flavors parses and adds flavors. If any value is invalid none are added.
func (o *RunOptions) Flavors(raw ...string) *RunOptions { o.acc.addFlavors(raw); return o }

// ClearFlavors empties the flavor selection.
func (o *RunOptions) ClearFlavors() *RunOptions { o.acc.flavors.Clear(); return o }

// Vars appends positional arguments. The first one overall is the recipe name.
// Unlike the other multi-valued setters duplicates are kept.
func (o *RunOptions) Vars(args ...string) *RunOptions {
	o.vars = append(o.vars, args...)
	return o
}

// ClearVars empties the positional arguments.
func (o *RunOptions) ClearVars() *RunOptions { o.vars = nil; return o }

// Finalize validates the recipe name and returns an immutable snapshot.
//
// Verbose and dry-run are kept in step with the pass-through arguments: a
// -v/--verbose or -n/--dry-run argument turns the matching option on, and an
// option that is on but missing from the arguments is appended to them.
func (o *RunOptions) Finalize() (*RunRequest, error) {
	if o.acc.err != nil {
		return nil, o.acc.err
	}
	if len(o.vars) == 0 {
		return nil, ErrMissingRecipe
	}
	if strings.HasPrefix(o.vars[0], "-") {
		return nil, &InvalidRecipeNameError{Value: o.vars[0]}
	}

	req := &RunRequest{Common: o.acc.common(), Vars: slices.Clone(o.vars)}
	verboseFound := slices.ContainsFunc(req.Vars, func(v string) bool { return v == "-v" || v == "--verbose" })
	dryRunFound := slices.ContainsFunc(req.Vars, func(v string) bool { return v == "-n" || v == "--dry-run" })

	switch {
	case req.Verbose && !verboseFound:
		req.Vars = append(req.Vars, "--verbose")
	case verboseFound:
		req.Verbose = true
	}
	switch {
	case req.DryRun && !dryRunFound:
		req.Vars = append(req.Vars, "--dry-run")
	case dryRunFound:
		req.DryRun = true
	}
	return req, nil
}

// Recipe returns the recipe name.
func (r *RunRequest) Recipe() string {
	if len(r.Vars) == 0 {
		return ""
	}
	return r.Vars[0]
}

// Args returns the arguments passed through to the recipe.
func (r *RunRequest) Args() []string {
	if len(r.Vars) < 2 {
		return nil
	}
	return slices.Clone(r.Vars[1:])
}

// Target implements Recipe.
func (r *RunRequest) Target() Target { return TargetRun }

// Settings implements Recipe.
func (r *RunRequest) Settings() Common { return r.Common.clone() }

// Describe implements Recipe.
func (r *RunRequest) Describe() []Field {
	return []Field{
		boolField("verbose", r.Verbose),
		boolField("dry_run", r.DryRun),
		stringField("package_root", r.PackageRoot),
		listField("platforms", r.Platforms),
		listField("flavors", r.Flavors),
		listField("vars", r.Vars),
	}
}

// Compile implements Recipe. Platforms default to the host platform.
func (r *RunRequest) Compile(env *buildenv.Env, _ manifest.Reader) (Plan, error) {
	name := r.Recipe()
	if name == "" {
		return nil, ErrMissingRecipe
	}
	if strings.HasPrefix(name, "-") {
		return nil, &InvalidRecipeNameError{Value: name}
	}

	t := runRecipeFlags
	cmd := runRecipePrefix + " " + name +
		format(t.flavor, r.Flavors) +
		format(t.platform, orDefault(r.Platforms, env.Platform))
	if args := r.Args(); len(args) > 0 {
		cmd += " " + strings.Join(args, " ")
	}
	return Plan{cmd}, nil
}
