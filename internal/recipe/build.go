// SPDX-License-Identifier: MPL-2.0

package recipe

import (
	"github.com/pkmake/pkmake/internal/buildenv"
	"github.com/pkmake/pkmake/internal/manifest"
)

type (
	// BuildOptions accumulates the selections for a build.
	BuildOptions struct {
		acc          accumulator
		level        string
		withDocs     bool
		metadataOnly bool
		work         bool
	}

	// BuildRequest is a finalized build.
	BuildRequest struct {
		Common
		Level        string
		WithDocs     bool
		MetadataOnly bool
		Work         bool
	}
)

// NewBuild returns build options with docs enabled.
func NewBuild() *BuildOptions {
	return &BuildOptions{withDocs: true}
}

// Err returns the first error recorded by a setter.
func (o *BuildOptions) Err() error { return o.acc.err }

// Clean passes --clean to pk build.
func (o *BuildOptions) Clean(v bool) *BuildOptions { o.acc.clean = v; return o }

// DryRun prints the plan instead of running it.
func (o *BuildOptions) DryRun(v bool) *BuildOptions { o.acc.dryRun = v; return o }

// Verbose prints the request table and the plan before running it.
func (o *BuildOptions) Verbose(v bool) *BuildOptions { o.acc.verbose = v; return o }

// Work passes --work to pk build.
func (o *BuildOptions) Work(v bool) *BuildOptions { o.work = v; return o }

// WithDocs controls whether documentation is built alongside the package.
func (o *BuildOptions) WithDocs(v bool) *BuildOptions { o.withDocs = v; return o }

// MetadataOnly limits the build to package metadata. It suppresses --with-docs.
func (o *BuildOptions) MetadataOnly(v bool) *BuildOptions { o.metadataOnly = v; return o }

// PackageRoot sets the checkout to build. Empty means the working directory.
func (o *BuildOptions) PackageRoot(dir string) *BuildOptions { o.acc.packageRoot = dir; return o }

// DistDir overrides the dist directory. Empty resets it.
func (o *BuildOptions) DistDir(dir string) *BuildOptions { o.acc.distDir = dir; return o }

// Level sets the build level. Empty resets it.
func (o *BuildOptions) Level(level string) *BuildOptions { o.level = level; return o }

// Platform adds platforms. See Platforms.
func (o *BuildOptions) Platform(raw ...string) *BuildOptions { return o.Platforms(raw...) }

// Platforms parses and adds platforms, keeping first-insertion order.
// If any value is invalid none are added and the error is recorded.
func (o *BuildOptions) Platforms(raw ...string) *BuildOptions { o.acc.addPlatforms(raw); return o }

// ClearPlatforms empties the platform selection.
func (o *BuildOptions) ClearPlatforms() *BuildOptions { o.acc.platforms.Clear(); return o }

// Flavor adds flavors. See Flavors.
func (o *BuildOptions) Flavor(raw ...string) *BuildOptions { return o.Flavors(raw...) }

// Flavors parses and adds flavors with the same rules as Platforms.
func (o *BuildOptions) Flavors(raw ...string) *BuildOptions { o.acc.addFlavors(raw); return o }

// ClearFlavors empties the flavor selection.
func (o *BuildOptions) ClearFlavors() *BuildOptions { o.acc.flavors.Clear(); return o }

// Overrides parses and adds name=version pairs.
func (o *BuildOptions) Overrides(raw ...string) *BuildOptions { o.acc.addOverrides(raw); return o }

// ClearOverrides empties the override list.
func (o *BuildOptions) ClearOverrides() *BuildOptions { o.acc.overrides.Clear(); return o }

// Defines adds key=value defines passed through to pk.
func (o *BuildOptions) Defines(raw ...string) *BuildOptions { o.acc.addDefines(raw); return o }

// ClearDefines empties the define list.
func (o *BuildOptions) ClearDefines() *BuildOptions { o.acc.defines.Clear(); return o }

// Finalize returns an immutable snapshot of the options.
func (o *BuildOptions) Finalize() (*BuildRequest, error) {
	if o.acc.err != nil {
		return nil, o.acc.err
	}
	return &BuildRequest{
		Common:       o.acc.common(),
		Level:        o.level,
		WithDocs:     o.withDocs,
		MetadataOnly: o.metadataOnly,
		Work:         o.work,
	}, nil
}

// Target implements Recipe.
func (r *BuildRequest) Target() Target { return TargetBuild }

// Settings implements Recipe.
func (r *BuildRequest) Settings() Common { return r.Common.clone() }

// Describe implements Recipe.
func (r *BuildRequest) Describe() []Field {
	return []Field{
		boolField("clean", r.Clean),
		boolField("dry_run", r.DryRun),
		boolField("verbose", r.Verbose),
		boolField("with_docs", r.WithDocs),
		boolField("metadata_only", r.MetadataOnly),
		boolField("work", r.Work),
		stringField("package_root", r.PackageRoot),
		stringField("dist_dir", r.DistDir),
		stringField("level", r.Level),
		listField("platforms", r.Platforms),
		listField("flavors", r.Flavors),
		listField("overrides", r.Overrides),
		listField("defines", r.Defines),
	}
}

// Compile implements Recipe. A build is a single audit-and-build command; no
// platform default is applied.
func (r *BuildRequest) Compile(_ *buildenv.Env, _ manifest.Reader) (Plan, error) {
	t := buildFlags
	cmd := buildPrefix +
		boolFlag(r.Clean, "--clean") +
		valueFlag("--dist-dir", r.DistDir) +
		boolFlag(r.WithDocs && !r.MetadataOnly, "--with-docs") +
		format(t.flavor, r.Flavors) +
		valueFlag("--level", r.Level) +
		boolFlag(r.MetadataOnly, "--metadata-only") +
		format(t.override, r.Overrides) +
		format(t.platform, r.Platforms) +
		format(t.define, r.Defines) +
		boolFlag(r.Work, "--work")
	return Plan{cmd}, nil
}
