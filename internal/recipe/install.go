// SPDX-License-Identifier: MPL-2.0

package recipe

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkmake/pkmake/internal/buildenv"
	"github.com/pkmake/pkmake/internal/manifest"
	"github.com/pkmake/pkmake/pkg/orderedset"
	"github.com/pkmake/pkmake/pkg/types"
)

type (
	// InstallOptions accumulates the selections for an install.
	InstallOptions struct {
		acc      accumulator
		withDocs bool
		work     bool
		context  types.Context
		show     string
		level    string
		vcs      types.Vcs
		logfile  string
		maxJobs  int
		sites    orderedset.Set[types.Site]
	}

	// InstallRequest is a finalized install.
	InstallRequest struct {
		Common
		WithDocs bool
		Work     bool
		// Context is empty when not given; compilation defaults it to user.
		Context types.Context
		Show    string
		Level   string
		Sites   []types.Site
		// Vcs is the user's choice for checkouts tracked by both git and svn.
		Vcs     types.Vcs
		Logfile string
		MaxJobs int
	}
)

// NewInstall returns install options with docs enabled.
func NewInstall() *InstallOptions {
	return &InstallOptions{withDocs: true}
}

// Err returns the first error recorded by a setter.
func (o *InstallOptions) Err() error { return o.acc.err }

// Clean passes --clean to the pk build step.
func (o *InstallOptions) Clean(v bool) *InstallOptions { o.acc.clean = v; return o }

// DryRun prints the plan instead of running it.
func (o *InstallOptions) DryRun(v bool) *InstallOptions { o.acc.dryRun = v; return o }

// Verbose prints the request table and the plan before running it.
func (o *InstallOptions) Verbose(v bool) *InstallOptions { o.acc.verbose = v; return o }

// Work passes --work to the pk build step.
func (o *InstallOptions) Work(v bool) *InstallOptions { o.work = v; return o }

// WithDocs controls whether documentation is built before installing.
func (o *InstallOptions) WithDocs(v bool) *InstallOptions { o.withDocs = v; return o }

// PackageRoot sets the checkout to install. Empty means the working directory.
func (o *InstallOptions) PackageRoot(dir string) *InstallOptions {
	o.acc.packageRoot = dir
	return o
}

// DistDir overrides the dist directory. Empty resets it.
func (o *InstallOptions) DistDir(dir string) *InstallOptions { o.acc.distDir = dir; return o }

// BuildDir overrides the build directory. Empty resets it.
func (o *InstallOptions) BuildDir(dir string) *InstallOptions { o.acc.buildDir = dir; return o }

// Logfile sets the install log path. Empty resets it.
func (o *InstallOptions) Logfile(path string) *InstallOptions { o.logfile = path; return o }

// MaxJobs caps install parallelism. Zero resets it; negative values are an error.
func (o *InstallOptions) MaxJobs(n int) *InstallOptions {
	if n < 0 {
		o.acc.fail(fmt.Errorf("%w: %d", ErrInvalidMaxJobs, n))
		return o
	}
	o.maxJobs = n
	return o
}

// Level sets the raw install level. It cannot be combined with a context or
// show. Empty resets it.
func (o *InstallOptions) Level(level string) *InstallOptions {
	o.level = level
	o.checkScope()
	return o
}

// Context parses and sets the install context. Empty resets it.
func (o *InstallOptions) Context(raw string) *InstallOptions {
	if raw == "" {
		o.context = ""
		return o
	}
	c, err := types.ParseContext(raw)
	if err != nil {
		o.acc.fail(err)
		return o
	}
	o.context = c
	o.checkScope()
	return o
}

// Show sets the show name. Empty resets it.
func (o *InstallOptions) Show(show string) *InstallOptions {
	o.show = show
	o.checkScope()
	return o
}

// Vcs parses and sets the VCS used for facility installs. Empty resets it.
func (o *InstallOptions) Vcs(raw string) *InstallOptions {
	if raw == "" {
		o.vcs = ""
		return o
	}
	v, err := types.ParseVcs(raw)
	if err != nil {
		o.acc.fail(err)
		return o
	}
	o.vcs = v
	return o
}

// Platform adds platforms. See Platforms.
func (o *InstallOptions) Platform(raw ...string) *InstallOptions { return o.Platforms(raw...) }

// Platforms parses and adds platforms, keeping first-insertion order.
// If any value is invalid none are added and the error is recorded.
func (o *InstallOptions) Platforms(raw ...string) *InstallOptions {
	o.acc.addPlatforms(raw)
	return o
}

// ClearPlatforms empties the platform selection.
func (o *InstallOptions) ClearPlatforms() *InstallOptions { o.acc.platforms.Clear(); return o }

// Flavor adds flavors. See Flavors.
func (o *InstallOptions) Flavor(raw ...string) *InstallOptions { return o.Flavors(raw...) }

// Flavors parses and adds flavors with the same rules as Platforms.
func (o *InstallOptions) Flavors(raw ...string) *InstallOptions {
	o.acc.addFlavors(raw)
	return o
}

// ClearFlavors empties the flavor selection.
func (o *InstallOptions) ClearFlavors() *InstallOptions { o.acc.flavors.Clear(); return o }

// Site adds sites. See Sites.
func (o *InstallOptions) Site(raw ...string) *InstallOptions { return o.Sites(raw...) }

// Sites parses and adds install sites with the same rules as Platforms.
func (o *InstallOptions) Sites(raw ...string) *InstallOptions {
	merge(&o.acc, &o.sites, raw, types.ParseSite)
	return o
}

// ClearSites empties the site selection.
func (o *InstallOptions) ClearSites() *InstallOptions { o.sites.Clear(); return o }

// Overrides parses and adds name=version pairs.
func (o *InstallOptions) Overrides(raw ...string) *InstallOptions {
	o.acc.addOverrides(raw)
	return o
}

// ClearOverrides empties the override list.
func (o *InstallOptions) ClearOverrides() *InstallOptions { o.acc.overrides.Clear(); return o }

// Defines adds key=value defines passed through to pk.
func (o *InstallOptions) Defines(raw ...string) *InstallOptions {
	o.acc.addDefines(raw)
	return o
}

// ClearDefines empties the define list.
func (o *InstallOptions) ClearDefines() *InstallOptions { o.acc.defines.Clear(); return o }

func (o *InstallOptions) checkScope() {
	if o.level != "" && (o.context != "" || o.show != "") {
		o.acc.fail(ErrAmbiguousScope)
	}
}

// Finalize returns an immutable snapshot of the options.
func (o *InstallOptions) Finalize() (*InstallRequest, error) {
	if o.acc.err != nil {
		return nil, o.acc.err
	}
	return &InstallRequest{
		Common:   o.acc.common(),
		WithDocs: o.withDocs,
		Work:     o.work,
		Context:  o.context,
		Show:     o.show,
		Level:    o.level,
		Sites:    o.sites.Values(),
		Vcs:      o.vcs,
		Logfile:  o.logfile,
		MaxJobs:  o.maxJobs,
	}, nil
}

// Target implements Recipe.
func (r *InstallRequest) Target() Target { return TargetInstall }

// Settings implements Recipe.
func (r *InstallRequest) Settings() Common { return r.Common.clone() }

// Describe implements Recipe.
func (r *InstallRequest) Describe() []Field {
	maxJobs := ""
	if r.MaxJobs > 0 {
		maxJobs = strconv.Itoa(r.MaxJobs)
	}
	return []Field{
		boolField("clean", r.Clean),
		boolField("dry_run", r.DryRun),
		boolField("verbose", r.Verbose),
		boolField("with_docs", r.WithDocs),
		boolField("work", r.Work),
		stringField("package_root", r.PackageRoot),
		stringField("dist_dir", r.DistDir),
		stringField("build_dir", r.BuildDir),
		stringField("context", r.Context.String()),
		stringField("show", r.Show),
		stringField("level", r.Level),
		siteField("sites", r.Sites),
		listField("platforms", r.Platforms),
		listField("flavors", r.Flavors),
		listField("overrides", r.Overrides),
		listField("defines", r.Defines),
		stringField("vcs", r.Vcs.String()),
		stringField("logfile", r.Logfile),
		stringField("max_jobs", maxJobs),
	}
}

// siteField lists sites by display name. Command text keeps the identifiers.
func siteField(name string, sites []types.Site) Field {
	names := make([]string, len(sites))
	for i, s := range sites {
		names[i] = s.DisplayName()
	}
	return listField(name, names)
}

// Compile implements Recipe.
//
// A facility install compiles to a single tagging command. Any other install
// compiles to one audit-and-build command followed by one pk install per
// flavor. Flavors default to the manifest's list, sites to local and
// platforms to the host platform.
func (r *InstallRequest) Compile(env *buildenv.Env, manifests manifest.Reader) (Plan, error) {
	s, err := reconcile(r.Level, r.Context, r.Show, env.Show)
	if err != nil {
		return nil, err
	}
	if s.isFacility() {
		cmd, err := facilityCommand(env.Vcs, r.Vcs)
		if err != nil {
			return nil, err
		}
		return Plan{cmd}, nil
	}

	t := installFlags
	platforms := orDefault(r.Platforms, env.Platform)
	platformStr := format(t.platform, platforms)

	plan := Plan{buildPrefix +
		boolFlag(r.Clean, "--clean") +
		valueFlag("--dist-dir", r.DistDir) +
		boolFlag(r.WithDocs, "--with-docs") +
		format(t.flavor, r.Flavors) +
		format(t.override, r.Overrides) +
		platformStr +
		format(t.define, r.Defines) +
		boolFlag(r.Work, "--work") +
		valueFlag("--build-dir", r.BuildDir)}

	info, err := manifests.Read(env.Manifest)
	if err != nil {
		return nil, err
	}

	distDir := r.DistDir
	if distDir == "" {
		distDir = env.DistDir
	}
	distDir = strings.TrimSuffix(distDir, "/")

	installFlagsStr := valueFlag("--level", s.level) +
		format(t.site, orDefault(r.Sites, types.SiteLocal)) +
		platformStr +
		valueFlag("--logfile", r.Logfile) +
		intFlag("--max-jobs", r.MaxJobs)

	for _, flavor := range orDefault(r.Flavors, info.Flavors...) {
		plan = append(plan, installPrefix+installFlagsStr+" "+distDir+"/"+info.DistName(flavor))
	}
	return plan, nil
}
