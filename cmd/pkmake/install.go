// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pkmake/pkmake/internal/recipe"
)

type installFlags struct {
	commonFlags
	clean     bool
	skipDocs  bool
	work      bool
	context   string
	show      string
	level     string
	vcs       string
	buildDir  string
	logfile   string
	maxJobs   int
	sites     []string
	overrides []string
}

// newInstallCommand creates the `pk-make install` command.
func newInstallCommand(app *App) *cobra.Command {
	f := &installFlags{}
	cmd := &cobra.Command{
		Use:   "install",
		Short: "Build the package and install it with pk install",
		Long: `Build the package and install it for every requested flavor.

The install level comes from --level, or from --context and --show
(defaulting to the user context of $DD_SHOW). A facility install tags the
package with git or svn before building.`,
		Example: `  pk-make install -n
  pk-make install -c shared --show DEV01
  pk-make install -L facility --vcs git
  pk-make install -f ^ -f maya2024 -s portland`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRecipe(cmd, app, recipe.TargetInstall, func() (recipe.Recipe, error) {
				req, err := f.options(app).Finalize()
				if err != nil {
					return nil, err
				}
				return req, nil
			})
		},
	}

	fs := cmd.Flags()
	fs.BoolVar(&f.clean, "clean", false, "remove previous build output first")
	fs.BoolVar(&f.skipDocs, "skip-docs", false, "do not build the documentation")
	fs.BoolVar(&f.work, "work", false, "install into the work area")
	fs.StringVarP(&f.context, "context", "c", "", "install context: user, shared or facility")
	fs.StringVar(&f.show, "show", "", "show to install into (default $DD_SHOW)")
	fs.StringVarP(&f.level, "level", "L", "", "raw install level (not with --context or --show)")
	fs.StringVar(&f.vcs, "vcs", "", "version control used to tag facility installs: git or svn")
	fs.StringVarP(&f.buildDir, "build-dir", "b", "", "build directory")
	fs.StringVar(&f.logfile, "logfile", "", "install log file")
	fs.IntVarP(&f.maxJobs, "max-jobs", "j", 0, "maximum parallel install jobs")
	fs.StringArrayVarP(&f.sites, "site", "s", nil, "site to install to (repeatable, default local)")
	fs.StringArrayVarP(&f.overrides, "override", "o", nil, "manifest override as key=value (repeatable)")
	f.addDryRun(fs)
	f.addVerbose(fs)
	f.addPackageRoot(fs)
	f.addDistDir(fs)
	f.addPlatforms(fs)
	f.addFlavors(fs)
	f.addDefines(fs)

	return cmd
}

func (f *installFlags) options(app *App) *recipe.InstallOptions {
	return recipe.NewInstall().
		Clean(f.clean).
		DryRun(f.dryRun).
		Verbose(f.isVerbose(app)).
		Work(f.work).
		WithDocs(!f.skipDocs).
		PackageRoot(f.packageRoot).
		DistDir(f.distDir).
		BuildDir(f.buildDir).
		Logfile(f.logfile).
		MaxJobs(f.maxJobs).
		Level(f.level).
		Context(f.context).
		Show(f.show).
		Vcs(f.vcs).
		Platforms(f.platforms...).
		Flavors(f.flavors...).
		Sites(f.sites...).
		Overrides(f.overrides...).
		Defines(f.defines...)
}
