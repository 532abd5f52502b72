// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pkmake/pkmake/internal/recipe"
)

type buildFlags struct {
	commonFlags
	clean        bool
	skipDocs     bool
	metadataOnly bool
	work         bool
	level        string
	overrides    []string
}

// newBuildCommand creates the `pk-make build` command.
func newBuildCommand(app *App) *cobra.Command {
	f := &buildFlags{}
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the package with pk build",
		Long: `Build the package in the current checkout with 'pk build'.

The build platform defaults to $DD_OS and the flavors to the vanilla
flavor. Pass -n to print the command without running it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRecipe(cmd, app, recipe.TargetBuild, func() (recipe.Recipe, error) {
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
	fs.BoolVar(&f.metadataOnly, "metadata-only", false, "only generate the package metadata")
	fs.BoolVar(&f.work, "work", false, "build into the work area")
	fs.StringVarP(&f.level, "level", "L", "", "level to build for")
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

func (f *buildFlags) options(app *App) *recipe.BuildOptions {
	return recipe.NewBuild().
		Clean(f.clean).
		DryRun(f.dryRun).
		Verbose(f.isVerbose(app)).
		Work(f.work).
		WithDocs(!f.skipDocs).
		MetadataOnly(f.metadataOnly).
		PackageRoot(f.packageRoot).
		DistDir(f.distDir).
		Level(f.level).
		Platforms(f.platforms...).
		Flavors(f.flavors...).
		Overrides(f.overrides...).
		Defines(f.defines...)
}
