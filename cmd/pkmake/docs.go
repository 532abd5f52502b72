// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pkmake/pkmake/internal/recipe"
)

// newDocsCommand creates the `pk-make docs` command.
func newDocsCommand(app *App) *cobra.Command {
	f := &commonFlags{}
	cmd := &cobra.Command{
		Use:   "docs",
		Short: "Build the package documentation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRecipe(cmd, app, recipe.TargetDocs, func() (recipe.Recipe, error) {
				req, err := recipe.NewDocs().
					DryRun(f.dryRun).
					Verbose(f.isVerbose(app)).
					PackageRoot(f.packageRoot).
					DistDir(f.distDir).
					Platforms(f.platforms...).
					Flavors(f.flavors...).
					Defines(f.defines...).
					Finalize()
				if err != nil {
					return nil, err
				}
				return req, nil
			})
		},
	}

	fs := cmd.Flags()
	f.addDryRun(fs)
	f.addVerbose(fs)
	f.addPackageRoot(fs)
	f.addDistDir(fs)
	f.addPlatforms(fs)
	f.addFlavors(fs)
	f.addDefines(fs)

	return cmd
}
