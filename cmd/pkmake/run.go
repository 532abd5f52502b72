// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pkmake/pkmake/internal/recipe"
)

// newRunCommand creates the `pk-make run` command. Flag parsing stops at the
// recipe name so everything after it reaches the recipe untouched.
func newRunCommand(app *App) *cobra.Command {
	f := &commonFlags{}
	cmd := &cobra.Command{
		Use:   "run <recipe> [args...]",
		Short: "Run a named recipe with pk run-recipe",
		Long: `Run a named recipe with 'pk run-recipe'.

Arguments after the recipe name are passed through to the recipe. A -v or
-n among them also turns on verbose output or dry-run here.`,
		Example: `  pk-make run lint
  pk-make run -n deploy --target staging`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecipe(cmd, app, recipe.TargetRun, func() (recipe.Recipe, error) {
				req, err := recipe.NewRun().
					DryRun(f.dryRun).
					Verbose(f.isVerbose(app)).
					PackageRoot(f.packageRoot).
					Platforms(f.platforms...).
					Flavors(f.flavors...).
					Vars(args...).
					Finalize()
				if err != nil {
					return nil, err
				}
				return req, nil
			})
		},
	}

	fs := cmd.Flags()
	fs.SetInterspersed(false)
	f.addDryRun(fs)
	f.addVerbose(fs)
	f.addPackageRoot(fs)
	f.addPlatforms(fs)
	f.addFlavors(fs)

	return cmd
}
