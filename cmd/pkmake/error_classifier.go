// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"

	"github.com/pkmake/pkmake/internal/buildenv"
	"github.com/pkmake/pkmake/internal/issue"
	"github.com/pkmake/pkmake/internal/manifest"
	"github.com/pkmake/pkmake/internal/recipe"
	"github.com/pkmake/pkmake/internal/runtime"
	"github.com/pkmake/pkmake/pkg/platform"
	"github.com/pkmake/pkmake/pkg/types"
)

var invalidValueErrors = []error{
	platform.ErrInvalidPlatform,
	types.ErrInvalidFlavor,
	types.ErrInvalidContext,
	types.ErrInvalidSite,
	types.ErrInvalidVcs,
	types.ErrInvalidOverridePair,
	recipe.ErrInvalidMaxJobs,
	runtime.ErrInvalidRuntimeType,
}

// classifyCompileError maps request and environment failures to issue
// catalog IDs. It returns 0 when no catalog entry applies.
func classifyCompileError(err error) issue.Id {
	switch {
	case errors.Is(err, buildenv.ErrManifestNotFound):
		return issue.ManifestNotFoundId
	case errors.Is(err, buildenv.ErrEnvNotSet):
		return issue.EnvNotSetId
	case errors.Is(err, recipe.ErrAmbiguousScope):
		return issue.AmbiguousScopeId
	case errors.Is(err, recipe.ErrShowNotSet):
		return issue.ShowNotSetId
	case errors.Is(err, recipe.ErrAmbiguousVcs):
		return issue.AmbiguousVcsId
	case errors.Is(err, recipe.ErrUnknownVcs):
		return issue.UnknownVcsId
	case errors.Is(err, recipe.ErrMissingRecipe), errors.Is(err, recipe.ErrInvalidRecipeName):
		return issue.InvalidRecipeNameId
	case errors.Is(err, manifest.ErrInvalidManifest):
		return issue.ManifestNotFoundId
	}
	for _, sentinel := range invalidValueErrors {
		if errors.Is(err, sentinel) {
			return issue.InvalidValueId
		}
	}
	return 0
}

// classifyExecutionResult maps a failed plan execution to an issue catalog ID.
func classifyExecutionResult(result *runtime.Result) issue.Id {
	switch {
	case errors.Is(result.Error, runtime.ErrShellNotFound), errors.Is(result.Error, runtime.ErrRuntimeNotAvailable):
		return issue.ShellNotFoundId
	case result.ExitCode.IsCommandNotFound():
		return issue.CommandNotFoundId
	default:
		return issue.ExecutionFailedId
	}
}

// compileHints lists what the user can change for each compile failure.
var compileHints = map[issue.Id][]string{
	issue.EnvNotSetId:         {"Export DD_OS, e.g. 'export DD_OS=cent7_64'"},
	issue.ManifestNotFoundId:  {"Run pk-make from a package checkout", "Or pass --package-root"},
	issue.AmbiguousScopeId:    {"Drop --level, or drop --context and --show"},
	issue.ShowNotSetId:        {"Pass --show or export DD_SHOW"},
	issue.AmbiguousVcsId:      {"Pass --vcs=git or --vcs=svn"},
	issue.UnknownVcsId:        {"Pass --vcs=git or --vcs=svn"},
	issue.InvalidRecipeNameId: {"Name the recipe first, e.g. 'pk-make run lint --fix'"},
}

// compileError wraps a compile failure with operation context and hints.
func compileError(target recipe.Target, err error) *ServiceError {
	id := classifyCompileError(err)
	ae := issue.Fail("compile "+target.String()+" plan", err).Hint(compileHints[id]...)
	return newServiceError(ae, id, "")
}

// styledErrorMessage renders err the way every failing command reports it.
func styledErrorMessage(err error, verbose bool) string {
	return fmt.Sprintf("%s %s\n", ErrorStyle.Render("Error:"), formatErrorForDisplay(err, verbose))
}
