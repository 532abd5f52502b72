// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pkmake/pkmake/internal/app/execute"
	"github.com/pkmake/pkmake/internal/issue"
	"github.com/pkmake/pkmake/internal/recipe"
	"github.com/pkmake/pkmake/pkg/types"
)

// finalizer produces the finalized request for one target. Implementations
// return a nil Recipe whenever they return an error.
type finalizer func() (recipe.Recipe, error)

// runRecipe is the shared pipeline behind every recipe command: finalize the
// request, compile it against the package environment, then either print
// the plan (dry-run) or execute it.
func runRecipe(cmd *cobra.Command, app *App, target recipe.Target, finalize finalizer) error {
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	out := app.stdout
	rec, err := finalize()
	if err != nil {
		return app.fail(compileError(target, err), app.settings().UI.Verbose)
	}
	settings := rec.Settings()

	if settings.Verbose {
		fmt.Fprintln(out, renderRequestTable(rec))
	}

	svc := app.service()
	compiled, err := svc.Compile(rec)
	if err != nil {
		return app.fail(compileError(target, err), settings.Verbose)
	}

	if settings.DryRun {
		printPlan(out, compiled.Plan, false)
		return nil
	}
	if settings.Verbose {
		printPlan(out, compiled.Plan, true)
	}

	typ, err := execute.ResolveRuntime(app.runtime, app.settings())
	if err != nil {
		return app.fail(newServiceError(err, issue.InvalidValueId, ""), settings.Verbose)
	}

	result := svc.Run(cmd.Context(), compiled, typ)
	if settings.Verbose {
		fmt.Fprintf(out, "\n%s %d\n", VerboseStyle.Render("Exit Status:"), result.ExitCode)
	}
	if result.Success() {
		return nil
	}

	code := result.ExitCode
	if code == 0 {
		code = 1
	}
	runErr := result.Error
	if runErr == nil {
		runErr = fmt.Errorf("plan exited with status %d", code)
	}
	wrapped := issue.Fail("run "+target.String()+" plan", runErr).On(compiled.Env.PackageRoot)
	return app.failWith(code, newServiceError(wrapped, classifyExecutionResult(result), ""), settings.Verbose)
}

// fail reports svcErr on stderr and exits with status 1.
func (a *App) fail(svcErr *ServiceError, verbose bool) error {
	return a.failWith(1, svcErr, verbose)
}

// failWith reports svcErr on stderr, adding the issue catalog entry in
// verbose mode, and returns an ExitError carrying code.
func (a *App) failWith(code types.ExitCode, svcErr *ServiceError, verbose bool) error {
	if svcErr.StyledMessage == "" {
		svcErr.StyledMessage = styledErrorMessage(svcErr.Err, verbose)
	}
	renderServiceError(a.stderr, svcErr, verbose)
	return &ExitError{Code: code, Err: svcErr}
}
