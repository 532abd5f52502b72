// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"context"
	"errors"
	"fmt"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"

	"github.com/pkmake/pkmake/pkg/types"
)

// VirtualRuntime executes plans using the mvdan/sh interpreter.
// External commands such as pk are still resolved from PATH.
type VirtualRuntime struct{}

// NewVirtualRuntime creates a new virtual runtime
func NewVirtualRuntime() *VirtualRuntime {
	return &VirtualRuntime{}
}

// Name returns the runtime name
func (r *VirtualRuntime) Name() string {
	return string(RuntimeTypeVirtual)
}

// Available returns whether this runtime is available
func (r *VirtualRuntime) Available() bool {
	// built in
	return true
}

// Validate checks the script parses as a POSIX shell program.
func (r *VirtualRuntime) Validate(ctx *ExecutionContext) error {
	_, err := ParseScript(ctx.Script)
	return err
}

// Execute runs the script, streaming to the context's writers.
func (r *VirtualRuntime) Execute(ctx *ExecutionContext) *Result {
	prog, err := ParseScript(ctx.Script)
	if err != nil {
		return NewErrorResult(1, err)
	}

	runner, err := interp.New(
		interp.Dir(ctx.workDir()),
		interp.Env(expand.ListEnviron(EnvToSlice(buildEnv(ctx))...)),
		interp.StdIO(ctx.Stdin, ctx.Stdout, ctx.Stderr),
		interp.ExecHandlers(r.execHandler),
	)
	if err != nil {
		return NewErrorResult(1, fmt.Errorf("failed to create interpreter: %w", err))
	}

	return exitResult(runner.Run(ctx.context(), prog))
}

// execHandler reports commands missing from PATH with the conventional
// 127 exit status instead of an interpreter error.
func (r *VirtualRuntime) execHandler(next interp.ExecHandlerFunc) interp.ExecHandlerFunc {
	return func(ctx context.Context, args []string) error {
		err := next(ctx, args)
		var exitStatus interp.ExitStatus
		if err != nil && !errors.As(err, &exitStatus) {
			hc := interp.HandlerCtx(ctx)
			fmt.Fprintf(hc.Stderr, "%s: %v\n", args[0], err)
			return interp.ExitStatus(types.ExitCommandNotFound)
		}
		return err
	}
}

func exitResult(err error) *Result {
	if err == nil {
		return NewExitCodeResult(0)
	}
	var exitStatus interp.ExitStatus
	if errors.As(err, &exitStatus) {
		return NewExitCodeResult(types.ExitCode(exitStatus))
	}
	return NewErrorResult(1, fmt.Errorf("script execution failed: %w", err))
}
