// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"mvdan.cc/sh/v3/syntax"

	"github.com/pkmake/pkmake/pkg/types"
)

// Runtime type constants for the supported execution environments.
const (
	RuntimeTypeNative  RuntimeType = "native"
	RuntimeTypeVirtual RuntimeType = "virtual"
)

var (
	// ErrInvalidRuntimeType is the sentinel error wrapped by InvalidRuntimeTypeError.
	ErrInvalidRuntimeType = errors.New("invalid runtime type")

	// ErrRuntimeNotAvailable is returned when a registered runtime cannot run on this system.
	ErrRuntimeNotAvailable = errors.New("runtime not available")

	// ErrShellNotFound is returned when the native runtime has no shell to run.
	ErrShellNotFound = errors.New("no shell found")

	// ErrEmptyScript is returned when there is nothing to execute.
	ErrEmptyScript = errors.New("script has no content to execute")
)

type (
	// RuntimeType identifies the type of runtime.
	//
	//nolint:revive // RuntimeType is more descriptive than Type for external callers
	RuntimeType string

	// InvalidRuntimeTypeError is returned when a RuntimeType is not recognized.
	InvalidRuntimeTypeError struct {
		Value RuntimeType
	}

	// ExecutionContext contains all information needed to execute a plan.
	ExecutionContext struct {
		// Context is the Go context for cancellation
		Context context.Context
		// Script is the shell script to run
		Script string
		// WorkDir is the directory the script runs in
		WorkDir string
		// ExtraEnv is layered over the inherited process environment
		ExtraEnv map[string]string
		// Stdout is where to write standard output
		Stdout io.Writer
		// Stderr is where to write standard error
		Stderr io.Writer
		// Stdin is where to read standard input
		Stdin io.Reader
	}

	// Result contains the result of a plan execution.
	Result struct {
		// ExitCode is the exit code of the script
		ExitCode types.ExitCode
		// Error is set when the script could not be run at all
		Error error
	}

	// Runtime defines the interface for plan execution.
	Runtime interface {
		// Name returns the runtime name
		Name() string
		// Execute runs the script in this runtime
		Execute(ctx *ExecutionContext) *Result
		// Available returns whether this runtime is available on the current system
		Available() bool
		// Validate checks if the script can be executed with this runtime
		Validate(ctx *ExecutionContext) error
	}

	// Registry holds all available runtimes
	Registry struct {
		runtimes map[RuntimeType]Runtime
	}
)

// NewExecutionContext returns a context running script in workDir with the
// process's standard streams.
func NewExecutionContext(ctx context.Context, script, workDir string) *ExecutionContext {
	if ctx == nil {
		ctx = context.Background()
	}
	return &ExecutionContext{
		Context: ctx,
		Script:  script,
		WorkDir: workDir,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Stdin:   os.Stdin,
	}
}

// Validate returns an error if the RuntimeType is not a known runtime.
func (t RuntimeType) Validate() error {
	switch t {
	case RuntimeTypeNative, RuntimeTypeVirtual:
		return nil
	default:
		return &InvalidRuntimeTypeError{Value: t}
	}
}

// String returns the runtime type name.
func (t RuntimeType) String() string { return string(t) }

// Error implements the error interface for InvalidRuntimeTypeError.
func (e *InvalidRuntimeTypeError) Error() string {
	return fmt.Sprintf("invalid runtime type %q (valid: native, virtual)", e.Value)
}

// Unwrap returns ErrInvalidRuntimeType for errors.Is() compatibility.
func (e *InvalidRuntimeTypeError) Unwrap() error { return ErrInvalidRuntimeType }

// Success returns true if the script executed successfully
func (r *Result) Success() bool {
	return r.ExitCode.IsSuccess() && r.Error == nil
}

// NewErrorResult creates a Result with the given exit code and error.
func NewErrorResult(code types.ExitCode, err error) *Result {
	return &Result{ExitCode: code, Error: err}
}

// NewExitCodeResult creates a Result with the given exit code and no error.
// Use this for non-zero exits that represent normal process termination
// rather than infrastructure failures.
func NewExitCodeResult(code types.ExitCode) *Result {
	return &Result{ExitCode: code}
}

// NewRegistry creates a new runtime registry
func NewRegistry() *Registry {
	return &Registry{
		runtimes: make(map[RuntimeType]Runtime),
	}
}

// NewDefaultRegistry returns a registry holding the native runtime (using
// shell when non-empty) and the virtual runtime.
func NewDefaultRegistry(shell string) *Registry {
	r := NewRegistry()
	native := NewNativeRuntime()
	native.Shell = shell
	r.Register(RuntimeTypeNative, native)
	r.Register(RuntimeTypeVirtual, NewVirtualRuntime())
	return r
}

// Register adds a runtime to the registry
func (r *Registry) Register(typ RuntimeType, rt Runtime) {
	r.runtimes[typ] = rt
}

// Get returns a runtime by type
func (r *Registry) Get(typ RuntimeType) (Runtime, error) {
	rt, ok := r.runtimes[typ]
	if !ok {
		return nil, fmt.Errorf("runtime '%s' not registered", typ)
	}
	return rt, nil
}

// Available returns all available runtimes in name order.
func (r *Registry) Available() []RuntimeType {
	var available []RuntimeType
	for typ, rt := range r.runtimes {
		if rt.Available() {
			available = append(available, typ)
		}
	}
	slices.Sort(available)
	return available
}

// Execute runs the script with the runtime registered under typ.
func (r *Registry) Execute(typ RuntimeType, ctx *ExecutionContext) *Result {
	rt, err := r.Get(typ)
	if err != nil {
		return NewErrorResult(1, err)
	}

	if !rt.Available() {
		return NewErrorResult(1, fmt.Errorf("runtime '%s': %w", rt.Name(), ErrRuntimeNotAvailable))
	}

	if err := rt.Validate(ctx); err != nil {
		return NewErrorResult(1, err)
	}

	return rt.Execute(ctx)
}

// ParseScript parses script as a POSIX shell program.
func ParseScript(script string) (*syntax.File, error) {
	if strings.TrimSpace(script) == "" {
		return nil, ErrEmptyScript
	}
	prog, err := syntax.NewParser().Parse(strings.NewReader(script), "plan")
	if err != nil {
		return nil, fmt.Errorf("script syntax error: %w", err)
	}
	return prog, nil
}

// EnvToSlice converts a map of environment variables to a slice in key order.
func EnvToSlice(env map[string]string) []string {
	result := make([]string, 0, len(env))
	for k, v := range env {
		result = append(result, k+"="+v)
	}
	slices.Sort(result)
	return result
}

func (ctx *ExecutionContext) context() context.Context {
	if ctx.Context == nil {
		return context.Background()
	}
	return ctx.Context
}

func (ctx *ExecutionContext) workDir() string {
	if ctx.WorkDir != "" {
		return ctx.WorkDir
	}
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd
}
