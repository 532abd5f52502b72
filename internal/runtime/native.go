// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	goruntime "runtime"
	"strings"

	"github.com/pkmake/pkmake/pkg/platform"
	"github.com/pkmake/pkmake/pkg/types"
)

// NativeRuntime executes plans using the system's default shell
type NativeRuntime struct {
	// Shell overrides the default shell
	Shell string
	// ShellArgs are arguments passed to the shell before the script
	ShellArgs []string
}

// NewNativeRuntime creates a new native runtime
func NewNativeRuntime() *NativeRuntime {
	return &NativeRuntime{}
}

// Name returns the runtime name
func (r *NativeRuntime) Name() string {
	return string(RuntimeTypeNative)
}

// Available returns whether this runtime is available
func (r *NativeRuntime) Available() bool {
	_, err := r.getShell()
	return err == nil
}

// Validate checks the script is non-empty and, for POSIX shells, that it parses.
func (r *NativeRuntime) Validate(ctx *ExecutionContext) error {
	shell, err := r.getShell()
	if err != nil {
		return err
	}
	if !isPOSIXShell(shell) {
		if strings.TrimSpace(ctx.Script) == "" {
			return ErrEmptyScript
		}
		return nil
	}
	_, err = ParseScript(ctx.Script)
	return err
}

// Execute runs the script, streaming to the context's writers.
func (r *NativeRuntime) Execute(ctx *ExecutionContext) *Result {
	shell, err := r.getShell()
	if err != nil {
		return NewErrorResult(1, err)
	}

	args := append(r.getShellArgs(shell), ctx.Script)
	cmd := exec.CommandContext(ctx.context(), shell, args...)
	cmd.Dir = ctx.workDir()
	cmd.Env = EnvToSlice(buildEnv(ctx))
	cmd.Stdin = ctx.Stdin
	cmd.Stdout = ctx.Stdout
	cmd.Stderr = ctx.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return NewExitCodeResult(types.ExitCode(exitErr.ExitCode()))
		}
		return NewErrorResult(1, fmt.Errorf("failed to execute plan: %w", err))
	}

	return NewExitCodeResult(0)
}

// getShell determines which shell to use
func (r *NativeRuntime) getShell() (string, error) {
	if r.Shell != "" {
		return r.Shell, nil
	}

	switch goruntime.GOOS {
	case platform.Windows:
		// Try PowerShell first, then cmd
		if pwsh, err := exec.LookPath("pwsh"); err == nil {
			return pwsh, nil
		}
		if ps, err := exec.LookPath("powershell"); err == nil {
			return ps, nil
		}
		if cmd, err := exec.LookPath("cmd"); err == nil {
			return cmd, nil
		}
		return "", ErrShellNotFound
	default:
		if shell := os.Getenv("SHELL"); shell != "" {
			return shell, nil
		}
		if bash, err := exec.LookPath("bash"); err == nil {
			return bash, nil
		}
		if sh, err := exec.LookPath("sh"); err == nil {
			return sh, nil
		}
		return "", ErrShellNotFound
	}
}

// getShellArgs returns the arguments to pass to the shell
func (r *NativeRuntime) getShellArgs(shell string) []string {
	if len(r.ShellArgs) > 0 {
		return append([]string(nil), r.ShellArgs...)
	}

	switch shellBase(shell) {
	case "cmd":
		return []string{"/C"}
	case "powershell", "pwsh":
		return []string{"-NoProfile", "-Command"}
	default:
		return []string{"-c"}
	}
}

func shellBase(shell string) string {
	return strings.TrimSuffix(strings.ToLower(filepath.Base(shell)), ".exe")
}

func isPOSIXShell(shell string) bool {
	switch shellBase(shell) {
	case "cmd", "powershell", "pwsh":
		return false
	default:
		return true
	}
}
