// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkmake/pkmake/pkg/types"
)

func newBufferedContext(t *testing.T, script string) *ExecutionContext {
	t.Helper()
	ctx := NewExecutionContext(context.Background(), script, t.TempDir())
	ctx.Stdout = &bytes.Buffer{}
	ctx.Stderr = &bytes.Buffer{}
	ctx.Stdin = nil
	return ctx
}

func TestVirtualRuntime_Execute(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		script   string
		wantOut  string
		wantCode types.ExitCode
	}{
		{name: "echo", script: "echo hello", wantOut: "hello\n"},
		{name: "joined plan", script: "echo one ; echo two", wantOut: "one\ntwo\n"},
		{name: "last status wins", script: "false ; true", wantCode: 0},
		{name: "exit code", script: "echo before ; exit 3", wantOut: "before\n", wantCode: 3},
		{name: "missing command", script: "pkmake-definitely-not-installed --flag", wantCode: types.ExitCommandNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx := newBufferedContext(t, tt.script)
			result := NewVirtualRuntime().Execute(ctx)

			if result.Error != nil {
				t.Fatalf("Execute() error = %v", result.Error)
			}
			if result.ExitCode != tt.wantCode {
				t.Errorf("ExitCode = %d, want %d", result.ExitCode, tt.wantCode)
			}
			if tt.wantOut != "" {
				if got := ctx.Stdout.(*bytes.Buffer).String(); got != tt.wantOut {
					t.Errorf("stdout = %q, want %q", got, tt.wantOut)
				}
			}
		})
	}
}

func TestVirtualRuntime_ExecuteEnvAndStderr(t *testing.T) {
	t.Parallel()

	ctx := newBufferedContext(t, `echo "$PKMAKE_TEST_VALUE" ; echo oops >&2`)
	ctx.ExtraEnv = map[string]string{"PKMAKE_TEST_VALUE": "layered"}

	result := NewVirtualRuntime().Execute(ctx)
	if !result.Success() {
		t.Fatalf("Execute() = %+v", result)
	}
	if got := ctx.Stdout.(*bytes.Buffer).String(); got != "layered\n" {
		t.Errorf("stdout = %q, want %q", got, "layered\n")
	}
	if got := ctx.Stderr.(*bytes.Buffer).String(); got != "oops\n" {
		t.Errorf("stderr = %q, want %q", got, "oops\n")
	}
}

func TestVirtualRuntime_WorkDir(t *testing.T) {
	t.Parallel()

	ctx := newBufferedContext(t, "pwd")
	want, err := filepath.EvalSymlinks(ctx.WorkDir)
	if err != nil {
		t.Fatal(err)
	}

	result := NewVirtualRuntime().Execute(ctx)
	if !result.Success() {
		t.Fatalf("Execute() = %+v", result)
	}
	got, err := filepath.EvalSymlinks(strings.TrimSpace(ctx.Stdout.(*bytes.Buffer).String()))
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("pwd = %q, want %q", got, want)
	}
}

func TestVirtualRuntime_Validate(t *testing.T) {
	t.Parallel()

	rt := NewVirtualRuntime()

	if err := rt.Validate(&ExecutionContext{Script: "pk install --level=site"}); err != nil {
		t.Errorf("Validate(valid) = %v", err)
	}
	if err := rt.Validate(&ExecutionContext{Script: "  "}); !errors.Is(err, ErrEmptyScript) {
		t.Errorf("Validate(empty) = %v, want ErrEmptyScript", err)
	}
	if err := rt.Validate(&ExecutionContext{Script: "echo 'unterminated"}); err == nil {
		t.Error("Validate(unterminated quote) = nil, want syntax error")
	}
}
