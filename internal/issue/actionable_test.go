// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestActionableError_Error(t *testing.T) {
	t.Parallel()

	cause := errors.New("DD_OS is not set")
	tests := []struct {
		name string
		err  *ActionableError
		want string
	}{
		{name: "operation only", err: Fail("compile build plan", nil), want: "failed to compile build plan"},
		{name: "with cause", err: Fail("compile build plan", cause), want: "failed to compile build plan: DD_OS is not set"},
		{
			name: "with resource and cause",
			err:  Fail("run install plan", cause).On("/work/pkg"),
			want: "failed to run install plan: /work/pkg: DD_OS is not set",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestActionableError_UnwrapsCause(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("manifest not found")
	err := Fail("compile docs plan", fmt.Errorf("resolve: %w", sentinel))
	if !errors.Is(err, sentinel) {
		t.Error("errors.Is() should reach the wrapped sentinel")
	}

	var ae *ActionableError
	if !errors.As(fmt.Errorf("outer: %w", err), &ae) || ae.Operation != "compile docs plan" {
		t.Errorf("errors.As() = %+v", ae)
	}
}

func TestActionableError_Hint(t *testing.T) {
	t.Parallel()

	err := Fail("compile install plan", nil).
		Hint("Pass --show or export DD_SHOW").
		Hint("", "Drop --level")
	want := []string{"Pass --show or export DD_SHOW", "Drop --level"}
	if strings.Join(err.Hints, "|") != strings.Join(want, "|") {
		t.Errorf("Hints = %q, want %q", err.Hints, want)
	}
}

func TestActionableError_Format(t *testing.T) {
	t.Parallel()

	inner := errors.New("no manifest.yaml")
	err := Fail("compile build plan", fmt.Errorf("resolve environment: %w", inner)).
		On("/work/pkg").
		Hint("Pass --package-root", "Check the checkout")

	tests := []struct {
		name    string
		verbose bool
		want    []string
		notWant []string
	}{
		{
			name:    "default",
			want:    []string{"failed to compile build plan: /work/pkg", "\n  • Pass --package-root", "\n  • Check the checkout"},
			notWant: []string{"Error chain:"},
		},
		{
			name:    "verbose",
			verbose: true,
			want:    []string{"Error chain:", "1. resolve environment: no manifest.yaml", "2. no manifest.yaml"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := err.Format(tt.verbose)
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("Format(%v) = %q, missing %q", tt.verbose, got, w)
				}
			}
			for _, nw := range tt.notWant {
				if strings.Contains(got, nw) {
					t.Errorf("Format(%v) = %q, should not contain %q", tt.verbose, got, nw)
				}
			}
		})
	}
}

func TestActionableError_FormatWithoutHints(t *testing.T) {
	t.Parallel()

	got := Fail("load configuration", errors.New("bad")).Format(false)
	if got != "failed to load configuration: bad" {
		t.Errorf("Format(false) = %q", got)
	}
}
