// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"fmt"
	"strings"
)

// ActionableError reports a pk-make step that failed, the package root or
// file it failed on, and hints the user can act on.
//
//	return issue.Fail("compile install plan", err).
//		On(env.PackageRoot).
//		Hint("Pass --show or export DD_SHOW")
type ActionableError struct {
	// Operation is a verb phrase such as "compile build plan".
	Operation string
	// Resource is the package root or file involved, if any.
	Resource string
	// Hints are printed one per line under the message.
	Hints []string
	// Cause is the underlying error.
	Cause error
}

// Fail starts an ActionableError for operation caused by cause.
func Fail(operation string, cause error) *ActionableError {
	return &ActionableError{Operation: operation, Cause: cause}
}

// On records the resource the operation failed on.
func (e *ActionableError) On(resource string) *ActionableError {
	e.Resource = resource
	return e
}

// Hint appends hints. Empty strings are skipped.
func (e *ActionableError) Hint(hints ...string) *ActionableError {
	for _, h := range hints {
		if h != "" {
			e.Hints = append(e.Hints, h)
		}
	}
	return e
}

// Error returns the one-line form "failed to <operation>: <resource>: <cause>".
func (e *ActionableError) Error() string {
	parts := []string{"failed to " + e.Operation}
	if e.Resource != "" {
		parts = append(parts, e.Resource)
	}
	if e.Cause != nil {
		parts = append(parts, e.Cause.Error())
	}
	return strings.Join(parts, ": ")
}

func (e *ActionableError) Unwrap() error {
	return e.Cause
}

// Format renders the message followed by the hints. Verbose output also
// lists every error in the cause chain, outermost first.
func (e *ActionableError) Format(verbose bool) string {
	var b strings.Builder
	b.WriteString(e.Error())

	if len(e.Hints) > 0 {
		b.WriteString("\n")
		for _, h := range e.Hints {
			b.WriteString("\n  • ")
			b.WriteString(h)
		}
	}

	if verbose && e.Cause != nil {
		b.WriteString("\n\nError chain:")
		for depth, err := 1, e.Cause; err != nil; depth, err = depth+1, errors.Unwrap(err) {
			fmt.Fprintf(&b, "\n  %d. %s", depth, err)
		}
	}
	return b.String()
}
