// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// ContextFacility installs a permanent, tagged release.
	ContextFacility Context = "facility"
	// ContextShared installs into the show-level area.
	ContextShared Context = "shared"
	// ContextUser installs into the per-user work area.
	ContextUser Context = "user"
)

// ErrInvalidContext is the sentinel error wrapped by InvalidContextError.
var ErrInvalidContext = errors.New("invalid context")

type (
	// Context is the scope of an install. The zero value means "not set".
	Context string

	// InvalidContextError is returned when a raw string is not a known context.
	InvalidContextError struct {
		Value string
	}
)

// ParseContext converts a raw string into a Context, ignoring case.
func ParseContext(raw string) (Context, error) {
	c := Context(strings.ToLower(raw))
	if isValid, _ := c.IsValid(); !isValid || c == "" {
		return "", &InvalidContextError{Value: raw}
	}
	return c, nil
}

// String returns the context name.
func (c Context) String() string { return string(c) }

// IsValid returns whether the Context is unset or one of the known contexts.
func (c Context) IsValid() (bool, []error) {
	switch c {
	case ContextFacility, ContextShared, ContextUser, "":
		return true, nil
	default:
		return false, []error{&InvalidContextError{Value: string(c)}}
	}
}

// Error implements the error interface for InvalidContextError.
func (e *InvalidContextError) Error() string {
	return fmt.Sprintf("invalid context %q (valid: facility, shared, user)", e.Value)
}

// Unwrap returns ErrInvalidContext for errors.Is() compatibility.
func (e *InvalidContextError) Unwrap() error { return ErrInvalidContext }
