// SPDX-License-Identifier: MPL-2.0

package recipe

import (
	"errors"
	"fmt"
)

var (
	// ErrAmbiguousScope is returned when a level is combined with a context or show.
	ErrAmbiguousScope = errors.New("level and context/show overlap; use one or the other")

	// ErrShowNotSet is returned when an install needs a show and neither
	// --show nor DD_SHOW provides one.
	ErrShowNotSet = errors.New("show has not been set explicitly and DD_SHOW is not set")

	// ErrAmbiguousVcs is returned for a facility install in a checkout tracked
	// by both git and svn when no VCS was chosen explicitly.
	ErrAmbiguousVcs = errors.New("detected both git and svn; the vcs must be supplied explicitly")

	// ErrUnknownVcs is returned when the VCS for a facility install is missing
	// or not one of git and svn.
	ErrUnknownVcs = errors.New("unrecognized vcs")

	// ErrMissingRecipe is returned when run is given no recipe name.
	ErrMissingRecipe = errors.New("no recipe name supplied")

	// ErrInvalidRecipeName is the sentinel error wrapped by InvalidRecipeNameError.
	ErrInvalidRecipeName = errors.New("invalid recipe name")

	// ErrInvalidMaxJobs is returned for a negative max-jobs value.
	ErrInvalidMaxJobs = errors.New("max-jobs must not be negative")
)

// InvalidRecipeNameError is returned when the first run argument is a flag
// rather than a recipe name.
type InvalidRecipeNameError struct {
	Value string
}

// Error implements the error interface for InvalidRecipeNameError.
func (e *InvalidRecipeNameError) Error() string {
	return fmt.Sprintf("first argument must be a recipe name, not a flag: %q", e.Value)
}

// Unwrap returns ErrInvalidRecipeName for errors.Is() compatibility.
func (e *InvalidRecipeNameError) Unwrap() error { return ErrInvalidRecipeName }
