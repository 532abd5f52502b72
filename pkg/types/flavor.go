// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Vanilla is the default flavor. It renders as "^" in command text.
const Vanilla Flavor = "^"

// ErrInvalidFlavor is the sentinel error wrapped by InvalidFlavorError.
var ErrInvalidFlavor = errors.New("invalid flavor")

type (
	// Flavor names a build variant of a package. Vanilla is the default
	// variant; any other value is a named flavor whose case is preserved.
	Flavor string

	// InvalidFlavorError is returned when a raw string is neither vanilla nor
	// a well-formed flavor name.
	InvalidFlavorError struct {
		Value string
	}
)

// ParseFlavor converts a raw string into a Flavor.
// "^" and "vanilla" (any case) map to Vanilla. Named flavors must start with a
// letter and contain only letters, digits, '_' or '.'.
func ParseFlavor(raw string) (Flavor, error) {
	switch strings.ToLower(raw) {
	case "^", "vanilla":
		return Vanilla, nil
	}
	f := Flavor(raw)
	if isValid, errs := f.IsValid(); !isValid {
		return "", errs[0]
	}
	return f, nil
}

// IsVanilla reports whether f is the default flavor.
func (f Flavor) IsVanilla() bool { return f == Vanilla }

// String returns the flavor as it appears in command text.
func (f Flavor) String() string { return string(f) }

// IsValid returns whether the Flavor is vanilla or a well-formed named flavor.
func (f Flavor) IsValid() (bool, []error) {
	if f == Vanilla {
		return true, nil
	}
	if f == "" {
		return false, []error{&InvalidFlavorError{Value: ""}}
	}
	for i, r := range string(f) {
		if i == 0 && !unicode.IsLetter(r) {
			return false, []error{&InvalidFlavorError{Value: string(f)}}
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' && r != '.' {
			return false, []error{&InvalidFlavorError{Value: string(f)}}
		}
	}
	return true, nil
}

// Error implements the error interface for InvalidFlavorError.
func (e *InvalidFlavorError) Error() string {
	return fmt.Sprintf("invalid flavor %q (use ^, vanilla, or a name starting with a letter)", e.Value)
}

// Unwrap returns ErrInvalidFlavor for errors.Is() compatibility.
func (e *InvalidFlavorError) Unwrap() error { return ErrInvalidFlavor }
