// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidOverridePair is the sentinel error wrapped by InvalidOverridePairError.
var ErrInvalidOverridePair = errors.New("invalid override pair")

type (
	// OverridePair pins a dependency to a version, written "name=version".
	// The stored string holds exactly one '=' that is not the last character.
	OverridePair string

	// InvalidOverridePairError is returned when a raw string is not a
	// well-formed name=version pair.
	InvalidOverridePairError struct {
		Value string
	}
)

// ParseOverridePair validates raw as a name=version pair.
func ParseOverridePair(raw string) (OverridePair, error) {
	op := OverridePair(raw)
	if isValid, errs := op.IsValid(); !isValid {
		return "", errs[0]
	}
	return op, nil
}

// Name returns the part before '='.
func (o OverridePair) Name() string {
	name, _, _ := strings.Cut(string(o), "=")
	return name
}

// Version returns the part after '='.
func (o OverridePair) Version() string {
	_, version, _ := strings.Cut(string(o), "=")
	return version
}

// String returns the pair as "name=version".
func (o OverridePair) String() string { return string(o) }

// IsValid returns whether the pair holds exactly one '=' and does not end in one.
func (o OverridePair) IsValid() (bool, []error) {
	s := string(o)
	if strings.Count(s, "=") != 1 || strings.HasSuffix(s, "=") {
		return false, []error{&InvalidOverridePairError{Value: s}}
	}
	return true, nil
}

// Error implements the error interface for InvalidOverridePairError.
func (e *InvalidOverridePairError) Error() string {
	return fmt.Sprintf("invalid override %q (expected name=version)", e.Value)
}

// Unwrap returns ErrInvalidOverridePair for errors.Is() compatibility.
func (e *InvalidOverridePairError) Unwrap() error { return ErrInvalidOverridePair }
