// SPDX-License-Identifier: MPL-2.0

package platform

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// Win7 is 64-bit Windows 7.
	Win7 Platform = "win7_64"
	// Win10 is 64-bit Windows 10.
	Win10 Platform = "win10_64"
	// Osx10 is 64-bit macOS 10.x.
	Osx10 Platform = "osx10_64"
	// Cent6 is 64-bit CentOS 6.
	Cent6 Platform = "cent6_64"
	// Cent7 is 64-bit CentOS 7.
	Cent7 Platform = "cent7_64"
	// Cent8 is 64-bit CentOS 8.
	Cent8 Platform = "cent8_64"
)

// ErrInvalidPlatform is the sentinel error wrapped by InvalidPlatformError.
var ErrInvalidPlatform = errors.New("invalid platform")

type (
	// Platform is a canonical pk platform identifier such as "cent7_64".
	// The zero value is not a valid platform.
	Platform string

	// InvalidPlatformError is returned when a raw string does not name a
	// supported platform.
	InvalidPlatformError struct {
		Value string
	}
)

var aliases = map[string]Platform{
	"win7":  Win7,
	"win10": Win10,
	"osx10": Osx10,
	"cent6": Cent6,
	"cent7": Cent7,
	"cent8": Cent8,
}

// All returns every supported platform in canonical order.
func All() []Platform {
	return []Platform{Win7, Win10, Osx10, Cent6, Cent7, Cent8}
}

// Parse converts a raw platform name into a Platform.
// Matching is case-insensitive and accepts both "cent7_64" and "cent7".
func Parse(raw string) (Platform, error) {
	name := strings.ToLower(strings.TrimSpace(raw))
	if p, ok := aliases[name]; ok {
		return p, nil
	}
	p := Platform(name)
	if isValid, _ := p.IsValid(); isValid {
		return p, nil
	}
	return "", &InvalidPlatformError{Value: raw}
}

// String returns the canonical platform name.
func (p Platform) String() string { return string(p) }

// IsValid returns whether the Platform is one of the canonical platforms.
func (p Platform) IsValid() (bool, []error) {
	switch p {
	case Win7, Win10, Osx10, Cent6, Cent7, Cent8:
		return true, nil
	default:
		return false, []error{&InvalidPlatformError{Value: string(p)}}
	}
}

// Error implements the error interface for InvalidPlatformError.
func (e *InvalidPlatformError) Error() string {
	return fmt.Sprintf("invalid platform %q (valid: win7_64, win10_64, osx10_64, cent6_64, cent7_64, cent8_64)", e.Value)
}

// Unwrap returns ErrInvalidPlatform for errors.Is() compatibility.
func (e *InvalidPlatformError) Unwrap() error { return ErrInvalidPlatform }
