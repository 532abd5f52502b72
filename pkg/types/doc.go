// SPDX-License-Identifier: MPL-2.0

// Package types defines the closed-set value types shared by the recipe
// compiler and the CLI: flavors, install contexts, sites, version control
// kinds, override pairs and process exit codes.
//
// Every type has a Parse function that matches raw user input
// case-insensitively and fails with a typed error wrapping a package sentinel
// (ErrInvalidFlavor, ErrInvalidSite, ...).
//
// This package is a leaf dependency: it imports only the standard library.
package types
