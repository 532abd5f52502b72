// SPDX-License-Identifier: MPL-2.0

// Package platform defines the closed set of build platforms understood by pk
// and the host OS name constants used when choosing a shell.
//
// Platform names are matched case-insensitively and accept the short aliases
// (win7, cent7, ...) in addition to the canonical _64 names. The canonical
// name is what ends up in emitted command text.
package platform
