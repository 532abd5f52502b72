// SPDX-License-Identifier: MPL-2.0

package platform

// Host OS names as reported by runtime.GOOS. The native runtime uses them to
// pick a default shell.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
)
