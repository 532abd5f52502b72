// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"runtime"
	"testing"

	"github.com/pkmake/pkmake/pkg/platform"
)

// SetHomeDir points the platform's home variable (USERPROFILE on Windows,
// HOME elsewhere) at dir and returns a cleanup function.
func SetHomeDir(t testing.TB, dir string) func() {
	t.Helper()

	switch runtime.GOOS {
	case platform.Windows:
		return MustSetenv(t, "USERPROFILE", dir)
	default:
		return MustSetenv(t, "HOME", dir)
	}
}
