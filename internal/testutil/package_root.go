// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"
)

// PackageRoot describes a throwaway package checkout for tests.
type PackageRoot struct {
	// Name and Version end up in the manifest.
	Name    string
	Version string
	// Flavors is the manifest flavour list. Empty means no flavours key.
	Flavors []string
	// ManifestPath is relative to the root. Defaults to "manifest.yaml".
	ManifestPath string
	// Git and Svn create the matching VCS marker directories.
	Git bool
	Svn bool
}

// NewPackageRoot materializes pr under a fresh temp directory and returns the
// directory path.
func NewPackageRoot(t testing.TB, pr PackageRoot) string {
	t.Helper()

	root := t.TempDir()
	manifestPath := pr.ManifestPath
	if manifestPath == "" {
		manifestPath = "manifest.yaml"
	}
	MustWriteFile(t, filepath.Join(root, filepath.FromSlash(manifestPath)), ManifestYAML(pr.Name, pr.Version, pr.Flavors...))

	if pr.Git {
		MustMkdirAll(t, filepath.Join(root, ".git"), 0o755)
	}
	if pr.Svn {
		MustMkdirAll(t, filepath.Join(root, ".svn"), 0o755)
	}
	return root
}

// ManifestYAML renders a minimal manifest document.
func ManifestYAML(name, version string, flavors ...string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "name: %s\nversion: %s\n", name, version)
	if len(flavors) > 0 {
		sb.WriteString("flavours:\n")
		for _, f := range flavors {
			fmt.Fprintf(&sb, "  - name: %q\n", f)
		}
	}
	return sb.String()
}
