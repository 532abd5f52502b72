// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"strings"
	"testing"
)

func TestGetVersionString(t *testing.T) {
	// Not parallel: subtests mutate package-level Version/Commit/BuildDate vars.

	t.Run("ldflags version", func(t *testing.T) {
		origVersion, origCommit, origBuildDate := Version, Commit, BuildDate
		t.Cleanup(func() {
			Version, Commit, BuildDate = origVersion, origCommit, origBuildDate
		})

		Version = "v1.2.3"
		Commit = "abc1234"
		BuildDate = "2026-03-01T10:00:00Z"

		got := getVersionString()
		want := "v1.2.3 (commit: abc1234, built: 2026-03-01T10:00:00Z)"
		if got != want {
			t.Errorf("getVersionString() = %q, want %q", got, want)
		}
	})

	t.Run("dev build", func(t *testing.T) {
		origVersion := Version
		t.Cleanup(func() { Version = origVersion })

		Version = "dev"
		if got := getVersionString(); got != "dev (built from source)" {
			t.Errorf("getVersionString() = %q", got)
		}
	})
}

func TestNewRootCommand_Tree(t *testing.T) {
	t.Parallel()

	root := NewRootCommand(NewApp(Dependencies{}))
	for _, name := range []string{"build", "install", "docs", "test", "run", "config"} {
		sub, _, err := root.Find([]string{name})
		if err != nil || sub.Name() != name {
			t.Errorf("Find(%q) = %v, %v", name, sub, err)
		}
	}
	for _, flag := range []string{"config", "log-level", "runtime"} {
		if root.PersistentFlags().Lookup(flag) == nil {
			t.Errorf("missing persistent flag --%s", flag)
		}
	}

	install, _, _ := root.Find([]string{"install"})
	for _, flag := range []string{"clean", "skip-docs", "context", "show", "site", "platform", "flavor", "build-dir", "verbose", "dist-dir", "level", "override", "define", "work", "vcs", "logfile", "max-jobs", "package-root", "dry-run"} {
		if install.Flags().Lookup(flag) == nil {
			t.Errorf("install is missing --%s", flag)
		}
	}
	if !strings.HasPrefix(root.Use, "pk-make") {
		t.Errorf("root Use = %q", root.Use)
	}
}

func TestRenderRequestTable(t *testing.T) {
	t.Parallel()

	res := runCLI(t, Dependencies{}, "build", "-n", "-v", "-r", t.TempDir())
	// the table is printed before the environment is resolved
	for _, want := range []string{"build", "Value", "with_docs", "true"} {
		if !strings.Contains(res.stdout, want) {
			t.Errorf("table missing %q:\n%s", want, res.stdout)
		}
	}
}
