// SPDX-License-Identifier: MPL-2.0

// Package cli contains CLI integration tests using testscript.
//
// The scripts run the built pk-make binary against throwaway package
// checkouts and compare the compiled pk commands byte for byte.
package cli

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
)

var (
	// binaryPath is the path to the built pk-make binary.
	binaryPath string
	// projectRoot is the path to the module root.
	projectRoot string
)

func TestMain(m *testing.M) {
	// Find project root (where go.mod is located)
	wd, err := os.Getwd()
	if err != nil {
		panic("failed to get working directory: " + err.Error())
	}

	projectRoot = wd
	for {
		if _, err := os.Stat(filepath.Join(projectRoot, "go.mod")); err == nil {
			break
		}
		parent := filepath.Dir(projectRoot)
		if parent == projectRoot {
			panic("could not find project root (go.mod)")
		}
		projectRoot = parent
	}

	binDir := filepath.Join(projectRoot, "bin")
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		panic("failed to create bin directory: " + err.Error())
	}

	binaryName := "pk-make"
	if runtime.GOOS == "windows" {
		binaryName = "pk-make.exe"
	}
	binaryPath = filepath.Join(binDir, binaryName)

	cmd := exec.CommandContext(context.Background(), "go", "build", "-o", binaryPath, ".")
	cmd.Dir = projectRoot
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		panic("failed to build pk-make: " + err.Error())
	}

	os.Exit(m.Run())
}

// TestCLI runs all testscript tests in the testdata directory.
func TestCLI(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir: "testdata",
		Setup: func(env *testscript.Env) error {
			binDir := filepath.Dir(binaryPath)
			env.Setenv("PATH", binDir+string(os.PathListSeparator)+env.Getenv("PATH"))

			// Keep the developer's configuration and build environment out of the scripts.
			env.Setenv("XDG_CONFIG_HOME", filepath.Join(env.WorkDir, ".config"))
			env.Setenv("HOME", env.WorkDir)
			env.Setenv("APPDATA", filepath.Join(env.WorkDir, "AppData"))
			env.Setenv("DD_OS", "cent7_64")
			env.Setenv("DD_SHOW", "DEV01")
			env.Setenv("NO_COLOR", "1")

			return nil
		},
		ContinueOnError: true,
	})
}
