// SPDX-License-Identifier: MPL-2.0

package buildenv

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pkmake/pkmake/pkg/platform"
	"github.com/pkmake/pkmake/pkg/types"
)

const (
	// EnvPlatform names the required variable holding the host platform.
	EnvPlatform = "DD_OS"
	// EnvShow names the optional variable holding the current show.
	EnvShow = "DD_SHOW"
)

var (
	// ErrEnvNotSet is the sentinel error wrapped by MissingEnvError.
	ErrEnvNotSet = errors.New("required environment variable not set")

	// ErrManifestNotFound is the sentinel error wrapped by ManifestNotFoundError.
	ErrManifestNotFound = errors.New("manifest not found")

	// manifestCandidates are tried in order at the package root.
	manifestCandidates = []string{"manifest.yaml", "pk.yaml"}

	// manifestFallback is checked when no root candidate exists.
	manifestFallback = filepath.Join("manifest", "manifest")
)

type (
	// Env is the resolved state of a package checkout.
	Env struct {
		// PackageRoot is the canonical absolute root directory.
		PackageRoot string
		// Platform is the host platform read from DD_OS.
		Platform platform.Platform
		// PrivateDir is <root>/private.
		PrivateDir string
		// BuildDir is <root>/private/build.
		BuildDir string
		// DistDir is <root>/private/dist.
		DistDir string
		// Vcs is the detected version control system; empty when undetermined.
		Vcs types.Vcs
		// Manifest is the path of the manifest file.
		Manifest string
		// Show is the value of DD_SHOW; empty when unset.
		Show string
	}

	// LookupEnvFunc matches os.LookupEnv.
	LookupEnvFunc func(key string) (string, bool)

	// Resolver builds Env snapshots. The zero value reads the process
	// environment.
	Resolver struct {
		LookupEnv LookupEnvFunc
	}

	// MissingEnvError is returned when a required environment variable is unset.
	MissingEnvError struct {
		Name string
	}

	// ManifestNotFoundError is returned when none of the manifest candidates exist.
	ManifestNotFoundError struct {
		Root string
	}
)

// Resolve resolves root using the process environment.
func Resolve(root string) (*Env, error) {
	return Resolver{}.Resolve(root)
}

// Resolve builds the Env for the package checkout at root.
func (r Resolver) Resolve(root string) (*Env, error) {
	lookup := r.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}

	canonical, err := canonicalize(root)
	if err != nil {
		return nil, err
	}

	rawOS, ok := lookup(EnvPlatform)
	if !ok || rawOS == "" {
		return nil, &MissingEnvError{Name: EnvPlatform}
	}
	hostPlatform, err := platform.Parse(rawOS)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", EnvPlatform, err)
	}

	manifestPath, err := FindManifest(canonical)
	if err != nil {
		return nil, err
	}

	privateDir := filepath.Join(canonical, "private")
	env := &Env{
		PackageRoot: canonical,
		Platform:    hostPlatform,
		PrivateDir:  privateDir,
		BuildDir:    filepath.Join(privateDir, "build"),
		DistDir:     filepath.Join(privateDir, "dist"),
		Vcs:         DetectVcs(canonical),
		Manifest:    manifestPath,
	}
	if show, ok := lookup(EnvShow); ok {
		env.Show = show
	}

	slog.Debug("resolved build environment",
		"root", env.PackageRoot,
		"platform", env.Platform,
		"vcs", env.Vcs,
		"manifest", env.Manifest,
		"show", env.Show)

	return env, nil
}

// DetectVcs reports which version control marker directories exist at root.
// It returns the empty Vcs when neither .git nor .svn is present.
func DetectVcs(root string) types.Vcs {
	hasGit := isDir(filepath.Join(root, ".git"))
	hasSvn := isDir(filepath.Join(root, ".svn"))
	switch {
	case hasGit && hasSvn:
		return types.VcsBoth
	case hasGit:
		return types.VcsGit
	case hasSvn:
		return types.VcsSvn
	default:
		return ""
	}
}

// FindManifest returns the first manifest candidate that exists under root.
func FindManifest(root string) (string, error) {
	for _, name := range manifestCandidates {
		p := filepath.Join(root, name)
		if isFile(p) {
			return p, nil
		}
	}
	p := filepath.Join(root, manifestFallback)
	if isFile(p) {
		return p, nil
	}
	return "", &ManifestNotFoundError{Root: root}
}

// Error implements the error interface for MissingEnvError.
func (e *MissingEnvError) Error() string {
	return fmt.Sprintf("environment variable %s is not set", e.Name)
}

// Unwrap returns ErrEnvNotSet for errors.Is() compatibility.
func (e *MissingEnvError) Unwrap() error { return ErrEnvNotSet }

// Error implements the error interface for ManifestNotFoundError.
func (e *ManifestNotFoundError) Error() string {
	return fmt.Sprintf("no manifest found under %s (tried manifest.yaml, pk.yaml, manifest/manifest)", e.Root)
}

// Unwrap returns ErrManifestNotFound for errors.Is() compatibility.
func (e *ManifestNotFoundError) Unwrap() error { return ErrManifestNotFound }

func canonicalize(root string) (string, error) {
	if root == "" {
		root = "."
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("failed to resolve package root %q: %w", root, err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("package root %q does not exist: %w", root, err)
	}
	return resolved, nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
