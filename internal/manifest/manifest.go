// SPDX-License-Identifier: MPL-2.0

// Package manifest reads the subset of a pk package manifest that command
// compilation needs: the package name, its version and the declared flavours.
package manifest

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pkmake/pkmake/pkg/types"
)

// ErrInvalidManifest is the sentinel error wrapped by InvalidManifestError.
var ErrInvalidManifest = errors.New("invalid manifest")

type (
	// Info is the package identity taken from a manifest.
	Info struct {
		Name    string
		Version string
		// Flavors lists the declared flavours in manifest order.
		// It always holds at least one entry; a manifest without
		// flavours declares only the vanilla flavour.
		Flavors []types.Flavor
	}

	// InvalidManifestError is returned when a manifest cannot be decoded or
	// lacks a required field.
	InvalidManifestError struct {
		Path   string
		Reason string
		Err    error
	}

	// Reader loads manifest info from a path.
	Reader interface {
		Read(path string) (*Info, error)
	}

	// FileReader reads manifests from the local filesystem.
	FileReader struct{}

	// document mirrors the on-disk layout. Both lower and title case keys are
	// in use in the wild.
	document struct {
		Name        string   `yaml:"name"`
		NameAlt     string   `yaml:"Name"`
		Version     string   `yaml:"version"`
		VersionAlt  string   `yaml:"Version"`
		Flavours    []flavor `yaml:"flavours"`
		FlavoursAlt []flavor `yaml:"Flavours"`
	}

	flavor struct {
		Name    string `yaml:"name"`
		NameAlt string `yaml:"Name"`
	}
)

// Read implements Reader.
func (FileReader) Read(path string) (*Info, error) {
	return Load(path)
}

// Load reads and decodes the manifest at path.
func Load(path string) (*Info, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	return Parse(data, path)
}

// Parse decodes manifest bytes. path is used only for error messages.
func Parse(data []byte, path string) (*Info, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &InvalidManifestError{Path: path, Reason: "malformed YAML", Err: err}
	}

	info := &Info{
		Name:    firstNonEmpty(doc.Name, doc.NameAlt),
		Version: firstNonEmpty(doc.Version, doc.VersionAlt),
	}
	if info.Name == "" {
		return nil, &InvalidManifestError{Path: path, Reason: "missing name"}
	}
	if info.Version == "" {
		return nil, &InvalidManifestError{Path: path, Reason: "missing version"}
	}

	raw := doc.Flavours
	if len(raw) == 0 {
		raw = doc.FlavoursAlt
	}
	if len(raw) == 0 {
		info.Flavors = []types.Flavor{types.Vanilla}
		return info, nil
	}
	for _, f := range raw {
		flav, err := types.ParseFlavor(firstNonEmpty(f.Name, f.NameAlt))
		if err != nil {
			return nil, &InvalidManifestError{Path: path, Reason: "bad flavour", Err: err}
		}
		info.Flavors = append(info.Flavors, flav)
	}
	return info, nil
}

// DistName returns the dist directory entry for flavor: "<name>-<version>"
// for vanilla, "<name>-<version>_<flavor>" otherwise.
func (i *Info) DistName(flavor types.Flavor) string {
	if flavor.IsVanilla() {
		return i.Name + "-" + i.Version
	}
	return i.Name + "-" + i.Version + "_" + flavor.String()
}

// Error implements the error interface for InvalidManifestError.
func (e *InvalidManifestError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid manifest %s: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid manifest %s: %s", e.Path, e.Reason)
}

// Unwrap returns ErrInvalidManifest for errors.Is() compatibility.
func (e *InvalidManifestError) Unwrap() error { return ErrInvalidManifest }

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
