// SPDX-License-Identifier: MPL-2.0

package recipe

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/pkmake/pkmake/internal/buildenv"
	"github.com/pkmake/pkmake/internal/manifest"
	"github.com/pkmake/pkmake/pkg/platform"
	"github.com/pkmake/pkmake/pkg/types"
)

const (
	TargetBuild   Target = "build"
	TargetInstall Target = "install"
	TargetDocs    Target = "docs"
	TargetTest    Target = "test"
	TargetRun     Target = "run"
)

// ErrInvalidTarget is the sentinel error wrapped by InvalidTargetError.
var ErrInvalidTarget = errors.New("invalid target")

type (
	// Target names the kind of pk action a request compiles to.
	Target string

	// InvalidTargetError is returned when a Target is not one of the known kinds.
	InvalidTargetError struct {
		Value Target
	}

	// Recipe is a finalized request that can be compiled into a Plan.
	Recipe interface {
		// Target returns the request kind.
		Target() Target
		// Settings returns the selections shared by every target.
		Settings() Common
		// Describe lists the request fields for verbose display.
		Describe() []Field
		// Compile builds the command plan. manifests is only consulted when
		// the plan needs package identity.
		Compile(env *buildenv.Env, manifests manifest.Reader) (Plan, error)
	}

	// Field is one row of a request description.
	Field struct {
		Name  string
		Value string
	}

	// Common holds the selections every target accepts.
	Common struct {
		Clean       bool
		DryRun      bool
		Verbose     bool
		PackageRoot string
		DistDir     string
		BuildDir    string
		Platforms   []platform.Platform
		Flavors     []types.Flavor
		Defines     []string
		Overrides   []types.OverridePair
	}
)

// String returns the target name.
func (t Target) String() string { return string(t) }

// Validate returns an error if the Target is not one of the known kinds.
func (t Target) Validate() error {
	switch t {
	case TargetBuild, TargetInstall, TargetDocs, TargetTest, TargetRun:
		return nil
	default:
		return &InvalidTargetError{Value: t}
	}
}

// Error implements the error interface for InvalidTargetError.
func (e *InvalidTargetError) Error() string {
	return fmt.Sprintf("invalid target %q (valid: build, install, docs, test, run)", e.Value)
}

// Unwrap returns ErrInvalidTarget for errors.Is() compatibility.
func (e *InvalidTargetError) Unwrap() error { return ErrInvalidTarget }

// Root returns the package root to resolve, defaulting to the working directory.
func (c Common) Root() string {
	if c.PackageRoot == "" {
		return "."
	}
	return c.PackageRoot
}

func (c Common) clone() Common {
	out := c
	out.Platforms = cloneSlice(c.Platforms)
	out.Flavors = cloneSlice(c.Flavors)
	out.Defines = cloneSlice(c.Defines)
	out.Overrides = cloneSlice(c.Overrides)
	return out
}

func cloneSlice[T any](s []T) []T {
	if len(s) == 0 {
		return nil
	}
	out := make([]T, len(s))
	copy(out, s)
	return out
}

func boolField(name string, v bool) Field {
	return Field{Name: name, Value: strconv.FormatBool(v)}
}

func stringField(name, v string) Field {
	if v == "" {
		v = "None"
	}
	return Field{Name: name, Value: v}
}

func listField[T ~string](name string, values []T) Field {
	if len(values) == 0 {
		return Field{Name: name, Value: "None"}
	}
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return Field{Name: name, Value: strings.Join(parts, "\n")}
}
