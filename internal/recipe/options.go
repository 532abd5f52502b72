// SPDX-License-Identifier: MPL-2.0

package recipe

import (
	"github.com/pkmake/pkmake/pkg/orderedset"
	"github.com/pkmake/pkmake/pkg/platform"
	"github.com/pkmake/pkmake/pkg/types"
)

// accumulator holds the selections shared by every Options type. Setters on
// the Options types delegate here so the validation and merge rules are the
// same for all targets.
type accumulator struct {
	err error

	clean       bool
	dryRun      bool
	verbose     bool
	packageRoot string
	distDir     string
	buildDir    string

	platforms orderedset.Set[platform.Platform]
	flavors   orderedset.Set[types.Flavor]
	defines   orderedset.Set[string]
	overrides orderedset.Set[types.OverridePair]
}

// parseAll converts every raw value or none. The first failure is returned
// and nothing is kept.
func parseAll[T any](raw []string, parse func(string) (T, error)) ([]T, error) {
	out := make([]T, 0, len(raw))
	for _, r := range raw {
		v, err := parse(r)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// merge parses raw and adds the result to set, recording the first error.
func merge[T comparable](a *accumulator, set *orderedset.Set[T], raw []string, parse func(string) (T, error)) {
	values, err := parseAll(raw, parse)
	if err != nil {
		a.fail(err)
		return
	}
	set.Add(values...)
}

func (a *accumulator) fail(err error) {
	if a.err == nil {
		a.err = err
	}
}

func (a *accumulator) addPlatforms(raw []string) { merge(a, &a.platforms, raw, platform.Parse) }

func (a *accumulator) addFlavors(raw []string) { merge(a, &a.flavors, raw, types.ParseFlavor) }

func (a *accumulator) addOverrides(raw []string) {
	merge(a, &a.overrides, raw, types.ParseOverridePair)
}

func (a *accumulator) addDefines(raw []string) {
	a.defines.Add(raw...)
}

func (a *accumulator) common() Common {
	return Common{
		Clean:       a.clean,
		DryRun:      a.dryRun,
		Verbose:     a.verbose,
		PackageRoot: a.packageRoot,
		DistDir:     a.distDir,
		BuildDir:    a.buildDir,
		Platforms:   a.platforms.Values(),
		Flavors:     a.flavors.Values(),
		Defines:     a.defines.Values(),
		Overrides:   a.overrides.Values(),
	}
}
