// SPDX-License-Identifier: MPL-2.0

package recipe

import (
	"strconv"
	"strings"
)

const (
	buildPrefix     = "pk audit && pk build"
	installPrefix   = "pk install"
	runRecipePrefix = "pk run-recipe"

	gitTagCommand = "git-tag create --protect"
	svnTagCommand = "svn-tag create"
)

// multiStyle says how a flag with several values is written.
type multiStyle int

const (
	// joined writes one flag with comma separated values: --platform=a,b
	joined multiStyle = iota
	// repeated writes the flag once per value: -D=a -D=b
	repeated
)

type (
	// multiFlag is a flag name together with its multi-value style.
	multiFlag struct {
		name  string
		style multiStyle
	}

	// flagTable records the per-target spelling pk expects.
	flagTable struct {
		flavor   multiFlag
		define   multiFlag
		override multiFlag
		platform multiFlag
		site     multiFlag
	}
)

var (
	buildFlags = flagTable{
		flavor:   multiFlag{"--flavor", joined},
		define:   multiFlag{"-D", repeated},
		override: multiFlag{"--override", repeated},
		platform: multiFlag{"--platform", joined},
	}

	installFlags = flagTable{
		flavor:   multiFlag{"--flavour", joined},
		define:   multiFlag{"-D", repeated},
		override: multiFlag{"--override", joined},
		platform: multiFlag{"--platform", joined},
		site:     multiFlag{"--site", joined},
	}

	// docs, test and run share the run-recipe spelling
	runRecipeFlags = flagTable{
		flavor:   multiFlag{"--flavour", joined},
		define:   multiFlag{"--define", repeated},
		platform: multiFlag{"--platform", joined},
	}
)

// format renders values with f. It returns "" when values is empty.
func format[T ~string](f multiFlag, values []T) string {
	if len(values) == 0 {
		return ""
	}
	var sb strings.Builder
	switch f.style {
	case repeated:
		for _, v := range values {
			sb.WriteString(" " + f.name + "=" + string(v))
		}
	default:
		sb.WriteString(" " + f.name + "=")
		for i, v := range values {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(string(v))
		}
	}
	return sb.String()
}

// boolFlag renders " name" when on is set.
func boolFlag(on bool, name string) string {
	if !on {
		return ""
	}
	return " " + name
}

// valueFlag renders " name=value" when value is not empty.
func valueFlag(name, value string) string {
	if value == "" {
		return ""
	}
	return " " + name + "=" + value
}

// intFlag renders " name=n" when n is positive.
func intFlag(name string, n int) string {
	if n <= 0 {
		return ""
	}
	return " " + name + "=" + strconv.Itoa(n)
}

// orDefault returns values, or def when values is empty.
func orDefault[T any](values []T, def ...T) []T {
	if len(values) == 0 {
		return def
	}
	return values
}
