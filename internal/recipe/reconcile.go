// SPDX-License-Identifier: MPL-2.0

package recipe

import (
	"fmt"
	"strings"

	"github.com/pkmake/pkmake/pkg/types"
)

const facility = "facility"

// scope is the outcome of reconciling level, context and show.
type scope struct {
	context types.Context
	level   string
}

func (s scope) isFacility() bool { return s.context == types.ContextFacility }

// reconcile resolves the install scope. envShow is the show read from the
// environment and is only consulted when no level or explicit show is given.
//
// "facility" is recognized in three places: an explicit context, the level
// string and the show name.
func reconcile(level string, context types.Context, show, envShow string) (scope, error) {
	if level != "" && (context != "" || show != "") {
		return scope{}, ErrAmbiguousScope
	}

	if level != "" {
		if strings.EqualFold(level, facility) {
			return scope{context: types.ContextFacility}, nil
		}
		return scope{context: context, level: level}, nil
	}

	if context == "" {
		context = types.ContextUser
	}
	if context == types.ContextFacility {
		return scope{context: context}, nil
	}

	if show == "" {
		show = envShow
	}
	if show == "" {
		return scope{}, ErrShowNotSet
	}
	if strings.EqualFold(show, facility) {
		return scope{context: types.ContextFacility}, nil
	}

	if context == types.ContextShared {
		return scope{context: context, level: show}, nil
	}
	return scope{context: context, level: show + ".work"}, nil
}

// facilityCommand returns the tagging command for a facility install.
// detected is the VCS found in the checkout; chosen is the user's override.
func facilityCommand(detected, chosen types.Vcs) (string, error) {
	switch detected {
	case types.VcsGit:
		return gitTagCommand, nil
	case types.VcsSvn:
		return svnTagCommand, nil
	case types.VcsBoth:
		switch chosen {
		case "":
			return "", ErrAmbiguousVcs
		case types.VcsGit:
			return gitTagCommand, nil
		case types.VcsSvn:
			return svnTagCommand, nil
		default:
			return "", fmt.Errorf("%w: %q supplied by user", ErrUnknownVcs, chosen)
		}
	default:
		return "", fmt.Errorf("%w: no git or svn checkout found", ErrUnknownVcs)
	}
}
