// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// VcsGit is a git working copy.
	VcsGit Vcs = "git"
	// VcsSvn is a subversion working copy.
	VcsSvn Vcs = "svn"
	// VcsBoth is a directory tracked by both git and subversion.
	VcsBoth Vcs = "git+svn"
)

// ErrInvalidVcs is the sentinel error wrapped by InvalidVcsError.
var ErrInvalidVcs = errors.New("invalid vcs")

type (
	// Vcs is a version control system kind. The zero value means undetermined.
	Vcs string

	// InvalidVcsError is returned when a raw string is not a known VCS name.
	InvalidVcsError struct {
		Value string
	}
)

// ParseVcs converts a raw string into a Vcs, ignoring case.
// "git+svn", "svn+git", "both", "git&svn" and "svn&git" all mean VcsBoth.
func ParseVcs(raw string) (Vcs, error) {
	switch strings.ToLower(raw) {
	case "git":
		return VcsGit, nil
	case "svn":
		return VcsSvn, nil
	case "git+svn", "svn+git", "both", "git&svn", "svn&git":
		return VcsBoth, nil
	default:
		return "", &InvalidVcsError{Value: raw}
	}
}

// String returns the VCS name.
func (v Vcs) String() string { return string(v) }

// IsBoth reports whether v is VcsBoth.
func (v Vcs) IsBoth() bool { return v == VcsBoth }

// IsValid returns whether the Vcs is undetermined or one of the known kinds.
func (v Vcs) IsValid() (bool, []error) {
	switch v {
	case VcsGit, VcsSvn, VcsBoth, "":
		return true, nil
	default:
		return false, []error{&InvalidVcsError{Value: string(v)}}
	}
}

// Error implements the error interface for InvalidVcsError.
func (e *InvalidVcsError) Error() string {
	return fmt.Sprintf("invalid vcs %q (valid: git, svn, git+svn)", e.Value)
}

// Unwrap returns ErrInvalidVcs for errors.Is() compatibility.
func (e *InvalidVcsError) Unwrap() error { return ErrInvalidVcs }
