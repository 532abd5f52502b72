// SPDX-License-Identifier: MPL-2.0

// Package buildenv resolves the on-disk and environment state of a package
// checkout: its canonical root, the host platform from DD_OS, the private
// build and dist directories, the version control system in use, the manifest
// location and the optional current show from DD_SHOW.
//
// Resolution reads the environment and the filesystem once and returns an
// immutable Env snapshot.
package buildenv
