// SPDX-License-Identifier: MPL-2.0

// Package recipe turns user selections into the exact pk command lines that
// build, install, document, test or run a package.
//
// Each target has an Options accumulator (NewBuild, NewInstall, NewDocs,
// NewTest, NewRun). Setters validate raw input, merge multi-valued selections
// into insertion-ordered sets and return the accumulator so calls chain. The
// first failure is kept and reported by Err and Finalize. Finalize returns an
// immutable request whose Compile method combines it with a resolved
// buildenv.Env and the package manifest to produce a Plan.
//
// Flag spelling differs per target (--flavor vs --flavour, -D vs --define,
// comma-joined vs repeated overrides). Those differences are what pk expects
// and live in the flag tables in flags.go.
package recipe
