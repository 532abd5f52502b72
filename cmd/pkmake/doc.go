// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for pk-make.
//
// This package implements the Cobra command hierarchy for the pk-make CLI:
// the root command, one subcommand per recipe target (build, install, docs,
// test and run) and configuration management. Each target handler collects
// flags into a recipe accumulator, finalizes it and hands the request to the
// execute service.
package cmd
