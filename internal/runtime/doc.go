// SPDX-License-Identifier: MPL-2.0

// Package runtime executes compiled command plans.
//
// Two runtime implementations are available:
//   - native: runs the plan through the host shell ($SHELL, bash or sh; PowerShell or cmd on Windows)
//   - virtual: runs the plan through an embedded POSIX shell interpreter (mvdan/sh)
//
// Both implement the Runtime interface and stream output to the
// ExecutionContext writers as it is produced.
package runtime
