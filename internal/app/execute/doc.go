// SPDX-License-Identifier: MPL-2.0

// Package execute connects the pk-make pipeline: it resolves the package
// environment, compiles a finalized recipe into a command plan, selects a
// runtime and runs the plan in the package root. It decouples CLI-layer
// orchestration from runtime selection and environment resolution.
package execute
