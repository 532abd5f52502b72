// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration using Viper with CUE as the file format.
//
// Configuration is loaded from ~/.config/pk-make/config.cue (or XDG equivalent on Linux,
// ~/Library/Application Support/pk-make/config.cue on macOS, %APPDATA%\pk-make\config.cue
// on Windows), or from an explicit path. The file is validated against an embedded CUE
// schema (config_schema.cue) before being merged over the defaults, and PKMAKE_*
// environment variables override individual keys.
package config
