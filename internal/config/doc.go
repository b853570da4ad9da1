// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration using Viper with CUE as the file format.
//
// Configuration is loaded from config.cue in the platform config directory
// ($XDG_CONFIG_HOME/icondata on Linux, ~/Library/Application Support/icondata on
// macOS, %APPDATA%\icondata on Windows), or from ./config.cue. It lists the icon
// packages to build and settles concurrency, manifest output, watch mode, and UI
// preferences. Files are validated against the embedded config_schema.cue.
package config
