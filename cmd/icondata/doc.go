// SPDX-License-Identifier: MPL-2.0

// Package cmd implements the icondata command line: scanning icon packages
// into feature-named icon sets, watching them for changes, listing the
// supported package families and managing the configuration file.
//
// Commands receive an *App and reach configuration loading and the build
// pipeline through its service interfaces, so tests can inject fakes and
// capture output.
package cmd
