// SPDX-License-Identifier: MPL-2.0

// Package build reads many icon packages concurrently, checks that every
// feature name is unique across them, and writes the TOML manifest.
package build
