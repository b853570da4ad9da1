// SPDX-License-Identifier: MPL-2.0

// Package watch rebuilds icon data when svg files change.
//
// It monitors the icon package roots and invokes a callback after a
// debounce period. Events within the window are coalesced so the callback
// fires once with the full set of changed paths.
package watch
