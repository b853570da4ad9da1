// SPDX-License-Identifier: MPL-2.0

// Package issue holds the user-facing error types of icondata: actionable
// errors carrying remediation hints, and a catalog of markdown guidance
// rendered in the terminal.
package issue
