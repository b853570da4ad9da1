// SPDX-License-Identifier: MPL-2.0

// Package testutil provides helpers shared by the tests of several packages:
// writing icon trees below a temporary directory and isolating the per-user
// configuration directory.
package testutil
