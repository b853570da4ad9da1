// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"runtime"
	"testing"
)

// SetConfigHome points every per-user configuration root at dir for the rest
// of the test: APPDATA on Windows, HOME on macOS and XDG_CONFIG_HOME
// elsewhere. Tests calling it cannot run in parallel.
func SetConfigHome(t *testing.T, dir string) {
	t.Helper()

	switch runtime.GOOS {
	case "windows":
		t.Setenv("APPDATA", dir)
		t.Setenv("USERPROFILE", dir)
	case "darwin":
		t.Setenv("HOME", dir)
	default:
		t.Setenv("XDG_CONFIG_HOME", dir)
	}
}
