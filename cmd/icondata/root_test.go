// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"strings"
	"testing"

	"github.com/luoxiaozero/icondata/internal/config"
	"github.com/luoxiaozero/icondata/internal/issue"
)

func TestGetVersionString(t *testing.T) {
	// Not parallel: cases mutate package-level Version/Commit/BuildDate vars.
	tests := []struct {
		name                      string
		version, commit, buildDate string
		want                      string
	}{
		{
			name:     "ldflags version",
			version:  "v1.2.3",
			commit:   "abc1234",
			buildDate: "2026-06-15T10:00:00Z",
			want:     "v1.2.3 (commit: abc1234, built: 2026-06-15T10:00:00Z)",
		},
		{
			name:     "dev build",
			version:  "dev",
			commit:   "unknown",
			buildDate: "unknown",
			want:     "dev (built from source)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			origVersion, origCommit, origBuildDate := Version, Commit, BuildDate
			t.Cleanup(func() {
				Version, Commit, BuildDate = origVersion, origCommit, origBuildDate
			})

			Version, Commit, BuildDate = tt.version, tt.commit, tt.buildDate
			if got := getVersionString(); got != tt.want {
				t.Errorf("getVersionString() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatErrorForDisplay(t *testing.T) {
	t.Parallel()

	actionable := issue.NewErrorContext().
		WithOperation("read icon package").
		WithResource("/icons").
		WithSuggestion("check the path").
		Wrap(errors.New("boom")).
		BuildError()

	tests := []struct {
		name    string
		err     error
		verbose bool
		want    []string
	}{
		{name: "plain", err: errors.New("plain failure"), want: []string{"plain failure"}},
		{name: "actionable", err: actionable, want: []string{"failed to read icon package", "/icons", "check the path"}},
		{name: "actionable verbose", err: actionable, verbose: true, want: []string{"Error chain:", "boom"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := formatErrorForDisplay(tt.err, tt.verbose)
			for _, want := range tt.want {
				if !strings.Contains(got, want) {
					t.Errorf("formatErrorForDisplay() = %q, missing %q", got, want)
				}
			}
		})
	}
}

func TestGlamourStyle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		scheme config.ColorScheme
		want   string
	}{
		{config.ColorSchemeDark, "dark"},
		{config.ColorSchemeLight, "light"},
		{config.ColorSchemeAuto, "auto"},
		{"", "auto"},
	}

	for _, tt := range tests {
		if got := glamourStyle(tt.scheme); got != tt.want {
			t.Errorf("glamourStyle(%q) = %q, want %q", tt.scheme, got, tt.want)
		}
	}
}
