// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"
	"testing"
)

func TestGet(t *testing.T) {
	t.Parallel()

	tests := []struct {
		id       Id
		contains string
	}{
		{ConfigLoadFailedId, "Failed to load configuration"},
		{ConfigNotFoundId, "No configuration found"},
		{IconsDirNotFoundId, "Icon package directory not found"},
		{UnknownPackageTypeId, "Unknown package type"},
		{UnrecognizedSizeId, "Unrecognized icon size"},
		{SvgParseFailedId, "Failed to parse an SVG file"},
		{MissingIconNameId, "Icon file has no name"},
		{DuplicateFeatureNameId, "Duplicate feature names"},
		{ManifestWriteFailedId, "Failed to write the manifest"},
		{WatchFailedId, "Watch mode stopped"},
		{PermissionDeniedId, "Permission denied"},
	}

	for _, tt := range tests {
		t.Run(tt.contains, func(t *testing.T) {
			t.Parallel()

			got := Get(tt.id)
			if got == nil {
				t.Fatalf("Get(%d) returned nil", tt.id)
			}
			if got.Id() != tt.id {
				t.Errorf("Id() = %d, want %d", got.Id(), tt.id)
			}
			if !strings.Contains(string(got.MarkdownMsg()), tt.contains) {
				t.Errorf("MarkdownMsg() does not contain %q", tt.contains)
			}
			if len(got.DocLinks()) == 0 {
				t.Errorf("issue %d has no doc links", tt.id)
			}
		})
	}

	if Get(Id(9999)) != nil {
		t.Error("Get(9999) should return nil")
	}
}

func TestValues(t *testing.T) {
	t.Parallel()

	values := Values()
	if len(values) != len(issues) {
		t.Fatalf("len(Values()) = %d, want %d", len(values), len(issues))
	}
	for i, v := range values {
		if want := Id(i + 1); v.Id() != want {
			t.Errorf("Values()[%d].Id() = %d, want %d", i, v.Id(), want)
		}
	}
}

func TestIssue_LinksAreCloned(t *testing.T) {
	t.Parallel()

	iss := Get(SvgParseFailedId)
	docs := iss.DocLinks()
	docs[0] = "modified"
	if iss.DocLinks()[0] == "modified" {
		t.Error("DocLinks() should return a clone")
	}

	ext := iss.ExtLinks()
	ext[0] = "modified"
	if iss.ExtLinks()[0] == "modified" {
		t.Error("ExtLinks() should return a clone")
	}
}

func TestIssue_Markdown(t *testing.T) {
	t.Parallel()

	md := Get(WatchFailedId).Markdown()
	if !strings.Contains(md, "## See also:") {
		t.Error("Markdown() should contain a See also section")
	}
	if !strings.Contains(md, "<"+docsBase+"watch.md>") {
		t.Error("Markdown() should list the doc link")
	}
	if !strings.Contains(md, "fsnotify") {
		t.Error("Markdown() should list the external link")
	}
}

// Not parallel: swaps the package-level renderer.
func TestIssue_Render(t *testing.T) {
	original := render
	t.Cleanup(func() { render = original })

	var gotStyle string
	render = func(in, stylePath string) (string, error) {
		gotStyle = stylePath
		return in, nil
	}

	out, err := Get(DuplicateFeatureNameId).Render("dark")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if gotStyle != "dark" {
		t.Errorf("style = %q, want %q", gotStyle, "dark")
	}
	if !strings.Contains(out, "short_name") {
		t.Error("Render() output should contain the markdown body")
	}
}
