// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// SVG is a minimal icon accepted by the svg parser.
const SVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24"><path d="M0 0h24v24H0z"/></svg>`

// WriteFiles creates each slash-separated relative path below root with the
// given content, creating parent directories as needed.
func WriteFiles(t testing.TB, root string, files map[string]string) {
	t.Helper()

	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("failed to create dir for %s: %v", rel, err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("failed to write %s: %v", rel, err)
		}
	}
}

// WriteIcons creates a new temporary directory holding an SVG file at each
// relative path and returns the directory.
func WriteIcons(t testing.TB, paths ...string) string {
	t.Helper()

	root := t.TempDir()
	files := make(map[string]string, len(paths))
	for _, rel := range paths {
		files[rel] = SVG
	}
	WriteFiles(t, root, files)
	return root
}
