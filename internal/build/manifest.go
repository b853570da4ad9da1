// SPDX-License-Identifier: MPL-2.0

package build

import (
	"cmp"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"github.com/pelletier/go-toml/v2"

	"github.com/luoxiaozero/icondata/internal/issue"
)

type (
	// Manifest lists the feature names of every built package.
	Manifest struct {
		Packages []ManifestPackage `toml:"packages"`
	}

	// ManifestPackage is one [[packages]] table.
	ManifestPackage struct {
		Type      string   `toml:"type"`
		ShortName string   `toml:"short_name"`
		Path      string   `toml:"path"`
		Icons     []string `toml:"icons"`
	}
)

// NewManifest builds a manifest from r, packages ordered by short name and
// icons by feature name.
func NewManifest(r *Report) Manifest {
	m := Manifest{Packages: make([]ManifestPackage, 0, len(r.Packages))}
	for _, pkg := range r.Packages {
		names := make([]string, len(pkg.Icons))
		for i, ic := range pkg.Icons {
			names[i] = ic.Name
		}
		slices.Sort(names)
		m.Packages = append(m.Packages, ManifestPackage{
			Type:      pkg.Target.Package.Type.String(),
			ShortName: pkg.Target.Package.ShortName,
			Path:      filepath.ToSlash(pkg.Target.Path),
			Icons:     names,
		})
	}
	slices.SortFunc(m.Packages, func(a, b ManifestPackage) int {
		return cmp.Compare(a.ShortName, b.ShortName)
	})
	return m
}

// WriteManifest encodes the manifest of r as TOML.
func WriteManifest(w io.Writer, r *Report) error {
	enc := toml.NewEncoder(w).SetArraysMultiline(true)
	if err := enc.Encode(NewManifest(r)); err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	return nil
}

// WriteManifestFile writes the manifest next to path and renames it into
// place, so readers never observe a partial file.
func WriteManifestFile(path string, r *Report) (err error) {
	fail := func(cause error) error {
		return issue.NewErrorContext().
			WithOperation("write manifest").
			WithResource(path).
			WithIssue(issue.ManifestWriteFailedId).
			Wrap(cause).
			BuildError()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fail(err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if err := WriteManifest(tmp, r); err != nil {
		_ = tmp.Close()
		return fail(err)
	}
	if err := tmp.Close(); err != nil {
		return fail(err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fail(err)
	}
	return nil
}
