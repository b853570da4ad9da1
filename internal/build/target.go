// SPDX-License-Identifier: MPL-2.0

package build

import (
	"fmt"

	"github.com/luoxiaozero/icondata/internal/config"
	"github.com/luoxiaozero/icondata/pkg/icon"
	"github.com/luoxiaozero/icondata/pkg/iconpkg"
)

// Target is one icon package to read.
type Target struct {
	Package iconpkg.Package
	// Path is the root of the package's icon tree.
	Path string
	// DefaultSize applies to icons that carry no size of their own. When set it
	// replaces any default size passed through WithReaderOptions.
	DefaultSize icon.IconSize
}

// TargetsFromConfig resolves the configured package entries. The config is
// expected to have passed Validate; errors name the offending entry anyway.
func TargetsFromConfig(cfg *config.Config) ([]Target, error) {
	targets := make([]Target, 0, len(cfg.Packages))
	for i, entry := range cfg.Packages {
		pkg, err := entry.Package()
		if err != nil {
			return nil, fmt.Errorf("packages[%d]: %w", i, err)
		}
		size, err := entry.Size()
		if err != nil {
			return nil, fmt.Errorf("packages[%d]: %w", i, err)
		}
		targets = append(targets, Target{Package: pkg, Path: entry.Path, DefaultSize: size})
	}
	return targets, nil
}
