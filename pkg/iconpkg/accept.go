// SPDX-License-Identifier: MPL-2.0

package iconpkg

import (
	"slices"
	"strings"

	"github.com/luoxiaozero/icondata/pkg/icon"
)

// fluentCategoryDepth is the number of directory categories a
// FluentUISystemIcons svg must sit under: "<Icon Name>/SVG".
const fluentCategoryDepth = 2

// fluentStyleSuffixes are the only FluentUISystemIcons variants that are kept.
var fluentStyleSuffixes = []string{"20_regular", "20_filled"}

// Accepts applies the family's structural filter to an svg file found with
// the given stem under a directory carrying cats. Only FluentUISystemIcons
// gates; every other family accepts all svg files.
func (pt PackageType) Accepts(stem string, cats []icon.Category) bool {
	if pt != FluentUISystemIcons {
		return true
	}
	if len(cats) != fluentCategoryDepth {
		return false
	}
	if slices.ContainsFunc(cats, hasFluentTempMarker) {
		return false
	}
	return slices.ContainsFunc(fluentStyleSuffixes, func(suffix string) bool {
		return strings.HasSuffix(stem, suffix)
	})
}
