// SPDX-License-Identifier: MPL-2.0

package iconpkg

import "slices"

// categoryDirs lists, per family, the directory names that become categories
// for every icon below them. Families without an entry contribute none,
// except FluentUISystemIcons where every directory counts.
var categoryDirs = map[PackageType][]string{
	AntDesignIcons: {"filled", "outlined", "twotone"},
	FontAwesome:    {"brands", "regular", "solid"},
	BoxIcons:       {"regular", "solid"},
	HeroIcons:      {"outline", "solid"},
	TablerIcons:    {"filled"},
}

// IsCategory reports whether a directory named dirName carries a meaningful
// category for icons of this family.
func (pt PackageType) IsCategory(dirName string) bool {
	if pt == FluentUISystemIcons {
		return true
	}
	return slices.Contains(categoryDirs[pt], dirName)
}

// CategoryDirs returns the fixed category directory names of the family.
// FluentUISystemIcons returns nil because it accepts every directory.
func (pt PackageType) CategoryDirs() []string {
	return slices.Clone(categoryDirs[pt])
}
