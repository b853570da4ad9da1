// SPDX-License-Identifier: MPL-2.0

package icon

import "slices"

// CategoryTwotone marks icons whose SVG needs two-tone handling.
const CategoryTwotone Category = "twotone"

// Category is a case-preserved style or variant tag applied to an icon
// (e.g. "filled", "twotone", a language code). Categories compare by value.
type Category string

// String returns the raw tag.
func (c Category) String() string { return string(c) }

// CloneCategories returns an independent copy of cats. A nil input yields an
// empty, non-nil slice so callers can append without aliasing.
func CloneCategories(cats []Category) []Category {
	out := make([]Category, len(cats), len(cats)+1)
	copy(out, cats)
	return out
}

// ContainsCategory reports whether c is present in cats.
func ContainsCategory(cats []Category, c Category) bool {
	return slices.Contains(cats, c)
}
