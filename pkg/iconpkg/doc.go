// SPDX-License-Identifier: MPL-2.0

// Package iconpkg describes the third-party icon package families the readers
// understand and the per-family naming conventions used to turn a raw file
// stem into a residual icon name, an optional size, and extra categories.
//
// File organization:
//   - package_type.go: PackageType enumeration, metadata and short names
//   - category.go: which directory names count as categories per family
//   - rules.go: NameRule implementations and the RuleFor dispatcher
//   - accept.go: structural acceptance filter applied before an icon is built
package iconpkg
