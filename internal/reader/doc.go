// SPDX-License-Identifier: MPL-2.0

// Package reader walks an icon package's directory tree and builds one
// SvgIcon per accepted svg file.
//
// Directory context flows downward: a subdirectory inherits its parent's
// categories and size, may add a category of its own (when the package family
// says its name is meaningful) and may set the size if none was inherited.
// Every subdirectory gets its own copy of that context, so nothing set in one
// branch is visible in a sibling.
//
// File organization:
//   - reader.go: Reader, options and the traversal loop (ReadIcons)
//   - icon.go: per-file construction (NewSvgIcon)
//   - errors.go: the tagged Error type and its kinds
//   - diagnostic.go: non-fatal skips reported to callers
//   - fs.go: the FileSystem seam and its os-backed default
package reader
