// SPDX-License-Identifier: MPL-2.0

package reader

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/luoxiaozero/icondata/pkg/icon"
	"github.com/luoxiaozero/icondata/pkg/iconpkg"
)

// NewSvgIcon builds the icon for one svg file. size is the size inherited
// from the directory structure; a size found in the file name takes
// precedence. cats is copied before the package rule gets to modify it.
func (r *Reader) NewSvgIcon(ctx context.Context, pkg iconpkg.Package, path string, size icon.IconSize, cats []icon.Category) (icon.SvgIcon, error) {
	stem, ok := fileStem(path)
	if !ok {
		return icon.SvgIcon{}, &Error{Kind: KindMissingName, Op: "derive icon name", Path: path, Package: pkg.ShortName, Err: errNoBaseName}
	}

	cats = icon.CloneCategories(cats)
	raw, nameSize := iconpkg.ParseRawIconName(pkg.Type, stem, &cats)
	name := icon.FeatureName(raw, nameSize.Or(size), cats, pkg.ShortName)

	if err := ctx.Err(); err != nil {
		return icon.SvgIcon{}, fmt.Errorf("build icon %s canceled: %w", name, err)
	}

	data, err := r.fs.ReadFile(path)
	if err != nil {
		return icon.SvgIcon{}, &Error{Kind: KindIO, Op: "read icon", Name: name, Path: path, Package: pkg.ShortName, Err: err}
	}

	parsed, err := r.parser.Parse(data, icon.ContainsCategory(cats, icon.CategoryTwotone))
	if err != nil {
		return icon.SvgIcon{}, &Error{Kind: KindParse, Op: "parse icon", Name: name, Path: path, Package: pkg.ShortName, Err: err}
	}

	return icon.SvgIcon{Name: name, Path: path, Svg: parsed}, nil
}

// fileStem returns the base name of path without its extension.
func fileStem(path string) (string, bool) {
	base := filepath.Base(path)
	if base == "." || base == ".." || base == string(filepath.Separator) || base == "" {
		return "", false
	}
	stem, _, _ := splitExt(base)
	if stem == "" {
		return "", false
	}
	return stem, true
}
