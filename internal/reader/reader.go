// SPDX-License-Identifier: MPL-2.0

package reader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	"github.com/luoxiaozero/icondata/pkg/icon"
	"github.com/luoxiaozero/icondata/pkg/iconpkg"
	"github.com/luoxiaozero/icondata/pkg/svg"
)

// IconExtension is the only file extension turned into icons.
const IconExtension = "svg"

type (
	// SvgParser validates and normalizes raw svg bytes. The twotone hint is
	// set when the icon carries the "twotone" category.
	SvgParser interface {
		Parse(data []byte, twotone bool) (*svg.ParsedSvg, error)
	}

	// Option configures a Reader.
	Option func(*Reader)

	// Reader discovers icons below a package's icon directory. A Reader holds
	// no per-traversal state and may be shared by concurrent traversals.
	Reader struct {
		fs          FileSystem
		parser      SvgParser
		logger      *log.Logger
		defaultSize icon.IconSize
	}

	// Result bundles the icons of one package with the diagnostics produced
	// while reading them.
	Result struct {
		Icons       []icon.SvgIcon
		Diagnostics []Diagnostic
	}

	// searchDir is one pending directory together with the context inherited
	// from its ancestors. It is never modified after being pushed.
	searchDir struct {
		path       string
		categories []icon.Category
		size       icon.IconSize
	}
)

// New creates a Reader backed by the host file system and the default svg
// parser unless overridden by opts.
func New(opts ...Option) *Reader {
	r := &Reader{
		fs:     OSFileSystem{},
		parser: svg.DefaultParser{},
		logger: log.NewWithOptions(os.Stderr, log.Options{Prefix: "reader"}),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// WithFileSystem replaces the file system collaborator.
func WithFileSystem(fsys FileSystem) Option {
	return func(r *Reader) {
		if fsys != nil {
			r.fs = fsys
		}
	}
}

// WithParser replaces the svg parser collaborator.
func WithParser(p SvgParser) Option {
	return func(r *Reader) {
		if p != nil {
			r.parser = p
		}
	}
}

// WithLogger sets the logger used for traversal events.
func WithLogger(l *log.Logger) Option {
	return func(r *Reader) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithDefaultSize sets the size used for icons whose file name and directory
// path carry none. IconSizeNone (the default) leaves such icons unsized.
func WithDefaultSize(size icon.IconSize) Option {
	return func(r *Reader) {
		r.defaultSize = size
	}
}

// ReadIcons returns every accepted icon below iconsPath, or the first error
// encountered. An empty directory yields an empty, non-nil slice.
func (r *Reader) ReadIcons(ctx context.Context, pkg iconpkg.Package, iconsPath string) ([]icon.SvgIcon, error) {
	res, err := r.ReadIconsWithDiagnostics(ctx, pkg, iconsPath)
	if err != nil {
		return nil, err
	}
	return res.Icons, nil
}

// ReadIconsWithDiagnostics walks iconsPath depth-first and builds an icon for
// every accepted svg file. Files that cannot be classified are skipped and
// reported as diagnostics; directory, read and parse failures abort the walk.
//
// Output order follows traversal order, which depends on directory listing
// order and is only reproducible within one run on one platform.
func (r *Reader) ReadIconsWithDiagnostics(ctx context.Context, pkg iconpkg.Package, iconsPath string) (Result, error) {
	logger := r.logger.With("package", pkg.Type, "short_name", pkg.ShortName)
	logger.Debug("reading icon data", "path", iconsPath)

	res := Result{Icons: make([]icon.SvgIcon, 0)}
	stack := []searchDir{{path: iconsPath}}

	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			return Result{}, fmt.Errorf("read icons canceled: %w", err)
		}

		dir := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		entries, err := r.fs.ReadDir(dir.path)
		if err != nil {
			return Result{}, &Error{Kind: KindIO, Op: "read icon directory", Path: dir.path, Package: pkg.ShortName, Err: err}
		}

		for _, entry := range entries {
			name := entry.Name()
			entryPath := filepath.Join(dir.path, name)

			if entry.IsDir() {
				logger.Debug("found additional directory", "dir", entryPath)
				stack = append(stack, dir.child(pkg.Type, entryPath, name))
				continue
			}

			stem, ext, hasExt := splitExt(name)
			switch {
			case !hasExt:
				logger.Warn("found file without extension, ignoring it", "path", entryPath)
				res.Diagnostics = append(res.Diagnostics, Diagnostic{
					Severity: SeverityWarning,
					Code:     CodeMissingExtension,
					Message:  fmt.Sprintf("ignoring file without extension: %s", entryPath),
					Path:     entryPath,
				})
				continue
			case !utf8.ValidString(ext):
				logger.Warn("found file whose extension is not valid UTF-8, ignoring it", "path", entryPath)
				res.Diagnostics = append(res.Diagnostics, Diagnostic{
					Severity: SeverityWarning,
					Code:     CodeUndecodableExtension,
					Message:  fmt.Sprintf("ignoring file with undecodable extension: %s", entryPath),
					Path:     entryPath,
				})
				continue
			case ext != IconExtension:
				logger.Debug("found file without svg extension, ignoring it", "path", entryPath, "extension", ext)
				continue
			}

			if !pkg.Type.Accepts(stem, dir.categories) {
				logger.Debug("svg rejected by package filter", "path", entryPath)
				continue
			}

			svgIcon, err := r.NewSvgIcon(ctx, pkg, entryPath, dir.size.Or(r.defaultSize), dir.categories)
			if err != nil {
				return Result{}, err
			}
			res.Icons = append(res.Icons, svgIcon)
		}
	}

	logger.Debug("finished retrieving icon names", "icons", len(res.Icons))
	return res, nil
}

// child derives the context of a subdirectory. The first directory on the
// path whose name is a size numeral sets the size for everything below it.
func (d searchDir) child(pt iconpkg.PackageType, path, name string) searchDir {
	size := d.size
	if !size.IsSet() {
		if parsed, ok := icon.ParseIconSizeOpt(name); ok {
			size = parsed
		}
	}

	cats := icon.CloneCategories(d.categories)
	if pt.IsCategory(name) {
		cats = append(cats, icon.Category(name))
	}

	return searchDir{path: path, categories: cats, size: size}
}

// splitExt splits a file name at its last dot. Names without a dot, or whose
// only dot is the leading one (".hidden"), have no extension.
func splitExt(name string) (stem, ext string, ok bool) {
	i := strings.LastIndexByte(name, '.')
	if i <= 0 {
		return name, "", false
	}
	return name[:i], name[i+1:], true
}
