// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/luoxiaozero/icondata/internal/reader"
	"github.com/luoxiaozero/icondata/pkg/icon"
	"github.com/luoxiaozero/icondata/pkg/iconpkg"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"

	// DefaultDebounce is the quiet period before watch mode rebuilds.
	DefaultDebounce = 500 * time.Millisecond
)

var (
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidPackageEntry is the sentinel error wrapped by InvalidPackageEntryError.
	ErrInvalidPackageEntry = errors.New("invalid package entry")
	// ErrDuplicatePackage is returned when two entries share a path or short name.
	ErrDuplicatePackage = errors.New("duplicate package")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not recognized.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// InvalidPackageEntryError collects the field errors of one packages[] entry.
	InvalidPackageEntryError struct {
		Index       int
		FieldErrors []error
	}

	// InvalidConfigError collects every validation error of a Config.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// PackageEntry is one icon package to build.
	PackageEntry struct {
		// Type selects the naming rules.
		Type iconpkg.PackageType `json:"type" mapstructure:"type"`
		// ShortName overrides the family's default feature-name prefix.
		ShortName string `json:"short_name,omitempty" mapstructure:"short_name"`
		// Path is the root directory of the package's SVG files.
		Path string `json:"path" mapstructure:"path"`
		// DefaultSize is the pixel numeral assigned when neither the file
		// name nor a directory names a size.
		DefaultSize string `json:"default_size,omitempty" mapstructure:"default_size"`
	}

	// Config holds the application configuration.
	Config struct {
		Packages []PackageEntry `json:"packages" mapstructure:"packages"`
		// Concurrency bounds how many packages are read at once.
		Concurrency int          `json:"concurrency" mapstructure:"concurrency"`
		Output      OutputConfig `json:"output" mapstructure:"output"`
		Watch       WatchConfig  `json:"watch" mapstructure:"watch"`
		UI          UIConfig     `json:"ui" mapstructure:"ui"`
	}

	// OutputConfig configures build output.
	OutputConfig struct {
		// Manifest is the TOML manifest path; empty disables it.
		Manifest string `json:"manifest,omitempty" mapstructure:"manifest"`
	}

	// WatchConfig configures watch mode.
	WatchConfig struct {
		Debounce time.Duration `json:"debounce" mapstructure:"debounce"`
		// Ignore holds doublestar patterns excluded from watching.
		Ignore []string `json:"ignore" mapstructure:"ignore"`
	}

	// UIConfig configures the user interface.
	UIConfig struct {
		ColorScheme ColorScheme `json:"color_scheme" mapstructure:"color_scheme"`
		Verbose     bool        `json:"verbose" mapstructure:"verbose"`
	}
)

// Package resolves the entry's type and short name into package metadata.
func (e PackageEntry) Package() (iconpkg.Package, error) {
	return iconpkg.NewPackage(e.Type, e.ShortName)
}

// Size parses DefaultSize; an empty value yields icon.IconSizeNone.
func (e PackageEntry) Size() (icon.IconSize, error) {
	if e.DefaultSize == "" {
		return icon.IconSizeNone, nil
	}
	return reader.ParseSize(e.DefaultSize)
}

// Validate checks the fields of a single entry. index is used in messages.
func (e PackageEntry) Validate(index int) error {
	var errs []error
	if _, err := e.Package(); err != nil {
		errs = append(errs, err)
	}
	if strings.TrimSpace(e.Path) == "" {
		errs = append(errs, errors.New("path must not be empty"))
	}
	if _, err := e.Size(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return &InvalidPackageEntryError{Index: index, FieldErrors: errs}
	}
	return nil
}

func (e *InvalidPackageEntryError) Error() string {
	msgs := make([]string, len(e.FieldErrors))
	for i, err := range e.FieldErrors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("packages[%d]: %s", e.Index, strings.Join(msgs, "; "))
}

func (e *InvalidPackageEntryError) Unwrap() []error {
	return append([]error{ErrInvalidPackageEntry}, e.FieldErrors...)
}

// Validate checks what the CUE schema cannot express: per-entry semantics,
// unique package paths, and unique effective short names.
func (c Config) Validate() error {
	var errs []error
	for i, entry := range c.Packages {
		if err := entry.Validate(i); err != nil {
			errs = append(errs, err)
		}
	}
	if err := validatePackages(c.Packages); err != nil {
		errs = append(errs, err)
	}
	if err := c.UI.ColorScheme.Validate(); err != nil {
		errs = append(errs, err)
	}
	if c.Concurrency < 1 {
		errs = append(errs, fmt.Errorf("concurrency must be at least 1, got %d", c.Concurrency))
	}
	if c.Watch.Debounce < 0 {
		errs = append(errs, fmt.Errorf("watch.debounce must not be negative, got %s", c.Watch.Debounce))
	}
	if len(errs) > 0 {
		return &InvalidConfigError{FieldErrors: errs}
	}
	return nil
}

// validatePackages rejects entries that share a cleaned path or an effective
// short name; either would make two packages emit the same feature names.
func validatePackages(entries []PackageEntry) error {
	seenPaths := make(map[string]int)
	seenShort := make(map[string]int)

	for i, entry := range entries {
		cleanPath := filepath.Clean(entry.Path)
		if first, exists := seenPaths[cleanPath]; exists {
			return fmt.Errorf("%w: packages[%d]: path %q is the same as packages[%d]", ErrDuplicatePackage, i, entry.Path, first)
		}
		seenPaths[cleanPath] = i

		pkg, err := entry.Package()
		if err != nil {
			continue
		}
		if first, exists := seenShort[pkg.ShortName]; exists {
			return fmt.Errorf("%w: packages[%d]: short name %q is already used by packages[%d]", ErrDuplicatePackage, i, pkg.ShortName, first)
		}
		seenShort[pkg.ShortName] = i
	}
	return nil
}

func (e *InvalidConfigError) Error() string {
	msgs := make([]string, len(e.FieldErrors))
	for i, err := range e.FieldErrors {
		msgs[i] = err.Error()
	}
	return "invalid config: " + strings.Join(msgs, "; ")
}

func (e *InvalidConfigError) Unwrap() []error {
	return append([]error{ErrInvalidConfig}, e.FieldErrors...)
}

func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (valid: auto, dark, light)", e.Value)
}

func (e *InvalidColorSchemeError) Unwrap() error { return ErrInvalidColorScheme }

func (cs ColorScheme) String() string { return string(cs) }

// Validate returns an error if cs is not auto, dark or light.
func (cs ColorScheme) Validate() error {
	switch cs {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return nil
	default:
		return &InvalidColorSchemeError{Value: cs}
	}
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Packages:    []PackageEntry{},
		Concurrency: runtime.NumCPU(),
		Watch: WatchConfig{
			Debounce: DefaultDebounce,
			Ignore:   []string{"**/node_modules/**", "**/.git/**"},
		},
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
		},
	}
}
