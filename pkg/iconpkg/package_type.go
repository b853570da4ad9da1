// SPDX-License-Identifier: MPL-2.0

package iconpkg

import (
	"errors"
	"fmt"
	"strings"
)

// Known package families.
const (
	AntDesignIcons      PackageType = "AntDesignIcons"
	FontAwesome         PackageType = "FontAwesome"
	WeatherIcons        PackageType = "WeatherIcons"
	Feather             PackageType = "Feather"
	VSCodeIcons         PackageType = "VSCodeIcons"
	BootstrapIcons      PackageType = "BootstrapIcons"
	BoxIcons            PackageType = "BoxIcons"
	IcoMoonFree         PackageType = "IcoMoonFree"
	Ionicons            PackageType = "Ionicons"
	RemixIcon           PackageType = "RemixIcon"
	SimpleIcons         PackageType = "SimpleIcons"
	Typicons            PackageType = "Typicons"
	HeroIcons           PackageType = "HeroIcons"
	CssGg               PackageType = "CssGg"
	TablerIcons         PackageType = "TablerIcons"
	GithubOcticons      PackageType = "GithubOcticons"
	Lucide              PackageType = "Lucide"
	ExtraIcons          PackageType = "ExtraIcons"
	FluentUISystemIcons PackageType = "FluentUISystemIcons"
	// Other is any package without dedicated naming rules.
	Other PackageType = "Other"
)

var (
	// ErrInvalidPackageType is the sentinel error wrapped by InvalidPackageTypeError.
	ErrInvalidPackageType = errors.New("invalid package type")
	// ErrInvalidPackage is returned when package metadata fails validation.
	ErrInvalidPackage = errors.New("invalid package")

	allPackageTypes = []PackageType{
		AntDesignIcons, FontAwesome, WeatherIcons, Feather, VSCodeIcons,
		BootstrapIcons, BoxIcons, IcoMoonFree, Ionicons, RemixIcon,
		SimpleIcons, Typicons, HeroIcons, CssGg, TablerIcons,
		GithubOcticons, Lucide, ExtraIcons, FluentUISystemIcons, Other,
	}

	shortNames = map[PackageType]string{
		AntDesignIcons:      "Ai",
		FontAwesome:         "Fa",
		WeatherIcons:        "Wi",
		Feather:             "Fi",
		VSCodeIcons:         "Vs",
		BootstrapIcons:      "Bs",
		BoxIcons:            "Bi",
		IcoMoonFree:         "Im",
		Ionicons:            "Io",
		RemixIcon:           "Ri",
		SimpleIcons:         "Si",
		Typicons:            "Ti",
		HeroIcons:           "Hi",
		CssGg:               "Cg",
		TablerIcons:         "Tb",
		GithubOcticons:      "Oc",
		Lucide:              "Lu",
		ExtraIcons:          "Ch",
		FluentUISystemIcons: "Fluent",
	}
)

type (
	// PackageType identifies the third-party icon set a directory tree belongs
	// to. It selects the naming rule, the category predicate and the
	// acceptance filter.
	PackageType string

	// InvalidPackageTypeError is returned when a PackageType value is not recognized.
	// It wraps ErrInvalidPackageType for errors.Is() compatibility.
	InvalidPackageTypeError struct {
		Value string
	}

	// Package is the metadata supplied once per icon package. It is read-only
	// for the duration of a traversal.
	Package struct {
		// Type selects the family-specific rules.
		Type PackageType
		// ShortName is the display prefix of every feature name (e.g. "Ai").
		ShortName string
	}
)

// Error implements the error interface.
func (e *InvalidPackageTypeError) Error() string {
	return fmt.Sprintf("invalid package type %q (valid: %s)", e.Value, validTypeList())
}

// Unwrap returns ErrInvalidPackageType so callers can use errors.Is for programmatic detection.
func (e *InvalidPackageTypeError) Unwrap() error { return ErrInvalidPackageType }

// ParsePackageType resolves a package type name. Matching ignores case and
// surrounding whitespace.
func ParsePackageType(s string) (PackageType, error) {
	trimmed := strings.TrimSpace(s)
	for _, pt := range allPackageTypes {
		if strings.EqualFold(string(pt), trimmed) {
			return pt, nil
		}
	}
	return "", &InvalidPackageTypeError{Value: s}
}

// AllPackageTypes returns every known package type, Other last.
func AllPackageTypes() []PackageType {
	out := make([]PackageType, len(allPackageTypes))
	copy(out, allPackageTypes)
	return out
}

// String returns the package type name.
func (pt PackageType) String() string { return string(pt) }

// Validate returns an error if pt is not a known package type.
func (pt PackageType) Validate() error {
	for _, known := range allPackageTypes {
		if pt == known {
			return nil
		}
	}
	return &InvalidPackageTypeError{Value: string(pt)}
}

// DefaultShortName returns the conventional feature-name prefix of the
// family, or "" for Other.
func (pt PackageType) DefaultShortName() string {
	return shortNames[pt]
}

// NewPackage builds package metadata, falling back to the family's default
// short name when shortName is blank.
func NewPackage(pt PackageType, shortName string) (Package, error) {
	p := Package{Type: pt, ShortName: strings.TrimSpace(shortName)}
	if p.ShortName == "" {
		p.ShortName = pt.DefaultShortName()
	}
	if err := p.Validate(); err != nil {
		return Package{}, err
	}
	return p, nil
}

// Validate checks that the type is known and the short name is not blank.
func (p Package) Validate() error {
	if err := p.Type.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPackage, err)
	}
	if strings.TrimSpace(p.ShortName) == "" {
		return fmt.Errorf("%w: package %s has no short name", ErrInvalidPackage, p.Type)
	}
	return nil
}

func validTypeList() string {
	names := make([]string, len(allPackageTypes))
	for i, pt := range allPackageTypes {
		names[i] = string(pt)
	}
	return strings.Join(names, ", ")
}
