// SPDX-License-Identifier: MPL-2.0

package icon

import (
	"errors"
	"fmt"
)

const (
	// IconSizeNone is the zero value and means "no size known".
	// It is never produced by parsing.
	IconSizeNone IconSize = iota
	// IconSizeXs is the 12px tier.
	IconSizeXs
	// IconSizeSm is the 16px tier.
	IconSizeSm
	// IconSizeMd is the 20px tier.
	IconSizeMd
	// IconSizeLg is the 24px tier.
	IconSizeLg
	// IconSizeXl is the 48px tier.
	IconSizeXl
	// IconSizeXxl is the 96px tier.
	IconSizeXxl
)

var (
	// ErrUnrecognizedIconSize is the sentinel error wrapped by UnrecognizedIconSizeError.
	ErrUnrecognizedIconSize = errors.New("unrecognized icon size")
	// ErrInvalidIconSize is returned by Validate for values outside the enumeration.
	ErrInvalidIconSize = errors.New("invalid icon size")

	sizeLabels = [...]string{
		IconSizeXs:  "xs",
		IconSizeSm:  "sm",
		IconSizeMd:  "md",
		IconSizeLg:  "lg",
		IconSizeXl:  "xl",
		IconSizeXxl: "xxl",
	}

	sizeNumerals = [...]string{
		IconSizeXs:  "12",
		IconSizeSm:  "16",
		IconSizeMd:  "20",
		IconSizeLg:  "24",
		IconSizeXl:  "48",
		IconSizeXxl: "96",
	}
)

type (
	// IconSize is one of six closed size tiers. Each tier maps to exactly one
	// lowercase label (used in feature names) and one historical pixel numeral
	// (used when parsing directory and file names).
	IconSize uint8

	// UnrecognizedIconSizeError is returned when a string does not name a known
	// size numeral or label. It wraps ErrUnrecognizedIconSize for errors.Is().
	UnrecognizedIconSizeError struct {
		Value string
	}
)

// Error implements the error interface.
func (e *UnrecognizedIconSizeError) Error() string {
	return fmt.Sprintf("icon size %q could not be recognized", e.Value)
}

// Unwrap returns ErrUnrecognizedIconSize so callers can use errors.Is for programmatic detection.
func (e *UnrecognizedIconSizeError) Unwrap() error { return ErrUnrecognizedIconSize }

// ParseIconSize maps a pixel numeral ("12", "16", "20", "24", "48", "96") to its
// tier. Matching is exact; anything else is an *UnrecognizedIconSizeError.
func ParseIconSize(s string) (IconSize, error) {
	for size := IconSizeXs; size <= IconSizeXxl; size++ {
		if sizeNumerals[size] == s {
			return size, nil
		}
	}
	return IconSizeNone, &UnrecognizedIconSizeError{Value: s}
}

// ParseIconSizeOpt is the opportunistic form of ParseIconSize used while
// inferring sizes from directory and file names: an unknown numeral simply
// yields (IconSizeNone, false).
func ParseIconSizeOpt(s string) (IconSize, bool) {
	size, err := ParseIconSize(s)
	if err != nil {
		return IconSizeNone, false
	}
	return size, true
}

// ParseIconSizeLabel maps a canonical label ("xs" .. "xxl") back to its tier.
func ParseIconSizeLabel(label string) (IconSize, error) {
	for size := IconSizeXs; size <= IconSizeXxl; size++ {
		if sizeLabels[size] == label {
			return size, nil
		}
	}
	return IconSizeNone, &UnrecognizedIconSizeError{Value: label}
}

// AllIconSizes returns every defined tier from smallest to largest.
func AllIconSizes() []IconSize {
	return []IconSize{IconSizeXs, IconSizeSm, IconSizeMd, IconSizeLg, IconSizeXl, IconSizeXxl}
}

// IsSet reports whether s carries a real tier.
func (s IconSize) IsSet() bool { return s != IconSizeNone }

// Validate returns an error if s is neither IconSizeNone nor a defined tier.
func (s IconSize) Validate() error {
	if s > IconSizeXxl {
		return fmt.Errorf("%w: %d", ErrInvalidIconSize, s)
	}
	return nil
}

// String returns the canonical lowercase label, or "" for IconSizeNone.
func (s IconSize) String() string {
	if !s.IsSet() || s > IconSizeXxl {
		return ""
	}
	return sizeLabels[s]
}

// Numeral returns the pixel numeral of the tier, or "" for IconSizeNone.
func (s IconSize) Numeral() string {
	if !s.IsSet() || s > IconSizeXxl {
		return ""
	}
	return sizeNumerals[s]
}

// Or returns s when set, otherwise fallback.
func (s IconSize) Or(fallback IconSize) IconSize {
	if s.IsSet() {
		return s
	}
	return fallback
}
