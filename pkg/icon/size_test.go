// SPDX-License-Identifier: MPL-2.0

package icon

import (
	"errors"
	"testing"
)

func TestParseIconSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		numeral   string
		want      IconSize
		wantLabel string
	}{
		{"12", IconSizeXs, "xs"},
		{"16", IconSizeSm, "sm"},
		{"20", IconSizeMd, "md"},
		{"24", IconSizeLg, "lg"},
		{"48", IconSizeXl, "xl"},
		{"96", IconSizeXxl, "xxl"},
	}

	for _, tt := range tests {
		t.Run(tt.numeral, func(t *testing.T) {
			t.Parallel()

			got, err := ParseIconSize(tt.numeral)
			if err != nil {
				t.Fatalf("ParseIconSize(%q) unexpected error: %v", tt.numeral, err)
			}
			if got != tt.want {
				t.Errorf("ParseIconSize(%q) = %v, want %v", tt.numeral, got, tt.want)
			}
			if got.String() != tt.wantLabel {
				t.Errorf("IconSize.String() = %q, want %q", got.String(), tt.wantLabel)
			}
			if got.Numeral() != tt.numeral {
				t.Errorf("IconSize.Numeral() = %q, want %q", got.Numeral(), tt.numeral)
			}
		})
	}
}

func TestParseIconSizeRejectsUnknown(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "13", "32", "020", " 20", "md", "xl", "2", "1024"} {
		t.Run(input, func(t *testing.T) {
			t.Parallel()

			got, err := ParseIconSize(input)
			if err == nil {
				t.Fatalf("ParseIconSize(%q) = %v, want error", input, got)
			}
			if got != IconSizeNone {
				t.Errorf("ParseIconSize(%q) returned %v alongside error, want IconSizeNone", input, got)
			}
			if !errors.Is(err, ErrUnrecognizedIconSize) {
				t.Errorf("error does not wrap ErrUnrecognizedIconSize: %v", err)
			}
			var sizeErr *UnrecognizedIconSizeError
			if !errors.As(err, &sizeErr) || sizeErr.Value != input {
				t.Errorf("error = %#v, want UnrecognizedIconSizeError carrying %q", err, input)
			}

			if _, ok := ParseIconSizeOpt(input); ok {
				t.Errorf("ParseIconSizeOpt(%q) ok = true, want false", input)
			}
		})
	}
}

func TestIconSizeLabelRoundTrip(t *testing.T) {
	t.Parallel()

	for _, size := range AllIconSizes() {
		got, err := ParseIconSizeLabel(size.String())
		if err != nil {
			t.Fatalf("ParseIconSizeLabel(%q) unexpected error: %v", size.String(), err)
		}
		if got.String() != size.String() {
			t.Errorf("label round trip %q -> %q", size.String(), got.String())
		}
	}

	if _, err := ParseIconSizeLabel("xxxl"); !errors.Is(err, ErrUnrecognizedIconSize) {
		t.Errorf("ParseIconSizeLabel(xxxl) error = %v, want ErrUnrecognizedIconSize", err)
	}
}

func TestIconSizeZeroValue(t *testing.T) {
	t.Parallel()

	var s IconSize
	if s.IsSet() {
		t.Error("zero IconSize reports IsSet() = true")
	}
	if s.String() != "" || s.Numeral() != "" {
		t.Errorf("zero IconSize renders as %q/%q, want empty", s.String(), s.Numeral())
	}
	if err := s.Validate(); err != nil {
		t.Errorf("zero IconSize Validate() = %v", err)
	}
	if err := IconSize(42).Validate(); !errors.Is(err, ErrInvalidIconSize) {
		t.Errorf("IconSize(42).Validate() = %v, want ErrInvalidIconSize", err)
	}
	if got := IconSizeNone.Or(IconSizeLg); got != IconSizeLg {
		t.Errorf("IconSizeNone.Or(Lg) = %v", got)
	}
	if got := IconSizeSm.Or(IconSizeLg); got != IconSizeSm {
		t.Errorf("IconSizeSm.Or(Lg) = %v", got)
	}
}
