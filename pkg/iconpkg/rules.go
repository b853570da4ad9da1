// SPDX-License-Identifier: MPL-2.0

package iconpkg

import (
	"slices"
	"strings"
	"unicode"

	"github.com/luoxiaozero/icondata/pkg/icon"
)

type (
	// NameRule extracts the residual icon name and an optional size from a
	// file stem. A rule may append to or filter the category accumulator; it
	// never reorders it and never touches the file system.
	NameRule interface {
		Parse(stem string, cats *[]icon.Category) (raw string, size icon.IconSize)
	}

	// identityRule leaves the stem unchanged.
	identityRule struct{}

	// numericSuffixRule parses a trailing two-digit size numeral ("alert-16").
	numericSuffixRule struct{}

	// prefixRule strips one fixed prefix ("wi-thunderstorm").
	prefixRule struct {
		prefix string
	}

	// multiPrefixRule strips the first matching prefix, checked in order.
	multiPrefixRule struct {
		prefixes []string
	}

	// leadingNumeralRule strips a leading run of digits ("001-home").
	leadingNumeralRule struct{}

	// suffixCategory maps a trailing literal to the category it implies.
	suffixCategory struct {
		suffix   string
		category icon.Category
	}

	// suffixCategoryRule turns at most one trailing suffix into a category.
	suffixCategoryRule struct {
		suffixes []suffixCategory
	}

	// prefixFilterRule strips a prefix and keeps only allow-listed categories.
	prefixFilterRule struct {
		prefix string
		keep   func(icon.Category) bool
	}
)

var (
	// fluentLanguages are the language and direction directories whose
	// categories survive the FluentUISystemIcons filter.
	fluentLanguages = []string{
		"ar", "bg", "ca", "da", "de", "en", "es", "et", "eu", "fi", "fr", "gl", "gr", "he",
		"hu", "it", "ja", "kk", "ko", "lt", "lv", "ms", "no", "pt", "ru", "se", "sl", "sr",
		"sr-cyrl", "sr-latn", "sv", "tr", "uk", "zh", "LTR", "RTL",
	}

	// fluentTempMarkers are the suffixes of temporary direction-specific
	// directories in the FluentUISystemIcons tree.
	fluentTempMarkers = []string{"Temp LTR", "Temp RTL"}

	rules = map[PackageType]NameRule{
		GithubOcticons: numericSuffixRule{},
		WeatherIcons:   prefixRule{prefix: "wi-"},
		BoxIcons:       multiPrefixRule{prefixes: []string{"bxl-", "bx-", "bxs-"}},
		IcoMoonFree:    leadingNumeralRule{},
		RemixIcon: suffixCategoryRule{suffixes: []suffixCategory{
			{suffix: "-fill", category: "fill"},
			{suffix: "-line", category: "line"},
		}},
		FluentUISystemIcons: prefixFilterRule{prefix: "ic_fluent_", keep: isFluentLanguageCategory},
	}
)

// RuleFor returns the naming rule of a package family. Families without a
// dedicated rule get the identity rule.
func RuleFor(pt PackageType) NameRule {
	if r, ok := rules[pt]; ok {
		return r
	}
	return identityRule{}
}

// ParseRawIconName applies the family's naming rule to a file stem and
// returns the residual raw name plus any size embedded in the name itself.
// cats may be extended or filtered in place by the rule.
func ParseRawIconName(pt PackageType, stem string, cats *[]icon.Category) (string, icon.IconSize) {
	return RuleFor(pt).Parse(stem, cats)
}

func (identityRule) Parse(stem string, _ *[]icon.Category) (string, icon.IconSize) {
	return stem, icon.IconSizeNone
}

func (numericSuffixRule) Parse(stem string, _ *[]icon.Category) (string, icon.IconSize) {
	size := icon.IconSizeNone
	if len(stem) >= 2 {
		size, _ = icon.ParseIconSizeOpt(stem[len(stem)-2:])
	}
	name := strings.TrimRightFunc(stem, unicode.IsNumber)
	name = strings.TrimRight(name, "-")
	return name, size
}

func (r prefixRule) Parse(stem string, _ *[]icon.Category) (string, icon.IconSize) {
	return strings.TrimPrefix(stem, r.prefix), icon.IconSizeNone
}

func (r multiPrefixRule) Parse(stem string, _ *[]icon.Category) (string, icon.IconSize) {
	for _, prefix := range r.prefixes {
		if rest, ok := strings.CutPrefix(stem, prefix); ok {
			return rest, icon.IconSizeNone
		}
	}
	return stem, icon.IconSizeNone
}

func (leadingNumeralRule) Parse(stem string, _ *[]icon.Category) (string, icon.IconSize) {
	return strings.TrimLeftFunc(stem, unicode.IsNumber), icon.IconSizeNone
}

func (r suffixCategoryRule) Parse(stem string, cats *[]icon.Category) (string, icon.IconSize) {
	for _, sc := range r.suffixes {
		if rest, ok := strings.CutSuffix(stem, sc.suffix); ok {
			if cats != nil {
				*cats = append(*cats, sc.category)
			}
			return rest, icon.IconSizeNone
		}
	}
	return stem, icon.IconSizeNone
}

func (r prefixFilterRule) Parse(stem string, cats *[]icon.Category) (string, icon.IconSize) {
	if cats != nil {
		*cats = slices.DeleteFunc(*cats, func(c icon.Category) bool { return !r.keep(c) })
	}
	return strings.TrimPrefix(stem, r.prefix), icon.IconSizeNone
}

func isFluentLanguageCategory(c icon.Category) bool {
	return slices.Contains(fluentLanguages, string(c)) || hasFluentTempMarker(c)
}

func hasFluentTempMarker(c icon.Category) bool {
	for _, marker := range fluentTempMarkers {
		if strings.HasSuffix(string(c), marker) {
			return true
		}
	}
	return false
}
