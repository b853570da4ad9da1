// SPDX-License-Identifier: MPL-2.0

package icon

import (
	"strings"
	"unicode"
)

// wordMode tracks the case of the last rune seen while segmenting a word.
type wordMode uint8

const (
	modeBoundary wordMode = iota
	modeLower
	modeUpper
)

// FeatureTokens returns the space-joined token sequence
// "<shortName> <raw> <category>... <size>" that FeatureName case-folds.
// The size token is omitted when size is IconSizeNone.
func FeatureTokens(raw string, size IconSize, cats []Category, shortName string) string {
	var sb strings.Builder
	n := len(shortName) + 1 + len(raw)
	for _, c := range cats {
		n += len(c) + 1
	}
	if size.IsSet() {
		n += len(size.String()) + 1
	}
	sb.Grow(n)

	sb.WriteString(shortName)
	sb.WriteByte(' ')
	sb.WriteString(raw)
	for _, c := range cats {
		sb.WriteByte(' ')
		sb.WriteString(string(c))
	}
	if size.IsSet() {
		sb.WriteByte(' ')
		sb.WriteString(size.String())
	}
	return sb.String()
}

// FeatureName synthesizes the canonical identifier of one icon artifact.
// Callers resolve size precedence before calling: a size parsed out of the
// file name wins over one inherited from the directory structure.
func FeatureName(raw string, size IconSize, cats []Category, shortName string) string {
	return PascalCase(FeatureTokens(raw, size, cats, shortName))
}

// PascalCase splits s into words and emits each one with an upper-case first
// rune and a lower-cased remainder, dropping all separators.
//
// Words are separated by any non-alphanumeric rune. Inside an alphanumeric
// run a new word starts before an upper-case rune that follows a lower-case
// one ("fooBar" -> "Foo", "Bar") and before the last upper-case rune of an
// upper-case run that is followed by a lower-case rune ("XMLHttp" -> "Xml",
// "Http"). Digits never start a word on their own.
func PascalCase(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))

	segments := strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
	for _, segment := range segments {
		runes := []rune(segment)
		start := 0
		mode := modeBoundary
		for i, r := range runes {
			if i == len(runes)-1 {
				writeCapitalized(&sb, runes[start:])
				break
			}
			next := runes[i+1]

			nextMode := mode
			switch {
			case unicode.IsLower(r):
				nextMode = modeLower
			case unicode.IsUpper(r):
				nextMode = modeUpper
			}

			switch {
			case nextMode == modeLower && unicode.IsUpper(next):
				writeCapitalized(&sb, runes[start:i+1])
				start = i + 1
				mode = modeBoundary
			case mode == modeUpper && unicode.IsUpper(r) && unicode.IsLower(next):
				writeCapitalized(&sb, runes[start:i])
				start = i
				mode = modeBoundary
			default:
				mode = nextMode
			}
		}
	}
	return sb.String()
}

func writeCapitalized(sb *strings.Builder, word []rune) {
	for i, r := range word {
		if i == 0 {
			sb.WriteRune(unicode.ToUpper(r))
			continue
		}
		sb.WriteRune(unicode.ToLower(r))
	}
}
