// SPDX-License-Identifier: MPL-2.0

package reader

import (
	"errors"
	"fmt"
	"strings"

	"github.com/luoxiaozero/icondata/pkg/icon"
)

const (
	// KindIO covers directory listing and file read failures.
	KindIO Kind = "io"
	// KindParse covers svg content that the parser rejected.
	KindParse Kind = "parse"
	// KindUnrecognizedSize is used when a size was explicitly requested and
	// could not be recognized.
	KindUnrecognizedSize Kind = "unrecognized_size"
	// KindMissingName is used when no base name can be derived from a path.
	KindMissingName Kind = "missing_name"
)

var (
	// ErrIO is matched by every KindIO error.
	ErrIO = errors.New("icon i/o failure")
	// ErrParse is matched by every KindParse error.
	ErrParse = errors.New("icon parse failure")
	// ErrUnrecognizedSize is matched by every KindUnrecognizedSize error.
	ErrUnrecognizedSize = errors.New("unrecognized icon size")
	// ErrMissingName is matched by every KindMissingName error.
	ErrMissingName = errors.New("missing icon name")

	errNoBaseName = errors.New("path has no base name")
)

type (
	// Kind classifies reader failures.
	Kind string

	// Error is a reader failure with the context needed to locate it: the
	// operation, the path, the package short name and, once known, the
	// synthesized feature name.
	Error struct {
		Kind    Kind
		Op      string
		Path    string
		Package string
		Name    string
		Err     error
	}
)

// Error implements the error interface.
func (e *Error) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Op)
	if e.Name != "" {
		fmt.Fprintf(&sb, " %s", e.Name)
	}
	if e.Package != "" {
		fmt.Fprintf(&sb, " from package %s", e.Package)
	}
	if e.Path != "" {
		fmt.Fprintf(&sb, " at %q", e.Path)
	}
	if e.Err != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Err.Error())
	}
	return sb.String()
}

// Unwrap exposes both the kind sentinel and the underlying cause.
func (e *Error) Unwrap() []error {
	errs := make([]error, 0, 2)
	if s := e.Kind.sentinel(); s != nil {
		errs = append(errs, s)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

func (k Kind) sentinel() error {
	switch k {
	case KindIO:
		return ErrIO
	case KindParse:
		return ErrParse
	case KindUnrecognizedSize:
		return ErrUnrecognizedSize
	case KindMissingName:
		return ErrMissingName
	default:
		return nil
	}
}

// KindOf returns the kind of the first *Error in err's chain, or "".
func KindOf(err error) Kind {
	var re *Error
	if errors.As(err, &re) {
		return re.Kind
	}
	return ""
}

// ParseSize is the strict size entry point for explicitly requested sizes
// (configuration, flags). Unlike the inference done while walking
// directories, an unknown numeral is an error here.
func ParseSize(numeral string) (icon.IconSize, error) {
	size, err := icon.ParseIconSize(numeral)
	if err != nil {
		return icon.IconSizeNone, &Error{Kind: KindUnrecognizedSize, Op: "parse icon size", Err: err}
	}
	return size, nil
}
