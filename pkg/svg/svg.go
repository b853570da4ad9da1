// SPDX-License-Identifier: MPL-2.0

// Package svg parses raw icon markup into the normalized form consumed by the
// code generators: the root <svg> attributes plus the serialized inner content.
package svg

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	// twotoneOpacity is the fill-opacity applied to the secondary tone.
	twotoneOpacity = "0.2"
	currentColor   = "currentColor"
)

var (
	// ErrInvalidSvg is the sentinel error wrapped by ParseError.
	ErrInvalidSvg = errors.New("invalid svg")

	// secondaryTones are the light fills used by two-tone icon sets for the
	// background shape.
	secondaryTones = map[string]struct{}{
		"#d9d9d9": {},
		"#e6e6e6": {},
	}
)

type (
	// Attribute is a single name/value pair in document order.
	Attribute struct {
		Name  string
		Value string
	}

	// ParsedSvg is the normalized form of one SVG document.
	ParsedSvg struct {
		// Attributes are the root element's attributes, namespace declarations excluded.
		Attributes []Attribute
		// Content is the serialized markup inside the root element.
		Content string
	}

	// ParseError is returned when data cannot be parsed as an SVG document.
	// It wraps ErrInvalidSvg for errors.Is() compatibility.
	ParseError struct {
		Reason string
		Err    error
	}

	// DefaultParser parses SVG documents with encoding/xml.
	DefaultParser struct{}
)

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid svg: %s: %v", e.Reason, e.Err)
	}
	return "invalid svg: " + e.Reason
}

// Unwrap returns ErrInvalidSvg together with the underlying cause, if any.
func (e *ParseError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrInvalidSvg, e.Err}
	}
	return []error{ErrInvalidSvg}
}

// Parse implements the reader's parser contract using the package-level Parse.
func (DefaultParser) Parse(data []byte, twotone bool) (*ParsedSvg, error) {
	return Parse(data, twotone)
}

// Attr returns the value of the named root attribute.
func (p *ParsedSvg) Attr(name string) (string, bool) {
	for _, a := range p.Attributes {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Parse reads an SVG document. When twotone is set, explicit fills are
// rewritten to currentColor and the secondary tone is rendered translucent so
// the icon follows the surrounding text color.
func Parse(data []byte, twotone bool) (*ParsedSvg, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, &ParseError{Reason: "empty document"}
	}

	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.Strict = true

	var (
		parsed  *ParsedSvg
		content strings.Builder
		w       = &markupWriter{sb: &content, twotone: twotone}
		open    []xml.Name
		closed  bool
	)

	for {
		tok, err := dec.RawToken()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &ParseError{Reason: "malformed markup", Err: err}
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if closed {
				return nil, &ParseError{Reason: fmt.Sprintf("element <%s> after the <svg> root", qualified(t.Name))}
			}
			open = append(open, t.Name)
			if parsed == nil {
				if t.Name.Local != "svg" {
					return nil, &ParseError{Reason: fmt.Sprintf("root element is <%s>, expected <svg>", qualified(t.Name))}
				}
				parsed = &ParsedSvg{Attributes: rootAttributes(t.Attr)}
				continue
			}
			w.start(t)
		case xml.EndElement:
			if len(open) == 0 {
				return nil, &ParseError{Reason: fmt.Sprintf("unexpected closing tag </%s>", qualified(t.Name))}
			}
			top := open[len(open)-1]
			if top != t.Name {
				return nil, &ParseError{Reason: fmt.Sprintf("closing tag </%s> does not match <%s>", qualified(t.Name), qualified(top))}
			}
			open = open[:len(open)-1]
			if len(open) == 0 {
				w.flush()
				parsed.Content = strings.TrimSpace(content.String())
				closed = true
				continue
			}
			w.end(t)
		case xml.CharData:
			if closed && len(bytes.TrimSpace(t)) > 0 {
				return nil, &ParseError{Reason: "text after the <svg> root"}
			}
			if parsed != nil && !closed {
				w.text(t)
			}
		case xml.Comment, xml.ProcInst, xml.Directive:
			// dropped
		}
	}

	switch {
	case parsed == nil:
		return nil, &ParseError{Reason: "no <svg> root element"}
	case !closed:
		return nil, &ParseError{Reason: "unterminated <svg> element"}
	}
	return parsed, nil
}

func rootAttributes(attrs []xml.Attr) []Attribute {
	out := make([]Attribute, 0, len(attrs))
	for _, a := range attrs {
		if a.Name.Space == "xmlns" || (a.Name.Space == "" && a.Name.Local == "xmlns") {
			continue
		}
		out = append(out, Attribute{Name: qualified(a.Name), Value: a.Value})
	}
	return out
}

func qualified(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	return n.Space + ":" + n.Local
}

// markupWriter re-serializes raw tokens, collapsing empty elements to the
// self-closing form.
type markupWriter struct {
	sb      *strings.Builder
	twotone bool
	pending bool
}

func (w *markupWriter) flush() {
	if w.pending {
		w.sb.WriteByte('>')
		w.pending = false
	}
}

func (w *markupWriter) start(t xml.StartElement) {
	w.flush()
	w.sb.WriteByte('<')
	w.sb.WriteString(qualified(t.Name))
	for _, a := range w.rewriteFills(t.Attr) {
		w.sb.WriteByte(' ')
		w.sb.WriteString(qualified(a.Name))
		w.sb.WriteString(`="`)
		xml.EscapeText(w.sb, []byte(a.Value)) //nolint:errcheck // strings.Builder never fails
		w.sb.WriteByte('"')
	}
	w.pending = true
}

func (w *markupWriter) end(t xml.EndElement) {
	if w.pending {
		w.sb.WriteString("/>")
		w.pending = false
		return
	}
	w.sb.WriteString("</")
	w.sb.WriteString(qualified(t.Name))
	w.sb.WriteByte('>')
}

func (w *markupWriter) text(t xml.CharData) {
	if len(bytes.TrimSpace(t)) == 0 {
		return
	}
	w.flush()
	xml.EscapeText(w.sb, t) //nolint:errcheck // strings.Builder never fails
}

func (w *markupWriter) rewriteFills(attrs []xml.Attr) []xml.Attr {
	if !w.twotone {
		return attrs
	}
	out := make([]xml.Attr, 0, len(attrs)+1)
	for _, a := range attrs {
		if a.Name.Space != "" || a.Name.Local != "fill" {
			out = append(out, a)
			continue
		}
		value := strings.TrimSpace(a.Value)
		if value == "" || strings.EqualFold(value, "none") || value == currentColor {
			out = append(out, a)
			continue
		}
		out = append(out, xml.Attr{Name: a.Name, Value: currentColor})
		if _, secondary := secondaryTones[strings.ToLower(value)]; secondary {
			out = append(out, xml.Attr{Name: xml.Name{Local: "fill-opacity"}, Value: twotoneOpacity})
		}
	}
	return out
}
