// SPDX-License-Identifier: MPL-2.0

package icon

import "github.com/luoxiaozero/icondata/pkg/svg"

// SvgIcon is one accepted icon: its synthesized feature name and the parsed
// SVG content. It is built once per file and not modified afterwards.
type SvgIcon struct {
	Name string
	// Path is the source file the icon was read from.
	Path string
	Svg  *svg.ParsedSvg
}
