// SPDX-License-Identifier: MPL-2.0

// Package icon defines the value types shared by the icon readers: categories,
// size tiers, the SvgIcon aggregate, and the feature-name synthesis that turns a
// parsed file stem into one PascalCase identifier per rendered icon.
package icon
