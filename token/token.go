/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package token provides theme token types and the per-category index used
// to resolve concrete design values into token path references.
package token

// Category identifies which kind of design token a value belongs to.
type Category string

const (
	// CategoryColor is a color token (hex value).
	CategoryColor Category = "color"

	// CategorySpacing is a spacing token (gap, margin, padding, inset).
	CategorySpacing Category = "spacing"

	// CategoryRadii is a corner radius token.
	CategoryRadii Category = "radii"

	// CategoryShadow is a composite shadow token.
	CategoryShadow Category = "shadow"

	// CategoryTypography is a composite typography token.
	CategoryTypography Category = "typography"
)

// ThemeToken is one design token extracted from a theme source.
// Tokens are immutable once extracted; only the index mapping a
// normalized key to a path may be overwritten.
type ThemeToken struct {
	// Path is the canonical theme.-rooted access expression for this token.
	Path string `json:"path"`

	// Category is the token's classified category.
	Category Category `json:"category"`

	// RawValue is the value as it appeared in the theme source.
	RawValue any `json:"rawValue"`
}

// DesignValue is a concrete design literal captured from a visual-design
// document, expressed as one variant of a closed set. The classifier is the
// single boundary that produces these; everything downstream operates on
// the closed set and never re-inspects untyped records.
type DesignValue interface {
	// Category returns the token category of this value.
	Category() Category
}

// ColorValue is a hex color design value.
type ColorValue struct {
	// Hex is the normalized upper-case hex form (#RRGGBB or #RRGGBBAA).
	Hex string
}

// Category implements DesignValue.
func (ColorValue) Category() Category { return CategoryColor }

// SpacingValue is a spacing design value in pixels.
type SpacingValue struct {
	Px float64
}

// Category implements DesignValue.
func (SpacingValue) Category() Category { return CategorySpacing }

// RadiusValue is a corner radius design value in pixels.
type RadiusValue struct {
	Px float64
}

// Category implements DesignValue.
func (RadiusValue) Category() Category { return CategoryRadii }

// ShadowValue is a composite shadow design value. Absent fields default
// to zero; the defaults are applied field by field at the boundary.
type ShadowValue struct {
	OffsetX float64
	OffsetY float64
	Blur    float64
	Spread  float64

	// Color is the shadow color if present; informational only, the
	// composite key is built from the numeric fields.
	Color string
}

// Category implements DesignValue.
func (ShadowValue) Category() Category { return CategoryShadow }

// TypographyValue is a composite typography design value.
type TypographyValue struct {
	// FontFamily is the family name if known, empty otherwise.
	FontFamily string

	FontSize   float64
	LineHeight float64

	// FontWeight is the numeric weight, or 0 when unspecified. Callers
	// performing lookups must pre-normalize raw weights with
	// NormalizeWeight before matching.
	FontWeight int
}

// Category implements DesignValue.
func (TypographyValue) Category() Category { return CategoryTypography }

// MatchResult is the outcome of resolving one design value against an
// index. A miss is a normal outcome, not an error.
type MatchResult struct {
	// Matched reports whether a token path was found.
	Matched bool `json:"matched"`

	// Path is the token path when Matched is true.
	Path string `json:"path,omitempty"`

	// Normalized is the normalized lookup form of the value (upper-case
	// hex, rounded integer, or composite key), returned on hit and miss
	// alike so callers can collect unmapped values.
	Normalized any `json:"normalizedValue"`
}
