/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import (
	"math"
	"strconv"
	"strings"
)

// TypographyWildcard is the family placeholder in typography keys that
// match regardless of font family.
const TypographyWildcard = "*"

// FormatNumber renders a numeric key component without trailing zeros,
// so 16 and 16.0 produce the same key.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ShadowKey builds the composite lookup key for a shadow value:
// offsetX,offsetY,blur,spread in fixed order. Fields default to zero
// independently, so a shadow missing spread still keys consistently.
func ShadowKey(v ShadowValue) string {
	parts := []string{
		FormatNumber(v.OffsetX),
		FormatNumber(v.OffsetY),
		FormatNumber(v.Blur),
		FormatNumber(v.Spread),
	}
	return strings.Join(parts, ",")
}

// TypographyKey builds the composite lookup key for a typography value:
// family-size-weight-lineHeight. The family component is lower-cased for
// case-insensitive matching; pass TypographyWildcard for the
// family-agnostic variant.
func TypographyKey(family string, size float64, weight int, lineHeight float64) string {
	if family == "" {
		family = TypographyWildcard
	}
	return strings.ToLower(family) + "-" +
		FormatNumber(size) + "-" +
		strconv.Itoa(weight) + "-" +
		FormatNumber(lineHeight)
}

// NormalizeWeight rounds a raw font weight to the nearest hundred, the
// granularity at which typography keys are registered. Lookups must apply
// this before matching.
func NormalizeWeight(raw float64) int {
	if raw <= 0 {
		return 0
	}
	return int(math.Round(raw/100)) * 100
}

// PxKey rounds a pixel value to the integer key used by the spacing and
// radii maps. Registration and lookup both round through this function so
// the exact-lookup contract is symmetric for float inputs.
func PxKey(px float64) int {
	return int(math.Round(px))
}
