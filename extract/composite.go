/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package extract

import (
	"strings"

	"bennypowers.dev/themeref/token"
)

// TypographyKeys computes the full key set for one typography token.
//
// A token's own path may carry a variant suffix (.bold, .semibold,
// .regular, .medium) that pins its weight neighborhood; otherwise the
// weight is inferred from an explicit fontWeight or family-name substrings
// and widened by one adjacent hundred. Every (size, weight, lineHeight)
// triple presented at lookup time must resolve to exactly one visual
// style, so each token registers a bounded weight neighborhood rather
// than all weights.
//
// For every weight the wildcard key *-size-weight-lineHeight is produced,
// plus a family-qualified key when a family name is known for the variant.
func TypographyKeys(rawPath string, cfg Config, v token.TypographyValue) []string {
	weights, family := typographyWeights(rawPath, cfg, v)

	keys := make([]string, 0, 2*len(weights))
	for _, weight := range weights {
		keys = append(keys, token.TypographyKey(token.TypographyWildcard, v.FontSize, weight, v.LineHeight))
		if family != "" {
			keys = append(keys, token.TypographyKey(family, v.FontSize, weight, v.LineHeight))
		}
	}
	return keys
}

// typographyWeights resolves the weight neighborhood and the family name
// to qualify keys with, honoring a variant suffix on the token path.
func typographyWeights(rawPath string, cfg Config, v token.TypographyValue) ([]int, string) {
	switch lastSegment(rawPath) {
	case "bold", "semibold":
		family := cfg.BoldFamily
		if family == "" {
			family = v.FontFamily
		}
		return []int{600, 700}, family
	case "regular", "medium":
		family := cfg.RegularFamily
		if family == "" {
			family = v.FontFamily
		}
		return []int{400, 500}, family
	}

	weight := v.FontWeight
	if weight == 0 {
		weight = inferWeight(v.FontFamily)
	}
	// One adjacent weight absorbs small numeric-weight discrepancies
	// between design source and theme source.
	adjacent := weight + 100
	if weight >= 600 {
		adjacent = weight - 100
	}
	return []int{weight, adjacent}, v.FontFamily
}

// inferWeight guesses a weight from family-name substrings when no
// explicit fontWeight is present.
func inferWeight(family string) int {
	lower := strings.ToLower(family)
	switch {
	case strings.Contains(lower, "semibold"):
		return 600
	case strings.Contains(lower, "bold"):
		return 700
	case strings.Contains(lower, "medium"):
		return 500
	default:
		return 400
	}
}

// lastSegment returns the final dot segment of a path, lower-cased.
func lastSegment(path string) string {
	if i := strings.LastIndex(path, "."); i >= 0 {
		return strings.ToLower(path[i+1:])
	}
	return strings.ToLower(path)
}
