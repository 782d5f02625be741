/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package match

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"bennypowers.dev/themeref/token"
)

// Report aggregates design values that found no token match, for the
// emission stage to annotate literals for manual review. Values are
// recorded once each, in first-seen order. The matcher does not own a
// report; callers decide what to collect.
type Report struct {
	colors  []string
	spacing []int
	radii   []int

	seenColors  map[string]bool
	seenSpacing map[int]bool
	seenRadii   map[int]bool
}

// NewReport creates an empty unmapped-value report.
func NewReport() *Report {
	return &Report{
		seenColors:  make(map[string]bool),
		seenSpacing: make(map[int]bool),
		seenRadii:   make(map[int]bool),
	}
}

// Record collects an unmatched result's normalized value into the list
// for its category. Matched results and categories without an unmapped
// list (shadow, typography) are ignored.
func (r *Report) Record(value token.DesignValue, result token.MatchResult) {
	if result.Matched {
		return
	}
	switch value.(type) {
	case token.ColorValue:
		hex, ok := result.Normalized.(string)
		if !ok || r.seenColors[hex] {
			return
		}
		r.seenColors[hex] = true
		r.colors = append(r.colors, hex)
	case token.SpacingValue:
		px, ok := result.Normalized.(int)
		if !ok || r.seenSpacing[px] {
			return
		}
		r.seenSpacing[px] = true
		r.spacing = append(r.spacing, px)
	case token.RadiusValue:
		px, ok := result.Normalized.(int)
		if !ok || r.seenRadii[px] {
			return
		}
		r.seenRadii[px] = true
		r.radii = append(r.radii, px)
	}
}

// Colors returns the unmapped hex colors in first-seen order.
func (r *Report) Colors() []string { return r.colors }

// Spacing returns the unmapped spacing values in first-seen order.
func (r *Report) Spacing() []int { return r.spacing }

// Radii returns the unmapped radius values in first-seen order.
func (r *Report) Radii() []int { return r.radii }

// Empty reports whether nothing was collected.
func (r *Report) Empty() bool {
	return len(r.colors) == 0 && len(r.spacing) == 0 && len(r.radii) == 0
}

// ColorSuggestions returns, for each unmapped color, the path of the
// perceptually closest indexed color token by Lab distance. This is a
// manual-review hint only; it never feeds back into matching, which stays
// exact for colors.
func (r *Report) ColorSuggestions(index *token.Index) map[string]string {
	suggestions := make(map[string]string, len(r.colors))
	for _, hex := range r.colors {
		target, err := colorful.Hex(opaqueHex(hex))
		if err != nil {
			continue
		}
		best := ""
		bestDistance := 0.0
		for candidate, path := range index.Colors {
			c, err := colorful.Hex(opaqueHex(candidate))
			if err != nil {
				continue
			}
			d := target.DistanceLab(c)
			if best == "" || d < bestDistance || (d == bestDistance && path < best) {
				best = path
				bestDistance = d
			}
		}
		if best != "" {
			suggestions[hex] = best
		}
	}
	return suggestions
}

// opaqueHex strips the alpha digits from an 8-digit hex key; colorful
// parses 3 and 6 digit forms only.
func opaqueHex(hex string) string {
	if len(hex) == 9 {
		return strings.ToLower(hex[:7])
	}
	return strings.ToLower(hex)
}
