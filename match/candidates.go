/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package match

import "bennypowers.dev/themeref/token"

// Candidates generates the bounded tolerance sequence for a typography
// value: the exact value first, then line-height perturbations of ±1 and
// ±2, then size perturbations of ±1. The search never widens beyond
// these deltas.
func Candidates(v token.TypographyValue) []token.TypographyValue {
	candidates := []token.TypographyValue{v}
	for _, delta := range []float64{1, -1, 2, -2} {
		perturbed := v
		perturbed.LineHeight = v.LineHeight + delta
		candidates = append(candidates, perturbed)
	}
	for _, delta := range []float64{1, -1} {
		perturbed := v
		perturbed.FontSize = v.FontSize + delta
		candidates = append(candidates, perturbed)
	}
	return candidates
}

// MatchTypographyLoose runs the tolerance search: each candidate from
// Candidates is fed through the pure matcher until one hits. The returned
// miss carries the exact value's normalized key.
func (m *Matcher) MatchTypographyLoose(v token.TypographyValue) token.MatchResult {
	for _, candidate := range Candidates(v) {
		if result := m.Match(candidate); result.Matched {
			return result
		}
	}
	wildcard := token.TypographyKey(token.TypographyWildcard, v.FontSize, v.FontWeight, v.LineHeight)
	return token.MatchResult{Matched: false, Normalized: wildcard}
}
