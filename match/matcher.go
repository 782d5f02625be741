/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package match resolves design values against a built token index using
// tiered exact, fuzzy and semantic-fallback strategies.
package match

import (
	"sort"
	"strings"

	"bennypowers.dev/themeref/token"
)

// Options configures matching behavior.
type Options struct {
	// HasProjectTheme asserts that the target project carries theme
	// infrastructure, enabling speculative semantic-bucket paths for
	// shadows with no registered counterpart.
	HasProjectTheme bool
}

// Matcher resolves design values against one token index. Matching is
// pure: the same value against the same index always yields the same
// result, and a miss is a result, never an error.
type Matcher struct {
	index *token.Index
	opts  Options
}

// NewMatcher creates a matcher over a built index.
func NewMatcher(index *token.Index, opts Options) *Matcher {
	return &Matcher{index: index, opts: opts}
}

// Match resolves one design value. Each category applies its own
// contract: colors and spacing/radii are exact-only, shadows fall back to
// semantic blur buckets, typography tries the family-qualified key before
// the wildcard. Tolerance widening is the caller's job, via Candidates.
func (m *Matcher) Match(value token.DesignValue) token.MatchResult {
	switch v := value.(type) {
	case token.ColorValue:
		return m.matchColor(v)
	case token.SpacingValue:
		return m.matchPx(m.index.Spacing, v.Px)
	case token.RadiusValue:
		return m.matchPx(m.index.Radii, v.Px)
	case token.ShadowValue:
		return m.matchShadow(v)
	case token.TypographyValue:
		return m.matchTypography(v)
	default:
		return token.MatchResult{Matched: false}
	}
}

// matchColor performs an exact lookup on the normalized upper-case hex
// key. Colors never match fuzzily: a near-miss color is a design decision,
// not a rounding artifact.
func (m *Matcher) matchColor(v token.ColorValue) token.MatchResult {
	hex, ok := token.NormalizeHex(v.Hex)
	if !ok {
		return token.MatchResult{Matched: false, Normalized: v.Hex}
	}
	if path, found := m.index.Colors[hex]; found {
		return token.MatchResult{Matched: true, Path: path, Normalized: hex}
	}
	return token.MatchResult{Matched: false, Normalized: hex}
}

// matchPx performs an exact integer lookup for spacing and radii. Any
// tolerance widening belongs to an index built with pre-expanded keys,
// not to this lookup.
func (m *Matcher) matchPx(index map[int]string, px float64) token.MatchResult {
	key := token.PxKey(px)
	if path, found := index[key]; found {
		return token.MatchResult{Matched: true, Path: path, Normalized: key}
	}
	return token.MatchResult{Matched: false, Normalized: key}
}

// matchShadow tries the exact composite key, then any registered path
// ending in the blur's semantic bucket. When the caller asserts project
// theme infrastructure it falls back to the speculative
// theme.shadows.{bucket} path. The none bucket never speculates.
func (m *Matcher) matchShadow(v token.ShadowValue) token.MatchResult {
	key := token.ShadowKey(v)
	if path, found := m.index.Shadows[key]; found {
		return token.MatchResult{Matched: true, Path: path, Normalized: key}
	}

	bucket := ShadowBucket(v.Blur)
	if path, found := m.bucketPath(bucket); found {
		return token.MatchResult{Matched: true, Path: path, Normalized: key}
	}

	if m.opts.HasProjectTheme && bucket != BucketNone {
		return token.MatchResult{Matched: true, Path: "theme.shadows." + bucket, Normalized: key}
	}
	return token.MatchResult{Matched: false, Normalized: key}
}

// bucketPath finds a registered shadow path ending in .{bucket}. When
// several qualify, the simplest by score wins, with a lexical tie-break,
// so the choice does not depend on map iteration order.
func (m *Matcher) bucketPath(bucket string) (string, bool) {
	suffix := "." + bucket
	var candidates []string
	for _, path := range m.index.Shadows {
		if strings.HasSuffix(path, suffix) {
			candidates = append(candidates, path)
		}
	}
	if len(candidates) == 0 {
		return "", false
	}
	sort.Slice(candidates, func(i, j int) bool {
		si, sj := token.Score(candidates[i]), token.Score(candidates[j])
		if si != sj {
			return si < sj
		}
		return candidates[i] < candidates[j]
	})
	return candidates[0], true
}

// matchTypography tries the family-qualified composite key, then the
// wildcard-family variant. It is tolerance-agnostic: callers widen the
// search by feeding Candidates back through Match, and must pre-normalize
// the weight with token.NormalizeWeight.
func (m *Matcher) matchTypography(v token.TypographyValue) token.MatchResult {
	wildcard := token.TypographyKey(token.TypographyWildcard, v.FontSize, v.FontWeight, v.LineHeight)

	if v.FontFamily != "" {
		qualified := token.TypographyKey(v.FontFamily, v.FontSize, v.FontWeight, v.LineHeight)
		if path, found := m.index.Typography[qualified]; found {
			return token.MatchResult{Matched: true, Path: path, Normalized: qualified}
		}
	}
	if path, found := m.index.Typography[wildcard]; found {
		return token.MatchResult{Matched: true, Path: path, Normalized: wildcard}
	}
	return token.MatchResult{Matched: false, Normalized: wildcard}
}

// Shadow blur buckets, smallest to largest.
const (
	BucketNone = "none"
	BucketSm   = "sm"
	BucketMd   = "md"
	BucketLg   = "lg"
)

// ShadowBucket maps a blur radius to its semantic size bucket.
func ShadowBucket(blur float64) string {
	switch {
	case blur <= 2:
		return BucketNone
	case blur <= 6:
		return BucketSm
	case blur <= 12:
		return BucketMd
	default:
		return BucketLg
	}
}
