/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package match_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/themeref/extract"
	"bennypowers.dev/themeref/match"
	"bennypowers.dev/themeref/token"
)

func buildIndex(t *testing.T, tree map[string]any) *token.Index {
	t.Helper()
	idx := token.NewIndex()
	extract.Walk(tree, "", extract.DefaultConfig(), idx)
	return idx
}

func TestMatcher_Color(t *testing.T) {
	idx := buildIndex(t, map[string]any{
		"tokens": map[string]any{
			"color": map[string]any{"primary": "#3B82F6"},
		},
	})
	m := match.NewMatcher(idx, match.Options{})

	t.Run("case insensitive hit", func(t *testing.T) {
		result := m.Match(token.ColorValue{Hex: "#3b82f6"})
		require.True(t, result.Matched)
		assert.Equal(t, "theme.color.primary", result.Path)
		assert.Equal(t, "#3B82F6", result.Normalized)
	})

	t.Run("no fuzzy fallback", func(t *testing.T) {
		result := m.Match(token.ColorValue{Hex: "#3b82f7"})
		assert.False(t, result.Matched)
		assert.Equal(t, "#3B82F7", result.Normalized)
	})
}

func TestMatcher_SpacingAndRadii(t *testing.T) {
	idx := buildIndex(t, map[string]any{
		"spacing":      map[string]any{"md": 16.0},
		"borderRadius": map[string]any{"sm": 4.0},
	})
	m := match.NewMatcher(idx, match.Options{})

	t.Run("exact spacing hit", func(t *testing.T) {
		result := m.Match(token.SpacingValue{Px: 16})
		require.True(t, result.Matched)
		assert.Equal(t, "theme.spacing.md", result.Path)
	})

	t.Run("rounding is symmetric with registration", func(t *testing.T) {
		result := m.Match(token.SpacingValue{Px: 15.6})
		assert.True(t, result.Matched)
	})

	t.Run("near miss stays unmatched", func(t *testing.T) {
		result := m.Match(token.SpacingValue{Px: 17})
		assert.False(t, result.Matched)
		assert.Equal(t, 17, result.Normalized)
	})

	t.Run("radius hit", func(t *testing.T) {
		result := m.Match(token.RadiusValue{Px: 4})
		require.True(t, result.Matched)
		assert.Equal(t, "theme.borderRadius.sm", result.Path)
	})
}

func TestMatcher_Shadow(t *testing.T) {
	idx := buildIndex(t, map[string]any{
		"shadows": map[string]any{
			"md": map[string]any{
				"offsetX": 0.0, "offsetY": 4.0, "blur": 8.0, "color": "#00000040",
			},
		},
	})

	t.Run("exact composite hit", func(t *testing.T) {
		m := match.NewMatcher(idx, match.Options{})
		result := m.Match(token.ShadowValue{OffsetY: 4, Blur: 8})
		require.True(t, result.Matched)
		assert.Equal(t, "theme.shadows.md", result.Path)
	})

	t.Run("bucket fallback on miss", func(t *testing.T) {
		m := match.NewMatcher(idx, match.Options{})
		result := m.Match(token.ShadowValue{OffsetY: 2, Blur: 10})
		require.True(t, result.Matched)
		assert.Equal(t, "theme.shadows.md", result.Path)
	})

	t.Run("speculative path with project theme", func(t *testing.T) {
		empty := token.NewIndex()
		m := match.NewMatcher(empty, match.Options{HasProjectTheme: true})
		result := m.Match(token.ShadowValue{Blur: 10})
		require.True(t, result.Matched)
		assert.Equal(t, "theme.shadows.md", result.Path)
	})

	t.Run("no speculation without project theme", func(t *testing.T) {
		empty := token.NewIndex()
		m := match.NewMatcher(empty, match.Options{})
		result := m.Match(token.ShadowValue{Blur: 10})
		assert.False(t, result.Matched)
	})

	t.Run("none bucket never speculates", func(t *testing.T) {
		empty := token.NewIndex()
		m := match.NewMatcher(empty, match.Options{HasProjectTheme: true})
		result := m.Match(token.ShadowValue{Blur: 1})
		assert.False(t, result.Matched)
	})
}

func TestMatcher_Typography(t *testing.T) {
	idx := buildIndex(t, map[string]any{
		"typography": map[string]any{
			"body": map[string]any{
				"bold": map[string]any{
					"fontSize": 16.0, "lineHeight": 20.0, "fontFamily": "Inter",
				},
			},
		},
	})
	m := match.NewMatcher(idx, match.Options{})

	t.Run("wildcard hit at registered weights", func(t *testing.T) {
		for _, weight := range []int{600, 700} {
			result := m.Match(token.TypographyValue{FontSize: 16, LineHeight: 20, FontWeight: weight})
			require.True(t, result.Matched, "weight %d", weight)
			assert.Equal(t, "theme.typography.body.bold", result.Path)
		}
	})

	t.Run("unregistered weight misses", func(t *testing.T) {
		result := m.Match(token.TypographyValue{FontSize: 16, LineHeight: 20, FontWeight: 400})
		assert.False(t, result.Matched)
	})

	t.Run("family qualified lookup", func(t *testing.T) {
		result := m.Match(token.TypographyValue{FontFamily: "Inter", FontSize: 16, LineHeight: 20, FontWeight: 700})
		require.True(t, result.Matched)
		assert.Equal(t, "theme.typography.body.bold", result.Path)
	})

	t.Run("unknown family falls back to wildcard", func(t *testing.T) {
		result := m.Match(token.TypographyValue{FontFamily: "Comic Sans", FontSize: 16, LineHeight: 20, FontWeight: 700})
		assert.True(t, result.Matched)
	})
}

func TestShadowBucket(t *testing.T) {
	tests := []struct {
		blur     float64
		expected string
	}{
		{blur: 0, expected: match.BucketNone},
		{blur: 2, expected: match.BucketNone},
		{blur: 3, expected: match.BucketSm},
		{blur: 6, expected: match.BucketSm},
		{blur: 7, expected: match.BucketMd},
		{blur: 12, expected: match.BucketMd},
		{blur: 13, expected: match.BucketLg},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, match.ShadowBucket(tt.blur), "blur %v", tt.blur)
	}
}
