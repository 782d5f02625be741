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

	"bennypowers.dev/themeref/match"
	"bennypowers.dev/themeref/token"
)

func TestCandidates_OrderAndBounds(t *testing.T) {
	v := token.TypographyValue{FontSize: 16, LineHeight: 20, FontWeight: 400}
	candidates := match.Candidates(v)

	require.Len(t, candidates, 7)
	assert.Equal(t, v, candidates[0], "exact value must come first")

	lineHeights := []float64{20, 21, 19, 22, 18}
	for i, lh := range lineHeights {
		assert.Equal(t, lh, candidates[i].LineHeight, "candidate %d", i)
		assert.Equal(t, 16.0, candidates[i].FontSize, "candidate %d", i)
	}

	assert.Equal(t, 17.0, candidates[5].FontSize)
	assert.Equal(t, 15.0, candidates[6].FontSize)
	assert.Equal(t, 20.0, candidates[5].LineHeight, "size perturbations keep the exact line height")
}

func TestMatchTypographyLoose_RecoversOffByOne(t *testing.T) {
	idx := buildIndex(t, map[string]any{
		"typography": map[string]any{
			"body": map[string]any{
				"regular": map[string]any{
					"fontSize": 16.0, "lineHeight": 20.0,
				},
			},
		},
	})
	m := match.NewMatcher(idx, match.Options{})

	t.Run("line height off by one", func(t *testing.T) {
		result := m.MatchTypographyLoose(token.TypographyValue{FontSize: 16, LineHeight: 21, FontWeight: 400})
		require.True(t, result.Matched)
		assert.Equal(t, "theme.typography.body.regular", result.Path)
	})

	t.Run("size off by one", func(t *testing.T) {
		result := m.MatchTypographyLoose(token.TypographyValue{FontSize: 17, LineHeight: 20, FontWeight: 500})
		require.True(t, result.Matched)
	})

	t.Run("beyond tolerance stays unmatched", func(t *testing.T) {
		result := m.MatchTypographyLoose(token.TypographyValue{FontSize: 22, LineHeight: 30, FontWeight: 400})
		assert.False(t, result.Matched)
		assert.Equal(t, "*-22-400-30", result.Normalized)
	})
}
