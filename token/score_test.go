/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token_test

import (
	"testing"

	"bennypowers.dev/themeref/token"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected int
	}{
		{
			name:     "single segment",
			path:     "theme",
			expected: 5,
		},
		{
			name:     "dots weigh ten each",
			path:     "theme.colors.primary",
			expected: 10*2 + 20,
		},
		{
			name:     "brackets weigh twenty each",
			path:     "theme.colors['brand-1']",
			expected: 10*1 + 20*1 + 23,
		},
		{
			name:     "overlay penalty",
			path:     "theme.overlay.dim",
			expected: 10*2 + 17 + 10,
		},
		{
			name:     "opacity penalty",
			path:     "theme.opacity.low",
			expected: 10*2 + 17 + 10,
		},
		{
			name:     "preset penalty",
			path:     "theme.shadowPreset.sm",
			expected: 10*2 + 21 + 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := token.Score(tt.path); got != tt.expected {
				t.Errorf("Score(%q) = %d, want %d", tt.path, got, tt.expected)
			}
		})
	}
}

func TestScore_PrefersShallowPaths(t *testing.T) {
	simple := token.Score("theme.spacing.md")
	nested := token.Score("theme.layout.spacing.medium")
	if simple >= nested {
		t.Errorf("expected %d < %d", simple, nested)
	}
}
