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

func TestChildPath(t *testing.T) {
	tests := []struct {
		name     string
		parent   string
		key      string
		expected string
	}{
		{
			name:     "identifier from root",
			parent:   "",
			key:      "colors",
			expected: "colors",
		},
		{
			name:     "identifier child",
			parent:   "theme.colors",
			key:      "primary",
			expected: "theme.colors.primary",
		},
		{
			name:     "dollar identifier",
			parent:   "theme",
			key:      "$colors",
			expected: "theme.$colors",
		},
		{
			name:     "hyphenated key uses brackets",
			parent:   "theme.colors",
			key:      "brand-1",
			expected: "theme.colors['brand-1']",
		},
		{
			name:     "numeric key uses brackets",
			parent:   "theme.spacing",
			key:      "10",
			expected: "theme.spacing['10']",
		},
		{
			name:     "quote in key escaped",
			parent:   "theme",
			key:      "it's",
			expected: `theme['it\'s']`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := token.ChildPath(tt.parent, tt.key); got != tt.expected {
				t.Errorf("ChildPath(%q, %q) = %q, want %q", tt.parent, tt.key, got, tt.expected)
			}
		})
	}
}

func TestSimplify(t *testing.T) {
	deny := token.DefaultDenySegments

	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{
			name:     "tokens prefix rewritten",
			path:     "tokens.color.primary",
			expected: "theme.color.primary",
		},
		{
			name:     "theme prefix added",
			path:     "color.primary",
			expected: "theme.color.primary",
		},
		{
			name:     "already canonical",
			path:     "theme.color.primary",
			expected: "theme.color.primary",
		},
		{
			name:     "interior palette segment removed",
			path:     "theme.masterPalette.blue",
			expected: "theme.blue",
		},
		{
			name:     "denylist is case insensitive",
			path:     "theme.DESIGNTOKENS.spacing.md",
			expected: "theme.spacing.md",
		},
		{
			name:     "multiple denied segments",
			path:     "tokens.palette.colorsTheme.primary",
			expected: "theme.primary",
		},
		{
			name:     "interior theme segment removed",
			path:     "theme.theme.spacing.sm",
			expected: "theme.spacing.sm",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := token.Simplify(tt.path, deny); got != tt.expected {
				t.Errorf("Simplify(%q) = %q, want %q", tt.path, got, tt.expected)
			}
		})
	}
}

func TestSimplify_Idempotent(t *testing.T) {
	deny := token.DefaultDenySegments

	paths := []string{
		"tokens.color.primary",
		"color.primary",
		"theme.masterPalette.blue",
		"theme.colors['brand-1']",
		"spacing.md",
		"theme",
	}

	for _, path := range paths {
		once := token.Simplify(path, deny)
		twice := token.Simplify(once, deny)
		if once != twice {
			t.Errorf("Simplify not idempotent for %q: %q != %q", path, once, twice)
		}
	}
}
