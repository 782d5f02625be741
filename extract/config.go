/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package extract classifies raw theme trees and builds category indices
// from them.
package extract

import "bennypowers.dev/themeref/token"

// Config controls classification and path simplification for a single
// extraction run. Each run receives its own Config value, so concurrent
// extractions for different projects cannot interfere.
type Config struct {
	// SpacingKeywords are property-path substrings that qualify a bare
	// number as a spacing token.
	SpacingKeywords []string

	// RadiiKeywords are property-path substrings that qualify a bare
	// number as a radius token.
	RadiiKeywords []string

	// ShadowKeywords are property-path substrings required for an object
	// with shadow-shaped fields to classify as a shadow token.
	ShadowKeywords []string

	// DenySegments are path segments removed during simplification.
	DenySegments []string

	// RegularFamily is the project's regular-weight font family, used to
	// register family-qualified typography keys for regular-variant
	// tokens. Optional.
	RegularFamily string

	// BoldFamily is the project's bold-weight font family, used to
	// register family-qualified typography keys for bold-variant tokens.
	// Optional.
	BoldFamily string
}

// DefaultConfig returns the standard classification configuration.
func DefaultConfig() Config {
	return Config{
		SpacingKeywords: []string{"spacing", "gap", "margin", "padding", "inset"},
		RadiiKeywords:   []string{"radius", "radii", "corner"},
		ShadowKeywords:  []string{"shadow", "elevation"},
		DenySegments:    token.DefaultDenySegments,
	}
}
