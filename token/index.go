/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

// Index maps normalized design-value keys to token paths, one map per
// category. Within a category each key maps to exactly one path: the
// simplest seen so far by Score. An index is built fresh per extraction
// run and is not safe for concurrent mutation; runs own their indices.
type Index struct {
	// Colors maps upper-case hex keys to token paths.
	Colors map[string]string `json:"colors"`

	// Spacing maps rounded pixel values to token paths.
	Spacing map[int]string `json:"spacing"`

	// Radii maps rounded pixel values to token paths.
	Radii map[int]string `json:"radii"`

	// Shadows maps composite shadow keys to token paths.
	Shadows map[string]string `json:"shadows"`

	// Typography maps composite typography keys to token paths.
	Typography map[string]string `json:"typography"`

	// Tokens records every token registered into this index, in
	// registration order, for listing and review output.
	Tokens []ThemeToken `json:"-"`
}

// NewIndex creates an empty index.
func NewIndex() *Index {
	return &Index{
		Colors:     make(map[string]string),
		Spacing:    make(map[int]string),
		Radii:      make(map[int]string),
		Shadows:    make(map[string]string),
		Typography: make(map[string]string),
	}
}

// put registers key→path, overwriting an existing mapping only when the
// new path is strictly simpler. First-seen wins on ties.
func put[K comparable](m map[K]string, key K, path string) {
	if existing, ok := m[key]; ok && Score(path) >= Score(existing) {
		return
	}
	m[key] = path
}

// PutColor registers a color token under its normalized hex key.
func (ix *Index) PutColor(hexKey, path string) {
	put(ix.Colors, hexKey, path)
}

// PutSpacing registers a spacing token under its rounded pixel key.
func (ix *Index) PutSpacing(px int, path string) {
	put(ix.Spacing, px, path)
}

// PutRadius registers a radius token under its rounded pixel key.
func (ix *Index) PutRadius(px int, path string) {
	put(ix.Radii, px, path)
}

// PutShadow registers a shadow token under its composite key.
func (ix *Index) PutShadow(key, path string) {
	put(ix.Shadows, key, path)
}

// PutTypography registers one typography key for a token. Callers register
// a token's full key set in a single pass so no partial subset is ever
// observable.
func (ix *Index) PutTypography(key, path string) {
	put(ix.Typography, key, path)
}

// Record appends an extracted token to the index's token list.
func (ix *Index) Record(t ThemeToken) {
	ix.Tokens = append(ix.Tokens, t)
}

// Len returns the total number of key mappings across all categories.
func (ix *Index) Len() int {
	return len(ix.Colors) + len(ix.Spacing) + len(ix.Radii) +
		len(ix.Shadows) + len(ix.Typography)
}

// Merge combines indices from multiple theme sources. For every key present
// in any input the simplest path by Score wins; ties resolve to the
// earliest input. Apart from that tie-break the merge is order-independent,
// so callers needing reproducible output must supply inputs in a stable,
// fixed order.
func Merge(indices []*Index) *Index {
	merged := NewIndex()
	for _, ix := range indices {
		if ix == nil {
			continue
		}
		for key, path := range ix.Colors {
			put(merged.Colors, key, path)
		}
		for key, path := range ix.Spacing {
			put(merged.Spacing, key, path)
		}
		for key, path := range ix.Radii {
			put(merged.Radii, key, path)
		}
		for key, path := range ix.Shadows {
			put(merged.Shadows, key, path)
		}
		for key, path := range ix.Typography {
			put(merged.Typography, key, path)
		}
		merged.Tokens = append(merged.Tokens, ix.Tokens...)
	}
	return merged
}
