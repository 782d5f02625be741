/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package extract

import (
	"sort"

	"bennypowers.dev/themeref/token"
)

// Walk recursively visits a parsed theme tree and registers every
// classifiable value into idx under its simplified path. Objects that
// classify as shadow or typography are registered as one composite unit
// and not recursed into; everything else recurses with dot or bracket
// child segments. Keys are visited in sorted order so extraction is
// deterministic for a given tree.
func Walk(tree map[string]any, rootPath string, cfg Config, idx *token.Index) {
	classifier := NewClassifier(cfg)
	walk(tree, rootPath, cfg, classifier, idx)
}

func walk(node map[string]any, path string, cfg Config, classifier *Classifier, idx *token.Index) {
	keys := make([]string, 0, len(node))
	for key := range node {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := node[key]
		childPath := token.ChildPath(path, key)

		child, isObject := value.(map[string]any)
		classified := classifier.Classify(childPath, value)

		switch v := classified.(type) {
		case token.ColorValue:
			register(idx, childPath, cfg, v, value)
		case token.SpacingValue:
			register(idx, childPath, cfg, v, value)
		case token.RadiusValue:
			register(idx, childPath, cfg, v, value)
		case token.ShadowValue:
			register(idx, childPath, cfg, v, value)
		case token.TypographyValue:
			registerTypography(idx, childPath, cfg, v, value)
		default:
			// Unclassifiable leaves are skipped, never fatal; objects
			// recurse in search of deeper tokens.
			if isObject {
				walk(child, childPath, cfg, classifier, idx)
			}
		}
	}
}

// register indexes one single-key token under its simplified path.
func register(idx *token.Index, rawPath string, cfg Config, value token.DesignValue, raw any) {
	path := token.Simplify(rawPath, cfg.DenySegments)
	switch v := value.(type) {
	case token.ColorValue:
		idx.PutColor(v.Hex, path)
	case token.SpacingValue:
		idx.PutSpacing(token.PxKey(v.Px), path)
	case token.RadiusValue:
		idx.PutRadius(token.PxKey(v.Px), path)
	case token.ShadowValue:
		idx.PutShadow(token.ShadowKey(v), path)
	}
	idx.Record(token.ThemeToken{Path: path, Category: value.Category(), RawValue: raw})
}

// registerTypography indexes a typography token under its full weight
// variant key set. The keys are computed up front and written in one pass,
// so a token's key set is never partially visible.
func registerTypography(idx *token.Index, rawPath string, cfg Config, v token.TypographyValue, raw any) {
	path := token.Simplify(rawPath, cfg.DenySegments)
	for _, key := range TypographyKeys(rawPath, cfg, v) {
		idx.PutTypography(key, path)
	}
	idx.Record(token.ThemeToken{Path: path, Category: token.CategoryTypography, RawValue: raw})
}
