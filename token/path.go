/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import (
	"regexp"
	"strings"
)

// identifierPattern matches keys that can be joined with dot notation.
var identifierPattern = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// DefaultDenySegments are path segments stripped during simplification.
// They name wrapper objects (palette files, token namespaces) that do not
// appear in the access expression generated code should use.
var DefaultDenySegments = []string{
	"masterPalette",
	"clientPalette",
	"masterColors",
	"clientColors",
	"designTokens",
	"tokens",
	"palette",
	"theme",
	"colorsTheme",
}

// ChildPath appends a key to a parent path, using dot notation for valid
// identifiers and bracket notation otherwise.
func ChildPath(parent, key string) string {
	if identifierPattern.MatchString(key) {
		if parent == "" {
			return key
		}
		return parent + "." + key
	}
	escaped := strings.ReplaceAll(key, `'`, `\'`)
	return parent + "['" + escaped + "']"
}

// Simplify normalizes a raw token path into its canonical theme.-rooted
// form: a leading tokens. is rewritten to theme., a theme. prefix is added
// when absent, and denylisted interior segments are removed with adjacent
// dots collapsed. Simplify is idempotent.
func Simplify(path string, denySegments []string) string {
	p := path
	if after, ok := strings.CutPrefix(p, "tokens."); ok {
		p = "theme." + after
	}
	if p != "theme" && !strings.HasPrefix(p, "theme.") {
		p = "theme." + p
	}

	segments := strings.Split(p, ".")
	// The leading theme root always survives; the denylist applies to
	// interior segments only.
	kept := segments[:1]
	for _, segment := range segments[1:] {
		if segment == "" {
			continue
		}
		if isDenied(segment, denySegments) {
			continue
		}
		kept = append(kept, segment)
	}
	return strings.Join(kept, ".")
}

func isDenied(segment string, denySegments []string) bool {
	for _, deny := range denySegments {
		if strings.EqualFold(segment, deny) {
			return true
		}
	}
	return false
}
