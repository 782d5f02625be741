/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import (
	"strings"

	"github.com/mazznoer/csscolorparser"
)

// NormalizeHex converts a color string to the canonical upper-case hex form
// used for index keys: #RRGGBB, or #RRGGBBAA when the color carries alpha.
// Three-digit shorthand is expanded and a fully-opaque alpha channel is
// dropped, so the same color always produces the same key regardless of
// which form the source used. Returns false for unparseable values.
func NormalizeHex(value string) (string, bool) {
	c, err := csscolorparser.Parse(value)
	if err != nil {
		return "", false
	}
	return strings.ToUpper(c.HexString()), true
}
