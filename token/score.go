/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import "strings"

// Score rates a token path by structural complexity; lower is simpler and
// preferred. Dots and brackets dominate the score so that shallow paths win
// over deep ones, with length as the final discriminator. Decorative
// overlay/opacity/preset paths are penalized so semantic tokens win when
// both map to the same value.
func Score(path string) int {
	score := 10*strings.Count(path, ".") +
		20*strings.Count(path, "[") +
		len(path)
	if strings.Contains(path, "overlay") {
		score += 10
	}
	if strings.Contains(path, "opacity") {
		score += 10
	}
	if strings.Contains(path, "Preset") {
		score += 5
	}
	return score
}
