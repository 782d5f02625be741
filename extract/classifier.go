/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package extract

import (
	"regexp"
	"strings"

	"bennypowers.dev/themeref/token"
)

// hexColorPattern matches 3, 6 and 8 digit hex colors.
var hexColorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)

// Classifier decides, from a property path and a raw value, which token
// category a value belongs to. It is the single boundary that converts
// untyped theme records into the closed token.DesignValue set; ambiguous
// values are left unclassified rather than guessed.
type Classifier struct {
	cfg Config
}

// NewClassifier creates a classifier for one extraction run.
func NewClassifier(cfg Config) *Classifier {
	return &Classifier{cfg: cfg}
}

// Classify returns the design-value variant for a raw theme value, or nil
// when the value cannot be classified. Rules apply in order: hex color
// strings; numbers qualified by spacing/radii path keywords; objects with
// font-shaped fields; objects with shadow-shaped fields on a shadow path.
// Bare numbers without path context and malformed values classify as nil.
func (c *Classifier) Classify(propertyPath string, value any) token.DesignValue {
	switch v := value.(type) {
	case string:
		if hexColorPattern.MatchString(v) {
			if hex, ok := token.NormalizeHex(v); ok {
				return token.ColorValue{Hex: hex}
			}
		}
		return nil
	case map[string]any:
		return c.classifyObject(propertyPath, v)
	default:
		if n, ok := asNumber(value); ok {
			return c.classifyNumber(propertyPath, n)
		}
		return nil
	}
}

// classifyNumber qualifies a numeric leaf by its path context. A number
// whose path names neither spacing nor radii stays unclassified.
func (c *Classifier) classifyNumber(propertyPath string, n float64) token.DesignValue {
	lower := strings.ToLower(propertyPath)
	if containsAny(lower, c.cfg.SpacingKeywords) {
		return token.SpacingValue{Px: n}
	}
	if containsAny(lower, c.cfg.RadiiKeywords) {
		return token.RadiusValue{Px: n}
	}
	return nil
}

// classifyObject recognizes composite typography and shadow records.
// Typography wins when both shapes are plausible: a font-shaped field is a
// stronger signal than the generic numeric fields shadows share with
// unrelated records.
func (c *Classifier) classifyObject(propertyPath string, obj map[string]any) token.DesignValue {
	if hasFontField(obj) {
		return c.typographyValue(obj)
	}
	if c.hasShadowShape(obj) && containsAny(strings.ToLower(propertyPath), c.cfg.ShadowKeywords) {
		return c.shadowValue(obj)
	}
	return nil
}

// hasFontField reports whether the object carries a font-shaped field of a
// valid type.
func hasFontField(obj map[string]any) bool {
	if _, ok := asNumber(obj["fontSize"]); ok {
		return true
	}
	if _, ok := obj["fontFamily"].(string); ok {
		return true
	}
	if _, ok := asNumber(obj["lineHeight"]); ok {
		return true
	}
	return false
}

// hasShadowShape reports whether the object looks like a shadow record:
// x/y offsets together, or a blur radius together with a color.
func (c *Classifier) hasShadowShape(obj map[string]any) bool {
	_, hasX := firstNumber(obj, "offsetX", "x")
	_, hasY := firstNumber(obj, "offsetY", "y")
	if hasX && hasY {
		return true
	}
	_, hasBlur := firstNumber(obj, "blur", "radius")
	_, hasColor := obj["color"]
	return hasBlur && hasColor
}

// shadowValue builds a ShadowValue with independent per-field defaulting.
func (c *Classifier) shadowValue(obj map[string]any) token.ShadowValue {
	offsetX, _ := firstNumber(obj, "offsetX", "x")
	offsetY, _ := firstNumber(obj, "offsetY", "y")
	blur, _ := firstNumber(obj, "blur", "radius")
	spread, _ := firstNumber(obj, "spread")
	color, _ := obj["color"].(string)
	return token.ShadowValue{
		OffsetX: offsetX,
		OffsetY: offsetY,
		Blur:    blur,
		Spread:  spread,
		Color:   color,
	}
}

// typographyValue builds a TypographyValue from a font-shaped record.
// Missing fields default rather than fail: weight inference and defaulting
// happen at key registration.
func (c *Classifier) typographyValue(obj map[string]any) token.TypographyValue {
	size, _ := asNumber(obj["fontSize"])
	lineHeight, _ := asNumber(obj["lineHeight"])
	family, _ := obj["fontFamily"].(string)
	weight := 0
	if w, ok := asNumber(obj["fontWeight"]); ok {
		weight = token.NormalizeWeight(w)
	}
	return token.TypographyValue{
		FontFamily: family,
		FontSize:   size,
		LineHeight: lineHeight,
		FontWeight: weight,
	}
}

// asNumber extracts a float64 from the numeric types JSON, YAML and script
// parsing produce.
func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}

// firstNumber returns the first present numeric field among keys.
func firstNumber(obj map[string]any, keys ...string) (float64, bool) {
	for _, key := range keys {
		if v, present := obj[key]; present {
			if n, ok := asNumber(v); ok {
				return n, true
			}
		}
	}
	return 0, false
}

func containsAny(haystack string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(haystack, needle) {
			return true
		}
	}
	return false
}
