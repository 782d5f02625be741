/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package themesource loads a project's theme source files into raw token
// trees and extracts category indices from them.
package themesource

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// Parse parses theme source data into a raw token tree: an arbitrary
// nested mapping of string keys to string, number, boolean or nested
// mapping values. The format is chosen by file extension for script
// sources and by sniffing for JSON versus YAML otherwise.
func Parse(data []byte, path string) (map[string]any, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".js", ".jsx", ".mjs", ".cjs", ".ts", ".tsx", ".mts", ".cts":
		return ParseScript(data, path)
	}
	return parseData(data)
}

// parseData parses JSON (with comments) or YAML theme data.
func parseData(data []byte) (map[string]any, error) {
	var raw map[string]any

	if isLikelyJSON(data) {
		cleanJSON := jsonc.ToJSON(data)
		if err := json.Unmarshal(cleanJSON, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
		return raw, nil
	}

	var yamlRaw any
	if err := yaml.Unmarshal(data, &yamlRaw); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	normalized, ok := normalizeMap(yamlRaw).(map[string]any)
	if !ok {
		return nil, fmt.Errorf("YAML root must be an object")
	}
	return normalized, nil
}

// isLikelyJSON checks if data appears to be JSON rather than YAML.
// JSON typically starts with '{' (optionally preceded by whitespace/BOM).
func isLikelyJSON(data []byte) bool {
	for _, b := range data {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		case 0xEF, 0xBB, 0xBF: // UTF-8 BOM
			continue
		case '{':
			return true
		default:
			return false
		}
	}
	return false
}

// normalizeMap recursively converts map[interface{}]interface{} to
// map[string]any. YAML with numeric keys (like "10:") creates
// map[interface{}]interface{}, which must be normalized for our
// string-keyed processing.
func normalizeMap(v any) any {
	switch x := v.(type) {
	case map[string]any:
		for k, val := range x {
			x[k] = normalizeMap(val)
		}
		return x
	case map[any]any:
		result := make(map[string]any, len(x))
		for k, val := range x {
			result[fmt.Sprintf("%v", k)] = normalizeMap(val)
		}
		return result
	case []any:
		for i, val := range x {
			x[i] = normalizeMap(val)
		}
		return x
	default:
		return v
	}
}
