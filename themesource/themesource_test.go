/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package themesource_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/themeref/themesource"
)

func TestParse_JSON(t *testing.T) {
	data := []byte(`{
		"colors": { "primary": "#3B82F6" },
		"spacing": { "md": 16 }
	}`)

	tree, err := themesource.Parse(data, "theme.json")
	require.NoError(t, err)

	colors, ok := tree["colors"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "#3B82F6", colors["primary"])

	spacing, ok := tree["spacing"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 16.0, spacing["md"])
}

func TestParse_JSONWithComments(t *testing.T) {
	data := []byte(`{
		// brand palette
		"colors": {
			"primary": "#3B82F6", /* blue-500 */
		},
	}`)

	tree, err := themesource.Parse(data, "theme.jsonc")
	require.NoError(t, err)

	colors := tree["colors"].(map[string]any)
	assert.Equal(t, "#3B82F6", colors["primary"])
}

func TestParse_YAML(t *testing.T) {
	data := []byte(`
colors:
  primary: "#3B82F6"
spacing:
  10: 10
  md: 16
`)

	tree, err := themesource.Parse(data, "theme.yaml")
	require.NoError(t, err)

	colors := tree["colors"].(map[string]any)
	assert.Equal(t, "#3B82F6", colors["primary"])

	// Numeric YAML keys are normalized to strings.
	spacing := tree["spacing"].(map[string]any)
	assert.Contains(t, spacing, "10")
}

func TestParse_YAMLRootMustBeObject(t *testing.T) {
	_, err := themesource.Parse([]byte("- a\n- b\n"), "theme.yaml")
	assert.Error(t, err)
}

func TestParse_InvalidJSON(t *testing.T) {
	_, err := themesource.Parse([]byte(`{"colors": `), "theme.json")
	assert.Error(t, err)
}
