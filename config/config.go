/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides configuration loading for themeref.
package config

import (
	"encoding/json"

	"gopkg.in/yaml.v3"

	"bennypowers.dev/themeref/extract"
)

// Config represents the themeref project configuration.
type Config struct {
	// Files specifies theme source files to extract (paths or specs).
	Files []FileSpec `yaml:"files" json:"files"`

	// HasProjectTheme asserts the target project has theme
	// infrastructure, enabling speculative shadow bucket paths.
	HasProjectTheme bool `yaml:"hasProjectTheme" json:"hasProjectTheme"`

	// SpacingKeywords extends the default spacing path keywords.
	SpacingKeywords []string `yaml:"spacingKeywords" json:"spacingKeywords"`

	// RadiiKeywords extends the default radius path keywords.
	RadiiKeywords []string `yaml:"radiiKeywords" json:"radiiKeywords"`

	// ShadowKeywords extends the default shadow path keywords.
	ShadowKeywords []string `yaml:"shadowKeywords" json:"shadowKeywords"`

	// DenySegments extends the default denylisted path segments.
	DenySegments []string `yaml:"denySegments" json:"denySegments"`

	// RegularFamily is the project's regular-weight font family.
	RegularFamily string `yaml:"regularFamily" json:"regularFamily"`

	// BoldFamily is the project's bold-weight font family.
	BoldFamily string `yaml:"boldFamily" json:"boldFamily"`
}

// FileSpec represents a theme source file specification.
// It can be specified as a simple string path or as an object.
type FileSpec struct {
	// Path is the file path (supports globs).
	Path string `yaml:"path" json:"path"`
}

// UnmarshalYAML handles both string and object forms for FileSpec.
func (f *FileSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		f.Path = node.Value
		return nil
	}

	type rawFileSpec FileSpec
	return node.Decode((*rawFileSpec)(f))
}

// UnmarshalJSON handles both string and object forms for FileSpec.
func (f *FileSpec) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		f.Path = s
		return nil
	}

	type rawFileSpec FileSpec
	return json.Unmarshal(data, (*rawFileSpec)(f))
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{}
}

// ExtractConfig returns the extraction configuration with this project's
// keyword and denylist extensions appended to the defaults.
func (c *Config) ExtractConfig() extract.Config {
	cfg := extract.DefaultConfig()
	cfg.SpacingKeywords = append(cfg.SpacingKeywords, c.SpacingKeywords...)
	cfg.RadiiKeywords = append(cfg.RadiiKeywords, c.RadiiKeywords...)
	cfg.ShadowKeywords = append(cfg.ShadowKeywords, c.ShadowKeywords...)
	cfg.DenySegments = append(cfg.DenySegments, c.DenySegments...)
	cfg.RegularFamily = c.RegularFamily
	cfg.BoldFamily = c.BoldFamily
	return cfg
}

// FilePaths returns the list of file paths from all FileSpecs.
func (c *Config) FilePaths() []string {
	paths := make([]string, 0, len(c.Files))
	for _, spec := range c.Files {
		paths = append(paths, spec.Path)
	}
	return paths
}
