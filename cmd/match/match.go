/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package match provides the match command for themeref.
package match

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/themeref/config"
	"bennypowers.dev/themeref/fs"
	"bennypowers.dev/themeref/internal/logger"
	matchlib "bennypowers.dev/themeref/match"
	"bennypowers.dev/themeref/themesource"
	"bennypowers.dev/themeref/token"
)

// Cmd is the match cobra command that resolves a file of design values
// against the project's theme sources.
var Cmd = &cobra.Command{
	Use:   "match <values.json> [theme files...]",
	Short: "Resolve design values against the token index",
	Long:  `Resolve a JSON file of captured design values against the merged token index and print match results plus the unmapped-value report.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  run,
}

func init() {
	Cmd.Flags().Bool("suggest", false, "Suggest the nearest indexed color for unmapped colors")
}

// designValueSpec is the wire form of one captured design value.
type designValueSpec struct {
	Category string  `json:"category"`
	Value    any     `json:"value,omitempty"`
	OffsetX  float64 `json:"offsetX,omitempty"`
	OffsetY  float64 `json:"offsetY,omitempty"`
	Blur     float64 `json:"blur,omitempty"`
	Spread   float64 `json:"spread,omitempty"`

	FontFamily string  `json:"fontFamily,omitempty"`
	FontSize   float64 `json:"fontSize,omitempty"`
	FontWeight float64 `json:"fontWeight,omitempty"`
	LineHeight float64 `json:"lineHeight,omitempty"`
}

// matchOutput is one resolved value in the command's JSON output.
type matchOutput struct {
	Category string `json:"category"`
	token.MatchResult
}

func run(cmd *cobra.Command, args []string) error {
	suggest, _ := cmd.Flags().GetBool("suggest")

	filesystem := fs.NewOSFileSystem()
	cfg := config.LoadOrDefault(filesystem, ".")

	values, err := readValues(filesystem, args[0])
	if err != nil {
		return err
	}

	files := args[1:]
	if len(files) == 0 {
		expanded, err := cfg.ExpandFiles(filesystem, ".")
		if err != nil {
			return fmt.Errorf("error expanding config files: %w", err)
		}
		files = expanded
	}
	if len(files) == 0 {
		return fmt.Errorf("no theme source files specified and none found in config")
	}

	idx, err := themesource.ExtractAll(context.Background(), filesystem, files, cfg.ExtractConfig())
	if err != nil {
		return err
	}

	// CLI flag takes precedence over the config file.
	hasTheme := cfg.HasProjectTheme
	if viper.IsSet("hasProjectTheme") && viper.GetBool("hasProjectTheme") {
		hasTheme = true
	}

	matcher := matchlib.NewMatcher(idx, matchlib.Options{HasProjectTheme: hasTheme})
	report := matchlib.NewReport()

	results := make([]matchOutput, 0, len(values))
	for i, spec := range values {
		value, ok := spec.designValue()
		if !ok {
			logger.Warn("skipping value %d: unrecognized category %q", i, spec.Category)
			continue
		}

		var result token.MatchResult
		if tv, isTypography := value.(token.TypographyValue); isTypography {
			result = matcher.MatchTypographyLoose(tv)
		} else {
			result = matcher.Match(value)
		}
		report.Record(value, result)
		results = append(results, matchOutput{Category: string(value.Category()), MatchResult: result})
	}

	payload := map[string]any{
		"results": results,
		"unmapped": map[string]any{
			"colors":  report.Colors(),
			"spacing": report.Spacing(),
			"radii":   report.Radii(),
		},
	}
	if suggest && len(report.Colors()) > 0 {
		payload["suggestions"] = report.ColorSuggestions(idx)
	}

	out, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling results: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// readValues loads and decodes the captured design value file.
func readValues(filesystem fs.FileSystem, path string) ([]designValueSpec, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading values file %s: %w", path, err)
	}
	var values []designValueSpec
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("error parsing values file %s: %w", path, err)
	}
	return values, nil
}

// designValue converts the wire form into its closed-union variant.
// Unknown categories report false and are skipped.
func (s designValueSpec) designValue() (token.DesignValue, bool) {
	switch token.Category(s.Category) {
	case token.CategoryColor:
		hex, _ := s.Value.(string)
		return token.ColorValue{Hex: hex}, hex != ""
	case token.CategorySpacing:
		px, ok := s.Value.(float64)
		return token.SpacingValue{Px: px}, ok
	case token.CategoryRadii:
		px, ok := s.Value.(float64)
		return token.RadiusValue{Px: px}, ok
	case token.CategoryShadow:
		return token.ShadowValue{
			OffsetX: s.OffsetX,
			OffsetY: s.OffsetY,
			Blur:    s.Blur,
			Spread:  s.Spread,
		}, true
	case token.CategoryTypography:
		return token.TypographyValue{
			FontFamily: s.FontFamily,
			FontSize:   s.FontSize,
			LineHeight: s.LineHeight,
			FontWeight: token.NormalizeWeight(s.FontWeight),
		}, true
	default:
		return nil, false
	}
}
