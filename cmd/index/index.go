/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package index provides the index command for themeref.
package index

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"bennypowers.dev/themeref/config"
	"bennypowers.dev/themeref/fs"
	"bennypowers.dev/themeref/internal/logger"
	"bennypowers.dev/themeref/themesource"
)

// Cmd is the index cobra command that extracts theme sources and prints
// the merged category index.
var Cmd = &cobra.Command{
	Use:   "index [files...]",
	Short: "Build the merged token index from theme sources",
	Long:  `Extract design tokens from one or more theme source files (JSON, YAML, JS, TS) and print the merged category index. Files come from arguments or from .config/themeref.{yaml,yml,json}.`,
	RunE:  run,
}

func init() {
	Cmd.Flags().Bool("tokens", false, "Include the extracted token list in the output")
}

func run(cmd *cobra.Command, args []string) error {
	includeTokens, _ := cmd.Flags().GetBool("tokens")

	filesystem := fs.NewOSFileSystem()
	cfg := config.LoadOrDefault(filesystem, ".")

	files := args
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
	logger.Info("indexed %d keys from %d theme sources", idx.Len(), len(files))

	var payload any = idx
	if includeTokens {
		payload = map[string]any{
			"index":  idx,
			"tokens": idx.Tokens,
		}
	}

	out, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling index: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
