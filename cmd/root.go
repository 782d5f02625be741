/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for themeref.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/themeref/cmd/index"
	"bennypowers.dev/themeref/cmd/match"
	"bennypowers.dev/themeref/cmd/version"
)

var rootCmd = &cobra.Command{
	Use:   "themeref",
	Short: "Resolve design values into theme token references",
	Long:  `themeref extracts a project's design tokens into category indices and resolves concrete design values (colors, spacing, radii, shadows, typography) against them, so generated UI code uses semantic token names instead of duplicated literals.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Bool("has-project-theme", false, "Assert the target project has theme infrastructure")
	_ = viper.BindPFlag("hasProjectTheme", rootCmd.PersistentFlags().Lookup("has-project-theme"))

	rootCmd.AddCommand(index.Cmd)
	rootCmd.AddCommand(match.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
