/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Command themeref resolves design values captured from a visual-design
// document into references into a project's theme token module.
package main

import (
	"os"

	"bennypowers.dev/themeref/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
