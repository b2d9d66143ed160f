// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func runDiff(cmd *cobra.Command, args []string) {
	gitDiff(resolveTarget(optionalID(args)))
}

func runStagedDiff(cmd *cobra.Command, args []string) {
	file := resolveTarget(optionalID(args))
	runGit("diff", "--staged", file.AbsPath)
}

func runAdd(cmd *cobra.Command, args []string) {
	file := resolveTarget(optionalID(args))
	fmt.Printf("Adding: %s\n", file.RelPath)
	runGit("add", file.AbsPath)
}

func runEdit(cmd *cobra.Command, args []string) {
	file := resolveTarget(optionalID(args))
	runEditor(file.AbsPath)
}
