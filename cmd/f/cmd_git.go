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
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AleutianAI/f/pkg/ux"
)

func runCommit(cmd *cobra.Command, args []string) {
	if len(args) == 0 {
		ux.Error("Commit message required")
		os.Exit(1)
	}
	// Unquoted words form one message: `f c fix the parser`.
	runGit("commit", "-m", strings.Join(args, " "))
}

func runPush(cmd *cobra.Command, args []string) {
	runGit("push")
}
