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
	"os"

	"github.com/spf13/cobra"

	"github.com/AleutianAI/f/cmd/f/config"
	"github.com/AleutianAI/f/cmd/f/internal/tui"
	"github.com/AleutianAI/f/pkg/ux"
)

func runInteractive(cmd *cobra.Command, args []string) {
	src := newSource()
	files := loadFiles(src)
	if len(files) == 0 {
		ux.Dim("No changed files")
		return
	}

	res, err := tui.Pick(files, config.Global.Alphabet())
	if err != nil {
		ux.Errorf("Error: %v", err)
		os.Exit(1)
	}
	if res.Cancelled || res.File == nil {
		return
	}

	action, err := tui.ChooseAction(res.File)
	if err != nil {
		ux.Errorf("Error: %v", err)
		os.Exit(1)
	}

	// Actions run from the repository root so git's relative output
	// matches the listing no matter where f was invoked.
	_ = os.Chdir(src.Root())

	switch action {
	case tui.ActionAdd:
		fmt.Printf("Adding: %s\n", res.File.RelPath)
		runGit("add", res.File.AbsPath)
	case tui.ActionDiff:
		gitDiff(res.File)
	case tui.ActionStagedDiff:
		runGit("diff", "--staged", res.File.AbsPath)
	case tui.ActionEdit:
		runEditor(res.File.AbsPath)
	case tui.ActionQuit:
	}
}
