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

	"github.com/spf13/cobra"

	"github.com/AleutianAI/f/cmd/f/internal/display"
	"github.com/AleutianAI/f/cmd/f/internal/gitstatus"
	"github.com/AleutianAI/f/pkg/ux"
)

func runList(cmd *cobra.Command, args []string) {
	files := loadFiles(newSource())

	if filterPattern != "" {
		filtered, err := gitstatus.FilterFiles(files, filterPattern)
		if err != nil {
			ux.Errorf("Error: %v", err)
			os.Exit(1)
		}
		files = filtered
	}

	display.ListFiles(cmd.Context(), os.Stdout, files)
}
