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
	"context"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/AleutianAI/f/cmd/f/internal/gitstatus"
	"github.com/AleutianAI/f/cmd/f/internal/tui"
	"github.com/AleutianAI/f/pkg/ux"
)

func runWatch(cmd *cobra.Command, args []string) {
	src := newSource()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	// The view still refreshes on its ticker when the watcher cannot
	// start, so exhausted inotify watches degrade to polling.
	watcher, err := gitstatus.NewWatcher(src.Root(), logger)
	if err != nil {
		logger.Warn("file watcher unavailable, polling only", "error", err)
		watcher = nil
	} else {
		go watcher.Start(ctx)
		defer watcher.Stop()
	}

	interval := time.Duration(watchInterval) * time.Second
	if interval <= 0 {
		interval = 2 * time.Second
	}

	if err := tui.Watch(src, watcher, filterPattern, interval); err != nil {
		ux.Errorf("Error: %v", err)
		os.Exit(1)
	}
}
