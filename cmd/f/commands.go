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
	"github.com/spf13/cobra"

	"github.com/AleutianAI/f/pkg/logging"
)

// --- Global Command Variables ---
var (
	verbose       bool
	filterPattern string
	watchInterval int

	rootCmd = &cobra.Command{
		Use:   "f",
		Short: "A keyboard-driven git file manager",
		Long: `f lists a repository's changed files with short typeable IDs
and acts on them without the round trip through full paths.`,
		Example: `  f              list changed files
  f fk d         ID-first syntax: diff the file with ID fk
  f add fk       stage the file with ID fk
  f i            interactive picker`,
		Args: cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logger = newLogger(logging.LevelDebug)
			}
		},
		// Bare `f` is the listing.
		Run: runList,
	}

	listCmd = &cobra.Command{
		Use:     "list",
		Aliases: []string{"l"},
		Short:   "List changed files",
		Args:    cobra.NoArgs,
		Run:     runList,
	}

	diffCmd = &cobra.Command{
		Use:     "diff [id]",
		Aliases: []string{"d"},
		Short:   "Show diff for a file",
		Args:    cobra.MaximumNArgs(1),
		Run:     runDiff,
	}

	stagedDiffCmd = &cobra.Command{
		Use:     "staged-diff [id]",
		Aliases: []string{"sd"},
		Short:   "Show staged diff for a file",
		Args:    cobra.MaximumNArgs(1),
		Run:     runStagedDiff,
	}

	addCmd = &cobra.Command{
		Use:     "add [id]",
		Aliases: []string{"a"},
		Short:   "Stage a file",
		Args:    cobra.MaximumNArgs(1),
		Run:     runAdd,
	}

	editCmd = &cobra.Command{
		Use:     "edit [id]",
		Aliases: []string{"e", "v"},
		Short:   "Edit a file in $EDITOR",
		Args:    cobra.MaximumNArgs(1),
		Run:     runEdit,
	}

	commitCmd = &cobra.Command{
		Use:     "commit [message...]",
		Aliases: []string{"c"},
		Short:   "Commit staged changes",
		Args:    cobra.ArbitraryArgs,
		Run:     runCommit,
	}

	pushCmd = &cobra.Command{
		Use:     "push",
		Aliases: []string{"p"},
		Short:   "Push to remote",
		Args:    cobra.NoArgs,
		Run:     runPush,
	}

	interactiveCmd = &cobra.Command{
		Use:     "interactive",
		Aliases: []string{"i"},
		Short:   "Interactive file picker",
		Args:    cobra.NoArgs,
		Run:     runInteractive,
	}

	watchCmd = &cobra.Command{
		Use:     "watch",
		Aliases: []string{"w"},
		Short:   "Watch file status",
		Args:    cobra.NoArgs,
		Run:     runWatch,
	}
)

// init runs when the Go program starts
func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	listCmd.Flags().StringVar(&filterPattern, "filter", "", "Only list paths matching a glob (e.g. '**/*.go')")
	watchCmd.Flags().StringVar(&filterPattern, "filter", "", "Only watch paths matching a glob (e.g. '**/*.go')")
	watchCmd.Flags().IntVarP(&watchInterval, "interval", "i", 2, "Refresh interval in seconds")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(diffCmd)
	rootCmd.AddCommand(stagedDiffCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(commitCmd)
	rootCmd.AddCommand(pushCmd)
	rootCmd.AddCommand(interactiveCmd)
	rootCmd.AddCommand(watchCmd)
}
