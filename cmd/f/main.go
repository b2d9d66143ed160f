// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Command f is a keyboard-driven git file manager.
//
// Usage:
//
//	f              # list changed files with short IDs
//	f fk d         # diff the file whose ID starts with fk
//	f add fk       # stage it
//	f i            # interactive picker
//	f w            # live status view
package main

import (
	"fmt"
	"os"

	"github.com/AleutianAI/f/cmd/f/config"
	"github.com/AleutianAI/f/cmd/f/internal/gitstatus"
	"github.com/AleutianAI/f/pkg/logging"
	"github.com/AleutianAI/f/pkg/ux"
)

var logger *logging.Logger

func main() {
	// Load degrades to defaults on anything short of a missing home
	// directory, so a warning is all a failure warrants here.
	if err := config.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	ux.InitColors()
	logger = newLogger(logging.LevelWarn)

	// ID-first syntax: `f <id> <action>` beats the command tree when the
	// first argument is made entirely of alphabet runes and an action
	// follows. `f d` stays the diff alias; `f d x` resolves ID "d".
	args := os.Args
	if len(args) >= 3 && isFileID(args[1]) {
		handleIDFirst(args[1], args[2])
		return
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger(level logging.Level) *logging.Logger {
	return logging.New(logging.Config{
		Level:   level,
		LogDir:  config.Global.LogDir,
		Service: "f",
	})
}

// isFileID reports whether the argument can only be an identifier:
// non-empty and composed solely of alphabet runes.
func isFileID(s string) bool {
	if s == "" {
		return false
	}
	alphabet := config.Global.Alphabet()
	for _, r := range s {
		if !alphabet.Contains(r) {
			return false
		}
	}
	return true
}

// handleIDFirst resolves the identifier and runs the action, mirroring
// the subcommand handlers but with id-specific failure messages.
func handleIDFirst(id, action string) {
	files := loadFiles(newSource())

	var file *gitstatus.GitFile
	switch match := gitstatus.Resolve(files, id); match.Kind {
	case gitstatus.Unique:
		file = match.File
	case gitstatus.Ambiguous:
		ux.Errorf("ID '%s' matches %d files - be more specific", id, match.Count)
		os.Exit(1)
	default:
		ux.Errorf("No file matches ID: %s", id)
		os.Exit(1)
	}

	switch action {
	case "a", "add":
		fmt.Printf("Adding: %s\n", file.RelPath)
		runGit("add", file.AbsPath)
	case "d", "diff":
		gitDiff(file)
	case "sd", "staged-diff":
		runGit("diff", "--staged", file.AbsPath)
	case "e", "v", "edit":
		runEditor(file.AbsPath)
	default:
		ux.Errorf("Unknown action: %s", action)
		os.Exit(1)
	}
}
