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
	"errors"
	"os"
	"os/exec"

	"github.com/AleutianAI/f/cmd/f/config"
	"github.com/AleutianAI/f/cmd/f/internal/gitstatus"
	"github.com/AleutianAI/f/pkg/ux"
)

// newSource opens the enclosing repository or exits with the failure.
func newSource() *gitstatus.Source {
	src, err := gitstatus.NewSource(config.Global.Alphabet(), logger)
	if err != nil {
		ux.Errorf("Error: %v", err)
		os.Exit(1)
	}
	return src
}

// loadFiles reads the current listing or exits with the failure.
func loadFiles(src *gitstatus.Source) []gitstatus.GitFile {
	files, err := src.Files(context.Background())
	if err != nil {
		ux.Errorf("Error: %v", err)
		os.Exit(1)
	}
	return files
}

// resolveTarget picks the file a command operates on: the resolved
// identifier when one was given, the first actionable file otherwise.
// Resolution failures print and exit; they are outcomes, not faults.
func resolveTarget(id string) *gitstatus.GitFile {
	files := loadFiles(newSource())

	if id == "" {
		file := gitstatus.FirstActionable(files)
		if file == nil {
			ux.Error("No matching file found")
			os.Exit(1)
		}
		return file
	}

	switch match := gitstatus.Resolve(files, id); match.Kind {
	case gitstatus.Unique:
		return match.File
	case gitstatus.Ambiguous:
		ux.Errorf("ID matches %d files - be more specific", match.Count)
		os.Exit(1)
	default:
		ux.Error("No matching file found")
		os.Exit(1)
	}
	return nil
}

// optionalID extracts the id argument commands accept.
func optionalID(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}

// gitDiff shows the working diff for one file. Untracked files have no
// index entry, so they diff against /dev/null.
func gitDiff(file *gitstatus.GitFile) {
	if file.Type == gitstatus.Untracked {
		runGit("diff", "--no-index", "/dev/null", file.AbsPath)
		return
	}
	runGit("diff", file.AbsPath)
}

// runGit hands the terminal to git and exits with its code.
func runGit(args ...string) {
	cmd := exec.Command("git", args...)
	runAndExit(cmd, "git")
}

// runEditor opens the path in the configured editor and exits with its
// code.
func runEditor(path string) {
	editor := config.Global.EditorCommand()
	cmd := exec.Command(editor, path)
	runAndExit(cmd, editor)
}

// runAndExit runs an external command with inherited stdio and does not
// return: the command's exit code becomes f's exit code.
func runAndExit(cmd *exec.Cmd, name string) {
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if err == nil {
		os.Exit(0)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		os.Exit(exitErr.ExitCode())
	}

	ux.Errorf("Failed to exec %s: %v", name, err)
	os.Exit(1)
}
