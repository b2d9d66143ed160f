// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package display renders changed-file listings for the terminal.
package display

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"

	"github.com/charmbracelet/lipgloss"
	"github.com/sourcegraph/go-diff/diff"

	"github.com/AleutianAI/f/cmd/f/internal/gitstatus"
	"github.com/AleutianAI/f/pkg/ux"
)

// inlineDiffMax is the largest total change count that still gets its
// diff printed under the listing line. Bigger diffs belong in `f d`.
const inlineDiffMax = 6

// ListFiles writes the grouped listing: a section per category, one row
// per file. Small unstaged or untracked changes also get an inline diff
// under their row.
//
// The files must already be in listing order (grouped by category);
// sections are emitted on category transitions.
func ListFiles(ctx context.Context, w io.Writer, files []gitstatus.GitFile) {
	if len(files) == 0 {
		fmt.Fprintln(w, ux.Styles.Dim.Render("No changed files"))
		return
	}

	lastType := gitstatus.FileType(-1)
	for i := range files {
		f := &files[i]

		if f.Type != lastType {
			if lastType != gitstatus.FileType(-1) {
				fmt.Fprintln(w)
			}
			fmt.Fprintln(w, ux.Header(f.Type.String(), HeaderStyle(f.Type)))
			lastType = f.Type
		}

		idCol := ux.Styles.ID.Width(5).Render(f.ID.Display)
		fmt.Fprintf(w, "  %s %s%s\n", idCol, f.RelPath, StatsLabel(f))

		if f.Type == gitstatus.Unstaged || f.Type == gitstatus.Untracked {
			if n := totalChanges(f); n > 0 && n <= inlineDiffMax {
				for _, line := range InlineDiff(ctx, f) {
					fmt.Fprintf(w, "         %s\n", line)
				}
			}
		}
	}
}

// HeaderStyle returns the section style for a category.
func HeaderStyle(t gitstatus.FileType) lipgloss.Style {
	switch t {
	case gitstatus.Unstaged:
		return ux.Styles.Unstaged
	case gitstatus.Untracked:
		return ux.Styles.Untracked
	default:
		return ux.Styles.Staged
	}
}

// StatsLabel renders the change-count suffix for one row, including its
// leading space. Untracked files show their size as "N lines"; tracked
// files show "+N/-M". Files without counts get no suffix.
func StatsLabel(f *gitstatus.GitFile) string {
	st := f.Stats
	if st == nil {
		return ""
	}

	if f.Type == gitstatus.Untracked {
		if st.Added == 0 {
			return ""
		}
		return " " + ux.Styles.Added.Render(fmt.Sprintf("%d lines", st.Added))
	}

	if st.Added == 0 && st.Removed == 0 {
		return ""
	}
	return fmt.Sprintf(" %s%s",
		ux.Styles.Added.Render(fmt.Sprintf("+%d", st.Added)),
		ux.Styles.Removed.Render(fmt.Sprintf("/-%d", st.Removed)))
}

func totalChanges(f *gitstatus.GitFile) uint32 {
	if f.Stats == nil {
		return 0
	}
	return f.Stats.Added + f.Stats.Removed
}

// InlineDiff returns the file's changed lines, additions green and
// removals red, without hunk or file headers.
//
// Untracked files are diffed against /dev/null so their whole content
// shows as additions.
func InlineDiff(ctx context.Context, f *gitstatus.GitFile) []string {
	var cmd *exec.Cmd
	if f.Type == gitstatus.Untracked {
		cmd = exec.CommandContext(ctx, "git", "diff", "--no-index", "--no-color", "/dev/null", f.AbsPath)
	} else {
		cmd = exec.CommandContext(ctx, "git", "diff", "--no-color", "--", f.AbsPath)
	}

	// --no-index exits 1 whenever the files differ, so the exit code
	// alone does not mean failure; empty output does.
	out, err := cmd.Output()
	if err != nil && len(out) == 0 {
		return nil
	}
	return diffBodyLines(out)
}

// diffBodyLines extracts and colors the +/- lines from a unified diff.
func diffBodyLines(raw []byte) []string {
	fileDiffs, err := diff.ParseMultiFileDiff(raw)
	if err != nil {
		return nil
	}

	var lines []string
	for _, fd := range fileDiffs {
		for _, hunk := range fd.Hunks {
			for _, line := range bytes.Split(hunk.Body, []byte{'\n'}) {
				if len(line) == 0 {
					continue
				}
				switch line[0] {
				case '+':
					lines = append(lines, ux.Styles.Added.Render(string(line)))
				case '-':
					lines = append(lines, ux.Styles.Removed.Render(string(line)))
				}
			}
		}
	}
	return lines
}
