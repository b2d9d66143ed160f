// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package ux provides terminal output styling for the f CLI.
//
// f leans on the terminal's own sixteen-color palette instead of fixed
// RGB values, so listings match whatever theme the user runs. Color can
// be disabled entirely; see InitColors.
package ux

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// f color palette - base ANSI so the user's terminal theme applies
var (
	ColorUnstaged  = lipgloss.Color("3") // yellow - files with unstaged edits
	ColorUntracked = lipgloss.Color("2") // green - files git doesn't know yet
	ColorStaged    = lipgloss.Color("6") // cyan - files in the index
	ColorAdded     = lipgloss.Color("2") // green - added line counts
	ColorRemoved   = lipgloss.Color("1") // red - removed line counts
	ColorID        = lipgloss.Color("6") // cyan - typeable identifiers
	ColorError     = lipgloss.Color("1") // red - failures
)

// Styles provides pre-configured lipgloss styles
var Styles = struct {
	// Category headers
	Unstaged  lipgloss.Style
	Untracked lipgloss.Style
	Staged    lipgloss.Style

	// Listing elements
	ID      lipgloss.Style
	Added   lipgloss.Style
	Removed lipgloss.Style
	Dim     lipgloss.Style
	Bold    lipgloss.Style

	// Picker elements
	Typed     lipgloss.Style
	Remaining lipgloss.Style
	Prompt    lipgloss.Style

	// Failures
	Error lipgloss.Style
}{
	Unstaged:  lipgloss.NewStyle().Foreground(ColorUnstaged),
	Untracked: lipgloss.NewStyle().Foreground(ColorUntracked),
	Staged:    lipgloss.NewStyle().Foreground(ColorStaged),

	ID:      lipgloss.NewStyle().Foreground(ColorID),
	Added:   lipgloss.NewStyle().Foreground(ColorAdded),
	Removed: lipgloss.NewStyle().Foreground(ColorRemoved),
	Dim:     lipgloss.NewStyle().Faint(true),
	Bold:    lipgloss.NewStyle().Bold(true),

	Typed:     lipgloss.NewStyle().Foreground(ColorID).Bold(true),
	Remaining: lipgloss.NewStyle().Foreground(ColorID),
	Prompt:    lipgloss.NewStyle().Foreground(ColorID),

	Error: lipgloss.NewStyle().Foreground(ColorError),
}

// Header renders a "── Label ──" section divider in the given style.
func Header(label string, style lipgloss.Style) string {
	return style.Render(fmt.Sprintf("── %s ──", label))
}

// Dim prints secondary text, like "No changed files".
func Dim(text string) {
	fmt.Println(Styles.Dim.Render(text))
}

// Error prints a failure message to stderr.
func Error(text string) {
	fmt.Fprintln(os.Stderr, Styles.Error.Render(text))
}

// Errorf prints a formatted failure message to stderr.
func Errorf(format string, args ...any) {
	Error(fmt.Sprintf(format, args...))
}
