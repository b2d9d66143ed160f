// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package tui implements f's interactive views: the two-phase file
// picker and the live watch screen.
//
// # Thread Safety
//
// Models are driven by the bubbletea event loop and must not be touched
// from other goroutines.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/AleutianAI/f/cmd/f/internal/display"
	"github.com/AleutianAI/f/cmd/f/internal/gitstatus"
	"github.com/AleutianAI/f/pkg/ident"
	"github.com/AleutianAI/f/pkg/ux"
)

// =============================================================================
// Result
// =============================================================================

// PickResult is the terminal outcome of the selection phase.
type PickResult struct {
	// File is the chosen entry, nil when the session was cancelled.
	File *gitstatus.GitFile

	// Cancelled is true when the user backed out.
	Cancelled bool
}

// =============================================================================
// Model
// =============================================================================

// PickerModel narrows the file list by typed selection keys until one
// file remains chosen or the session is cancelled.
//
// Every entry gets an ephemeral key of uniform length; typing a key rune
// filters the list to entries whose key still matches, an exact key
// selects, and a dead-end prefix resets the filter. Esc clears, q and
// Ctrl-C cancel, even when those runes belong to the key alphabet.
type PickerModel struct {
	files    []gitstatus.GitFile
	keys     []string
	narrower *ident.Narrower
	result   PickResult
	quitting bool
}

// NewPicker creates the selection-phase model.
//
// # Inputs
//
//   - files: Listing in display order; must be non-empty.
//   - alphabet: The configured identifier alphabet.
//
// # Outputs
//
//   - PickerModel: Ready-to-use model for tea.NewProgram.
func NewPicker(files []gitstatus.GitFile, alphabet ident.Alphabet) PickerModel {
	keys := ident.SelectionKeys(len(files), alphabet)
	return PickerModel{
		files:    files,
		keys:     keys,
		narrower: ident.NewNarrower(keys, alphabet),
	}
}

// Init implements tea.Model.
func (m PickerModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	// Cancel and clear bindings win over alphabet runes.
	switch keyMsg.String() {
	case "q", "ctrl+c":
		m.narrower.Cancel()
		m.result = PickResult{Cancelled: true}
		m.quitting = true
		return m, tea.Quit

	case "esc":
		m.narrower.Clear()
		return m, nil
	}

	if keyMsg.Type == tea.KeyRunes && len(keyMsg.Runes) == 1 {
		m.narrower.Type(keyMsg.Runes[0])

		switch m.narrower.State() {
		case ident.Selected:
			m.result = PickResult{File: &m.files[m.narrower.Selected()]}
			m.quitting = true
			return m, tea.Quit

		case ident.Cancelled:
			m.result = PickResult{Cancelled: true}
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// View implements tea.Model.
func (m PickerModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(ux.Header("Select file", ux.Styles.Unstaged))
	b.WriteString("\n\n")

	typed := m.narrower.Prefix()
	lastType := gitstatus.FileType(-1)
	for _, i := range m.narrower.Matches() {
		f := &m.files[i]

		if f.Type != lastType {
			if lastType != gitstatus.FileType(-1) {
				b.WriteString("\n")
			}
			b.WriteString(ux.Header(f.Type.String(), display.HeaderStyle(f.Type)))
			b.WriteString("\n")
			lastType = f.Type
		}

		// The typed part of the key lights up as the filter grows.
		key := m.keys[i]
		b.WriteString(fmt.Sprintf("  %s%s  %s%s\n",
			ux.Styles.Typed.Render(key[:len(typed)]),
			ux.Styles.Remaining.Render(key[len(typed):]),
			f.RelPath,
			display.StatsLabel(f)))
	}

	b.WriteString("\n")
	b.WriteString(ux.Styles.Prompt.Render("Prefix: "))
	b.WriteString(ux.Styles.Typed.Render(typed))
	b.WriteString(" ")
	b.WriteString(ux.Styles.Dim.Render("(esc clears, q quits)"))
	b.WriteString("\n")
	return b.String()
}

// =============================================================================
// Runner
// =============================================================================

// Pick runs the selection phase and returns its outcome.
func Pick(files []gitstatus.GitFile, alphabet ident.Alphabet) (PickResult, error) {
	p := tea.NewProgram(NewPicker(files, alphabet))
	final, err := p.Run()
	if err != nil {
		return PickResult{}, err
	}

	model, ok := final.(PickerModel)
	if !ok {
		return PickResult{}, fmt.Errorf("unexpected model type from bubbletea: %T", final)
	}
	return model.result, nil
}
