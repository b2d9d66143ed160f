// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package tui

import (
	"bytes"
	"context"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/AleutianAI/f/cmd/f/internal/display"
	"github.com/AleutianAI/f/cmd/f/internal/gitstatus"
	"github.com/AleutianAI/f/pkg/ux"
)

// =============================================================================
// Messages
// =============================================================================

// tickMsg fires on the periodic refresh interval.
type tickMsg struct{}

// changeMsg fires when the filesystem watcher saw repository activity.
type changeMsg struct{}

// filesLoadedMsg carries one status snapshot.
type filesLoadedMsg struct {
	files []gitstatus.GitFile
	err   error
}

// =============================================================================
// Model
// =============================================================================

// WatchModel is the live status view: the grouped listing inside a
// scrollable viewport, reloaded on a ticker and on watcher signals.
type WatchModel struct {
	src      *gitstatus.Source
	watcher  *gitstatus.Watcher
	pattern  string
	interval time.Duration

	viewport viewport.Model
	ready    bool
	lastErr  error
	quitting bool
}

// NewWatch creates the watch model.
//
// # Inputs
//
//   - src: Status source for the repository being watched.
//   - watcher: Change watcher, already started; may be nil (ticker only).
//   - pattern: Optional doublestar filter over relative paths.
//   - interval: Periodic refresh interval.
func NewWatch(src *gitstatus.Source, watcher *gitstatus.Watcher, pattern string, interval time.Duration) WatchModel {
	return WatchModel{
		src:      src,
		watcher:  watcher,
		pattern:  pattern,
		interval: interval,
	}
}

// Init implements tea.Model.
func (m WatchModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.load(), m.tick()}
	if m.watcher != nil {
		cmds = append(cmds, m.awaitChange())
	}
	return tea.Batch(cmds...)
}

// load reads one status snapshot off the event loop.
func (m WatchModel) load() tea.Cmd {
	return func() tea.Msg {
		files, err := m.src.Files(context.Background())
		return filesLoadedMsg{files: files, err: err}
	}
}

func (m WatchModel) tick() tea.Cmd {
	return tea.Tick(m.interval, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}

// awaitChange blocks on the watcher until it signals, then requeues
// itself from Update.
func (m WatchModel) awaitChange() tea.Cmd {
	return func() tea.Msg {
		<-m.watcher.Events()
		return changeMsg{}
	}
}

// Update implements tea.Model.
func (m WatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		headerHeight := 2
		footerHeight := 1
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-headerHeight-footerHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - headerHeight - footerHeight
		}
		return m, nil

	case tickMsg:
		return m, tea.Batch(m.load(), m.tick())

	case changeMsg:
		return m, tea.Batch(m.load(), m.awaitChange())

	case filesLoadedMsg:
		if msg.err != nil {
			m.lastErr = msg.err
			return m, nil
		}
		m.lastErr = nil
		m.viewport.SetContent(m.render(msg.files))
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	return m, nil
}

// render produces the viewport content for one snapshot.
func (m WatchModel) render(files []gitstatus.GitFile) string {
	if m.pattern != "" {
		if filtered, err := gitstatus.FilterFiles(files, m.pattern); err == nil {
			files = filtered
		}
	}

	var buf bytes.Buffer
	display.ListFiles(context.Background(), &buf, files)
	return buf.String()
}

// View implements tea.Model.
func (m WatchModel) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}

	footer := ux.Styles.Dim.Render("q to quit")
	if m.lastErr != nil {
		footer = ux.Styles.Error.Render("refresh failed: " + m.lastErr.Error())
	}

	return ux.Header("Watching", ux.Styles.Staged) + "\n\n" +
		m.viewport.View() + "\n" + footer
}

// =============================================================================
// Runner
// =============================================================================

// Watch runs the live status view until the user quits.
func Watch(src *gitstatus.Source, watcher *gitstatus.Watcher, pattern string, interval time.Duration) error {
	p := tea.NewProgram(NewWatch(src, watcher, pattern, interval), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
