// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package gitstatus

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"

	"github.com/AleutianAI/f/pkg/logging"
)

// Watcher signals when the repository's visible state may have changed:
// worktree edits, staging updates, branch switches, commits.
//
// # Description
//
// Watches the worktree directories plus the git directory's HEAD, index
// and refs. Signals are coalesced, so one burst of filesystem events
// (an editor save, a git command) produces one refresh. A dropped
// signal is recovered by the watch view's ticker.
//
// # Thread Safety
//
// Start must be called once; Events may be read from any goroutine.
type Watcher struct {
	root    string
	gitDir  string
	fsw     *fsnotify.Watcher
	limiter *rate.Limiter
	events  chan struct{}
	logger  *logging.Logger
}

// NewWatcher creates a watcher for the worktree rooted at root.
//
// # Inputs
//
//   - root: Worktree root directory.
//   - logger: Structured logger; nil gets a default.
//
// # Outputs
//
//   - *Watcher: Ready-to-start watcher.
//   - error: Non-nil if the underlying notifier cannot be created.
func NewWatcher(root string, logger *logging.Logger) (*Watcher, error) {
	if logger == nil {
		logger = logging.Default()
	}

	gitDir := filepath.Join(root, ".git")
	if IsWorktree(gitDir) {
		if resolved, err := ResolveWorktreeGitDir(gitDir); err == nil {
			gitDir = resolved
		} else {
			logger.Warn("failed to resolve worktree git dir", "path", gitDir, "error", err)
		}
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &Watcher{
		root:   root,
		gitDir: gitDir,
		fsw:    fsw,
		// One signal per 200ms: an editor save fans out to several
		// events, a git command to dozens.
		limiter: rate.NewLimiter(rate.Every(200*time.Millisecond), 1),
		events:  make(chan struct{}, 1),
		logger:  logger,
	}, nil
}

// Events returns the refresh-signal channel. The channel carries no
// data; each receive means "re-read the status".
func (w *Watcher) Events() <-chan struct{} {
	return w.events
}

// Start registers the watch points and processes events until the
// context is cancelled. Run it in a goroutine.
func (w *Watcher) Start(ctx context.Context) {
	w.addGitDir()
	w.addWorktreeDirs()

	w.logger.Debug("watcher started", "root", w.root, "git_dir", w.gitDir)

	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watcher error", "error", err)

		case <-ctx.Done():
			w.logger.Debug("watcher stopping")
			return
		}
	}
}

// Stop releases the watcher's resources. Safe to call multiple times.
func (w *Watcher) Stop() error {
	return w.fsw.Close()
}

// addGitDir watches the files that change on staging, commit and
// checkout. The git dir itself is watched rather than individual files
// because git replaces HEAD and index by rename, which drops per-file
// watches.
func (w *Watcher) addGitDir() {
	if err := w.fsw.Add(w.gitDir); err != nil {
		w.logger.Warn("failed to watch git dir", "path", w.gitDir, "error", err)
	}

	refsHeads := filepath.Join(w.gitDir, "refs", "heads")
	if _, err := os.Stat(refsHeads); err == nil {
		if err := w.fsw.Add(refsHeads); err != nil {
			w.logger.Debug("failed to watch refs/heads", "path", refsHeads, "error", err)
		}
	}
}

// addWorktreeDirs registers every directory under the root except the
// git dir. Watch registration failures only degrade to ticker-driven
// refresh, so they are logged and skipped.
func (w *Watcher) addWorktreeDirs() {
	err := filepath.WalkDir(w.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if d.Name() == ".git" {
			return filepath.SkipDir
		}
		if err := w.fsw.Add(path); err != nil {
			w.logger.Debug("failed to watch directory", "path", path, "error", err)
		}
		return nil
	})
	if err != nil {
		w.logger.Warn("worktree walk failed", "root", w.root, "error", err)
	}
}

// handleEvent filters one fsnotify event and signals a refresh when it
// could change the listing.
func (w *Watcher) handleEvent(event fsnotify.Event) {
	// Lock files churn on every git command, including the ones this
	// program runs itself.
	if strings.HasSuffix(event.Name, ".lock") {
		return
	}

	if strings.HasPrefix(event.Name, w.gitDir+string(filepath.Separator)) {
		base := filepath.Base(event.Name)
		if base != "HEAD" && base != "index" && base != "packed-refs" &&
			!strings.Contains(event.Name, filepath.Join("refs", "heads")) {
			return
		}
		w.signal()
		return
	}

	if event.Op&fsnotify.Chmod != 0 && event.Op&^fsnotify.Chmod == 0 {
		return
	}

	// New directories need their own watch before their contents
	// produce events.
	if event.Op&fsnotify.Create != 0 {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := w.fsw.Add(event.Name); err != nil {
				w.logger.Debug("failed to watch new directory", "path", event.Name, "error", err)
			}
		}
	}

	w.signal()
}

// signal delivers one coalesced refresh notification. Events arriving
// while the limiter is closed or the channel is full are dropped; the
// watch view's ticker picks up anything missed.
func (w *Watcher) signal() {
	if !w.limiter.Allow() {
		return
	}
	select {
	case w.events <- struct{}{}:
	default:
	}
}

// IsWorktree reports whether the .git path is a linked-worktree
// reference. Linked worktrees have a .git file, not a directory, and
// their real git dir lives elsewhere.
func IsWorktree(gitPath string) bool {
	info, err := os.Stat(gitPath)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// ResolveWorktreeGitDir resolves the real git directory behind a
// linked-worktree .git file.
//
// # Inputs
//
//   - gitPath: Path to the .git reference file.
//
// # Outputs
//
//   - string: The git directory it points at.
//   - error: Non-nil if the file is unreadable or not a reference.
func ResolveWorktreeGitDir(gitPath string) (string, error) {
	content, err := os.ReadFile(gitPath)
	if err != nil {
		return "", err
	}

	// Format: "gitdir: /path/to/repo/.git/worktrees/name"
	line := strings.TrimSuffix(string(content), "\n")
	dir, ok := strings.CutPrefix(line, "gitdir: ")
	if !ok {
		return "", os.ErrInvalid
	}
	return dir, nil
}
