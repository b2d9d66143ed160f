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
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	git "github.com/go-git/go-git/v5"
	"golang.org/x/sync/errgroup"

	"github.com/AleutianAI/f/pkg/ident"
	"github.com/AleutianAI/f/pkg/logging"
)

// ErrNotARepository is returned when the working directory is not inside
// a git worktree.
var ErrNotARepository = errors.New("not in a git repository")

// Source enumerates changed files for one repository.
//
// # Thread Safety
//
// Safe for concurrent use; every Files call builds a fresh snapshot.
type Source struct {
	wt       *git.Worktree
	root     string
	alphabet ident.Alphabet
	logger   *logging.Logger
}

// NewSource opens the repository containing the current directory.
//
// # Description
//
// Walks upward until a .git is found, the same discovery rule as the
// git CLI. The alphabet is fixed for the Source's lifetime because
// changing it would change every fingerprint.
//
// # Inputs
//
//   - alphabet: Identifier alphabet, already validated by the config layer.
//   - logger: Structured logger; nil gets a default.
//
// # Outputs
//
//   - *Source: Ready-to-use source.
//   - error: ErrNotARepository outside a worktree, otherwise the open failure.
func NewSource(alphabet ident.Alphabet, logger *logging.Logger) (*Source, error) {
	if logger == nil {
		logger = logging.Default()
	}

	repo, err := git.PlainOpenWithOptions(".", &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, ErrNotARepository
		}
		return nil, fmt.Errorf("open repository: %w", err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("resolve worktree: %w", err)
	}

	return &Source{
		wt:       wt,
		root:     wt.Filesystem.Root(),
		alphabet: alphabet,
		logger:   logger,
	}, nil
}

// Root returns the worktree root directory.
func (s *Source) Root() string {
	return s.root
}

// Files builds the current changed-file listing.
//
// # Description
//
// Enumerates worktree status and collects line-change statistics for
// the staged and unstaged sides concurrently. A path with both staged
// and unstaged changes yields two entries. The returned slice is
// grouped unstaged, untracked, staged, each group ordered by
// modification time ascending, with display IDs assigned across the
// whole set.
//
// Missing statistics are not an error: a failed numstat only blanks the
// +N/-M column.
//
// # Inputs
//
//   - ctx: Cancels the underlying git invocations.
//
// # Outputs
//
//   - []GitFile: The listing, empty (not nil) for a clean tree.
//   - error: Non-nil if status enumeration fails.
func (s *Source) Files(ctx context.Context) ([]GitFile, error) {
	var (
		status        git.Status
		unstagedStats map[string]DiffStats
		stagedStats   map[string]DiffStats
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		status, err = s.wt.Status()
		if err != nil {
			return fmt.Errorf("git status failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		unstagedStats = s.numstat(gctx, false)
		return nil
	})
	g.Go(func() error {
		stagedStats = s.numstat(gctx, true)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Map iteration order is random; sort so equal mtimes keep a
	// stable path order across runs.
	paths := make([]string, 0, len(status))
	for path := range status {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	var unstaged, untracked, staged []GitFile
	for _, path := range paths {
		st := status[path]
		abs := filepath.Join(s.root, path)
		mtime := fileMTime(abs)

		if st.Worktree == git.Untracked {
			var stats *DiffStats
			if lines, ok := countLines(abs); ok {
				stats = &DiffStats{Added: lines}
			}
			untracked = append(untracked, GitFile{
				MTime:   mtime,
				RelPath: path,
				AbsPath: abs,
				Type:    Untracked,
				Stats:   stats,
			})
			continue
		}

		if st.Staging != git.Unmodified && st.Staging != git.Untracked {
			staged = append(staged, GitFile{
				MTime:   mtime,
				RelPath: path,
				AbsPath: abs,
				Type:    Staged,
				Stats:   statsFor(stagedStats, path),
			})
		}
		if st.Worktree != git.Unmodified {
			unstaged = append(unstaged, GitFile{
				MTime:   mtime,
				RelPath: path,
				AbsPath: abs,
				Type:    Unstaged,
				Stats:   statsFor(unstagedStats, path),
			})
		}
	}

	sortByMTime(unstaged)
	sortByMTime(untracked)
	sortByMTime(staged)

	files := make([]GitFile, 0, len(unstaged)+len(untracked)+len(staged))
	files = append(files, unstaged...)
	files = append(files, untracked...)
	files = append(files, staged...)

	relPaths := make([]string, len(files))
	for i := range files {
		relPaths[i] = files[i].RelPath
	}
	ids := ident.AssignIDs(relPaths, s.alphabet)
	for i := range files {
		files[i].ID = ids[i]
	}

	s.logger.Debug("status loaded",
		"unstaged", len(unstaged),
		"untracked", len(untracked),
		"staged", len(staged),
	)
	return files, nil
}

// numstat collects per-file line-change counts from git.
//
// go-git has no numstat equivalent, so this shells out the way the git
// CLI's own porcelain consumers do. Failure is soft: the listing just
// loses its +N/-M column.
func (s *Source) numstat(ctx context.Context, cached bool) map[string]DiffStats {
	args := []string{"diff", "--numstat"}
	if cached {
		args = append(args, "--cached")
	}

	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = s.root
	out, err := cmd.Output()
	if err != nil {
		s.logger.Debug("numstat failed", "cached", cached, "error", err)
		return nil
	}
	return parseNumstat(string(out))
}

// parseNumstat parses `git diff --numstat` output: one
// "added<TAB>removed<TAB>path" line per file. Binary files report "-"
// for both counts, which parses to zero.
func parseNumstat(out string) map[string]DiffStats {
	stats := make(map[string]DiffStats)
	for _, line := range strings.Split(out, "\n") {
		parts := strings.Split(line, "\t")
		if len(parts) < 3 {
			continue
		}
		added, _ := strconv.ParseUint(parts[0], 10, 32)
		removed, _ := strconv.ParseUint(parts[1], 10, 32)
		stats[parts[2]] = DiffStats{Added: uint32(added), Removed: uint32(removed)}
	}
	return stats
}

// statsFor looks up a path's stats, returning nil when absent so the
// caller can distinguish "no data" from "zero changes".
func statsFor(stats map[string]DiffStats, path string) *DiffStats {
	if st, ok := stats[path]; ok {
		return &st
	}
	return nil
}

// countLines counts text lines the way an editor shows them: a trailing
// newline does not open a final empty line. Binary (non-UTF-8) and
// unreadable files report no count.
func countLines(path string) (uint32, bool) {
	data, err := os.ReadFile(path)
	if err != nil || !utf8.Valid(data) {
		return 0, false
	}
	if len(data) == 0 {
		return 0, true
	}
	n := bytes.Count(data, []byte{'\n'})
	if data[len(data)-1] != '\n' {
		n++
	}
	return uint32(n), true
}

// fileMTime returns the path's modification time in Unix seconds, zero
// when the file cannot be statted (deleted entries).
func fileMTime(path string) int64 {
	info, err := os.Stat(path)
	if err != nil {
		return 0
	}
	return info.ModTime().Unix()
}

// sortByMTime orders entries oldest first, preserving path order for
// equal times.
func sortByMTime(files []GitFile) {
	sort.SliceStable(files, func(i, j int) bool {
		return files[i].MTime < files[j].MTime
	})
}
