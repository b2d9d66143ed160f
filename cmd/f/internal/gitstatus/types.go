// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package gitstatus enumerates a repository's changed files and carries
// the typeable identifiers f assigns to them.
//
// A single path can yield two entries: one staged, one unstaged. Entries
// are grouped by category (unstaged, untracked, staged) and ordered by
// modification time within each group, oldest first, so the most recently
// touched file sits nearest the prompt.
package gitstatus

import (
	"path/filepath"

	"github.com/AleutianAI/f/pkg/ident"
)

// FileType categorizes a changed file.
type FileType int

const (
	// Unstaged means the worktree differs from the index.
	Unstaged FileType = iota

	// Untracked means git does not know the file yet.
	Untracked

	// Staged means the index differs from HEAD.
	Staged
)

// String returns the category's display name.
func (t FileType) String() string {
	switch t {
	case Unstaged:
		return "Unstaged"
	case Untracked:
		return "Untracked"
	case Staged:
		return "Staged"
	default:
		return "Unknown"
	}
}

// DiffStats is the line-level change count for one file. For untracked
// files Added holds the file's total line count and Removed is zero.
type DiffStats struct {
	Added   uint32
	Removed uint32
}

// GitFile is one changed-file entry in the current listing.
//
// The same path appears twice when it has both staged and unstaged
// changes; the two entries share a fingerprint (it is derived from the
// path alone) and therefore a display ID.
type GitFile struct {
	// MTime is the file's modification time in Unix seconds, zero when
	// the file is gone (e.g. staged deletions).
	MTime int64

	// RelPath is the path relative to the repository root, as git
	// reports it.
	RelPath string

	// AbsPath is the absolute path on disk.
	AbsPath string

	// Type is the entry's category.
	Type FileType

	// ID is the typeable identifier pair (display prefix + fingerprint).
	ID ident.ID

	// Stats holds line-change counts, nil when unavailable (binary
	// files, unreadable paths).
	Stats *DiffStats
}

// Name returns the file's base name.
func (f *GitFile) Name() string {
	return filepath.Base(f.RelPath)
}

// =============================================================================
// Identifier Resolution
// =============================================================================

// MatchKind classifies the outcome of resolving typed input.
type MatchKind int

const (
	// NotFound means no file's fingerprint starts with the input.
	NotFound MatchKind = iota

	// Unique means exactly one file matched.
	Unique

	// Ambiguous means two or more files matched.
	Ambiguous
)

// Match is the result of resolving typed input against the file set.
type Match struct {
	Kind MatchKind

	// File is the matched entry; set only for Unique.
	File *GitFile

	// Count is the number of matching entries; set for Ambiguous.
	Count int
}

// Resolve matches typed input against each file's full fingerprint.
//
// # Description
//
// The input must be a prefix of the fingerprint, never of the shorter
// display ID: a prefix memorized when it was minimal keeps resolving
// after the display grows. Matching is case-sensitive with no
// normalization.
//
// # Inputs
//
//   - files: The current listing, in display order.
//   - input: The typed identifier.
//
// # Outputs
//
//   - Match: Unique with the file, Ambiguous with the count, or NotFound.
func Resolve(files []GitFile, input string) Match {
	var (
		count int
		last  *GitFile
	)
	for i := range files {
		if files[i].ID.Matches(input) {
			count++
			last = &files[i]
		}
	}
	switch count {
	case 0:
		return Match{Kind: NotFound}
	case 1:
		return Match{Kind: Unique, File: last, Count: 1}
	default:
		return Match{Kind: Ambiguous, Count: count}
	}
}

// FirstActionable returns the first unstaged or untracked entry, the
// file an action falls through to when no identifier was typed.
// Returns nil when everything is already staged or the listing is empty.
func FirstActionable(files []GitFile) *GitFile {
	for i := range files {
		if files[i].Type == Unstaged || files[i].Type == Untracked {
			return &files[i]
		}
	}
	return nil
}
