// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package ident

import "strings"

// ID is the identifier pair carried by every file in the current set.
//
// Display is the shortest prefix of Fingerprint that is unique among the
// set the ID was assigned against; it is purely presentational and is
// recomputed on every invocation. Fingerprint is the stable identity key.
// The two fields must never be collapsed into one: resolution matches
// input against Fingerprint so that a once-minimal prefix a user memorized
// stays valid after the displayed prefix lengthens.
type ID struct {
	Display     string
	Fingerprint string
}

// String returns the display form.
func (id ID) String() string {
	return id.Display
}

// Matches reports whether input is a case-sensitive prefix of the full
// fingerprint. No normalization or fuzzy matching is applied.
func (id ID) Matches(input string) bool {
	return strings.HasPrefix(id.Fingerprint, input)
}

// AssignIDs computes the identifier pair for each path in the current set.
//
// # Description
//
// Fingerprints every path, then finds for each entry the minimal prefix
// length (starting at 1) at which its fingerprint prefix is not shared by
// any entry with a different path string. Entries with identical path
// strings never collide with each other: the same file can legitimately
// appear twice (once staged, once unstaged) and both occurrences keep the
// minimal prefix computed against all other distinct paths.
//
// Each entry's length is searched independently, so display lengths need
// not be uniform across the set. In the practically unreachable case that
// two distinct paths share all FingerprintLen symbols, the display
// degrades to the full fingerprint.
//
// # Inputs
//
//   - paths: Ordered path strings; duplicates allowed.
//   - alphabet: At least two distinct runes.
//
// # Outputs
//
//   - []ID: Parallel to paths; nil for empty input.
func AssignIDs(paths []string, alphabet Alphabet) []ID {
	if len(paths) == 0 {
		return nil
	}

	// Rune slices so prefix lengths count symbols, not bytes.
	fps := make([][]rune, len(paths))
	for i, p := range paths {
		fps[i] = []rune(Fingerprint(p, alphabet))
	}

	ids := make([]ID, len(paths))
	for i, fp := range fps {
		length := 1
		for length < len(fp) && !uniqueAt(fps, paths, i, length) {
			length++
		}
		ids[i] = ID{
			Display:     string(fp[:length]),
			Fingerprint: string(fp),
		}
	}
	return ids
}

// uniqueAt reports whether entry i's length-sized fingerprint prefix is
// unshared among all entries whose path differs from entry i's.
func uniqueAt(fps [][]rune, paths []string, i, length int) bool {
	for j, other := range fps {
		if j == i || paths[j] == paths[i] {
			continue
		}
		if string(other[:length]) == string(fps[i][:length]) {
			return false
		}
	}
	return true
}
