// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package ident

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// AssignIDs Tests
// =============================================================================

func TestAssignIDs_MinimalUniquePrefixes(t *testing.T) {
	alphabet := Alphabet(DefaultAlphabet)

	// Fixed working tree whose fingerprints collide on leading symbols:
	// auth.go and cmd/app/errors.go share "fl", cmd/app/client.go shares
	// only the leading "f" with them.
	paths := []string{
		"auth.go",
		"cmd/app/errors.go",
		"cmd/app/client.go",
		"cache.go",
		"client.go",
	}

	ids := AssignIDs(paths, alphabet)
	require.Len(t, ids, len(paths))

	expected := []struct {
		display     string
		fingerprint string
	}{
		{"fld", "fldghgakadkf"},
		{"fla", "flagsadllkkk"},
		{"ff", "ffhgdafsksff"},
		{"a", "aslkhladfslk"},
		{"s", "slshkdlhdshg"},
	}

	for i, want := range expected {
		assert.Equal(t, want.display, ids[i].Display, "display for %s", paths[i])
		assert.Equal(t, want.fingerprint, ids[i].Fingerprint, "fingerprint for %s", paths[i])
	}
}

func TestAssignIDs_DisplaysAreMinimal(t *testing.T) {
	alphabet := Alphabet(DefaultAlphabet)
	paths := []string{
		"auth.go", "cmd/app/errors.go", "cmd/app/client.go",
		"cache.go", "client.go", "internal/server/router.go",
		"internal/store/query.go", "pkg/api/session.go",
	}

	ids := AssignIDs(paths, alphabet)
	require.Len(t, ids, len(paths))

	for i, id := range ids {
		// The display must be a prefix of the fingerprint.
		assert.True(t, strings.HasPrefix(id.Fingerprint, id.Display),
			"display %q is not a prefix of fingerprint %q", id.Display, id.Fingerprint)

		// No other entry's fingerprint may start with this display.
		for j, other := range ids {
			if j == i {
				continue
			}
			assert.False(t, strings.HasPrefix(other.Fingerprint, id.Display),
				"display %q for %s also prefixes %s", id.Display, paths[i], paths[j])
		}

		// One symbol shorter must be ambiguous, otherwise the display
		// is not minimal.
		display := []rune(id.Display)
		if len(display) == 1 {
			continue
		}
		shorter := string(display[:len(display)-1])
		unique := true
		for j, other := range ids {
			if j == i {
				continue
			}
			if strings.HasPrefix(other.Fingerprint, shorter) {
				unique = false
				break
			}
		}
		assert.False(t, unique, "display %q for %s could be one symbol shorter", id.Display, paths[i])
	}
}

func TestAssignIDs_DuplicatePathsShareDisplay(t *testing.T) {
	alphabet := Alphabet(DefaultAlphabet)

	// The same file can appear twice, once with staged and once with
	// unstaged changes. The two entries have identical fingerprints and
	// must not force each other's displays to the full twelve symbols.
	paths := []string{"auth.go", "auth.go", "cache.go"}

	ids := AssignIDs(paths, alphabet)
	require.Len(t, ids, 3)

	assert.Equal(t, ids[0], ids[1], "duplicate path entries must carry identical IDs")
	assert.Equal(t, "f", ids[0].Display)
	assert.Equal(t, "a", ids[2].Display)
}

func TestAssignIDs_PreservesInputOrder(t *testing.T) {
	alphabet := Alphabet(DefaultAlphabet)
	paths := []string{"client.go", "auth.go", "cache.go"}

	ids := AssignIDs(paths, alphabet)
	require.Len(t, ids, len(paths))

	for i, path := range paths {
		assert.Equal(t, Fingerprint(path, alphabet), ids[i].Fingerprint,
			"entry %d does not correspond to input path %s", i, path)
	}
}

func TestAssignIDs_Empty(t *testing.T) {
	ids := AssignIDs(nil, Alphabet(DefaultAlphabet))
	assert.Empty(t, ids)
}

func TestAssignIDs_UnicodeAlphabetCountsSymbols(t *testing.T) {
	// Prefix lengths are measured in symbols, not bytes. A multi-byte
	// alphabet must still produce one-symbol displays where unique.
	alphabet := Alphabet("αβγδ")

	ids := AssignIDs([]string{"src/main.rs"}, alphabet)
	require.Len(t, ids, 1)
	assert.Equal(t, "α", ids[0].Display)
}

// =============================================================================
// ID Tests
// =============================================================================

func TestID_Matches_FullFingerprintPrefix(t *testing.T) {
	id := ID{Display: "fld", Fingerprint: "fldghgakadkf"}

	// Typing more of the fingerprint than the display shows still
	// matches: users keep their memorized longer prefixes.
	assert.True(t, id.Matches("f"))
	assert.True(t, id.Matches("fld"))
	assert.True(t, id.Matches("fldgh"))
	assert.True(t, id.Matches("fldghgakadkf"))

	assert.False(t, id.Matches("fls"))
	assert.False(t, id.Matches("fldghgakadkfd"), "longer than the fingerprint never matches")
	assert.False(t, id.Matches("ld"), "non-leading substrings never match")
}

func TestID_String(t *testing.T) {
	id := ID{Display: "ff", Fingerprint: "ffhgdafsksff"}
	assert.Equal(t, "ff", id.String())
}
