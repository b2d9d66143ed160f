// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package ident

import "hash/fnv"

// FingerprintLen is the number of alphabet symbols in every fingerprint.
//
// Twelve symbols keep collisions among realistic working-tree file counts
// vanishingly rare even for a small alphabet (8^12 ≈ 6.9e10 combinations),
// while the fixed length keeps prefix matching trivial.
const FingerprintLen = 12

// Fingerprint maps a path to its fixed-length identifier over the given
// alphabet.
//
// # Description
//
// Hashes the path's raw bytes with 64-bit FNV-1a, then encodes the hash as
// exactly FingerprintLen symbols by repeated modulo/divide over the
// alphabet size, least-significant digit first. The result is a pure
// function of (path, alphabet): the same inputs always produce the same
// fingerprint, and changing the alphabet invalidates all previously
// computed fingerprints.
//
// # Inputs
//
//   - path: Any string; typically a repository-relative file path.
//   - alphabet: At least two distinct runes.
//
// # Outputs
//
//   - string: FingerprintLen symbols drawn from alphabet.
func Fingerprint(path string, alphabet Alphabet) string {
	h := fnv.New64a()
	h.Write([]byte(path))
	v := h.Sum64()

	base := uint64(len(alphabet))
	out := make([]rune, FingerprintLen)
	for i := range out {
		out[i] = alphabet[v%base]
		v /= base
	}
	return string(out)
}
