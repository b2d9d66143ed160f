// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package ident

// SelectionKeys produces n fixed-length keys for one interactive picker
// session.
//
// # Description
//
// Unlike fingerprints, selection keys are positional: key i is simply i
// rendered as an L-digit base-len(alphabet) numeral, most significant
// digit first, where L is the smallest length with len(alphabet)^L >= n.
// Two runs over the same list in the same order always get the same keys,
// but the keys say nothing about path identity and are discarded when the
// session ends.
//
// # Inputs
//
//   - n: Number of keys; 0 yields nil.
//   - alphabet: At least two distinct runes.
//
// # Outputs
//
//   - []string: n pairwise-distinct keys of equal length, in index order.
func SelectionKeys(n int, alphabet Alphabet) []string {
	if n <= 0 {
		return nil
	}

	base := len(alphabet)
	length := 1
	for capacity := base; capacity < n; capacity *= base {
		length++
	}

	keys := make([]string, n)
	buf := make([]rune, length)
	for i := 0; i < n; i++ {
		idx := i
		for pos := length - 1; pos >= 0; pos-- {
			buf[pos] = alphabet[idx%base]
			idx /= base
		}
		keys[i] = string(buf)
	}
	return keys
}
