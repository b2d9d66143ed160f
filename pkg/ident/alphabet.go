// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package ident assigns short, human-typeable, collision-free identifiers
// to file paths.
//
// # Identifier Stability
//
// Every path gets a fixed-length Fingerprint derived purely from the path
// string and the alphabet, so it never changes between runs. What is shown
// to the user (the Display prefix) is the shortest prefix of that
// fingerprint that is unique within the current file set, so it may grow
// or shrink as other files come and go. Resolution always matches typed
// input against the full fingerprint, never the display prefix: an
// identifier a user memorized keeps working even after new files force
// the displayed prefix to lengthen.
//
// Selection keys (see SelectionKeys) are the structurally distinct sibling
// scheme: positional rather than content-derived, and valid only for the
// lifetime of one interactive picker session.
//
// # Thread Safety
//
// All functions are pure and safe for concurrent use. Narrower is the one
// stateful type; it is single-consumer and must not be shared between
// goroutines.
package ident

// DefaultAlphabet is the digit set used when no alphabet is configured.
// These are home-row keys, ordered by typing comfort rather than
// alphabetically.
const DefaultAlphabet = "dfghklsa"

// Alphabet is the ordered set of distinct characters used as the digit set
// for every identifier encoding. Callers (the configuration layer) are
// responsible for supplying at least two distinct runes; no function in
// this package retains an Alphabet between calls.
type Alphabet []rune

// Contains reports whether r is one of the alphabet's runes.
func (a Alphabet) Contains(r rune) bool {
	for _, c := range a {
		if c == r {
			return true
		}
	}
	return false
}

// String returns the alphabet's runes as a string, in order.
func (a Alphabet) String() string {
	return string([]rune(a))
}
