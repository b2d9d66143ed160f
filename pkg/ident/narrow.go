// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package ident

import "strings"

// NarrowState identifies the narrowing machine's current state.
type NarrowState int

const (
	// Collecting means more input is needed; the accumulated prefix is
	// available via Prefix.
	Collecting NarrowState = iota

	// Selected is terminal: exactly one key was matched.
	Selected

	// Cancelled is terminal: the session was abandoned.
	Cancelled
)

// Narrower consumes keystrokes one at a time against a fixed key set,
// narrowing toward a single selection.
//
// # Description
//
// The machine starts in Collecting with an empty prefix. Each typed
// alphabet rune extends the prefix: an exact key match selects that key's
// index (terminal); a prefix no key starts with silently resets to an
// empty prefix (the over-specified narrowing is discarded, not treated as
// an error); anything else keeps collecting. An explicit clear resets the
// prefix without terminating. An explicit cancel terminates the session,
// as does any rune outside the alphabet that the caller has not already
// mapped to clear or cancel.
//
// There are no timeout transitions; the machine simply waits for the next
// event. Terminal states are absorbing: further events are ignored.
//
// # Thread Safety
//
// Not safe for concurrent use. A Narrower belongs to a single input loop.
type Narrower struct {
	alphabet Alphabet
	keys     []string

	state    NarrowState
	prefix   string
	selected int
}

// NewNarrower creates a machine over the session's keys, which must all be
// the same length and pairwise distinct (as produced by SelectionKeys).
func NewNarrower(keys []string, alphabet Alphabet) *Narrower {
	return &Narrower{
		alphabet: alphabet,
		keys:     keys,
		state:    Collecting,
		selected: -1,
	}
}

// State returns the current state.
func (n *Narrower) State() NarrowState {
	return n.state
}

// Prefix returns the input accumulated so far. Meaningful only while
// Collecting.
func (n *Narrower) Prefix() string {
	return n.prefix
}

// Selected returns the index of the matched key, or -1 unless the machine
// is in the Selected state.
func (n *Narrower) Selected() int {
	if n.state != Selected {
		return -1
	}
	return n.selected
}

// Matches returns the indexes of all keys the current prefix still
// narrows to, in key order. With an empty prefix that is every index.
func (n *Narrower) Matches() []int {
	matches := make([]int, 0, len(n.keys))
	for i, k := range n.keys {
		if strings.HasPrefix(k, n.prefix) {
			matches = append(matches, i)
		}
	}
	return matches
}

// Type feeds one typed rune into the machine.
func (n *Narrower) Type(r rune) {
	if n.state != Collecting {
		return
	}
	if !n.alphabet.Contains(r) {
		n.state = Cancelled
		return
	}

	next := n.prefix + string(r)
	for i, k := range n.keys {
		if k == next {
			n.state = Selected
			n.selected = i
			n.prefix = next
			return
		}
	}

	for _, k := range n.keys {
		if strings.HasPrefix(k, next) {
			n.prefix = next
			return
		}
	}

	// Over-specified: discard the narrowing and start again.
	n.prefix = ""
}

// Clear resets the accumulated prefix without terminating.
func (n *Narrower) Clear() {
	if n.state != Collecting {
		return
	}
	n.prefix = ""
}

// Cancel terminates the session.
func (n *Narrower) Cancel() {
	if n.state != Collecting {
		return
	}
	n.state = Cancelled
}
