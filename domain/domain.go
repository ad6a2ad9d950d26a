// Copyright ©2026 The gwfc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package domain provides the fixed-width bitset-per-node domain storage
// used by the solver, modeled on the finite-domain BitSet of a
// constraint-propagation engine (github.com/gitrdm/gokando's
// pkg/minikanren/fd.go) but specialized for mutation in place: the
// Propagator needs to shrink one node's Set and learn immediately whether
// it changed or went empty, rather than allocate a new Set per edit.
package domain

import "math/bits"

// Set is a fixed-width bitset over a color.Palette's index space. The bit
// at position i is set iff the palette color with that index is still
// permitted.
type Set struct {
	n     int
	words []uint64
}

// Full returns a Set with all n colors permitted.
func Full(n int) Set {
	s := Set{n: n, words: make([]uint64, (n+63)/64)}
	for i := 0; i < n; i++ {
		s.words[i/64] |= 1 << uint(i%64)
	}
	return s
}

// Empty returns a Set with no colors permitted.
func Empty(n int) Set {
	return Set{n: n, words: make([]uint64, (n+63)/64)}
}

// Single returns a Set containing only color i.
func Single(n, i int) Set {
	s := Empty(n)
	s.Add(i)
	return s
}

// Has reports whether color i is permitted.
func (s Set) Has(i int) bool {
	if i < 0 || i >= s.n {
		return false
	}
	return s.words[i/64]&(1<<uint(i%64)) != 0
}

// Add permits color i.
func (s Set) Add(i int) {
	if i < 0 || i >= s.n {
		return
	}
	s.words[i/64] |= 1 << uint(i%64)
}

// Remove forbids color i.
func (s Set) Remove(i int) {
	if i < 0 || i >= s.n {
		return
	}
	s.words[i/64] &^= 1 << uint(i%64)
}

// Count returns the number of permitted colors, the domain's cardinality.
func (s Set) Count() int {
	c := 0
	for _, w := range s.words {
		c += bits.OnesCount64(w)
	}
	return c
}

// IsEmpty reports whether no color is permitted: a contradiction.
func (s Set) IsEmpty() bool {
	for _, w := range s.words {
		if w != 0 {
			return false
		}
	}
	return true
}

// SingleColor returns the sole permitted color and true, if s.Count() == 1, or
// (0, false) otherwise.
func (s Set) SingleColor() (int, bool) {
	found := -1
	for wi, w := range s.words {
		if w == 0 {
			continue
		}
		if found != -1 || bits.OnesCount64(w) > 1 {
			return 0, false
		}
		found = wi*64 + bits.TrailingZeros64(w)
	}
	if found == -1 {
		return 0, false
	}
	return found, true
}

// Each calls f for every permitted color, in ascending order.
func (s Set) Each(f func(i int)) {
	for wi, w := range s.words {
		for w != 0 {
			lsb := w & -w
			off := bits.TrailingZeros64(w)
			f(wi*64 + off)
			w &^= lsb
		}
	}
}

// Clone returns an independent copy of s.
func (s Set) Clone() Set {
	words := make([]uint64, len(s.words))
	copy(words, s.words)
	return Set{n: s.n, words: words}
}

// IntersectMask intersects s in place with mask, returning whether s
// changed and whether it became empty (a contradiction). mask must have
// been produced over the same palette (same n) as s.
func (s Set) IntersectMask(mask Set) (changed, empty bool) {
	for i := range s.words {
		next := s.words[i] & mask.words[i]
		if next != s.words[i] {
			changed = true
			s.words[i] = next
		}
	}
	return changed, s.IsEmpty()
}

// CollapseTo sets s to contain only color i, in place, returning whether s
// changed and whether the result is empty (i was not already permitted).
func (s Set) CollapseTo(i int) (changed, empty bool) {
	wasSingleton := s.Count() == 1
	wasPermitted := s.Has(i)
	for wi := range s.words {
		s.words[wi] = 0
	}
	if wasPermitted {
		s.Add(i)
	}
	changed = !(wasSingleton && wasPermitted)
	return changed, !wasPermitted
}
