// Copyright ©2026 The gwfc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pattern extracts and indexes the local color patterns a
// template observes in an example graph, and answers the arc-consistency
// queries the solver's Propagator needs: which colors remain supported
// at a template position given the current domains at every other
// position.
package pattern

import (
	"strconv"
	"strings"

	"github.com/graphwfc/gwfc/color"
	"github.com/graphwfc/gwfc/domain"
	"github.com/graphwfc/gwfc/graph"
	"github.com/graphwfc/gwfc/iso"
)

// Pattern is one color assignment observed for a template's node
// ordering, together with the number of times it was observed.
type Pattern struct {
	Colors []color.Color
	Weight uint64
}

// key returns a string uniquely identifying Colors, used to deduplicate
// patterns during extraction.
func (p Pattern) key() string {
	var b strings.Builder
	for i, c := range p.Colors {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatUint(uint64(c), 10))
	}
	return b.String()
}

// consistent reports whether p's color at every position other than
// skip lies within domains at that position.
func (p Pattern) consistent(domains []domain.Set, skip int) bool {
	for j, c := range p.Colors {
		if j == skip {
			continue
		}
		if !domains[j].Has(int(c)) {
			return false
		}
	}
	return true
}

// Store indexes the patterns a single template observed in an example
// graph, extracted once at setup and queried many times during solving.
type Store struct {
	tmplLen     int
	paletteSize int
	patterns    []Pattern

	// byPosColor[i][c] lists the indices into patterns of every pattern
	// whose color at position i is c, precomputed so Support need not
	// scan the whole pattern list for every candidate color.
	byPosColor []map[color.Color][]int
}

// Extract walks every isomorphism of tmpl into gi and records the color
// tuple it observes at each image, using colorOf to read a host node's
// color. Occurrences of the same color tuple are merged into a single
// Pattern with an incremented Weight, so that more frequent local
// configurations carry more weight during observation. paletteSize fixes
// the width of every domain.Set this Store produces, so it must match
// the palette size used for the domains it is queried against.
func Extract(tmpl *iso.Template, gi graph.Graph, attrName string, paletteSize int, colorOf func(id int64) (color.Color, bool)) *Store {
	n := tmpl.Len()
	s := &Store{
		tmplLen:     n,
		paletteSize: paletteSize,
		byPosColor:  make([]map[color.Color][]int, n),
	}
	for i := range s.byPosColor {
		s.byPosColor[i] = make(map[color.Color][]int)
	}

	byKey := make(map[string]int) // pattern key -> index into s.patterns

	seq := iso.Enumerate(tmpl, gi, attrName)
	for seq.Next() {
		img := seq.Image()
		colors := make([]color.Color, n)
		ok := true
		for i, id := range img {
			c, has := colorOf(id)
			if !has {
				ok = false
				break
			}
			colors[i] = c
		}
		if !ok {
			continue
		}

		p := Pattern{Colors: colors}
		key := p.key()
		if idx, seen := byKey[key]; seen {
			s.patterns[idx].Weight++
			continue
		}
		p.Weight = 1
		byKey[key] = len(s.patterns)
		s.patterns = append(s.patterns, p)
	}

	for idx, p := range s.patterns {
		for i, c := range p.Colors {
			s.byPosColor[i][c] = append(s.byPosColor[i][c], idx)
		}
	}
	return s
}

// Len returns the number of distinct patterns in the store.
func (s *Store) Len() int { return len(s.patterns) }

// Patterns returns every distinct pattern the store holds.
func (s *Store) Patterns() []Pattern { return s.patterns }

// Applicable returns every pattern whose color tuple lies entirely
// within domains, position by position.
func (s *Store) Applicable(domains []domain.Set) []Pattern {
	var out []Pattern
	for _, p := range s.patterns {
		if p.consistent(domains, -1) {
			out = append(out, p)
		}
	}
	return out
}

// Support returns the set of colors at position that are compatible
// with at least one pattern whose color at every other position lies
// within domains. A color c at position for which Support does not
// return c has no supporting pattern and may be pruned by the
// Propagator.
func (s *Store) Support(position int, domains []domain.Set) domain.Set {
	out := domain.Empty(s.paletteSize)
	if position < 0 || position >= s.tmplLen {
		return out
	}

	domains[position].Each(func(ci int) {
		c := color.Color(ci)
		for _, idx := range s.byPosColor[position][c] {
			if s.patterns[idx].consistent(domains, position) {
				out.Add(ci)
				return
			}
		}
	})
	return out
}

// SupportedWeights returns, for every color at position that Support
// would permit, the total weight of the patterns supporting it: the sum
// of Weight across every pattern whose color at position is c and whose
// color at every other position lies within domains. It is the input to
// the Observer's entropy and weighted-sampling computations.
func (s *Store) SupportedWeights(position int, domains []domain.Set) map[color.Color]uint64 {
	out := make(map[color.Color]uint64)
	if position < 0 || position >= s.tmplLen {
		return out
	}
	domains[position].Each(func(ci int) {
		c := color.Color(ci)
		var total uint64
		for _, idx := range s.byPosColor[position][c] {
			p := s.patterns[idx]
			if p.consistent(domains, position) {
				total += p.Weight
			}
		}
		if total > 0 {
			out[c] = total
		}
	})
	return out
}

