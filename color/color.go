// Copyright ©2026 The gwfc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package color provides the opaque Color handle and Palette interning
// table used to represent node colors read from a graph's node attribute,
// in the spirit of gonum.org/v1/gonum/graph/coloring's use of small
// integer color values, generalized here to an interned string palette
// since colors are read from arbitrary GraphML attribute values rather
// than assigned by an algorithm.
package color

import "sort"

// Color is an opaque handle into a Palette. Colors are compared by
// equality only; they carry no order beyond the stable enumeration index
// used for bitset indexing (a Color's own value is its bit position).
type Color uint32

// Palette interns the distinct attribute values observed on a graph's
// node-color attribute, assigning each a stable Color in first-seen
// order.
type Palette struct {
	index map[string]Color
	names []string
}

// NewPalette returns an empty Palette.
func NewPalette() *Palette {
	return &Palette{index: make(map[string]Color)}
}

// Intern returns the Color for name, assigning it a new one if name has
// not been seen before.
func (p *Palette) Intern(name string) Color {
	if c, ok := p.index[name]; ok {
		return c
	}
	c := Color(len(p.names))
	p.index[name] = c
	p.names = append(p.names, name)
	return c
}

// Lookup returns the Color already assigned to name, and whether it has
// been interned.
func (p *Palette) Lookup(name string) (Color, bool) {
	c, ok := p.index[name]
	return c, ok
}

// Name returns the attribute value that c was interned from.
func (p *Palette) Name(c Color) string {
	return p.names[c]
}

// Len returns the number of distinct colors in the palette.
func (p *Palette) Len() int {
	return len(p.names)
}

// Sets groups node IDs by their assigned color. Each group is sorted by
// ascending node ID, in the manner of gonum.org/v1/gonum/graph/coloring.Sets.
func Sets(colors map[int64]Color) map[Color][]int64 {
	sets := make(map[Color][]int64)
	for id, c := range colors {
		sets[c] = append(sets[c], id)
	}
	for _, s := range sets {
		sort.Slice(s, func(i, j int) bool { return s[i] < s[j] })
	}
	return sets
}
