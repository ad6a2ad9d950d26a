// Copyright ©2026 The gwfc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gcolor "github.com/graphwfc/gwfc/color"
	"github.com/graphwfc/gwfc/domain"
	"github.com/graphwfc/gwfc/graph/simple"
	"github.com/graphwfc/gwfc/iso"
)

// colorPath builds an undirected path of n nodes, colored alternately A/B.
func colorPath(n int, palette *gcolor.Palette) (*simple.UndirectedGraph, map[int64]gcolor.Color) {
	g := simple.NewUndirectedGraph()
	colors := make(map[int64]gcolor.Color)
	a := palette.Intern("A")
	b := palette.Intern("B")
	for i := 0; i < n; i++ {
		g.AddNode(simple.Node(i))
		if i%2 == 0 {
			colors[int64(i)] = a
		} else {
			colors[int64(i)] = b
		}
	}
	for i := 0; i < n-1; i++ {
		g.SetEdge(simple.Edge{F: simple.Node(i), T: simple.Node(i + 1)})
	}
	return g, colors
}

func edgeTemplate() *simple.UndirectedGraph {
	g := simple.NewUndirectedGraph()
	g.AddNode(simple.Node(0))
	g.AddNode(simple.Node(1))
	g.SetEdge(simple.Edge{F: simple.Node(0), T: simple.Node(1)})
	return g
}

func TestExtractPathProducesABAndBAPatterns(t *testing.T) {
	palette := gcolor.NewPalette()
	gi, colors := colorPath(6, palette)

	tmpl := iso.NewTemplate(edgeTemplate())
	store := Extract(tmpl, gi, "", palette.Len(), func(id int64) (gcolor.Color, bool) {
		c, ok := colors[id]
		return c, ok
	})

	require.Equal(t, 2, store.Len())
	var keys []string
	for _, p := range store.Patterns() {
		keys = append(keys, palette.Name(p.Colors[0])+palette.Name(p.Colors[1]))
	}
	assert.ElementsMatch(t, []string{"AB", "BA"}, keys)

	for _, p := range store.Patterns() {
		// A 6-node alternating path has 5 edges, each contributing one
		// ordered pair per direction: 10 images split evenly between the
		// AB and BA color tuples.
		assert.Equal(t, uint64(5), p.Weight)
	}
}

func TestSupportPrunesUnsupportedColor(t *testing.T) {
	palette := gcolor.NewPalette()
	gi, colors := colorPath(4, palette)
	a := palette.Intern("A")
	b := palette.Intern("B")
	c := palette.Intern("C") // never observed

	tmpl := iso.NewTemplate(edgeTemplate())
	store := Extract(tmpl, gi, "", palette.Len(), func(id int64) (gcolor.Color, bool) {
		col, ok := colors[id]
		return col, ok
	})

	domains := []domain.Set{domain.Full(3), domain.Full(3)}
	support := store.Support(1, domains)

	assert.True(t, support.Has(int(a)))
	assert.True(t, support.Has(int(b)))
	assert.False(t, support.Has(int(c)))
}

func TestSupportRespectsOtherPositionDomain(t *testing.T) {
	palette := gcolor.NewPalette()
	gi, colors := colorPath(4, palette)
	a := palette.Intern("A")
	b := palette.Intern("B")

	tmpl := iso.NewTemplate(edgeTemplate())
	store := Extract(tmpl, gi, "", palette.Len(), func(id int64) (gcolor.Color, bool) {
		col, ok := colors[id]
		return col, ok
	})

	// Pin position 0 to color A; position 1's support must then be just B.
	domains := []domain.Set{domain.Single(2, int(a)), domain.Full(2)}
	support := store.Support(1, domains)
	assert.False(t, support.Has(int(a)))
	assert.True(t, support.Has(int(b)))
}

func TestApplicableFiltersByDomains(t *testing.T) {
	palette := gcolor.NewPalette()
	gi, colors := colorPath(4, palette)
	a := palette.Intern("A")

	tmpl := iso.NewTemplate(edgeTemplate())
	store := Extract(tmpl, gi, "", palette.Len(), func(id int64) (gcolor.Color, bool) {
		col, ok := colors[id]
		return col, ok
	})

	domains := []domain.Set{domain.Single(2, int(a)), domain.Single(2, int(a))}
	applicable := store.Applicable(domains)
	assert.Empty(t, applicable) // no A-A pattern was ever observed
}
