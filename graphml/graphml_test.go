// Copyright ©2026 The gwfc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graphml

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphwfc/gwfc/color"
	"github.com/graphwfc/gwfc/graph"
)

const sampleUndirected = `<?xml version="1.0"?>
<graphml>
  <key id="k0" for="node" attr.name="value"/>
  <key id="k1" for="edge" attr.name="type"/>
  <graph edgedefault="undirected">
    <node id="b"><data key="k0">A</data></node>
    <node id="a"><data key="k0">B</data></node>
    <edge source="a" target="b"><data key="k1">road</data></edge>
  </graph>
</graphml>`

const sampleDirected = `<?xml version="1.0"?>
<graphml>
  <graph edgedefault="directed">
    <node id="x"/>
    <node id="y"/>
    <edge source="x" target="y"/>
  </graph>
</graphml>`

func TestDecodeUndirectedAssignsDenseIDsInLexicalOrder(t *testing.T) {
	palette := color.NewPalette()
	g, err := Decode(strings.NewReader(sampleUndirected), "value", "type", palette)
	require.NoError(t, err)
	assert.False(t, g.Directed)

	// "a" sorts before "b", so a gets ID 0 and b gets ID 1.
	assert.Equal(t, "a", g.Names[0])
	assert.Equal(t, "b", g.Names[1])

	assert.True(t, g.G.HasEdgeBetween(0, 1))

	colorB, ok := palette.Lookup("A")
	require.True(t, ok)
	assert.Equal(t, colorB, g.Colors[1]) // node b was colored A

	e := g.G.Edge(0, 1)
	require.NotNil(t, e)
	attr, ok := e.(graph.Attributed)
	require.True(t, ok)
	v, has := attr.Attr()
	require.True(t, has)
	assert.Equal(t, "road", v)
}

func TestDecodeDirectedPreservesDirection(t *testing.T) {
	palette := color.NewPalette()
	g, err := Decode(strings.NewReader(sampleDirected), "", "", palette)
	require.NoError(t, err)
	require.True(t, g.Directed)

	d, ok := g.G.(graph.Directed)
	require.True(t, ok)
	assert.True(t, d.HasEdgeFromTo(0, 1))
	assert.False(t, d.HasEdgeFromTo(1, 0))
}

func TestEncodeRoundTripsNodeNamesAndColors(t *testing.T) {
	palette := color.NewPalette()
	g, err := Decode(strings.NewReader(sampleUndirected), "value", "type", palette)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, g, "value", g.Colors, palette))

	out := buf.String()
	assert.Contains(t, out, `id="a"`)
	assert.Contains(t, out, `id="b"`)
	assert.Contains(t, out, "A")
	assert.Contains(t, out, "B")

	// Round-trip through Decode again and confirm the same graph shape.
	g2, err := Decode(strings.NewReader(out), "value", "", palette)
	require.NoError(t, err)
	assert.True(t, g2.G.HasEdgeBetween(g2.ids["a"], g2.ids["b"]))
}
