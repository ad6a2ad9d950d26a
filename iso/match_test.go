// Copyright ©2026 The gwfc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iso

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphwfc/gwfc/graph/simple"
)

// path builds an undirected path 0-1-2-...-(n-1).
func path(n int) *simple.UndirectedGraph {
	g := simple.NewUndirectedGraph()
	for i := 0; i < n; i++ {
		g.AddNode(simple.Node(i))
	}
	for i := 0; i < n-1; i++ {
		g.SetEdge(simple.Edge{F: simple.Node(i), T: simple.Node(i + 1)})
	}
	return g
}

func TestEnumerateEdgeTemplateIntoPath(t *testing.T) {
	// A two-node, one-edge template should match every adjacent ordered
	// pair in both directions along a 4-node path.
	tmpl := simple.NewUndirectedGraph()
	tmpl.AddNode(simple.Node(0))
	tmpl.AddNode(simple.Node(1))
	tmpl.SetEdge(simple.Edge{F: simple.Node(0), T: simple.Node(1)})

	q := NewTemplate(tmpl)
	h := path(4)

	seq := Enumerate(q, h, "")
	require.Equal(t, 6, seq.Len()) // 3 edges * 2 orientations
}

func TestEnumerateTriangleIntoPathIsEmpty(t *testing.T) {
	tri := simple.NewUndirectedGraph()
	for i := 0; i < 3; i++ {
		tri.AddNode(simple.Node(i))
	}
	tri.SetEdge(simple.Edge{F: simple.Node(0), T: simple.Node(1)})
	tri.SetEdge(simple.Edge{F: simple.Node(1), T: simple.Node(2)})
	tri.SetEdge(simple.Edge{F: simple.Node(2), T: simple.Node(0)})

	q := NewTemplate(tri)
	h := path(5)

	seq := Enumerate(q, h, "")
	assert.Equal(t, 0, seq.Len())
}

func TestEnumerateRespectsEdgeAttribute(t *testing.T) {
	tmpl := simple.NewUndirectedGraph()
	tmpl.AddNode(simple.Node(0))
	tmpl.AddNode(simple.Node(1))
	tmpl.SetEdge(simple.Edge{F: simple.Node(0), T: simple.Node(1), Label: "road", HasLabel: true})

	h := simple.NewUndirectedGraph()
	h.AddNode(simple.Node(0))
	h.AddNode(simple.Node(1))
	h.AddNode(simple.Node(2))
	h.SetEdge(simple.Edge{F: simple.Node(0), T: simple.Node(1), Label: "road", HasLabel: true})
	h.SetEdge(simple.Edge{F: simple.Node(1), T: simple.Node(2), Label: "river", HasLabel: true})

	q := NewTemplate(tmpl)
	seq := Enumerate(q, h, "type")
	require.Equal(t, 2, seq.Len()) // only the (0,1) edge, both orientations

	for seq.Next() {
		img := seq.Image()
		assert.ElementsMatch(t, []int64{0, 1}, []int64{img[0], img[1]})
	}
}

func TestEnumerateDirectedPreservesDirection(t *testing.T) {
	tmpl := simple.NewDirectedGraph()
	tmpl.AddNode(simple.Node(0))
	tmpl.AddNode(simple.Node(1))
	tmpl.SetEdge(simple.Edge{F: simple.Node(0), T: simple.Node(1)})

	h := simple.NewDirectedGraph()
	h.AddNode(simple.Node(0))
	h.AddNode(simple.Node(1))
	h.SetEdge(simple.Edge{F: simple.Node(1), T: simple.Node(0)})

	// The only image maps the template's source 0 onto the host's source
	// 1; the same-ID mapping would reverse the edge and is rejected.
	q := NewTemplate(tmpl)
	seq := Enumerate(q, h, "")
	assert.Equal(t, []Image{{1, 0}}, seq.All())
}

func TestEnumerateDeterministicAcrossCalls(t *testing.T) {
	tmpl := simple.NewUndirectedGraph()
	tmpl.AddNode(simple.Node(0))
	tmpl.AddNode(simple.Node(1))
	tmpl.SetEdge(simple.Edge{F: simple.Node(0), T: simple.Node(1)})

	q := NewTemplate(tmpl)
	h := path(6)

	a := Enumerate(q, h, "").All()
	b := Enumerate(q, h, "").All()
	require.Equal(t, len(a), len(b))
	for i := range a {
		assert.Equal(t, a[i], b[i])
	}
}
