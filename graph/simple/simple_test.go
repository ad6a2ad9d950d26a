// Copyright ©2026 The gwfc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simple

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUndirectedGraphSetEdge(t *testing.T) {
	g := NewUndirectedGraph()
	g.SetEdge(Edge{F: Node(1), T: Node(2)})
	g.SetEdge(Edge{F: Node(2), T: Node(3)})

	require.True(t, g.HasEdgeBetween(1, 2))
	require.True(t, g.HasEdgeBetween(2, 1))
	require.False(t, g.HasEdgeBetween(1, 3))

	nodes := g.Nodes()
	assert.Equal(t, 3, nodes.Len())

	from := g.From(2)
	var ids []int64
	for from.Next() {
		ids = append(ids, from.Node().ID())
	}
	assert.Equal(t, []int64{1, 3}, ids)
}

func TestDirectedGraphAsymmetry(t *testing.T) {
	g := NewDirectedGraph()
	g.SetEdge(Edge{F: Node(1), T: Node(2)})

	require.True(t, g.HasEdgeFromTo(1, 2))
	require.False(t, g.HasEdgeFromTo(2, 1))
	require.True(t, g.HasEdgeBetween(1, 2))
	require.True(t, g.HasEdgeBetween(2, 1))

	assert.Equal(t, 1, g.From(1).Len())
	assert.Equal(t, 0, g.From(2).Len())
	assert.Equal(t, 1, g.To(2).Len())
}

func TestUndirectedGraphSelfEdgePanics(t *testing.T) {
	g := NewUndirectedGraph()
	assert.Panics(t, func() {
		g.SetEdge(Edge{F: Node(1), T: Node(1)})
	})
}
