// Copyright ©2026 The gwfc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simple

import (
	"fmt"
	"sort"

	"github.com/graphwfc/gwfc/graph"
	"github.com/graphwfc/gwfc/graph/set/uid"
)

var (
	ug *UndirectedGraph

	_ graph.Graph      = ug
	_ graph.Undirected = ug
)

// UndirectedGraph implements a generalized undirected graph.
type UndirectedGraph struct {
	nodes map[int64]graph.Node
	edges map[int64]map[int64]graph.Edge

	nodeIDs *uid.Set
}

// NewUndirectedGraph returns an empty UndirectedGraph.
func NewUndirectedGraph() *UndirectedGraph {
	return &UndirectedGraph{
		nodes:   make(map[int64]graph.Node),
		edges:   make(map[int64]map[int64]graph.Edge),
		nodeIDs: uid.NewSet(),
	}
}

// AddNode adds n to the graph. It panics if the added node ID matches an
// existing node ID.
func (g *UndirectedGraph) AddNode(n graph.Node) {
	if _, exists := g.nodes[n.ID()]; exists {
		panic(fmt.Sprintf("simple: node ID collision: %d", n.ID()))
	}
	g.nodes[n.ID()] = n
	g.nodeIDs.Use(n.ID())
}

// NewNode returns a new unique Node; it is not present in g until AddNode
// is called with it.
func (g *UndirectedGraph) NewNode() graph.Node {
	return Node(g.nodeIDs.NewID())
}

// SetEdge adds e, an edge between two nodes, to the graph. If the nodes do
// not already exist in g, they are added. It panics if the IDs of e.From
// and e.To are equal.
func (g *UndirectedGraph) SetEdge(e graph.Edge) {
	from, to := e.From(), e.To()
	fid, tid := from.ID(), to.ID()
	if fid == tid {
		panic("simple: adding self edge")
	}
	if _, ok := g.nodes[fid]; !ok {
		g.AddNode(from)
	}
	if _, ok := g.nodes[tid]; !ok {
		g.AddNode(to)
	}
	if g.edges[fid] == nil {
		g.edges[fid] = make(map[int64]graph.Edge)
	}
	if g.edges[tid] == nil {
		g.edges[tid] = make(map[int64]graph.Edge)
	}
	g.edges[fid][tid] = e
	g.edges[tid][fid] = e.ReversedEdge()
}

// Node returns the node with the given ID if it exists in the graph, and
// nil otherwise.
func (g *UndirectedGraph) Node(id int64) graph.Node { return g.nodes[id] }

// Nodes returns all the nodes in the graph, ordered by ascending ID so
// that enumeration over the graph is deterministic.
func (g *UndirectedGraph) Nodes() graph.Nodes {
	if len(g.nodes) == 0 {
		return graph.Empty
	}
	ids := make([]int64, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	nodes := make([]graph.Node, len(ids))
	for i, id := range ids {
		nodes[i] = g.nodes[id]
	}
	return graph.NewNodeSlice(nodes)
}

// From returns the nodes reachable directly from n, ordered by ascending
// ID.
func (g *UndirectedGraph) From(id int64) graph.Nodes {
	nbrs := g.edges[id]
	if len(nbrs) == 0 {
		return graph.Empty
	}
	ids := make([]int64, 0, len(nbrs))
	for id := range nbrs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	nodes := make([]graph.Node, len(ids))
	for i, id := range ids {
		nodes[i] = g.nodes[id]
	}
	return graph.NewNodeSlice(nodes)
}

// HasEdgeBetween returns whether an edge exists between nodes x and y.
func (g *UndirectedGraph) HasEdgeBetween(xid, yid int64) bool {
	_, ok := g.edges[xid][yid]
	return ok
}

// Edge returns the edge between u and v if one exists, and nil otherwise.
func (g *UndirectedGraph) Edge(uid, vid int64) graph.Edge {
	return g.EdgeBetween(uid, vid)
}

// EdgeBetween returns the edge between nodes x and y.
func (g *UndirectedGraph) EdgeBetween(xid, yid int64) graph.Edge {
	e, ok := g.edges[xid][yid]
	if !ok {
		return nil
	}
	return e
}
