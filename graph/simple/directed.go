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
	dg *DirectedGraph

	_ graph.Graph    = dg
	_ graph.Directed = dg
)

// DirectedGraph implements a generalized directed graph.
type DirectedGraph struct {
	nodes map[int64]graph.Node
	from  map[int64]map[int64]graph.Edge
	to    map[int64]map[int64]graph.Edge

	nodeIDs *uid.Set
}

// NewDirectedGraph returns an empty DirectedGraph.
func NewDirectedGraph() *DirectedGraph {
	return &DirectedGraph{
		nodes:   make(map[int64]graph.Node),
		from:    make(map[int64]map[int64]graph.Edge),
		to:      make(map[int64]map[int64]graph.Edge),
		nodeIDs: uid.NewSet(),
	}
}

// AddNode adds n to the graph. It panics if the added node ID matches an
// existing node ID.
func (g *DirectedGraph) AddNode(n graph.Node) {
	if _, exists := g.nodes[n.ID()]; exists {
		panic(fmt.Sprintf("simple: node ID collision: %d", n.ID()))
	}
	g.nodes[n.ID()] = n
	g.nodeIDs.Use(n.ID())
}

// NewNode returns a new unique Node; it is not present in g until AddNode
// is called with it.
func (g *DirectedGraph) NewNode() graph.Node {
	return Node(g.nodeIDs.NewID())
}

// SetEdge adds e, a directed edge from e.From to e.To, to the graph. If
// the nodes do not already exist in g, they are added. It panics if the
// IDs of e.From and e.To are equal.
func (g *DirectedGraph) SetEdge(e graph.Edge) {
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
	if g.from[fid] == nil {
		g.from[fid] = make(map[int64]graph.Edge)
	}
	if g.to[tid] == nil {
		g.to[tid] = make(map[int64]graph.Edge)
	}
	g.from[fid][tid] = e
	g.to[tid][fid] = e
}

// Node returns the node with the given ID if it exists in the graph, and
// nil otherwise.
func (g *DirectedGraph) Node(id int64) graph.Node { return g.nodes[id] }

// Nodes returns all the nodes in the graph, ordered by ascending ID so
// that enumeration over the graph is deterministic.
func (g *DirectedGraph) Nodes() graph.Nodes {
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

func idSlice(m map[int64]graph.Edge) graph.Nodes {
	if len(m) == 0 {
		return graph.Empty
	}
	ids := make([]int64, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	nodes := make([]graph.Node, len(ids))
	for i, id := range ids {
		nodes[i] = Node(id)
	}
	return graph.NewNodeSlice(nodes)
}

// From returns the nodes reachable directly via an outbound edge from n,
// ordered by ascending ID.
func (g *DirectedGraph) From(id int64) graph.Nodes { return idSlice(g.from[id]) }

// To returns the nodes that have an outbound edge to n, ordered by
// ascending ID.
func (g *DirectedGraph) To(id int64) graph.Nodes { return idSlice(g.to[id]) }

// HasEdgeBetween returns whether an edge exists between x and y in either
// direction.
func (g *DirectedGraph) HasEdgeBetween(xid, yid int64) bool {
	if g.HasEdgeFromTo(xid, yid) {
		return true
	}
	return g.HasEdgeFromTo(yid, xid)
}

// HasEdgeFromTo returns whether an edge exists from u to v.
func (g *DirectedGraph) HasEdgeFromTo(uid, vid int64) bool {
	_, ok := g.from[uid][vid]
	return ok
}

// Edge returns the edge from u to v if one exists, and nil otherwise.
func (g *DirectedGraph) Edge(uid, vid int64) graph.Edge {
	e, ok := g.from[uid][vid]
	if !ok {
		return nil
	}
	return e
}
