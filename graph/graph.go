// Copyright ©2026 The gwfc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package graph defines the minimal directed/undirected labeled graph
// abstraction used throughout gwfc: the host graphs GO, GI and the small
// templates GL are all values of type Graph, Directed or Undirected.
package graph

// Node is a graph node. All a node needs to do is identify itself; this
// keeps the interface usable with map-storable, ==able ID types.
type Node interface {
	ID() int64
}

// Edge is an edge between two nodes. From and To are named without
// implying directionality: a Graph that is not Directed treats its edges
// as symmetric.
type Edge interface {
	From() Node
	To() Node
	// ReversedEdge returns the edge with its end points swapped.
	ReversedEdge() Edge
}

// Attributed is implemented by edges that carry a single named attribute
// value, used by the iso package for edge-attribute equality during
// isomorphism enumeration. An edge that does not implement Attributed is
// treated as carrying no attribute.
type Attributed interface {
	// Attr returns the edge's attribute value and whether it is set.
	Attr() (string, bool)
}

// Nodes is an iterator over a set of nodes. It is satisfied by NodeSlice.
type Nodes interface {
	// Next advances the iterator and reports whether a Node is available.
	Next() bool
	// Node returns the current node. Next must be called before each call
	// to Node.
	Node() Node
	// Len returns the number of remaining nodes.
	Len() int
	// Reset returns the iterator to its initial state.
	Reset()
}

// Empty is a Nodes that never yields a node.
var Empty Nodes = &NodeSlice{idx: -1}

// Graph is a labeled graph, directed or undirected depending on which of
// Directed or Undirected it additionally satisfies. All methods on Graph
// alone are implicitly undirected.
type Graph interface {
	// Node returns the node with the given ID if it exists in the graph,
	// and nil otherwise.
	Node(id int64) Node
	// Nodes returns all the nodes in the graph.
	Nodes() Nodes
	// From returns the nodes reachable directly from the node with the
	// given ID.
	From(id int64) Nodes
	// HasEdgeBetween returns whether an edge exists between the nodes
	// with the given IDs, in either direction.
	HasEdgeBetween(xid, yid int64) bool
	// Edge returns the edge from u to v if one exists, and nil otherwise.
	Edge(uid, vid int64) Edge
}

// Directed is a Graph whose edges have a direction: an edge from u to v
// does not imply one from v to u.
type Directed interface {
	Graph
	// HasEdgeFromTo returns whether an edge exists from u to v.
	HasEdgeFromTo(uid, vid int64) bool
	// To returns the nodes that have an edge to the node with the given
	// ID.
	To(id int64) Nodes
}

// Undirected is a Graph whose edges are symmetric.
type Undirected interface {
	Graph
	// EdgeBetween returns the edge between the nodes with the given IDs,
	// regardless of which end each was stored under.
	EdgeBetween(xid, yid int64) Edge
}

// Degree returns the number of edges incident on the node with the given
// ID. For Directed graphs this is the out-degree; callers that need
// total degree should add To(id).Len().
func Degree(g Graph, id int64) int {
	return g.From(id).Len()
}
