// Copyright ©2026 The gwfc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graph

// NodeSlice implements Nodes over a fixed, ordered slice of nodes, in the
// manner of gonum.org/v1/gonum/graph/iterator.OrderedNodes. Iteration order
// is the order of nodes passed to NewNodeSlice, which callers are expected
// to make deterministic (e.g. sorted by ID) when determinism matters.
type NodeSlice struct {
	idx   int
	nodes []Node
}

// NewNodeSlice returns a NodeSlice iterating over nodes in the given order.
func NewNodeSlice(nodes []Node) *NodeSlice {
	return &NodeSlice{idx: -1, nodes: nodes}
}

// Len returns the remaining number of nodes to be iterated over.
func (n *NodeSlice) Len() int {
	if n.idx >= len(n.nodes) {
		return 0
	}
	if n.idx <= 0 {
		return len(n.nodes)
	}
	return len(n.nodes[n.idx:])
}

// Next advances the iterator.
func (n *NodeSlice) Next() bool {
	if uint(n.idx)+1 < uint(len(n.nodes)) {
		n.idx++
		return true
	}
	n.idx = len(n.nodes)
	return false
}

// Node returns the current node.
func (n *NodeSlice) Node() Node {
	if n.idx >= len(n.nodes) || n.idx < 0 {
		return nil
	}
	return n.nodes[n.idx]
}

// Reset returns the iterator to its initial state.
func (n *NodeSlice) Reset() {
	n.idx = -1
}

// NodeIDs returns the IDs of the nodes in it, in iteration order, draining
// it.
func NodeIDs(it Nodes) []int64 {
	ids := make([]int64, 0, it.Len())
	for it.Next() {
		ids = append(ids, it.Node().ID())
	}
	return ids
}
