// Copyright ©2026 The gwfc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package iso enumerates node-induced subgraph isomorphisms of a small
// query graph (a GL template) into a host graph (GI during pattern
// extraction, GO during solving), using a backtracking matcher in the
// spirit of VF2, grounded on the adjacency and edge-attribute primitives
// of the gwfc/graph package.
package iso

import (
	"sort"

	"github.com/graphwfc/gwfc/graph"
)

// Template is a small query graph GL. Its node ordering is fixed at
// construction and used as the index space for patterns: position i of
// every Image produced against this Template corresponds to Order()[i].
type Template struct {
	G        graph.Graph
	order    []int64
	directed bool
}

// NewTemplate returns a Template over g, fixing the node order as the
// ascending sort of g's node IDs. g must have at least one node.
func NewTemplate(g graph.Graph) *Template {
	_, directed := g.(graph.Directed)
	it := g.Nodes()
	order := make([]int64, 0, it.Len())
	for it.Next() {
		order = append(order, it.Node().ID())
	}
	sort.Slice(order, func(i, j int) bool { return order[i] < order[j] })
	return &Template{G: g, order: order, directed: directed}
}

// Order returns the template's fixed node ordering.
func (t *Template) Order() []int64 { return t.order }

// Len returns the number of nodes in the template.
func (t *Template) Len() int { return len(t.order) }

// Directed reports whether the template graph is directed.
func (t *Template) Directed() bool { return t.directed }
