// Copyright ©2026 The gwfc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package simple provides a concrete, map-backed implementation of
// graph.Graph, in the manner of gonum.org/v1/gonum/graph/simple.
package simple

import "github.com/graphwfc/gwfc/graph"

// Node is a simple graph node.
type Node int64

// ID returns the ID number of the node.
func (n Node) ID() int64 { return int64(n) }

// Edge is a simple graph edge. It optionally carries a named attribute
// value used by the iso package for edge-attribute equality.
type Edge struct {
	F, T graph.Node

	// Label, if non-empty, is the edge's attribute value.
	Label string
	// HasLabel reports whether Label is meaningful; an edge with
	// HasLabel false is treated as carrying no attribute.
	HasLabel bool
}

// From returns the from-node of the edge.
func (e Edge) From() graph.Node { return e.F }

// To returns the to-node of the edge.
func (e Edge) To() graph.Node { return e.T }

// ReversedEdge returns a new Edge with the end points of e swapped.
func (e Edge) ReversedEdge() graph.Edge {
	e.F, e.T = e.T, e.F
	return e
}

// Attr returns the edge's attribute value and whether it is set.
func (e Edge) Attr() (string, bool) { return e.Label, e.HasLabel }
