// Copyright ©2026 The gwfc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iso

import (
	"sort"

	"github.com/graphwfc/gwfc/graph"
)

// Image is an isomorphism image: an ordered tuple of host-node IDs
// aligned with a Template's Order.
type Image []int64

// Sequence is a finite, deterministic sequence of isomorphism images. Its
// enumeration order is a function only of the host and template node
// identifiers, so two calls to Enumerate over identical inputs yield
// identical sequences.
//
// Sequence is backed by a precomputed slice rather than a true streaming
// generator: GL templates are small and every consumer (Pattern Store at
// extraction, the Observer/Propagator at solve time) walks the whole
// sequence at least once, so eager enumeration costs nothing in practice
// while keeping the matcher itself a plain recursive function.
type Sequence struct {
	images []Image
	idx    int
}

// Next advances the sequence and reports whether an Image is available.
func (s *Sequence) Next() bool {
	if s.idx+1 < len(s.images) {
		s.idx++
		return true
	}
	s.idx = len(s.images)
	return false
}

// Image returns the current image. Next must be called before each call
// to Image.
func (s *Sequence) Image() Image {
	if s.idx < 0 || s.idx >= len(s.images) {
		return nil
	}
	return s.images[s.idx]
}

// Len returns the total number of images in the sequence.
func (s *Sequence) Len() int { return len(s.images) }

// All returns every image in the sequence, leaving the iterator
// exhausted.
func (s *Sequence) All() []Image {
	s.idx = len(s.images)
	return s.images
}

// edgeAttr reads e's attribute value if attrName is configured and e
// implements graph.Attributed.
func edgeAttr(e graph.Edge, attrName string) (string, bool) {
	if attrName == "" || e == nil {
		return "", false
	}
	a, ok := e.(graph.Attributed)
	if !ok {
		return "", false
	}
	return a.Attr()
}

// Enumerate enumerates every node-induced subgraph isomorphism of q into
// h, requiring edge-attribute equality on attrName when attrName is
// non-empty. q and h must agree on directedness; Enumerate does not
// itself validate this (solver.Setup checks it against the output graph,
// and cmd/gwfc checks it against the example graph before extraction).
func Enumerate(q *Template, h graph.Graph, attrName string) *Sequence {
	if q.Len() == 0 {
		return &Sequence{idx: -1}
	}

	hIDs := hostNodeIDs(h)
	m := &matcher{
		q:        q.G,
		h:        h,
		directed: q.directed,
		attrName: attrName,
		hIDs:     hIDs,
		qOrder:   q.order,
		posOf:    make(map[int64]int, len(q.order)),
	}
	for i, id := range q.order {
		m.posOf[id] = i
	}
	m.order = searchOrder(q.G, q.order)

	m.mapping = make(map[int64]int64, len(q.order))
	m.usedH = make(map[int64]bool, len(q.order))
	m.search(0)

	return &Sequence{images: m.results, idx: -1}
}

func hostNodeIDs(h graph.Graph) []int64 {
	it := h.Nodes()
	ids := make([]int64, 0, it.Len())
	for it.Next() {
		ids = append(ids, it.Node().ID())
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// searchOrder returns the order in which Template nodes are matched
// during backtracking: highest degree first, then highest connectivity
// to already-ordered nodes, ties broken by ascending node ID so that
// enumeration is deterministic.
func searchOrder(q graph.Graph, nodes []int64) []int64 {
	remaining := make(map[int64]bool, len(nodes))
	for _, id := range nodes {
		remaining[id] = true
	}
	degree := func(id int64) int {
		return graph.Degree(q, id) + reverseDegree(q, id)
	}

	order := make([]int64, 0, len(nodes))
	for len(remaining) > 0 {
		var best int64
		bestConn, bestDeg := -1, -1
		found := false
		ids := make([]int64, 0, len(remaining))
		for id := range remaining {
			ids = append(ids, id)
		}
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
		for _, id := range ids {
			conn := 0
			for _, placed := range order {
				if q.HasEdgeBetween(id, placed) {
					conn++
				}
			}
			deg := degree(id)
			if !found || deg > bestDeg || (deg == bestDeg && conn > bestConn) {
				best, bestConn, bestDeg, found = id, conn, deg, true
			}
		}
		order = append(order, best)
		delete(remaining, best)
	}
	return order
}

func reverseDegree(q graph.Graph, id int64) int {
	if d, ok := q.(graph.Directed); ok {
		return d.To(id).Len()
	}
	return 0
}

type matcher struct {
	q, h     graph.Graph
	directed bool
	attrName string

	hIDs   []int64
	qOrder []int64
	posOf  map[int64]int // q node ID -> position in qOrder
	order  []int64       // q node search order

	mapping map[int64]int64
	usedH   map[int64]bool
	results []Image
}

func (m *matcher) search(depth int) {
	if depth == len(m.order) {
		img := make(Image, len(m.qOrder))
		for qid, hid := range m.mapping {
			img[m.posOf[qid]] = hid
		}
		m.results = append(m.results, img)
		return
	}

	qid := m.order[depth]
	for _, hid := range m.hIDs {
		if m.usedH[hid] {
			continue
		}
		if !m.feasible(qid, hid) {
			continue
		}
		m.mapping[qid] = hid
		m.usedH[hid] = true
		m.search(depth + 1)
		delete(m.mapping, qid)
		delete(m.usedH, hid)
	}
}

// feasible reports whether mapping qid to hid is consistent with every
// already-matched node: adjacency and non-adjacency must both be
// preserved (in each direction separately for directed graphs), and
// edge-attribute equality must hold when configured.
func (m *matcher) feasible(qid, hid int64) bool {
	for mqid, mhid := range m.mapping {
		qFwd := m.q.HasEdgeBetween(qid, mqid)
		hFwd := m.h.HasEdgeBetween(hid, mhid)

		if m.directed {
			qD, _ := m.q.(graph.Directed)
			hD, _ := m.h.(graph.Directed)
			if qD.HasEdgeFromTo(qid, mqid) != hD.HasEdgeFromTo(hid, mhid) {
				return false
			}
			if qD.HasEdgeFromTo(mqid, qid) != hD.HasEdgeFromTo(mhid, hid) {
				return false
			}
			if !m.attrOK(qD.Edge(qid, mqid), hD.Edge(hid, mhid)) {
				return false
			}
			if !m.attrOK(qD.Edge(mqid, qid), hD.Edge(mhid, hid)) {
				return false
			}
			continue
		}

		if qFwd != hFwd {
			return false
		}
		if qFwd {
			qU, _ := m.q.(graph.Undirected)
			hU, _ := m.h.(graph.Undirected)
			if !m.attrOK(qU.EdgeBetween(qid, mqid), hU.EdgeBetween(hid, mhid)) {
				return false
			}
		}
	}
	return true
}

// attrOK reports whether qe and he agree on the configured edge
// attribute. An unconfigured attribute name, or either edge being absent,
// is always OK; otherwise both edges must carry the same value.
func (m *matcher) attrOK(qe, he graph.Edge) bool {
	if m.attrName == "" {
		return true
	}
	if qe == nil || he == nil {
		return qe == nil && he == nil
	}
	qv, qok := edgeAttr(qe, m.attrName)
	hv, hok := edgeAttr(he, m.attrName)
	if qok != hok {
		return false
	}
	if !qok {
		return true
	}
	return qv == hv
}
