// Copyright ©2026 The gwfc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package graphml reads and writes the subset of the GraphML file format
// gwfc needs: directedness from a <graph edgedefault="..."> attribute,
// and named node/edge attributes via <key>/<data> elements. No library
// in the surrounding stack covers this format, so the package is built
// directly on encoding/xml; see DESIGN.md for that justification.
package graphml

import (
	"encoding/xml"
	"fmt"
	"io"
	"sort"

	"github.com/graphwfc/gwfc/color"
	"github.com/graphwfc/gwfc/graph"
	"github.com/graphwfc/gwfc/graph/simple"
)

type xmlDocument struct {
	XMLName xml.Name `xml:"graphml"`
	Keys    []xmlKey `xml:"key"`
	Graph   xmlGraph `xml:"graph"`
}

type xmlKey struct {
	ID       string `xml:"id,attr"`
	For      string `xml:"for,attr"`
	AttrName string `xml:"attr.name,attr"`
}

type xmlGraph struct {
	EdgeDefault string    `xml:"edgedefault,attr"`
	Nodes       []xmlNode `xml:"node"`
	Edges       []xmlEdge `xml:"edge"`
}

type xmlNode struct {
	ID   string    `xml:"id,attr"`
	Data []xmlData `xml:"data"`
}

type xmlEdge struct {
	Source string    `xml:"source,attr"`
	Target string    `xml:"target,attr"`
	Data   []xmlData `xml:"data"`
}

type xmlData struct {
	Key   string `xml:"key,attr"`
	Value string `xml:",chardata"`
}

// Graph is a graph decoded from a GraphML document: the graph.Graph
// itself, its node colors (if a color attribute was configured and
// present), and the allocated-ID/original-ID correspondence needed to
// write results back out under the same node identities.
type Graph struct {
	G        graph.Graph
	Directed bool
	Colors   map[int64]color.Color
	Names    map[int64]string
	ids      map[string]int64
}

// Decode reads a GraphML document from r, allocating a dense int64 ID to
// each distinct node id attribute in ascending lexical order so that
// decoding the same file twice yields the same graph.Graph. colorAttr
// and edgeAttr name the <key attr.name="..."> to read node colors and
// edge attributes from; either may be empty to skip that attribute.
// Colors are interned into palette, which callers should share across
// every file read for one solver run so that a color observed in the
// example graph and a color referenced by a template compare equal.
func Decode(r io.Reader, colorAttr, edgeAttr string, palette *color.Palette) (*Graph, error) {
	var doc xmlDocument
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("graphml: decode: %w", err)
	}

	colorKey, edgeKey := "", ""
	for _, k := range doc.Keys {
		switch {
		case colorAttr != "" && k.For == "node" && k.AttrName == colorAttr:
			colorKey = k.ID
		case edgeAttr != "" && k.For == "edge" && k.AttrName == edgeAttr:
			edgeKey = k.ID
		}
	}

	rawIDs := make([]string, 0, len(doc.Graph.Nodes))
	for _, n := range doc.Graph.Nodes {
		rawIDs = append(rawIDs, n.ID)
	}
	sort.Strings(rawIDs)
	ids := make(map[string]int64, len(rawIDs))
	names := make(map[int64]string, len(rawIDs))
	for i, raw := range rawIDs {
		ids[raw] = int64(i)
		names[int64(i)] = raw
	}

	directed := doc.Graph.EdgeDefault == "directed"

	var g graph.Graph
	colors := make(map[int64]color.Color)

	if directed {
		dg := simple.NewDirectedGraph()
		for _, n := range doc.Graph.Nodes {
			id := ids[n.ID]
			dg.AddNode(simple.Node(id))
			if colorKey != "" {
				if v, ok := dataValue(n.Data, colorKey); ok {
					colors[id] = palette.Intern(v)
				}
			}
		}
		for _, e := range doc.Graph.Edges {
			sid, ok := ids[e.Source]
			if !ok {
				return nil, fmt.Errorf("graphml: edge references unknown node %q", e.Source)
			}
			tid, ok := ids[e.Target]
			if !ok {
				return nil, fmt.Errorf("graphml: edge references unknown node %q", e.Target)
			}
			label, has := "", false
			if edgeKey != "" {
				label, has = dataValue(e.Data, edgeKey)
			}
			dg.SetEdge(simple.Edge{F: simple.Node(sid), T: simple.Node(tid), Label: label, HasLabel: has})
		}
		g = dg
	} else {
		ug := simple.NewUndirectedGraph()
		for _, n := range doc.Graph.Nodes {
			id := ids[n.ID]
			ug.AddNode(simple.Node(id))
			if colorKey != "" {
				if v, ok := dataValue(n.Data, colorKey); ok {
					colors[id] = palette.Intern(v)
				}
			}
		}
		for _, e := range doc.Graph.Edges {
			sid, ok := ids[e.Source]
			if !ok {
				return nil, fmt.Errorf("graphml: edge references unknown node %q", e.Source)
			}
			tid, ok := ids[e.Target]
			if !ok {
				return nil, fmt.Errorf("graphml: edge references unknown node %q", e.Target)
			}
			label, has := "", false
			if edgeKey != "" {
				label, has = dataValue(e.Data, edgeKey)
			}
			ug.SetEdge(simple.Edge{F: simple.Node(sid), T: simple.Node(tid), Label: label, HasLabel: has})
		}
		g = ug
	}

	return &Graph{G: g, Directed: directed, Colors: colors, Names: names, ids: ids}, nil
}

func dataValue(data []xmlData, key string) (string, bool) {
	for _, d := range data {
		if d.Key == key {
			return d.Value, true
		}
	}
	return "", false
}

// Encode writes g out as a GraphML document, attaching a node-color
// attribute named colorAttr whose value for node id is palette.Name of
// colors[id], for every id that has one. Names (as returned by Decode)
// is used to recover each node's original GraphML id attribute so that
// round-tripping a file preserves node identity.
func Encode(w io.Writer, g *Graph, colorAttr string, colors map[int64]color.Color, palette *color.Palette) error {
	doc := xmlDocument{
		Keys: []xmlKey{{ID: "dcolor", For: "node", AttrName: colorAttr}},
		Graph: xmlGraph{
			EdgeDefault: "undirected",
		},
	}
	if g.Directed {
		doc.Graph.EdgeDefault = "directed"
	}

	it := g.G.Nodes()
	ids := make([]int64, 0, it.Len())
	for it.Next() {
		ids = append(ids, it.Node().ID())
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		n := xmlNode{ID: nameFor(g, id)}
		if c, ok := colors[id]; ok {
			n.Data = []xmlData{{Key: "dcolor", Value: palette.Name(c)}}
		}
		doc.Graph.Nodes = append(doc.Graph.Nodes, n)
	}

	seen := make(map[[2]int64]bool)
	for _, id := range ids {
		nbrs := g.G.From(id)
		for nbrs.Next() {
			o := nbrs.Node().ID()
			if !g.Directed {
				key := [2]int64{id, o}
				if id > o {
					key = [2]int64{o, id}
				}
				if seen[key] {
					continue
				}
				seen[key] = true
			}
			doc.Graph.Edges = append(doc.Graph.Edges, xmlEdge{Source: nameFor(g, id), Target: nameFor(g, o)})
		}
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("graphml: encode: %w", err)
	}
	return nil
}

func nameFor(g *Graph, id int64) string {
	if name, ok := g.Names[id]; ok {
		return name
	}
	return fmt.Sprintf("n%d", id)
}
