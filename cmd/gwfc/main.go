// Copyright ©2026 The gwfc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command gwfc colors the nodes of an output graph by propagating the
// local color patterns a small set of templates observe in an example
// graph, using graph-generalized wave-function collapse.
package main // import "github.com/graphwfc/gwfc/cmd/gwfc"

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"

	"github.com/graphwfc/gwfc/color"
	"github.com/graphwfc/gwfc/graphml"
	"github.com/graphwfc/gwfc/iso"
	"github.com/graphwfc/gwfc/pattern"
	"github.com/graphwfc/gwfc/solver"
)

func main() {
	log.SetPrefix("gwfc: ")
	log.SetFlags(0)

	valueAttr := flag.String("v", "value", "node attribute holding a graph's colors")
	edgeAttr := flag.String("e", "type", "edge attribute checked for equality during pattern matching")
	seed := flag.Int64("seed", 1, "seed for the observer's random number stream")
	retries := flag.Int("retries", 10, "number of times to restart observation after a contradiction")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: gwfc [options] <dir>

dir must contain go.graphml (the output graph to color), gi.graphml
(the colored example graph) and one or more gl-*.graphml template
files (the small query graphs patterns are extracted from).

Options:
`)
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	dir := flag.Arg(0)

	code := run(dir, *valueAttr, *edgeAttr, *seed, *retries)
	os.Exit(code)
}

func run(dir, valueAttr, edgeAttr string, seed int64, retries int) int {
	palette := color.NewPalette()

	gi, err := decodeFile(filepath.Join(dir, "gi.graphml"), valueAttr, edgeAttr, palette)
	if err != nil {
		log.Print(err)
		return 2
	}

	output, err := decodeFile(filepath.Join(dir, "go.graphml"), "", edgeAttr, palette)
	if err != nil {
		log.Print(err)
		return 2
	}

	templatePaths, err := filepath.Glob(filepath.Join(dir, "gl-*.graphml"))
	if err != nil {
		log.Print(err)
		return 2
	}
	if len(templatePaths) == 0 {
		log.Print("no gl-*.graphml template files found")
		return 2
	}
	sort.Strings(templatePaths)

	var specs []solver.TemplateSpec
	for _, p := range templatePaths {
		tg, err := decodeFile(p, "", edgeAttr, palette)
		if err != nil {
			log.Print(err)
			return 2
		}
		if tg.Directed != gi.Directed {
			log.Printf("%s: directedness does not match gi.graphml", p)
			return 2
		}
		tmpl := iso.NewTemplate(tg.G)
		store := pattern.Extract(tmpl, gi.G, edgeAttr, palette.Len(), func(id int64) (color.Color, bool) {
			c, ok := gi.Colors[id]
			return c, ok
		})
		specs = append(specs, solver.TemplateSpec{Template: tmpl, Store: store})
	}

	cfg := solver.Config{
		Output:    output.G,
		Templates: specs,
		Palette:   palette,
		EdgeAttr:  edgeAttr,
		Seed:      seed,
	}

	st, outcome, err := solver.Solve(context.Background(), cfg, retries)
	if err != nil {
		var ce *solver.ContradictionError
		if errors.As(err, &ce) {
			log.Printf("%v after %d retries", err, retries)
			return 1
		}
		log.Print(err)
		return 2
	}
	if outcome != solver.Success {
		log.Print("solver did not succeed")
		return 1
	}

	colors, ok := st.Colors()
	if !ok {
		log.Print("solver reported success but left a node uncollapsed")
		return 2
	}

	sets := color.Sets(colors)
	for _, c := range colorKeysSorted(sets) {
		log.Printf("color %s: %d node(s)", palette.Name(c), len(sets[c]))
	}

	out, err := os.Create(filepath.Join(dir, "out.graphml"))
	if err != nil {
		log.Print(err)
		return 2
	}
	defer out.Close()

	if err := graphml.Encode(out, output, valueAttr, colors, palette); err != nil {
		log.Print(err)
		return 2
	}
	return 0
}

// colorKeysSorted returns sets' keys in the palette's stable enumeration
// order (Color's own ascending order), so the per-color summary logged
// after a successful solve is deterministic across runs.
func colorKeysSorted(sets map[color.Color][]int64) []color.Color {
	keys := make([]color.Color, 0, len(sets))
	for c := range sets {
		keys = append(keys, c)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func decodeFile(path, colorAttr, edgeAttr string, palette *color.Palette) (*graphml.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gwfc: %w", err)
	}
	defer f.Close()
	g, err := graphml.Decode(f, colorAttr, edgeAttr, palette)
	if err != nil {
		return nil, fmt.Errorf("gwfc: %s: %w", path, err)
	}
	return g, nil
}
