// Copyright ©2026 The gwfc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package solver drives wave-function collapse over an output graph:
// the Observer picks the lowest-entropy uncollapsed isomorphism image
// and samples one whole pattern to collapse every position of that
// image to, and the Propagator restores arc consistency across every
// template instance the collapse touched, in the manner of an AC-3
// fixed point.
package solver

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sort"

	"github.com/graphwfc/gwfc/color"
	"github.com/graphwfc/gwfc/domain"
	"github.com/graphwfc/gwfc/graph"
	"github.com/graphwfc/gwfc/iso"
	"github.com/graphwfc/gwfc/pattern"
)

// TemplateSpec pairs a small query graph with the pattern store
// extracted for it, the unit the solver propagates constraints through.
type TemplateSpec struct {
	Template *iso.Template
	Store    *pattern.Store
}

// Config is the input to Setup: the output graph to color, the
// templates (with their pre-extracted pattern stores) to constrain it
// with, the palette those stores' colors were interned against, and the
// edge attribute (if any) that must match during isomorphism
// enumeration.
type Config struct {
	Output    graph.Graph
	Templates []TemplateSpec
	Palette   *color.Palette
	EdgeAttr  string
	Seed      int64
}

func (c Config) validate() error {
	if c.Output == nil {
		return &SetupError{Reason: "output graph is nil"}
	}
	if len(c.Templates) == 0 {
		return &SetupError{Reason: "no templates configured"}
	}
	if c.Palette == nil || c.Palette.Len() == 0 {
		return &SetupError{Reason: "palette is empty"}
	}
	_, outDirected := c.Output.(graph.Directed)
	for i, ts := range c.Templates {
		if ts.Template == nil || ts.Store == nil {
			return &SetupError{Reason: fmt.Sprintf("template %d is incomplete", i)}
		}
		if ts.Template.Directed() != outDirected {
			return &SetupError{Reason: fmt.Sprintf("template %d directedness does not match output graph", i)}
		}
		if ts.Store.Len() == 0 {
			return &SetupError{Reason: fmt.Sprintf("template %d has no pattern in the example graph", i)}
		}
	}
	return nil
}

// Outcome reports how a Run terminated.
type Outcome int

const (
	// Success means every node was collapsed to a single color.
	Success Outcome = iota
	// Contradiction means propagation emptied some node's domain.
	Contradiction
)

func (o Outcome) String() string {
	if o == Success {
		return "success"
	}
	return "contradiction"
}

type instance struct {
	templateIdx int
	nodeIDs     []int64
}

type coverRef struct {
	instance int
	position int
}

// State is a solver run in progress: the per-node domains, the
// precomputed template-instance coverage, and the RNG stream driving
// observation. A State is produced by Setup and advanced by Run; Reset
// rewinds it to begin a fresh attempt with a distinct, still
// deterministic, RNG stream.
type State struct {
	cfg Config

	nodeIDs []int64       // sorted output-graph node IDs; the domain index space
	index   map[int64]int // node ID -> position in nodeIDs/domains

	instances []instance
	coverage  [][]coverRef // per node index

	domains []domain.Set

	attempt      int
	observations int
	rnd          *rand.Rand
}

// Setup validates cfg, extracts every template's isomorphism instances
// against cfg.Output, and builds the coverage index the Observer and
// Propagator share. It returns a SetupError (wrapping ErrEmptyCoverage
// where relevant) if cfg is inconsistent or some output node is never
// covered by any template instance.
func Setup(ctx context.Context, cfg Config) (*State, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	it := cfg.Output.Nodes()
	nodeIDs := make([]int64, 0, it.Len())
	for it.Next() {
		nodeIDs = append(nodeIDs, it.Node().ID())
	}
	sort.Slice(nodeIDs, func(i, j int) bool { return nodeIDs[i] < nodeIDs[j] })

	index := make(map[int64]int, len(nodeIDs))
	for i, id := range nodeIDs {
		index[id] = i
	}

	s := &State{
		cfg:      cfg,
		nodeIDs:  nodeIDs,
		index:    index,
		coverage: make([][]coverRef, len(nodeIDs)),
	}

	for ti, ts := range cfg.Templates {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		seq := iso.Enumerate(ts.Template, cfg.Output, cfg.EdgeAttr)
		for seq.Next() {
			img := seq.Image()
			ids := make([]int64, len(img))
			copy(ids, img)
			instIdx := len(s.instances)
			s.instances = append(s.instances, instance{templateIdx: ti, nodeIDs: ids})
			for pos, id := range ids {
				ni := index[id]
				s.coverage[ni] = append(s.coverage[ni], coverRef{instance: instIdx, position: pos})
			}
		}
	}

	for i, refs := range s.coverage {
		if len(refs) == 0 {
			return nil, &SetupError{
				Reason: "uncovered output node",
				Err:    fmt.Errorf("node %d: %w", nodeIDs[i], ErrEmptyCoverage),
			}
		}
	}

	s.reseed(0)
	s.resetDomains()
	return s, nil
}

func (s *State) reseed(attempt int) {
	hi := uint64(int64(s.cfg.Seed) >> 32)
	lo := uint64(int64(s.cfg.Seed))
	s.rnd = rand.New(rand.NewPCG(lo+uint64(attempt)*0x9E3779B97F4A7C15, hi^uint64(attempt)))
	s.attempt = attempt
}

func (s *State) resetDomains() {
	n := s.cfg.Palette.Len()
	s.domains = make([]domain.Set, len(s.nodeIDs))
	for i := range s.domains {
		s.domains[i] = domain.Full(n)
	}
	s.observations = 0
}

// Reset rewinds the State to every node fully undetermined, reseeding
// the RNG deterministically from (Config.Seed, attempt count) so a
// retried run explores a different, but still reproducible, observation
// order.
func (s *State) Reset() {
	s.reseed(s.attempt + 1)
	s.resetDomains()
}

// Domains returns the current per-node color domains, indexed the same
// way as NodeIDs.
func (s *State) Domains() []domain.Set { return s.domains }

// NodeIDs returns the output graph's node IDs in the order Domains is
// indexed by.
func (s *State) NodeIDs() []int64 { return s.nodeIDs }

// Colors returns the final single color assigned to each node, and
// false if the State has not reached Success.
func (s *State) Colors() (map[int64]color.Color, bool) {
	out := make(map[int64]color.Color, len(s.nodeIDs))
	for i, d := range s.domains {
		c, ok := d.SingleColor()
		if !ok {
			return nil, false
		}
		out[s.nodeIDs[i]] = color.Color(c)
	}
	return out, true
}

func (s *State) instanceDomains(inst instance) []domain.Set {
	ds := make([]domain.Set, len(inst.nodeIDs))
	for i, id := range inst.nodeIDs {
		ds[i] = s.domains[s.index[id]]
	}
	return ds
}

// Run repeatedly selects the lowest-entropy isomorphism image, collapses
// it to one sampled pattern, and propagates arc consistency, until every
// covered node is collapsed (Success) or propagation empties a domain
// (Contradiction). Run does not itself retry on Contradiction; callers
// that want retries should use Solve, or call Reset and Run again.
func (s *State) Run() (Outcome, error) {
	for {
		instIdx, ok := s.pickImage()
		if !ok {
			return Success, nil
		}
		changed, err := s.collapse(instIdx)
		if err != nil {
			return Contradiction, err
		}
		s.observations++
		if err := s.propagate(changed...); err != nil {
			return Contradiction, err
		}
	}
}

// Solve runs Setup followed by Run, retrying with Reset up to maxRetries
// times if Run reports Contradiction. It returns the final State
// regardless of outcome, so a caller can inspect a contradictory run's
// domains.
func Solve(ctx context.Context, cfg Config, maxRetries int) (*State, Outcome, error) {
	st, err := Setup(ctx, cfg)
	if err != nil {
		return nil, Contradiction, err
	}
	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return st, Contradiction, err
		}
		outcome, err := st.Run()
		if outcome == Success {
			return st, Success, nil
		}
		lastErr = err
		if attempt < maxRetries {
			st.Reset()
		}
	}
	return st, Contradiction, lastErr
}
