// Copyright ©2026 The gwfc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import (
	"github.com/graphwfc/gwfc/color"
	"github.com/graphwfc/gwfc/domain"
)

// entropyJitter bounds the perturbation added to every image's total
// entropy before comparing them, so that exact ties between distinct
// images are broken by the RNG stream rather than always favoring the
// lowest-indexed image. It is well below the smallest entropy gap two
// distinct weight distributions can produce in practice.
const entropyJitter = 1e-6

// colorWeights aggregates, over every template instance covering node
// index ni, the weight each still-permitted color carries in support of
// ni's current domain. A color with zero aggregated weight (permitted
// by the domain but never observed as a support) is omitted; callers
// that need every permitted color represented should treat a missing
// entry as weight 1, a flat fallback.
func (s *State) colorWeights(ni int) map[color.Color]uint64 {
	totals := make(map[color.Color]uint64)
	for _, ref := range s.coverage[ni] {
		inst := s.instances[ref.instance]
		store := s.cfg.Templates[inst.templateIdx].Store
		ds := s.instanceDomains(inst)
		for c, w := range store.SupportedWeights(ref.position, ds) {
			totals[c] += w
		}
	}
	return totals
}

// entropyFor computes the Shannon entropy of node index ni's current
// domain, weighting each permitted color by its aggregated support
// across covering template instances. A collapsed node (domain
// cardinality 1) always has entropy 0.
func (s *State) entropyFor(ni int) float64 {
	d := s.domains[ni]
	count := d.Count()
	totals := s.colorWeights(ni)
	weights := make([]uint64, 0, count)
	d.Each(func(c int) {
		w := totals[color.Color(c)]
		if w == 0 {
			w = 1
		}
		weights = append(weights, w)
	})
	return domain.Entropy(weights, count)
}

// pickImage selects, among every template instance with at least one
// uncollapsed node (domain cardinality > 1), the one with the lowest
// jittered total entropy — the sum of its nodes' entropies. It returns
// the chosen instance's index into s.instances, or ok=false once every
// covered node has been collapsed to a single color.
func (s *State) pickImage() (instIdx int, ok bool) {
	best := -1
	var bestKey float64
	for ii, inst := range s.instances {
		positive := false
		var total float64
		for _, id := range inst.nodeIDs {
			ni := s.index[id]
			if s.domains[ni].Count() > 1 {
				positive = true
			}
			total += s.entropyFor(ni)
		}
		if !positive {
			continue
		}
		key := total + s.rnd.Float64()*entropyJitter
		if best == -1 || key < bestKey {
			best, bestKey = ii, key
		}
	}
	return best, best != -1
}

// collapse samples one pattern applicable to the chosen instance's
// current domains, weighted by occurrence count, and intersects every
// position's domain with the singleton set of that pattern's color. It
// returns the indices of every node whose domain actually changed, for
// the caller to seed propagation from, or a ContradictionError if no
// pattern is applicable or a position's domain does not actually permit
// the sampled pattern's color.
func (s *State) collapse(instIdx int) ([]int, error) {
	inst := s.instances[instIdx]
	store := s.cfg.Templates[inst.templateIdx].Store
	ds := s.instanceDomains(inst)

	patterns := store.Applicable(ds)
	if len(patterns) == 0 {
		return nil, &ContradictionError{NodeID: inst.nodeIDs[0], Observations: s.observations}
	}

	weights := make([]float64, len(patterns))
	for i, p := range patterns {
		weights[i] = float64(p.Weight)
	}
	sampler := newWeighted(weights, s.rnd)
	pick, ok := sampler.take()
	if !ok {
		pick = 0
	}
	chosen := patterns[pick]

	changed := make([]int, 0, len(inst.nodeIDs))
	for pos, id := range inst.nodeIDs {
		ni := s.index[id]
		didChange, empty := s.domains[ni].CollapseTo(int(chosen.Colors[pos]))
		if empty {
			return nil, &ContradictionError{NodeID: id, Observations: s.observations}
		}
		if didChange {
			changed = append(changed, ni)
		}
	}
	return changed, nil
}
