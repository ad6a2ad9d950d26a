// Copyright ©2026 The gwfc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import "math/rand/v2"

// weighted draws an index from a collection of items with non-uniform
// probability, organized as a heap-summed weight tree in the manner of
// gonum.org/v1/gonum/stat/sampleuv.Weighted. A draw does not remove the
// drawn item's weight, so repeated draws sample with replacement. The
// Observer uses it to draw the one applicable pattern to collapse a
// chosen isomorphism image to, weighted by occurrence count.
type weighted struct {
	weights []float64
	heap    []float64
	rnd     *rand.Rand
}

// newWeighted returns a weighted sampler over w, drawing from rnd.
func newWeighted(w []float64, rnd *rand.Rand) weighted {
	s := weighted{
		weights: make([]float64, len(w)),
		heap:    make([]float64, len(w)),
		rnd:     rnd,
	}
	copy(s.weights, w)
	copy(s.heap, s.weights)
	for i := len(s.heap) - 1; i > 0; i-- {
		s.heap[((i+1)>>1)-1] += s.heap[i]
	}
	return s
}

// take returns an index with probability proportional to its weight, or
// false if every weight is zero.
func (s weighted) take() (idx int, ok bool) {
	if len(s.heap) == 0 || s.heap[0] == 0 {
		return -1, false
	}

	r := s.rnd.Float64() * s.heap[0]
	i := 0
	for {
		r -= s.weights[i]
		if r < 0 {
			break
		}
		li := i*2 + 1
		if li >= len(s.heap) {
			break
		}
		i = li
		d := s.heap[i]
		if r >= d {
			r -= d
			ri := i + 1
			if ri >= len(s.heap) {
				break
			}
			i = ri
		}
	}
	return i, true
}
