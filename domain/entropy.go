// Copyright ©2026 The gwfc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package domain

import "math"

// Entropy computes the Shannon entropy of a node's domain given the
// weights of the patterns still consistent with it, H = log(W) -
// (sum wi*log(wi))/W where W is the sum of weights. It falls back to the
// uniform-over-domain entropy log(count) when fewer than two distinct
// weights remain, which both avoids a 0/0 and keeps the fallback cheap to
// compute for large uniform domains.
func Entropy(weights []uint64, count int) float64 {
	if count <= 1 {
		return 0
	}
	if len(weights) < 2 {
		return math.Log(float64(count))
	}

	var total uint64
	distinct := make(map[uint64]bool, len(weights))
	for _, w := range weights {
		total += w
		distinct[w] = true
	}
	if total == 0 {
		return math.Log(float64(count))
	}
	if len(distinct) < 2 {
		return math.Log(float64(count))
	}

	W := float64(total)
	var sum float64
	for _, w := range weights {
		if w == 0 {
			continue
		}
		fw := float64(w)
		sum += fw * math.Log(fw)
	}
	return math.Log(W) - sum/W
}
