// Copyright ©2026 The gwfc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntropyCollapsedIsZero(t *testing.T) {
	assert.Equal(t, 0.0, Entropy(nil, 1))
	assert.Equal(t, 0.0, Entropy(nil, 0))
}

func TestEntropyUniformFallback(t *testing.T) {
	got := Entropy([]uint64{5}, 3)
	assert.InDelta(t, math.Log(3), got, 1e-9)
}

func TestEntropyWeightedMatchesUniformWhenEqual(t *testing.T) {
	got := Entropy([]uint64{2, 2, 2}, 3)
	assert.InDelta(t, math.Log(3), got, 1e-9)
}

func TestEntropySkewedIsLowerThanUniform(t *testing.T) {
	uniform := Entropy([]uint64{1, 1, 1}, 3)
	skewed := Entropy([]uint64{100, 1, 1}, 3)
	assert.Less(t, skewed, uniform)
}
