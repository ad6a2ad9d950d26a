// Copyright ©2026 The gwfc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFullHasEveryColor(t *testing.T) {
	s := Full(5)
	for i := 0; i < 5; i++ {
		require.True(t, s.Has(i))
	}
	assert.Equal(t, 5, s.Count())
	assert.False(t, s.IsEmpty())
}

func TestIntersectMaskShrinks(t *testing.T) {
	s := Full(4)
	mask := Empty(4)
	mask.Add(1)
	mask.Add(3)

	changed, empty := s.IntersectMask(mask)
	require.True(t, changed)
	require.False(t, empty)
	assert.Equal(t, 2, s.Count())
	assert.True(t, s.Has(1))
	assert.True(t, s.Has(3))
	assert.False(t, s.Has(0))
}

func TestIntersectMaskToEmptyIsContradiction(t *testing.T) {
	s := Single(4, 0)
	mask := Single(4, 1)

	changed, empty := s.IntersectMask(mask)
	require.True(t, changed)
	require.True(t, empty)
}

func TestIntersectMaskNoChange(t *testing.T) {
	s := Single(4, 2)
	mask := Full(4)

	changed, empty := s.IntersectMask(mask)
	assert.False(t, changed)
	assert.False(t, empty)
}

func TestCollapseTo(t *testing.T) {
	s := Full(3)
	changed, empty := s.CollapseTo(1)
	require.True(t, changed)
	require.False(t, empty)
	single, ok := s.SingleColor()
	require.True(t, ok)
	assert.Equal(t, 1, single)

	// Collapsing an already-singleton domain to the same color is a
	// no-op.
	changed, empty = s.CollapseTo(1)
	assert.False(t, changed)
	assert.False(t, empty)
}

func TestCollapseToForbiddenColorIsContradiction(t *testing.T) {
	s := Single(3, 0)
	changed, empty := s.CollapseTo(2)
	require.True(t, changed)
	require.True(t, empty)
}

func TestEachVisitsAscending(t *testing.T) {
	s := Empty(70)
	s.Add(65)
	s.Add(3)
	s.Add(40)

	var got []int
	s.Each(func(i int) { got = append(got, i) })
	assert.Equal(t, []int{3, 40, 65}, got)
}

func TestCloneIsIndependent(t *testing.T) {
	s := Full(4)
	c := s.Clone()
	c.Remove(0)

	assert.True(t, s.Has(0))
	assert.False(t, c.Has(0))
}
