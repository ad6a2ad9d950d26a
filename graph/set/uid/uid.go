// Copyright ©2026 The gwfc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package uid implements unique ID provision for graphs.
package uid

import "math"

// Max is the largest ID a Set will allocate.
const Max = math.MaxInt64 - 1

// Set tracks which int64 IDs are in use so that NewID can hand out an
// unused one, in the manner of gonum.org/v1/gonum/graph/set/uid.
type Set struct {
	maxID      int64
	used, free map[int64]struct{}
}

// NewSet returns a new, empty Set.
func NewSet() *Set {
	return &Set{maxID: -1, used: make(map[int64]struct{}), free: make(map[int64]struct{})}
}

// NewID returns an unused ID. The ID is not considered used until passed
// to Use.
func (s *Set) NewID() int64 {
	for id := range s.free {
		return id
	}
	if s.maxID != Max {
		return s.maxID + 1
	}
	for id := int64(0); id <= s.maxID+1; id++ {
		if _, ok := s.used[id]; !ok {
			return id
		}
	}
	panic("uid: no unused ID available")
}

// Use marks id as in use.
func (s *Set) Use(id int64) {
	s.used[id] = struct{}{}
	delete(s.free, id)
	if id > s.maxID {
		s.maxID = id
	}
}

// Release marks id as no longer in use, making it available for reuse by
// a later call to NewID.
func (s *Set) Release(id int64) {
	s.free[id] = struct{}{}
	delete(s.used, id)
}
