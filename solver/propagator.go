// Copyright ©2026 The gwfc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

// propagate restores arc consistency after the domains at the given
// starting node indices changed, using a FIFO work queue of dirty node
// indices in the manner of AC-3: each dequeued node re-checks, for every
// template instance covering it, whether every position of that
// instance is still supported by the instance's pattern store given the
// other positions' current domains, shrinking and re-enqueuing as
// needed, until the queue empties (a fixed point) or some domain is
// emptied (a contradiction).
func (s *State) propagate(starts ...int) error {
	queue := append([]int(nil), starts...)
	dirty := make(map[int]bool, len(starts))
	for _, i := range starts {
		dirty[i] = true
	}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		dirty[cur] = false

		for _, ref := range s.coverage[cur] {
			inst := s.instances[ref.instance]
			store := s.cfg.Templates[inst.templateIdx].Store
			ds := s.instanceDomains(inst)

			for pos, id := range inst.nodeIDs {
				support := store.Support(pos, ds)
				otherIdx := s.index[id]
				changed, empty := s.domains[otherIdx].IntersectMask(support)
				if empty {
					return &ContradictionError{NodeID: id, Observations: s.observations}
				}
				if changed && !dirty[otherIdx] {
					dirty[otherIdx] = true
					queue = append(queue, otherIdx)
				}
			}
		}
	}
	return nil
}
