// Copyright ©2026 The gwfc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import (
	"errors"
	"fmt"
)

// SetupError reports a problem discovered while validating a Config,
// before any observation has taken place. Err, if set, can be unwrapped
// to test for a specific underlying cause such as ErrEmptyCoverage.
type SetupError struct {
	Reason string
	Err    error
}

func (e *SetupError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("solver: setup: %s: %v", e.Reason, e.Err)
	}
	return "solver: setup: " + e.Reason
}

func (e *SetupError) Unwrap() error { return e.Err }

// ErrEmptyCoverage is wrapped into a SetupError when a node of the output
// graph is never touched by any template's isomorphism images: such a
// node can never acquire a pattern-derived domain and the solver has no
// basis for coloring it.
var ErrEmptyCoverage = errors.New("node has no covering template instance")

// ContradictionError reports that propagation emptied a node's domain:
// no color is consistent with the patterns observed for every template
// instance covering it.
type ContradictionError struct {
	NodeID       int64
	Observations int
}

func (e *ContradictionError) Error() string {
	return fmt.Sprintf("solver: contradiction at node %d after %d observation(s)", e.NodeID, e.Observations)
}
