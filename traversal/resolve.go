// SPDX-License-Identifier: MIT
// Package: qlattice/traversal
//
// resolve.go: continuation set of a node with deleted-edge bypass.

package traversal

import "github.com/katalvlaran/qlattice/lattice"

// frame is one level of the bypass walk: the outgoing edges of a node and
// the next one to look at.
type frame[L comparable] struct {
	edges []*lattice.Edge[L]
	next  int
}

// LiveSuccessors returns the live edges a path ending at n can continue with,
// in discovery order:
//
//   - a live outgoing edge is a branch;
//   - a deleted outgoing edge is skipped and the walk continues from its
//     target, recursively, so chains of deleted edges fan out into every live
//     edge behind them;
//   - a chain that dead-ends contributes nothing.
//
// An edge reached through two different deleted chains is reported once:
// deleted labels never reach the path, so both would yield the same terms.
// Complexity: O(b) where b is the number of edges inspected.
func LiveSuccessors[L comparable](n *lattice.Node[L]) []*lattice.Edge[L] {
	var (
		out   []*lattice.Edge[L]
		seen  map[*lattice.Edge[L]]struct{} // only needed once a bypass happens
		stack = []frame[L]{{edges: n.Out()}}
	)

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == len(top.edges) {
			stack = stack[:len(stack)-1]
			continue
		}
		e := top.edges[top.next]
		top.next++

		if e.Deleted() {
			if seen == nil {
				seen = make(map[*lattice.Edge[L]]struct{})
			}
			stack = append(stack, frame[L]{edges: e.To().Out()})
			continue
		}

		if seen != nil {
			if _, dup := seen[e]; dup {
				continue
			}
			seen[e] = struct{}{}
		}
		out = append(out, e)
	}

	return out
}
