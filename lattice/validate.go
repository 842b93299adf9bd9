// SPDX-License-Identifier: MIT
// Package: qlattice/lattice
//
// validate.go: whole-lattice consistency check.

package lattice

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// Validate checks the structural invariants of the lattice and reports every
// violation found, not just the first:
//
//   - the label index holds exactly one entry per edge, pointing at that edge;
//   - every edge endpoint is a node of this lattice and lists the edge in its
//     outgoing (source) or incoming (target) set exactly once;
//   - the graph is acyclic.
//
// The returned error is a *multierror.Error whose members wrap ErrCorrupt,
// ErrAmbiguous or ErrCycle; nil means the lattice is sound.
// Complexity: O(V+E) plus O(deg) per edge for membership checks.
func (l *Lattice[L]) Validate() error {
	var result *multierror.Error

	// 1. Label index must mirror the edge list.
	if len(l.byLabel) != len(l.edges) {
		result = multierror.Append(result, fmt.Errorf(
			"Validate: %d labels indexed for %d edges: %w", len(l.byLabel), len(l.edges), ErrAmbiguous))
	}
	for _, e := range l.edges {
		if got := l.byLabel[e.label]; got != e {
			result = multierror.Append(result, fmt.Errorf(
				"Validate: label %v does not resolve to edge %d: %w", e.label, e.index, ErrAmbiguous))
		}
	}

	// 2. Endpoints must belong to this lattice and reference the edge back.
	for _, e := range l.edges {
		if !l.owns(e.from) || !l.owns(e.to) {
			result = multierror.Append(result, fmt.Errorf(
				"Validate: edge %v has a foreign endpoint: %w", e.label, ErrCorrupt))
			continue
		}
		if count(e.from.out, e) != 1 {
			result = multierror.Append(result, fmt.Errorf(
				"Validate: edge %v not listed once as outgoing of node %d: %w", e.label, e.from.id, ErrCorrupt))
		}
		if count(e.to.in, e) != 1 {
			result = multierror.Append(result, fmt.Errorf(
				"Validate: edge %v not listed once as incoming of node %d: %w", e.label, e.to.id, ErrCorrupt))
		}
	}

	// 3. Acyclicity; only meaningful once bookkeeping is consistent.
	if result == nil {
		if e := l.findCycle(); e != nil {
			result = multierror.Append(result, fmt.Errorf("Validate: edge %v closes a cycle: %w", e.label, ErrCycle))
		}
	}

	return result.ErrorOrNil()
}

// owns reports whether n is one of l's nodes.
func (l *Lattice[L]) owns(n *Node[L]) bool {
	return n != nil && n.id >= 0 && n.id < len(l.nodes) && l.nodes[n.id] == n
}

// count returns how many times e appears in edges.
func count[L comparable](edges []*Edge[L], e *Edge[L]) int {
	c := 0
	for _, x := range edges {
		if x == e {
			c++
		}
	}

	return c
}
