// SPDX-License-Identifier: MIT
// Package: qlattice/traversal
//
// helpers.go: range-over-func adapter and full-expansion convenience.

package traversal

import (
	"iter"

	"github.com/katalvlaran/qlattice/lattice"
)

// Steps returns an iterator over the remaining non-finished steps. The loop
// body may call SetExchangedState to extend the yielded step; breaking out of
// the loop leaves the traversal where it stopped.
func (t *Traversal[L, S]) Steps() iter.Seq[Step[L, S]] {
	return func(yield func(Step[L, S]) bool) {
		for step := t.Next(); !step.Finished(); step = t.Next() {
			if !yield(step) {
				return
			}
		}
	}
}

// Subsequences extends every path unconditionally and returns the terms of
// each step in production order. For a plain chain of n labels this is all
// n(n+1)/2 contiguous sub-sequences.
// Complexity: proportional to the number of live sub-paths, which can be
// exponential in the number of parallel alternatives.
func Subsequences[L comparable](edges []*lattice.Edge[L], opts ...Option) [][]L {
	t := Of[L, struct{}](edges, opts...)

	var out [][]L
	for step := range t.Steps() {
		out = append(out, step.Terms())
		t.SetExchangedState(struct{}{})
	}

	return out
}
