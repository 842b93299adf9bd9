// SPDX-License-Identifier: MIT
// Package: qlattice/traversal
//
// traversal.go: the state-exchanging depth-first walk.
//
// Contract:
//   - Roots: one per non-deleted edge, produced in edge creation order.
//   - A step's path is extended only if state was recorded for it before the
//     next call to Next.
//   - Continuations of a step are produced before any sibling or pending root.
//   - No step ever carries a deleted edge or a deleted label.
//   - Once finished, Next keeps returning the same finished snapshot.

package traversal

import (
	"log/slog"

	"github.com/katalvlaran/qlattice/lattice"
)

// Traversal walks the sub-paths of a lattice one step per Next call.
type Traversal[L comparable, S any] struct {
	opts  Options
	stack []task[L, S] // LIFO; top is the next task
	cur   Step[L, S]   // most recent snapshot

	state    S // recorded for cur
	hasState bool

	seq uint64
}

// Of creates a traversal over edges, typically Lattice.Edges(). Deleted edges
// are not used as roots; their live successors are roots of their own.
// Complexity: O(E).
func Of[L comparable, S any](edges []*lattice.Edge[L], opts ...Option) *Traversal[L, S] {
	// 1. Apply options.
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 2. Seed roots in reverse so that popping yields creation order.
	t := &Traversal[L, S]{
		opts:  o,
		stack: make([]task[L, S], 0, len(edges)),
	}
	for i := len(edges) - 1; i >= 0; i-- {
		if edges[i] == nil || edges[i].Deleted() {
			continue
		}
		t.stack = append(t.stack, task[L, S]{edge: edges[i]})
	}

	if t.opts.Logger != nil {
		t.opts.Logger.Debug("traversal: seeded roots",
			slog.Int("edges", len(edges)),
			slog.Int("roots", len(t.stack)))
	}

	return t
}

// Next advances the cursor and returns the new snapshot.
//
// Steps:
//  1. If state was recorded for the current step, schedule its continuations.
//  2. Clear the recorded state.
//  3. Pop the next task, or finish if none is left.
func (t *Traversal[L, S]) Next() Step[L, S] {
	// Finished is terminal.
	if t.cur.finished {
		return t.cur
	}

	// 1. Extend the current path on request.
	if t.hasState && t.cur.edge != nil {
		if t.opts.MaxPathLength <= 0 || len(t.cur.terms) < t.opts.MaxPathLength {
			t.scheduleContinuations()
		} else if t.opts.Logger != nil {
			t.opts.Logger.Debug("traversal: path length limit reached",
				slog.Int("length", len(t.cur.terms)))
		}
	}

	// 2. State is scoped to exactly one step.
	var zero S
	t.state, t.hasState = zero, false

	// 3. Pop or finish.
	t.seq++
	if len(t.stack) == 0 {
		t.cur = Step[L, S]{owner: t, seq: t.seq, finished: true}
		if t.opts.Logger != nil {
			t.opts.Logger.Debug("traversal: finished", slog.Uint64("steps", t.seq-1))
		}

		return t.cur
	}
	tk := t.stack[len(t.stack)-1]
	t.stack[len(t.stack)-1] = task[L, S]{} // release references
	t.stack = t.stack[:len(t.stack)-1]

	terms := make([]L, len(tk.parent)+1)
	copy(terms, tk.parent)
	terms[len(tk.parent)] = tk.edge.Label()

	t.cur = Step[L, S]{
		owner:        t,
		seq:          t.seq,
		edge:         tk.edge,
		terms:        terms,
		inherited:    tk.inherited,
		hasInherited: tk.hasInherited,
	}

	return t.cur
}

// SetExchangedState records value for the current step, asking the next Next
// call to extend its path. Before the first Next and after finishing it does
// nothing. The value is never inspected.
func (t *Traversal[L, S]) SetExchangedState(value S) {
	if t.cur.edge == nil {
		return
	}
	t.state, t.hasState = value, true
}

// ExchangeFor records value for step, which must be the most recent snapshot
// produced by t.
//
// Errors:
//   - ErrFinished   the traversal has finished.
//   - ErrStaleStep  step is not t's current snapshot (or is the zero Step).
func (t *Traversal[L, S]) ExchangeFor(step Step[L, S], value S) error {
	if t.cur.finished {
		return ErrFinished
	}
	if step.owner != t || step.seq == 0 || step.seq != t.cur.seq {
		return ErrStaleStep
	}
	t.state, t.hasState = value, true

	return nil
}

// Current returns the most recent snapshot (zero Step before the first Next).
func (t *Traversal[L, S]) Current() Step[L, S] { return t.cur }

// CurrentEdge returns the current edge, nil before the first Next or when finished.
func (t *Traversal[L, S]) CurrentEdge() *lattice.Edge[L] { return t.cur.edge }

// PathTerms returns a copy of the current path's terms; empty before the
// first Next or when finished.
func (t *Traversal[L, S]) PathTerms() []L { return t.cur.Terms() }

// IsFinished reports whether the traversal is exhausted.
func (t *Traversal[L, S]) IsFinished() bool { return t.cur.finished }

// Pending returns the number of tasks waiting on the stack.
func (t *Traversal[L, S]) Pending() int { return len(t.stack) }

// scheduleContinuations pushes one task per live successor of the current
// edge, reversed so that they pop in discovery order.
func (t *Traversal[L, S]) scheduleContinuations() {
	branches := LiveSuccessors(t.cur.edge.To())
	for i := len(branches) - 1; i >= 0; i-- {
		t.stack = append(t.stack, task[L, S]{
			edge:         branches[i],
			parent:       t.cur.terms,
			inherited:    t.state,
			hasInherited: true,
		})
	}

	if t.opts.Logger != nil {
		t.opts.Logger.Debug("traversal: scheduled continuations",
			slog.Int("length", len(t.cur.terms)),
			slog.Int("branches", len(branches)))
	}
}
