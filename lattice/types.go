// SPDX-License-Identifier: MIT
// Package: qlattice/lattice
//
// types.go: Node, Edge, Lattice and the package sentinel errors.

package lattice

import "errors"

// Sentinel errors for lattice construction.
var (
	// ErrNotFound indicates a label that does not resolve to any edge.
	ErrNotFound = errors.New("lattice: label not found")

	// ErrAmbiguous indicates a label that is already carried by another edge,
	// or that repeats within one builder call.
	ErrAmbiguous = errors.New("lattice: label is not unique")

	// ErrEmptyPath indicates InsertParallelPath was called with no path labels.
	ErrEmptyPath = errors.New("lattice: parallel path has no labels")

	// ErrInvalidSpan indicates the span start node cannot reach the span end node,
	// so the inserted path would be unreachable or close a cycle.
	ErrInvalidSpan = errors.New("lattice: span start does not precede span end")

	// ErrFrozen indicates a builder operation on a frozen lattice.
	ErrFrozen = errors.New("lattice: lattice is frozen")

	// ErrCycle is reported by Validate when the edge set contains a cycle.
	ErrCycle = errors.New("lattice: cycle detected")

	// ErrCorrupt is reported by Validate for broken internal bookkeeping.
	ErrCorrupt = errors.New("lattice: inconsistent structure")
)

// Node is a position between terms. It has no payload; identity is the
// creation index returned by ID.
type Node[L comparable] struct {
	id  int
	out []*Edge[L] // attachment order
	in  []*Edge[L] // arrival order; treated as a set
}

// ID returns the creation index of the node within its lattice.
func (n *Node[L]) ID() int { return n.id }

// Out returns the outgoing edges in attachment order.
func (n *Node[L]) Out() []*Edge[L] {
	out := make([]*Edge[L], len(n.out))
	copy(out, n.out)

	return out
}

// In returns the incoming edges. Order carries no meaning.
func (n *Node[L]) In() []*Edge[L] {
	in := make([]*Edge[L], len(n.in))
	copy(in, n.in)

	return in
}

// OutDegree reports the number of outgoing edges, deleted ones included.
func (n *Node[L]) OutDegree() int { return len(n.out) }

// Edge is a labelled arc between two nodes of the same lattice.
type Edge[L comparable] struct {
	index   int
	from    *Node[L]
	to      *Node[L]
	label   L
	deleted bool
}

// Index returns the creation index of the edge; Lattice.Edges is ordered by it.
func (e *Edge[L]) Index() int { return e.index }

// From returns the source node.
func (e *Edge[L]) From() *Node[L] { return e.from }

// To returns the target node.
func (e *Edge[L]) To() *Node[L] { return e.to }

// Label returns the term carried by the edge.
func (e *Edge[L]) Label() L { return e.label }

// Deleted reports whether the edge was marked deleted.
func (e *Edge[L]) Deleted() bool { return e.deleted }

// Lattice owns the nodes and edges of one query fragment.
//
// byLabel indexes every edge by its (unique) label; edges keeps creation
// order, which traversal relies on for root scheduling.
type Lattice[L comparable] struct {
	nodes   []*Node[L]
	edges   []*Edge[L]
	byLabel map[L]*Edge[L]
	frozen  bool
}
