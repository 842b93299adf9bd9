// SPDX-License-Identifier: MIT
// Package: qlattice/lattice
//
// lattice.go: construction (Build, InsertParallelPath, MarkDeleted, Freeze)
// and read-only queries.
//
// Contract:
//   - Labels are unique per lattice; every builder call checks this first.
//   - Edge creation order is stable and is the order returned by Edges().
//   - New outgoing edges are appended after existing ones (attachment order).
//   - Builder calls validate everything before mutating, so a failed call
//     leaves the lattice unchanged.

package lattice

import "fmt"

// Build creates a linear chain lattice: len(labels)+1 nodes and len(labels)
// edges, edge i spanning node i → node i+1. An empty label list yields a
// single node and no edges.
//
// Returns ErrAmbiguous if a label repeats.
// Complexity: O(n).
func Build[L comparable](labels ...L) (*Lattice[L], error) {
	// 1. Reject duplicate labels before allocating anything.
	seen := make(map[L]struct{}, len(labels))
	for _, label := range labels {
		if _, dup := seen[label]; dup {
			return nil, fmt.Errorf("Build: label %v: %w", label, ErrAmbiguous)
		}
		seen[label] = struct{}{}
	}

	// 2. Allocate the container with exact capacity hints.
	l := &Lattice[L]{
		nodes:   make([]*Node[L], 0, len(labels)+1),
		edges:   make([]*Edge[L], 0, len(labels)),
		byLabel: make(map[L]*Edge[L], len(labels)),
	}

	// 3. Emit the chain: each edge leaves the node created for the previous one.
	prev := l.newNode()
	var next *Node[L]
	for _, label := range labels {
		next = l.newNode()
		l.link(prev, next, label)
		prev = next
	}

	return l, nil
}

// InsertParallelPath adds a fresh chain labelled by path, running from the
// source node of the edge labelled spanStart to the target node of the edge
// labelled spanEnd. spanStart and spanEnd may name the same edge.
//
// The new edges are appended to the source node's outgoing list, after any
// edges already there, and len(path)-1 intermediate nodes are created.
//
// Errors:
//   - ErrFrozen      lattice was frozen.
//   - ErrEmptyPath   path is empty.
//   - ErrNotFound    spanStart or spanEnd is unknown.
//   - ErrAmbiguous   a path label already exists or repeats.
//   - ErrInvalidSpan the span source cannot reach the span target.
//
// Complexity: O(V+E) for the reachability check plus O(len(path)).
func (l *Lattice[L]) InsertParallelPath(spanStart, spanEnd L, path ...L) error {
	// 1. Lifecycle and argument checks.
	if l.frozen {
		return fmt.Errorf("InsertParallelPath: %w", ErrFrozen)
	}
	if len(path) == 0 {
		return fmt.Errorf("InsertParallelPath(%v..%v): %w", spanStart, spanEnd, ErrEmptyPath)
	}

	// 2. Resolve the span endpoints.
	startEdge, ok := l.byLabel[spanStart]
	if !ok {
		return fmt.Errorf("InsertParallelPath: span start %v: %w", spanStart, ErrNotFound)
	}
	endEdge, ok := l.byLabel[spanEnd]
	if !ok {
		return fmt.Errorf("InsertParallelPath: span end %v: %w", spanEnd, ErrNotFound)
	}

	// 3. New labels must be fresh and pairwise distinct.
	seen := make(map[L]struct{}, len(path))
	for _, label := range path {
		if _, dup := l.byLabel[label]; dup {
			return fmt.Errorf("InsertParallelPath: label %v: %w", label, ErrAmbiguous)
		}
		if _, dup := seen[label]; dup {
			return fmt.Errorf("InsertParallelPath: label %v repeats: %w", label, ErrAmbiguous)
		}
		seen[label] = struct{}{}
	}

	// 4. The span must be topologically ordered: S reaches E through existing
	//    structure (deleted edges count, they are still connected).
	src, dst := startEdge.from, endEdge.to
	if startEdge != endEdge && (src == dst || !l.Reachable(src, dst)) {
		return fmt.Errorf("InsertParallelPath(%v..%v): %w", spanStart, spanEnd, ErrInvalidSpan)
	}

	// 5. Attach the chain: intermediate nodes for all but the last label,
	//    the last edge lands on the span target.
	from := src
	var to *Node[L]
	for i, label := range path {
		if i == len(path)-1 {
			to = dst
		} else {
			to = l.newNode()
		}
		l.link(from, to, label)
		from = to
	}

	return nil
}

// MarkDeleted flags the edge carrying label as deleted. Structure is left
// untouched. Marking an already deleted edge is a no-op.
//
// Errors: ErrFrozen, ErrNotFound.
// Complexity: O(1).
func (l *Lattice[L]) MarkDeleted(label L) error {
	if l.frozen {
		return fmt.Errorf("MarkDeleted: %w", ErrFrozen)
	}
	e, ok := l.byLabel[label]
	if !ok {
		return fmt.Errorf("MarkDeleted: label %v: %w", label, ErrNotFound)
	}
	e.deleted = true

	return nil
}

// Freeze ends the build phase. Subsequent builder calls fail with ErrFrozen.
func (l *Lattice[L]) Freeze() { l.frozen = true }

// Frozen reports whether Freeze was called.
func (l *Lattice[L]) Frozen() bool { return l.frozen }

// Edges returns every edge, deleted ones included, in creation order.
// Complexity: O(E).
func (l *Lattice[L]) Edges() []*Edge[L] {
	out := make([]*Edge[L], len(l.edges))
	copy(out, l.edges)

	return out
}

// Nodes returns every node in creation order.
// Complexity: O(V).
func (l *Lattice[L]) Nodes() []*Node[L] {
	out := make([]*Node[L], len(l.nodes))
	copy(out, l.nodes)

	return out
}

// Source returns the first node created by Build, the start of the chain.
func (l *Lattice[L]) Source() *Node[L] { return l.nodes[0] }

// EdgeByLabel resolves a label to its edge.
func (l *Lattice[L]) EdgeByLabel(label L) (*Edge[L], bool) {
	e, ok := l.byLabel[label]

	return e, ok
}

// EdgeCount returns the number of edges, deleted ones included.
func (l *Lattice[L]) EdgeCount() int { return len(l.edges) }

// NodeCount returns the number of nodes.
func (l *Lattice[L]) NodeCount() int { return len(l.nodes) }

// newNode appends a node with the next creation index.
func (l *Lattice[L]) newNode() *Node[L] {
	n := &Node[L]{id: len(l.nodes)}
	l.nodes = append(l.nodes, n)

	return n
}

// link creates the edge from → to and registers it everywhere.
func (l *Lattice[L]) link(from, to *Node[L], label L) *Edge[L] {
	e := &Edge[L]{index: len(l.edges), from: from, to: to, label: label}
	l.edges = append(l.edges, e)
	l.byLabel[label] = e
	from.out = append(from.out, e)
	to.in = append(to.in, e)

	return e
}
