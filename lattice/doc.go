// Package lattice models a search query as a term lattice: a directed acyclic
// graph whose edges carry term labels and whose source-to-sink paths are the
// alternative token sequences of one query fragment.
//
// What:
//
//   - Build: a linear chain from an ordered label sequence (n labels → n edges,
//     n+1 nodes). Empty input is legal and yields one node and no edges.
//   - InsertParallelPath: a fresh chain of edges spanning from the source node
//     of one labelled edge to the target node of another (or the same) edge.
//     Used for synonyms and other alternatives.
//   - MarkDeleted: flags an edge as deleted. The edge and its endpoints stay in
//     place; consumers such as traversal bypass it.
//   - Freeze: ends the build phase. A frozen lattice is read-only and can be
//     shared by any number of independent traversals.
//
// Key Types:
//
//   - Lattice[L]: owns every node and edge, exposes edges in creation order.
//   - Node[L]:    opaque identity with ordered outgoing and unordered incoming edges.
//   - Edge[L]:    From → To with a label and a deleted flag.
//
// Labels are looked up by value, so they must be unique within one lattice.
// Builder operations enforce this and fail with ErrAmbiguous otherwise.
//
// Complexity:
//
//   - Build:              O(n)
//   - InsertParallelPath: O(V+E) for the span reachability check, O(k) to attach k edges
//   - MarkDeleted:        O(1)
//   - Edges/Nodes:        O(E) / O(V) copies
//   - Validate:           O(V+E)
//
// Errors:
//
//   - ErrNotFound     a label does not resolve to an edge
//   - ErrAmbiguous    a label is already present (or repeats in the input)
//   - ErrEmptyPath    InsertParallelPath called without labels
//   - ErrInvalidSpan  the span start cannot reach the span end
//   - ErrFrozen       builder call after Freeze
//
// Concurrency: a Lattice is not safe for concurrent mutation. After building
// (and ideally Freeze) it is read-only and safe for concurrent readers.
package lattice
