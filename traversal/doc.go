// Package traversal enumerates contiguous sub-paths of a term lattice under
// caller-driven pruning.
//
// What:
//
//   - A Traversal is a single-cursor, pull-based depth-first walk over a
//     lattice's edges. Every edge that is not deleted starts a path of its own
//     (a root); roots come out in edge creation order.
//   - A path is only extended when the caller, after looking at a step, records
//     an exchanged state for it (SetExchangedState / ExchangeFor). Withholding
//     the state prunes the path: nothing that has it as a prefix is produced.
//   - Deleted edges are never reported. When a path would continue over a
//     deleted edge the walk bypasses it and fans out to every live edge
//     reachable through a chain of deleted ones, without adding the deleted
//     label to the path.
//   - The state value is opaque. The engine only checks whether it was set and
//     hands it back on every continuation it caused (Step.Inherited), so a
//     matching automaton can resume its own cursor.
//
// Why:
//
//   - Rule matching over query alternatives needs every contiguous sub-path,
//     but the full set is exponential in the number of alternatives. Letting
//     the matcher decide which paths are worth extending keeps the work
//     proportional to what actually matches.
//
// Key Types:
//
//   - Traversal[L, S]: the walk; L is the term label, S the exchanged state.
//   - Step[L, S]:      immutable snapshot returned by Next.
//   - Option:          functional options (WithMaxPathLength, WithLogger).
//
// Algorithm:
//
//	stack ← roots for live edges, reversed
//	Next():
//	  if state was recorded for the current step:
//	      push continuations for live successors of current edge's target, reversed
//	  clear state
//	  pop → root:         terms = [label]
//	        continuation: terms = parent terms + [label]
//	  empty stack → finished (terminal, idempotent)
//
// Each branch's whole forward subtree is exhausted before its siblings and
// before any pending root.
//
// Complexity:
//
//   - Of:   O(E)
//   - Next: O(k + b) where k is the path length (terms copy) and b the number
//     of edges inspected while resolving continuations through deleted edges.
//   - Memory: O(pending tasks); each task shares its parent's term slice.
//
// Concurrency: a Traversal is a single-reader, single-writer cursor and must
// not be used from several goroutines. Many traversals may read one built
// lattice at the same time.
//
// Errors:
//
//   - ErrStaleStep  ExchangeFor called with a snapshot that is no longer current
//   - ErrFinished   ExchangeFor called after the traversal finished
package traversal
