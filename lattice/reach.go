// SPDX-License-Identifier: MIT
// Package: qlattice/lattice
//
// reach.go: forward reachability and cycle detection over the lattice.
//
// Both walks use an explicit stack instead of recursion so that very long
// chains do not grow the goroutine stack. Deleted edges are followed: deletion
// is a property of the edge, the endpoints stay connected.

package lattice

// Visitation states for cycle detection.
const (
	white = iota // not visited yet
	gray         // on the current DFS path
	black        // fully explored
)

// Reachable reports whether to can be reached from from by following
// outgoing edges. A node reaches itself.
// Complexity: O(V+E) time, O(V) memory.
func (l *Lattice[L]) Reachable(from, to *Node[L]) bool {
	if from == nil || to == nil {
		return false
	}
	if from == to {
		return true
	}

	// 1. Seed the stack with the start node.
	visited := make([]bool, len(l.nodes))
	stack := []*Node[L]{from}
	visited[from.id] = true

	// 2. Pop, test, push unseen successors.
	var n *Node[L]
	for len(stack) > 0 {
		n = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, e := range n.out {
			if e.to == to {
				return true
			}
			if !visited[e.to.id] {
				visited[e.to.id] = true
				stack = append(stack, e.to)
			}
		}
	}

	return false
}

// frame is one level of the iterative cycle search: a node and the index of
// the next outgoing edge to inspect.
type frame[L comparable] struct {
	node *Node[L]
	next int
}

// findCycle returns an edge that closes a cycle, or nil if the lattice is a DAG.
// Complexity: O(V+E).
func (l *Lattice[L]) findCycle() *Edge[L] {
	state := make([]int, len(l.nodes))

	for _, root := range l.nodes {
		if state[root.id] != white {
			continue
		}

		// 1. Enter the root.
		state[root.id] = gray
		stack := []frame[L]{{node: root}}

		// 2. Walk edges depth-first; a gray target is a back-edge.
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.next == len(top.node.out) {
				state[top.node.id] = black
				stack = stack[:len(stack)-1]
				continue
			}
			e := top.node.out[top.next]
			top.next++

			switch state[e.to.id] {
			case gray:
				return e
			case white:
				state[e.to.id] = gray
				stack = append(stack, frame[L]{node: e.to})
			}
		}
	}

	return nil
}
