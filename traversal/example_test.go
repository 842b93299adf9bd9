package traversal_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/qlattice/lattice"
	"github.com/katalvlaran/qlattice/traversal"
)

// ExampleSubsequences lists every contiguous sub-path of a lattice with one
// alternative:
//
//	O - a - O - b - O - c - O
//	  \           /
//	    d - O - e
func ExampleSubsequences() {
	l, _ := lattice.Build("a", "b", "c")
	_ = l.InsertParallelPath("a", "b", "d", "e")

	for _, terms := range traversal.Subsequences(l.Edges()) {
		fmt.Println(strings.Join(terms, " "))
	}

	// Output:
	// a
	// a b
	// a b c
	// b
	// b c
	// c
	// d
	// d e
	// d e c
	// e
	// e c
}

// ExampleTraversal_Next drives a traversal by hand: only paths starting with
// "new" are extended, and the deleted "cheap2" is bypassed.
func ExampleTraversal_Next() {
	l, _ := lattice.Build("cheap", "new", "cheap2", "laptop")
	_ = l.MarkDeleted("cheap2")

	tr := traversal.Of[string, int](l.Edges())
	for step := tr.Next(); !step.Finished(); step = tr.Next() {
		fmt.Println(strings.Join(step.Terms(), " "))
		if step.Terms()[0] == "new" {
			tr.SetExchangedState(step.Len())
		}
	}

	// Output:
	// cheap
	// new
	// new laptop
	// laptop
}
