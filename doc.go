// Package qlattice is a toolkit for query term lattices: build them, walk
// every contiguous sub-path, and rewrite queries with rule dictionaries.
//
// 🚀 What is qlattice?
//
//	A small, generic library that brings together:
//		• Lattice: an ordered DAG of labelled edges with parallel paths
//		• Traversal: a pull-based DFS that exchanges caller state per step
//		• Rewrite: trie-driven synonym, delete and boost rules on queries
//
// Under the hood, everything is organized under three packages:
//
//	lattice/   Build, InsertParallelPath, MarkDeleted, Validate
//	traversal/ Of, Next, SetExchangedState, Subsequences, LiveSuccessors
//	rewrite/   LoadRules, NewRewriter, Rewrite
//	cmd/qlattice CLI: walk and expand
//
// Quick ASCII example:
//
//	O - a - O - b - O - c - O
//	  \           /
//	    d - O - e
//
//	"d" and "e" form an alternative for "a b"; a traversal yields
//	a, a b, a b c, b, b c, c, d, d e, d e c, e, e c.
//
//	go get github.com/katalvlaran/qlattice
package qlattice
