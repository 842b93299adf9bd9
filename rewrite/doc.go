// Package rewrite expands a search query with rules before it reaches a
// search backend.
//
// A query is tokenized into a term lattice (see package lattice). A rule
// dictionary, stored as a trie over rule input terms, is matched against every
// contiguous sub-path of the lattice by driving a state-exchanging traversal
// (see package traversal): the trie cursor is the exchanged state, so a path
// is only extended while it is still a prefix of some rule input.
//
// Matched rules are then applied to the lattice:
//
//   - synonyms become parallel paths spanning the matched terms;
//   - delete marks every matched edge as deleted;
//   - boosts are collected on the Result for the query renderer.
//
// Matching runs once, on the lattice as tokenized, so rules never match their
// own output. Synonyms are inserted before deletions are applied.
//
// Rules are loaded from YAML:
//
//	rules:
//	  - input: "personal computer"
//	    synonyms: ["pc"]
//	  - input: "cheap"
//	    delete: true
//	  - input: "notebook"
//	    boosts:
//	      - query: "laptop"
//	        weight: 2.5
//
// Rewriter is safe for concurrent use; every Rewrite call builds its own
// lattice and traversal.
package rewrite
