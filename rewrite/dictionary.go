// SPDX-License-Identifier: MIT
// Package: qlattice/rewrite
//
// dictionary.go: trie over rule input terms.

package rewrite

// trieNode is one term position in the dictionary. rules holds the rules
// whose input ends here.
type trieNode struct {
	children map[string]*trieNode
	rules    []*Rule
}

// child returns the node reached by term, or nil.
func (n *trieNode) child(term string) *trieNode {
	if n == nil {
		return nil
	}

	return n.children[term]
}

// Dictionary indexes rules by their input term sequence.
type Dictionary struct {
	root      *trieNode
	lowercase bool
	rules     int
	depth     int
}

// NewDictionary indexes every rule of rs. Inputs are normalized the same way
// queries are (see Tokenize). Rules sharing an input all fire, in file order.
func NewDictionary(rs *RuleSet, lowercase bool) *Dictionary {
	d := &Dictionary{root: &trieNode{}, lowercase: lowercase}
	if rs == nil {
		return d
	}

	for i := range rs.Rules {
		r := &rs.Rules[i]
		terms := splitTerms(r.Input, lowercase)
		if len(terms) == 0 {
			continue
		}

		n := d.root
		for _, term := range terms {
			next := n.children[term]
			if next == nil {
				if n.children == nil {
					n.children = make(map[string]*trieNode)
				}
				next = &trieNode{}
				n.children[term] = next
			}
			n = next
		}
		n.rules = append(n.rules, r)
		d.rules++
		if len(terms) > d.depth {
			d.depth = len(terms)
		}
	}

	return d
}

// Len returns the number of indexed rules.
func (d *Dictionary) Len() int { return d.rules }

// MaxInputLength returns the number of terms of the longest rule input.
func (d *Dictionary) MaxInputLength() int { return d.depth }

// Lookup returns the rules whose input is exactly terms (already normalized).
func (d *Dictionary) Lookup(terms ...string) []*Rule {
	n := d.root
	for _, term := range terms {
		if n = n.child(term); n == nil {
			return nil
		}
	}

	return n.rules
}
