// SPDX-License-Identifier: MIT
// Package: qlattice/rewrite
//
// token.go: lattice labels for query terms.

package rewrite

import (
	"strconv"
	"strings"
)

// Token is a lattice label: the term text plus a position that keeps equal
// texts apart (lattice labels must be unique).
type Token struct {
	Pos  int
	Text string
}

// String renders the token as text#pos.
func (t Token) String() string { return t.Text + "#" + strconv.Itoa(t.Pos) }

// Tokenize splits query on whitespace and numbers the terms from 0.
// With lowercase set, term texts are lower-cased.
func Tokenize(query string, lowercase bool) []Token {
	fields := splitTerms(query, lowercase)
	tokens := make([]Token, len(fields))
	for i, f := range fields {
		tokens[i] = Token{Pos: i, Text: f}
	}

	return tokens
}

// splitTerms is the single normalization used for queries, rule inputs and
// synonyms alike.
func splitTerms(s string, lowercase bool) []string {
	if lowercase {
		s = strings.ToLower(s)
	}

	return strings.Fields(s)
}

// texts returns the term texts of tokens.
func texts(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = t.Text
	}

	return out
}
