// SPDX-License-Identifier: MIT
// Package: qlattice/rewrite
//
// matcher.go: the rule-matching automaton that drives a traversal.

package rewrite

import (
	"context"
	"log/slog"

	"github.com/katalvlaran/qlattice/lattice"
	"github.com/katalvlaran/qlattice/traversal"
)

// Match is one rule whose input equals the terms of a contiguous lattice path.
type Match struct {
	Rule  *Rule
	Edges []*lattice.Edge[Token] // path edges, deleted ones bypassed
}

// First returns the first edge of the matched path.
func (m Match) First() *lattice.Edge[Token] { return m.Edges[0] }

// Last returns the last edge of the matched path.
func (m Match) Last() *lattice.Edge[Token] { return m.Edges[len(m.Edges)-1] }

// Terms returns the matched term texts.
func (m Match) Terms() []string {
	out := make([]string, len(m.Edges))
	for i, e := range m.Edges {
		out[i] = e.Label().Text
	}

	return out
}

// matchState is the exchanged state: the trie cursor after the step and the
// edges matched so far.
type matchState struct {
	node  *trieNode
	edges []*lattice.Edge[Token]
}

// Matcher finds dictionary matches in a lattice.
type Matcher struct {
	dict   *Dictionary
	logger *slog.Logger
	opts   []traversal.Option
}

// NewMatcher returns a Matcher over dict. Extra traversal options are passed
// to every traversal it starts.
func NewMatcher(dict *Dictionary, logger *slog.Logger, opts ...traversal.Option) *Matcher {
	if logger == nil {
		logger = slog.Default()
	}

	return &Matcher{dict: dict, logger: logger, opts: opts}
}

// Match returns every match over edges, in traversal order: by root edge
// creation order, then depth-first.
//
// A path is extended only while its terms are a proper prefix of some rule
// input; everything else is pruned by withholding the exchanged state.
// Cancellation of ctx is checked before every step.
func (m *Matcher) Match(ctx context.Context, edges []*lattice.Edge[Token]) ([]Match, error) {
	tr := traversal.Of[Token, matchState](edges, m.opts...)

	var (
		matches []Match
		steps   int
	)
	for step := range tr.Steps() {
		// 1. Cancellation check.
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		steps++

		// 2. Resume the automaton: roots start at the trie root.
		node, path := m.dict.root, []*lattice.Edge[Token](nil)
		if st, ok := step.Inherited(); ok {
			node, path = st.node, st.edges
		}

		// 3. Advance on this term; no child means the path is dead.
		next := node.child(step.Edge().Label().Text)
		if next == nil {
			continue
		}
		matched := make([]*lattice.Edge[Token], len(path)+1)
		copy(matched, path)
		matched[len(path)] = step.Edge()

		// 4. Record completed inputs.
		for _, r := range next.rules {
			matches = append(matches, Match{Rule: r, Edges: matched})
		}

		// 5. Ask for continuation only if a longer input can still match.
		if len(next.children) > 0 {
			tr.SetExchangedState(matchState{node: next, edges: matched})
		}
	}

	traversalSteps.Observe(float64(steps))
	m.logger.Debug("rewrite: matched",
		slog.Int("steps", steps),
		slog.Int("matches", len(matches)))

	return matches, nil
}
