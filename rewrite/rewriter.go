// SPDX-License-Identifier: MIT
// Package: qlattice/rewrite
//
// rewriter.go: tokenize → build → match → apply.

package rewrite

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/katalvlaran/qlattice/lattice"
	"github.com/katalvlaran/qlattice/traversal"
)

// Option configures a Rewriter.
type Option func(*Options)

// Options holds Rewriter settings.
type Options struct {
	// Logger receives rewrite records; defaults to slog.Default().
	Logger *slog.Logger

	// Lowercase normalizes query terms, rule inputs and synonyms. Default true.
	Lowercase bool

	// MaxPathLength bounds matching paths; 0 uses the longest rule input.
	MaxPathLength int
}

// DefaultOptions returns the default Rewriter settings.
func DefaultOptions() Options {
	return Options{
		Logger:        slog.Default(),
		Lowercase:     true,
		MaxPathLength: 0,
	}
}

// WithLogger sets the logger. Nil is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		if logger != nil {
			o.Logger = logger
		}
	}
}

// WithLowercase toggles case normalization.
func WithLowercase(on bool) Option {
	return func(o *Options) {
		o.Lowercase = on
	}
}

// WithMaxPathLength bounds the length of matched paths (n <= 0: derive from rules).
func WithMaxPathLength(n int) Option {
	return func(o *Options) {
		o.MaxPathLength = n
	}
}

// Result is the outcome of one Rewrite.
type Result struct {
	Query   string
	Lattice *lattice.Lattice[Token] // frozen
	Matches []Match
	Boosts  []Boost
}

// Empty reports whether every edge of the lattice is deleted.
func (r *Result) Empty() bool {
	for _, e := range r.Lattice.Edges() {
		if !e.Deleted() {
			return false
		}
	}

	return true
}

// Alternatives returns every complete live term sequence of the rewritten
// lattice: paths that start at the source (after bypassing deleted edges) and
// cannot be extended further. The count is exponential in the number of
// stacked alternatives; use it for display and tests.
func (r *Result) Alternatives() [][]string {
	// 1. Only paths starting at the source qualify.
	starts := make(map[*lattice.Edge[Token]]struct{})
	for _, e := range traversal.LiveSuccessors(r.Lattice.Source()) {
		starts[e] = struct{}{}
	}

	// 2. Extend every qualifying path; emit those that reach the end.
	var out [][]string
	tr := traversal.Of[Token, struct{}](r.Lattice.Edges())
	for step := range tr.Steps() {
		if step.IsRoot() {
			if _, ok := starts[step.Edge()]; !ok {
				continue
			}
		}
		if len(traversal.LiveSuccessors(step.Edge().To())) == 0 {
			out = append(out, texts(step.Terms()))
			continue
		}
		tr.SetExchangedState(struct{}{})
	}

	return out
}

// Rewriter applies a rule dictionary to queries.
type Rewriter struct {
	opts    Options
	dict    *Dictionary
	matcher *Matcher
}

// NewRewriter validates rules and prepares a Rewriter.
func NewRewriter(rules *RuleSet, opts ...Option) (*Rewriter, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	if rules == nil {
		rules = &RuleSet{}
	}
	if err := rules.Validate(); err != nil {
		return nil, err
	}

	dict := NewDictionary(rules, o.Lowercase)
	maxLen := o.MaxPathLength
	if maxLen <= 0 {
		maxLen = dict.MaxInputLength()
	}

	o.Logger.Debug("rewrite: dictionary ready",
		slog.Int("rules", dict.Len()),
		slog.Int("max_path_length", maxLen))

	return &Rewriter{
		opts: o,
		dict: dict,
		matcher: NewMatcher(dict, o.Logger,
			traversal.WithMaxPathLength(maxLen),
			traversal.WithLogger(o.Logger)),
	}, nil
}

// Dictionary returns the rule dictionary in use.
func (rw *Rewriter) Dictionary() *Dictionary { return rw.dict }

// Rewrite expands query.
//
// Steps:
//  1. Tokenize and build a chain lattice.
//  2. Match rules against every sub-path of the unmodified lattice.
//  3. Insert synonyms as parallel paths over each match.
//  4. Mark matched edges of delete rules as deleted.
//  5. Collect boosts, freeze the lattice.
func (rw *Rewriter) Rewrite(ctx context.Context, query string) (res *Result, err error) {
	defer func() {
		switch {
		case err == nil:
			rewriteTotal.WithLabelValues(resultOK).Inc()
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			rewriteTotal.WithLabelValues(resultCanceled).Inc()
		default:
			rewriteTotal.WithLabelValues(resultError).Inc()
		}
	}()

	// 1. Tokenize and build.
	tokens := Tokenize(query, rw.opts.Lowercase)
	l, err := lattice.Build(tokens...)
	if err != nil {
		return nil, fmt.Errorf("rewrite: build lattice: %w", err)
	}

	// 2. Match once, before any modification.
	matches, err := rw.matcher.Match(ctx, l.Edges())
	if err != nil {
		return nil, fmt.Errorf("rewrite: match %q: %w", query, err)
	}

	res = &Result{Query: query, Lattice: l, Matches: matches}
	nextPos := len(tokens)

	// 3. Synonyms. Positions continue after the query so labels stay unique.
	for _, m := range matches {
		for _, syn := range m.Rule.Synonyms {
			terms := splitTerms(syn, rw.opts.Lowercase)
			path := make([]Token, len(terms))
			for i, term := range terms {
				path[i] = Token{Pos: nextPos, Text: term}
				nextPos++
			}
			if err = l.InsertParallelPath(m.First().Label(), m.Last().Label(), path...); err != nil {
				return nil, fmt.Errorf("rewrite: synonym %q for %q: %w", syn, m.Rule.Input, err)
			}
			ruleMatchesTotal.WithLabelValues(actionSynonym).Inc()
		}
	}

	// 4. Deletions.
	for _, m := range matches {
		if !m.Rule.Delete {
			continue
		}
		for _, e := range m.Edges {
			if err = l.MarkDeleted(e.Label()); err != nil {
				return nil, fmt.Errorf("rewrite: delete %q: %w", m.Rule.Input, err)
			}
		}
		ruleMatchesTotal.WithLabelValues(actionDelete).Inc()
	}

	// 5. Boosts and freeze.
	for _, m := range matches {
		if len(m.Rule.Boosts) == 0 {
			continue
		}
		res.Boosts = append(res.Boosts, m.Rule.Boosts...)
		ruleMatchesTotal.WithLabelValues(actionBoost).Inc()
	}
	l.Freeze()

	if len(tokens) > 0 && res.Empty() {
		rw.opts.Logger.Warn("rewrite: every term was deleted", slog.String("query", query))
	}
	rw.opts.Logger.Debug("rewrite: done",
		slog.String("query", query),
		slog.Int("matches", len(matches)),
		slog.Int("edges", l.EdgeCount()),
		slog.String("terms", strings.Join(texts(tokens), " ")))

	return res, nil
}
