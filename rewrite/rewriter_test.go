// SPDX-License-Identifier: MIT
package rewrite_test

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qlattice/lattice"
	"github.com/katalvlaran/qlattice/rewrite"
)

// quietLogger discards everything.
func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newRewriter loads testdata/rules.yaml.
func newRewriter(t *testing.T, opts ...rewrite.Option) *rewrite.Rewriter {
	t.Helper()
	rs, err := rewrite.LoadRulesFile(filepath.Join("testdata", "rules.yaml"))
	require.NoError(t, err)
	rw, err := rewrite.NewRewriter(rs, append([]rewrite.Option{rewrite.WithLogger(quietLogger())}, opts...)...)
	require.NoError(t, err)

	return rw
}

// rendered joins alternatives for compact assertions.
func rendered(alts [][]string) []string {
	out := make([]string, len(alts))
	for i, a := range alts {
		out[i] = strings.Join(a, " ")
	}

	return out
}

func TestRewrite_SynonymsAndDelete(t *testing.T) {
	rw := newRewriter(t)

	res, err := rw.Rewrite(context.Background(), "Cheap Personal Computer")
	require.NoError(t, err)

	require.Len(t, res.Matches, 2)
	assert.Equal(t, []string{"cheap"}, res.Matches[0].Terms())
	assert.Equal(t, []string{"personal", "computer"}, res.Matches[1].Terms())

	assert.True(t, res.Lattice.Frozen())
	assert.NoError(t, res.Lattice.Validate())
	assert.Equal(t,
		[]string{"personal computer", "pc", "desktop computer"},
		rendered(res.Alternatives()))
	assert.False(t, res.Empty())
	assert.Empty(t, res.Boosts)

	cheap, ok := res.Lattice.EdgeByLabel(rewrite.Token{Pos: 0, Text: "cheap"})
	require.True(t, ok)
	assert.True(t, cheap.Deleted())
}

func TestRewrite_BoostsAndSingleTermSynonym(t *testing.T) {
	rw := newRewriter(t)

	res, err := rw.Rewrite(context.Background(), "refurbished notebook")
	require.NoError(t, err)

	assert.Equal(t, []rewrite.Boost{
		{Query: "condition:new", Weight: -1},
		{Query: "brand:acme", Weight: 2.5},
	}, res.Boosts)
	assert.Equal(t,
		[]string{"refurbished notebook", "refurbished laptop"},
		rendered(res.Alternatives()))
}

func TestRewrite_NoMatch(t *testing.T) {
	rw := newRewriter(t)

	res, err := rw.Rewrite(context.Background(), "gaming mouse")
	require.NoError(t, err)
	assert.Empty(t, res.Matches)
	assert.Equal(t, 2, res.Lattice.EdgeCount())
	assert.Equal(t, []string{"gaming mouse"}, rendered(res.Alternatives()))
}

func TestRewrite_EmptyQuery(t *testing.T) {
	rw := newRewriter(t)

	res, err := rw.Rewrite(context.Background(), "   ")
	require.NoError(t, err)
	assert.Zero(t, res.Lattice.EdgeCount())
	assert.Empty(t, res.Alternatives())
}

func TestRewrite_EverythingDeleted(t *testing.T) {
	rw := newRewriter(t)

	res, err := rw.Rewrite(context.Background(), "cheap")
	require.NoError(t, err)
	assert.True(t, res.Empty())
	assert.Empty(t, res.Alternatives())
}

func TestRewrite_CaseSensitive(t *testing.T) {
	rw := newRewriter(t, rewrite.WithLowercase(false))

	res, err := rw.Rewrite(context.Background(), "Cheap cheap")
	require.NoError(t, err)
	require.Len(t, res.Matches, 1)
	assert.Equal(t, 1, res.Matches[0].First().Label().Pos)
}

func TestRewrite_RepeatedTermsStayDistinct(t *testing.T) {
	rw := newRewriter(t)

	res, err := rw.Rewrite(context.Background(), "notebook notebook")
	require.NoError(t, err)
	require.Len(t, res.Matches, 2)
	assert.Equal(t,
		[]string{"notebook notebook", "notebook laptop", "laptop notebook", "laptop laptop"},
		rendered(res.Alternatives()))
	assert.Len(t, res.Boosts, 2)
}

func TestRewrite_Canceled(t *testing.T) {
	rw := newRewriter(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := rw.Rewrite(ctx, "cheap personal computer")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewRewriter_InvalidRules(t *testing.T) {
	_, err := rewrite.NewRewriter(&rewrite.RuleSet{Rules: []rewrite.Rule{{Input: "x"}}})
	assert.ErrorIs(t, err, rewrite.ErrNoAction)

	rw, err := rewrite.NewRewriter(nil, rewrite.WithLogger(quietLogger()))
	require.NoError(t, err)
	assert.Zero(t, rw.Dictionary().Len())
}

func TestMatcher_AcrossDeletedTerm(t *testing.T) {
	// "personal cheap computer" with cheap already deleted upstream.
	tokens := rewrite.Tokenize("personal cheap computer", true)
	l, err := lattice.Build(tokens...)
	require.NoError(t, err)
	require.NoError(t, l.MarkDeleted(tokens[1]))

	dict := rewrite.NewDictionary(&rewrite.RuleSet{Rules: []rewrite.Rule{
		{Input: "personal computer", Synonyms: []string{"pc"}},
		{Input: "cheap", Delete: true},
	}}, true)

	matches, err := rewrite.NewMatcher(dict, quietLogger()).Match(context.Background(), l.Edges())
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, []string{"personal", "computer"}, matches[0].Terms())
	assert.Equal(t, tokens[0], matches[0].First().Label())
	assert.Equal(t, tokens[2], matches[0].Last().Label())
}

func TestMatcher_OverlappingRules(t *testing.T) {
	tokens := rewrite.Tokenize("a b c", true)
	l, err := lattice.Build(tokens...)
	require.NoError(t, err)

	dict := rewrite.NewDictionary(&rewrite.RuleSet{Rules: []rewrite.Rule{
		{Input: "a b", Delete: true},
		{Input: "b c", Delete: true},
		{Input: "a b c", Delete: true},
		{Input: "b", Delete: true},
	}}, true)

	matches, err := rewrite.NewMatcher(dict, nil).Match(context.Background(), l.Edges())
	require.NoError(t, err)

	var got []string
	for _, m := range matches {
		got = append(got, strings.Join(m.Terms(), " "))
	}
	assert.Equal(t, []string{"a b", "a b c", "b", "b c"}, got)
}
