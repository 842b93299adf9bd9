// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qlattice/lattice"
)

const testRules = `rules:
  - input: "personal computer"
    synonyms: ["pc"]
  - input: "cheap"
    delete: true
  - input: "notebook"
    boosts:
      - query: "brand:acme"
        weight: 2.5
`

// run executes the root command and returns stdout lines.
func run(t *testing.T, args ...string) ([]string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)

	err := cmd.Execute()
	text := strings.TrimRight(out.String(), "\n")
	if text == "" {
		return nil, err
	}

	return strings.Split(text, "\n"), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestWalk_Chain(t *testing.T) {
	lines, err := run(t, "walk", "a", "b", "c")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "a b", "a b c", "b", "b c", "c"}, lines)
}

func TestWalk_InsertAndDelete(t *testing.T) {
	lines, err := run(t, "walk", "a", "b", "c", "--insert", "a:b:d,e", "--delete", "b")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "a c", "c", "d", "d e", "d e c", "e", "e c"}, lines)
}

func TestWalk_MaxPathLength(t *testing.T) {
	lines, err := run(t, "walk", "a", "b", "c", "--max-path-length", "1")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, lines)
}

func TestWalk_MaxPathLengthFromEnv(t *testing.T) {
	t.Setenv("QLATTICE_MAX_PATH_LENGTH", "1")

	lines, err := run(t, "walk", "a", "b", "c")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, lines)
}

func TestWalk_FlagBeatsEnv(t *testing.T) {
	t.Setenv("QLATTICE_MAX_PATH_LENGTH", "1")

	lines, err := run(t, "walk", "a", "b", "--max-path-length", "2")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "a b", "b"}, lines)
}

func TestWalk_ConfigFile(t *testing.T) {
	cfg := writeFile(t, "qlattice.yaml", "max-path-length: 2\nlog-level: debug\n")

	lines, err := run(t, "--config", cfg, "walk", "a", "b", "c")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "a b", "b", "b c", "c"}, lines)
}

func TestWalk_Errors(t *testing.T) {
	_, err := run(t, "walk", "a", "b", "--insert", "a:b")
	assert.ErrorIs(t, err, errBadInsert)

	_, err = run(t, "walk", "a", "b", "--insert", "a:b:x,,y")
	assert.ErrorIs(t, err, errBadInsert)

	_, err = run(t, "walk", "a", "b", "--insert", "b:a:x")
	assert.ErrorIs(t, err, lattice.ErrInvalidSpan)

	_, err = run(t, "walk", "a", "b", "--delete", "z")
	assert.ErrorIs(t, err, lattice.ErrNotFound)

	_, err = run(t, "walk", "a", "a")
	assert.ErrorIs(t, err, lattice.ErrAmbiguous)

	_, err = run(t, "walk")
	assert.Error(t, err)
}

func TestParseInsert(t *testing.T) {
	arg, err := parseInsert("x:y:p,q,r")
	require.NoError(t, err)
	assert.Equal(t, insertArg{start: "x", end: "y", path: []string{"p", "q", "r"}}, arg)

	for _, bad := range []string{"", "x", "x:y", "x::p", ":y:p", "x:y:", "x:y:p:q", "x:y:p,,q", "x:y:,p", "x:y:p,"} {
		_, err = parseInsert(bad)
		assert.ErrorIs(t, err, errBadInsert, bad)
	}
}

func TestExpand(t *testing.T) {
	rules := writeFile(t, "rules.yaml", testRules)

	lines, err := run(t, "expand", "Cheap", "personal", "computer", "notebook", "--rules", rules)
	require.NoError(t, err)

	text := strings.Join(lines, "\n")
	assert.Equal(t, "matches:", lines[0])
	assert.Contains(t, text, "  cheap -> delete")
	assert.Contains(t, text, "  personal computer -> synonym")
	assert.Contains(t, text, "  notebook -> boost")
	assert.Contains(t, text, "0: cheap#0 (0 -> 1) [deleted]")
	assert.Contains(t, text, "alternatives:\n  personal computer notebook\n  pc notebook")
	assert.Contains(t, text, "boosts:\n  brand:acme^2.5")
}

func TestExpand_RulesFromConfig(t *testing.T) {
	rules := writeFile(t, "rules.yaml", testRules)
	cfg := writeFile(t, "qlattice.yaml", "rules: "+rules+"\n")

	lines, err := run(t, "--config", cfg, "expand", "personal computer")
	require.NoError(t, err)
	assert.Contains(t, lines, "  pc")
	assert.NotContains(t, lines, "boosts:")
}

func TestExpand_CaseSensitive(t *testing.T) {
	rules := writeFile(t, "rules.yaml", testRules)

	lines, err := run(t, "expand", "Cheap", "--rules", rules, "--lowercase=false")
	require.NoError(t, err)
	assert.Equal(t, []string{"matches:", "edges:", "  0: Cheap#0 (0 -> 1)", "alternatives:", "  Cheap"}, lines)
}

func TestExpand_Errors(t *testing.T) {
	_, err := run(t, "expand", "cheap")
	assert.ErrorIs(t, err, errNoRules)

	_, err = run(t, "expand", "cheap", "--rules", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := writeFile(t, "bad.yaml", "rules:\n  - input: cheap\n")
	_, err = run(t, "expand", "cheap", "--rules", bad)
	assert.Error(t, err)
}

func TestRoot_InvalidLogLevel(t *testing.T) {
	_, err := run(t, "--log-level", "loud", "walk", "a")
	assert.Error(t, err)
}

func TestRoot_MissingConfig(t *testing.T) {
	_, err := run(t, "--config", filepath.Join(t.TempDir(), "none.yaml"), "walk", "a")
	assert.Error(t, err)
}
