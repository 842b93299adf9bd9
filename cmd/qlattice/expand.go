// SPDX-License-Identifier: MIT
package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/qlattice/rewrite"
)

// errNoRules reports a missing rules file setting.
var errNoRules = errors.New("no rules file: set --rules, QLATTICE_RULES or rules in the config file")

func (a *app) newExpandCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expand QUERY...",
		Short: "Rewrite a query with a rules file",
		Long: `Tokenize the query, match the rules against every sub-path and print the
matches, the rewritten lattice edges, the resulting alternatives and boosts.

Example:
  qlattice expand "cheap personal computer" --rules rules.yaml`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.v.GetString(keyRules)
			if path == "" {
				return errNoRules
			}
			rules, err := rewrite.LoadRulesFile(path)
			if err != nil {
				return err
			}

			rw, err := rewrite.NewRewriter(rules,
				rewrite.WithLogger(a.logger),
				rewrite.WithLowercase(a.v.GetBool(keyLowercase)),
				rewrite.WithMaxPathLength(a.v.GetInt(keyMaxPathLength)))
			if err != nil {
				return err
			}

			res, err := rw.Rewrite(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}

			printResult(cmd.OutOrStdout(), res)

			return nil
		},
	}

	cmd.Flags().String(keyRules, "", "YAML rules file")
	cmd.Flags().Bool(keyLowercase, true, "lower-case query terms and rules")
	cmd.Flags().Int(keyMaxPathLength, 0, "maximum terms per matched path (0: longest rule input)")

	return cmd
}

// printResult renders a rewrite result as indented sections.
func printResult(w io.Writer, res *rewrite.Result) {
	fmt.Fprintln(w, "matches:")
	for _, m := range res.Matches {
		fmt.Fprintf(w, "  %s -> %s\n", strings.Join(m.Terms(), " "), strings.Join(m.Rule.Actions(), ","))
	}

	fmt.Fprintln(w, "edges:")
	for _, e := range res.Lattice.Edges() {
		mark := ""
		if e.Deleted() {
			mark = " [deleted]"
		}
		fmt.Fprintf(w, "  %d: %s (%d -> %d)%s\n", e.Index(), e.Label(), e.From().ID(), e.To().ID(), mark)
	}

	fmt.Fprintln(w, "alternatives:")
	for _, alt := range res.Alternatives() {
		fmt.Fprintf(w, "  %s\n", strings.Join(alt, " "))
	}

	if len(res.Boosts) > 0 {
		fmt.Fprintln(w, "boosts:")
		for _, b := range res.Boosts {
			fmt.Fprintf(w, "  %s^%s\n", b.Query, strconv.FormatFloat(b.Weight, 'g', -1, 64))
		}
	}
}
