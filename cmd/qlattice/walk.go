// SPDX-License-Identifier: MIT
package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/qlattice/lattice"
	"github.com/katalvlaran/qlattice/traversal"
)

// errBadInsert reports a malformed --insert value.
var errBadInsert = errors.New("insert must look like start:end:term[,term...]")

// insertArg is one parsed --insert value.
type insertArg struct {
	start, end string
	path       []string
}

// parseInsert parses "start:end:t1,t2".
func parseInsert(s string) (insertArg, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return insertArg{}, fmt.Errorf("%q: %w", s, errBadInsert)
	}

	path := strings.Split(parts[2], ",")
	for _, term := range path {
		if term == "" {
			return insertArg{}, fmt.Errorf("%q: empty path term: %w", s, errBadInsert)
		}
	}

	return insertArg{start: parts[0], end: parts[1], path: path}, nil
}

func (a *app) newWalkCmd() *cobra.Command {
	var (
		inserts []string
		deletes []string
	)

	cmd := &cobra.Command{
		Use:   "walk TERM...",
		Short: "Enumerate every contiguous sub-path of a lattice",
		Long: `Build a lattice from the given terms, insert parallel paths, mark deletions,
then print every contiguous sub-path, one per line, in traversal order.

Examples:
  qlattice walk a b c --insert a:b:d,e
  qlattice walk a b c --delete b
  qlattice walk a b c d --max-path-length 2`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// 1. Chain.
			l, err := lattice.Build(args...)
			if err != nil {
				return err
			}

			// 2. Alternatives, in flag order.
			for _, raw := range inserts {
				arg, err := parseInsert(raw)
				if err != nil {
					return err
				}
				if err = l.InsertParallelPath(arg.start, arg.end, arg.path...); err != nil {
					return err
				}
			}

			// 3. Deletions.
			for _, d := range deletes {
				if err = l.MarkDeleted(d); err != nil {
					return err
				}
			}
			l.Freeze()

			// 4. Walk.
			paths := traversal.Subsequences(l.Edges(),
				traversal.WithMaxPathLength(a.v.GetInt(keyMaxPathLength)),
				traversal.WithLogger(a.logger))
			for _, p := range paths {
				fmt.Fprintln(cmd.OutOrStdout(), strings.Join(p, " "))
			}

			return nil
		},
	}

	cmd.Flags().StringArrayVar(&inserts, "insert", nil, "parallel path start:end:t1,t2 (repeatable)")
	cmd.Flags().StringArrayVar(&deletes, "delete", nil, "term to mark deleted (repeatable)")
	cmd.Flags().Int(keyMaxPathLength, 0, "maximum terms per path (0: unbounded)")

	return cmd
}
