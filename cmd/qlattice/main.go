// SPDX-License-Identifier: MIT

// Command qlattice inspects term lattices and rewrites queries with rule files.
//
//	qlattice walk a b c --insert a:b:d,e --delete b
//	qlattice expand "cheap personal computer" --rules rules.yaml
package main

import (
	"log/slog"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("qlattice failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
