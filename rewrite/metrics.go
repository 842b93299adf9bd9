// SPDX-License-Identifier: MIT
// Package: qlattice/rewrite
//
// metrics.go: prometheus instrumentation.

package rewrite

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Action labels.
const (
	actionSynonym = "synonym"
	actionDelete  = "delete"
	actionBoost   = "boost"
)

// Result labels.
const (
	resultOK       = "ok"
	resultError    = "error"
	resultCanceled = "canceled"
)

var (
	// rewriteTotal counts Rewrite calls by outcome.
	rewriteTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "qlattice_rewrite_total",
		Help: "Total query rewrites by result",
	}, []string{"result"})

	// ruleMatchesTotal counts applied rule actions.
	ruleMatchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "qlattice_rule_matches_total",
		Help: "Total rule actions applied by action type",
	}, []string{"action"})

	// traversalSteps tracks how many traversal steps one match pass needed.
	traversalSteps = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "qlattice_traversal_steps",
		Help:    "Traversal steps per rule matching pass",
		Buckets: prometheus.ExponentialBuckets(1, 2, 12), // 1 to 2048
	})
)
