// SPDX-License-Identifier: MIT
// Package: qlattice/traversal
//
// types.go: Step snapshot, options and sentinel errors.

package traversal

import (
	"errors"
	"log/slog"

	"github.com/katalvlaran/qlattice/lattice"
)

var (
	// ErrStaleStep indicates that a state was offered for a step that is no
	// longer the traversal's current one.
	ErrStaleStep = errors.New("traversal: step is not current")

	// ErrFinished indicates that the traversal has no current step to extend.
	ErrFinished = errors.New("traversal: traversal is finished")
)

// Step is an immutable snapshot of the traversal cursor.
//
// The zero Step stands for "no step yet": no edge, no terms, not finished.
type Step[L comparable, S any] struct {
	owner        *Traversal[L, S]
	seq          uint64
	edge         *lattice.Edge[L]
	terms        []L // shared with pending children, never mutated
	inherited    S
	hasInherited bool
	finished     bool
}

// Seq returns the snapshot number; it grows by one on every Next call.
func (s Step[L, S]) Seq() uint64 { return s.seq }

// Edge returns the edge reached by this step, or nil when finished or before
// the first Next.
func (s Step[L, S]) Edge() *lattice.Edge[L] { return s.edge }

// Terms returns the labels accumulated since the path's root, deleted edges
// excluded. The slice is a copy.
func (s Step[L, S]) Terms() []L {
	out := make([]L, len(s.terms))
	copy(out, s.terms)

	return out
}

// Len returns the number of terms on the path.
func (s Step[L, S]) Len() int { return len(s.terms) }

// Finished reports whether the traversal was exhausted at this step.
func (s Step[L, S]) Finished() bool { return s.finished }

// IsRoot reports whether this step starts a new path.
func (s Step[L, S]) IsRoot() bool { return len(s.terms) == 1 }

// Inherited returns the state recorded on the step this continuation extends.
// Roots and finished steps report false.
func (s Step[L, S]) Inherited() (S, bool) { return s.inherited, s.hasInherited }

// Option configures a Traversal.
type Option func(*Options)

// Options holds the configurable parameters of a Traversal.
type Options struct {
	// MaxPathLength caps the number of terms on a path. A path that already
	// holds MaxPathLength terms is not extended even if state was recorded.
	// Zero or negative means unbounded.
	MaxPathLength int

	// Logger, if non-nil, receives debug records for scheduling decisions.
	Logger *slog.Logger
}

// DefaultOptions returns unbounded paths and no logging.
func DefaultOptions() Options {
	return Options{
		MaxPathLength: 0,
		Logger:        nil,
	}
}

// WithMaxPathLength limits path length to n terms (n <= 0: no limit).
func WithMaxPathLength(n int) Option {
	return func(o *Options) {
		o.MaxPathLength = n
	}
}

// WithLogger installs a logger for debug tracing. Nil is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		if logger != nil {
			o.Logger = logger
		}
	}
}

// task is a unit of pending work. A nil parent marks a root.
type task[L comparable, S any] struct {
	edge         *lattice.Edge[L]
	parent       []L
	inherited    S
	hasInherited bool
}
