// Package dijkstra defines the core types, configuration options, and
// sentinel errors for the generic shortest-path engine.
//
// The engine is deliberately graph-agnostic: it never sees a board, a
// coordinate, or an adjacency structure. Its only window onto the graph is
// a NeighbourFunc, which turns a node into a finite lazy sequence of
// (neighbour, weight) pairs. Any comparable type can act as a node.
package dijkstra

import (
	"errors"
	"iter"
	"math"
)

// NeighbourFunc yields the weighted outgoing edges of a node as a finite,
// restartable sequence. Weights must be non-negative; ShortestPath fails
// fast with ErrNegativeWeight otherwise.
//
// The sequence must be deterministic: identical calls must yield identical
// pairs in identical order, because the yield order participates in the
// engine's tie-breaking (see ShortestPath).
type NeighbourFunc[N comparable] func(n N) iter.Seq2[N, float64]

// Sentinel errors returned by the engine.
var (
	// ErrNilNeighbourFunc indicates that a nil NeighbourFunc was passed to
	// ShortestPath.
	ErrNilNeighbourFunc = errors.New("dijkstra: neighbour function is nil")

	// ErrNegativeWeight indicates that the neighbour function yielded an
	// edge with a negative weight.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrUnreachableNode indicates that Backtrace was asked for a path to a
	// node the search never reached.
	ErrUnreachableNode = errors.New("dijkstra: target node was not reached")
)

// CallbackFunc is invoked once per finalized node with the node and its
// exact shortest distance. Returning true stops the search early; the maps
// accumulated so far are returned.
type CallbackFunc[N comparable] func(n N, dist float64) bool

// Options configures a single ShortestPath run.
//
// Callback    – optional per-finalization hook with early-stop semantics.
// MaxDistance – nodes farther than this are not finalized or explored.
//
//	Default is +Inf (no cap).
type Options[N comparable] struct {
	Callback    CallbackFunc[N]
	MaxDistance float64
}

// Option is a functional option for configuring ShortestPath.
type Option[N comparable] func(*Options[N])

// WithCallback installs cb as the per-finalization hook. The hook observes
// each node exactly once, at the moment its distance becomes final, in
// nondecreasing distance order. Returning true halts the search.
func WithCallback[N comparable](cb CallbackFunc[N]) Option[N] {
	return func(o *Options[N]) {
		o.Callback = cb
	}
}

// WithMaxDistance caps exploration: once the closest frontier entry lies
// beyond max, the search stops. Must be non-negative; negative values panic
// to signal invalid configuration early.
func WithMaxDistance[N comparable](max float64) Option[N] {
	return func(o *Options[N]) {
		if max < 0 {
			panic("dijkstra: MaxDistance must be non-negative")
		}
		o.MaxDistance = max
	}
}

// DefaultOptions returns the Options used when no functional options are
// supplied: no callback, no distance cap.
func DefaultOptions[N comparable]() Options[N] {
	return Options[N]{
		Callback:    nil,
		MaxDistance: math.Inf(1),
	}
}
