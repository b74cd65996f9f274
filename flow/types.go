// Package flow defines the result types and sentinel errors for the
// maximum-flow computation.
package flow

import "errors"

// Sentinel errors for flow operations.
var (
	// ErrSameSourceSink indicates source and sink are the same node.
	ErrSameSourceSink = errors.New("flow: source and sink must be different")
	// ErrNegativeCapacity indicates the neighbour function yielded an edge
	// with negative capacity.
	ErrNegativeCapacity = errors.New("flow: negative edge capacity encountered")
)

// Edge identifies a directed arc between two nodes.
type Edge[N comparable] struct {
	From, To N
}

// Result carries the outcome of MaxFlow.
//
// Value is the maximum flow value, which equals the minimum cut value.
// Flow maps each arc carrying positive flow to the amount it carries.
// SourceSide and SinkSide partition the node set into the minimum cut:
// SourceSide holds every node still reachable from the source in the final
// residual graph, SinkSide the rest.
type Result[N comparable] struct {
	Value      float64
	Flow       map[Edge[N]]float64
	SourceSide map[N]bool
	SinkSide   map[N]bool
}
