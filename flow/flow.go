// Package flow computes maximum flow and minimum cut with the Edmonds–Karp
// variant of Ford–Fulkerson, over any graph expressed as a neighbour
// function.
//
// Augmenting paths are found by breadth-first search, implemented by
// running the shortest-path engine on the residual graph with unit
// weights: BFS finds the path with the fewest edges in O(E) per phase and
// never picks the same path twice, giving the classic O(V·E²) bound.
package flow

import (
	"fmt"
	"iter"
	"math"

	"github.com/kvistberg/gridpath/dijkstra"
)

// MaxFlow computes the maximum flow from source to sink.
//
// nodes must enumerate the node set; nbs yields each node's outgoing arcs
// with their capacities (non-negative; parallel arcs are summed). The arc
// set and capacities are read once up front, so nbs is not consulted again
// after MaxFlow starts augmenting.
//
// Returns ErrSameSourceSink if source == sink, ErrNegativeCapacity if any
// arc has negative capacity. A sink unreachable from the source is not an
// error: the result has Value 0 and an empty Flow.
//
// Complexity: O(V·E²) time, O(V + E) memory.
func MaxFlow[N comparable](nodes []N, nbs dijkstra.NeighbourFunc[N], source, sink N) (*Result[N], error) {
	if source == sink {
		return nil, ErrSameSourceSink
	}
	if nbs == nil {
		return nil, dijkstra.ErrNilNeighbourFunc
	}

	// 1) Materialize capacities and a deterministic residual adjacency.
	//    Every arc gets a reverse companion so augmentation can cancel
	//    flow; arc order follows first encounter in nodes/nbs order.
	capacity := make(map[Edge[N]]float64)
	adj := make(map[N][]N)
	known := make(map[Edge[N]]bool)
	addArc := func(from, to N) {
		e := Edge[N]{from, to}
		if !known[e] {
			known[e] = true
			adj[from] = append(adj[from], to)
		}
	}
	for _, n1 := range nodes {
		for n2, c := range nbs(n1) {
			if c < 0 {
				return nil, fmt.Errorf("%w: %v→%v capacity=%v", ErrNegativeCapacity, n1, n2, c)
			}
			capacity[Edge[N]{n1, n2}] += c
			addArc(n1, n2)
			addArc(n2, n1)
		}
	}

	// 2) Residual graph as a unit-weight neighbour function, so the
	//    shortest-path engine acts as a BFS over arcs with spare capacity.
	flow := make(map[Edge[N]]float64)
	residual := func(e Edge[N]) float64 { return capacity[e] - flow[e] }
	residualNbs := func(n1 N) iter.Seq2[N, float64] {
		return func(yield func(N, float64) bool) {
			for _, n2 := range adj[n1] {
				if residual(Edge[N]{n1, n2}) <= 0 {
					continue
				}
				if !yield(n2, 1) {
					return
				}
			}
		}
	}
	stopAtSink := func(n N, _ float64) bool { return n == sink }

	// 3) Repeatedly augment along the shortest residual path until none
	//    remains. The final (failed) search doubles as the cut computation:
	//    its distance map holds exactly the source side.
	var reached map[N]float64
	for {
		dist, prev, err := dijkstra.ShortestPath(source, residualNbs, dijkstra.WithCallback(stopAtSink))
		if err != nil {
			return nil, err
		}
		if _, ok := dist[sink]; !ok {
			// No augmenting path left. Rerun without the early stop so the
			// distance map covers the whole source side of the cut.
			reached, _, err = dijkstra.ShortestPath(source, residualNbs)
			if err != nil {
				return nil, err
			}

			break
		}

		path, err := dijkstra.Backtrace(sink, dist, prev)
		if err != nil {
			return nil, err
		}

		// Bottleneck: the smallest residual capacity along the path.
		bottleneck := math.Inf(1)
		for i := 0; i+1 < len(path); i++ {
			if r := residual(Edge[N]{path[i], path[i+1]}); r < bottleneck {
				bottleneck = r
			}
		}
		for i := 0; i+1 < len(path); i++ {
			flow[Edge[N]{path[i], path[i+1]}] += bottleneck
			flow[Edge[N]{path[i+1], path[i]}] -= bottleneck
		}
	}

	// 4) Assemble the result: net outflow of the source, positive arc
	//    flows, and the cut partition.
	res := &Result[N]{
		Flow:       make(map[Edge[N]]float64),
		SourceSide: make(map[N]bool, len(reached)),
		SinkSide:   make(map[N]bool),
	}
	for _, n2 := range adj[source] {
		res.Value += flow[Edge[N]{source, n2}]
	}
	for e, f := range flow {
		if f > 0 {
			res.Flow[e] = f
		}
	}
	for n := range reached {
		res.SourceSide[n] = true
	}
	for _, n := range nodes {
		if !res.SourceSide[n] {
			res.SinkSide[n] = true
		}
	}

	return res, nil
}
