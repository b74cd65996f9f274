// Package dijkstra implements Dijkstra's shortest-path algorithm over any
// graph expressed as a neighbour function.
//
// ShortestPath computes the minimum-cost path from a single source node to
// every reachable node, given only a NeighbourFunc with non-negative edge
// weights. It processes nodes in order of increasing distance using a
// min-heap priority queue, relaxing edges and updating distances.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each node is finalized at most once: V extractions from the heap.
//   - Each edge relaxation may push a new entry into the heap: up to E pushes.
//   - Each heap operation costs O(log N), N ≤ V + E, simplified to O(log V).
//   - Space: O(V + E)
//   - O(V) for the distance and predecessor maps.
//   - O(E) worst-case heap entries under "lazy decrease-key".
//
// Notes on implementation choices:
//
//   - Edge weights are validated during relaxation (the graph is lazy, so
//     there is no edge set to pre-scan); a negative weight fails fast.
//   - Stale heap entries superseded by a later relaxation are discarded at
//     extraction time instead of being removed from the heap.
//   - A predecessor is overwritten only on strict improvement, so among
//     equally optimal predecessors the first one yielded wins. Together
//     with the heap's deterministic ordering this makes the result a pure
//     function of the input.
package dijkstra

import (
	"container/heap"
	"fmt"
)

// ShortestPath computes shortest distances from source to every node
// reachable through nbs.
//
// Returns:
//
//   - dist: map from reached node to its minimal cumulative weight from
//     source. Absent entries mean "unreached"; callers must check
//     membership before indexing.
//   - prev: map from each reached node except source to the node
//     immediately preceding it on one shortest path. Following prev from
//     any reached node terminates at source.
//   - err:  ErrNilNeighbourFunc or ErrNegativeWeight; nil otherwise.
//
// A source with no passable neighbours is not an error: dist holds only
// {source: 0} and prev is empty.
//
// Determinism: with an identical source and an identical (deterministic)
// nbs, repeated runs produce identical maps. Ties between frontier entries
// of equal distance are broken by heap order, which is itself a pure
// function of the push sequence.
func ShortestPath[N comparable](source N, nbs NeighbourFunc[N], opts ...Option[N]) (map[N]float64, map[N]N, error) {
	// 1) Build and validate options.
	cfg := DefaultOptions[N]()
	for _, opt := range opts {
		opt(&cfg)
	}
	if nbs == nil {
		return nil, nil, ErrNilNeighbourFunc
	}

	// 2) Prepare state: tentative distances, predecessors, finalized set,
	//    and the frontier heap seeded with the source at distance 0.
	dist := map[N]float64{source: 0}
	prev := make(map[N]N)
	done := make(map[N]bool)

	pq := frontier[N]{{node: source, dist: 0}}
	heap.Init(&pq)

	var err error
	for pq.Len() > 0 {
		// 3) Extract the closest frontier entry.
		item := heap.Pop(&pq).(*frontierItem[N])

		// 4) Skip stale entries: the node was finalized through a shorter
		//    path pushed later. This check must run before anything else so
		//    that item.dist is trusted below.
		if done[item.node] {
			continue
		}

		// 5) Stop once the frontier lies beyond the distance cap. The node
		//    is left unfinalized; everything still in the heap is at least
		//    as far.
		if item.dist > cfg.MaxDistance {
			break
		}

		// 6) Finalize. item.dist is now the true shortest distance.
		done[item.node] = true

		if cfg.Callback != nil && cfg.Callback(item.node, item.dist) {
			break
		}

		// 7) Relax every outgoing edge of the finalized node.
		for n2, w := range nbs(item.node) {
			if w < 0 {
				err = fmt.Errorf("%w: %v→%v weight=%v", ErrNegativeWeight, item.node, n2, w)
				break
			}
			if done[n2] {
				continue
			}

			alt := item.dist + w
			if alt > cfg.MaxDistance {
				continue
			}

			// Strict improvement only: equal-cost alternatives never
			// displace an earlier predecessor.
			if cur, ok := dist[n2]; ok && alt >= cur {
				continue
			}
			dist[n2] = alt
			prev[n2] = item.node
			heap.Push(&pq, &frontierItem[N]{node: n2, dist: alt})
		}
		if err != nil {
			return nil, nil, err
		}
	}

	return dist, prev, nil
}

// frontierItem pairs a node with its tentative distance at push time.
type frontierItem[N comparable] struct {
	node N
	dist float64
}

// frontier is a min-heap of *frontierItem ordered by tentative distance.
// Under lazy decrease-key a node may appear more than once; outdated
// entries are ignored at extraction via the finalized set.
type frontier[N comparable] []*frontierItem[N]

// Len returns the number of entries in the heap.
func (f frontier[N]) Len() int { return len(f) }

// Less orders entries by ascending tentative distance.
func (f frontier[N]) Less(i, j int) bool { return f[i].dist < f[j].dist }

// Swap swaps two entries.
func (f frontier[N]) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

// Push appends x; called by heap.Push.
func (f *frontier[N]) Push(x interface{}) { *f = append(*f, x.(*frontierItem[N])) }

// Pop removes and returns the last entry; called by heap.Pop.
func (f *frontier[N]) Pop() interface{} {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]

	return item
}
