// Package dijkstra provides a generic, deterministic implementation of
// Dijkstra's shortest-path algorithm driven entirely by a neighbour
// function.
//
// Overview:
//
//   - ShortestPath computes minimum-cost paths from a single source to all
//     reachable nodes in O((V + E) log V) time, for any comparable node
//     type and any non-negative edge weights.
//   - The graph is never materialized: a NeighbourFunc lazily yields the
//     weighted outgoing edges of a node on demand, so the engine works
//     equally well on grids, implicit state spaces, and residual graphs.
//   - Backtrace turns the resulting predecessor map back into an explicit
//     source→target path.
//
// When to use:
//
//   - Whenever you need exact shortest paths but constructing an adjacency
//     structure up front is wasteful or impossible (the node space may be
//     huge or unbounded; only the reachable part is ever touched).
//   - As the breadth-first workhorse for derived algorithms: with all
//     weights equal to 1, ShortestPath is a BFS (the flow package uses it
//     exactly this way for augmenting paths).
//
// Key behaviors:
//
//   - Lazy decrease-key: relaxations push duplicate heap entries; stale
//     ones are discarded at extraction. No heap-entry removal is needed.
//   - Strict-improvement relaxation: a node's predecessor changes only when
//     a strictly shorter path is found, so among equal-cost alternatives
//     the first neighbour yielded is the one retained. Combined with a
//     deterministic NeighbourFunc this makes results reproducible run to
//     run, which the tests and the board renderer rely on.
//   - WithCallback(fn): observe each node as it is finalized, in
//     nondecreasing distance order; return true to stop early (for
//     example, once a specific target is reached).
//   - WithMaxDistance(d): abandon the search once the frontier is farther
//     than d from the source.
//
// Error handling (sentinel errors):
//
//   - ErrNilNeighbourFunc: ShortestPath was given a nil NeighbourFunc.
//   - ErrNegativeWeight:   the NeighbourFunc yielded a negative weight;
//     detected during relaxation and returned immediately.
//   - ErrUnreachableNode:  Backtrace target absent from the distance map.
//
// Unreachable nodes are not errors for ShortestPath itself: they are simply
// absent from both returned maps. Check membership before indexing.
//
// Thread safety: ShortestPath keeps no global state and is safe to call
// concurrently with distinct inputs. Sharing one mutable graph behind the
// NeighbourFunc across goroutines requires external synchronization.
//
// See also:
//
//   - board.Neighbours: adapts an ASCII board into a NeighbourFunc[Coord].
//   - flow.MaxFlow:     Edmonds–Karp built on top of this engine.
package dijkstra
