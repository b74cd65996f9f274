package board_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kvistberg/gridpath/board"
	"github.com/kvistberg/gridpath/dijkstra"
)

func TestBoundaryNeighbours_NonBoundaryPointIsIsolated(t *testing.T) {
	inRegion := func(n board.Coord) bool { return n.Row >= 0 }
	nbs := board.BoundaryNeighbours(inRegion)

	// Both coordinates inside the region: not a boundary point, no
	// neighbours.
	p := board.BoundaryPoint{In: board.Coord{Row: 1, Col: 0}, Out: board.Coord{Row: 2, Col: 0}}
	for range nbs(p) {
		t.Fatal("expected no neighbours for a non-boundary point")
	}
}

func TestBoundaryNeighbours_UnconstrainedYieldsAllCandidates(t *testing.T) {
	nbs := board.BoundaryNeighbours(nil)
	p := board.BoundaryPoint{In: board.Coord{Row: 0, Col: 0}, Out: board.Coord{Row: 0, Col: 1}}

	var got []board.BoundaryPoint
	for b2 := range nbs(p) {
		got = append(got, b2)
	}
	// Two extensions plus two folds around each coordinate.
	require.Len(t, got, 6)
}

// TestBoundaryNeighbours_WalksClosedLoop reproduces the region-boundary
// walk: starting from one boundary point of a blob of B cells inside a
// region of A cells, repeatedly stepping to the single non-backtracking
// neighbour must traverse a closed loop and visit exactly the cells
// adjacent to the blob.
func TestBoundaryNeighbours_WalksClosedLoop(t *testing.T) {
	b, err := board.Parse([]string{
		"AAAAAA",
		"AAABBA",
		"AAABBA",
		"ABBAAA",
		"ABBAAA",
		"AAAAAA",
	})
	require.NoError(t, err)

	// The region is everything reachable from (0,0) through A cells.
	region, _, err := dijkstra.ShortestPath(board.Coord{Row: 0, Col: 0}, b.Neighbours("A", board.Conn4))
	require.NoError(t, err)
	inRegion := func(n board.Coord) bool {
		_, ok := region[n]

		return ok
	}
	nbs := board.BoundaryNeighbours(inRegion)

	start := board.BoundaryPoint{In: board.Coord{Row: 3, Col: 0}, Out: board.Coord{Row: 3, Col: 1}}
	ins := make(map[board.Coord]bool)
	outs := make(map[board.Coord]bool)

	var prev board.BoundaryPoint
	started := false
	for cur := start; ; {
		ins[cur.In] = true
		outs[cur.Out] = true

		// Stop once the walk closes the loop.
		if started && cur == start {
			break
		}

		var candidates []board.BoundaryPoint
		for b2 := range nbs(cur) {
			if !started || b2 != prev {
				candidates = append(candidates, b2)
			}
		}
		if started {
			// Away from the start there is exactly one way forward.
			require.Len(t, candidates, 1)
		}
		require.NotEmpty(t, candidates)
		prev, cur = cur, candidates[0]
		started = true
	}

	// Annotate the walked cells and compare with the expected picture.
	toSlice := func(set map[board.Coord]bool) []board.Coord {
		out := make([]board.Coord, 0, len(set))
		for n := range set {
			out = append(out, n)
		}

		return out
	}
	got := b.Render(
		board.Mark{Symbol: 'i', Nodes: toSlice(ins)},
		board.Mark{Symbol: 'o', Nodes: toSlice(outs)},
	)
	require.Equal(t,
		"AAAiiA\n"+
			"AAiooi\n"+
			"Aiiooi\n"+
			"iooiiA\n"+
			"iooiAA\n"+
			"AiiAAA\n",
		got)
}
