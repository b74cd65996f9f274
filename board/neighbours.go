package board

import (
	"iter"
	"strings"

	"github.com/kvistberg/gridpath/dijkstra"
)

// Candidate move offsets in (dRow, dCol) form. The order is fixed — down,
// up, right, left, then the diagonals for Conn8 — and identical on every
// call: the search engine keeps the first equally-good predecessor it sees,
// so this order decides which of several optimal paths is reported.
var (
	conn4Offsets = [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	conn8Offsets = [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}, {1, 1}, {-1, 1}, {-1, -1}, {1, -1}}
)

// Neighbours adapts the board into a neighbour function for the search
// engine. For a node n it yields each adjacent coordinate (per conn) that
// lies on the board and whose symbol appears in allowed, paired with
// weight 1. An empty allowed string admits every symbol.
//
// The returned sequence is finite (at most 4 or 8 elements), stateless per
// call, and safe to re-consume. The Board is captured read-only.
// Complexity per call: O(1) setup, O(degree) iteration.
func (b *Board) Neighbours(allowed string, conn Connectivity) dijkstra.NeighbourFunc[Coord] {
	offsets := conn4Offsets
	if conn == Conn8 {
		offsets = conn8Offsets
	}

	return func(n Coord) iter.Seq2[Coord, float64] {
		return func(yield func(Coord, float64) bool) {
			for _, d := range offsets {
				n2 := Coord{n.Row + d[0], n.Col + d[1]}
				v, ok := b.cells[n2]
				if !ok {
					continue
				}
				if allowed != "" && !strings.ContainsRune(allowed, v) {
					continue
				}
				if !yield(n2, 1) {
					return
				}
			}
		}
	}
}

// TurnRight rotates the move delta (dr, dc) by 90° clockwise in board
// coordinates, where rows grow downward and columns grow rightward.
func TurnRight(dr, dc int) (int, int) {
	return dc, -dr
}

// TurnLeft rotates the move delta (dr, dc) by 90° counterclockwise in
// board coordinates.
func TurnLeft(dr, dc int) (int, int) {
	return -dc, dr
}
