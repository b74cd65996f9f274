// Package board turns ASCII-grid puzzle input into an immutable Board and
// adapts it for the search engine in package dijkstra.
//
// Overview:
//
//   - Parse validates raw text lines (equal length, at least one cell) and
//     builds an immutable rune grid addressed by Coord (row, column).
//   - Find scans the grid in row-major order for the coordinates of
//     requested symbols, one per symbol.
//   - Neighbours produces a dijkstra.NeighbourFunc[Coord] for 4- or
//     8-directional adjacency restricted to an allowed symbol set, with
//     unit edge weights.
//   - Render draws the grid back to text with overlay marks, without ever
//     mutating the Board — the same Board can serve any number of searches
//     and renderings.
//   - BoundaryNeighbours, TurnRight and TurnLeft support walking the
//     boundary of a region rather than its interior.
//
// Typical flow:
//
//	b, err := board.Parse(lines)
//	start, end := mustFind(b, 'S', 'E')
//	dist, prev, err := dijkstra.ShortestPath(start, b.Neighbours(".E", board.Conn4))
//	path, err := dijkstra.Backtrace(end, dist, prev)
//	fmt.Print(b.Render(board.Mark{Symbol: 'P', Nodes: path[1 : len(path)-1]}))
//
// Determinism: Neighbours yields candidate directions in a fixed order
// (down, up, right, left, then diagonals). The engine keeps the first
// equally-good predecessor, so this order — not chance — selects which of
// several optimal paths Backtrace reports.
//
// Error handling (sentinel errors):
//
//   - ErrEmptyBoard:     no rows, or rows with no columns.
//   - ErrRaggedBoard:    rows of differing lengths.
//   - ErrSymbolNotFound: Find was asked for a symbol the board lacks.
package board
