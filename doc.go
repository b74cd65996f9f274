// Package gridpath turns ASCII-grid puzzles into graph-search problems and
// back into annotated grids.
//
// 🚀 What is gridpath?
//
//	A small, pure-Go toolkit built around one reusable core:
//		• A generic shortest-path engine (Dijkstra) driven entirely by a
//		  neighbour function — no graph type, no adjacency lists
//		• A board adapter that parses rectangular ASCII grids and exposes
//		  4- or 8-connected adjacency over an allowed symbol set
//		• Backtrace utilities that turn predecessor maps into explicit paths
//		• A pure renderer that overlays paths and other marks onto the grid
//		• Max-flow / min-cut (Edmonds–Karp) layered on the same engine
//		• Interval set algebra and input-reading helpers on the side
//
// ✨ Why choose gridpath?
//
//   - Deterministic – identical input always yields the identical path,
//     down to tie-breaking between equally short routes
//   - Generic – any comparable type can be a node; boards are just one
//     adapter among many (boundary points are another, built in)
//   - Immutable boards – parse once, search and render as often as you
//     like, concurrently if you wish
//   - Pure Go – no cgo, no hidden deps
//
// Everything is organized under five subpackages:
//
//	board/    — board parsing, symbol lookup, neighbour adapters, rendering
//	boardio/  — reading lines and boards from files or streams
//	dijkstra/ — the generic shortest-path engine and backtrace
//	flow/     — maximum flow and minimum cut over neighbour functions
//	interval/ — half-open interval set difference and intersection
//
// Quick ASCII example:
//
//	S.....        SPPP..
//	.##..#        .##P.#
//	.#....   →    .#PP..
//	.#.###        .#P###
//	.#...E        .#PPPE
//
//	b, _ := board.Parse(lines)
//	se, _ := b.Find('S', 'E')
//	dist, prev, _ := dijkstra.ShortestPath(se[0], b.Neighbours(".E", board.Conn4))
//	path, _ := dijkstra.Backtrace(se[1], dist, prev)
//	fmt.Print(b.Render(board.Mark{Symbol: 'P', Nodes: path[1 : len(path)-1]}))
//
// See the examples/ directory for complete runnable programs.
package gridpath
