// Package board models a rectangular grid of single-character cells and
// adapts it for graph search. It supports:
//
//   - Parsing and validating ASCII-grid input into an immutable Board
//   - Row-major symbol lookup (Find)
//   - Four- or eight-connectivity neighbour functions for the search engine
//   - Pure re-rendering with overlay marks (Render)
//
// The Board is never mutated after Parse; the search engine and the
// renderer both treat it as read-only, so one Board is safe to reuse
// across any number of queries.
package board

import (
	"fmt"
	"strings"
)

// Board is an immutable rectangular grid of rune cells, addressed by
// Coord. Construct with Parse.
type Board struct {
	rows, cols int
	cells      map[Coord]rune
}

// Parse builds a Board from one text line per row. Every line must have
// the same length.
// Returns ErrEmptyBoard if lines is empty or the first line has no
// characters, ErrRaggedBoard if any line length differs.
// Complexity: O(R×C) time and memory.
func Parse(lines []string) (*Board, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyBoard
	}
	rows := len(lines)
	cols := len([]rune(lines[0]))
	if cols == 0 {
		return nil, ErrEmptyBoard
	}

	cells := make(map[Coord]rune, rows*cols)
	for r, line := range lines {
		runes := []rune(line)
		if len(runes) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrRaggedBoard, r, len(runes), cols)
		}
		for c, v := range runes {
			cells[Coord{r, c}] = v
		}
	}

	return &Board{rows: rows, cols: cols, cells: cells}, nil
}

// Rows returns the number of rows R.
func (b *Board) Rows() int { return b.rows }

// Cols returns the number of columns C.
func (b *Board) Cols() int { return b.cols }

// At returns the symbol at n and whether n lies on the board.
// Complexity: O(1).
func (b *Board) At(n Coord) (rune, bool) {
	v, ok := b.cells[n]

	return v, ok
}

// Find locates one coordinate per requested symbol, returned in the same
// order as the arguments.
//
// If a symbol occurs more than once, the first occurrence in row-major
// order (top to bottom, left to right) is returned; the board format gives
// no way to prefer one duplicate over another, so callers that care should
// ensure uniqueness. Returns ErrSymbolNotFound if any symbol is absent.
// Complexity: O(R×C×len(symbols)).
func (b *Board) Find(symbols ...rune) ([]Coord, error) {
	found := make([]Coord, len(symbols))
	have := make([]bool, len(symbols))

	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			v := b.cells[Coord{r, c}]
			for i, s := range symbols {
				if !have[i] && v == s {
					found[i] = Coord{r, c}
					have[i] = true
				}
			}
		}
	}
	for i, ok := range have {
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrSymbolNotFound, symbols[i])
		}
	}

	return found, nil
}

// Render draws the board as R lines of C characters, each line terminated
// by a newline. Coordinates covered by a mark are drawn as that mark's
// symbol; where marks overlap, the later argument wins. Marks outside the
// board are ignored. The Board itself is never modified — Render returns
// fresh text on every call.
// Complexity: O(R×C + Σ len(mark.Nodes)).
func (b *Board) Render(marks ...Mark) string {
	overlay := make(map[Coord]rune)
	for _, m := range marks {
		for _, n := range m.Nodes {
			if _, ok := b.cells[n]; ok {
				overlay[n] = m.Symbol
			}
		}
	}

	var sb strings.Builder
	sb.Grow(b.rows * (b.cols + 1))
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			if v, ok := overlay[Coord{r, c}]; ok {
				sb.WriteRune(v)
				continue
			}
			sb.WriteRune(b.cells[Coord{r, c}])
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
