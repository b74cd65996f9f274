// Package board defines core types, options, and sentinel errors for the
// board subpackage of github.com/kvistberg/gridpath.
package board

import (
	"errors"
)

// Sentinel errors for board operations.
var (
	// ErrEmptyBoard indicates the input has no lines or no columns.
	ErrEmptyBoard = errors.New("board: input must have at least one row and one column")
	// ErrRaggedBoard indicates lines of differing lengths.
	ErrRaggedBoard = errors.New("board: all rows must have the same length")
	// ErrSymbolNotFound indicates a requested symbol is absent from the board.
	ErrSymbolNotFound = errors.New("board: symbol not found")
)

// Coord identifies a board cell by (row, column). Coordinates are compared
// by value, which is what lets them act as graph nodes for the search
// engine. Row 0 is the top line; column 0 is the leftmost character.
type Coord struct {
	Row, Col int
}

// Connectivity selects neighbour connectivity: orthogonal (Conn4) or
// including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: down, up, right, left.
	Conn4 Connectivity = iota
	// Conn8 adds the four diagonal moves to Conn4.
	Conn8
)

// Mark is a render overlay: every coordinate in Nodes is drawn as Symbol
// instead of the underlying board value. When marks conflict on a
// coordinate, the later argument to Render wins.
type Mark struct {
	Symbol rune
	Nodes  []Coord
}

// BoundaryPoint is a point on the boundary of a region: In lies inside the
// region and Out immediately outside. The normal vector of the boundary at
// this point is Out minus In.
type BoundaryPoint struct {
	In, Out Coord
}
