// Package boardio reads puzzle input into text lines and boards. It is the
// line-reading collaborator in front of package board: everything past the
// io.Reader boundary is pure in-memory computation.
package boardio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kvistberg/gridpath/board"
)

// ReadLines reads all lines from r, trimming surrounding whitespace from
// each line and dropping blank lines at the beginning and end. Interior
// blank lines are kept.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, strings.TrimSpace(sc.Text()))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("boardio: reading lines: %w", err)
	}

	// Strip leading and trailing blank lines.
	for len(lines) > 0 && lines[0] == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	return lines, nil
}

// ReadBoard reads a board from r: one row per line, all lines the same
// length. Validation is delegated to board.Parse.
func ReadBoard(r io.Reader) (*board.Board, error) {
	lines, err := ReadLines(r)
	if err != nil {
		return nil, err
	}

	return board.Parse(lines)
}

// ReadLinesFile is ReadLines over the named file.
func ReadLinesFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("boardio: %w", err)
	}
	defer f.Close()

	return ReadLines(f)
}

// ReadBoardFile is ReadBoard over the named file.
func ReadBoardFile(path string) (*board.Board, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("boardio: %w", err)
	}
	defer f.Close()

	return ReadBoard(f)
}
