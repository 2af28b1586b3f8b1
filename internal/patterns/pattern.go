// Package patterns holds the named stamps used to seed a generation.
package patterns

import (
	"errors"
	"fmt"

	"qlife/internal/core"
)

var errMalformed = errors.New("malformed pattern")

// Pattern is an immutable named boolean matrix.
type Pattern struct {
	name  string
	rows  int
	cols  int
	cells []bool
}

// Name returns the library key of the pattern.
func (p Pattern) Name() string { return p.name }

// Size returns the footprint of the pattern.
func (p Pattern) Size() core.Size { return core.Size{Rows: p.rows, Cols: p.cols} }

// At reports whether (r, c) of the stamp is alive.
func (p Pattern) At(r, c int) bool {
	if r < 0 || r >= p.rows || c < 0 || c >= p.cols {
		return false
	}
	return p.cells[r*p.cols+c]
}

// Population returns the number of live cells in the stamp.
func (p Pattern) Population() int {
	n := 0
	for _, v := range p.cells {
		if v {
			n++
		}
	}
	return n
}

// FromMatrix builds a pattern from rows of 0/1 values. All rows must have
// the same non-zero length.
func FromMatrix(name string, m [][]uint8) (Pattern, error) {
	if len(m) == 0 || len(m[0]) == 0 {
		return Pattern{}, fmt.Errorf("%s: empty matrix: %w", name, errMalformed)
	}
	cols := len(m[0])
	p := Pattern{name: name, rows: len(m), cols: cols, cells: make([]bool, len(m)*cols)}
	for r, row := range m {
		if len(row) != cols {
			return Pattern{}, fmt.Errorf("%s: row %d has %d cells, expected %d: %w", name, r, len(row), cols, errMalformed)
		}
		for c, v := range row {
			p.cells[r*cols+c] = v != 0
		}
	}
	return p, nil
}

// FromCells builds a pattern from a list of live (row, col) coordinates.
// The footprint is the bounding box anchored at (0, 0).
func FromCells(name string, alive [][2]int) (Pattern, error) {
	if len(alive) == 0 {
		return Pattern{}, fmt.Errorf("%s: no alive cells: %w", name, errMalformed)
	}
	rows, cols := 0, 0
	for _, rc := range alive {
		if rc[0] < 0 || rc[1] < 0 {
			return Pattern{}, fmt.Errorf("%s: negative coordinate %v: %w", name, rc, errMalformed)
		}
		rows = max(rows, rc[0]+1)
		cols = max(cols, rc[1]+1)
	}
	p := Pattern{name: name, rows: rows, cols: cols, cells: make([]bool, rows*cols)}
	for _, rc := range alive {
		p.cells[rc[0]*cols+rc[1]] = true
	}
	return p, nil
}

func mustMatrix(name string, m [][]uint8) Pattern {
	p, err := FromMatrix(name, m)
	if err != nil {
		panic(err)
	}
	return p
}
