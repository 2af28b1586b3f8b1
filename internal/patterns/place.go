package patterns

import (
	"errors"
	"fmt"
	"math"

	"qlife/internal/core"
)

// ErrOutOfBounds is returned when a stamp footprint does not fit inside
// the target grid.
var ErrOutOfBounds = errors.New("pattern out of bounds")

// SeedAmplitude is the alive amplitude given to a live stamp cell.
var SeedAmplitude = complex(1/math.Sqrt(2), 0)

func checkFit(p Pattern, size core.Size, row, col int) error {
	if row < 0 || col < 0 || row+p.rows > size.Rows || col+p.cols > size.Cols {
		return fmt.Errorf("%s (%dx%d) at (%d,%d) on %dx%d grid: %w",
			p.name, p.rows, p.cols, row, col, size.Rows, size.Cols, ErrOutOfBounds)
	}
	return nil
}

// PlaceGrid copies the stamp into g with its top-left corner at (row, col).
// Cells under the footprint take the stamp value. Nothing is written when
// the footprint does not fit.
func PlaceGrid(g *core.Grid, p Pattern, row, col int) error {
	if err := checkFit(p, g.Size(), row, col); err != nil {
		return err
	}
	for r := 0; r < p.rows; r++ {
		for c := 0; c < p.cols; c++ {
			var v uint8
			if p.At(r, c) {
				v = 1
			}
			g.Set(row+r, col+c, v)
		}
	}
	return nil
}

// PlaceAmplitude writes the stamp into both amplitude matrices. A live
// stamp cell becomes an even superposition, a dead one certainly dead.
func PlaceAmplitude(a *core.AmplitudeGrid, p Pattern, row, col int) error {
	if err := checkFit(p, a.Size(), row, col); err != nil {
		return err
	}
	for r := 0; r < p.rows; r++ {
		for c := 0; c < p.cols; c++ {
			alive, dead := SeedCell(p.At(r, c))
			a.Set(row+r, col+c, alive, dead)
		}
	}
	return nil
}

// SeedCell returns the amplitude pair for a stamp value.
func SeedCell(v bool) (alive, dead complex128) {
	if !v {
		return 0, 1
	}
	m := real(SeedAmplitude)
	return SeedAmplitude, complex(math.Sqrt(1-m*m), 0)
}
