package core

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
)

// ErrShapeMismatch is returned when the alive and dead amplitude matrices
// do not share the same dimensions.
var ErrShapeMismatch = errors.New("amplitude shape mismatch")

// AmplitudeGrid holds a pair of complex amplitudes per cell. The squared
// magnitude of alive is the probability that the cell is alive, the
// squared magnitude of dead the probability that it is dead.
type AmplitudeGrid struct {
	rows, cols int
	alive      *mat.CDense
	dead       *mat.CDense
}

// NewAmplitudeGrid allocates a grid where every cell is certainly dead.
func NewAmplitudeGrid(rows, cols int) *AmplitudeGrid {
	if rows <= 0 {
		rows = 1
	}
	if cols <= 0 {
		cols = 1
	}
	dead := make([]complex128, rows*cols)
	for i := range dead {
		dead[i] = 1
	}
	return &AmplitudeGrid{
		rows:  rows,
		cols:  cols,
		alive: mat.NewCDense(rows, cols, make([]complex128, rows*cols)),
		dead:  mat.NewCDense(rows, cols, dead),
	}
}

// AmplitudeGridFrom wraps existing matrices. Both must have the same shape.
func AmplitudeGridFrom(alive, dead *mat.CDense) (*AmplitudeGrid, error) {
	if alive == nil || dead == nil {
		return nil, fmt.Errorf("nil amplitude matrix: %w", ErrShapeMismatch)
	}
	ar, ac := alive.Dims()
	dr, dc := dead.Dims()
	if ar != dr || ac != dc {
		return nil, fmt.Errorf("alive is %dx%d, dead is %dx%d: %w", ar, ac, dr, dc, ErrShapeMismatch)
	}
	return &AmplitudeGrid{rows: ar, cols: ac, alive: alive, dead: dead}, nil
}

// Size returns the grid dimensions.
func (a *AmplitudeGrid) Size() Size { return Size{Rows: a.rows, Cols: a.cols} }

// At returns the alive and dead amplitudes of (r, c).
func (a *AmplitudeGrid) At(r, c int) (alive, dead complex128) {
	return a.alive.At(r, c), a.dead.At(r, c)
}

// Set writes both amplitudes of (r, c).
func (a *AmplitudeGrid) Set(r, c int, alive, dead complex128) {
	a.alive.Set(r, c, alive)
	a.dead.Set(r, c, dead)
}

// AliveProb returns |alive|² for (r, c).
func (a *AmplitudeGrid) AliveProb(r, c int) float64 {
	return sqMag(a.alive.At(r, c))
}

// DeadProb returns |dead|² for (r, c).
func (a *AmplitudeGrid) DeadProb(r, c int) float64 {
	return sqMag(a.dead.At(r, c))
}

// ExpectedAliveNeighbors sums |alive|² over the neighbour window of (r, c).
func (a *AmplitudeGrid) ExpectedAliveNeighbors(r, c int, edge EdgePolicy) float64 {
	mass := 0.0
	Neighbors(a.Size(), r, c, edge, func(nr, nc int) {
		mass += sqMag(a.alive.At(nr, nc))
	})
	return mass
}

// Normalized reports whether every cell satisfies |alive|²+|dead|² = 1
// within tol.
func (a *AmplitudeGrid) Normalized(tol float64) bool {
	for r := 0; r < a.rows; r++ {
		for c := 0; c < a.cols; c++ {
			if math.Abs(a.AliveProb(r, c)+a.DeadProb(r, c)-1) > tol {
				return false
			}
		}
	}
	return true
}

// Clone returns an independent copy of the grid.
func (a *AmplitudeGrid) Clone() *AmplitudeGrid {
	out := NewAmplitudeGrid(a.rows, a.cols)
	for r := 0; r < a.rows; r++ {
		for c := 0; c < a.cols; c++ {
			out.Set(r, c, a.alive.At(r, c), a.dead.At(r, c))
		}
	}
	return out
}

// Observe samples a classical grid, marking each cell alive with
// probability |alive|². The amplitudes are left as they are.
func (a *AmplitudeGrid) Observe(rng *rand.Rand) *Grid {
	g := NewGrid(a.rows, a.cols)
	for r := 0; r < a.rows; r++ {
		for c := 0; c < a.cols; c++ {
			if rng.Float64() < a.AliveProb(r, c) {
				g.Set(r, c, 1)
			}
		}
	}
	return g
}

func sqMag(z complex128) float64 {
	m := cmplx.Abs(z)
	return m * m
}
