// Package classical implements Conway's Game of Life over a core.Grid.
package classical

import "qlife/internal/core"

// Engine applies the B3/S23 rule with a fixed edge policy.
type Engine struct {
	Edge core.EdgePolicy
}

// New returns an Engine using the given edge policy.
func New(edge core.EdgePolicy) Engine { return Engine{Edge: edge} }

// Step computes the next generation into a fresh grid and classifies every
// cell for rendering. cur is not modified.
func (e Engine) Step(cur *core.Grid) (*core.Grid, core.Categories) {
	size := cur.Size()
	nxt := core.NewGrid(size.Rows, size.Cols)
	cats := core.NewCategories(size)
	for r := 0; r < size.Rows; r++ {
		for c := 0; c < size.Cols; c++ {
			neighbors := cur.AliveNeighbors(r, c, e.Edge)
			alive := cur.Alive(r, c)
			switch {
			case (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3):
				nxt.Set(r, c, 1)
				cats.Set(r, c, core.Alive)
			case alive:
				cats.Set(r, c, core.AboutToDie)
			}
		}
	}
	return nxt, cats
}

// Classify labels the live cells of g without stepping, for the frame
// shown before the first generation.
func Classify(g *core.Grid) core.Categories {
	size := g.Size()
	cats := core.NewCategories(size)
	for r := 0; r < size.Rows; r++ {
		for c := 0; c < size.Cols; c++ {
			if g.Alive(r, c) {
				cats.Set(r, c, core.Alive)
			}
		}
	}
	return cats
}
