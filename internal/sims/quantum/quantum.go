// Package quantum implements an amplitude-based Life variant. Each cell
// carries an alive and a dead amplitude; only their squared magnitudes
// drive the rule, so phase is discarded on every step.
package quantum

import (
	"math"

	"qlife/internal/core"
)

const (
	// MassLow and MassHigh bound, inclusively, the expected live-neighbour
	// mass that biases a cell towards alive.
	MassLow  = 2.0
	MassHigh = 3.0
	// MassTolerance widens both ends of the band so sums of seeded
	// probabilities that are exactly 2 or 3 on paper stay inside it.
	MassTolerance = 1e-9

	// LikelyAlive is the probability given to the favoured state.
	LikelyAlive = 0.8
	// AboutToDieThreshold is the alive probability above which a cell
	// pushed towards dead is shown as about to die.
	AboutToDieThreshold = 0.5
)

var (
	ampHigh = complex(math.Sqrt(LikelyAlive), 0)
	ampLow  = complex(math.Sqrt(1-LikelyAlive), 0)
)

// Engine advances an AmplitudeGrid with a fixed edge policy.
type Engine struct {
	Edge core.EdgePolicy
}

// New returns an Engine using the given edge policy.
func New(edge core.EdgePolicy) Engine { return Engine{Edge: edge} }

// Step computes the next amplitudes into a fresh grid and classifies every
// cell for rendering. cur is not modified. Every output cell satisfies
// |alive|²+|dead|² = 1 regardless of the input.
func (e Engine) Step(cur *core.AmplitudeGrid) (*core.AmplitudeGrid, core.Categories) {
	size := cur.Size()
	nxt := core.NewAmplitudeGrid(size.Rows, size.Cols)
	cats := core.NewCategories(size)
	for r := 0; r < size.Rows; r++ {
		for c := 0; c < size.Cols; c++ {
			pAlive := cur.AliveProb(r, c)
			mass := cur.ExpectedAliveNeighbors(r, c, e.Edge)
			if inBand(mass) {
				nxt.Set(r, c, ampHigh, ampLow)
				cats.Set(r, c, core.Alive)
				continue
			}
			nxt.Set(r, c, ampLow, ampHigh)
			if pAlive > AboutToDieThreshold {
				cats.Set(r, c, core.AboutToDie)
			}
		}
	}
	return nxt, cats
}

func inBand(mass float64) bool {
	return mass >= MassLow-MassTolerance && mass <= MassHigh+MassTolerance
}

// Classify labels cells that are at least as likely alive as dead, for the
// frame shown before the first generation.
func Classify(a *core.AmplitudeGrid) core.Categories {
	size := a.Size()
	cats := core.NewCategories(size)
	for r := 0; r < size.Rows; r++ {
		for c := 0; c < size.Cols; c++ {
			if a.AliveProb(r, c) >= AboutToDieThreshold-1e-9 {
				cats.Set(r, c, core.Alive)
			}
		}
	}
	return cats
}
