package sim

import (
	"fmt"

	"qlife/internal/core"
	"qlife/internal/patterns"
	"qlife/internal/sims/classical"
	"qlife/internal/sims/quantum"
)

// RandomPattern fills the whole grid at Seed.Density instead of stamping
// a library pattern.
const RandomPattern = "random"

// DefaultDensity is the live-cell share used by RandomPattern.
const DefaultDensity = 0.2

// Seed describes how a fresh generation is populated.
type Seed struct {
	Pattern string
	Row     int
	Col     int
	Density float64
	Seed    int64
}

func (s Seed) random() bool { return patterns.Normalize(s.Pattern) == RandomPattern }

func (s Seed) density() float64 {
	if s.Density <= 0 || s.Density > 1 {
		return DefaultDensity
	}
	return s.Density
}

// NewState builds generation zero for the given mode.
func NewState(mode Mode, size core.Size, edge core.EdgePolicy, lib *patterns.Library, seed Seed) (State, error) {
	if !mode.Valid() {
		return nil, fmt.Errorf("%s: %w", mode, ErrInvalidMode)
	}
	var stamp patterns.Pattern
	if !seed.random() {
		p, err := lib.Get(seed.Pattern)
		if err != nil {
			return nil, err
		}
		stamp = p
	}

	switch mode {
	case Quantum:
		a := core.NewAmplitudeGrid(size.Rows, size.Cols)
		if seed.random() {
			rng := core.NewRNG(seed.Seed)
			for r := 0; r < size.Rows; r++ {
				for c := 0; c < size.Cols; c++ {
					if rng.Chance(seed.density()) {
						alive, dead := patterns.SeedCell(true)
						a.Set(r, c, alive, dead)
					}
				}
			}
		} else if err := patterns.PlaceAmplitude(a, stamp, seed.Row, seed.Col); err != nil {
			return nil, err
		}
		return newQuantumState(quantum.New(edge), a), nil
	default:
		g := core.NewGrid(size.Rows, size.Cols)
		if seed.random() {
			core.FillRandom(core.NewRNG(seed.Seed), g, seed.density())
		} else if err := patterns.PlaceGrid(g, stamp, seed.Row, seed.Col); err != nil {
			return nil, err
		}
		return newClassicalState(classical.New(edge), g), nil
	}
}
