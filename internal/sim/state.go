package sim

import (
	"qlife/internal/core"
	"qlife/internal/sims/classical"
	"qlife/internal/sims/quantum"
)

// State is one generation of a run. It is implemented only by
// *ClassicalState and *QuantumState.
type State interface {
	Mode() Mode
	Size() core.Size
	Generation() int
	Categories() core.Categories

	advance() State
}

// ClassicalState is a generation of the classical model.
type ClassicalState struct {
	engine classical.Engine
	grid   *core.Grid
	cats   core.Categories
	gen    int
}

func newClassicalState(engine classical.Engine, g *core.Grid) *ClassicalState {
	return &ClassicalState{engine: engine, grid: g, cats: classical.Classify(g)}
}

// Mode returns Classical.
func (*ClassicalState) Mode() Mode { return Classical }

// Size returns the grid dimensions.
func (s *ClassicalState) Size() core.Size { return s.grid.Size() }

// Generation returns the number of steps taken since seeding.
func (s *ClassicalState) Generation() int { return s.gen }

// Categories returns the rendering hints of the last step.
func (s *ClassicalState) Categories() core.Categories { return s.cats }

// Grid exposes the current cell states.
func (s *ClassicalState) Grid() *core.Grid { return s.grid }

func (s *ClassicalState) advance() State {
	nxt, cats := s.engine.Step(s.grid)
	return &ClassicalState{engine: s.engine, grid: nxt, cats: cats, gen: s.gen + 1}
}

func (s *ClassicalState) toggle(r, c int) bool {
	if !s.grid.Toggle(r, c) {
		return false
	}
	s.cats = classical.Classify(s.grid)
	return true
}

// QuantumState is a generation of the amplitude model.
type QuantumState struct {
	engine quantum.Engine
	amps   *core.AmplitudeGrid
	cats   core.Categories
	gen    int
}

func newQuantumState(engine quantum.Engine, a *core.AmplitudeGrid) *QuantumState {
	return &QuantumState{engine: engine, amps: a, cats: quantum.Classify(a)}
}

// Mode returns Quantum.
func (*QuantumState) Mode() Mode { return Quantum }

// Size returns the grid dimensions.
func (s *QuantumState) Size() core.Size { return s.amps.Size() }

// Generation returns the number of steps taken since seeding.
func (s *QuantumState) Generation() int { return s.gen }

// Categories returns the rendering hints of the last step.
func (s *QuantumState) Categories() core.Categories { return s.cats }

// Amplitudes exposes the current amplitude pair.
func (s *QuantumState) Amplitudes() *core.AmplitudeGrid { return s.amps }

func (s *QuantumState) advance() State {
	nxt, cats := s.engine.Step(s.amps)
	return &QuantumState{engine: s.engine, amps: nxt, cats: cats, gen: s.gen + 1}
}
