package core

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestNewAmplitudeGridCertainlyDead(t *testing.T) {
	a := NewAmplitudeGrid(3, 4)
	for r := 0; r < 3; r++ {
		for c := 0; c < 4; c++ {
			if p := a.AliveProb(r, c); p != 0 {
				t.Fatalf("cell (%d,%d) alive prob = %v, expected 0", r, c, p)
			}
		}
	}
	if !a.Normalized(1e-12) {
		t.Fatal("fresh grid must be normalized")
	}
}

func TestAmplitudeGridFromShapeMismatch(t *testing.T) {
	alive := mat.NewCDense(2, 3, make([]complex128, 6))
	dead := mat.NewCDense(3, 2, make([]complex128, 6))
	if _, err := AmplitudeGridFrom(alive, dead); !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("err = %v, expected ErrShapeMismatch", err)
	}
	if _, err := AmplitudeGridFrom(alive, nil); !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("nil matrix err = %v, expected ErrShapeMismatch", err)
	}
	ok, err := AmplitudeGridFrom(alive, mat.NewCDense(2, 3, make([]complex128, 6)))
	if err != nil {
		t.Fatalf("matching shapes rejected: %v", err)
	}
	if s := ok.Size(); s.Rows != 2 || s.Cols != 3 {
		t.Fatalf("size = %+v, expected 2x3", s)
	}
}

func TestExpectedAliveNeighborsIgnoresPhase(t *testing.T) {
	a := NewAmplitudeGrid(3, 3)
	half := complex(1/math.Sqrt2, 0)
	a.Set(0, 0, half, half)
	a.Set(0, 1, complex(0, 1/math.Sqrt2), half)
	a.Set(1, 1, 1, 0)

	got := a.ExpectedAliveNeighbors(1, 1, Bounded)
	if math.Abs(got-1) > 1e-12 {
		t.Fatalf("mass = %v, expected 1", got)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	a := NewAmplitudeGrid(2, 2)
	b := a.Clone()
	b.Set(0, 0, 1, 0)
	if a.AliveProb(0, 0) != 0 {
		t.Fatal("mutating the clone changed the source grid")
	}
}

func TestObserveExtremes(t *testing.T) {
	a := NewAmplitudeGrid(4, 4)
	a.Set(2, 3, 1, 0)
	g := a.Observe(NewRNG(1).Source())
	if g.Population() != 1 || !g.Alive(2, 3) {
		t.Fatalf("observation of certain states gave population %d", g.Population())
	}
}
