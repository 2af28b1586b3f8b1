package core

import "fmt"

// Size describes the dimensions of a simulation grid.
type Size struct {
	Rows int
	Cols int
}

// Cells returns the total number of cells.
func (s Size) Cells() int { return s.Rows * s.Cols }

// Contains reports whether (r, c) lies inside a grid of this size.
func (s Size) Contains(r, c int) bool {
	return r >= 0 && r < s.Rows && c >= 0 && c < s.Cols
}

// EdgePolicy selects how the neighbour window behaves at the grid border.
type EdgePolicy uint8

const (
	// Bounded treats cells outside the grid as absent.
	Bounded EdgePolicy = iota
	// Toroidal wraps coordinates on all four sides.
	Toroidal
)

func (e EdgePolicy) String() string {
	switch e {
	case Bounded:
		return "bounded"
	case Toroidal:
		return "toroidal"
	default:
		return fmt.Sprintf("EdgePolicy(%d)", uint8(e))
	}
}

// ParseEdgePolicy maps a flag value onto an EdgePolicy.
func ParseEdgePolicy(s string) (EdgePolicy, error) {
	switch s {
	case "", "bounded":
		return Bounded, nil
	case "toroidal", "torus", "wrap":
		return Toroidal, nil
	}
	return Bounded, fmt.Errorf("unknown edge policy %q", s)
}

// Neighbors calls fn for every cell in the 3x3 window around (r, c),
// excluding the centre. Under Bounded, positions outside the grid are
// skipped. Under Toroidal they wrap. On grids narrower than three cells a
// wrapped position can repeat and each occurrence is reported, but a
// position that wraps back onto (r, c) itself is skipped.
func Neighbors(size Size, r, c int, edge EdgePolicy, fn func(nr, nc int)) {
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			nr, nc := r+dr, c+dc
			if edge == Toroidal {
				nr = (nr%size.Rows + size.Rows) % size.Rows
				nc = (nc%size.Cols + size.Cols) % size.Cols
				if nr == r && nc == c {
					continue
				}
			} else if !size.Contains(nr, nc) {
				continue
			}
			fn(nr, nc)
		}
	}
}
