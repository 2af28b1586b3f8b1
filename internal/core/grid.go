package core

// Grid stores a 2D grid of binary cell states in row-major order.
type Grid struct {
	rows, cols int
	data       []uint8
}

// NewGrid allocates an all-dead grid with the given dimensions.
func NewGrid(rows, cols int) *Grid {
	if rows <= 0 {
		rows = 1
	}
	if cols <= 0 {
		cols = 1
	}
	return &Grid{rows: rows, cols: cols, data: make([]uint8, rows*cols)}
}

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{Rows: g.rows, Cols: g.cols} }

// Cells exposes the backing slice so callers can read values directly.
func (g *Grid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for (r, c).
func (g *Grid) Index(r, c int) int { return r*g.cols + c }

// InBounds reports whether (r, c) lies inside the grid.
func (g *Grid) InBounds(r, c int) bool {
	return r >= 0 && r < g.rows && c >= 0 && c < g.cols
}

// At returns the state of (r, c), or 0 outside the grid.
func (g *Grid) At(r, c int) uint8 {
	if !g.InBounds(r, c) {
		return 0
	}
	return g.data[g.Index(r, c)]
}

// Alive reports whether (r, c) is alive.
func (g *Grid) Alive(r, c int) bool { return g.At(r, c) == 1 }

// Set writes a state to (r, c). Any non-zero value is stored as alive.
func (g *Grid) Set(r, c int, v uint8) {
	if !g.InBounds(r, c) {
		return
	}
	if v != 0 {
		v = 1
	}
	g.data[g.Index(r, c)] = v
}

// Toggle flips the cell at (r, c) and reports whether anything changed.
// Out-of-range coordinates are ignored.
func (g *Grid) Toggle(r, c int) bool {
	if !g.InBounds(r, c) {
		return false
	}
	idx := g.Index(r, c)
	g.data[idx] = 1 - g.data[idx]
	return true
}

// AliveNeighbors counts live cells in the 3x3 window around (r, c),
// excluding the centre.
func (g *Grid) AliveNeighbors(r, c int, edge EdgePolicy) int {
	n := 0
	Neighbors(g.Size(), r, c, edge, func(nr, nc int) {
		n += int(g.data[g.Index(nr, nc)])
	})
	return n
}

// Population returns the number of live cells.
func (g *Grid) Population() int {
	n := 0
	for _, v := range g.data {
		n += int(v)
	}
	return n
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	out := &Grid{rows: g.rows, cols: g.cols, data: make([]uint8, len(g.data))}
	copy(out.data, g.data)
	return out
}

// Equal reports whether both grids have identical shape and cell states.
func (g *Grid) Equal(o *Grid) bool {
	if o == nil || g.rows != o.rows || g.cols != o.cols {
		return false
	}
	for i, v := range g.data {
		if o.data[i] != v {
			return false
		}
	}
	return true
}
