package core

// Category is a per-cell rendering hint produced by a step. It has no
// effect on later generations.
type Category uint8

const (
	// Background is a dead or unlikely cell.
	Background Category = iota
	// Alive is a cell alive in the next generation.
	Alive
	// AboutToDie is a live cell the rule is about to remove.
	AboutToDie
)

func (c Category) String() string {
	switch c {
	case Alive:
		return "alive"
	case AboutToDie:
		return "about-to-die"
	default:
		return "background"
	}
}

// Categories holds one Category per cell in row-major order.
type Categories struct {
	size Size
	data []Category
}

// NewCategories allocates an all-background map of the given size.
func NewCategories(size Size) Categories {
	return Categories{size: size, data: make([]Category, size.Cells())}
}

// Size returns the map dimensions.
func (m Categories) Size() Size { return m.size }

// At returns the category of (r, c), Background outside the map.
func (m Categories) At(r, c int) Category {
	if !m.size.Contains(r, c) {
		return Background
	}
	return m.data[r*m.size.Cols+c]
}

// Set writes the category of (r, c).
func (m Categories) Set(r, c int, cat Category) {
	if !m.size.Contains(r, c) {
		return
	}
	m.data[r*m.size.Cols+c] = cat
}

// Values exposes the backing slice.
func (m Categories) Values() []Category { return m.data }

// Count returns how many cells carry the given category.
func (m Categories) Count(cat Category) int {
	n := 0
	for _, v := range m.data {
		if v == cat {
			n++
		}
	}
	return n
}
