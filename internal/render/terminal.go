package render

import (
	"github.com/gdamore/tcell/v2"

	"qlife/internal/core"
)

// ColumnsPerCell is how many terminal columns one cell occupies, which
// keeps cells roughly square in most fonts.
const ColumnsPerCell = 2

// Terminal draws categories onto a tcell screen.
type Terminal struct {
	screen tcell.Screen
	styles [3]tcell.Style
}

// NewTerminal wraps an initialized screen.
func NewTerminal(screen tcell.Screen) *Terminal {
	t := &Terminal{screen: screen}
	for _, cat := range []core.Category{core.Background, core.Alive, core.AboutToDie} {
		c := ColorFor(cat)
		t.styles[cat] = tcell.StyleDefault.
			Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))).
			Foreground(tcell.NewRGBColor(int32(ColorGridLine.R), int32(ColorGridLine.G), int32(ColorGridLine.B)))
	}
	return t
}

// Glyph returns the rune drawn for a category, so monochrome terminals
// still show state.
func Glyph(cat core.Category) rune {
	switch cat {
	case core.Alive:
		return '█'
	case core.AboutToDie:
		return '▒'
	default:
		return ' '
	}
}

// Draw paints each cell as ColumnsPerCell columns. The cell size is
// ignored since terminal cells are fixed. Cells beyond the screen are
// clipped.
func (t *Terminal) Draw(cats core.Categories, _ int) error {
	t.screen.Clear()
	w, h := t.screen.Size()
	size := cats.Size()
	for r := 0; r < size.Rows && r < h; r++ {
		for c := 0; c < size.Cols; c++ {
			x := c * ColumnsPerCell
			if x >= w {
				break
			}
			cat := cats.At(r, c)
			g := Glyph(cat)
			for i := 0; i < ColumnsPerCell && x+i < w; i++ {
				t.screen.SetContent(x+i, r, g, nil, t.styles[cat])
			}
		}
	}
	t.screen.Show()
	return nil
}
