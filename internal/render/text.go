package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"qlife/internal/core"
)

// Text writes frames as rows of glyphs, one per cell.
type Text struct {
	w       io.Writer
	frame   int
	styles  map[core.Category]lipgloss.Style
	Heading bool
}

// NewText returns a text painter writing to w.
func NewText(w io.Writer) *Text {
	styles := map[core.Category]lipgloss.Style{}
	for _, cat := range []core.Category{core.Background, core.Alive, core.AboutToDie} {
		c := ColorFor(cat)
		styles[cat] = lipgloss.NewStyle().
			Foreground(lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)))
	}
	return &Text{w: w, styles: styles, Heading: true}
}

// TextGlyph returns the character written for a category.
func TextGlyph(cat core.Category) string {
	switch cat {
	case core.Alive:
		return "#"
	case core.AboutToDie:
		return "+"
	default:
		return "."
	}
}

// Draw writes one frame. The cell size is ignored.
func (t *Text) Draw(cats core.Categories, _ int) error {
	var b strings.Builder
	if t.Heading {
		fmt.Fprintf(&b, "-- frame %d (alive %d, dying %d)\n",
			t.frame, cats.Count(core.Alive), cats.Count(core.AboutToDie))
	}
	size := cats.Size()
	for r := 0; r < size.Rows; r++ {
		for c := 0; c < size.Cols; c++ {
			cat := cats.At(r, c)
			b.WriteString(t.styles[cat].Render(TextGlyph(cat)))
		}
		b.WriteByte('\n')
	}
	t.frame++
	_, err := io.WriteString(t.w, b.String())
	return err
}

// WriteGrid writes a classical grid using the same glyphs, with live
// cells as Alive and everything else as Background.
func (t *Text) WriteGrid(g *core.Grid) error {
	size := g.Size()
	cats := core.NewCategories(size)
	for r := 0; r < size.Rows; r++ {
		for c := 0; c < size.Cols; c++ {
			if g.Alive(r, c) {
				cats.Set(r, c, core.Alive)
			}
		}
	}
	return t.Draw(cats, 1)
}
