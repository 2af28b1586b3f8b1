// Package render turns category maps into pixels, rectangles, terminal
// cells or text.
package render

import (
	"image"
	"image/color"

	"qlife/internal/core"
)

var (
	ColorAboutToDie = color.RGBA{R: 200, G: 200, B: 225, A: 255}
	ColorAlive      = color.RGBA{R: 255, G: 255, B: 215, A: 255}
	ColorBackground = color.RGBA{R: 10, G: 10, B: 40, A: 255}
	ColorGridLine   = color.RGBA{R: 30, G: 30, B: 60, A: 255}
)

// Palette is indexed by core.Category.
var Palette = []color.RGBA{
	core.Background: ColorBackground,
	core.Alive:      ColorAlive,
	core.AboutToDie: ColorAboutToDie,
}

// ColorFor returns the designated colour of a category.
func ColorFor(cat core.Category) color.RGBA {
	if int(cat) >= len(Palette) {
		return ColorBackground
	}
	return Palette[cat]
}

// CellRect is the screen rectangle of one cell.
type CellRect struct {
	Row, Col int
	Rect     image.Rectangle
	Category core.Category
}

// Rects lays out one rectangle per cell. Each is cellSize-1 pixels wide so
// the grid line colour shows between cells; a cellSize of 1 leaves no gap.
func Rects(cats core.Categories, cellSize int) []CellRect {
	if cellSize <= 0 {
		cellSize = 1
	}
	inner := cellSize - 1
	if inner <= 0 {
		inner = 1
	}
	size := cats.Size()
	out := make([]CellRect, 0, size.Cells())
	for r := 0; r < size.Rows; r++ {
		for c := 0; c < size.Cols; c++ {
			x, y := c*cellSize, r*cellSize
			out = append(out, CellRect{
				Row:      r,
				Col:      c,
				Rect:     image.Rect(x, y, x+inner, y+inner),
				Category: cats.At(r, c),
			})
		}
	}
	return out
}

// PixelPerCell reports whether cells are small enough to be drawn as
// single scaled pixels instead of separate rectangles. With no gap
// between cells the two produce the same image.
func PixelPerCell(cellSize int) bool { return cellSize <= 1 }

// FillCategoryRGBA writes one RGBA pixel per cell into buf, which must hold
// at least 4*cats.Size().Cells() bytes. Categories past the end of palette
// take its last colour. An empty palette leaves transparent black.
func FillCategoryRGBA(buf []byte, cats core.Categories, palette []color.RGBA) {
	values := cats.Values()
	clear(buf[:4*len(values)])
	if len(palette) == 0 {
		return
	}
	for i, cat := range values {
		col := palette[min(int(cat), len(palette)-1)]
		copy(buf[4*i:4*i+4], []byte{col.R, col.G, col.B, col.A})
	}
}
