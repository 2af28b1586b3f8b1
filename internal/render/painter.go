//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"qlife/internal/core"
)

// GridPainter draws a category map onto an ebiten image. Large cells are
// filled rectangles over the grid line colour; one-pixel cells go through
// an RGBA buffer uploaded once per frame.
type GridPainter struct {
	target *ebiten.Image
	img    *ebiten.Image
	buf    []byte
}

// NewGridPainter returns a painter with no target; call SetTarget before
// each Draw.
func NewGridPainter() *GridPainter { return &GridPainter{} }

// SetTarget selects the image the next Draw paints onto.
func (gp *GridPainter) SetTarget(dst *ebiten.Image) { gp.target = dst }

// Draw paints cats onto the current target.
func (gp *GridPainter) Draw(cats core.Categories, cellSize int) error {
	if gp.target == nil {
		return nil
	}
	if PixelPerCell(cellSize) {
		gp.blit(cats)
		return nil
	}
	gp.target.Fill(ColorGridLine)
	for _, cell := range Rects(cats, cellSize) {
		r := cell.Rect
		vector.DrawFilledRect(gp.target,
			float32(r.Min.X), float32(r.Min.Y),
			float32(r.Dx()), float32(r.Dy()),
			ColorFor(cell.Category), false)
	}
	return nil
}

func (gp *GridPainter) blit(cats core.Categories) {
	size := cats.Size()
	if gp.img == nil || gp.img.Bounds().Dx() != size.Cols || gp.img.Bounds().Dy() != size.Rows {
		gp.img = ebiten.NewImage(size.Cols, size.Rows)
		gp.buf = make([]byte, 4*size.Cells())
	}
	FillCategoryRGBA(gp.buf, cats, Palette)
	gp.img.WritePixels(gp.buf)
	gp.target.DrawImage(gp.img, &ebiten.DrawImageOptions{})
}
