//go:build ebiten

package render

import (
	"toruslife/internal/board"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// BoardPainter draws a board scaled up to cellSize pixels per cell, with
// grid lines and an optional highlighted cell.
type BoardPainter struct {
	w, h     int
	cellSize int
	palette  Palette

	img   *ebiten.Image
	cells []uint8
	buf   []byte
}

// NewBoardPainter allocates a painter for boards drawn at cellSize pixels.
func NewBoardPainter(cellSize int, palette Palette) *BoardPainter {
	if cellSize <= 0 {
		cellSize = 1
	}
	return &BoardPainter{cellSize: cellSize, palette: palette}
}

// CellSize returns the pixel size of one cell.
func (bp *BoardPainter) CellSize() int { return bp.cellSize }

func (bp *BoardPainter) ensure(w, h int) {
	if bp.img != nil && bp.w == w && bp.h == h {
		return
	}
	if bp.img != nil {
		bp.img.Dispose()
	}
	bp.w, bp.h = w, h
	bp.img = ebiten.NewImage(w, h)
	bp.buf = make([]byte, 4*w*h)
}

// Draw paints live cells and grid lines onto dst.
func (bp *BoardPainter) Draw(dst *ebiten.Image, v board.View) {
	w, h := v.Width(), v.Height()
	if w <= 0 || h <= 0 {
		return
	}
	bp.ensure(w, h)
	bp.cells = v.Bytes(bp.cells)
	fillBinaryRGBA(bp.buf, bp.cells, bp.palette.Live, bp.palette.Dead)
	bp.img.ReplacePixels(bp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(bp.cellSize), float64(bp.cellSize))
	dst.DrawImage(bp.img, op)

	bp.drawGrid(dst, w, h)
}

func (bp *BoardPainter) drawGrid(dst *ebiten.Image, w, h int) {
	cs := float32(bp.cellSize)
	right := float32(w) * cs
	bottom := float32(h) * cs
	for x := 0; x <= w; x++ {
		px := float32(x) * cs
		vector.StrokeLine(dst, px, 0, px, bottom, 1, bp.palette.GridLine, false)
	}
	for y := 0; y <= h; y++ {
		py := float32(y) * cs
		vector.StrokeLine(dst, 0, py, right, py, 1, bp.palette.GridLine, false)
	}
}

// Highlight outlines a single cell. Cells outside the view are ignored.
func (bp *BoardPainter) Highlight(dst *ebiten.Image, v board.View, c board.Cell) {
	if c.X >= uint(v.Width()) || c.Y >= uint(v.Height()) {
		return
	}
	cs := float32(bp.cellSize)
	vector.StrokeRect(dst, float32(c.X)*cs, float32(c.Y)*cs, cs, cs, 1, bp.palette.Highlight, false)
}
