package render

import (
	"toruslife/internal/board"
)

// PointToCell maps a pixel position to the board cell underneath it. Points
// left of or above the origin, or past the last row or column, report
// board.ErrOutOfBounds.
func PointToCell(px, py, cellSize int, v board.View) (board.Cell, error) {
	if cellSize <= 0 || px < 0 || py < 0 {
		return board.Cell{}, board.ErrOutOfBounds
	}
	x, y := px/cellSize, py/cellSize
	if x >= v.Width() || y >= v.Height() {
		return board.Cell{}, board.ErrOutOfBounds
	}
	return board.Cell{X: uint(x), Y: uint(y)}, nil
}
