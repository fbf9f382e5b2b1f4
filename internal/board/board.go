// Package board implements a toroidal two-state cellular automaton grid.
//
// A Board owns its cells exclusively. Callers read state through View and
// change it only through Advance, ToggleCell, SetWidth and SetHeight. A Board
// is not safe for concurrent use.
package board

import "errors"

var (
	// ErrOutOfBounds reports a coordinate outside the current grid.
	ErrOutOfBounds = errors.New("board: cell is out of bounds")
	// ErrInvalidDimension reports a zero width or height resize request.
	ErrInvalidDimension = errors.New("board: dimension must be positive")
)

// Cell addresses a single grid position. X is the column, Y the row.
type Cell struct {
	X, Y uint
}

// Board stores the current generation as height rows of width cells.
type Board struct {
	w, h int
	cur  [][]bool
	nxt  [][]bool
}

// New returns a board of the given size. When cells is nil the board starts
// all dead; otherwise cells is adopted as-is and must already be h rows of w.
func New(w, h int, cells [][]bool) *Board {
	if cells == nil {
		cells = makeRows(w, h)
	}
	return &Board{w: w, h: h, cur: cells}
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.w }

// Height returns the number of rows.
func (b *Board) Height() int { return b.h }

// Content returns a read-only view of the current generation.
func (b *Board) Content() View { return View{b: b} }

// Advance computes the next generation. Every neighbour count is taken from
// the previous generation; the result is written to a second buffer and the
// buffers are swapped.
//
// Exactly three live neighbours makes a cell live, two leaves it as it was,
// and any other count makes it dead.
func (b *Board) Advance() {
	w, h := b.w, b.h
	if len(b.nxt) != h || (h > 0 && len(b.nxt[0]) != w) {
		b.nxt = makeRows(w, h)
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			alive := b.cur[y][x]
			switch n := b.neighbors(x, y); {
			case n == 3:
				alive = true
			case n >= 4 || n <= 1:
				alive = false
			}
			b.nxt[y][x] = alive
		}
	}
	b.cur, b.nxt = b.nxt, b.cur
}

func (b *Board) neighbors(x, y int) int {
	w, h := b.w, b.h
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := ((x+dx)%w + w) % w
			ny := ((y+dy)%h + h) % h
			if b.cur[ny][nx] {
				n++
			}
		}
	}
	return n
}

// ToggleCell flips the state of c. It returns ErrOutOfBounds and leaves the
// board untouched when c lies outside the grid on either axis.
func (b *Board) ToggleCell(c Cell) error {
	if c.X >= uint(b.w) || c.Y >= uint(b.h) {
		return ErrOutOfBounds
	}
	b.cur[c.Y][c.X] = !b.cur[c.Y][c.X]
	return nil
}

// SetWidth truncates or extends every row to w columns. New columns are
// appended on the right and start dead.
func (b *Board) SetWidth(w uint) error {
	if w == 0 {
		return ErrInvalidDimension
	}
	nw := int(w)
	for y, row := range b.cur {
		b.cur[y] = resizeRow(row, nw)
	}
	b.w = nw
	b.nxt = nil
	return nil
}

// SetHeight drops rows from the bottom or appends dead rows until the board
// has h rows.
func (b *Board) SetHeight(h uint) error {
	if h == 0 {
		return ErrInvalidDimension
	}
	nh := int(h)
	if nh <= len(b.cur) {
		clear(b.cur[nh:])
		b.cur = b.cur[:nh]
	} else {
		for len(b.cur) < nh {
			b.cur = append(b.cur, make([]bool, b.w))
		}
	}
	b.h = nh
	b.nxt = nil
	return nil
}

func resizeRow(row []bool, w int) []bool {
	if w <= len(row) {
		return row[:w:w]
	}
	out := make([]bool, w)
	copy(out, row)
	return out
}

func makeRows(w, h int) [][]bool {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	backing := make([]bool, w*h)
	rows := make([][]bool, h)
	for y := range rows {
		rows[y] = backing[y*w : (y+1)*w : (y+1)*w]
	}
	return rows
}
