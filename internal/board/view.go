package board

// View is a read-only window onto a Board's current generation. It stays
// attached to the board, so it reflects later mutations.
type View struct {
	b *Board
}

// Width returns the number of columns.
func (v View) Width() int { return v.b.w }

// Height returns the number of rows.
func (v View) Height() int { return v.b.h }

// At reports whether the cell at column x, row y is alive. Coordinates
// outside the grid read as dead.
func (v View) At(x, y int) bool {
	if x < 0 || y < 0 || x >= v.b.w || y >= v.b.h {
		return false
	}
	return v.b.cur[y][x]
}

// Alive counts the live cells.
func (v View) Alive() int {
	n := 0
	for _, row := range v.b.cur {
		for _, c := range row {
			if c {
				n++
			}
		}
	}
	return n
}

// Snapshot returns a deep copy of the grid as rows of cells.
func (v View) Snapshot() [][]bool {
	out := make([][]bool, len(v.b.cur))
	for y, row := range v.b.cur {
		out[y] = append([]bool(nil), row...)
	}
	return out
}

// Bytes writes the grid into dst in row-major order as 0/1 values, growing
// dst when it is too small, and returns the filled slice.
func (v View) Bytes(dst []uint8) []uint8 {
	total := v.b.w * v.b.h
	if cap(dst) < total {
		dst = make([]uint8, total)
	}
	dst = dst[:total]
	for y, row := range v.b.cur {
		base := y * v.b.w
		for x, c := range row {
			if c {
				dst[base+x] = 1
			} else {
				dst[base+x] = 0
			}
		}
	}
	return dst
}
