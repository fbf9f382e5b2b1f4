package core

// Size describes board dimensions in cells.
type Size struct {
	W int
	H int
}

// Pixels scales s by a per-cell pixel size.
func (s Size) Pixels(cell int) (int, int) {
	return s.W * cell, s.H * cell
}
