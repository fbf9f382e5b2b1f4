package render

import (
	"bufio"
	"io"

	"toruslife/internal/board"
)

// WriteText prints the board one row per line using '#' for live cells and
// '.' for dead ones.
func WriteText(w io.Writer, v board.View) error {
	bw := bufio.NewWriter(w)
	for y := 0; y < v.Height(); y++ {
		for x := 0; x < v.Width(); x++ {
			c := byte('.')
			if v.At(x, y) {
				c = '#'
			}
			if err := bw.WriteByte(c); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
