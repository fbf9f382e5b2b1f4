package render

import "image/color"

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c != 0 {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}

// Palette holds the colours used to draw a board.
type Palette struct {
	Live      color.Color
	Dead      color.Color
	GridLine  color.Color
	Highlight color.Color
}

// DefaultPalette matches the classic look: white cells on black with dim
// grid lines and a green cursor.
func DefaultPalette() Palette {
	return Palette{
		Live:      color.White,
		Dead:      color.Black,
		GridLine:  color.RGBA{R: 50, G: 50, B: 50, A: 255},
		Highlight: color.RGBA{G: 255, A: 255},
	}
}
