//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// StatusBar renders a one-line summary under the board.
type StatusBar struct {
	panel *ebiten.Image
	width int
}

// NewStatusBar constructs an empty status bar.
func NewStatusBar() *StatusBar { return &StatusBar{} }

// Draw paints s into a strip of the given width starting at offsetY.
func (b *StatusBar) Draw(screen *ebiten.Image, s Status, width, offsetY int) {
	if b == nil || width <= 0 {
		return
	}
	if b.panel == nil || b.width != width {
		if b.panel != nil {
			b.panel.Dispose()
		}
		b.panel = ebiten.NewImage(width, StatusHeight)
		b.width = width
	}
	b.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	fg := color.RGBA{R: 220, G: 220, B: 230, A: 255}
	if s.Mode == "edit" {
		fg = color.RGBA{G: 255, A: 255}
	}
	text.Draw(b.panel, s.Text(), basicfont.Face7x13, 6, 14, fg)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, float64(offsetY))
	screen.DrawImage(b.panel, op)
}
