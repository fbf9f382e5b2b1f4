//go:build ebiten

package app

import (
	"time"

	"toruslife/internal/render"
	"toruslife/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a Session to the ebiten.Game interface.
type Game struct {
	session *Session
	painter *render.BoardPainter
	status  *ui.StatusBar
}

// New constructs a Game for the provided session.
func New(s *Session) *Game {
	return &Game{
		session: s,
		painter: render.NewBoardPainter(s.CellSize(), render.DefaultPalette()),
		status:  ui.NewStatusBar(),
	}
}

// WindowSize returns the window size needed to show the whole board.
func (g *Game) WindowSize() (int, int) {
	w, h := g.session.Size().Pixels(g.session.CellSize())
	return w, h + ui.StatusHeight
}

// Update handles per-frame input and advances the board when a tick is due.
func (g *Game) Update() error {
	s := g.session
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		s.ToggleMode()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.SetPaused(!s.Paused())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		s.Step()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		s.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.Randomize(time.Now().UnixNano())
	}
	g.handleResize()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		s.Click(ebiten.CursorPosition())
	}

	s.Tick(time.Now())
	return nil
}

func (g *Game) handleResize() {
	dw, dh := 0, 0
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		dw = 1
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		dw = -1
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		dh = 1
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		dh = -1
	default:
		return
	}
	if err := g.session.Resize(dw, dh); err != nil {
		return
	}
	ebiten.SetWindowSize(g.WindowSize())
}

// Draw renders the board, the edit cursor and the status line.
func (g *Game) Draw(screen *ebiten.Image) {
	s := g.session
	v := s.Board()
	g.painter.Draw(screen, v)
	if c, ok := s.Hover(ebiten.CursorPosition()); ok {
		g.painter.Highlight(screen, v, c)
	}
	size := s.Size()
	w, h := size.Pixels(s.CellSize())
	g.status.Draw(screen, ui.Status{
		Mode:       s.Mode().String(),
		Paused:     s.Paused(),
		Generation: s.Generation(),
		Width:      size.W,
		Height:     size.H,
	}, w, h)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.WindowSize()
}
