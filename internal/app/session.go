package app

import (
	"fmt"
	"log/slog"
	"time"

	"toruslife/internal/board"
	"toruslife/internal/core"
	"toruslife/internal/render"
)

// Mode selects whether the board evolves or accepts edits.
type Mode int

const (
	// ModeNormal advances the board on every tick.
	ModeNormal Mode = iota
	// ModeEdit freezes the board and lets clicks toggle cells.
	ModeEdit
)

func (m Mode) String() string {
	if m == ModeEdit {
		return "edit"
	}
	return "normal"
}

// Session drives a board from user input and the wall clock. It holds no
// rendering state, so the GUI and tests share it.
type Session struct {
	board    *board.Board
	clock    *core.FixedStep
	log      *slog.Logger
	cellSize int
	density  float64

	mode       Mode
	paused     bool
	generation int
}

// NewSession builds the initial board from cfg. A non-zero seed fills the
// board randomly; otherwise it starts empty.
func NewSession(cfg *Config, log *slog.Logger) *Session {
	if log == nil {
		log = slog.Default()
	}
	s := &Session{
		board:    board.New(cfg.Width, cfg.Height, nil),
		clock:    core.NewFixedStep(cfg.Tick),
		log:      log,
		cellSize: cfg.CellSize,
		density:  cfg.Density,
		paused:   cfg.Paused,
	}
	if cfg.Seed != 0 {
		s.Randomize(cfg.Seed)
	}
	return s
}

// Board exposes the current generation for drawing.
func (s *Session) Board() board.View { return s.board.Content() }

// Size reports the board dimensions in cells.
func (s *Session) Size() core.Size {
	return core.Size{W: s.board.Width(), H: s.board.Height()}
}

// CellSize returns the pixel size of a cell.
func (s *Session) CellSize() int { return s.cellSize }

// Mode returns the current interaction mode.
func (s *Session) Mode() Mode { return s.mode }

// Paused reports whether ticking is suspended.
func (s *Session) Paused() bool { return s.paused }

// Generation counts generations since the board was last cleared or seeded.
func (s *Session) Generation() int { return s.generation }

// ToggleMode switches between normal and edit mode and returns the new mode.
func (s *Session) ToggleMode() Mode {
	if s.mode == ModeEdit {
		s.mode = ModeNormal
	} else {
		s.mode = ModeEdit
	}
	s.log.Info("Mode changed.", "mode", s.mode)
	return s.mode
}

// SetPaused suspends or resumes ticking.
func (s *Session) SetPaused(p bool) {
	if s.paused == p {
		return
	}
	s.paused = p
	s.log.Info("Pause toggled.", "paused", p)
}

// Tick advances the board when a generation is due at now. It reports
// whether the board changed generation.
func (s *Session) Tick(now time.Time) bool {
	if s.mode != ModeNormal || s.paused {
		return false
	}
	if !s.clock.ShouldStep(now) {
		return false
	}
	s.Step()
	return true
}

// Step advances exactly one generation regardless of mode or pause state.
func (s *Session) Step() {
	s.board.Advance()
	s.generation++
}

// Hover returns the cell under the pixel position while in edit mode.
func (s *Session) Hover(px, py int) (board.Cell, bool) {
	if s.mode != ModeEdit {
		return board.Cell{}, false
	}
	c, err := render.PointToCell(px, py, s.cellSize, s.board.Content())
	if err != nil {
		return board.Cell{}, false
	}
	return c, true
}

// Click toggles the cell under the pixel position while in edit mode.
// Clicks outside the board, or in normal mode, are ignored.
func (s *Session) Click(px, py int) bool {
	c, ok := s.Hover(px, py)
	if !ok {
		s.log.Debug("Click ignored.", "x", px, "y", py, "mode", s.mode)
		return false
	}
	if err := s.board.ToggleCell(c); err != nil {
		s.log.Debug("Toggle rejected.", "cell", c, "error", err)
		return false
	}
	return true
}

// Resize grows or shrinks the board by dw columns and dh rows. A request
// that would leave either dimension below one fails with
// board.ErrInvalidDimension and changes nothing.
func (s *Session) Resize(dw, dh int) error {
	w := s.board.Width() + dw
	h := s.board.Height() + dh
	if w < 1 || h < 1 {
		s.log.Debug("Resize rejected.", "width", w, "height", h)
		return fmt.Errorf("resize to %dx%d: %w", w, h, board.ErrInvalidDimension)
	}
	if dw != 0 {
		if err := s.board.SetWidth(uint(w)); err != nil {
			return fmt.Errorf("resize width to %d: %w", w, err)
		}
	}
	if dh != 0 {
		if err := s.board.SetHeight(uint(h)); err != nil {
			return fmt.Errorf("resize height to %d: %w", h, err)
		}
	}
	s.log.Info("Board resized.", "width", w, "height", h)
	return nil
}

// Clear kills every cell and resets the generation counter.
func (s *Session) Clear() {
	s.board = board.New(s.board.Width(), s.board.Height(), nil)
	s.generation = 0
	s.clock.Reset()
}

// Randomize refills the board from seed at the configured density and resets
// the generation counter.
func (s *Session) Randomize(seed int64) {
	w, h := s.board.Width(), s.board.Height()
	rows := make([][]bool, h)
	for y := range rows {
		rows[y] = make([]bool, w)
	}
	core.NewRNG(seed).FillRows(rows, s.density)
	s.board = board.New(w, h, rows)
	s.generation = 0
	s.clock.Reset()
	s.log.Info("Board seeded.", "seed", seed, "alive", s.board.Content().Alive())
}
