package app

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"toruslife/internal/board"

	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T, mutate func(*Config)) *Session {
	t.Helper()
	cfg := NewConfig()
	cfg.Width, cfg.Height = 4, 3
	cfg.CellSize = 10
	cfg.Tick = 100 * time.Millisecond
	if mutate != nil {
		mutate(cfg)
	}
	require.NoError(t, cfg.Validate())
	return NewSession(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestSessionStartsEmpty(t *testing.T) {
	s := newTestSession(t, nil)
	require.Equal(t, 0, s.Board().Alive())
	require.Equal(t, ModeNormal, s.Mode())
	require.Equal(t, 4, s.Size().W)
	require.Equal(t, 3, s.Size().H)
}

func TestSessionTickFollowsClock(t *testing.T) {
	s := newTestSession(t, func(c *Config) { c.Width, c.Height = 5, 5 })
	s.ToggleMode()
	for _, p := range [][2]int{{25, 15}, {25, 25}, {25, 35}} {
		require.True(t, s.Click(p[0], p[1]))
	}
	s.ToggleMode()

	start := time.Unix(0, 0)
	require.False(t, s.Tick(start))
	require.False(t, s.Tick(start.Add(50*time.Millisecond)))
	require.True(t, s.Tick(start.Add(120*time.Millisecond)))
	require.Equal(t, 1, s.Generation())
	require.True(t, s.Board().At(1, 2))
	require.True(t, s.Board().At(3, 2))
	require.False(t, s.Board().At(2, 1))
}

func TestSessionEditAndPauseFreezeBoard(t *testing.T) {
	s := newTestSession(t, nil)
	start := time.Unix(0, 0)

	s.SetPaused(true)
	require.False(t, s.Tick(start))
	require.False(t, s.Tick(start.Add(time.Second)))

	s.SetPaused(false)
	require.Equal(t, ModeEdit, s.ToggleMode())
	require.False(t, s.Tick(start.Add(2*time.Second)))
	require.Equal(t, 0, s.Generation())

	s.Step()
	require.Equal(t, 1, s.Generation(), "manual step ignores mode")
}

func TestSessionClick(t *testing.T) {
	s := newTestSession(t, nil)

	require.False(t, s.Click(5, 5), "normal mode ignores clicks")
	require.Equal(t, 0, s.Board().Alive())

	s.ToggleMode()
	require.True(t, s.Click(35, 25))
	require.True(t, s.Board().At(3, 2))
	require.Equal(t, 1, s.Board().Alive())

	require.False(t, s.Click(40, 0))
	require.False(t, s.Click(0, 30))
	require.False(t, s.Click(-1, 0))
	require.Equal(t, 1, s.Board().Alive())

	c, ok := s.Hover(19, 0)
	require.True(t, ok)
	require.Equal(t, board.Cell{X: 1, Y: 0}, c)
}

func TestSessionResize(t *testing.T) {
	s := newTestSession(t, nil)
	s.ToggleMode()
	require.True(t, s.Click(0, 0))

	require.NoError(t, s.Resize(2, 1))
	require.Equal(t, 6, s.Size().W)
	require.Equal(t, 4, s.Size().H)
	require.True(t, s.Board().At(0, 0))

	require.NoError(t, s.Resize(-5, 0))
	require.Equal(t, 1, s.Size().W)

	before := s.Board().Snapshot()
	err := s.Resize(-1, 0)
	require.ErrorIs(t, err, board.ErrInvalidDimension)
	err = s.Resize(0, -4)
	require.ErrorIs(t, err, board.ErrInvalidDimension)
	require.Equal(t, 1, s.Size().W)
	require.Equal(t, 4, s.Size().H)
	require.Equal(t, before, s.Board().Snapshot())
}

func TestSessionRandomizeDeterministic(t *testing.T) {
	seeded := func(c *Config) {
		c.Width, c.Height = 16, 16
		c.Seed = 42
		c.Density = 0.4
	}
	a := newTestSession(t, seeded)
	b := newTestSession(t, seeded)
	require.Equal(t, a.Board().Snapshot(), b.Board().Snapshot())
	require.NotZero(t, a.Board().Alive())

	a.Step()
	require.Equal(t, 1, a.Generation())
	a.Randomize(42)
	require.Equal(t, 0, a.Generation())
	require.Equal(t, b.Board().Snapshot(), a.Board().Snapshot())

	a.Clear()
	require.Equal(t, 0, a.Board().Alive())
	require.Equal(t, 16, a.Size().W)
}
