//go:build !ebiten

package ui

// StatusBar is a no-op placeholder for headless builds.
type StatusBar struct{}

// NewStatusBar constructs a stub status bar.
func NewStatusBar() *StatusBar { return &StatusBar{} }

// Draw is a no-op in headless builds.
func (b *StatusBar) Draw(any, Status, int, int) {}
