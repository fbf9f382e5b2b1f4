package ui

import "fmt"

// StatusHeight is the pixel height reserved below the board for the status line.
const StatusHeight = 20

// Status is the information shown in the status line.
type Status struct {
	Mode       string
	Paused     bool
	Generation int
	Width      int
	Height     int
}

// Text formats s for display.
func (s Status) Text() string {
	state := "running"
	if s.Paused {
		state = "paused"
	}
	if s.Mode == "edit" {
		state = "editing"
	}
	return fmt.Sprintf("%s  gen %d  %dx%d", state, s.Generation, s.Width, s.Height)
}
