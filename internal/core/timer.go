package core

import "time"

// DefaultTick is the generation interval used when none is configured.
const DefaultTick = 130 * time.Millisecond

// FixedStep paces board generations at a steady interval independent of the
// frame rate driving it.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep that fires once per interval. A
// non-positive interval falls back to DefaultTick.
func NewFixedStep(interval time.Duration) *FixedStep {
	fs := &FixedStep{}
	fs.SetInterval(interval)
	return fs
}

// SetInterval changes the tick interval. It is safe to call from the main loop.
func (f *FixedStep) SetInterval(interval time.Duration) {
	if interval <= 0 {
		interval = DefaultTick
	}
	f.step = interval
}

// Interval reports the current tick interval.
func (f *FixedStep) Interval() time.Duration { return f.step }

// Reset discards accumulated time so the next tick is a full interval away.
func (f *FixedStep) Reset() {
	f.accumulator = 0
	f.last = time.Time{}
}

// ShouldStep reports whether a generation is due at now. At most one step is
// reported per call; a long stall does not produce a burst of catch-up steps.
func (f *FixedStep) ShouldStep(now time.Time) bool {
	if f.last.IsZero() {
		f.last = now
		return false
	}
	delta := now.Sub(f.last)
	f.last = now
	if delta < 0 {
		delta = 0
	}
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		if f.accumulator >= f.step {
			f.accumulator = 0
		}
		return true
	}
	return false
}
