package widget

import "go.uber.org/atomic"

// Flag is the engagement flag of one side of a row. It is written by the row
// while dragging and read when the drag is released.
type Flag struct {
	v atomic.Bool
}

// Engaged reports whether the side is armed.
func (f *Flag) Engaged() bool {
	return f.v.Load()
}

func (f *Flag) set(engaged bool) {
	f.v.Store(engaged)
}
