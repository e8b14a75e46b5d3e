/*
Package pan recognizes horizontal pan gestures.

A pan becomes active once the pointer has travelled further than the
activation deadband horizontally. It fails, and is ignored until the pointer
is released, if the pointer first travels further than the veto band
vertically. This lets a horizontally swipeable row live inside a vertically
scrolling list.
*/
package pan

import (
	"time"

	"gioui.org/f32"
	"gioui.org/io/pointer"
)

// Kind of a pan Event.
type Kind uint8

const (
	// Start is reported once when the pan activates.
	Start Kind = iota + 1
	// Update reports a new translation of an active pan.
	Update
	// End reports the release of an active pan.
	End
	// Cancel reports that the platform took the pointer away from an
	// active pan.
	Cancel
)

func (k Kind) String() string {
	switch k {
	case Start:
		return "Start"
	case Update:
		return "Update"
	case End:
		return "End"
	case Cancel:
		return "Cancel"
	default:
		return "unknown kind"
	}
}

// Event describes a change in an active pan.
type Event struct {
	Kind Kind
	// Translation is the horizontal distance from the initial press.
	Translation float32
	// Velocity is the horizontal velocity in pixels per second. It is only
	// meaningful for End events.
	Velocity float32
}

type state uint8

const (
	idle state = iota
	possible
	active
	failed
)

// Recognizer turns raw pointer events into pan events. Deadband and Veto are
// in pixels.
type Recognizer struct {
	Deadband float32
	Veto     float32

	state state
	pid   pointer.ID
	start f32.Point
	last  float32
	track tracker
}

// Active reports whether a pan is in progress.
func (r *Recognizer) Active() bool {
	return r.state == active
}

// Reset abandons any gesture in progress without reporting an event.
func (r *Recognizer) Reset() {
	r.state = idle
	r.track.reset()
}

// Feed processes one pointer event and reports the resulting pan event, if
// any.
func (r *Recognizer) Feed(e pointer.Event) (Event, bool) {
	switch e.Type {
	case pointer.Press:
		if r.state != idle {
			return Event{}, false
		}
		if e.Source == pointer.Mouse && e.Buttons != pointer.ButtonPrimary {
			return Event{}, false
		}
		r.state = possible
		r.pid = e.PointerID
		r.start = e.Position
		r.last = 0
		r.track.reset()
		r.track.add(e.Time, 0)
	case pointer.Drag:
		if e.PointerID != r.pid {
			return Event{}, false
		}
		d := e.Position.Sub(r.start)
		switch r.state {
		case possible:
			// A vertical excursion fails the pan even when the same
			// sample also crosses the deadband.
			if abs(d.Y) > r.Veto {
				r.state = failed
				return Event{}, false
			}
			r.track.add(e.Time, d.X)
			if abs(d.X) > r.Deadband {
				r.state = active
				r.last = d.X
				return Event{Kind: Start, Translation: d.X}, true
			}
		case active:
			r.track.add(e.Time, d.X)
			if d.X == r.last {
				return Event{}, false
			}
			r.last = d.X
			return Event{Kind: Update, Translation: d.X}, true
		}
	case pointer.Release:
		if e.PointerID != r.pid {
			return Event{}, false
		}
		wasActive := r.state == active
		r.state = idle
		if !wasActive {
			return Event{}, false
		}
		x := e.Position.X - r.start.X
		r.track.add(e.Time, x)
		return Event{Kind: End, Translation: x, Velocity: r.track.velocity()}, true
	case pointer.Cancel:
		wasActive := r.state == active
		r.state = idle
		if !wasActive {
			return Event{}, false
		}
		return Event{Kind: Cancel, Translation: r.last}, true
	}
	return Event{}, false
}

// velocityWindow is how far back samples contribute to the release velocity.
const velocityWindow = 100 * time.Millisecond

type sample struct {
	t time.Duration
	x float32
}

// tracker estimates velocity from the most recent samples.
type tracker struct {
	samples []sample
}

func (t *tracker) reset() {
	t.samples = t.samples[:0]
}

func (t *tracker) add(at time.Duration, x float32) {
	t.samples = append(t.samples, sample{t: at, x: x})
	cut := 0
	for cut < len(t.samples)-2 && at-t.samples[cut].t > velocityWindow {
		cut++
	}
	t.samples = append(t.samples[:0], t.samples[cut:]...)
}

func (t *tracker) velocity() float32 {
	if len(t.samples) < 2 {
		return 0
	}
	first, last := t.samples[0], t.samples[len(t.samples)-1]
	dt := last.t - first.t
	if dt <= 0 {
		return 0
	}
	return (last.x - first.x) / float32(dt.Seconds())
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
