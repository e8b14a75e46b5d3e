package widget

import (
	"image/color"
	"math"
	"time"

	"gioui.org/layout"
	"gioui.org/widget"

	"git.sr.ht/~gioverse/swipeable/engage"
	"git.sr.ht/~gioverse/swipeable/motion"
)

// Action describes one button revealed by swiping a row.
type Action struct {
	// Key identifies the action within its side.
	Key string
	// Color fills the action once it engages.
	Color color.NRGBA
	// Render draws the action at rest.
	Render layout.Widget
	// RenderEngaged optionally draws the action once engaged, revealed by
	// a growing circle over Render.
	RenderEngaged layout.Widget
	// OnTrigger is invoked when the action is tapped, or once the row
	// settles after being released while the action was engaged.
	OnTrigger func()
}

// ActionItem holds the state of one action of a row. Its layout is derived
// entirely from the row's gesture offset.
type ActionItem struct {
	Action
	// Clickable tracks taps on the action surface.
	widget.Clickable

	item    engage.Item
	springs *Config

	metrics   engage.Metrics
	offset    float64
	evaluated bool

	extent motion.Value
	circle motion.Value
}

func newActionItem(a Action, springs *Config) *ActionItem {
	return &ActionItem{Action: a, springs: springs}
}

// configure updates the static description of the item, forcing a fresh
// evaluation if it changed.
func (a *ActionItem) configure(it engage.Item) {
	if it == a.item {
		return
	}
	a.item = it
	a.evaluated = false
}

// update derives the item's layout for a new gesture offset.
func (a *ActionItem) update(offset float64) {
	if a.evaluated && offset == a.offset {
		return
	}
	a.evaluated, a.offset = true, offset
	m := engage.Evaluate(offset, a.item)
	a.metrics = m

	if m.Immediate {
		a.extent.Set(m.Extent)
	} else {
		a.extent.SpringTo(m.Extent, a.springs.ItemSpring, nil)
	}

	if a.RenderEngaged != nil {
		var diameter float64
		if m.Engaged {
			diameter = m.Container * math.Sqrt2
		}
		if a.circle.Animating() || a.circle.Value() != diameter {
			a.circle.SpringTo(diameter, a.springs.CircleSpring, nil)
		}
	}
}

func (a *ActionItem) step(now time.Time) bool {
	extent := a.extent.Step(now)
	circle := a.circle.Step(now)
	return extent || circle
}

// Metrics returns the quantities derived from the latest offset.
func (a *ActionItem) Metrics() engage.Metrics {
	return a.metrics
}

// Position of the item's side.
func (a *ActionItem) Position() engage.Position {
	return a.item.Position
}

// Order of the item within its side.
func (a *ActionItem) Order() int {
	return a.item.Order
}

// Engaged reports whether releasing now would trigger the item.
func (a *ActionItem) Engaged() bool {
	return a.metrics.Engaged
}

// Width is the current on-screen extent of the item, never below its unit.
func (a *ActionItem) Width() float64 {
	return math.Max(a.extent.Value(), a.item.Unit)
}

// X is the left edge of the item within a row of the given width.
func (a *ActionItem) X(rowWidth float64) float64 {
	if a.item.Position == engage.Right {
		return rowWidth - a.Width() - a.metrics.Displacement
	}
	return a.metrics.Displacement
}

// Circle is the current diameter of the engaged reveal.
func (a *ActionItem) Circle() float64 {
	return math.Max(a.circle.Value(), 0)
}
