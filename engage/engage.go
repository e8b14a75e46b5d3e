/*
Package engage derives the layout of a single swipe action from the row's
gesture offset.

Every quantity is a pure function of the offset and the static description
of the action, so callers can recompute it on every offset change without
carrying state between frames.
*/
package engage

import "math"

// Position identifies the side of the row an action lives on.
type Position uint8

const (
	// Left actions are revealed by dragging the row to the right.
	Left Position = iota
	// Right actions are revealed by dragging the row to the left.
	Right
)

// Sign converts a gesture offset into the signed delta of the side:
// positive means the side is being revealed.
func (p Position) Sign() float64 {
	if p == Right {
		return -1
	}
	return 1
}

func (p Position) String() string {
	switch p {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown position"
	}
}

// Side describes the actions on one side of a row.
type Side struct {
	// Count is the number of actions.
	Count int
	// Unit is the resting extent of one action.
	Unit float64
}

// Total is the extent of the whole action group at rest.
func (s Side) Total() float64 {
	return float64(s.Count) * s.Unit
}

// Item describes one action within its side.
type Item struct {
	Position Position
	// Order is the index of the action within its side. Order 0 is the
	// outermost action.
	Order int
	// Unit is the resting extent of the action.
	Unit float64
	// Total is the resting extent of the side.
	Total float64
	// CanEngage marks the action that may be triggered by swiping past the
	// engage threshold.
	CanEngage bool
	// Threshold is the distance beyond Total at which the action engages.
	// Zero means Unit.
	Threshold float64
	// Tolerance is how far before the threshold the action is reported as
	// about to engage.
	Tolerance float64
	// FastMargin is the distance beyond the threshold after which the
	// engaged extent tracks the gesture without easing.
	FastMargin float64
}

// EngageAt returns the signed delta that must be exceeded to engage.
func (it Item) EngageAt() float64 {
	threshold := it.Threshold
	if threshold <= 0 {
		threshold = it.Unit
	}
	return it.Total + threshold
}

// Metrics holds everything derived from one offset for one action.
type Metrics struct {
	// Signed is the offset normalized so that positive reveals this side.
	Signed float64
	// Container is the current extent of the side's action group.
	Container float64
	// Chunk is this action's share of Container, never below Unit.
	Chunk float64
	// Extent is the extent the action should be animated toward.
	Extent float64
	// Engaged reports whether releasing now would trigger the action.
	Engaged bool
	// WillEngage reports whether the action is engaged or close to it.
	WillEngage bool
	// Immediate reports whether Extent should be applied without easing.
	Immediate bool
	// Divider is the opacity of the divider before the action.
	Divider float64
	// Displacement is the distance of the action from the side's edge.
	Displacement float64
}

// Evaluate derives the metrics of it at the given gesture offset.
func Evaluate(offset float64, it Item) Metrics {
	var m Metrics
	m.Signed = offset * it.Position.Sign()
	m.Container = ContainerExtent(m.Signed, it.Total)
	m.Chunk = ChunkExtent(m.Container, it.Unit, it.Total)

	engageAt := it.EngageAt()
	m.Engaged = it.CanEngage && m.Signed > engageAt
	m.WillEngage = it.CanEngage && m.Signed >= engageAt-it.Tolerance

	m.Extent = m.Chunk
	if m.Engaged {
		m.Extent = m.Container
	}
	m.Immediate = !m.WillEngage || m.Signed > engageAt+it.FastMargin

	m.Divider = Interpolate(m.Signed,
		[]float64{it.Total / 2, it.Total},
		[]float64{0, 1},
		Clamp)
	m.Displacement = Displacement(m.Signed, it, m.Container, m.Chunk)
	return m
}

// ContainerExtent is the extent of the action group: the resting total until
// the group is fully revealed, and the signed delta beyond that.
func ContainerExtent(signed, total float64) float64 {
	return math.Max(total, total+(signed-total))
}

// ChunkExtent is one action's proportional share of the container. A side
// without extent contributes nothing and falls back to the unit.
func ChunkExtent(container, unit, total float64) float64 {
	if total <= 0 {
		return unit
	}
	chunk := container * (unit / total)
	if math.IsNaN(chunk) || math.IsInf(chunk, 0) {
		return unit
	}
	return math.Max(chunk, unit)
}

// Displacement places the action along its side. At rest every action hides
// one unit beyond the edge; at the fully revealed extent action n sits n
// units in; beyond that the actions fan out in proportion to their chunk.
func Displacement(signed float64, it Item, container, chunk float64) float64 {
	order := float64(it.Order)
	d := Interpolate(signed,
		[]float64{0, it.Total, container},
		[]float64{-it.Unit, order * it.Unit, order * chunk},
		Extend)
	return d
}
