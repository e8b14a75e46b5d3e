// Package snap chooses where a swiped row comes to rest.
package snap

import "math"

// DefaultProjection is how far ahead, in seconds, the release velocity is
// projected when choosing a snap point.
const DefaultProjection = 0.2

// Extents describes the geometry a row can snap within.
type Extents struct {
	// Left and Right are the resting extents of the action groups.
	Left, Right float64
	// Width is the full width of the row.
	Width float64
}

// Clamp limits an offset so that a side without actions cannot be revealed.
func (e Extents) Clamp(offset float64) float64 {
	if e.Left <= 0 && offset > 0 {
		return 0
	}
	if e.Right <= 0 && offset < 0 {
		return 0
	}
	return offset
}

// Points returns the candidate rest offsets for a row currently resting at
// baseline. A closed row may open to either side. An open row may also be
// flung out to the full width on the side it is open to, but not on the
// opposite side.
func Points(baseline float64, e Extents) []float64 {
	switch {
	case baseline > 0:
		return []float64{full(e.Left, e.Width), e.Left, 0, -e.Right}
	case baseline < 0:
		return []float64{0, e.Left, -e.Right, -full(e.Right, e.Width)}
	default:
		return []float64{e.Left, 0, -e.Right}
	}
}

// full is the width of the row if the side has any actions.
func full(side, width float64) float64 {
	if side <= 0 {
		return 0
	}
	return width
}

// Nearest returns the point closest to value projected along velocity for
// projection seconds. Ties resolve to the earliest point.
func Nearest(value, velocity, projection float64, points []float64) float64 {
	if len(points) == 0 {
		return value
	}
	projected := value + projection*velocity
	best := points[0]
	bestDist := math.Abs(projected - best)
	for _, p := range points[1:] {
		if d := math.Abs(projected - p); d < bestDist {
			best, bestDist = p, d
		}
	}
	return best
}

// Request describes a released drag.
type Request struct {
	Extents
	// Baseline is the offset the row rested at before the drag.
	Baseline float64
	// Delta is the translation of the drag at release.
	Delta float64
	// Velocity is the horizontal velocity at release, in offset units per
	// second.
	Velocity float64
	// EngagedLeft and EngagedRight report an armed action on either side.
	EngagedLeft, EngagedRight bool
	// Projection overrides DefaultProjection when positive.
	Projection float64
}

// Resolve returns the offset a released row should animate to. An engaged
// side drives the row fully open behind its action; otherwise the row snaps
// to the nearest point for its release position and velocity.
func Resolve(r Request) float64 {
	if r.EngagedLeft && r.Left > 0 {
		return r.Width
	}
	if r.EngagedRight && r.Right > 0 {
		return -r.Width
	}
	projection := r.Projection
	if projection <= 0 {
		projection = DefaultProjection
	}
	position := r.Clamp(r.Baseline + r.Delta)
	return Nearest(position, r.Velocity, projection, Points(r.Baseline, r.Extents))
}
