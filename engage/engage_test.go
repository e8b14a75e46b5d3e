package engage

import (
	"math"
	"testing"
)

func rightItem(order int) Item {
	return Item{
		Position:   Right,
		Order:      order,
		Unit:       80,
		Total:      160,
		CanEngage:  order == 0,
		Tolerance:  50,
		FastMargin: 25,
	}
}

func TestEvaluateTwoRightActions(t *testing.T) {
	type testcase struct {
		name       string
		offset     float64
		order      int
		engaged    bool
		willEngage bool
		extent     float64
		container  float64
	}
	for _, tc := range []testcase{
		{name: "closed", offset: 0, order: 0, extent: 80, container: 160},
		{name: "below threshold", offset: -150, order: 0, extent: 80, container: 160},
		{name: "fully revealed", offset: -160, order: 1, extent: 80, container: 160},
		{name: "stretching", offset: -200, order: 1, extent: 100, container: 200, willEngage: false},
		{name: "about to engage", offset: -200, order: 0, extent: 100, container: 200, willEngage: true},
		{name: "at threshold", offset: -240, order: 0, extent: 120, container: 240, willEngage: true},
		{name: "engaged", offset: -260, order: 0, extent: 260, container: 260, engaged: true, willEngage: true},
		{name: "second never engages", offset: -260, order: 1, extent: 130, container: 260},
		{name: "other side", offset: 300, order: 0, extent: 80, container: 160},
	} {
		t.Run(tc.name, func(t *testing.T) {
			m := Evaluate(tc.offset, rightItem(tc.order))
			if m.Engaged != tc.engaged {
				t.Errorf("engaged: expected %v, got %v", tc.engaged, m.Engaged)
			}
			if m.WillEngage != tc.willEngage {
				t.Errorf("willEngage: expected %v, got %v", tc.willEngage, m.WillEngage)
			}
			if m.Extent != tc.extent {
				t.Errorf("extent: expected %v, got %v", tc.extent, m.Extent)
			}
			if m.Container != tc.container {
				t.Errorf("container: expected %v, got %v", tc.container, m.Container)
			}
		})
	}
}

func TestEngagementIsStrict(t *testing.T) {
	it := rightItem(0)
	if Evaluate(-it.EngageAt(), it).Engaged {
		t.Errorf("engagement must require strictly exceeding the threshold")
	}
	if !Evaluate(-it.EngageAt()-0.001, it).Engaged {
		t.Errorf("expected engagement just past the threshold")
	}
	it.Threshold = 40
	if it.EngageAt() != 200 {
		t.Errorf("expected explicit threshold to be honoured, got %v", it.EngageAt())
	}
}

func TestExtentNeverBelowUnit(t *testing.T) {
	offsets := []float64{
		math.Inf(-1), -1e9, -1000, -260, -161, -160, -80, -1, 0, 1, 80, 1e9, math.Inf(1),
	}
	items := []Item{
		rightItem(0),
		rightItem(1),
		{Position: Left, Order: 0, Unit: 60, Total: 60, CanEngage: true},
		{Position: Left, Order: 0, Unit: 60, Total: 0},
	}
	for _, it := range items {
		for _, off := range offsets {
			m := Evaluate(off, it)
			if !(m.Extent >= it.Unit) {
				t.Errorf("%v order %d at %v: extent %v below unit %v", it.Position, it.Order, off, m.Extent, it.Unit)
			}
			if math.IsNaN(m.Chunk) || math.IsNaN(m.Divider) {
				t.Errorf("%v order %d at %v: NaN in %+v", it.Position, it.Order, off, m)
			}
		}
	}
}

func TestZeroTotalFallsBackToUnit(t *testing.T) {
	if got := ChunkExtent(0, 60, 0); got != 60 {
		t.Errorf("expected unit fallback, got %v", got)
	}
	if got := ChunkExtent(500, 60, 0); got != 60 {
		t.Errorf("expected unit fallback, got %v", got)
	}
}

func TestImmediateGrowth(t *testing.T) {
	it := rightItem(0)
	for _, tc := range []struct {
		signed    float64
		immediate bool
	}{
		{signed: 100, immediate: true},
		{signed: 189, immediate: true},
		{signed: 190, immediate: false},
		{signed: 250, immediate: false},
		{signed: 265, immediate: false},
		{signed: 266, immediate: true},
	} {
		m := Evaluate(-tc.signed, it)
		if m.Immediate != tc.immediate {
			t.Errorf("at %v: expected immediate=%v, got %v", tc.signed, tc.immediate, m.Immediate)
		}
	}
}

func TestDivider(t *testing.T) {
	it := rightItem(1)
	for _, tc := range []struct {
		signed, opacity float64
	}{
		{signed: 0, opacity: 0},
		{signed: 80, opacity: 0},
		{signed: 120, opacity: 0.5},
		{signed: 160, opacity: 1},
		{signed: 400, opacity: 1},
	} {
		if got := Evaluate(-tc.signed, it).Divider; math.Abs(got-tc.opacity) > 1e-9 {
			t.Errorf("at %v: expected divider %v, got %v", tc.signed, tc.opacity, got)
		}
	}
}

func TestDisplacementFansOut(t *testing.T) {
	three := func(order int) Item {
		return Item{Position: Left, Order: order, Unit: 50, Total: 150}
	}
	for _, signed := range []float64{150, 180, 300, 600} {
		var edge float64
		for order := 0; order < 3; order++ {
			m := Evaluate(signed, three(order))
			if math.Abs(m.Displacement-edge) > 1e-9 {
				t.Errorf("at %v: action %d starts at %v, expected %v", signed, order, m.Displacement, edge)
			}
			edge += m.Chunk
		}
		if math.Abs(edge-math.Max(150, signed)) > 1e-9 {
			t.Errorf("at %v: actions cover %v", signed, edge)
		}
	}
	if got := Evaluate(0, three(2)).Displacement; got != -50 {
		t.Errorf("at rest actions should hide one unit beyond the edge, got %v", got)
	}
	if got := Evaluate(75, three(2)).Displacement; got != 25 {
		t.Errorf("expected halfway displacement 25, got %v", got)
	}
}

func TestInterpolate(t *testing.T) {
	in := []float64{0, 10, 20}
	out := []float64{0, 100, 0}
	for _, tc := range []struct {
		x    float64
		ex   Extrapolation
		want float64
	}{
		{x: 5, ex: Extend, want: 50},
		{x: 15, ex: Extend, want: 50},
		{x: -5, ex: Extend, want: -50},
		{x: 25, ex: Extend, want: -50},
		{x: -5, ex: Clamp, want: 0},
		{x: 25, ex: Clamp, want: 0},
	} {
		if got := Interpolate(tc.x, in, out, tc.ex); got != tc.want {
			t.Errorf("Interpolate(%v, %v): expected %v, got %v", tc.x, tc.ex, tc.want, got)
		}
	}
	if got := Interpolate(3, []float64{1}, []float64{7}, Extend); got != 7 {
		t.Errorf("degenerate input should return the first output, got %v", got)
	}
}
