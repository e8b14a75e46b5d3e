package motion

import (
	"time"
)

// Easing maps linear progress in [0,1] onto eased progress.
type Easing func(t float64) float64

// Linear progresses at a constant rate.
func Linear(t float64) float64 { return t }

// EaseInOutQuad accelerates through the first half and decelerates through
// the second.
func EaseInOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return 1 - 2*(1-t)*(1-t)
}

// Timing describes a fixed-duration animation along an easing curve.
// A nil Easing means EaseInOutQuad.
type Timing struct {
	Duration time.Duration
	Easing   Easing
}

// From returns an Animation that moves from one value to another.
func (t Timing) From(from, to float64) Animation {
	if t.Easing == nil {
		t.Easing = EaseInOutQuad
	}
	return &timingAnimation{Timing: t, from: from, to: to}
}

type timingAnimation struct {
	Timing
	from, to float64
	elapsed  time.Duration
}

func (a *timingAnimation) Step(pos, vel float64, dt time.Duration) (float64, float64, bool) {
	a.elapsed += dt
	if a.Duration <= 0 || a.elapsed >= a.Duration {
		return a.to, 0, true
	}
	progress := a.Easing(float64(a.elapsed) / float64(a.Duration))
	next := a.from + (a.to-a.from)*progress
	if dt > 0 {
		vel = (next - pos) / dt.Seconds()
	}
	return next, vel, false
}
