package motion

import (
	"math"
	"testing"
	"time"
)

// run steps v at 60fps until it settles or the deadline passes, returning the
// number of frames stepped.
func run(t *testing.T, v *Value, start time.Time, deadline time.Duration) (time.Time, int) {
	t.Helper()
	now := start
	frames := 0
	for v.Step(now) {
		frames++
		now = now.Add(time.Second / 60)
		if now.Sub(start) > deadline {
			t.Fatalf("value did not settle within %v (at %v)", deadline, v.Value())
		}
	}
	return now, frames
}

func TestSpringSettlesOnTarget(t *testing.T) {
	for _, tc := range []struct {
		name   string
		spring Spring
		target float64
	}{
		{name: "release", spring: Spring{Damping: 15, Mass: 0.25}, target: -400},
		{name: "close", spring: Spring{Damping: 15, Mass: 0.5}, target: 0},
		{name: "item", spring: Spring{Damping: 10, Mass: 0.1}, target: 160},
		{name: "underdamped", spring: Spring{Damping: 5, Mass: 1}, target: 80},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var v Value
			v.Set(37)
			finished := 0
			v.SpringTo(tc.target, tc.spring, func() { finished++ })
			run(t, &v, time.Unix(0, 0), 10*time.Second)
			if v.Value() != tc.target {
				t.Errorf("expected value %v, got %v", tc.target, v.Value())
			}
			if finished != 1 {
				t.Errorf("expected done to fire once, fired %d times", finished)
			}
			if v.Animating() {
				t.Errorf("value should be at rest")
			}
		})
	}
}

func TestSpringOscillator(t *testing.T) {
	freq, ratio := Spring{Damping: 15, Mass: 0.25}.Oscillator()
	if math.Abs(freq-20) > 1e-9 {
		t.Errorf("expected angular frequency 20, got %v", freq)
	}
	if math.Abs(ratio-1.5) > 1e-9 {
		t.Errorf("expected damping ratio 1.5, got %v", ratio)
	}
}

func TestPreemptionSkipsDone(t *testing.T) {
	var v Value
	first, second := 0, 0
	now := time.Unix(0, 0)
	v.SpringTo(100, Spring{Damping: 15, Mass: 0.5}, func() { first++ })
	v.Step(now)
	now = now.Add(time.Second / 60)
	v.Step(now)
	v.SpringTo(0, Spring{Damping: 15, Mass: 0.5}, func() { second++ })
	run(t, &v, now, 10*time.Second)
	if first != 0 {
		t.Errorf("pre-empted animation must not report completion")
	}
	if second != 1 {
		t.Errorf("expected replacement to complete once, got %d", second)
	}

	v.SpringTo(50, Spring{Damping: 15}, func() { first++ })
	v.Set(10)
	if v.Animating() || v.Step(now.Add(time.Second)) {
		t.Errorf("Set must cancel the animation")
	}
	if first != 0 {
		t.Errorf("Set must drop the done callback")
	}
	if v.Value() != 10 {
		t.Errorf("expected 10, got %v", v.Value())
	}
}

func TestTiming(t *testing.T) {
	var v Value
	now := time.Unix(0, 0)
	v.Step(now)
	done := false
	v.TimingTo(1, Timing{Duration: 100 * time.Millisecond, Easing: Linear}, func() { done = true })
	now = now.Add(50 * time.Millisecond)
	v.Step(now)
	if math.Abs(v.Value()-0.5) > 1e-9 {
		t.Errorf("expected halfway value 0.5, got %v", v.Value())
	}
	now = now.Add(50 * time.Millisecond)
	if v.Step(now) {
		t.Errorf("timing should be finished")
	}
	if !done || v.Value() != 1 {
		t.Errorf("expected finished at 1, got %v (done=%v)", v.Value(), done)
	}
}

func TestZeroDurationTiming(t *testing.T) {
	var v Value
	v.TimingTo(3, Timing{}, nil)
	v.Step(time.Unix(0, 0))
	if v.Value() != 3 {
		t.Errorf("zero duration timing should jump to the target, got %v", v.Value())
	}
}

func TestReactions(t *testing.T) {
	var v Value
	var seen []float64
	cancel := v.React(func(x float64) { seen = append(seen, x) })
	v.Set(1)
	v.Set(1)
	v.Set(2)
	cancel()
	v.Set(3)
	if len(seen) != 2 || seen[0] != 1 || seen[1] != 2 {
		t.Errorf("expected reactions [1 2], got %v", seen)
	}
}

func TestEasing(t *testing.T) {
	for _, x := range []float64{0, 0.25, 0.5, 0.75, 1} {
		got := EaseInOutQuad(x)
		if got < 0 || got > 1 {
			t.Errorf("easing out of range at %v: %v", x, got)
		}
	}
	if EaseInOutQuad(0) != 0 || EaseInOutQuad(1) != 1 || EaseInOutQuad(0.5) != 0.5 {
		t.Errorf("easing endpoints wrong")
	}
}
