// Package motion provides animatable scalar values stepped once per frame.
//
// A Value can be written synchronously (pre-empting any animation) or driven
// toward a target by an Animation. Starting a new animation replaces the one
// in flight; only an animation that runs to completion delivers its done
// callback.
package motion

import (
	"time"
)

// maxStep bounds the simulated time between two frames, so that a value
// which was not laid out for a while does not leap to the end of a timing
// curve.
const maxStep = 100 * time.Millisecond

// Animation drives a Value toward a target. Step advances the animation by
// dt from the current position and velocity and reports the new position,
// velocity and whether the animation has settled.
type Animation interface {
	Step(pos, vel float64, dt time.Duration) (newPos, newVel float64, settled bool)
}

// Value is an animatable float64. The zero value is ready to use and rests
// at zero.
type Value struct {
	pos, vel float64
	anim     Animation
	// done is invoked once when anim settles.
	done func()
	// last is the frame time of the previous Step.
	last      time.Time
	reactions []reaction
	nextID    int
}

type reaction struct {
	id int
	fn func(float64)
}

// Value returns the current value.
func (v *Value) Value() float64 {
	return v.pos
}

// Velocity returns the current velocity in units per second.
func (v *Value) Velocity() float64 {
	return v.vel
}

// Animating reports whether an animation is in flight.
func (v *Value) Animating() bool {
	return v.anim != nil
}

// Set writes x immediately. Any animation in flight is cancelled without
// invoking its done callback.
func (v *Value) Set(x float64) {
	v.Stop()
	v.vel = 0
	v.update(x)
}

// Stop cancels the animation in flight, if any, leaving the value where it
// is. The cancelled animation's done callback is dropped.
func (v *Value) Stop() {
	v.anim = nil
	v.done = nil
}

// Animate starts a, replacing the animation in flight. done may be nil; it is
// called from Step once a settles, and never if a is replaced or stopped
// first. The current velocity carries over into a.
func (v *Value) Animate(a Animation, done func()) {
	v.anim = a
	v.done = done
}

// SpringTo animates toward target with the spring s.
func (v *Value) SpringTo(target float64, s Spring, done func()) {
	v.Animate(s.To(target), done)
}

// TimingTo animates toward target along the timing curve t.
func (v *Value) TimingTo(target float64, t Timing, done func()) {
	v.Animate(t.From(v.pos, target), done)
}

// Step advances the animation in flight to the frame time now and reports
// whether the value is still animating afterwards.
func (v *Value) Step(now time.Time) bool {
	var dt time.Duration
	if !v.last.IsZero() {
		dt = now.Sub(v.last)
	}
	v.last = now
	if dt < 0 {
		dt = 0
	}
	if dt > maxStep {
		dt = maxStep
	}
	if v.anim == nil {
		return false
	}
	a, done := v.anim, v.done
	pos, vel, settled := a.Step(v.pos, v.vel, dt)
	v.vel = vel
	if settled {
		v.anim, v.done = nil, nil
		v.vel = 0
	}
	v.update(pos)
	if settled && done != nil {
		done()
	}
	return v.anim != nil
}

// React registers fn to be called with the new value whenever the value
// changes. The returned function removes the reaction.
func (v *Value) React(fn func(float64)) (cancel func()) {
	v.nextID++
	id := v.nextID
	v.reactions = append(v.reactions, reaction{id: id, fn: fn})
	return func() {
		for i, r := range v.reactions {
			if r.id == id {
				v.reactions = append(v.reactions[:i], v.reactions[i+1:]...)
				return
			}
		}
	}
}

func (v *Value) update(x float64) {
	if x == v.pos {
		return
	}
	v.pos = x
	for _, r := range v.reactions {
		r.fn(x)
	}
}
