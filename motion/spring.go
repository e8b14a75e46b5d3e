package motion

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

// Defaults applied to zero fields of a Spring.
const (
	DefaultStiffness        = 100
	DefaultMass             = 1
	DefaultRestDisplacement = 0.01
	DefaultRestSpeed        = 2
)

// Spring describes a damped harmonic oscillator in terms of a physical
// damping coefficient, mass and stiffness. A spring is at rest once it is
// within RestDisplacement of its target and slower than RestSpeed.
type Spring struct {
	Damping   float64
	Mass      float64
	Stiffness float64

	RestDisplacement float64
	RestSpeed        float64
}

// Normalized returns s with zero fields replaced by their defaults.
func (s Spring) Normalized() Spring {
	if s.Mass <= 0 {
		s.Mass = DefaultMass
	}
	if s.Stiffness <= 0 {
		s.Stiffness = DefaultStiffness
	}
	if s.RestDisplacement <= 0 {
		s.RestDisplacement = DefaultRestDisplacement
	}
	if s.RestSpeed <= 0 {
		s.RestSpeed = DefaultRestSpeed
	}
	return s
}

// Oscillator converts the physical parameters into the angular frequency
// and damping ratio of the equivalent normalized oscillator.
func (s Spring) Oscillator() (angularFrequency, dampingRatio float64) {
	s = s.Normalized()
	angularFrequency = math.Sqrt(s.Stiffness / s.Mass)
	dampingRatio = s.Damping / (2 * math.Sqrt(s.Stiffness*s.Mass))
	return angularFrequency, dampingRatio
}

// To returns an Animation that drives a value toward target.
func (s Spring) To(target float64) Animation {
	s = s.Normalized()
	freq, ratio := s.Oscillator()
	return &springAnimation{
		Spring: s,
		target: target,
		freq:   freq,
		ratio:  ratio,
	}
}

type springAnimation struct {
	Spring
	target      float64
	freq, ratio float64
}

func (a *springAnimation) Step(pos, vel float64, dt time.Duration) (float64, float64, bool) {
	if dt > 0 {
		pos, vel = harmonica.NewSpring(dt.Seconds(), a.freq, a.ratio).Update(pos, vel, a.target)
	}
	if math.Abs(pos-a.target) < a.RestDisplacement && math.Abs(vel) < a.RestSpeed {
		return a.target, 0, true
	}
	return pos, vel, false
}
