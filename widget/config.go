package widget

import (
	"errors"
	"fmt"
	"time"

	"gioui.org/unit"

	"git.sr.ht/~gioverse/swipeable/motion"
	"git.sr.ht/~gioverse/swipeable/pan"
	"git.sr.ht/~gioverse/swipeable/snap"
)

// Config holds the tunable policy of a swipeable row.
type Config struct {
	// ActivationDeadband is the horizontal travel before a drag is captured.
	ActivationDeadband unit.Dp
	// VerticalVeto is the vertical travel that rejects a drag.
	VerticalVeto unit.Dp
	// EngageThreshold is how far past the fully revealed actions the first
	// action engages. Zero means one action size.
	EngageThreshold unit.Dp
	// WillEngageTolerance is how far before the threshold the first action
	// starts easing toward its engaged extent.
	WillEngageTolerance unit.Dp
	// FastDragMargin is how far past the threshold the engaged action stops
	// easing and tracks the finger directly.
	FastDragMargin unit.Dp
	// VelocityProjection is how far ahead, in seconds, the release velocity
	// is projected when choosing a snap point.
	VelocityProjection float64
	// ReleaseSpring animates the row after a drag.
	ReleaseSpring motion.Spring
	// CloseSpring animates the row after Close.
	CloseSpring motion.Spring
	// ItemSpring eases the extent of an action about to engage.
	ItemSpring motion.Spring
	// CircleSpring grows the engaged reveal.
	CircleSpring motion.Spring
	// FadeIn is how long an action group takes to fade in once revealed.
	FadeIn time.Duration
}

// DefaultConfig returns the standard swipe policy.
func DefaultConfig() Config {
	return Config{
		ActivationDeadband:  pan.DefaultDeadband,
		VerticalVeto:        pan.DefaultVeto,
		WillEngageTolerance: 50,
		FastDragMargin:      25,
		VelocityProjection:  snap.DefaultProjection,
		ReleaseSpring:       motion.Spring{Damping: 15, Mass: 0.25},
		CloseSpring:         motion.Spring{Damping: 15, Mass: 0.5},
		ItemSpring:          motion.Spring{Damping: 10, Mass: 0.1},
		CircleSpring:        motion.Spring{Damping: 25, Mass: 1},
		FadeIn:              80 * time.Millisecond,
	}
}

// ErrInvalidConfig is wrapped by every error returned from Validate.
var ErrInvalidConfig = errors.New("invalid swipe config")

// Validate reports the first field that cannot be used.
func (c Config) Validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"activation deadband", float64(c.ActivationDeadband)},
		{"vertical veto", float64(c.VerticalVeto)},
		{"engage threshold", float64(c.EngageThreshold)},
		{"will-engage tolerance", float64(c.WillEngageTolerance)},
		{"fast drag margin", float64(c.FastDragMargin)},
		{"velocity projection", c.VelocityProjection},
		{"fade in", float64(c.FadeIn)},
	} {
		if f.v < 0 {
			return fmt.Errorf("%w: %s must not be negative, got %v", ErrInvalidConfig, f.name, f.v)
		}
	}
	for _, s := range []struct {
		name string
		s    motion.Spring
	}{
		{"release spring", c.ReleaseSpring},
		{"close spring", c.CloseSpring},
		{"item spring", c.ItemSpring},
		{"circle spring", c.CircleSpring},
	} {
		if s.s.Damping <= 0 {
			return fmt.Errorf("%w: %s needs positive damping, got %v", ErrInvalidConfig, s.name, s.s.Damping)
		}
		if s.s.Mass < 0 || s.s.Stiffness < 0 {
			return fmt.Errorf("%w: %s has negative mass or stiffness", ErrInvalidConfig, s.name)
		}
	}
	return nil
}
