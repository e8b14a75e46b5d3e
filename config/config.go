// Package config loads the settings of a swipeable list application from
// TOML.
//
// A complete file looks like:
//
//	locale = "en"
//	profile = "none"
//	debug = false
//
//	[swipe]
//	action_size = 80
//	activation_deadband = 10
//	vertical_veto = 5
//	engage_threshold = 0
//	will_engage_tolerance = 50
//	fast_drag_margin = 25
//	velocity_projection = 0.2
//	fade_in = "80ms"
//
//	[swipe.release_spring]
//	damping = 15
//	mass = 0.25
//	stiffness = 100
//
// Keys missing from the file keep their defaults. Distances are in dp.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gioui.org/unit"
	"github.com/BurntSushi/toml"

	"git.sr.ht/~gioverse/swipeable/motion"
	"git.sr.ht/~gioverse/swipeable/profile"
	"git.sr.ht/~gioverse/swipeable/widget"
)

// Config is the top level of a settings file.
type Config struct {
	// Locale is the BCP 47 tag of the user interface language.
	Locale  string       `toml:"locale"`
	Profile profile.Mode `toml:"profile"`
	Debug   bool         `toml:"debug"`
	Swipe   Swipe        `toml:"swipe"`
}

// Swipe holds the tunables of every row.
type Swipe struct {
	ActionSize          float32  `toml:"action_size"`
	ActivationDeadband  float32  `toml:"activation_deadband"`
	VerticalVeto        float32  `toml:"vertical_veto"`
	EngageThreshold     float32  `toml:"engage_threshold"`
	WillEngageTolerance float32  `toml:"will_engage_tolerance"`
	FastDragMargin      float32  `toml:"fast_drag_margin"`
	VelocityProjection  float64  `toml:"velocity_projection"`
	FadeIn              Duration `toml:"fade_in"`
	ReleaseSpring       Spring   `toml:"release_spring"`
	CloseSpring         Spring   `toml:"close_spring"`
	ItemSpring          Spring   `toml:"item_spring"`
	CircleSpring        Spring   `toml:"circle_spring"`
}

// Spring mirrors motion.Spring.
type Spring struct {
	Damping   float64 `toml:"damping"`
	Mass      float64 `toml:"mass"`
	Stiffness float64 `toml:"stiffness"`
}

// Duration is a time.Duration written as a string such as "80ms".
type Duration time.Duration

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Default returns the settings used when no file is given.
func Default() Config {
	w := widget.DefaultConfig()
	return Config{
		Locale:  "en",
		Profile: profile.None,
		Swipe: Swipe{
			ActionSize:          80,
			ActivationDeadband:  float32(w.ActivationDeadband),
			VerticalVeto:        float32(w.VerticalVeto),
			EngageThreshold:     float32(w.EngageThreshold),
			WillEngageTolerance: float32(w.WillEngageTolerance),
			FastDragMargin:      float32(w.FastDragMargin),
			VelocityProjection:  w.VelocityProjection,
			FadeIn:              Duration(w.FadeIn),
			ReleaseSpring:       fromMotion(w.ReleaseSpring),
			CloseSpring:         fromMotion(w.CloseSpring),
			ItemSpring:          fromMotion(w.ItemSpring),
			CircleSpring:        fromMotion(w.CircleSpring),
		},
	}
}

// Load reads the file at path over the defaults. An empty path yields the
// defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("opening config: %w", err)
	}
	defer f.Close()
	cfg, err := Decode(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode reads TOML settings from r over the defaults and validates them.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("decoding config: unknown key %q", undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Encode writes cfg as TOML.
func Encode(w io.Writer, cfg Config) error {
	return toml.NewEncoder(w).Encode(cfg)
}

// ErrActionSize is returned for a non-positive action size.
var ErrActionSize = errors.New("action size must be positive")

// Validate checks every setting.
func (c Config) Validate() error {
	if c.Swipe.ActionSize <= 0 {
		return fmt.Errorf("%w, got %v", ErrActionSize, c.Swipe.ActionSize)
	}
	if _, err := profile.ParseMode(string(c.Profile)); err != nil {
		return err
	}
	return c.Swipe.Widget().Validate()
}

// Widget converts the swipe settings into a row policy.
func (s Swipe) Widget() widget.Config {
	return widget.Config{
		ActivationDeadband:  unit.Dp(s.ActivationDeadband),
		VerticalVeto:        unit.Dp(s.VerticalVeto),
		EngageThreshold:     unit.Dp(s.EngageThreshold),
		WillEngageTolerance: unit.Dp(s.WillEngageTolerance),
		FastDragMargin:      unit.Dp(s.FastDragMargin),
		VelocityProjection:  s.VelocityProjection,
		FadeIn:              time.Duration(s.FadeIn),
		ReleaseSpring:       s.ReleaseSpring.motion(),
		CloseSpring:         s.CloseSpring.motion(),
		ItemSpring:          s.ItemSpring.motion(),
		CircleSpring:        s.CircleSpring.motion(),
	}
}

// Unit is the resting size of each action.
func (s Swipe) Unit() unit.Dp {
	return unit.Dp(s.ActionSize)
}

func (s Spring) motion() motion.Spring {
	return motion.Spring{Damping: s.Damping, Mass: s.Mass, Stiffness: s.Stiffness}
}

func fromMotion(s motion.Spring) Spring {
	s = s.Normalized()
	return Spring{Damping: s.Damping, Mass: s.Mass, Stiffness: s.Stiffness}
}
