package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"git.sr.ht/~gioverse/swipeable/profile"
	"git.sr.ht/~gioverse/swipeable/widget"
)

func TestDefaultMatchesWidget(t *testing.T) {
	got := Default().Swipe.Widget()
	want := widget.DefaultConfig()
	if got.ActivationDeadband != want.ActivationDeadband ||
		got.VerticalVeto != want.VerticalVeto ||
		got.WillEngageTolerance != want.WillEngageTolerance ||
		got.FastDragMargin != want.FastDragMargin ||
		got.VelocityProjection != want.VelocityProjection ||
		got.FadeIn != want.FadeIn {
		t.Errorf("defaults diverge: got %+v, want %+v", got, want)
	}
	if got.ReleaseSpring.Damping != 15 || got.ReleaseSpring.Mass != 0.25 || got.ReleaseSpring.Stiffness != 100 {
		t.Errorf("unexpected release spring %+v", got.ReleaseSpring)
	}
	if err := Default().Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestDecode(t *testing.T) {
	for _, tc := range []struct {
		name    string
		in      string
		check   func(t *testing.T, c Config)
		wantErr bool
	}{
		{
			name: "empty keeps defaults",
			in:   "",
			check: func(t *testing.T, c Config) {
				if c.Swipe.ActionSize != 80 || c.Locale != "en" || c.Profile != profile.None {
					t.Errorf("unexpected defaults %+v", c)
				}
			},
		},
		{
			name: "partial override",
			in: `
locale = "de"
profile = "cpu"

[swipe]
action_size = 64
fade_in = "120ms"

[swipe.close_spring]
damping = 20
`,
			check: func(t *testing.T, c Config) {
				if c.Locale != "de" || c.Profile != profile.CPU {
					t.Errorf("top level not decoded: %+v", c)
				}
				if c.Swipe.Unit() != 64 {
					t.Errorf("expected action size 64, got %v", c.Swipe.ActionSize)
				}
				if time.Duration(c.Swipe.FadeIn) != 120*time.Millisecond {
					t.Errorf("expected fade in 120ms, got %v", time.Duration(c.Swipe.FadeIn))
				}
				if c.Swipe.CloseSpring.Damping != 20 || c.Swipe.CloseSpring.Mass != 0.5 {
					t.Errorf("spring override should keep unset fields, got %+v", c.Swipe.CloseSpring)
				}
			},
		},
		{name: "unknown key", in: "colour = \"red\"", wantErr: true},
		{name: "bad profile", in: `profile = "heap"`, wantErr: true},
		{name: "bad duration", in: "[swipe]\nfade_in = \"soon\"", wantErr: true},
		{name: "negative veto", in: "[swipe]\nvertical_veto = -1", wantErr: true},
		{name: "zero damping", in: "[swipe.item_spring]\ndamping = 0", wantErr: true},
		{name: "malformed", in: "[swipe", wantErr: true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			c, err := Decode(strings.NewReader(tc.in))
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %+v", c)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tc.check(t, c)
		})
	}
}

func TestValidateActionSize(t *testing.T) {
	c := Default()
	c.Swipe.ActionSize = 0
	if err := c.Validate(); !errors.Is(err, ErrActionSize) {
		t.Errorf("expected ErrActionSize, got %v", err)
	}
	c = Default()
	c.Swipe.EngageThreshold = -4
	if err := c.Validate(); !errors.Is(err, widget.ErrInvalidConfig) {
		t.Errorf("expected widget.ErrInvalidConfig, got %v", err)
	}
}

func TestLoad(t *testing.T) {
	c, err := Load("")
	if err != nil || c.Swipe.ActionSize != 80 {
		t.Fatalf("empty path should yield defaults, got %+v, %v", c, err)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}

	want := Default()
	want.Locale = "de"
	want.Debug = true
	want.Swipe.VelocityProjection = 0.3
	var buf bytes.Buffer
	if err := Encode(&buf, want); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "swipe.toml")
	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("loading written config: %v", err)
	}
	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}
