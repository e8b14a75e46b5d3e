package material

import (
	"image"
	"image/color"
	"testing"
	"time"

	"gioui.org/font/gofont"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"git.sr.ht/~gioverse/swipeable/engage"
	swipewidget "git.sr.ht/~gioverse/swipeable/widget"
)

func TestSwipeableLayout(t *testing.T) {
	th := material.NewTheme(gofont.Collection())
	state := swipewidget.NewSwipeable(DefaultActionSize,
		[]swipewidget.Action{{Key: "pin", Render: Action(th, nil, "Pin").Layout}},
		[]swipewidget.Action{
			{
				Key:           "delete",
				Color:         color.NRGBA{R: 230, G: 23, B: 30, A: 255},
				Render:        Action(th, nil, "Delete").Layout,
				RenderEngaged: Action(th, nil, "Delete").Layout,
			},
			{Key: "archive", Render: Action(th, nil, "Archive").Layout},
		},
	)
	style := Swipeable(th, state)
	style.Debug = true

	var ops op.Ops
	now := time.Unix(0, 0)
	frame := func() layout.Dimensions {
		gtx := layout.NewContext(&ops, system.FrameEvent{
			Now:    now,
			Metric: unit.Metric{PxPerDp: 1, PxPerSp: 1},
			Size:   image.Pt(400, 600),
		})
		now = now.Add(time.Second / 60)
		gtx.Constraints.Min.Y = 0
		return style.Layout(gtx, func(gtx C) D {
			return material.Body1(th, "Buy milk").Layout(gtx)
		})
	}

	dims := frame()
	if dims.Size.X != 400 {
		t.Errorf("row should span the full width, got %v", dims.Size)
	}
	if dims.Size.Y == 0 || dims.Size.Y == 600 {
		t.Errorf("row should be as tall as its content, got %v", dims.Size)
	}

	state.DragStart()
	state.DragUpdate(-300)
	for i := 0; i < 30; i++ {
		frame()
	}
	if !state.Visible(engage.Right) {
		t.Errorf("expected revealed actions")
	}
	state.DragUpdate(20)
	for i := 0; i < 30; i++ {
		frame()
	}
	state.DragEnd(20, 0)
	for i := 0; i < 120; i++ {
		frame()
	}
	if state.Offset() != 0 {
		t.Errorf("expected row to close, offset %v", state.Offset())
	}
}

func TestShade(t *testing.T) {
	c := color.NRGBA{R: 200, G: 120, B: 40, A: 128}
	got := Shade(c, 0.5)
	if got.A != c.A {
		t.Errorf("alpha should be kept, got %d", got.A)
	}
	if got.R >= c.R || got.G >= c.G {
		t.Errorf("expected darker color than %v, got %v", c, got)
	}
}

func TestActionsFadeWithSide(t *testing.T) {
	th := material.NewTheme(gofont.Collection())
	state := swipewidget.NewSwipeable(DefaultActionSize, nil, []swipewidget.Action{
		{Key: "delete", Color: color.NRGBA{R: 230, G: 23, B: 30, A: 255}},
		{Key: "archive"},
	})
	state.Config.FadeIn = 100 * time.Millisecond
	item := ActionItem(th)
	item.Surface = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

	var ops op.Ops
	now := time.Unix(0, 0)
	frame := func() layout.Context {
		gtx := layout.NewContext(&ops, system.FrameEvent{
			Now:    now,
			Metric: unit.Metric{PxPerDp: 1, PxPerSp: 1},
			Size:   image.Pt(400, 80),
		})
		now = now.Add(time.Second / 60)
		state.Update(gtx)
		gtx.Constraints = layout.Exact(gtx.Constraints.Max)
		return gtx
	}

	right := ActionsStyle{State: state, Position: engage.Right, Item: item}
	gtx := frame()
	if dims := right.Layout(gtx); dims.Size != (image.Point{}) {
		t.Errorf("hidden side should lay out nothing, got %v", dims.Size)
	}

	state.DragStart()
	state.DragUpdate(-100)
	frame()
	gtx = frame()
	alpha := state.Opacity(engage.Right)
	if alpha <= 0 || alpha >= 1 {
		t.Fatalf("expected side mid fade, opacity %v", alpha)
	}
	if dims := right.Layout(gtx); dims.Size.X != 400 {
		t.Errorf("visible side should span the row, got %v", dims.Size)
	}
	if left := (ActionsStyle{State: state, Position: engage.Left, Item: item}).Layout(gtx); left.Size != (image.Point{}) {
		t.Errorf("left side should stay hidden, got %v", left.Size)
	}

	items := state.Items(engage.Right)
	p := item.palette(items[0], alpha)
	if p.surface.A == 0 || p.surface.A >= item.Surface.A {
		t.Errorf("fading surface should be translucent, alpha %d", p.surface.A)
	}
	if p.engaged.A >= items[0].Color.A {
		t.Errorf("fading engaged fill should be translucent, alpha %d", p.engaged.A)
	}
	if p.divider.A != 0 {
		t.Errorf("first action has no divider, alpha %d", p.divider.A)
	}
	if full := item.palette(items[0], 1); full.surface != item.Surface || full.engaged != items[0].Color {
		t.Errorf("opaque side should keep its colors, got %+v", full)
	}
}

func TestMulAlpha(t *testing.T) {
	for _, tc := range []struct {
		alpha float64
		want  uint8
	}{
		{alpha: 1, want: 200},
		{alpha: 0.5, want: 100},
		{alpha: 0, want: 0},
		{alpha: -1, want: 0},
		{alpha: 2, want: 200},
	} {
		c := mulAlpha(color.NRGBA{R: 10, G: 20, B: 30, A: 200}, tc.alpha)
		if c.A != tc.want || c.R != 10 || c.G != 20 || c.B != 30 {
			t.Errorf("alpha %v: expected A=%d, got %v", tc.alpha, tc.want, c)
		}
	}
}
