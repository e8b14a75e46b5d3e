package material

import (
	"image"
	"image/color"
	"math"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"git.sr.ht/~gioverse/swipeable/engage"
	swipelayout "git.sr.ht/~gioverse/swipeable/layout"
	swipewidget "git.sr.ht/~gioverse/swipeable/widget"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

// Default dimensions and colors of action surfaces.
var (
	DefaultActionSize   = unit.Dp(80)
	DefaultCornerRadius = unit.Dp(4)
	DefaultDividerInset = unit.Dp(24)
	DefaultDividerColor = color.NRGBA{R: 48, G: 55, B: 66, A: 26}
)

// SwipeableStyle configures the presentation of a row that reveals actions
// when dragged horizontally.
type SwipeableStyle struct {
	State *swipewidget.Swipeable
	// Background fills the row content so that it hides the actions beneath.
	Background color.NRGBA
	// Actions configures every revealed action.
	Actions ActionItemStyle
	// Debug outlines each action.
	Debug bool
}

// Swipeable creates a style for the given row state using the theme colors.
func Swipeable(th *material.Theme, state *swipewidget.Swipeable) SwipeableStyle {
	return SwipeableStyle{
		State:      state,
		Background: th.Bg,
		Actions:    ActionItem(th),
	}
}

// Layout the row content over its actions. The content is given the full
// width of the row.
func (s SwipeableStyle) Layout(gtx C, content layout.Widget) D {
	s.State.Update(gtx)

	gtx.Constraints.Min.X = gtx.Constraints.Max.X
	macro := op.Record(gtx.Ops)
	dims := swipelayout.Background(s.Background).Layout(gtx, content)
	call := macro.Stop()

	defer clip.Rect{Max: dims.Size}.Push(gtx.Ops).Pop()
	s.State.AddInput(gtx.Ops)

	actions := gtx
	actions.Constraints = layout.Exact(dims.Size)
	item := s.Actions
	item.Debug = item.Debug || s.Debug
	for _, pos := range []engage.Position{engage.Left, engage.Right} {
		ActionsStyle{State: s.State, Position: pos, Item: item}.Layout(actions)
	}

	x := int(math.Round(s.State.Offset()))
	off := op.Offset(image.Pt(x, 0)).Push(gtx.Ops)
	call.Add(gtx.Ops)
	off.Pop()
	return dims
}

// ActionsStyle lays out the action group of one side of a row beneath its
// content. Nothing, input included, is laid out while the side is hidden.
type ActionsStyle struct {
	State    *swipewidget.Swipeable
	Position engage.Position
	Item     ActionItemStyle
}

// Layout the action group within a row whose size is given by the exact
// constraints. The outermost action is painted last so that it covers the
// others as it grows. The surfaces fade in with the side.
func (a ActionsStyle) Layout(gtx C) D {
	if !a.State.Visible(a.Position) {
		return D{}
	}
	alpha := a.State.Opacity(a.Position)
	items := append([]*swipewidget.ActionItem(nil), a.State.Items(a.Position)...)
	for _, it := range swipelayout.Reverse(true, items...) {
		a.Item.layout(gtx, it, alpha)
	}
	return D{Size: gtx.Constraints.Max}
}
