package material

import (
	"image"
	"image/color"
	"math"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"github.com/lucasb-eyer/go-colorful"

	"git.sr.ht/~gioverse/swipeable/debug"
	"git.sr.ht/~gioverse/swipeable/engage"
	swipelayout "git.sr.ht/~gioverse/swipeable/layout"
	swipewidget "git.sr.ht/~gioverse/swipeable/widget"
)

// ActionItemStyle configures the surface every action is drawn on.
type ActionItemStyle struct {
	// Surface fills an action beneath its Render widget.
	Surface color.NRGBA
	// Engaged fills the engaged reveal of actions without a Color.
	Engaged      color.NRGBA
	CornerRadius unit.Dp
	// Divider separates an action from the one before it.
	Divider      color.NRGBA
	DividerInset unit.Dp
	DividerWidth unit.Dp
	Debug        bool
}

// ActionItem returns the default action surface for the theme.
func ActionItem(th *material.Theme) ActionItemStyle {
	return ActionItemStyle{
		Surface:      th.Bg,
		Engaged:      Shade(th.ContrastBg, 0.2),
		CornerRadius: DefaultCornerRadius,
		Divider:      DefaultDividerColor,
		DividerInset: DefaultDividerInset,
		DividerWidth: unit.Dp(1),
	}
}

// Layout the action at its current position within a row whose size is
// given by the exact constraints.
func (a ActionItemStyle) Layout(gtx C, it *swipewidget.ActionItem) D {
	return a.layout(gtx, it, 1)
}

// palette holds the colors of one action scaled to the opacity of its side.
type palette struct {
	surface, engaged, divider color.NRGBA
}

func (a ActionItemStyle) palette(it *swipewidget.ActionItem, alpha float64) palette {
	engaged := it.Color
	if engaged == (color.NRGBA{}) {
		engaged = a.Engaged
	}
	divider := a.Divider
	if it.Order() == 0 {
		divider = color.NRGBA{}
	}
	return palette{
		surface: mulAlpha(a.Surface, alpha),
		engaged: mulAlpha(engaged, alpha),
		divider: mulAlpha(divider, alpha*math.Min(it.Metrics().Divider, 1)),
	}
}

func (a ActionItemStyle) layout(gtx C, it *swipewidget.ActionItem, alpha float64) D {
	row := gtx.Constraints.Max
	x := int(math.Round(it.X(float64(row.X))))
	size := image.Pt(int(math.Round(it.Width())), row.Y)
	defer op.Offset(image.Pt(x, 0)).Push(gtx.Ops).Pop()
	gtx.Constraints = layout.Exact(size)
	p := a.palette(it, alpha)

	dims := swipelayout.Rounded(a.CornerRadius).Layout(gtx, func(gtx C) D {
		return material.Clickable(gtx, &it.Clickable, func(gtx C) D {
			gtx.Constraints = layout.Exact(size)
			paint.FillShape(gtx.Ops, p.surface, clip.Rect{Max: size}.Op())
			if it.Render != nil {
				it.Render(gtx)
			}
			a.layoutEngaged(gtx, it, p.engaged)
			a.layoutDivider(gtx, it, p.divider)
			return D{Size: size}
		})
	})
	if a.Debug {
		debug.Outline(gtx, color.NRGBA{R: 255, A: 255}, func(gtx C) D {
			return D{Size: size}
		})
	}
	return dims
}

// layoutEngaged reveals RenderEngaged through a circle growing from the
// center of the action.
func (a ActionItemStyle) layoutEngaged(gtx C, it *swipewidget.ActionItem, fill color.NRGBA) {
	d := int(math.Round(it.Circle()))
	if it.RenderEngaged == nil || d <= 0 {
		return
	}
	size := gtx.Constraints.Max
	center := size.Div(2)
	half := image.Pt(d/2, d/2)
	defer clip.Ellipse(image.Rectangle{Min: center.Sub(half), Max: center.Add(half)}).Push(gtx.Ops).Pop()
	paint.Fill(gtx.Ops, fill)
	it.RenderEngaged(gtx)
}

// layoutDivider draws a vertical line on the edge shared with the
// previous action.
func (a ActionItemStyle) layoutDivider(gtx C, it *swipewidget.ActionItem, c color.NRGBA) {
	if c.A == 0 {
		return
	}
	size := gtx.Constraints.Max
	inset := gtx.Dp(a.DividerInset)
	w := gtx.Dp(a.DividerWidth)
	line := image.Rect(0, inset, w, size.Y-inset)
	if it.Position() == engage.Right {
		line = line.Add(image.Pt(size.X-w, 0))
	}
	if line.Empty() {
		return
	}
	paint.FillShape(gtx.Ops, c, clip.Rect(line).Op())
}

// mulAlpha scales the alpha of c by alpha in [0, 1].
func mulAlpha(c color.NRGBA, alpha float64) color.NRGBA {
	c.A = uint8(math.Round(float64(c.A) * math.Max(0, math.Min(alpha, 1))))
	return c
}

// ActionStyle lays out the face of an action: an optional icon above an
// optional label, centered within the padding.
type ActionStyle struct {
	Icon      *widget.Icon
	IconColor color.NRGBA
	IconSize  unit.Dp
	Label     material.LabelStyle
	Padding   layout.Inset
	// Background fills the whole action before its face.
	Background color.NRGBA
}

// Action creates an ActionStyle with the given label and icon. Either may
// be empty.
func Action(th *material.Theme, icon *widget.Icon, label string) ActionStyle {
	l := material.Body2(th, label)
	l.Alignment = text.Middle
	return ActionStyle{
		Icon:      icon,
		IconColor: th.Fg,
		IconSize:  unit.Dp(24),
		Label:     l,
		Padding:   layout.UniformInset(unit.Dp(24)),
	}
}

// Layout the action face.
func (s ActionStyle) Layout(gtx C) D {
	if s.Background != (color.NRGBA{}) {
		paint.FillShape(gtx.Ops, s.Background, clip.Rect{Max: gtx.Constraints.Max}.Op())
	}
	return s.Padding.Layout(gtx, func(gtx C) D {
		return layout.Center.Layout(gtx, func(gtx C) D {
			return layout.Flex{
				Axis:      layout.Vertical,
				Alignment: layout.Middle,
			}.Layout(gtx,
				layout.Rigid(func(gtx C) D {
					if s.Icon == nil {
						return D{}
					}
					side := gtx.Dp(s.IconSize)
					gtx.Constraints = layout.Exact(image.Pt(side, side))
					return s.Icon.Layout(gtx, s.IconColor)
				}),
				layout.Rigid(func(gtx C) D {
					if s.Label.Text == "" {
						return D{}
					}
					return s.Label.Layout(gtx)
				}),
			)
		})
	})
}

// Shade darkens c by amount in the perceptual Lab space, keeping its alpha.
func Shade(c color.NRGBA, amount float64) color.NRGBA {
	base := colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
	r, g, b := base.BlendLab(colorful.Color{}, amount).Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: c.A}
}
