package main

import (
	"image"
	"image/color"
	"log"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"git.sr.ht/~gioverse/swipeable"
	"git.sr.ht/~gioverse/swipeable/config"
	swipelayout "git.sr.ht/~gioverse/swipeable/layout"
	swipewidget "git.sr.ht/~gioverse/swipeable/widget"
	matswipe "git.sr.ht/~gioverse/swipeable/widget/material"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

// UI manages the state for the entire application's UI.
type UI struct {
	Config   config.Config
	Messages *Messages
	Theme    *Theme
	// Rows holds the header followed by every to-do, together with the
	// swipe state of each.
	Rows *swipeable.RowManager
	// List is the scroll state of the rows.
	List widget.List
	// Archived counts to-dos removed through the archive action.
	Archived int

	logo Logo
	// pending holds rows removed by actions, dropped before the next frame
	// so that the list is never mutated while laid out.
	pending []swipeable.RowID
}

// NewUI constructs a UI listing todos.
func NewUI(cfg config.Config, msgs *Messages, todos []*Todo) *UI {
	ui := &UI{
		Config:   cfg,
		Messages: msgs,
		Theme:    NewTheme(),
	}
	ui.List.Axis = layout.Vertical
	ui.Rows = swipeable.NewManager(ui.allocate, ui.present)
	ui.Rows.Exclusive = true
	ui.Rows.Rows = append(ui.Rows.Rows, Header{})
	for _, t := range todos {
		ui.Rows.Rows = append(ui.Rows.Rows, t)
	}
	return ui
}

// Layout the UI.
func (ui *UI) Layout(gtx C) D {
	for _, id := range ui.pending {
		ui.Rows.Remove(id)
	}
	ui.pending = ui.pending[:0]
	paint.Fill(gtx.Ops, ui.Theme.Bg)
	dims := material.List(ui.Theme.Theme, &ui.List).Layout(gtx, ui.Rows.Len(), ui.Rows.Layout)
	if len(ui.pending) > 0 {
		op.InvalidateOp{}.Add(gtx.Ops)
	}
	return dims
}

// Remaining is the number of to-dos in the list.
func (ui *UI) Remaining() int {
	return ui.Rows.Len() - 1
}

// allocate creates the swipe state of a to-do, with the same actions on
// both sides.
func (ui *UI) allocate(r swipeable.Row) *swipewidget.Swipeable {
	id := r.ID()
	s := swipewidget.NewSwipeable(ui.Config.Swipe.Unit(), ui.actions(id), ui.actions(id))
	s.Config = ui.Config.Swipe.Widget()
	return s
}

func (ui *UI) actions(id swipeable.RowID) []swipewidget.Action {
	th := ui.Theme
	face := func(icon *widget.Icon, label string, c color.NRGBA) matswipe.ActionStyle {
		a := matswipe.Action(th.Theme, icon, label)
		a.IconColor = c
		a.Label.Color = c
		a.IconSize = unit.Dp(32)
		return a
	}
	deleteFace := face(DeleteIcon, "", th.Danger)
	engagedFace := face(DeleteIcon, "", th.White)
	archiveFace := face(ArchiveIcon, "", th.Success)
	return []swipewidget.Action{
		{
			Key:           "delete",
			Color:         th.Danger,
			Render:        deleteFace.Layout,
			RenderEngaged: engagedFace.Layout,
			OnTrigger:     func() { ui.trigger("delete", id) },
		},
		{
			Key:       "archive",
			Render:    archiveFace.Layout,
			OnTrigger: func() { ui.trigger("archive", id) },
		},
	}
}

// trigger removes the row once the current frame is done.
func (ui *UI) trigger(action string, id swipeable.RowID) {
	log.Printf("%s %s", action, id)
	if action == "archive" {
		ui.Archived++
	}
	ui.pending = append(ui.pending, id)
}

func (ui *UI) present(r swipeable.Row, state *swipewidget.Swipeable) layout.Widget {
	switch r := r.(type) {
	case Header:
		return ui.layoutHeader
	case *Todo:
		return func(gtx C) D {
			style := matswipe.Swipeable(ui.Theme.Theme, state)
			style.Debug = ui.Config.Debug
			return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
				layout.Rigid(func(gtx C) D {
					return style.Layout(gtx, func(gtx C) D {
						return ui.layoutTodo(gtx, r)
					})
				}),
				layout.Rigid(ui.layoutDivider),
			)
		}
	}
	return func(C) D { return D{} }
}

func (ui *UI) layoutHeader(gtx C) D {
	th := ui.Theme
	subtitle := ui.Messages.Remaining(ui.Remaining())
	if ui.Remaining() == 0 {
		subtitle = ui.Messages.Empty()
	}
	return layout.Inset{
		Top:    unit.Dp(32),
		Bottom: unit.Dp(16),
		Left:   unit.Dp(24),
		Right:  unit.Dp(24),
	}.Layout(gtx, func(gtx C) D {
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			layout.Rigid(func(gtx C) D {
				return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
					layout.Rigid(ui.layoutLogo),
					layout.Rigid(layout.Spacer{Width: unit.Dp(12)}.Layout),
					layout.Rigid(material.H4(th.Theme, ui.Messages.Title()).Layout),
				)
			}),
			layout.Rigid(func(gtx C) D {
				l := material.Body2(th.Theme, subtitle)
				l.Color = th.Muted
				return l.Layout(gtx)
			}),
		)
	})
}

func (ui *UI) layoutLogo(gtx C) D {
	side := gtx.Dp(unit.Dp(32))
	size := image.Pt(side, side)
	img, ok := ui.logo.Op(side)
	if !ok {
		return D{Size: size}
	}
	defer clip.Rect{Max: size}.Push(gtx.Ops).Pop()
	img.Add(gtx.Ops)
	paint.PaintOp{}.Add(gtx.Ops)
	return D{Size: size}
}

func (ui *UI) layoutTodo(gtx C, t *Todo) D {
	th := ui.Theme
	if t.Share.Clicked() {
		log.Printf("share %q", t.Title)
	}
	return swipelayout.Margin().Layout(gtx, func(gtx C) D {
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			layout.Rigid(func(gtx C) D {
				return layout.Flex{
					Alignment: layout.Baseline,
					Spacing:   layout.SpaceBetween,
				}.Layout(gtx,
					layout.Flexed(1, func(gtx C) D {
						l := material.Subtitle1(th.Theme, t.Title)
						l.Font.Weight = text.Bold
						return l.Layout(gtx)
					}),
					layout.Rigid(func(gtx C) D {
						l := material.Caption(th.Theme, ui.Messages.JustNow())
						l.Color = th.Muted
						return l.Layout(gtx)
					}),
				)
			}),
			layout.Rigid(func(gtx C) D {
				if t.Description == "" {
					return D{}
				}
				return layout.Inset{Top: unit.Dp(4)}.Layout(gtx, func(gtx C) D {
					l := material.Body2(th.Theme, t.Description)
					l.Color = th.Muted
					return l.Layout(gtx)
				})
			}),
			layout.Rigid(func(gtx C) D {
				return layout.Inset{Top: unit.Dp(12)}.Layout(gtx, func(gtx C) D {
					return material.Clickable(gtx, &t.Share, func(gtx C) D {
						l := material.Body2(th.Theme, ui.Messages.Share())
						l.Color = th.Success
						l.Font.Weight = text.Bold
						return l.Layout(gtx)
					})
				})
			}),
		)
	})
}

func (ui *UI) layoutDivider(gtx C) D {
	size := image.Pt(gtx.Constraints.Max.X, gtx.Dp(unit.Dp(1)))
	paint.FillShape(gtx.Ops, matswipe.DefaultDividerColor, clip.Rect{Max: size}.Op())
	return D{Size: size}
}
