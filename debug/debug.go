/*
Package debug provides tools for debugging Gio layout code.
*/
package debug

import (
	"image/color"

	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

// Outline traces a thin outline of the given color around the provided
// widget. A zero color draws black.
func Outline(gtx C, c color.NRGBA, w func(gtx C) D) D {
	if c == (color.NRGBA{}) {
		c = color.NRGBA{A: 255}
	}
	return widget.Border{
		Color: c,
		Width: unit.Dp(1),
	}.Layout(gtx, w)
}
