package layout

import (
	"gioui.org/layout"
	"gioui.org/unit"
)

// MarginStyle insets a list row horizontally and vertically. Wrapping every
// row of a list in the same MarginStyle keeps them evenly spaced.
type MarginStyle struct {
	Vertical   unit.Dp
	Horizontal unit.Dp
}

// Margin configures a margin with sensible list defaults.
func Margin() MarginStyle {
	return MarginStyle{
		Vertical:   unit.Dp(16),
		Horizontal: unit.Dp(24),
	}
}

// Layout the provided widget within the margin and return their combined
// dimensions.
func (m MarginStyle) Layout(gtx C, w layout.Widget) D {
	return layout.Inset{
		Top:    m.Vertical,
		Bottom: m.Vertical,
		Left:   m.Horizontal,
		Right:  m.Horizontal,
	}.Layout(gtx, w)
}
