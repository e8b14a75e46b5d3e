// Package layout provides small layout helpers shared by swipeable rows and
// the lists that hold them.
package layout

import "gioui.org/layout"

type (
	C = layout.Context
	D = layout.Dimensions
)
