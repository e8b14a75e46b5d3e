// Package swipeable presents lists of rows that reveal actions when dragged
// horizontally.
package swipeable

import (
	"gioui.org/layout"

	"git.sr.ht/~gioverse/swipeable/widget"
)

// RowID uniquely identifies a row of content.
type RowID string

// NoID is a special ID that can be used by Rows that do not require
// a unique identifier. Only stateless rows, such as headers, may go
// without one; they are never swipeable.
const NoID = RowID("")

// Row is a type that can be presented by a RowManager.
type Row interface {
	// ID returns a unique identifier for the Row, if it has one.
	// In order to be swipeable, a Row _must_ return a unique ID.
	ID() RowID
}

// Presenter is a function that can transform the data for a Row
// into a widget to be laid out in the user interface. The state is nil
// for rows without an ID.
type Presenter func(current Row, state *widget.Swipeable) layout.Widget

// Allocator is a function that creates the swipe state of a Row. It
// decides which actions the row offers.
type Allocator func(current Row) *widget.Swipeable

// RowManager presents heterogenous Row data, keeping the swipe state of
// each row across frames and across changes to the Rows slice.
type RowManager struct {
	// Rows is the list of data to present.
	Rows []Row
	// Exclusive closes an open row as soon as another starts being dragged.
	Exclusive bool
	// presenter is a function that can transform a single Row into
	// a presentable widget.
	presenter Presenter
	// allocator is a function that can instantiate the state for a particular
	// Row.
	allocator Allocator
	// rowState is a map storing the state for the Rows managed
	// by the manager.
	rowState map[RowID]*widget.Swipeable
	// active is the row most recently dragged.
	active RowID
}

// NewManager constructs a manager with the given allocator and presenter.
func NewManager(allocator Allocator, presenter Presenter) *RowManager {
	return &RowManager{
		presenter: presenter,
		allocator: allocator,
		rowState:  make(map[RowID]*widget.Swipeable),
	}
}

// Layout the Row at position index within the manager's Row list.
func (m *RowManager) Layout(gtx layout.Context, index int) layout.Dimensions {
	data := m.Rows[index]
	id := data.ID()
	state := m.State(id)
	if state == nil && id != NoID {
		state = m.allocator(data)
		m.rowState[id] = state
	}
	dims := m.presenter(data, state)(gtx)
	if state != nil && state.Dragging() && id != m.active {
		if m.Exclusive {
			if prev := m.State(m.active); prev != nil {
				prev.Close()
			}
		}
		m.active = id
	}
	return dims
}

// Len returns the number of rows managed by this manager.
func (m *RowManager) Len() int {
	return len(m.Rows)
}

// State returns the swipe state of the row with the given ID, or nil if it
// has not been laid out yet.
func (m *RowManager) State(id RowID) *widget.Swipeable {
	if id == NoID {
		return nil
	}
	return m.rowState[id]
}

// Remove deletes the row with the given ID together with its state. It
// reports whether the row was present.
func (m *RowManager) Remove(id RowID) bool {
	delete(m.rowState, id)
	if m.active == id {
		m.active = NoID
	}
	for i, r := range m.Rows {
		if r.ID() == id {
			m.Rows = append(m.Rows[:i], m.Rows[i+1:]...)
			return true
		}
	}
	return false
}

// CloseAll animates every open row shut.
func (m *RowManager) CloseAll() {
	for _, s := range m.rowState {
		if s.Open() || s.Offset() != 0 {
			s.Close()
		}
	}
}
