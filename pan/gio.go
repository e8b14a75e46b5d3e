package pan

import (
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
)

// Default gesture policy.
const (
	DefaultDeadband = unit.Dp(10)
	DefaultVeto     = unit.Dp(5)
)

// Pan receives pointer input for a horizontal pan gesture. Once the pan is
// active it grabs the pointer, cancelling the gestures of any enclosing
// scrollable.
type Pan struct {
	// Deadband is the horizontal travel required to activate. Zero means
	// DefaultDeadband.
	Deadband unit.Dp
	// Veto is the vertical travel that fails the pan. Zero means
	// DefaultVeto.
	Veto unit.Dp

	Recognizer
}

// Add registers the pan's input handler for the current clip area.
func (p *Pan) Add(ops *op.Ops) {
	pointer.InputOp{
		Tag:   p,
		Grab:  p.Active(),
		Types: pointer.Press | pointer.Drag | pointer.Release | pointer.Cancel,
	}.Add(ops)
}

// Events processes the pointer events queued for the pan.
func (p *Pan) Events(gtx layout.Context) []Event {
	if gtx.Queue == nil {
		return nil
	}
	p.configure(gtx.Metric)
	var out []Event
	for _, e := range gtx.Queue.Events(p) {
		pe, ok := e.(pointer.Event)
		if !ok {
			continue
		}
		if ev, ok := p.Feed(pe); ok {
			out = append(out, ev)
		}
	}
	return out
}

func (p *Pan) configure(m unit.Metric) {
	deadband, veto := p.Deadband, p.Veto
	if deadband <= 0 {
		deadband = DefaultDeadband
	}
	if veto <= 0 {
		veto = DefaultVeto
	}
	p.Recognizer.Deadband = float32(m.Dp(deadband))
	p.Recognizer.Veto = float32(m.Dp(veto))
}
