package widget

import (
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"

	"git.sr.ht/~gioverse/swipeable/engage"
	"git.sr.ht/~gioverse/swipeable/motion"
	"git.sr.ht/~gioverse/swipeable/pan"
	"git.sr.ht/~gioverse/swipeable/snap"
)

// Handle is the command surface a swipeable row exposes to its owner.
type Handle interface {
	// Close animates the row shut. It is safe to call at any time.
	Close()
}

// Swipeable holds the persistent state of a row that reveals actions when
// dragged horizontally. It owns the row's gesture offset; the action items
// only derive their layout from it.
type Swipeable struct {
	// Unit is the resting size of every action.
	Unit unit.Dp
	// Config is the swipe policy. It is read on every Update.
	Config Config

	left, right         []*ActionItem
	leftFlag, rightFlag Flag

	offset   motion.Value
	baseline float64
	dragging bool
	// delta is the translation of the drag in progress.
	delta float64

	pan    pan.Pan
	metric unit.Metric
	width  float64

	fade    [2]motion.Value
	visible [2]bool
}

// NewSwipeable creates the state for a row with the given actions on
// either side, each size wide at rest.
func NewSwipeable(size unit.Dp, left, right []Action) *Swipeable {
	s := &Swipeable{
		Unit:   size,
		Config: DefaultConfig(),
		metric: unit.Metric{PxPerDp: 1, PxPerSp: 1},
	}
	s.SetActions(left, right)
	s.offset.React(s.fanOut)
	return s
}

// SetActions replaces the actions of the row. Engagement is reset.
func (s *Swipeable) SetActions(left, right []Action) {
	s.leftFlag.set(false)
	s.rightFlag.set(false)
	s.left = s.items(left)
	s.right = s.items(right)
	s.configure(s.metric, 0)
}

func (s *Swipeable) items(actions []Action) []*ActionItem {
	items := make([]*ActionItem, len(actions))
	for i, a := range actions {
		items[i] = newActionItem(a, &s.Config)
	}
	return items
}

// configure converts the policy into pixels for the given metric and
// propagates it to the action items.
func (s *Swipeable) configure(m unit.Metric, width int) {
	if m.PxPerDp == 0 {
		m = unit.Metric{PxPerDp: 1, PxPerSp: 1}
	}
	s.metric = m
	if width > 0 {
		s.width = float64(width)
	}
	s.pan.Deadband = s.Config.ActivationDeadband
	s.pan.Veto = s.Config.VerticalVeto
	for _, side := range []struct {
		pos   engage.Position
		items []*ActionItem
	}{
		{engage.Left, s.left},
		{engage.Right, s.right},
	} {
		unitPx := s.px(s.Unit)
		total := engage.Side{Count: len(side.items), Unit: unitPx}.Total()
		for i, it := range side.items {
			it.configure(engage.Item{
				Position:   side.pos,
				Order:      i,
				Unit:       unitPx,
				Total:      total,
				CanEngage:  i == 0,
				Threshold:  s.px(s.Config.EngageThreshold),
				Tolerance:  s.px(s.Config.WillEngageTolerance),
				FastMargin: s.px(s.Config.FastDragMargin),
			})
			it.update(s.offset.Value())
		}
	}
	s.syncFlags()
}

func (s *Swipeable) px(v unit.Dp) float64 {
	return float64(v) * float64(s.metric.PxPerDp)
}

func (s *Swipeable) fanOut(offset float64) {
	for _, it := range s.left {
		it.update(offset)
	}
	for _, it := range s.right {
		it.update(offset)
	}
	s.syncFlags()
}

// syncFlags copies the engagement of each side's first action into the
// side's flag. Flags only follow the gesture: animations never arm a side.
func (s *Swipeable) syncFlags() {
	if !s.dragging {
		return
	}
	for _, side := range []struct {
		flag  *Flag
		items []*ActionItem
	}{
		{&s.leftFlag, s.left},
		{&s.rightFlag, s.right},
	} {
		engaged := len(side.items) > 0 && side.items[0].Engaged()
		if side.flag.Engaged() != engaged {
			side.flag.set(engaged)
		}
	}
}

// Extents returns the snapping geometry of the row in pixels.
func (s *Swipeable) Extents() snap.Extents {
	unitPx := s.px(s.Unit)
	return snap.Extents{
		Left:  engage.Side{Count: len(s.left), Unit: unitPx}.Total(),
		Right: engage.Side{Count: len(s.right), Unit: unitPx}.Total(),
		Width: s.width,
	}
}

// DragStart begins a drag. An animation in flight is interrupted where it
// is, and its completion is never reported.
func (s *Swipeable) DragStart() {
	if s.offset.Animating() {
		s.offset.Stop()
		s.baseline = s.offset.Value()
	}
	s.dragging = true
	s.delta = 0
	s.syncFlags()
}

// DragUpdate moves the row to its baseline plus delta, without revealing a
// side that has no actions.
func (s *Swipeable) DragUpdate(delta float64) {
	if !s.dragging {
		return
	}
	s.delta = delta
	s.offset.Set(s.Extents().Clamp(s.baseline + delta))
}

// DragEnd releases the row with the given final translation and velocity
// in pixels per second. The row springs to its snap point, or fully open
// behind an engaged action, whose OnTrigger runs once the row settles.
func (s *Swipeable) DragEnd(delta, velocity float64) {
	if !s.dragging {
		return
	}
	s.DragUpdate(delta)
	s.dragging = false

	e := s.Extents()
	req := snap.Request{
		Extents:      e,
		Baseline:     s.baseline,
		Delta:        delta,
		Velocity:     velocity,
		EngagedLeft:  s.leftFlag.Engaged(),
		EngagedRight: s.rightFlag.Engaged(),
		Projection:   s.Config.VelocityProjection,
	}
	target := snap.Resolve(req)

	var armed *ActionItem
	switch {
	case req.EngagedLeft && len(s.left) > 0:
		armed = s.left[0]
	case req.EngagedRight && len(s.right) > 0:
		armed = s.right[0]
	}
	s.offset.SpringTo(target, s.Config.ReleaseSpring, func() {
		if armed != nil && armed.OnTrigger != nil {
			armed.OnTrigger()
		}
	})
	s.baseline = target
}

// DragCancel handles the platform taking the pointer away mid-drag by
// releasing the row without velocity.
func (s *Swipeable) DragCancel() {
	s.DragEnd(s.delta, 0)
}

// Close resets engagement and animates the row shut. A drag in progress is
// abandoned: its remaining events are ignored.
func (s *Swipeable) Close() {
	s.dragging = false
	s.pan.Reset()
	s.baseline = 0
	s.leftFlag.set(false)
	s.rightFlag.set(false)
	if s.offset.Value() == 0 {
		s.offset.Stop()
		return
	}
	s.offset.SpringTo(0, s.Config.CloseSpring, nil)
}

// Handle returns the narrow command interface of the row.
func (s *Swipeable) Handle() Handle {
	return handle{s: s}
}

type handle struct {
	s *Swipeable
}

func (h handle) Close() {
	h.s.Close()
}

// Update processes input and advances animations for the current frame.
// The row width is taken from the maximum constraint.
func (s *Swipeable) Update(gtx layout.Context) {
	s.configure(gtx.Metric, gtx.Constraints.Max.X)
	for _, e := range s.pan.Events(gtx) {
		switch e.Kind {
		case pan.Start:
			s.DragStart()
			s.DragUpdate(float64(e.Translation))
		case pan.Update:
			s.DragUpdate(float64(e.Translation))
		case pan.End:
			s.DragEnd(float64(e.Translation), float64(e.Velocity))
		case pan.Cancel:
			s.DragCancel()
		}
	}
	for _, side := range [][]*ActionItem{s.left, s.right} {
		for _, it := range side {
			if it.Clicked() {
				s.tap(it)
			}
		}
	}
	if s.step(gtx) {
		op.InvalidateOp{}.Add(gtx.Ops)
	}
}

// tap triggers an action directly and closes the row.
func (s *Swipeable) tap(it *ActionItem) {
	if it.OnTrigger != nil {
		it.OnTrigger()
	}
	s.Close()
}

func (s *Swipeable) step(gtx layout.Context) bool {
	animating := s.offset.Step(gtx.Now)
	for _, side := range [][]*ActionItem{s.left, s.right} {
		for _, it := range side {
			if it.step(gtx.Now) {
				animating = true
			}
		}
	}
	for _, pos := range []engage.Position{engage.Left, engage.Right} {
		visible := s.offset.Value()*pos.Sign() > 0
		fade := &s.fade[pos]
		if visible && !s.visible[pos] {
			fade.Set(0)
			fade.TimingTo(1, motion.Timing{Duration: s.Config.FadeIn}, nil)
		} else if !visible {
			fade.Set(0)
		}
		s.visible[pos] = visible
		if fade.Step(gtx.Now) {
			animating = true
		}
	}
	return animating
}

// AddInput registers the row's drag handler for the current clip area.
func (s *Swipeable) AddInput(ops *op.Ops) {
	s.pan.Add(ops)
}

// Offset is the current horizontal translation of the row content.
func (s *Swipeable) Offset() float64 {
	return s.offset.Value()
}

// Baseline is the offset the row rests at between drags.
func (s *Swipeable) Baseline() float64 {
	return s.baseline
}

// Dragging reports whether a drag is in progress.
func (s *Swipeable) Dragging() bool {
	return s.dragging
}

// Animating reports whether the row is moving on its own.
func (s *Swipeable) Animating() bool {
	return s.offset.Animating()
}

// Open reports whether the row rests, or is heading to rest, away from
// closed.
func (s *Swipeable) Open() bool {
	return s.baseline != 0
}

// Items returns the action items of one side, outermost first.
func (s *Swipeable) Items(pos engage.Position) []*ActionItem {
	if pos == engage.Right {
		return s.right
	}
	return s.left
}

// Flag returns the engagement flag of one side.
func (s *Swipeable) Flag(pos engage.Position) *Flag {
	if pos == engage.Right {
		return &s.rightFlag
	}
	return &s.leftFlag
}

// Visible reports whether the actions of a side are revealed and may
// receive input.
func (s *Swipeable) Visible(pos engage.Position) bool {
	return s.visible[pos]
}

// Opacity of a side's action group.
func (s *Swipeable) Opacity(pos engage.Position) float64 {
	if !s.visible[pos] {
		return 0
	}
	return s.fade[pos].Value()
}

// Width of the row in pixels, as of the latest Update.
func (s *Swipeable) Width() float64 {
	return s.width
}
