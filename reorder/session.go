package reorder

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
)

type dragState int

const (
	stateIdle dragState = iota
	statePressed
	stateDragging
	stateCompleting
)

// dragSession holds every piece of per-gesture state. Exactly one session
// exists at a time; all fields are reset in full when it ends so nothing
// bleeds into the next gesture.
type dragSession struct {
	state dragState

	// index is the logical slot the hidden original row currently occupies
	// (the "hole" the floating row is dragged over).
	index  int
	target int

	ghost     fyne.CanvasObject
	rowHeight float32

	// initialCenterOffset is the row's vertical center relative to the
	// scroll offset at session start. Combined with the accumulated
	// translation it anchors the floating row's position for the whole
	// gesture.
	initialCenterOffset float32
	translationY        float32

	// centerY is the floating row's content-space center after clamping;
	// unclampedCenterY is the raw translation-derived value used for
	// autoscroll speed, so speed reflects drag intent even when the row is
	// pinned at a viewport edge.
	centerY          float32
	unclampedCenterY float32

	threshold float32
	maxStep   float32

	autoscroll    bool
	hideIndicator bool
	settle        *fyne.Animation
}

// controller is the drag-reorder gesture state machine. It owns the single
// drag session and talks to the hosting widget purely through listHost, so
// it carries no assumption about how pointer events were recognized.
//
// Everything here runs on the UI goroutine; background timers re-enter via
// fyne.Do. That single-writer discipline is the only synchronization.
type controller struct {
	host listHost
	data Collection

	indicators Indicators
	delegate   Delegate

	holdDuration  time.Duration
	moveTolerance float32
	maxStep       float32
	bottomPad     float32

	frames frameDriver

	pressSeq int
	press    pressState
	session  dragSession
}

func newController(host listHost, data Collection) *controller {
	return &controller{
		host:          host,
		data:          data,
		holdDuration:  defaultHoldDuration,
		moveTolerance: defaultMoveTolerance,
		frames:        &animationDriver{},
		session:       dragSession{index: -1},
	}
}

func (c *controller) dragging() bool {
	return c.session.state == statePressed || c.session.state == stateDragging
}

// establish opens a drag session on the given row: Idle -> Pressed.
func (c *controller) establish(index int) {
	if c.session.state != stateIdle {
		return
	}

	rr := c.host.RowRect(index)
	offset := c.host.ScrollOffset()
	c.session = dragSession{
		state:               statePressed,
		index:               index,
		target:              index,
		rowHeight:           rr.h,
		initialCenterOffset: rr.centerY() - offset,
		threshold:           rr.h/2 + autoscrollEdgeMargin,
		maxStep:             c.stepCeiling(),
		centerY:             rr.centerY(),
		unclampedCenterY:    rr.centerY(),
	}

	s := &c.session
	s.ghost = c.indicators.Produce(index)
	c.indicators.Decorate(s.ghost)
	c.host.ShowGhost(s.ghost)
	c.host.SetHole(index)
	c.positionGhost()

	if c.delegate != nil {
		c.delegate.DragStarted(index)
	}
}

func (c *controller) stepCeiling() float32 {
	if c.maxStep > 0 {
		return c.maxStep
	}
	if c.host.VisibleHeight() >= largeViewportHeight {
		return largeViewportMaxStep
	}
	return smallViewportMaxStep
}

// endDrag moves the session into Completing. The animated path settles the
// floating row into the hole's slot; the synchronous path (interrupts,
// teardown) reconciles immediately with the last known translation and must
// never wait on an animation.
func (c *controller) endDrag(animated bool) {
	s := &c.session
	switch s.state {
	case stateIdle:
		return
	case stateCompleting:
		if !animated {
			c.finalize()
		}
		return
	}

	s.state = stateCompleting
	s.target = s.index
	s.autoscroll = false
	c.frames.Stop()

	s.hideIndicator = true
	if c.delegate != nil {
		c.delegate.WillEndDrag(s.target)
		s.hideIndicator = c.delegate.ShouldHideIndicator(s.target)
	}

	if !animated {
		if s.hideIndicator {
			c.indicators.Undecorate(s.ghost, false)
		}
		c.finalize()
		return
	}
	if s.hideIndicator {
		c.indicators.Undecorate(s.ghost, true)
	}
	c.startSettle()
}

func (c *controller) startSettle() {
	s := &c.session
	offset := c.host.ScrollOffset()
	from := s.centerY - s.rowHeight/2 - offset
	to := c.host.RowRect(s.index).y - offset

	anim := fyne.NewAnimation(canvas.DurationShort, func(f float32) {
		c.host.MoveGhost(s.ghost, from+(to-from)*f)
		if f >= 1 {
			c.finalize()
		}
	})
	anim.Curve = fyne.AnimationEaseOut
	s.settle = anim
	anim.Start()
}

// finalize is the single teardown path: Completing -> Idle. It is safe to
// call more than once and safe to call while the settle animation is still
// running.
func (c *controller) finalize() {
	s := &c.session
	if s.state != stateCompleting {
		return
	}
	if s.settle != nil {
		s.settle.Stop()
	}
	c.frames.Stop()

	target := s.target
	ghost := s.ghost
	c.host.SetHole(-1)
	if ghost != nil {
		c.host.HideGhost(ghost)
		c.indicators.Dispose(ghost)
	}

	// Reset every field, not just the obviously relevant ones.
	c.session = dragSession{index: -1}

	if c.delegate != nil {
		c.delegate.EndedDrag(target)
	}
}

// forceComplete is the external interrupt entry point. It is a no-op with
// no session active, cancels a pending press, and otherwise reconciles the
// session synchronously using the last known translation.
func (c *controller) forceComplete() {
	c.cancelPress()
	switch c.session.state {
	case stateIdle:
	case stateCompleting:
		c.finalize()
	default:
		c.endDrag(false)
	}
}
