package reorder

import (
	"math"
	"time"

	"fyne.io/fyne/v2"
)

// proximity measures how close the floating row's translation-derived
// center is to the nearer viewport edge. dir is -1 for the top edge and +1
// for the bottom edge; dist is never negative, so a center dragged past an
// edge reports distance zero and maps to the maximum scroll step. The
// unclamped center is used deliberately: scroll speed should reflect drag
// intent even while the row itself is pinned at the edge.
func (c *controller) proximity() (dist float32, dir int, within bool) {
	s := &c.session
	offset := c.host.ScrollOffset()
	viewH := c.host.VisibleHeight()

	distTop := s.unclampedCenterY - offset
	distBottom := offset + viewH - c.bottomPad - s.unclampedCenterY

	if distTop < distBottom {
		dist, dir = distTop, -1
	} else {
		dist, dir = distBottom, 1
	}
	if dist < 0 {
		dist = 0
	}
	return dist, dir, dist < s.threshold
}

// autoscrollTick runs once per rendered frame while autoscroll is armed.
// It steps the scroll offset toward the near edge and applies the same
// delta to the floating row, so the row's on-screen position is unchanged
// by the scroll.
func (c *controller) autoscrollTick() {
	s := &c.session
	if s.state != stateDragging || !s.autoscroll {
		c.frames.Stop()
		return
	}

	dist, dir, within := c.proximity()
	if !within {
		s.autoscroll = false
		c.frames.Stop()
		return
	}

	step := float32(math.Ceil(float64((s.threshold - dist) / s.threshold * s.maxStep)))
	step = clamp32(step, 0, s.maxStep)
	if dir < 0 {
		step = -step
	}

	// Read-then-write of the offset stays inside this tick; the drag
	// tracker never runs concurrently with it.
	offset := c.host.ScrollOffset()
	maxOffset := c.host.ContentHeight() - c.host.VisibleHeight()
	if maxOffset < 0 {
		maxOffset = 0
	}

	next := clamp32(offset+step, 0, maxOffset)
	if applied := next - offset; applied != 0 {
		c.host.SetScrollOffset(next)
		s.centerY += applied
		s.unclampedCenterY += applied
	}

	if next <= 0 || next >= maxOffset {
		// Saturated: no more scrolling is possible in this direction. Stop
		// the driver but leave the autoscroll flag set (see
		// updateAutoscroll).
		c.frames.Stop()
	}

	c.clampToContent()
	c.resolveShuffle()
	c.positionGhost()
}

// frameDriver schedules a repeating callback. Start on a running driver
// and Stop on a stopped one are no-ops.
type frameDriver interface {
	Start(tick func())
	Stop()
}

// animationDriver runs the callback once per rendered frame via a
// repeat-forever animation, keeping scroll mutations in lockstep with the
// frames that display them.
type animationDriver struct {
	anim *fyne.Animation
}

func (d *animationDriver) Start(tick func()) {
	if d.anim != nil {
		return
	}
	anim := fyne.NewAnimation(time.Second, func(float32) { tick() })
	anim.Curve = fyne.AnimationLinear
	anim.RepeatCount = fyne.AnimationRepeatForever
	d.anim = anim
	anim.Start()
}

func (d *animationDriver) Stop() {
	if d.anim == nil {
		return
	}
	d.anim.Stop()
	d.anim = nil
}
