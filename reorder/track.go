package reorder

import "fyne.io/fyne/v2"

// Drag tracking: each pointer translation sample repositions the floating
// row, re-evaluates whether autoscroll should run, and gives the shuffle
// resolver a chance to move the hole.

func (c *controller) dragSample(delta fyne.Delta) {
	if c.press.active {
		// Still waiting for the hold: movement beyond the tolerance means
		// this is a scroll or some other drag, not a reorder press.
		c.press.travelX += delta.DX
		c.press.travelY += delta.DY
		if abs32(c.press.travelX) > c.moveTolerance || abs32(c.press.travelY) > c.moveTolerance {
			c.cancelPress()
		}
		return
	}

	switch c.session.state {
	case statePressed:
		c.session.state = stateDragging
	case stateDragging:
	default:
		return
	}

	c.session.translationY += delta.DY
	c.applyTranslation()
}

func (c *controller) dragEnded() {
	if c.press.active {
		c.cancelPress()
		return
	}
	switch c.session.state {
	case statePressed, stateDragging:
		// Also covers a press whose drag never produced a sample: complete
		// with zero translation rather than leak a stuck floating row.
		c.endDrag(true)
	}
}

func (c *controller) applyTranslation() {
	s := &c.session
	if s.state != stateDragging {
		return
	}

	offset := c.host.ScrollOffset()
	viewH := c.host.VisibleHeight()

	center := s.initialCenterOffset + s.translationY + offset
	s.unclampedCenterY = center

	// The floating row may never sit fully outside the visible viewport.
	s.centerY = clamp32(center, offset, offset+viewH)
	c.clampToContent()

	c.updateAutoscroll()
	c.resolveShuffle()
	c.positionGhost()
}

// clampToContent pins the floating row's edges inside the content's
// vertical extent. Applied after the viewport clamp; the top edge wins if
// the content is shorter than the row.
func (c *controller) clampToContent() {
	s := &c.session
	contentH := c.host.ContentHeight()
	if s.centerY > contentH-s.rowHeight/2 {
		s.centerY = contentH - s.rowHeight/2
	}
	if s.centerY < s.rowHeight/2 {
		s.centerY = s.rowHeight / 2
	}
}

// updateAutoscroll arms or disarms the frame driver based on edge
// proximity. Both directions are idempotent. The driver may also have
// stopped itself on offset saturation; in that case the autoscroll flag
// stays set until proximity naturally exits the threshold, which keeps the
// driver from thrashing at the boundary.
func (c *controller) updateAutoscroll() {
	s := &c.session
	_, _, within := c.proximity()
	if within && !s.autoscroll {
		s.autoscroll = true
		c.frames.Start(c.autoscrollTick)
	} else if !within && s.autoscroll {
		s.autoscroll = false
		c.frames.Stop()
	}
}

func (c *controller) positionGhost() {
	s := &c.session
	if s.ghost == nil {
		return
	}
	c.host.MoveGhost(s.ghost, s.centerY-s.rowHeight/2-c.host.ScrollOffset())
}
