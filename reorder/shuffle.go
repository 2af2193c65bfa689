package reorder

// Shuffle resolution: decide whether the hidden original row (the hole)
// should move to a different logical slot so the remaining rows visually
// make way for the floating row. The floating row itself is never touched
// here; its position changes only through translation and autoscroll.

func (c *controller) resolveShuffle() {
	s := &c.session
	if s.state != statePressed && s.state != stateDragging {
		return
	}
	if s.index < 0 || s.index >= c.host.RowCount() {
		// Degraded state; keep what we have rather than corrupt the session.
		return
	}

	holeRect := c.host.RowRect(s.index)
	frame := rect{x: holeRect.x, y: s.centerY - s.rowHeight/2, w: holeRect.w, h: s.rowHeight}

	covered := c.host.RowsIntersecting(frame)
	if len(covered) == 0 {
		return
	}

	region := holeRect
	for _, i := range covered {
		region = region.union(c.host.RowRect(i))
	}
	mid := region.centerY()
	holeCenter := holeRect.centerY()

	target := s.index
	switch {
	case s.centerY < mid:
		// Floating row sits in the upper half of the covered region. Move
		// the hole to the first covered slot unless it is already up there.
		if holeCenter > mid {
			target = covered[0]
		}
	case s.centerY > mid:
		// Lower half, symmetric: prefer the slot right after the hole when
		// that still lands it in the lower half, else the last covered slot.
		if holeCenter < mid {
			target = covered[len(covered)-1]
			if next := s.index + 1; containsIndex(covered, next) && c.host.RowRect(next).centerY() > mid {
				target = next
			}
		}
	}
	// An exact center tie falls through both cases: no change, so the
	// order cannot oscillate while hovering on a boundary.
	if target == s.index {
		return
	}

	// The authoritative model moves first; collaborators are never told to
	// reorder visually ahead of it.
	from := s.index
	c.data.Move(from, target)
	s.index = target
	c.host.ApplyMove(from, target)
	c.host.SetHole(target)
}

func containsIndex(ids []int, want int) bool {
	for _, id := range ids {
		if id == want {
			return true
		}
	}
	return false
}
