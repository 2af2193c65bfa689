package reorder

import (
	"time"

	"fyne.io/fyne/v2"
)

// Press recognition: a press that stays within a small movement tolerance
// for the hold duration opens a drag session on the row under the original
// touch-down point. Movement during the hold does not change which row is
// picked up; it can only cancel the press.

type pressState struct {
	active bool
	seq    int
	index  int

	travelX float32
	travelY float32

	timer *time.Timer
}

func (c *controller) pointerDown(pos fyne.Position) {
	if c.session.state != stateIdle {
		// A session is already running; any other pointer is ignored.
		return
	}
	if c.press.active {
		return
	}

	index, ok := c.host.RowAt(pos.Y + c.host.ScrollOffset())
	if !ok || !c.canMove(index) {
		// Not a movable row. Normal list interaction proceeds unimpeded.
		return
	}

	c.pressSeq++
	c.press = pressState{active: true, seq: c.pressSeq, index: index}

	seq := c.press.seq
	c.press.timer = time.AfterFunc(c.holdDuration, func() {
		fyne.Do(func() { c.holdElapsed(seq) })
	})
}

func (c *controller) pointerUp() {
	if c.press.active {
		// Released before the hold elapsed: an ordinary tap.
		c.cancelPress()
		return
	}
	switch c.session.state {
	case statePressed, stateDragging:
		c.endDrag(true)
	}
}

// holdElapsed fires when the hold timer completes. The sequence number ties
// it to one physical press, so a stale timer can never establish a session
// for a later press.
func (c *controller) holdElapsed(seq int) {
	if !c.press.active || c.press.seq != seq {
		return
	}
	if c.press.timer != nil {
		c.press.timer.Stop()
	}
	index := c.press.index
	c.press = pressState{}
	c.establish(index)
}

func (c *controller) cancelPress() {
	if c.press.timer != nil {
		c.press.timer.Stop()
	}
	c.press = pressState{}
}

func (c *controller) canMove(index int) bool {
	if f, ok := c.data.(MoveFilter); ok {
		return f.CanMove(index)
	}
	return true
}
