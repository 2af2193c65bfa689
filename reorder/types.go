package reorder

import (
	"time"

	"fyne.io/fyne/v2"
)

// Collection performs the authoritative reordering of the backing data.
// Move is always called before the rows are visually reordered; by the time
// it returns the model must reflect the new order.
type Collection interface {
	Move(from, to int)
}

// MoveFilter can be implemented by a Collection to veto dragging of
// individual rows. Rows are movable by default.
type MoveFilter interface {
	CanMove(index int) bool
}

// Delegate receives notifications about the drag gesture. All methods are
// invoked on the UI goroutine. A nil delegate is valid and means "use
// default behavior everywhere".
type Delegate interface {
	// DragStarted is called once a press is established and the floating
	// row is on screen.
	DragStarted(index int)
	// WillEndDrag is called when the gesture ends, before the floating row
	// settles into its destination slot.
	WillEndDrag(target int)
	// EndedDrag is called after the session is fully reconciled.
	EndedDrag(target int)
	// ShouldHideIndicator reports whether the floating row's decoration
	// should be removed while it settles into the destination slot.
	ShouldHideIndicator(target int) bool
}

// Indicators produces and decorates the floating representation of the
// dragged row. Produce, Decorate and Dispose are each called exactly once
// per drag session, in that order. Undecorate may be skipped when a session
// is interrupted.
type Indicators interface {
	Produce(index int) fyne.CanvasObject
	Decorate(obj fyne.CanvasObject)
	Undecorate(obj fyne.CanvasObject, animated bool)
	Dispose(obj fyne.CanvasObject)
}

// InterruptBinder routes an external interrupt signal, typically the
// application leaving the foreground, to the gesture controller. Bind
// returns the matching release; both run on the UI goroutine.
type InterruptBinder interface {
	Bind(fn func()) (unbind func())
}

// listHost is what the gesture controller needs from the widget that lays
// out and scrolls the rows: geometry queries over the content coordinate
// space, the read/write scroll offset, and the visual operations that keep
// the rendered rows in step with the session.
type listHost interface {
	RowCount() int
	RowRect(index int) rect
	RowsIntersecting(r rect) []int
	RowAt(contentY float32) (int, bool)
	VisibleHeight() float32
	ContentHeight() float32
	ScrollOffset() float32
	SetScrollOffset(offset float32)

	ShowGhost(obj fyne.CanvasObject)
	MoveGhost(obj fyne.CanvasObject, top float32)
	HideGhost(obj fyne.CanvasObject)
	SetHole(index int)
	ApplyMove(from, to int)
}

const (
	defaultHoldDuration  = 500 * time.Millisecond
	defaultMoveTolerance = float32(10)

	// autoscrollEdgeMargin is added to the dragged row's half height when
	// deriving the edge distance at which autoscrolling starts.
	autoscrollEdgeMargin = float32(12)

	// Per-frame scroll step ceilings. Larger viewports scroll faster.
	smallViewportMaxStep = float32(10)
	largeViewportMaxStep = float32(16)
	largeViewportHeight  = float32(768)

	// Taps landing right after a drag completes are swallowed so releasing
	// the row doesn't double as a selection.
	completionTapGuard = 250 * time.Millisecond
)

// rect is an axis-aligned rectangle in the list's content coordinate space.
type rect struct {
	x, y, w, h float32
}

func (r rect) right() float32   { return r.x + r.w }
func (r rect) bottom() float32  { return r.y + r.h }
func (r rect) centerY() float32 { return r.y + r.h/2 }

func (r rect) intersects(o rect) bool {
	return r.x < o.right() && r.right() > o.x && r.y < o.bottom() && r.bottom() > o.y
}

func (r rect) union(o rect) rect {
	x1 := min32(r.x, o.x)
	y1 := min32(r.y, o.y)
	x2 := max32(r.right(), o.right())
	y2 := max32(r.bottom(), o.bottom())
	return rect{x: x1, y: y1, w: x2 - x1, h: y2 - y1}
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func clamp32(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
