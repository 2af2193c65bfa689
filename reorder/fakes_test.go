package reorder

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
)

// fakeHost is an in-memory listHost with uniform row geometry, so the
// gesture controller can be exercised without a canvas.
type fakeHost struct {
	rowH  float32
	gap   float32
	width float32
	viewH float32
	count int

	offset  float32
	setLog  []float32
	hole    int
	holeLog []int

	ghost      fyne.CanvasObject
	ghostTop   float32
	moveApply  [][2]int
	showCalls  int
	hideCalls  int
	ghostMoves int
}

func newFakeHost(count int, rowH, viewH float32) *fakeHost {
	return &fakeHost{rowH: rowH, width: 300, viewH: viewH, count: count, hole: -1}
}

func (h *fakeHost) step() float32 { return h.rowH + h.gap }

func (h *fakeHost) RowCount() int { return h.count }

func (h *fakeHost) RowRect(index int) rect {
	return rect{x: 0, y: float32(index) * h.step(), w: h.width, h: h.rowH}
}

func (h *fakeHost) RowsIntersecting(r rect) []int {
	var hit []int
	for i := 0; i < h.count; i++ {
		if h.RowRect(i).intersects(r) {
			hit = append(hit, i)
		}
	}
	return hit
}

func (h *fakeHost) RowAt(contentY float32) (int, bool) {
	if contentY < 0 {
		return 0, false
	}
	i := int(contentY / h.step())
	if i >= h.count {
		return 0, false
	}
	if contentY > float32(i)*h.step()+h.rowH {
		return 0, false
	}
	return i, true
}

func (h *fakeHost) VisibleHeight() float32 { return h.viewH }

func (h *fakeHost) ContentHeight() float32 {
	if h.count == 0 {
		return 0
	}
	return float32(h.count)*h.step() - h.gap
}

func (h *fakeHost) ScrollOffset() float32 { return h.offset }

func (h *fakeHost) SetScrollOffset(offset float32) {
	h.offset = offset
	h.setLog = append(h.setLog, offset)
}

func (h *fakeHost) ShowGhost(obj fyne.CanvasObject) {
	h.ghost = obj
	h.showCalls++
}

func (h *fakeHost) MoveGhost(obj fyne.CanvasObject, top float32) {
	h.ghostTop = top
	h.ghostMoves++
}

func (h *fakeHost) HideGhost(obj fyne.CanvasObject) {
	h.ghost = nil
	h.hideCalls++
}

func (h *fakeHost) SetHole(index int) {
	h.hole = index
	h.holeLog = append(h.holeLog, index)
}

func (h *fakeHost) ApplyMove(from, to int) {
	h.moveApply = append(h.moveApply, [2]int{from, to})
}

// fakeCollection reorders a string slice and records every Move.
type fakeCollection struct {
	items []string
	moves [][2]int
}

func newFakeCollection(items ...string) *fakeCollection {
	return &fakeCollection{items: items}
}

func (c *fakeCollection) Move(from, to int) {
	c.moves = append(c.moves, [2]int{from, to})
	item := c.items[from]
	c.items = append(c.items[:from], c.items[from+1:]...)
	rest := append([]string{item}, c.items[to:]...)
	c.items = append(c.items[:to], rest...)
}

// filteredCollection additionally pins some rows in place.
type filteredCollection struct {
	*fakeCollection
	pinned map[int]bool
}

func (c *filteredCollection) CanMove(index int) bool {
	return !c.pinned[index]
}

// fakeIndicators hands out a bare rectangle and counts lifecycle calls.
type fakeIndicators struct {
	produced           int
	decorated          int
	undecorated        int
	undecorateAnimated bool
	disposed           int
}

func (f *fakeIndicators) Produce(index int) fyne.CanvasObject {
	f.produced++
	return canvas.NewRectangle(color.Transparent)
}

func (f *fakeIndicators) Decorate(obj fyne.CanvasObject) { f.decorated++ }

func (f *fakeIndicators) Undecorate(obj fyne.CanvasObject, animated bool) {
	f.undecorated++
	f.undecorateAnimated = animated
}

func (f *fakeIndicators) Dispose(obj fyne.CanvasObject) { f.disposed++ }

// recordingDelegate appends every callback, in order, to events.
type recordingDelegate struct {
	events        []string
	hideIndicator bool
}

func (d *recordingDelegate) DragStarted(index int) {
	d.events = append(d.events, "started")
}

func (d *recordingDelegate) WillEndDrag(target int) {
	d.events = append(d.events, "willEnd")
}

func (d *recordingDelegate) EndedDrag(target int) {
	d.events = append(d.events, "ended")
}

func (d *recordingDelegate) ShouldHideIndicator(target int) bool {
	return d.hideIndicator
}

// manualFrames replaces the per-frame animation with explicit steps.
type manualFrames struct {
	tick    func()
	running bool
	starts  int
	stops   int
}

func (m *manualFrames) Start(tick func()) {
	if m.running {
		return
	}
	m.running = true
	m.tick = tick
	m.starts++
}

func (m *manualFrames) Stop() {
	if !m.running {
		return
	}
	m.running = false
	m.stops++
}

func (m *manualFrames) fire() {
	if m.running {
		m.tick()
	}
}

func newGestureController(host *fakeHost, data Collection) (*controller, *fakeIndicators, *manualFrames) {
	c := newController(host, data)
	fi := &fakeIndicators{}
	fr := &manualFrames{}
	c.indicators = fi
	c.frames = fr
	return c, fi, fr
}
