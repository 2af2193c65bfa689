package reorder

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// List is a vertical list whose rows can be reordered with a press-and-hold
// drag. Rows are supplied the same way as for widget.List; the Collection
// owns the backing order and is asked to Move whenever the drag passes over
// another row, so the data is already reordered by the time the gesture
// settles.
//
// All exported fields are read at press time; changing them mid-gesture has
// no effect until the next press.
type List struct {
	widget.BaseWidget

	// ReorderEnabled toggles the gesture; call Refresh after changing it.
	// Disabling it mid-drag completes the running session immediately.
	// Defaults to on.
	ReorderEnabled bool

	// HoldDuration is how long a press must stay put before it picks up a
	// row. Zero means the default.
	HoldDuration time.Duration
	// MoveTolerance is the movement, in either axis, a pending press may
	// accumulate before it is treated as a scroll instead. Zero means the
	// default.
	MoveTolerance float32
	// MaxAutoscrollStep caps the per-frame scroll distance near a viewport
	// edge. Zero picks a cap from the viewport height.
	MaxAutoscrollStep float32
	// BottomEdgePadding shrinks the bottom autoscroll trigger zone, for
	// hosts with UI overlapping the list's lower edge.
	BottomEdgePadding float32

	// Indicators overrides the floating-row decoration. Nil selects the
	// built-in snapshot ghost.
	Indicators Indicators
	// Delegate observes the gesture lifecycle. May be nil.
	Delegate Delegate
	// Interrupts overrides where the force-complete signal comes from. Nil
	// binds to the application leaving the foreground.
	Interrupts InterruptBinder

	// OnSelected fires for taps that are not part of a reorder gesture.
	OnSelected func(index int)

	length    func() int
	createRow func() fyne.CanvasObject
	updateRow func(index int, obj fyne.CanvasObject)
	data      Collection

	list       *widget.List
	overlay    *dragOverlay
	ghostLayer *fyne.Container
	ctl        *controller

	holeIndex   int
	rowH        float32
	lastDragEnd time.Time
	unbind      func()
}

// NewList creates a reorderable list. length, create and update carry the
// same contract as widget.NewList; data performs the actual moves.
func NewList(length func() int, create func() fyne.CanvasObject, update func(index int, obj fyne.CanvasObject), data Collection) *List {
	l := &List{
		ReorderEnabled: true,
		length:         length,
		createRow:      create,
		updateRow:      update,
		data:           data,
		holeIndex:      -1,
	}

	l.list = widget.NewList(
		length,
		func() fyne.CanvasObject { return newHoleRow(create()) },
		func(id widget.ListItemID, o fyne.CanvasObject) {
			row := o.(*holeRow)
			update(id, row.content)
			row.setConcealed(id == l.holeIndex)
		},
	)
	l.list.OnSelected = l.rowSelected

	l.ghostLayer = container.NewWithoutLayout()
	l.ctl = newController(l, data)
	l.overlay = newDragOverlay()
	l.overlay.onDown = l.pointerDown
	l.overlay.onUp = func(fyne.Position) { l.ctl.pointerUp() }
	l.overlay.onDrag = l.pointerDrag
	l.overlay.onDragEnd = func() { l.ctl.dragEnded() }

	l.ExtendBaseWidget(l)
	return l
}

// Dragging reports whether a reorder gesture is in progress.
func (l *List) Dragging() bool {
	return l.ctl.dragging()
}

// ForceComplete ends any running gesture synchronously, reconciling the
// floating row into its current slot. Safe to call at any time.
func (l *List) ForceComplete() {
	l.ctl.forceComplete()
}

// Refresh re-renders the rows and drops the cached row height. It also
// publishes a ReorderEnabled change: turning the gesture off mid-drag
// completes the running session before the input surface goes away with
// the release event still in flight.
func (l *List) Refresh() {
	if !l.ReorderEnabled {
		l.ForceComplete()
	}
	l.rowH = 0
	l.list.Refresh()
	l.BaseWidget.Refresh()
}

func (l *List) pointerDown(pos fyne.Position) {
	if !l.ReorderEnabled {
		return
	}
	l.syncController()
	l.ctl.pointerDown(pos)
}

func (l *List) pointerDrag(delta fyne.Delta) {
	c := l.ctl
	if !c.press.active && c.session.state == stateIdle {
		// Not a reorder gesture; behave like an ordinary scrolling drag.
		l.SetScrollOffset(l.ScrollOffset() - delta.DY)
		return
	}
	c.dragSample(delta)
}

// syncController copies the exported configuration into the controller.
// Done once per press so a gesture runs with one consistent configuration.
func (l *List) syncController() {
	c := l.ctl
	c.holdDuration = defaultHoldDuration
	if l.HoldDuration > 0 {
		c.holdDuration = l.HoldDuration
	}
	c.moveTolerance = defaultMoveTolerance
	if l.MoveTolerance > 0 {
		c.moveTolerance = l.MoveTolerance
	}
	c.maxStep = l.MaxAutoscrollStep
	c.bottomPad = l.BottomEdgePadding
	c.delegate = l.Delegate
	c.indicators = l.Indicators
	if c.indicators == nil {
		c.indicators = &defaultIndicators{list: l}
	}
}

// rowSelected filters the list's selection callbacks: selections made while
// a gesture runs, or immediately after one completes, are the pointer
// release of the drag and are swallowed.
func (l *List) rowSelected(id widget.ListItemID) {
	l.list.UnselectAll()
	if l.ctl.dragging() || time.Since(l.lastDragEnd) < completionTapGuard {
		return
	}
	if l.OnSelected != nil {
		l.OnSelected(id)
	}
}

func (l *List) rowHeight() float32 {
	if l.rowH == 0 {
		l.rowH = l.createRow().MinSize().Height
	}
	return l.rowH
}

// rowStep is the vertical distance between consecutive row tops, the row
// height plus the list's inter-row padding.
func (l *List) rowStep() float32 {
	return l.rowHeight() + l.list.Theme().Size(theme.SizeNamePadding)
}

// listHost implementation. All coordinates are content space: y zero at the
// top of the first row, unaffected by scrolling.

func (l *List) RowCount() int {
	return l.length()
}

func (l *List) RowRect(index int) rect {
	return rect{
		x: 0,
		y: float32(index) * l.rowStep(),
		w: l.list.Size().Width,
		h: l.rowHeight(),
	}
}

func (l *List) RowsIntersecting(r rect) []int {
	count := l.length()
	if count == 0 {
		return nil
	}
	step := l.rowStep()

	first := int(r.y / step)
	if first < 0 {
		first = 0
	}
	last := int(r.bottom() / step)
	if last >= count {
		last = count - 1
	}

	var hit []int
	for i := first; i <= last; i++ {
		if l.RowRect(i).intersects(r) {
			hit = append(hit, i)
		}
	}
	return hit
}

func (l *List) RowAt(contentY float32) (int, bool) {
	if contentY < 0 {
		return 0, false
	}
	step := l.rowStep()
	i := int(contentY / step)
	if i >= l.length() {
		return 0, false
	}
	if contentY > float32(i)*step+l.rowHeight() {
		// The gap between rows belongs to no row.
		return 0, false
	}
	return i, true
}

func (l *List) VisibleHeight() float32 {
	return l.list.Size().Height
}

func (l *List) ContentHeight() float32 {
	count := l.length()
	if count == 0 {
		return 0
	}
	return float32(count)*l.rowStep() - l.list.Theme().Size(theme.SizeNamePadding)
}

func (l *List) ScrollOffset() float32 {
	return l.list.GetScrollOffset()
}

func (l *List) SetScrollOffset(offset float32) {
	l.list.ScrollToOffset(offset)
}

func (l *List) ShowGhost(obj fyne.CanvasObject) {
	obj.Resize(fyne.NewSize(l.list.Size().Width, l.rowHeight()))
	l.ghostLayer.Add(obj)
}

func (l *List) MoveGhost(obj fyne.CanvasObject, top float32) {
	obj.Move(fyne.NewPos(0, top))
}

func (l *List) HideGhost(obj fyne.CanvasObject) {
	l.ghostLayer.Remove(obj)
}

func (l *List) SetHole(index int) {
	l.holeIndex = index
	if index == -1 {
		l.lastDragEnd = time.Now()
	}
	l.list.Refresh()
}

func (l *List) ApplyMove(from, to int) {
	l.list.Refresh()
}

func (l *List) CreateRenderer() fyne.WidgetRenderer {
	binder := l.Interrupts
	if binder == nil {
		binder = lifecycleBinder{}
	}
	l.unbind = binder.Bind(l.ForceComplete)

	return &listRenderer{list: l}
}

// holeRow wraps a user row so the slot under the floating row can render
// empty while keeping its place in the layout.
type holeRow struct {
	widget.BaseWidget

	content   fyne.CanvasObject
	concealed bool
}

func newHoleRow(content fyne.CanvasObject) *holeRow {
	h := &holeRow{content: content}
	h.ExtendBaseWidget(h)
	return h
}

func (h *holeRow) setConcealed(concealed bool) {
	if h.concealed == concealed {
		return
	}
	h.concealed = concealed
	if concealed {
		h.content.Hide()
	} else {
		h.content.Show()
	}
}

func (h *holeRow) CreateRenderer() fyne.WidgetRenderer {
	return &holeRowRenderer{h: h}
}

type holeRowRenderer struct {
	h *holeRow
}

func (r *holeRowRenderer) Layout(size fyne.Size) {
	r.h.content.Resize(size)
	r.h.content.Move(fyne.NewPos(0, 0))
}

func (r *holeRowRenderer) MinSize() fyne.Size {
	return r.h.content.MinSize()
}

func (r *holeRowRenderer) Refresh() {
	r.h.content.Refresh()
}

func (r *holeRowRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.h.content}
}

func (r *holeRowRenderer) Destroy() {}

// lifecycleBinder is the default interrupt source: the application moving
// to the background force-completes the gesture, since no release event
// will arrive while backgrounded.
type lifecycleBinder struct{}

func (lifecycleBinder) Bind(fn func()) func() {
	lc := fyne.CurrentApp().Lifecycle()
	lc.SetOnExitedForeground(fn)
	return func() { lc.SetOnExitedForeground(nil) }
}

type listRenderer struct {
	list *List
	size fyne.Size
}

func (r *listRenderer) Layout(size fyne.Size) {
	if r.size != size && r.size != (fyne.Size{}) {
		// Geometry the session was measured against is gone.
		r.list.ForceComplete()
	}
	r.size = size

	r.list.list.Resize(size)
	r.list.list.Move(fyne.NewPos(0, 0))
	r.list.ghostLayer.Resize(size)
	r.list.ghostLayer.Move(fyne.NewPos(0, 0))
	r.list.overlay.Resize(size)
	r.list.overlay.Move(fyne.NewPos(0, 0))
}

func (r *listRenderer) MinSize() fyne.Size {
	return r.list.list.MinSize()
}

func (r *listRenderer) Refresh() {
	r.list.list.Refresh()
}

func (r *listRenderer) Objects() []fyne.CanvasObject {
	if !r.list.ReorderEnabled {
		return []fyne.CanvasObject{r.list.list, r.list.ghostLayer}
	}
	return []fyne.CanvasObject{r.list.list, r.list.ghostLayer, r.list.overlay}
}

func (r *listRenderer) Destroy() {
	r.list.ForceComplete()
	if r.list.unbind != nil {
		r.list.unbind()
		r.list.unbind = nil
	}
}
