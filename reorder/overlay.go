package reorder

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
)

// dragOverlay is a transparent input surface stacked over the list. It
// forwards the two pointer streams the gesture controller consumes — the
// press/release stream and the continuous drag-translation stream — without
// interpreting either. It does not implement Tappable, so taps fall
// through to the rows underneath.
type dragOverlay struct {
	widget.BaseWidget

	onDown    func(pos fyne.Position)
	onUp      func(pos fyne.Position)
	onDrag    func(delta fyne.Delta)
	onDragEnd func()

	dragging bool
}

func newDragOverlay() *dragOverlay {
	o := &dragOverlay{}
	o.ExtendBaseWidget(o)
	return o
}

var _ desktop.Mouseable = (*dragOverlay)(nil)
var _ mobile.Touchable = (*dragOverlay)(nil)
var _ fyne.Draggable = (*dragOverlay)(nil)

func (o *dragOverlay) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	if o.onDown != nil {
		o.onDown(e.Position)
	}
}

func (o *dragOverlay) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	if o.onUp != nil {
		o.onUp(e.Position)
	}
}

func (o *dragOverlay) TouchDown(e *mobile.TouchEvent) {
	if o.onDown != nil {
		o.onDown(e.Position)
	}
}

func (o *dragOverlay) TouchUp(e *mobile.TouchEvent) {
	if o.onUp != nil {
		o.onUp(e.Position)
	}
}

func (o *dragOverlay) TouchCancel(e *mobile.TouchEvent) {
	if o.onUp != nil {
		o.onUp(e.Position)
	}
}

func (o *dragOverlay) Dragged(e *fyne.DragEvent) {
	o.dragging = true
	if o.onDrag != nil {
		o.onDrag(e.Dragged)
	}
}

func (o *dragOverlay) DragEnd() {
	if !o.dragging {
		return
	}
	o.dragging = false
	if o.onDragEnd != nil {
		o.onDragEnd()
	}
}

func (o *dragOverlay) CreateRenderer() fyne.WidgetRenderer {
	return &dragOverlayRenderer{}
}

// The overlay draws nothing; it exists only to receive events.
type dragOverlayRenderer struct{}

func (r *dragOverlayRenderer) Layout(fyne.Size) {}
func (r *dragOverlayRenderer) MinSize() fyne.Size {
	return fyne.NewSize(0, 0)
}
func (r *dragOverlayRenderer) Refresh()                     {}
func (r *dragOverlayRenderer) Objects() []fyne.CanvasObject { return nil }
func (r *dragOverlayRenderer) Destroy()                     {}
