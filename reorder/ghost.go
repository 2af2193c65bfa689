package reorder

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/software"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"golang.org/x/image/draw"
)

// defaultIndicators is the built-in floating-row decoration: a
// software-rendered snapshot of the pressed row with a highlight wash and
// soft shading along its top and bottom edges, approximating the native
// "lifted row" affordance. Hosts replace it by setting List.Indicators.
type defaultIndicators struct {
	list *List
}

func (d *defaultIndicators) Produce(index int) fyne.CanvasObject {
	w := d.list.list.Size().Width
	h := d.list.rowHeight()
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	row := d.list.createRow()
	d.list.updateRow(index, row)
	row.Resize(fyne.NewSize(w, h))

	g := newGhostRow(renderRowImage(row, w, h))
	g.Resize(fyne.NewSize(w, h))
	return g
}

func (d *defaultIndicators) Decorate(obj fyne.CanvasObject) {
	if g, ok := obj.(*ghostRow); ok {
		g.decorate()
	}
}

func (d *defaultIndicators) Undecorate(obj fyne.CanvasObject, animated bool) {
	if g, ok := obj.(*ghostRow); ok {
		g.undecorate(animated)
	}
}

func (d *defaultIndicators) Dispose(obj fyne.CanvasObject) {
	if g, ok := obj.(*ghostRow); ok {
		g.dispose()
	}
}

// renderRowImage renders the row off screen and normalises the result to
// the row's logical size, so the snapshot draws the same regardless of the
// scale the software renderer picked.
func renderRowImage(row fyne.CanvasObject, w, h float32) image.Image {
	src := software.Render(row, fyne.CurrentApp().Settings().Theme())
	dst := image.NewRGBA(image.Rect(0, 0, int(w), int(h)))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}

const ghostEdgeShade = float32(6)

type ghostRow struct {
	widget.BaseWidget

	snapshot   *canvas.Image
	highlight  *canvas.Rectangle
	topEdge    *canvas.LinearGradient
	bottomEdge *canvas.LinearGradient

	highlightFill color.Color
	fade          *fyne.Animation
}

func newGhostRow(img image.Image) *ghostRow {
	g := &ghostRow{}

	g.snapshot = canvas.NewImageFromImage(img)
	g.snapshot.FillMode = canvas.ImageFillStretch

	// Same treatment as a selected row, knocked down to a wash.
	sel := theme.Color(theme.ColorNameSelection)
	r, gr, b, _ := sel.RGBA()
	g.highlightFill = color.RGBA{R: uint8(r >> 8), G: uint8(gr >> 8), B: uint8(b >> 8), A: 64}
	g.highlight = canvas.NewRectangle(g.highlightFill)

	shadow := theme.Color(theme.ColorNameShadow)
	clear := color.RGBA{}
	g.topEdge = canvas.NewVerticalGradient(shadow, clear)
	g.bottomEdge = canvas.NewVerticalGradient(clear, shadow)

	g.highlight.Hide()
	g.topEdge.Hide()
	g.bottomEdge.Hide()

	g.ExtendBaseWidget(g)
	return g
}

func (g *ghostRow) decorate() {
	g.highlight.FillColor = g.highlightFill
	g.highlight.Show()
	g.topEdge.Show()
	g.bottomEdge.Show()
	g.Refresh()
}

func (g *ghostRow) undecorate(animated bool) {
	g.topEdge.Hide()
	g.bottomEdge.Hide()
	if !animated {
		g.highlight.Hide()
		g.Refresh()
		return
	}

	clear := color.RGBA{}
	g.fade = canvas.NewColorRGBAAnimation(g.highlightFill, clear, canvas.DurationShort, func(cl color.Color) {
		g.highlight.FillColor = cl
		g.highlight.Refresh()
	})
	g.fade.Start()
	g.Refresh()
}

func (g *ghostRow) dispose() {
	if g.fade != nil {
		g.fade.Stop()
		g.fade = nil
	}
}

func (g *ghostRow) CreateRenderer() fyne.WidgetRenderer {
	return &ghostRowRenderer{g: g}
}

type ghostRowRenderer struct {
	g *ghostRow
}

func (r *ghostRowRenderer) Layout(size fyne.Size) {
	r.g.snapshot.Resize(size)
	r.g.snapshot.Move(fyne.NewPos(0, 0))
	r.g.highlight.Resize(size)
	r.g.highlight.Move(fyne.NewPos(0, 0))

	r.g.topEdge.Resize(fyne.NewSize(size.Width, ghostEdgeShade))
	r.g.topEdge.Move(fyne.NewPos(0, 0))
	r.g.bottomEdge.Resize(fyne.NewSize(size.Width, ghostEdgeShade))
	r.g.bottomEdge.Move(fyne.NewPos(0, size.Height-ghostEdgeShade))
}

func (r *ghostRowRenderer) MinSize() fyne.Size {
	return fyne.NewSize(0, 0)
}

func (r *ghostRowRenderer) Refresh() {
	r.g.snapshot.Refresh()
	r.g.highlight.Refresh()
	r.g.topEdge.Refresh()
	r.g.bottomEdge.Refresh()
}

func (r *ghostRowRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.g.snapshot, r.g.highlight, r.g.topEdge, r.g.bottomEdge}
}

func (r *ghostRowRenderer) Destroy() {
	r.g.dispose()
}
