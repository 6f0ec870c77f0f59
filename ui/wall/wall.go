// Package wall provides the freeform media wall canvas: a scrollable,
// pannable surface on which item widgets are packed and freely rearranged.
package wall

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"media-wall/internal/app"
	"media-wall/internal/gesture"
	"media-wall/internal/layout"
	"media-wall/pkg/geometry"
)

// Wall is the interactive canvas widget. It owns the scroll viewport, the
// surface hosting one widget per media item, and the gesture controllers.
type Wall struct {
	widget.BaseWidget

	state   *app.State
	scroll  *wallScroll
	surface *wallSurface
	items   map[string]*itemWidget

	arbiter  *gesture.Arbiter
	drag     *gesture.DragController
	pan      *gesture.PanController
	scroller *gesture.EdgeAutoScroller
}

// New creates a wall bound to the application state.
func New(state *app.State, tuning layout.Tuning) *Wall {
	w := &Wall{
		state: state,
		items: make(map[string]*itemWidget),
	}

	w.surface = newWallSurface(w)
	w.scroll = newWallScroll(w.surface)

	w.arbiter = gesture.NewArbiter()
	w.scroller = gesture.NewEdgeAutoScroller(w.scroll, state.Bounds(), tuning.ScrollMargin, tuning.ScrollStep)
	w.drag = gesture.NewDragController(w.arbiter, state.Bounds(), w.scroller, state.AllocateZ)
	w.pan = gesture.NewPanController(w.arbiter, w.scroll, state.Bounds())

	w.ExtendBaseWidget(w)
	return w
}

// ViewportSize returns the visible viewport size, or a sensible default
// before the first layout pass.
func (w *Wall) ViewportSize() geometry.Size {
	size := w.scroll.ViewSize()
	if size.Width <= 0 || size.Height <= 0 {
		return geometry.NewSize(1280, 800)
	}
	return size
}

// Reload rebuilds the item widgets from the current state: one widget per
// catalog item, positioned by its placement record. Called after every
// packing pass.
func (w *Wall) Reload() {
	w.items = make(map[string]*itemWidget)
	for _, item := range w.state.Items() {
		if _, ok := w.state.Placement(item.ID); !ok {
			continue
		}
		w.items[item.ID] = newItemWidget(w, item.ID, item.Path, item.Name)
	}
	w.resizeSurface()
	w.surface.Refresh()
}

// resizeSurface matches the surface to the canvas bounds so the scroll range
// covers the whole canvas.
func (w *Wall) resizeSurface() {
	bounds := w.state.Bounds().Size()
	w.surface.Resize(fyne.NewSize(float32(bounds.Width), float32(bounds.Height)))
	w.scroll.Refresh()
}

// Refresh refreshes the surface.
func (w *Wall) Refresh() {
	w.surface.Refresh()
	w.BaseWidget.Refresh()
}

// CreateRenderer implements fyne.Widget.
func (w *Wall) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(w.scroll)
}

// wallScroll wraps the scroll container and adapts it to gesture.Viewport,
// so the controllers can read and move the viewport.
type wallScroll struct {
	widget.BaseWidget
	scroll *container.Scroll
}

func newWallScroll(content fyne.CanvasObject) *wallScroll {
	scroll := container.NewScroll(content)
	scroll.Direction = container.ScrollBoth
	ws := &wallScroll{scroll: scroll}
	ws.ExtendBaseWidget(ws)
	return ws
}

func (ws *wallScroll) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(ws.scroll)
}

// ScrollOffset returns the current offset in canvas pixels.
func (ws *wallScroll) ScrollOffset() geometry.Point2D {
	return geometry.NewPoint2D(float64(ws.scroll.Offset.X), float64(ws.scroll.Offset.Y))
}

// SetScrollOffset moves the viewport and refreshes immediately, so scroll
// math stays consistent for the next pointer event in the same gesture.
func (ws *wallScroll) SetScrollOffset(p geometry.Point2D) {
	ws.scroll.Offset = fyne.NewPos(float32(p.X), float32(p.Y))
	ws.scroll.Refresh()
}

// ViewSize returns the visible size of the viewport.
func (ws *wallScroll) ViewSize() geometry.Size {
	size := ws.scroll.Size()
	return geometry.NewSize(float64(size.Width), float64(size.Height))
}

// Refresh refreshes the scroll container.
func (ws *wallScroll) Refresh() {
	ws.scroll.Refresh()
	ws.BaseWidget.Refresh()
}

// Resize sets the size of the scroll container.
func (ws *wallScroll) Resize(size fyne.Size) {
	ws.scroll.Resize(size)
	ws.BaseWidget.Resize(size)
}

// toFynePos converts a canvas-space point to a fyne position.
func toFynePos(p geometry.Point2D) fyne.Position {
	return fyne.NewPos(float32(p.X), float32(p.Y))
}

// fromFynePos converts a fyne position to a geometry point.
func fromFynePos(p fyne.Position) geometry.Point2D {
	return geometry.NewPoint2D(float64(p.X), float64(p.Y))
}
