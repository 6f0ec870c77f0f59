package wall

import (
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"media-wall/pkg/geometry"
)

// wallSurface is the canvas-sized widget the item widgets live on. Dragging
// its empty background pans the viewport.
type wallSurface struct {
	widget.BaseWidget

	wall *Wall

	panning bool
	pointer geometry.Point2D
}

func newWallSurface(w *Wall) *wallSurface {
	s := &wallSurface{wall: w}
	s.ExtendBaseWidget(s)
	return s
}

// Dragged pans the viewport. The running pointer position is accumulated
// from drag deltas so it tracks physical pointer motion even while the
// viewport itself is moving; the opening event's delta is folded into the
// first advance.
func (s *wallSurface) Dragged(ev *fyne.DragEvent) {
	delta := geometry.NewPoint2D(float64(ev.Dragged.DX), float64(ev.Dragged.DY))
	if !s.panning {
		start := fromFynePos(ev.Position).Sub(delta)
		if !s.wall.pan.Begin(start) {
			return
		}
		s.panning = true
		s.pointer = start
	}
	s.pointer = s.pointer.Add(delta)
	s.wall.pan.Move(s.pointer)
}

// DragEnd finishes a pan session.
func (s *wallSurface) DragEnd() {
	if s.panning {
		s.wall.pan.End()
		s.panning = false
	}
}

// Tapped on empty background clears nothing, but swallows the event so it
// does not bubble to the window.
func (s *wallSurface) Tapped(*fyne.PointEvent) {}

// Cursor shows a pointer cursor while panning.
func (s *wallSurface) Cursor() desktop.Cursor {
	if s.panning {
		return desktop.PointerCursor
	}
	return desktop.DefaultCursor
}

// CreateRenderer implements fyne.Widget.
func (s *wallSurface) CreateRenderer() fyne.WidgetRenderer {
	background := canvas.NewRectangle(theme.BackgroundColor())
	return &wallSurfaceRenderer{surface: s, background: background}
}

// wallSurfaceRenderer lays the item widgets out at their placement
// coordinates and stacks them by z order, most recent last (topmost).
type wallSurfaceRenderer struct {
	surface    *wallSurface
	background *canvas.Rectangle
}

func (r *wallSurfaceRenderer) orderedItems() []*itemWidget {
	wall := r.surface.wall
	items := make([]*itemWidget, 0, len(wall.items))
	for _, item := range wall.items {
		items = append(items, item)
	}
	placements := wall.state.Placements()
	sort.Slice(items, func(i, j int) bool {
		return placements[items[i].id].Z < placements[items[j].id].Z
	})
	return items
}

func (r *wallSurfaceRenderer) Objects() []fyne.CanvasObject {
	items := r.orderedItems()
	objects := make([]fyne.CanvasObject, 0, len(items)+1)
	objects = append(objects, r.background)
	for _, item := range items {
		objects = append(objects, item)
	}
	return objects
}

func (r *wallSurfaceRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	wall := r.surface.wall
	for id, item := range wall.items {
		// A drag in progress owns its widget position until commit.
		if wall.drag.Active() && wall.drag.DragItemID() == id {
			continue
		}
		placement, ok := wall.state.Placement(id)
		if !ok {
			continue
		}
		item.Move(toFynePos(placement.Rect.TopLeft()))
		item.Resize(fyne.NewSize(float32(placement.Rect.Width), float32(placement.Rect.Height)))
	}
}

func (r *wallSurfaceRenderer) MinSize() fyne.Size {
	bounds := r.surface.wall.state.Bounds().Size()
	return fyne.NewSize(float32(bounds.Width), float32(bounds.Height))
}

func (r *wallSurfaceRenderer) Refresh() {
	r.background.FillColor = theme.BackgroundColor()
	r.background.Refresh()
	r.Layout(r.surface.Size())
	// Selection highlights live on the item frames.
	for _, item := range r.surface.wall.items {
		item.Refresh()
	}
	canvas.Refresh(r.surface)
}

func (r *wallSurfaceRenderer) Destroy() {}
