package wall

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"media-wall/internal/app"
	"media-wall/pkg/colorutil"
	"media-wall/pkg/geometry"
)

// itemWidget displays one media item on the wall. A primary-button drag
// repositions it; a drag with any other button, or with Ctrl held, pans the
// viewport instead; a tap selects it.
type itemWidget struct {
	widget.BaseWidget

	wall *Wall
	id   string
	name string
	img  *canvas.Image

	dragging bool
	panning  bool

	// Pointer position in viewport space, accumulated from drag deltas.
	pointer geometry.Point2D

	nonPrimary bool
	ctrlHeld   bool
}

func newItemWidget(w *Wall, id, path, name string) *itemWidget {
	img := canvas.NewImageFromFile(path)
	img.FillMode = canvas.ImageFillContain
	img.ScaleMode = canvas.ImageScaleFastest
	it := &itemWidget{wall: w, id: id, name: name, img: img}
	it.ExtendBaseWidget(it)
	return it
}

// MouseDown records the button and modifier so the first drag event can be
// routed to the right controller. A fresh press also ends the post-drag
// click suppression window: whatever this gesture turns out to be, it is not
// the tail of the previous drag.
func (it *itemWidget) MouseDown(ev *desktop.MouseEvent) {
	it.wall.drag.ConsumeRecentDrag()
	it.nonPrimary = ev.Button != desktop.MouseButtonPrimary
	it.ctrlHeld = ev.Modifier&fyne.KeyModifierControl != 0
}

// MouseUp implements desktop.Mouseable.
func (it *itemWidget) MouseUp(*desktop.MouseEvent) {}

// canvasPointer converts the accumulated viewport pointer to canvas space.
func (it *itemWidget) canvasPointer() geometry.Point2D {
	return it.pointer.Add(it.wall.scroll.ScrollOffset())
}

// Dragged starts or advances a drag or pan session. The opening event's
// delta is folded into the first advance so the item tracks the pointer from
// the very first event.
func (it *itemWidget) Dragged(ev *fyne.DragEvent) {
	delta := geometry.NewPoint2D(float64(ev.Dragged.DX), float64(ev.Dragged.DY))
	if !it.dragging && !it.panning && !it.beginGesture(ev, delta) {
		return
	}

	it.pointer = it.pointer.Add(delta)

	if it.panning {
		it.wall.pan.Move(it.pointer)
		return
	}

	candidate, grew, ok := it.wall.drag.Move(it.canvasPointer(), it.pointer)
	if !ok {
		return
	}
	// Move directly for low latency; the placement record updates on commit.
	it.Move(toFynePos(candidate))
	if grew {
		it.wall.resizeSurface()
		it.wall.state.Emit(app.EventCanvasGrown, it.wall.state.Bounds().Size())
	}
}

// beginGesture opens a drag or pan session at the press position. The first
// drag event arrives with its motion already applied, so the press point is
// recovered by backing out the event's delta; the caller then folds the
// delta back in through the normal advance path.
func (it *itemWidget) beginGesture(ev *fyne.DragEvent, delta geometry.Point2D) bool {
	itemPos := fromFynePos(it.Position())
	grab := fromFynePos(ev.Position).Sub(delta)
	pointerCanvas := itemPos.Add(grab)
	it.pointer = pointerCanvas.Sub(it.wall.scroll.ScrollOffset())

	if it.nonPrimary || it.ctrlHeld {
		if !it.wall.pan.Begin(it.pointer) {
			return false
		}
		it.panning = true
		return true
	}

	size := it.Size()
	itemSize := geometry.NewSize(float64(size.Width), float64(size.Height))
	if !it.wall.drag.Begin(it.id, itemPos, itemSize, pointerCanvas) {
		return false
	}
	it.dragging = true
	return true
}

// DragEnd commits a drag to the state, or closes a pan session.
func (it *itemWidget) DragEnd() {
	if it.panning {
		it.wall.pan.End()
		it.panning = false
		return
	}
	if !it.dragging {
		return
	}
	it.dragging = false
	commit, ok := it.wall.drag.End()
	if !ok {
		return
	}
	it.wall.state.CommitMove(commit.ItemID, commit.Pos, commit.Z)
	// Restack so the committed item draws above everything else.
	it.wall.surface.Refresh()
}

// Tapped selects the item unless the tap is the tail of a drag.
func (it *itemWidget) Tapped(*fyne.PointEvent) {
	if it.wall.drag.ConsumeRecentDrag() {
		return
	}
	it.wall.state.SelectItem(it.id)
	// Refresh the whole surface so the previous selection clears its frame.
	it.wall.surface.Refresh()
}

// Cursor shows a pointer over draggable items.
func (it *itemWidget) Cursor() desktop.Cursor {
	return desktop.PointerCursor
}

// CreateRenderer implements fyne.Widget.
func (it *itemWidget) CreateRenderer() fyne.WidgetRenderer {
	// Visible while the image decodes, or when it never does.
	backdrop := canvas.NewRectangle(colorutil.TintForName(it.name))
	frame := canvas.NewRectangle(color.Transparent)
	frame.StrokeColor = theme.ShadowColor()
	frame.StrokeWidth = 1
	return &itemRenderer{item: it, backdrop: backdrop, frame: frame}
}

type itemRenderer struct {
	item     *itemWidget
	backdrop *canvas.Rectangle
	frame    *canvas.Rectangle
}

func (r *itemRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.backdrop, r.item.img, r.frame}
}

func (r *itemRenderer) Layout(size fyne.Size) {
	r.backdrop.Resize(size)
	r.item.img.Resize(size)
	r.frame.Resize(size)
}

func (r *itemRenderer) MinSize() fyne.Size {
	return fyne.NewSize(32, 32)
}

func (r *itemRenderer) Refresh() {
	if r.item.wall.state.SelectedItem() == r.item.id {
		r.frame.StrokeColor = theme.PrimaryColor()
		r.frame.StrokeWidth = 2
	} else {
		r.frame.StrokeColor = theme.ShadowColor()
		r.frame.StrokeWidth = 1
	}
	r.frame.Refresh()
	canvas.Refresh(r.item)
}

func (r *itemRenderer) Destroy() {}
