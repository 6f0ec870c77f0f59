package gesture

import (
	"media-wall/internal/layout"
	"media-wall/pkg/geometry"
)

// fakeViewport is a minimal Viewport for driving the controllers headlessly.
type fakeViewport struct {
	offset geometry.Point2D
	view   geometry.Size
}

func (f *fakeViewport) ScrollOffset() geometry.Point2D     { return f.offset }
func (f *fakeViewport) SetScrollOffset(p geometry.Point2D) { f.offset = p }
func (f *fakeViewport) ViewSize() geometry.Size            { return f.view }

// rig assembles the controller set the widget layer would normally build.
type rig struct {
	arbiter  *Arbiter
	bounds   *layout.BoundsManager
	viewport *fakeViewport
	scroller *EdgeAutoScroller
	drag     *DragController
	pan      *PanController
	zorder   *layout.ZOrderAllocator
}

func newRig(canvas, view geometry.Size) *rig {
	r := &rig{
		arbiter:  NewArbiter(),
		bounds:   layout.NewBoundsManager(400, 200),
		viewport: &fakeViewport{view: view},
		zorder:   layout.NewZOrderAllocator(10),
	}
	r.bounds.Reset(canvas)
	r.scroller = NewEdgeAutoScroller(r.viewport, r.bounds, 100, 16)
	r.drag = NewDragController(r.arbiter, r.bounds, r.scroller, r.zorder.Allocate)
	r.pan = NewPanController(r.arbiter, r.viewport, r.bounds)
	return r
}
