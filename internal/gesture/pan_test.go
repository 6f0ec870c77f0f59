package gesture

import (
	"testing"

	"media-wall/pkg/geometry"
)

func TestPanNaturalDirection(t *testing.T) {
	r := newRig(geometry.NewSize(2000, 1600), geometry.NewSize(1000, 800))
	r.viewport.offset = geometry.NewPoint2D(100, 100)

	if !r.pan.Begin(geometry.NewPoint2D(500, 400)) {
		t.Fatal("Begin() = false with no session active")
	}
	// Hand moves right/down; the canvas follows, so the offset decreases.
	r.pan.Move(geometry.NewPoint2D(520, 410))

	want := geometry.NewPoint2D(80, 90)
	if r.viewport.offset != want {
		t.Errorf("offset = %+v, want %+v", r.viewport.offset, want)
	}
}

func TestPanClampsAtOrigin(t *testing.T) {
	r := newRig(geometry.NewSize(2000, 1600), geometry.NewSize(1000, 800))
	r.viewport.offset = geometry.NewPoint2D(50, 50)

	r.pan.Begin(geometry.NewPoint2D(100, 100))
	r.pan.Move(geometry.NewPoint2D(900, 700))

	if r.viewport.offset != (geometry.Point2D{}) {
		t.Errorf("offset = %+v, want clamped to origin", r.viewport.offset)
	}
}

func TestPanExclusiveWithDrag(t *testing.T) {
	r := newRig(geometry.NewSize(2000, 1600), geometry.NewSize(1000, 800))

	if !r.pan.Begin(geometry.NewPoint2D(100, 100)) {
		t.Fatal("Begin() failed")
	}
	if r.drag.Begin("a", geometry.NewPoint2D(0, 0), geometry.NewSize(100, 100), geometry.NewPoint2D(10, 10)) {
		t.Error("drag Begin() succeeded while a pan is active")
	}

	r.pan.End()
	if r.pan.Active() {
		t.Error("Active() = true after End()")
	}
	if !r.drag.Begin("a", geometry.NewPoint2D(0, 0), geometry.NewSize(100, 100), geometry.NewPoint2D(10, 10)) {
		t.Error("drag Begin() failed after the pan ended")
	}
}

func TestPanMoveWithoutSession(t *testing.T) {
	r := newRig(geometry.NewSize(2000, 1600), geometry.NewSize(1000, 800))
	r.viewport.offset = geometry.NewPoint2D(100, 100)

	if r.pan.Move(geometry.NewPoint2D(500, 400)) {
		t.Error("Move() = true with no session")
	}
	if r.viewport.offset != geometry.NewPoint2D(100, 100) {
		t.Errorf("offset = %+v, want untouched", r.viewport.offset)
	}
}
