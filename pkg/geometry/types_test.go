package geometry

import (
	"math"
	"testing"
)

func TestRectIntersection(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want Rect
	}{
		{
			"partial overlap",
			NewRect(0, 0, 100, 100),
			NewRect(50, 50, 100, 100),
			NewRect(50, 50, 50, 50),
		},
		{
			"contained",
			NewRect(0, 0, 100, 100),
			NewRect(25, 25, 50, 50),
			NewRect(25, 25, 50, 50),
		},
		{
			"disjoint",
			NewRect(0, 0, 100, 100),
			NewRect(200, 200, 50, 50),
			Rect{},
		},
		{
			"edge touch is empty",
			NewRect(0, 0, 100, 100),
			NewRect(100, 0, 50, 50),
			Rect{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Intersection(tt.b)
			if got != tt.want {
				t.Errorf("Intersection() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRectOverlapRatio(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want float64
	}{
		{"disjoint", NewRect(0, 0, 100, 100), NewRect(300, 0, 100, 100), 0},
		{"smaller fully inside", NewRect(0, 0, 200, 200), NewRect(10, 10, 50, 50), 1},
		{"quarter of smaller", NewRect(0, 0, 100, 100), NewRect(50, 50, 100, 100), 0.25},
		{"zero area", NewRect(0, 0, 0, 0), NewRect(0, 0, 100, 100), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.OverlapRatio(tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("OverlapRatio() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectUnion(t *testing.T) {
	a := NewRect(0, 0, 100, 100)
	b := NewRect(150, 50, 100, 100)
	got := a.Union(b)
	want := NewRect(0, 0, 250, 150)
	if got != want {
		t.Errorf("Union() = %+v, want %+v", got, want)
	}
}

func TestPointDistance(t *testing.T) {
	a := NewPoint2D(0, 0)
	b := NewPoint2D(3, 4)
	if d := a.Distance(b); d != 5 {
		t.Errorf("Distance() = %v, want 5", d)
	}
}
