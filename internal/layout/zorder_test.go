package layout

import "testing"

func TestZOrderStrictlyIncreasing(t *testing.T) {
	a := NewZOrderAllocator(10)

	prev := -1
	for i := 0; i < 100; i++ {
		z := a.Allocate()
		if z <= prev {
			t.Fatalf("Allocate() = %d after %d, want strictly increasing", z, prev)
		}
		prev = z
	}
}

func TestZOrderSeededAboveBase(t *testing.T) {
	// Static base assignments occupy 0..n-1; the first allocation must beat
	// all of them.
	const n = 7
	a := NewZOrderAllocator(n)

	if z := a.Allocate(); z < n {
		t.Errorf("first Allocate() = %d, want >= %d", z, n)
	}
}
