package layout

// ZOrderAllocator issues monotonically increasing stacking-order values, so
// the most recently committed item always renders above everything else.
type ZOrderAllocator struct {
	next int
}

// NewZOrderAllocator creates an allocator seeded above the static base
// assignment: pass the number of items, whose planner-assigned z values are
// 0..n-1.
func NewZOrderAllocator(base int) *ZOrderAllocator {
	return &ZOrderAllocator{next: base}
}

// Allocate returns a value strictly greater than every value returned before
// it and every static base value.
func (a *ZOrderAllocator) Allocate() int {
	z := a.next
	a.next++
	return z
}
