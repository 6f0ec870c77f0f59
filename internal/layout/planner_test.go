package layout

import (
	"fmt"
	"testing"

	"media-wall/pkg/geometry"
)

const overlapTolerance = 1e-9

func testItems(n int) []ItemInfo {
	items := make([]ItemInfo, n)
	for i := range items {
		// A mix of landscape, portrait, and square sources.
		w, h := 1600.0, 1200.0
		switch i % 3 {
		case 1:
			w, h = 900, 1600
		case 2:
			w, h = 1000, 1000
		}
		items[i] = ItemInfo{ID: fmt.Sprintf("item-%02d", i), PixelWidth: w, PixelHeight: h}
	}
	return items
}

func checkOverlapBound(t *testing.T, plan *Plan, limit float64) {
	t.Helper()
	rects := make([]Placement, 0, len(plan.Placements))
	for _, pl := range plan.Placements {
		rects = append(rects, pl)
	}
	for i := 0; i < len(rects); i++ {
		for j := i + 1; j < len(rects); j++ {
			ratio := rects[i].Rect.OverlapRatio(rects[j].Rect)
			if ratio > limit+overlapTolerance {
				t.Errorf("items %s and %s overlap by %.3f of the smaller box, limit %.2f",
					rects[i].ItemID, rects[j].ItemID, ratio, limit)
			}
		}
	}
}

func TestPlanEmptyInput(t *testing.T) {
	p := NewPlanner(DefaultTuning(), 1)
	viewport := geometry.NewSize(1000, 800)

	plan := p.Plan(nil, viewport)

	if len(plan.Placements) != 0 {
		t.Errorf("Plan(nil) produced %d placements, want 0", len(plan.Placements))
	}
	if plan.Bounds != viewport {
		t.Errorf("Plan(nil) bounds = %+v, want viewport %+v", plan.Bounds, viewport)
	}
}

func TestPlanThreeItemScenario(t *testing.T) {
	p := NewPlanner(DefaultTuning(), 42)
	viewport := geometry.NewSize(1000, 800)
	items := testItems(3)

	plan := p.Plan(items, viewport)

	if len(plan.Placements) != 3 {
		t.Fatalf("Plan() produced %d placements, want 3", len(plan.Placements))
	}
	for _, it := range items {
		pl, ok := plan.Placements[it.ID]
		if !ok {
			t.Fatalf("no placement for %s", it.ID)
		}
		if pl.Rect.Width < 100 || pl.Rect.Height < 100 {
			t.Errorf("%s sized %.0fx%.0f, want both axes >= 100",
				it.ID, pl.Rect.Width, pl.Rect.Height)
		}
		br := pl.Rect.BottomRight()
		if pl.Rect.X < 0 || pl.Rect.Y < 0 || br.X > plan.Bounds.Width || br.Y > plan.Bounds.Height {
			t.Errorf("%s at %+v escapes bounds %+v", it.ID, pl.Rect, plan.Bounds)
		}
	}
	checkOverlapBound(t, plan, DefaultTuning().OverlapLimit)
}

func TestPlanOverlapBoundManyItems(t *testing.T) {
	for _, seed := range []int64{1, 7, 99} {
		t.Run(fmt.Sprintf("seed-%d", seed), func(t *testing.T) {
			p := NewPlanner(DefaultTuning(), seed)
			plan := p.Plan(testItems(40), geometry.NewSize(1400, 900))

			if len(plan.Placements) != 40 {
				t.Fatalf("Plan() produced %d placements, want 40", len(plan.Placements))
			}
			checkOverlapBound(t, plan, DefaultTuning().OverlapLimit)
		})
	}
}

func TestPlanBoundsEncloseEverything(t *testing.T) {
	p := NewPlanner(DefaultTuning(), 3)
	plan := p.Plan(testItems(25), geometry.NewSize(900, 700))

	for id, pl := range plan.Placements {
		br := pl.Rect.BottomRight()
		if br.X > plan.Bounds.Width || br.Y > plan.Bounds.Height {
			t.Errorf("%s bottom-right %+v outside bounds %+v", id, br, plan.Bounds)
		}
	}
	if plan.Bounds.Width < 900 || plan.Bounds.Height < 700 {
		t.Errorf("bounds %+v smaller than viewport", plan.Bounds)
	}
}

func TestPlanUnknownDimensions(t *testing.T) {
	// Items whose probe failed arrive with zero pixel dimensions; they must
	// still be placed, at square aspect.
	p := NewPlanner(DefaultTuning(), 5)
	items := []ItemInfo{
		{ID: "known", PixelWidth: 1600, PixelHeight: 900},
		{ID: "unknown"},
	}

	plan := p.Plan(items, geometry.NewSize(1000, 800))

	pl, ok := plan.Placements["unknown"]
	if !ok {
		t.Fatal("item with unknown dimensions was omitted from the plan")
	}
	if pl.Rect.Width < 100 || pl.Rect.Height < 100 {
		t.Errorf("unknown item sized %.0fx%.0f, want both axes >= 100", pl.Rect.Width, pl.Rect.Height)
	}
}

func TestPlanAspectClamp(t *testing.T) {
	p := NewPlanner(DefaultTuning(), 11)
	items := []ItemInfo{{ID: "sliver", PixelWidth: 5000, PixelHeight: 10}}

	plan := p.Plan(items, geometry.NewSize(1000, 800))

	pl := plan.Placements["sliver"]
	ratio := pl.Rect.Width / pl.Rect.Height
	if ratio > DefaultTuning().MaxAspect+overlapTolerance {
		t.Errorf("aspect ratio %.2f exceeds clamp %.2f", ratio, DefaultTuning().MaxAspect)
	}
}

func TestPlanBaseZValues(t *testing.T) {
	p := NewPlanner(DefaultTuning(), 8)
	plan := p.Plan(testItems(10), geometry.NewSize(1200, 900))

	seen := make(map[int]bool)
	for id, pl := range plan.Placements {
		if pl.Z < 0 || pl.Z >= 10 {
			t.Errorf("%s has base z %d, want 0..9", id, pl.Z)
		}
		if seen[pl.Z] {
			t.Errorf("duplicate base z %d", pl.Z)
		}
		seen[pl.Z] = true
	}
}

func TestNewItemInfo(t *testing.T) {
	info := NewItemInfo("a", 400, 300)
	if info.ID != "a" {
		t.Errorf("ID = %q, want %q", info.ID, "a")
	}
	if info.PixelWidth != 400 || info.PixelHeight != 300 {
		t.Errorf("dimensions = %vx%v, want 400x300", info.PixelWidth, info.PixelHeight)
	}
}

func TestPlannerZeroTuning(t *testing.T) {
	// A zero-value tuning has no size buckets; the planner must fall back to
	// the defaults instead of panicking on the bucket draw.
	p := NewPlanner(Tuning{}, 3)
	plan := p.Plan(testItems(3), geometry.NewSize(1000, 800))

	if len(plan.Placements) != 3 {
		t.Fatalf("placed %d items with zero tuning, want 3", len(plan.Placements))
	}
	for id, pl := range plan.Placements {
		if pl.Rect.Width < DefaultTuning().MinDimension || pl.Rect.Height < DefaultTuning().MinDimension {
			t.Errorf("%s sized %.0fx%.0f, want default size floor", id, pl.Rect.Width, pl.Rect.Height)
		}
	}
}

func TestStatsFor(t *testing.T) {
	placements := map[string]Placement{
		"a": {ItemID: "a", Rect: geometry.NewRect(0, 0, 100, 100), Z: 0},
		"b": {ItemID: "b", Rect: geometry.NewRect(200, 0, 100, 300), Z: 1},
	}
	stats := StatsFor(placements, geometry.NewSize(1000, 1000))

	if stats.Items != 2 {
		t.Errorf("Items = %d, want 2", stats.Items)
	}
	if got, want := stats.MeanArea, 20000.0; got != want {
		t.Errorf("MeanArea = %v, want %v", got, want)
	}
	if got, want := stats.Occupancy, 0.04; got != want {
		t.Errorf("Occupancy = %v, want %v", got, want)
	}

	empty := StatsFor(nil, geometry.NewSize(1000, 1000))
	if empty.Items != 0 || empty.MeanArea != 0 {
		t.Errorf("empty stats = %+v, want zero values", empty)
	}
}

func TestPlanSortedByZ(t *testing.T) {
	p := NewPlanner(DefaultTuning(), 8)
	plan := p.Plan(testItems(10), geometry.NewSize(1200, 900))

	ordered := plan.SortedByZ()
	if len(ordered) != 10 {
		t.Fatalf("SortedByZ returned %d placements, want 10", len(ordered))
	}
	for i := 1; i < len(ordered); i++ {
		if ordered[i].Z <= ordered[i-1].Z {
			t.Errorf("z not strictly increasing at %d: %d then %d", i, ordered[i-1].Z, ordered[i].Z)
		}
	}
}

func TestPlanStats(t *testing.T) {
	p := NewPlanner(DefaultTuning(), 21)
	plan := p.Plan(testItems(12), geometry.NewSize(1200, 900))

	if plan.Stats.Items != 12 {
		t.Errorf("Stats.Items = %d, want 12", plan.Stats.Items)
	}
	if plan.Stats.MeanArea <= 0 {
		t.Errorf("Stats.MeanArea = %v, want > 0", plan.Stats.MeanArea)
	}
	if plan.Stats.Occupancy <= 0 || plan.Stats.Occupancy > 1.5 {
		t.Errorf("Stats.Occupancy = %v, want a plausible density", plan.Stats.Occupancy)
	}
	if got := plan.Stats.GridPlaced + plan.Stats.ProbePlaced + plan.Stats.PushedDown; got != 12 {
		t.Errorf("placement method counts sum to %d, want 12", got)
	}
}

func TestPlanRandomizedPerCall(t *testing.T) {
	// Callers must not depend on identical placement across calls: each pass
	// reshuffles. With one planner, two passes over the same items should
	// differ somewhere.
	p := NewPlanner(DefaultTuning(), 17)
	items := testItems(15)
	viewport := geometry.NewSize(1200, 900)

	a := p.Plan(items, viewport)
	b := p.Plan(items, viewport)

	same := true
	for id, pl := range a.Placements {
		if b.Placements[id].Rect != pl.Rect {
			same = false
			break
		}
	}
	if same {
		t.Error("two consecutive passes produced identical placements")
	}
}
