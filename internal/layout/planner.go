package layout

import (
	"math"
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/stat"

	"media-wall/pkg/geometry"
)

// ItemInfo is the planner's view of a media item: its identity and the pixel
// dimensions reported by the dimension probe (or its fallback).
type ItemInfo struct {
	ID          string
	PixelWidth  float64
	PixelHeight float64
}

// NewItemInfo builds an ItemInfo from probed pixel dimensions.
func NewItemInfo(id string, pixelWidth, pixelHeight int) ItemInfo {
	return ItemInfo{
		ID:          id,
		PixelWidth:  float64(pixelWidth),
		PixelHeight: float64(pixelHeight),
	}
}

// Placement is the working position record for one item. Placements are keyed
// by item id, never by slice index: the display order and the identity-keyed
// position must stay independent.
type Placement struct {
	ItemID string
	Rect   geometry.Rect
	Z      int
}

// PlanStats summarizes a packing pass for the status bar and preview tool.
type PlanStats struct {
	Items       int
	MeanArea    float64
	StdDevArea  float64
	Occupancy   float64 // total item area over canvas area, overlap ignored
	GridPlaced  int
	ProbePlaced int
	PushedDown  int // items seated by the guaranteed below-everything fallback
}

// Plan is the output of one packing pass.
type Plan struct {
	Placements map[string]Placement
	Bounds     geometry.Size
	Stats      PlanStats
}

// StatsFor summarizes an arbitrary placement set, for arrangements restored
// from disk rather than produced by a packing pass. Method counts stay zero.
func StatsFor(placements map[string]Placement, canvas geometry.Size) PlanStats {
	areas := make([]float64, 0, len(placements))
	total := 0.0
	for _, p := range placements {
		a := p.Rect.Area()
		areas = append(areas, a)
		total += a
	}
	stats := PlanStats{Items: len(placements)}
	if len(areas) > 0 {
		stats.MeanArea = stat.Mean(areas, nil)
		stats.StdDevArea = stat.StdDev(areas, nil)
	}
	if canvas.Area() > 0 {
		stats.Occupancy = total / canvas.Area()
	}
	return stats
}

// SortedByZ returns the placements ordered bottom to top.
func (p *Plan) SortedByZ() []Placement {
	out := make([]Placement, 0, len(p.Placements))
	for _, placement := range p.Placements {
		out = append(out, placement)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Z < out[j].Z })
	return out
}

// Planner computes an initial placement for every item using a size-varied,
// largest-first packing heuristic. A Planner is not safe for concurrent use;
// each call reshuffles, so repeated calls with the same input produce
// different (equally valid) layouts.
type Planner struct {
	tuning Tuning
	rng    *rand.Rand
}

// NewPlanner creates a planner with the given tuning and random seed. A
// tuning with no size buckets falls back to the defaults.
func NewPlanner(tuning Tuning, seed int64) *Planner {
	if len(tuning.Buckets) == 0 {
		tuning = DefaultTuning()
	}
	return &Planner{
		tuning: tuning,
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// sized is an item with its drawn bucket converted to concrete dimensions.
type sized struct {
	id   string
	size geometry.Size
}

// Plan places every item on the canvas. The result encloses all placements
// plus the configured margin and is never smaller than the viewport.
func (p *Planner) Plan(items []ItemInfo, viewport geometry.Size) *Plan {
	if viewport.Width <= 0 || viewport.Height <= 0 {
		viewport = geometry.NewSize(1280, 800)
	}

	plan := &Plan{
		Placements: make(map[string]Placement, len(items)),
		Bounds:     viewport,
	}
	if len(items) == 0 {
		return plan
	}

	// Shuffle so catalog order carries no positional bias.
	shuffled := make([]ItemInfo, len(items))
	copy(shuffled, items)
	p.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	// Draw a size bucket per item and convert target area + aspect ratio
	// into concrete dimensions.
	sizes := make([]sized, len(shuffled))
	for i, it := range shuffled {
		sizes[i] = sized{id: it.ID, size: p.sizeFor(it, viewport)}
	}

	// Largest first: the hardest items to seat go while the most free
	// space remains.
	sort.SliceStable(sizes, func(i, j int) bool {
		return sizes[i].size.Area() > sizes[j].size.Area()
	})

	placed := make([]geometry.Rect, 0, len(sizes))
	areas := make([]float64, 0, len(sizes))
	working := viewport
	var maxRight, maxBottom float64

	for i, s := range sizes {
		rect, how := p.place(s.size, placed, working)
		placed = append(placed, rect)
		areas = append(areas, rect.Area())

		switch how {
		case placedByGrid:
			plan.Stats.GridPlaced++
		case placedByProbe:
			plan.Stats.ProbePlaced++
		case placedBelow:
			plan.Stats.PushedDown++
		}

		br := rect.BottomRight()
		maxRight = math.Max(maxRight, br.X)
		maxBottom = math.Max(maxBottom, br.Y)
		// Later items may use the area opened up by a below-everything
		// placement.
		working.Height = math.Max(working.Height, br.Y)

		plan.Placements[s.id] = Placement{ItemID: s.id, Rect: rect, Z: i}
	}

	plan.Bounds = geometry.NewSize(
		math.Max(maxRight+p.tuning.Margin, viewport.Width),
		math.Max(maxBottom+p.tuning.Margin, viewport.Height),
	)

	plan.Stats.Items = len(sizes)
	plan.Stats.MeanArea = stat.Mean(areas, nil)
	plan.Stats.StdDevArea = stat.StdDev(areas, nil)
	var total float64
	for _, a := range areas {
		total += a
	}
	plan.Stats.Occupancy = total / plan.Bounds.Area()

	return plan
}

// sizeFor draws a size bucket and converts it into concrete dimensions for
// the item's aspect ratio.
func (p *Planner) sizeFor(it ItemInfo, viewport geometry.Size) geometry.Size {
	bucket := p.drawBucket()

	targetArea := viewport.Area() * (bucket.MinAreaFrac +
		p.rng.Float64()*(bucket.MaxAreaFrac-bucket.MinAreaFrac))

	// Clamp extreme aspect ratios so no item becomes a sliver.
	aspect := 1.0
	if it.PixelWidth > 0 && it.PixelHeight > 0 {
		aspect = it.PixelWidth / it.PixelHeight
	}
	aspect = math.Min(math.Max(aspect, 1/p.tuning.MaxAspect), p.tuning.MaxAspect)

	w := math.Sqrt(targetArea * aspect)
	h := w / aspect

	// Cap against the bucket's width fraction of the viewport.
	if maxW := bucket.MaxWidthFrac * viewport.Width; w > maxW {
		w = maxW
		h = w / aspect
	}

	// Absolute floor per axis.
	w = math.Max(w, p.tuning.MinDimension)
	h = math.Max(h, p.tuning.MinDimension)

	return geometry.NewSize(w, h)
}

// drawBucket picks a size bucket by cumulative weight.
func (p *Planner) drawBucket() SizeBucket {
	var total float64
	for _, b := range p.tuning.Buckets {
		total += b.Weight
	}
	draw := p.rng.Float64() * total
	for _, b := range p.tuning.Buckets {
		draw -= b.Weight
		if draw < 0 {
			return b
		}
	}
	return p.tuning.Buckets[len(p.tuning.Buckets)-1]
}

type placementMethod int

const (
	placedByGrid placementMethod = iota
	placedByProbe
	placedBelow
)

// place finds a position for one item: raster grid scan first, bounded random
// probes second, below the lowest occupied point as the guaranteed fallback.
func (p *Planner) place(size geometry.Size, placed []geometry.Rect, working geometry.Size) (geometry.Rect, placementMethod) {
	step := p.tuning.GridStep

	maxX := math.Max(working.Width-size.Width, 0)
	maxY := math.Max(working.Height-size.Height, 0)

	for y := 0.0; y <= maxY; y += step {
		for x := 0.0; x <= maxX; x += step {
			candidate := geometry.RectAt(geometry.NewPoint2D(x, y), size)
			if p.fits(candidate, placed) {
				return candidate, placedByGrid
			}
		}
	}

	for i := 0; i < p.tuning.RandomProbes; i++ {
		x := p.rng.Float64() * maxX
		y := p.rng.Float64() * maxY
		candidate := geometry.RectAt(geometry.NewPoint2D(x, y), size)
		if p.fits(candidate, placed) {
			return candidate, placedByProbe
		}
	}

	// Guaranteed no-overlap fallback: seat the item below everything
	// placed so far.
	var lowest float64
	for _, r := range placed {
		lowest = math.Max(lowest, r.BottomRight().Y)
	}
	x := 0.0
	if maxX > 0 {
		x = p.rng.Float64() * maxX
	}
	return geometry.RectAt(geometry.NewPoint2D(x, lowest+step), size), placedBelow
}

// fits reports whether the candidate's overlap with every placed box stays
// within the tuned limit, measured against the smaller of the two boxes.
func (p *Planner) fits(candidate geometry.Rect, placed []geometry.Rect) bool {
	for _, r := range placed {
		if candidate.OverlapRatio(r) > p.tuning.OverlapLimit {
			return false
		}
	}
	return true
}
