// Package layout computes and maintains the freeform wall layout: the
// size-varied packing planner, the growable canvas bounds, and the
// stacking-order allocator.
package layout

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// SizeBucket defines one visual size class for placed items. Target areas are
// fractions of the viewport area so the same tuning works at any window size.
type SizeBucket struct {
	Name         string  `toml:"name"`
	Weight       float64 `toml:"weight"`
	MinAreaFrac  float64 `toml:"min_area_frac"`
	MaxAreaFrac  float64 `toml:"max_area_frac"`
	MaxWidthFrac float64 `toml:"max_width_frac"`
}

// Tuning holds the adjustable parameters of the packing planner and the
// interactive canvas. The defaults are used unless a tuning file overrides
// them.
type Tuning struct {
	Buckets []SizeBucket `toml:"bucket"`

	// Packing
	OverlapLimit float64 `toml:"overlap_limit"` // max overlap as fraction of smaller box
	GridStep     float64 `toml:"grid_step"`     // candidate grid spacing, px
	RandomProbes int     `toml:"random_probes"` // probe attempts after grid scan fails
	Margin       float64 `toml:"margin"`        // canvas margin around the packed extent, px
	MinDimension float64 `toml:"min_dimension"` // absolute size floor per axis, px
	MaxAspect    float64 `toml:"max_aspect"`    // aspect ratios clamped to [1/MaxAspect, MaxAspect]

	// Canvas growth
	GrowthIncrement float64 `toml:"growth_increment"` // px added per growth event
	GrowthBuffer    float64 `toml:"growth_buffer"`    // slack kept beyond the dragged item, px

	// Edge auto-scroll
	ScrollMargin float64 `toml:"scroll_margin"` // distance from a viewport edge that triggers scrolling, px
	ScrollStep   float64 `toml:"scroll_step"`   // px scrolled per pointer event
}

// DefaultTuning returns the built-in parameters.
func DefaultTuning() Tuning {
	return Tuning{
		Buckets: []SizeBucket{
			{Name: "showcase", Weight: 0.15, MinAreaFrac: 0.060, MaxAreaFrac: 0.110, MaxWidthFrac: 0.45},
			{Name: "large", Weight: 0.20, MinAreaFrac: 0.035, MaxAreaFrac: 0.060, MaxWidthFrac: 0.35},
			{Name: "medium", Weight: 0.30, MinAreaFrac: 0.020, MaxAreaFrac: 0.035, MaxWidthFrac: 0.28},
			{Name: "small-medium", Weight: 0.20, MinAreaFrac: 0.012, MaxAreaFrac: 0.020, MaxWidthFrac: 0.22},
			{Name: "accent", Weight: 0.15, MinAreaFrac: 0.007, MaxAreaFrac: 0.012, MaxWidthFrac: 0.16},
		},
		OverlapLimit:    0.15,
		GridStep:        40,
		RandomProbes:    200,
		Margin:          120,
		MinDimension:    100,
		MaxAspect:       3.0,
		GrowthIncrement: 400,
		GrowthBuffer:    200,
		ScrollMargin:    100,
		ScrollStep:      16,
	}
}

// LoadTuning reads a TOML tuning file and merges it over the defaults.
// A missing file is not an error; the defaults are returned.
func LoadTuning(path string) (Tuning, error) {
	t := DefaultTuning()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return t, nil
	}

	// Custom bucket lists fully replace the defaults.
	var loaded Tuning
	if _, err := toml.DecodeFile(path, &loaded); err != nil {
		return t, fmt.Errorf("failed to parse tuning file %s: %w", path, err)
	}
	if len(loaded.Buckets) > 0 {
		t.Buckets = loaded.Buckets
	}
	if loaded.OverlapLimit > 0 {
		t.OverlapLimit = loaded.OverlapLimit
	}
	if loaded.GridStep > 0 {
		t.GridStep = loaded.GridStep
	}
	if loaded.RandomProbes > 0 {
		t.RandomProbes = loaded.RandomProbes
	}
	if loaded.Margin > 0 {
		t.Margin = loaded.Margin
	}
	if loaded.MinDimension > 0 {
		t.MinDimension = loaded.MinDimension
	}
	if loaded.MaxAspect > 1 {
		t.MaxAspect = loaded.MaxAspect
	}
	if loaded.GrowthIncrement > 0 {
		t.GrowthIncrement = loaded.GrowthIncrement
	}
	if loaded.GrowthBuffer > 0 {
		t.GrowthBuffer = loaded.GrowthBuffer
	}
	if loaded.ScrollMargin > 0 {
		t.ScrollMargin = loaded.ScrollMargin
	}
	if loaded.ScrollStep > 0 {
		t.ScrollStep = loaded.ScrollStep
	}

	if err := t.validate(); err != nil {
		return DefaultTuning(), err
	}
	return t, nil
}

func (t Tuning) validate() error {
	var total float64
	for _, b := range t.Buckets {
		if b.Weight < 0 {
			return fmt.Errorf("bucket %q has negative weight", b.Name)
		}
		if b.MaxAreaFrac < b.MinAreaFrac {
			return fmt.Errorf("bucket %q has max_area_frac below min_area_frac", b.Name)
		}
		total += b.Weight
	}
	if total <= 0 {
		return fmt.Errorf("bucket weights sum to %v, need a positive total", total)
	}
	return nil
}
