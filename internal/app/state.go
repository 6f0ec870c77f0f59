// Package app provides application lifecycle management, shared state, and events.
package app

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"media-wall/internal/layout"
	"media-wall/internal/media"
	"media-wall/pkg/geometry"
)

// EventType identifies different application events.
type EventType int

const (
	EventItemsChanged EventType = iota
	EventLayoutComplete
	EventItemMoved
	EventItemSelected
	EventCanvasGrown
)

// EventListener is called when an event occurs.
type EventListener func(data interface{})

// State holds the application state: the item catalog, the authoritative
// per-item position records, and the canvas session. Placements are keyed by
// item id, never by list index; display order and position stay independent.
type State struct {
	mu sync.RWMutex

	// Catalog
	Folder string
	items  []media.ProbedItem

	// Layout session
	placements map[string]layout.Placement
	bounds     *layout.BoundsManager
	planner    *layout.Planner
	zorder     *layout.ZOrderAllocator
	stats      layout.PlanStats
	selected   string

	tuning layout.Tuning
	prober *media.Prober
	log    *log.Logger

	listeners map[EventType][]EventListener
}

// NewState creates the application state with the given layout tuning.
// A nil logger discards diagnostics.
func NewState(tuning layout.Tuning, logger *log.Logger) *State {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &State{
		placements: make(map[string]layout.Placement),
		bounds:     layout.NewBoundsManager(tuning.GrowthIncrement, tuning.GrowthBuffer),
		planner:    layout.NewPlanner(tuning, time.Now().UnixNano()),
		zorder:     layout.NewZOrderAllocator(0),
		tuning:     tuning,
		prober:     media.NewProber(logger),
		log:        logger,
		listeners:  make(map[EventType][]EventListener),
	}
}

// On registers an event listener for the specified event type.
func (s *State) On(event EventType, listener EventListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners[event] = append(s.listeners[event], listener)
}

// Emit triggers all listeners for the specified event type.
func (s *State) Emit(event EventType, data interface{}) {
	s.mu.RLock()
	listeners := s.listeners[event]
	s.mu.RUnlock()

	for _, listener := range listeners {
		listener(data)
	}
}

// OpenFolder scans a folder, probes image dimensions, and lays the items out
// for the given viewport. This replaces the item set, so the canvas session
// resets. Probes for broken files resolve to the fallback size; the scan
// itself is the only failure mode.
func (s *State) OpenFolder(dir string, viewport geometry.Size) error {
	items, err := media.ScanFolder(dir)
	if err != nil {
		return err
	}
	s.log.Info("scanned folder", "dir", dir, "items", len(items))

	probed := s.prober.ProbeAll(items)

	s.mu.Lock()
	s.Folder = dir
	s.items = probed
	s.mu.Unlock()

	s.Emit(EventItemsChanged, len(items))
	s.Relayout(viewport)
	return nil
}

// Relayout runs a fresh packing pass over the current items and resets the
// canvas session: new placements, new bounds, new stacking baseline.
func (s *State) Relayout(viewport geometry.Size) {
	s.mu.Lock()
	infos := make([]layout.ItemInfo, len(s.items))
	for i, it := range s.items {
		infos[i] = layout.NewItemInfo(it.ID, it.Width, it.Height)
	}

	plan := s.planner.Plan(infos, viewport)
	s.placements = plan.Placements
	s.stats = plan.Stats
	s.bounds.Reset(viewport)
	s.bounds.SetAtLeast(plan.Bounds)
	s.zorder = layout.NewZOrderAllocator(len(infos))
	s.mu.Unlock()

	s.log.Debug("layout complete",
		"items", plan.Stats.Items,
		"occupancy", plan.Stats.Occupancy,
		"pushed_down", plan.Stats.PushedDown)
	s.Emit(EventLayoutComplete, plan.Stats)
}

// Items returns the probed catalog in display order.
func (s *State) Items() []media.ProbedItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]media.ProbedItem, len(s.items))
	copy(items, s.items)
	return items
}

// Placement returns the position record for an item id.
func (s *State) Placement(id string) (layout.Placement, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.placements[id]
	return p, ok
}

// Placements returns a snapshot of all position records.
func (s *State) Placements() map[string]layout.Placement {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]layout.Placement, len(s.placements))
	for id, p := range s.placements {
		out[id] = p
	}
	return out
}

// Stats returns the statistics of the last packing pass.
func (s *State) Stats() layout.PlanStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stats
}

// Bounds returns the canvas bounds manager for the current session. The
// gesture controllers mutate it directly during drags.
func (s *State) Bounds() *layout.BoundsManager {
	return s.bounds
}

// AllocateZ issues the next stacking value for the current session.
func (s *State) AllocateZ() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.zorder.Allocate()
}

// CommitMove persists a completed drag: the item's new position and its fresh
// stacking value.
func (s *State) CommitMove(id string, pos geometry.Point2D, z int) {
	s.mu.Lock()
	p, ok := s.placements[id]
	if !ok {
		s.mu.Unlock()
		return
	}
	p.Rect.X = pos.X
	p.Rect.Y = pos.Y
	p.Z = z
	s.placements[id] = p
	// Occupancy shifts when a drag grew the canvas.
	s.stats = layout.StatsFor(s.placements, s.bounds.Size())
	s.mu.Unlock()

	s.Emit(EventItemMoved, id)
}

// SelectItem reports a qualifying click on an item to the selection
// collaborators (lightbox, audio, ...). Clicks that conclude a drag never
// reach here; the wall suppresses them.
func (s *State) SelectItem(id string) {
	s.mu.Lock()
	s.selected = id
	s.mu.Unlock()
	s.log.Debug("item selected", "id", id)
	s.Emit(EventItemSelected, id)
}

// SelectedItem returns the id of the currently selected item, or "".
func (s *State) SelectedItem() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selected
}
