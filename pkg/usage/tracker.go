// Package usage tracks the mutable user state over the icon catalog:
// the favorites list, per-icon usage counts, and the bounded
// most-recent-first list of recently used icons.
//
// All mutations run as a single critical section behind the tracker's
// mutex, which also covers the IsFavorite/UsageCount mirror fields on
// the catalog records, so readers never observe the tracker and the
// mirrors out of sync.
package usage

import (
	"sync"

	"github.com/AstroAir/lucide-gallery/pkg/catalog"
)

// MaxRecentItems bounds the recently-used list.
const MaxRecentItems = 50

// Listener is invoked after a state change, outside the tracker's lock.
type Listener func()

// Tracker owns favorites and usage state for one catalog.
type Tracker struct {
	mu        sync.RWMutex
	cat       *catalog.Catalog
	favorites []string
	counts    map[string]int
	recent    []string

	onFavoritesChanged Listener
	onUsageChanged     Listener
}

// TrackerOption configures a Tracker.
type TrackerOption func(*Tracker)

// WithFavoritesListener registers a callback fired once per favorites
// mutation.
func WithFavoritesListener(fn Listener) TrackerOption {
	return func(t *Tracker) {
		t.onFavoritesChanged = fn
	}
}

// WithUsageListener registers a callback fired once per usage mutation.
func WithUsageListener(fn Listener) TrackerOption {
	return func(t *Tracker) {
		t.onUsageChanged = fn
	}
}

// NewTracker creates a tracker over the given catalog.
func NewTracker(cat *catalog.Catalog, opts ...TrackerOption) *Tracker {
	t := &Tracker{
		cat:    cat,
		counts: make(map[string]int),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// AddFavorite appends name to the favorites list and flips the record
// mirror. No-op if the name is already a favorite or unknown to the
// catalog.
func (t *Tracker) AddFavorite(name string) {
	t.mu.Lock()
	if t.containsFavorite(name) || !t.cat.Has(name) {
		t.mu.Unlock()
		return
	}
	t.favorites = append(t.favorites, name)
	t.cat.Icons().Update(name, func(ic *catalog.Icon) { ic.IsFavorite = true })
	t.mu.Unlock()

	t.notifyFavorites()
}

// RemoveFavorite removes name from the favorites list and clears the
// record mirror. No-op if name is not currently a favorite.
func (t *Tracker) RemoveFavorite(name string) {
	t.mu.Lock()
	removed := false
	for i, fav := range t.favorites {
		if fav == name {
			t.favorites = append(t.favorites[:i], t.favorites[i+1:]...)
			removed = true
			break
		}
	}
	if removed {
		t.cat.Icons().Update(name, func(ic *catalog.Icon) { ic.IsFavorite = false })
	}
	t.mu.Unlock()

	if removed {
		t.notifyFavorites()
	}
}

// IsFavorite reports whether name is currently a favorite.
func (t *Tracker) IsFavorite(name string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.containsFavorite(name)
}

// Favorites returns the favorites in insertion (display) order.
func (t *Tracker) Favorites() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]string, len(t.favorites))
	copy(out, t.favorites)
	return out
}

// ClearFavorites removes all favorites, clearing every record mirror,
// and notifies once.
func (t *Tracker) ClearFavorites() {
	t.mu.Lock()
	for _, name := range t.favorites {
		t.cat.Icons().Update(name, func(ic *catalog.Icon) { ic.IsFavorite = false })
	}
	t.favorites = nil
	t.mu.Unlock()

	t.notifyFavorites()
}

// RecordUsage increments the usage count for name, mirrors the new
// count onto the record, and moves name to the front of the
// recently-used list, trimming past MaxRecentItems. Names unknown to
// the catalog are accepted but ignored; the catalog is externally fixed
// and callers may reasonably reference stale names.
func (t *Tracker) RecordUsage(name string) {
	t.mu.Lock()
	if !t.cat.Has(name) {
		t.mu.Unlock()
		return
	}

	t.counts[name]++
	count := t.counts[name]
	t.cat.Icons().Update(name, func(ic *catalog.Icon) { ic.UsageCount = count })

	// Move-to-front, then trim the tail past the bound.
	for i, recent := range t.recent {
		if recent == name {
			t.recent = append(t.recent[:i], t.recent[i+1:]...)
			break
		}
	}
	t.recent = append([]string{name}, t.recent...)
	if len(t.recent) > MaxRecentItems {
		t.recent = t.recent[:MaxRecentItems]
	}
	t.mu.Unlock()

	t.notifyUsage()
}

// UsageCount returns the usage count for name, 0 for never-used or
// unknown names.
func (t *Tracker) UsageCount(name string) int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.counts[name]
}

// Counts returns a copy of the usage count map.
func (t *Tracker) Counts() map[string]int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make(map[string]int, len(t.counts))
	for name, count := range t.counts {
		out[name] = count
	}
	return out
}

// RecentlyUsed returns the recently-used names, most recent first.
func (t *Tracker) RecentlyUsed() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]string, len(t.recent))
	copy(out, t.recent)
	return out
}

// RecentIndex returns name's position in the recently-used list
// (0 = most recent) and whether it is present.
func (t *Tracker) RecentIndex(name string) (int, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for i, recent := range t.recent {
		if recent == name {
			return i, true
		}
	}
	return 0, false
}

// ClearUsage resets usage counts and the recently-used list, zeroing
// every record mirror, and notifies once.
func (t *Tracker) ClearUsage() {
	t.mu.Lock()
	for name := range t.counts {
		t.cat.Icons().Update(name, func(ic *catalog.Icon) { ic.UsageCount = 0 })
	}
	t.counts = make(map[string]int)
	t.recent = nil
	t.mu.Unlock()

	t.notifyUsage()
}

// SetFavorites replaces the favorites list during hydration from disk.
// Names unknown to the catalog are dropped. Does not notify.
func (t *Tracker) SetFavorites(names []string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, name := range t.favorites {
		t.cat.Icons().Update(name, func(ic *catalog.Icon) { ic.IsFavorite = false })
	}
	t.favorites = nil
	for _, name := range names {
		if !t.cat.Has(name) || t.containsFavorite(name) {
			continue
		}
		t.favorites = append(t.favorites, name)
		t.cat.Icons().Update(name, func(ic *catalog.Icon) { ic.IsFavorite = true })
	}
}

// SetUsage replaces usage counts and the recently-used list during
// hydration from disk. Names unknown to the catalog are dropped and the
// recent list is trimmed to the bound. Does not notify.
func (t *Tracker) SetUsage(counts map[string]int, recent []string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for name := range t.counts {
		t.cat.Icons().Update(name, func(ic *catalog.Icon) { ic.UsageCount = 0 })
	}
	t.counts = make(map[string]int, len(counts))
	for name, count := range counts {
		if !t.cat.Has(name) {
			continue
		}
		t.counts[name] = count
		t.cat.Icons().Update(name, func(ic *catalog.Icon) { ic.UsageCount = count })
	}

	t.recent = nil
	for _, name := range recent {
		if !t.cat.Has(name) {
			continue
		}
		t.recent = append(t.recent, name)
		if len(t.recent) == MaxRecentItems {
			break
		}
	}
}

// containsFavorite reports favorite membership. Caller holds the lock.
func (t *Tracker) containsFavorite(name string) bool {
	for _, fav := range t.favorites {
		if fav == name {
			return true
		}
	}
	return false
}

func (t *Tracker) notifyFavorites() {
	if t.onFavoritesChanged != nil {
		t.onFavoritesChanged()
	}
}

func (t *Tracker) notifyUsage() {
	if t.onUsageChanged != nil {
		t.onUsageChanged()
	}
}
