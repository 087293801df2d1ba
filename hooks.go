package gallery

import (
	"sync"
)

// Hook function types for engine events
type (
	// CatalogLoadedHook is called after a successful load with the
	// total icon count.
	CatalogLoadedHook func(total int)

	// LoadFailedHook is called when a load attempt fails.
	LoadFailedHook func(err error)

	// ResultsChangedHook is called after each search with the filtered
	// result count.
	ResultsChangedHook func(count int)

	// FavoritesChangedHook is called after each favorites mutation.
	FavoritesChangedHook func()

	// UsageChangedHook is called after each usage mutation.
	UsageChangedHook func()
)

// hooks manages event callbacks for engine changes
type hooks struct {
	mu                 sync.RWMutex
	onCatalogLoaded    []CatalogLoadedHook
	onLoadFailed       []LoadFailedHook
	onResultsChanged   []ResultsChangedHook
	onFavoritesChanged []FavoritesChangedHook
	onUsageChanged     []UsageChangedHook
}

// newHooks creates a new hooks instance
func newHooks() *hooks {
	return &hooks{}
}

// OnCatalogLoaded registers a callback for successful loads
func (h *hooks) OnCatalogLoaded(fn CatalogLoadedHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onCatalogLoaded = append(h.onCatalogLoaded, fn)
}

// OnLoadFailed registers a callback for failed loads
func (h *hooks) OnLoadFailed(fn LoadFailedHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onLoadFailed = append(h.onLoadFailed, fn)
}

// OnResultsChanged registers a callback for search result counts
func (h *hooks) OnResultsChanged(fn ResultsChangedHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onResultsChanged = append(h.onResultsChanged, fn)
}

// OnFavoritesChanged registers a callback for favorites mutations
func (h *hooks) OnFavoritesChanged(fn FavoritesChangedHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onFavoritesChanged = append(h.onFavoritesChanged, fn)
}

// OnUsageChanged registers a callback for usage mutations
func (h *hooks) OnUsageChanged(fn UsageChangedHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onUsageChanged = append(h.onUsageChanged, fn)
}

func (h *hooks) triggerCatalogLoaded(total int) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, hook := range h.onCatalogLoaded {
		hook(total)
	}
}

func (h *hooks) triggerLoadFailed(err error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, hook := range h.onLoadFailed {
		hook(err)
	}
}

func (h *hooks) triggerResultsChanged(count int) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, hook := range h.onResultsChanged {
		hook(count)
	}
}

func (h *hooks) triggerFavoritesChanged() {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, hook := range h.onFavoritesChanged {
		hook()
	}
}

func (h *hooks) triggerUsageChanged() {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, hook := range h.onUsageChanged {
		hook()
	}
}
