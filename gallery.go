// Package gallery is the icon catalog engine facade. It composes the
// metadata catalog, the usage tracker, the filter and suggestion
// engines, and the user-state persistence gateway behind one lifecycle,
// and emits change notifications for presentation layers.
//
// Example usage:
//
//	g, err := gallery.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := g.Load(); err != nil {
//	    log.Fatal(err)
//	}
//
//	names := g.Search(filter.Criteria{SearchText: "heart", SortAscending: true})
//	g.RecordUsage(names[0])
package gallery

import (
	"sync"

	"github.com/AstroAir/lucide-gallery/pkg/catalog"
	"github.com/AstroAir/lucide-gallery/pkg/errors"
	"github.com/AstroAir/lucide-gallery/pkg/filter"
	"github.com/AstroAir/lucide-gallery/pkg/logging"
	"github.com/AstroAir/lucide-gallery/pkg/suggest"
	"github.com/AstroAir/lucide-gallery/pkg/usage"
	"github.com/AstroAir/lucide-gallery/pkg/userdata"
)

// Gallery is the engine facade: the only surface the surrounding
// application talks to.
type Gallery interface {
	// Load loads the catalog and hydrates favorites and usage state.
	// Idempotent: a second call while loaded is a no-op.
	Load() error

	// Loaded reports whether Load has completed successfully.
	Loaded() bool

	// Catalog returns the metadata store. Nil before a successful Load.
	Catalog() *catalog.Catalog

	// Search returns the filtered, sorted icon names for criteria and
	// emits a ResultsChanged notification.
	Search(criteria filter.Criteria) []string

	// SuggestIcons returns ranked autocomplete candidates for partial.
	SuggestIcons(partial string, max int) []string

	// SuggestCategories returns categories containing partial.
	SuggestCategories(partial string) []string

	// SuggestTags returns tags containing partial.
	SuggestTags(partial string) []string

	// Favorite operations.
	AddFavorite(name string)
	RemoveFavorite(name string)
	IsFavorite(name string) bool
	Favorites() []string
	ClearFavorites()

	// Usage operations.
	RecordUsage(name string)
	UsageCount(name string) int
	RecentlyUsed() []string
	ClearUsageHistory()

	// Persistence operations. Saves are whole-file overwrites;
	// callers are expected to Save before shutdown unless autosave is
	// enabled.
	SaveFavorites() error
	SaveUsage() error
	Save() error

	// Hook registration.
	OnCatalogLoaded(CatalogLoadedHook)
	OnLoadFailed(LoadFailedHook)
	OnResultsChanged(ResultsChangedHook)
	OnFavoritesChanged(FavoritesChangedHook)
	OnUsageChanged(UsageChangedHook)
}

// gallery is the internal implementation of the Gallery interface.
type gallery struct {
	mu      sync.Mutex
	config  *config
	cat     *catalog.Catalog
	tracker *usage.Tracker
	gateway *userdata.Gateway
	loaded  bool

	hooks *hooks
}

// New creates a new Gallery with the given options. The catalog is not
// loaded until Load is called.
func New(opts ...Option) (Gallery, error) {
	g := &gallery{
		config: defaults(),
		hooks:  newHooks(),
	}

	for _, opt := range opts {
		if err := opt(g.config); err != nil {
			return nil, errors.NewConfigError("gallery", "applying options", err)
		}
	}

	return g, nil
}

// Load orchestrates the startup flow: catalog load, gateway setup, then
// favorites and usage hydration (which depends on the catalog, since
// stale names are filtered against it). Hooks fire after the facade
// mutex is released so a hook may call back into the engine.
func (g *gallery) Load() error {
	first, total, err := g.load()
	if err != nil {
		g.config.reporter.Report("catalog", err)
		g.hooks.triggerLoadFailed(err)
		return err
	}
	if first {
		g.hooks.triggerCatalogLoaded(total)
	}
	return nil
}

// load runs the startup flow under the facade mutex. The first return
// is true only on the call that transitioned the engine to loaded.
func (g *gallery) load() (bool, int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.loaded {
		return false, 0, nil
	}

	cat := g.config.cat
	if cat == nil {
		loaded, err := catalog.New(g.config.catalogOpts...)
		if err != nil {
			return false, 0, err
		}
		cat = loaded
	} else if err := cat.Load(); err != nil {
		return false, 0, err
	}

	g.cat = cat
	g.tracker = usage.NewTracker(cat,
		usage.WithFavoritesListener(g.onFavoritesMutated),
		usage.WithUsageListener(g.onUsageMutated),
	)
	g.gateway = userdata.NewGateway(
		userdata.WithDir(g.config.dataDir),
		userdata.WithKnownFilter(cat.Has),
	)

	// Malformed user-state files are recoverable: report and proceed
	// with empty state.
	favorites, err := g.gateway.LoadFavorites(g.config.favoritesPath)
	if err != nil {
		g.config.reporter.Report("favorites", err)
	}
	g.tracker.SetFavorites(favorites)

	counts, recent, err := g.gateway.LoadUsage(g.config.usagePath)
	if err != nil {
		g.config.reporter.Report("usage", err)
	}
	g.tracker.SetUsage(counts, recent)

	g.loaded = true

	logging.Info().
		Int("icons", cat.Len()).
		Int("favorites", len(favorites)).
		Msg("gallery loaded")

	return true, cat.Len(), nil
}

// Loaded reports whether Load has completed successfully.
func (g *gallery) Loaded() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.loaded
}

// Catalog returns the metadata store, or nil before a successful Load.
func (g *gallery) Catalog() *catalog.Catalog {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.cat
}

// Search delegates to the filter engine and emits ResultsChanged.
func (g *gallery) Search(criteria filter.Criteria) []string {
	if !g.Loaded() {
		return nil
	}
	results := filter.Apply(g.cat, g.tracker, criteria)
	g.hooks.triggerResultsChanged(len(results))
	return results
}

// SuggestIcons returns autocomplete candidates for icon names.
func (g *gallery) SuggestIcons(partial string, max int) []string {
	if !g.Loaded() {
		return nil
	}
	return suggest.Icons(g.cat, partial, max)
}

// SuggestCategories returns categories containing partial.
func (g *gallery) SuggestCategories(partial string) []string {
	if !g.Loaded() {
		return nil
	}
	return suggest.Categories(g.cat, partial)
}

// SuggestTags returns tags containing partial.
func (g *gallery) SuggestTags(partial string) []string {
	if !g.Loaded() {
		return nil
	}
	return suggest.Tags(g.cat, partial)
}

// AddFavorite marks name as a favorite.
func (g *gallery) AddFavorite(name string) {
	if !g.Loaded() {
		return
	}
	g.tracker.AddFavorite(name)
}

// RemoveFavorite unmarks name as a favorite.
func (g *gallery) RemoveFavorite(name string) {
	if !g.Loaded() {
		return
	}
	g.tracker.RemoveFavorite(name)
}

// IsFavorite reports whether name is a favorite.
func (g *gallery) IsFavorite(name string) bool {
	if !g.Loaded() {
		return false
	}
	return g.tracker.IsFavorite(name)
}

// Favorites returns the favorites in display order.
func (g *gallery) Favorites() []string {
	if !g.Loaded() {
		return nil
	}
	return g.tracker.Favorites()
}

// ClearFavorites removes all favorites.
func (g *gallery) ClearFavorites() {
	if !g.Loaded() {
		return
	}
	g.tracker.ClearFavorites()
}

// RecordUsage records one use of name.
func (g *gallery) RecordUsage(name string) {
	if !g.Loaded() {
		return
	}
	g.tracker.RecordUsage(name)
}

// UsageCount returns the recorded usage count for name.
func (g *gallery) UsageCount(name string) int {
	if !g.Loaded() {
		return 0
	}
	return g.tracker.UsageCount(name)
}

// RecentlyUsed returns the recently-used names, most recent first.
func (g *gallery) RecentlyUsed() []string {
	if !g.Loaded() {
		return nil
	}
	return g.tracker.RecentlyUsed()
}

// ClearUsageHistory resets usage counts and the recently-used list.
func (g *gallery) ClearUsageHistory() {
	if !g.Loaded() {
		return
	}
	g.tracker.ClearUsage()
}

// onFavoritesMutated runs after each favorites mutation.
func (g *gallery) onFavoritesMutated() {
	g.hooks.triggerFavoritesChanged()
	if g.config.autoSave {
		if err := g.SaveFavorites(); err != nil {
			g.config.reporter.Report("favorites", err)
		}
	}
}

// onUsageMutated runs after each usage mutation.
func (g *gallery) onUsageMutated() {
	g.hooks.triggerUsageChanged()
	if g.config.autoSave {
		if err := g.SaveUsage(); err != nil {
			g.config.reporter.Report("usage", err)
		}
	}
}

// OnCatalogLoaded registers a hook for successful loads.
func (g *gallery) OnCatalogLoaded(fn CatalogLoadedHook) { g.hooks.OnCatalogLoaded(fn) }

// OnLoadFailed registers a hook for failed loads.
func (g *gallery) OnLoadFailed(fn LoadFailedHook) { g.hooks.OnLoadFailed(fn) }

// OnResultsChanged registers a hook fired after each search.
func (g *gallery) OnResultsChanged(fn ResultsChangedHook) { g.hooks.OnResultsChanged(fn) }

// OnFavoritesChanged registers a hook for favorites mutations.
func (g *gallery) OnFavoritesChanged(fn FavoritesChangedHook) { g.hooks.OnFavoritesChanged(fn) }

// OnUsageChanged registers a hook for usage mutations.
func (g *gallery) OnUsageChanged(fn UsageChangedHook) { g.hooks.OnUsageChanged(fn) }
