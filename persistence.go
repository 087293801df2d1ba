package gallery

import (
	"github.com/AstroAir/lucide-gallery/pkg/errors"
)

// SaveFavorites persists the current favorites list. Writes are
// whole-file overwrites attempted only after the document is fully
// serialized, so a failure leaves the previous file untouched.
func (g *gallery) SaveFavorites() error {
	if !g.Loaded() {
		return errors.ErrNotLoaded
	}
	return g.gateway.SaveFavorites(g.config.favoritesPath, g.tracker.Favorites())
}

// SaveUsage persists the current usage counts and recently-used list.
func (g *gallery) SaveUsage() error {
	if !g.Loaded() {
		return errors.ErrNotLoaded
	}
	return g.gateway.SaveUsage(g.config.usagePath, g.tracker.Counts(), g.tracker.RecentlyUsed())
}

// Save persists both state files, returning the first failure.
func (g *gallery) Save() error {
	if err := g.SaveFavorites(); err != nil {
		return err
	}
	return g.SaveUsage()
}
