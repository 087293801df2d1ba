// Package catalog provides the read-only icon metadata store: the set of
// icon records loaded from the bundled definition documents plus the
// category and tag indexes derived alongside them.
//
// A catalog is immutable after a successful Load; lookups and index
// queries are safe for unsynchronized concurrent access from that point
// on. The only mutable state on a loaded record is the pair of usage
// mirror fields, which the usage tracker updates through Icons.Update.
//
// Example usage:
//
//	// Embedded catalog (production use)
//	cat, err := catalog.New(catalog.WithEmbedded())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, name := range cat.Names() {
//	    icon, _ := cat.Icon(name)
//	    fmt.Printf("%s: %s\n", name, icon.DisplayName)
//	}
//
//	// Directory-backed catalog (development use)
//	cat, err := catalog.New(catalog.WithPath("./metadata"))
package catalog

import (
	"os"
	"sync/atomic"

	"github.com/AstroAir/lucide-gallery/pkg/errors"
)

// Catalog is the immutable-after-load icon metadata store.
type Catalog struct {
	options    *catalogOptions
	icons      *Icons
	categories *Index
	tags       *Index
	loaded     atomic.Bool
}

// New creates a new catalog with the given options and, when a source
// filesystem is configured, loads it immediately.
func New(opts ...Option) (*Catalog, error) {
	cat := &Catalog{
		icons:      NewIcons(),
		categories: NewIndex(nil),
		tags:       NewIndex(nil),
		options:    catalogDefaults().apply(opts...),
	}

	if cat.options.readFS != nil {
		if err := cat.Load(); err != nil {
			return nil, err
		}
	}

	return cat, nil
}

// NewEmbedded creates a catalog backed by the bundled metadata compiled
// into the binary. This is the recommended catalog for production use.
func NewEmbedded() (*Catalog, error) {
	return New(WithEmbedded())
}

// NewFromPath creates a catalog backed by metadata files on disk. Useful
// for development when editing metadata without recompiling.
func NewFromPath(path string) (*Catalog, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, errors.WrapIO("stat", path, err)
	}
	return New(WithPath(path))
}

// NewEmpty creates an unloaded in-memory catalog. Useful for tests.
func NewEmpty() *Catalog {
	return &Catalog{
		icons:      NewIcons(),
		categories: NewIndex(nil),
		tags:       NewIndex(nil),
		options:    catalogDefaults(),
	}
}

// Loaded reports whether a load has completed successfully.
func (c *Catalog) Loaded() bool {
	return c.loaded.Load()
}

// Icons returns the icon collection.
func (c *Catalog) Icons() *Icons {
	return c.icons
}

// Icon returns the record for name. The second return is false for
// unknown names; unknown names are not errors.
func (c *Catalog) Icon(name string) (Icon, bool) {
	icon, ok := c.icons.Get(name)
	if !ok {
		return Icon{}, false
	}
	return *icon, true
}

// Has reports whether name exists in the catalog.
func (c *Catalog) Has(name string) bool {
	return c.icons.Exists(name)
}

// Len returns the number of icons in the catalog.
func (c *Catalog) Len() int {
	return c.icons.Len()
}

// Names returns all icon names in the catalog's canonical (ascending)
// order.
func (c *Catalog) Names() []string {
	return c.icons.Names()
}

// InCategory returns the names indexed under category. Unknown
// categories yield an empty slice.
func (c *Catalog) InCategory(category string) []string {
	return c.categories.Get(category)
}

// WithTag returns the names indexed under tag. Unknown tags yield an
// empty slice.
func (c *Catalog) WithTag(tag string) []string {
	return c.tags.Get(tag)
}

// Categories returns the full category vocabulary in ascending order.
func (c *Catalog) Categories() []string {
	return c.categories.Keys()
}

// Tags returns the full tag vocabulary in ascending order.
func (c *Catalog) Tags() []string {
	return c.tags.Keys()
}
