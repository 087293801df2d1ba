package gallery

import (
	"github.com/AstroAir/lucide-gallery/pkg/catalog"
	"github.com/AstroAir/lucide-gallery/pkg/report"
)

// config holds the facade configuration assembled from options.
type config struct {
	cat           *catalog.Catalog
	catalogOpts   []catalog.Option
	dataDir       string
	favoritesPath string
	usagePath     string
	autoSave      bool
	reporter      *report.Reporter
}

// defaults returns the default facade configuration: embedded catalog,
// per-user data directory, explicit saves.
func defaults() *config {
	return &config{
		catalogOpts: []catalog.Option{catalog.WithEmbedded()},
		reporter:    report.NewReporter(),
	}
}

// Option is a function that configures a Gallery instance
type Option func(*config) error

// WithCatalog configures a pre-built catalog to use instead of
// constructing one at Load time. Useful for tests and custom sources.
func WithCatalog(cat *catalog.Catalog) Option {
	return func(c *config) error {
		c.cat = cat
		return nil
	}
}

// WithCatalogOptions configures how the catalog is constructed at Load
// time (embedded, directory, custom fs.FS).
func WithCatalogOptions(opts ...catalog.Option) Option {
	return func(c *config) error {
		c.catalogOpts = opts
		return nil
	}
}

// WithDataDir overrides the per-user data directory holding the
// favorites and usage files.
func WithDataDir(dir string) Option {
	return func(c *config) error {
		c.dataDir = dir
		return nil
	}
}

// WithFavoritesPath overrides the favorites file path, e.g. for
// import/export of an explicitly chosen file.
func WithFavoritesPath(path string) Option {
	return func(c *config) error {
		c.favoritesPath = path
		return nil
	}
}

// WithUsagePath overrides the usage data file path.
func WithUsagePath(path string) Option {
	return func(c *config) error {
		c.usagePath = path
		return nil
	}
}

// WithAutoSave configures whether favorite and usage mutations persist
// immediately. When disabled, callers save explicitly before shutdown.
func WithAutoSave(enabled bool) Option {
	return func(c *config) error {
		c.autoSave = enabled
		return nil
	}
}

// WithReporter configures the error reporter receiving non-fatal
// engine errors.
func WithReporter(r *report.Reporter) Option {
	return func(c *config) error {
		c.reporter = r
		return nil
	}
}
