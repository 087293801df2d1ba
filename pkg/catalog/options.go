package catalog

import (
	"io/fs"
	"os"

	"github.com/AstroAir/lucide-gallery/internal/embedded"
)

// catalogOptions holds the configuration for a catalog.
type catalogOptions struct {
	readFS fs.FS // source of the three metadata documents
}

// apply applies the given options to the catalog options.
func (c *catalogOptions) apply(opts ...Option) *catalogOptions {
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// catalogDefaults returns the default options for a catalog.
func catalogDefaults() *catalogOptions {
	return &catalogOptions{readFS: nil}
}

// Option configures a catalog.
type Option func(*catalogOptions)

// WithFS configures the catalog to read metadata from a custom fs.FS.
func WithFS(fsys fs.FS) Option {
	return func(c *catalogOptions) {
		c.readFS = fsys
	}
}

// WithPath configures the catalog to read metadata from a directory.
// This creates an os.DirFS under the hood.
func WithPath(path string) Option {
	return func(c *catalogOptions) {
		c.readFS = os.DirFS(path)
	}
}

// WithEmbedded configures the catalog to read the bundled metadata
// compiled into the binary.
func WithEmbedded() Option {
	return func(c *catalogOptions) {
		metadataFS, err := fs.Sub(embedded.FS, "metadata")
		if err != nil {
			// Fall back to the full embedded FS
			c.readFS = embedded.FS
			return
		}
		c.readFS = metadataFS
	}
}
