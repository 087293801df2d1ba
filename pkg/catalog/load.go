package catalog

import (
	"encoding/json"
	"io/fs"

	"github.com/AstroAir/lucide-gallery/pkg/errors"
	"github.com/AstroAir/lucide-gallery/pkg/logging"
)

// Bundled metadata document names.
const (
	IconsFile      = "icons.json"
	CategoriesFile = "categories.json"
	TagsFile       = "tags.json"
)

// iconsDocument is the wire shape of icons.json.
type iconsDocument struct {
	Icons map[string]iconDefinition `json:"icons"`
}

// iconDefinition is one entry inside the icons document. Empty arrays
// are tolerated; the top-level icons object is required.
type iconDefinition struct {
	SVGFile      string   `json:"svg_file"`
	Tags         []string `json:"tags"`
	Categories   []string `json:"categories"`
	Contributors []string `json:"contributors"`
}

// Load reads the three bundled metadata documents from the configured
// filesystem and builds the icon records and indexes. The load is
// atomic: a parse failure or structural mismatch in any document leaves
// the catalog in its pre-load empty state. A second call after a
// successful load is a no-op.
func (c *Catalog) Load() error {
	if c.loaded.Load() {
		return nil
	}
	if c.options.readFS == nil {
		return nil // memory catalog, nothing to load
	}

	// Parse everything into staging structures before touching the
	// catalog, so readers never observe a partial load.
	icons, err := c.loadIcons()
	if err != nil {
		return err
	}
	categories, err := c.loadIndexDocument(CategoriesFile, "categories")
	if err != nil {
		return err
	}
	tags, err := c.loadIndexDocument(TagsFile, "tags")
	if err != nil {
		return err
	}

	for _, icon := range icons {
		_ = c.icons.Set(icon.Name, icon)
	}
	c.categories = NewIndex(categories)
	c.tags = NewIndex(tags)
	c.loaded.Store(true)

	logging.Debug().
		Int("icons", c.icons.Len()).
		Int("categories", c.categories.Len()).
		Int("tags", c.tags.Len()).
		Msg("catalog loaded")

	return nil
}

// loadIcons parses icons.json into fully derived records.
func (c *Catalog) loadIcons() (map[string]*Icon, error) {
	data, err := fs.ReadFile(c.options.readFS, IconsFile)
	if err != nil {
		return nil, errors.NewLoadError("icons", errors.WrapIO("read", IconsFile, err))
	}

	var doc iconsDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.NewLoadError("icons", errors.WrapParse("json", IconsFile, err))
	}
	if doc.Icons == nil {
		return nil, errors.NewLoadError("icons", errors.New("missing top-level icons object"))
	}

	icons := make(map[string]*Icon, len(doc.Icons))
	for name, def := range doc.Icons {
		icon := &Icon{
			Name:         name,
			SVGFile:      def.SVGFile,
			Tags:         def.Tags,
			Categories:   def.Categories,
			Contributors: def.Contributors,
		}
		icon.Derive()
		icons[name] = icon
	}

	return icons, nil
}

// loadIndexDocument parses a flat key -> [iconName...] document
// (categories.json or tags.json).
func (c *Catalog) loadIndexDocument(file, document string) (map[string][]string, error) {
	data, err := fs.ReadFile(c.options.readFS, file)
	if err != nil {
		return nil, errors.NewLoadError(document, errors.WrapIO("read", file, err))
	}

	var entries map[string][]string
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, errors.NewLoadError(document, errors.WrapParse("json", file, err))
	}

	return entries, nil
}
