package catalog_test

import (
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AstroAir/lucide-gallery/pkg/catalog"
	"github.com/AstroAir/lucide-gallery/pkg/errors"
)

// testFS creates a test filesystem with a three-icon catalog.
func testFS() fs.FS {
	return fstest.MapFS{
		"icons.json": &fstest.MapFile{
			Data: []byte(`{
  "icons": {
    "heart": {
      "svg_file": "heart.svg",
      "tags": ["love"],
      "categories": ["general"],
      "contributors": ["colebemis"]
    },
    "star": {
      "svg_file": "star.svg",
      "tags": ["rating"],
      "categories": ["general"]
    },
    "home": {
      "svg_file": "home.svg",
      "tags": ["navigation"],
      "categories": ["layout"]
    }
  }
}`),
		},
		"categories.json": &fstest.MapFile{
			Data: []byte(`{"general": ["heart", "star"], "layout": ["home"]}`),
		},
		"tags.json": &fstest.MapFile{
			Data: []byte(`{"love": ["heart"], "rating": ["star"], "navigation": ["home"]}`),
		},
	}
}

func TestCatalogLoad(t *testing.T) {
	cat, err := catalog.New(catalog.WithFS(testFS()))
	require.NoError(t, err)
	require.True(t, cat.Loaded())

	assert.Equal(t, 3, cat.Len())
	assert.Equal(t, []string{"heart", "home", "star"}, cat.Names())

	icon, ok := cat.Icon("heart")
	require.True(t, ok)
	assert.Equal(t, "heart.svg", icon.SVGFile)
	assert.Equal(t, "Heart", icon.DisplayName)
	assert.Equal(t, "heart heart love general", icon.SearchText)
	assert.Equal(t, []string{"colebemis"}, icon.Contributors)

	// Empty contributors are tolerated
	star, ok := cat.Icon("star")
	require.True(t, ok)
	assert.Empty(t, star.Contributors)
}

func TestCatalogIndexes(t *testing.T) {
	cat, err := catalog.New(catalog.WithFS(testFS()))
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"heart", "star"}, cat.InCategory("general"))
	assert.Equal(t, []string{"home"}, cat.InCategory("layout"))
	assert.Empty(t, cat.InCategory("does-not-exist"))

	assert.Equal(t, []string{"heart"}, cat.WithTag("love"))
	assert.Empty(t, cat.WithTag("does-not-exist"))

	assert.Equal(t, []string{"general", "layout"}, cat.Categories())
	assert.Equal(t, []string{"love", "navigation", "rating"}, cat.Tags())
}

func TestCatalogUnknownLookups(t *testing.T) {
	cat, err := catalog.New(catalog.WithFS(testFS()))
	require.NoError(t, err)

	_, ok := cat.Icon("does-not-exist")
	assert.False(t, ok)
	assert.False(t, cat.Has("does-not-exist"))
}

func TestCatalogLoadFailures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(fstest.MapFS)
	}{
		{"missing icons document", func(m fstest.MapFS) { delete(m, "icons.json") }},
		{"malformed icons document", func(m fstest.MapFS) {
			m["icons.json"] = &fstest.MapFile{Data: []byte("{not json")}
		}},
		{"missing icons key", func(m fstest.MapFS) {
			m["icons.json"] = &fstest.MapFile{Data: []byte(`{"other": {}}`)}
		}},
		{"missing categories document", func(m fstest.MapFS) { delete(m, "categories.json") }},
		{"malformed tags document", func(m fstest.MapFS) {
			m["tags.json"] = &fstest.MapFile{Data: []byte("[]")}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := testFS().(fstest.MapFS)
			tt.mutate(fsys)

			_, err := catalog.New(catalog.WithFS(fsys))
			require.Error(t, err)
			assert.True(t, errors.IsLoadError(err))
		})
	}
}

func TestCatalogLoadAtomic(t *testing.T) {
	// A failure in the third document must leave the catalog empty.
	fsys := testFS().(fstest.MapFS)
	fsys["tags.json"] = &fstest.MapFile{Data: []byte("{broken")}

	cat := catalog.NewEmpty()
	empty, err := catalog.New(catalog.WithFS(fsys))
	require.Error(t, err)
	assert.Nil(t, empty)

	assert.False(t, cat.Loaded())
	assert.Equal(t, 0, cat.Len())
}

func TestCatalogLoadIdempotent(t *testing.T) {
	cat, err := catalog.New(catalog.WithFS(testFS()))
	require.NoError(t, err)

	before := cat.Names()
	require.NoError(t, cat.Load())
	assert.Equal(t, before, cat.Names())
	assert.Equal(t, 3, cat.Len())
}

func TestEmbeddedCatalog(t *testing.T) {
	cat, err := catalog.NewEmbedded()
	require.NoError(t, err)

	assert.Greater(t, cat.Len(), 0, "embedded catalog should have icons")
	assert.NotEmpty(t, cat.Categories())
	assert.NotEmpty(t, cat.Tags())

	// Every indexed name must resolve to a record.
	for _, category := range cat.Categories() {
		for _, name := range cat.InCategory(category) {
			assert.True(t, cat.Has(name), "category %s references unknown icon %s", category, name)
		}
	}
}

func TestNewEmpty(t *testing.T) {
	cat := catalog.NewEmpty()
	assert.False(t, cat.Loaded())
	assert.Equal(t, 0, cat.Len())
	assert.Empty(t, cat.Names())

	// Memory catalog: Load is a no-op, not an error.
	assert.NoError(t, cat.Load())
}
