package suggest_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AstroAir/lucide-gallery/pkg/catalog"
	"github.com/AstroAir/lucide-gallery/pkg/suggest"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()

	cat, err := catalog.New(catalog.WithFS(fstest.MapFS{
		"icons.json": &fstest.MapFile{Data: []byte(`{
  "icons": {
    "heart": {"svg_file": "heart.svg", "tags": ["love"], "categories": ["social"]},
    "heart-pulse": {"svg_file": "heart-pulse.svg", "tags": ["health"], "categories": ["medical"]},
    "home": {"svg_file": "home.svg", "tags": ["house"], "categories": ["navigation"]},
    "star": {"svg_file": "star.svg", "tags": ["favorite", "heart"], "categories": ["shapes"]}
  }
}`)},
		"categories.json": &fstest.MapFile{Data: []byte(`{"social": ["heart"], "medical": ["heart-pulse"], "navigation": ["home"], "shapes": ["star"]}`)},
		"tags.json":       &fstest.MapFile{Data: []byte(`{"love": ["heart"], "health": ["heart-pulse"], "house": ["home"], "favorite": ["star"], "heart": ["star"]}`)},
	}))
	require.NoError(t, err)
	return cat
}

func TestIconsMinimumLength(t *testing.T) {
	cat := testCatalog(t)

	assert.Nil(t, suggest.Icons(cat, "", 10))
	assert.Nil(t, suggest.Icons(cat, "h", 10))
	assert.NotEmpty(t, suggest.Icons(cat, "he", 10))
}

func TestIconsNameAndSearchTextMatches(t *testing.T) {
	cat := testCatalog(t)

	// "heart" prefixes two names and appears in star's tags.
	got := suggest.Icons(cat, "heart", 10)
	assert.Equal(t, []string{"heart", "heart-pulse", "star"}, got)

	// Case-insensitive prefix match.
	got = suggest.Icons(cat, "HEART", 10)
	assert.Equal(t, []string{"heart", "heart-pulse", "star"}, got)

	// Display-name containment ("Heart Pulse" contains "pulse").
	got = suggest.Icons(cat, "pulse", 10)
	assert.Equal(t, []string{"heart-pulse"}, got)
}

func TestIconsTruncation(t *testing.T) {
	cat := testCatalog(t)

	got := suggest.Icons(cat, "heart", 2)
	assert.Len(t, got, 2)

	assert.Nil(t, suggest.Icons(cat, "heart", 0))
}

func TestIconsSorted(t *testing.T) {
	cat := testCatalog(t)

	got := suggest.Icons(cat, "ho", 10)
	assert.Equal(t, []string{"home"}, got)
}

func TestCategories(t *testing.T) {
	cat := testCatalog(t)

	assert.Nil(t, suggest.Categories(cat, "n"))
	assert.Equal(t, []string{"navigation"}, suggest.Categories(cat, "nav"))
	assert.Equal(t, []string{"medical", "social"}, suggest.Categories(cat, "AL"))
	assert.Empty(t, suggest.Categories(cat, "zz"))
}

func TestTags(t *testing.T) {
	cat := testCatalog(t)

	assert.Nil(t, suggest.Tags(cat, "l"))
	assert.Equal(t, []string{"love"}, suggest.Tags(cat, "lo"))
	assert.Equal(t, []string{"health", "heart"}, suggest.Tags(cat, "hea"))
}
