package usage_test

import (
	"fmt"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AstroAir/lucide-gallery/pkg/catalog"
	"github.com/AstroAir/lucide-gallery/pkg/usage"
)

// testCatalog builds a catalog of n generated icons named icon-00..
func testCatalog(t *testing.T, n int) *catalog.Catalog {
	t.Helper()

	icons := "{"
	for i := 0; i < n; i++ {
		if i > 0 {
			icons += ","
		}
		icons += fmt.Sprintf(`"icon-%02d": {"svg_file": "icon-%02d.svg", "tags": ["t"], "categories": ["c"]}`, i, i)
	}
	icons += "}"

	cat, err := catalog.New(catalog.WithFS(fstest.MapFS{
		"icons.json":      &fstest.MapFile{Data: []byte(`{"icons": ` + icons + `}`)},
		"categories.json": &fstest.MapFile{Data: []byte(`{}`)},
		"tags.json":       &fstest.MapFile{Data: []byte(`{}`)},
	}))
	require.NoError(t, err)
	return cat
}

func TestFavoriteSymmetry(t *testing.T) {
	cat := testCatalog(t, 3)
	tracker := usage.NewTracker(cat)

	tracker.AddFavorite("icon-00")
	assert.True(t, tracker.IsFavorite("icon-00"))
	icon, _ := cat.Icon("icon-00")
	assert.True(t, icon.IsFavorite)

	// Adding twice has the same effect as once.
	tracker.AddFavorite("icon-00")
	assert.Equal(t, []string{"icon-00"}, tracker.Favorites())

	tracker.RemoveFavorite("icon-00")
	assert.False(t, tracker.IsFavorite("icon-00"))
	assert.NotContains(t, tracker.Favorites(), "icon-00")
	icon, _ = cat.Icon("icon-00")
	assert.False(t, icon.IsFavorite)

	// Removing a non-favorite is a no-op.
	tracker.RemoveFavorite("icon-00")
	assert.Empty(t, tracker.Favorites())
}

func TestFavoriteUnknownName(t *testing.T) {
	cat := testCatalog(t, 1)
	tracker := usage.NewTracker(cat)

	tracker.AddFavorite("does-not-exist")
	assert.Empty(t, tracker.Favorites())
	assert.False(t, tracker.IsFavorite("does-not-exist"))
}

func TestFavoritesOrder(t *testing.T) {
	cat := testCatalog(t, 3)
	tracker := usage.NewTracker(cat)

	tracker.AddFavorite("icon-02")
	tracker.AddFavorite("icon-00")
	tracker.AddFavorite("icon-01")

	// Insertion order is display order.
	assert.Equal(t, []string{"icon-02", "icon-00", "icon-01"}, tracker.Favorites())
}

func TestRecordUsage(t *testing.T) {
	cat := testCatalog(t, 3)
	tracker := usage.NewTracker(cat)

	tracker.RecordUsage("icon-01")
	tracker.RecordUsage("icon-01")
	tracker.RecordUsage("icon-02")

	assert.Equal(t, 2, tracker.UsageCount("icon-01"))
	assert.Equal(t, 1, tracker.UsageCount("icon-02"))
	assert.Equal(t, 0, tracker.UsageCount("icon-00"))
	assert.Equal(t, 0, tracker.UsageCount("does-not-exist"))

	icon, _ := cat.Icon("icon-01")
	assert.Equal(t, 2, icon.UsageCount)

	// Most recent first, move-to-front on reuse.
	assert.Equal(t, []string{"icon-02", "icon-01"}, tracker.RecentlyUsed())
	tracker.RecordUsage("icon-01")
	assert.Equal(t, []string{"icon-01", "icon-02"}, tracker.RecentlyUsed())

	idx, ok := tracker.RecentIndex("icon-02")
	require.True(t, ok)
	assert.Equal(t, 1, idx)
	_, ok = tracker.RecentIndex("icon-00")
	assert.False(t, ok)
}

func TestRecordUsageUnknownName(t *testing.T) {
	cat := testCatalog(t, 1)
	tracker := usage.NewTracker(cat)

	// Unknown names are accepted but have no visible effect.
	tracker.RecordUsage("does-not-exist")
	assert.Equal(t, 0, tracker.UsageCount("does-not-exist"))
	assert.Empty(t, tracker.RecentlyUsed())
}

func TestRecentBoundAndOrder(t *testing.T) {
	cat := testCatalog(t, 60)
	tracker := usage.NewTracker(cat)

	for i := 0; i < 60; i++ {
		tracker.RecordUsage(fmt.Sprintf("icon-%02d", i))
	}

	recent := tracker.RecentlyUsed()
	require.Len(t, recent, usage.MaxRecentItems)
	assert.Equal(t, "icon-59", recent[0])
	assert.Equal(t, "icon-10", recent[len(recent)-1])
	assert.NotContains(t, recent, "icon-09")
}

func TestClearFavorites(t *testing.T) {
	cat := testCatalog(t, 3)
	tracker := usage.NewTracker(cat)

	tracker.AddFavorite("icon-00")
	tracker.AddFavorite("icon-01")
	tracker.ClearFavorites()

	assert.Empty(t, tracker.Favorites())
	icon, _ := cat.Icon("icon-00")
	assert.False(t, icon.IsFavorite)
}

func TestClearUsage(t *testing.T) {
	cat := testCatalog(t, 3)
	tracker := usage.NewTracker(cat)

	tracker.RecordUsage("icon-00")
	tracker.RecordUsage("icon-01")
	tracker.ClearUsage()

	assert.Equal(t, 0, tracker.UsageCount("icon-00"))
	assert.Empty(t, tracker.RecentlyUsed())
	icon, _ := cat.Icon("icon-00")
	assert.Equal(t, 0, icon.UsageCount)
}

func TestListeners(t *testing.T) {
	cat := testCatalog(t, 3)

	var favoriteEvents, usageEvents int
	tracker := usage.NewTracker(cat,
		usage.WithFavoritesListener(func() { favoriteEvents++ }),
		usage.WithUsageListener(func() { usageEvents++ }),
	)

	tracker.AddFavorite("icon-00")
	tracker.AddFavorite("icon-00") // no-op, no event
	tracker.RemoveFavorite("icon-00")
	tracker.RemoveFavorite("icon-00") // no-op, no event
	tracker.ClearFavorites()
	assert.Equal(t, 3, favoriteEvents)

	tracker.RecordUsage("icon-01")
	tracker.ClearUsage()
	assert.Equal(t, 2, usageEvents)
}

func TestHydration(t *testing.T) {
	cat := testCatalog(t, 5)
	tracker := usage.NewTracker(cat)

	tracker.SetFavorites([]string{"icon-01", "unknown", "icon-03", "icon-01"})
	assert.Equal(t, []string{"icon-01", "icon-03"}, tracker.Favorites())
	icon, _ := cat.Icon("icon-03")
	assert.True(t, icon.IsFavorite)

	tracker.SetUsage(map[string]int{"icon-02": 7, "unknown": 3}, []string{"icon-02", "unknown"})
	assert.Equal(t, 7, tracker.UsageCount("icon-02"))
	assert.Equal(t, 0, tracker.UsageCount("unknown"))
	assert.Equal(t, []string{"icon-02"}, tracker.RecentlyUsed())
	icon, _ = cat.Icon("icon-02")
	assert.Equal(t, 7, icon.UsageCount)

	// Re-hydration replaces earlier state and mirrors.
	tracker.SetFavorites([]string{"icon-04"})
	assert.Equal(t, []string{"icon-04"}, tracker.Favorites())
	icon, _ = cat.Icon("icon-01")
	assert.False(t, icon.IsFavorite)
}
