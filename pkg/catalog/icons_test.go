package catalog

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIconsBasicOperations(t *testing.T) {
	icons := NewIcons(WithIconsCapacity(4))

	require.Error(t, icons.Set("x", nil))

	require.NoError(t, icons.Set("star", &Icon{Name: "star"}))
	require.NoError(t, icons.Set("heart", &Icon{Name: "heart"}))

	assert.Equal(t, 2, icons.Len())
	assert.True(t, icons.Exists("star"))
	assert.False(t, icons.Exists("moon"))

	icon, ok := icons.Get("heart")
	require.True(t, ok)
	assert.Equal(t, "heart", icon.Name)

	// Names come back in canonical ascending order.
	assert.Equal(t, []string{"heart", "star"}, icons.Names())

	icons.Clear()
	assert.Equal(t, 0, icons.Len())
}

func TestIconsUpdate(t *testing.T) {
	icons := NewIcons()
	require.NoError(t, icons.Set("star", &Icon{Name: "star"}))

	ok := icons.Update("star", func(ic *Icon) { ic.IsFavorite = true })
	assert.True(t, ok)

	icon, _ := icons.Get("star")
	assert.True(t, icon.IsFavorite)

	assert.False(t, icons.Update("missing", func(ic *Icon) { ic.IsFavorite = true }))
}

func TestIconsConcurrentAccess(t *testing.T) {
	icons := NewIcons()
	for i := 0; i < 20; i++ {
		require.NoError(t, icons.Set(fmt.Sprintf("icon-%02d", i), &Icon{Name: fmt.Sprintf("icon-%02d", i)}))
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			name := fmt.Sprintf("icon-%02d", n)
			icons.Update(name, func(ic *Icon) { ic.UsageCount++ })
		}(i)
		go func() {
			defer wg.Done()
			_ = icons.Names()
			icons.ForEach(func(name string, ic *Icon) bool { return true })
		}()
	}
	wg.Wait()

	assert.Equal(t, 20, icons.Len())
}
