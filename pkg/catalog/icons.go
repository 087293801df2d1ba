package catalog

import (
	"fmt"
	"maps"
	"sort"
	"sync"
)

// Icons is a concurrent safe map of icon records keyed by name.
type Icons struct {
	mu    sync.RWMutex
	icons map[string]*Icon
}

// IconsOption defines a function that configures an Icons instance.
type IconsOption func(*Icons)

// WithIconsCapacity sets the initial capacity of the icons map.
func WithIconsCapacity(capacity int) IconsOption {
	return func(i *Icons) {
		i.icons = make(map[string]*Icon, capacity)
	}
}

// WithIconsMap initializes the map with existing records.
func WithIconsMap(icons map[string]*Icon) IconsOption {
	return func(i *Icons) {
		if icons != nil {
			i.icons = make(map[string]*Icon, len(icons))
			maps.Copy(i.icons, icons)
		}
	}
}

// NewIcons creates a new Icons map with optional configuration.
func NewIcons(opts ...IconsOption) *Icons {
	i := &Icons{
		icons: make(map[string]*Icon),
	}

	for _, opt := range opts {
		opt(i)
	}

	return i
}

// Get returns an icon by name and whether it exists.
func (i *Icons) Get(name string) (*Icon, bool) {
	i.mu.RLock()
	icon, ok := i.icons[name]
	i.mu.RUnlock()
	return icon, ok
}

// Set sets an icon by name. Returns an error if icon is nil.
func (i *Icons) Set(name string, icon *Icon) error {
	if icon == nil {
		return fmt.Errorf("icon cannot be nil")
	}

	i.mu.Lock()
	defer i.mu.Unlock()
	i.icons[name] = icon
	return nil
}

// Exists checks if an icon exists without returning it.
func (i *Icons) Exists(name string) bool {
	i.mu.RLock()
	_, exists := i.icons[name]
	i.mu.RUnlock()
	return exists
}

// Len returns the number of icons.
func (i *Icons) Len() int {
	i.mu.RLock()
	length := len(i.icons)
	i.mu.RUnlock()
	return length
}

// Names returns all icon names in ascending order. This is the catalog's
// canonical iteration order.
func (i *Icons) Names() []string {
	i.mu.RLock()
	names := make([]string, 0, len(i.icons))
	for name := range i.icons {
		names = append(names, name)
	}
	i.mu.RUnlock()
	sort.Strings(names)
	return names
}

// List returns a slice of all icons.
func (i *Icons) List() []*Icon {
	i.mu.RLock()
	icons := make([]*Icon, 0, len(i.icons))
	for _, icon := range i.icons {
		icons = append(icons, icon)
	}
	i.mu.RUnlock()
	return icons
}

// Map returns a copy of all icons.
func (i *Icons) Map() map[string]*Icon {
	i.mu.RLock()
	defer i.mu.RUnlock()

	result := make(map[string]*Icon, len(i.icons))
	maps.Copy(result, i.icons)
	return result
}

// ForEach applies a function to each icon. If the function returns false,
// iteration stops early. The function should not modify the icon.
func (i *Icons) ForEach(fn func(name string, icon *Icon) bool) {
	i.mu.RLock()
	defer i.mu.RUnlock()

	for name, icon := range i.icons {
		if !fn(name, icon) {
			break
		}
	}
}

// Update applies fn to the named icon under the write lock, returning
// whether the icon exists. The usage tracker uses this to keep the
// IsFavorite and UsageCount mirrors consistent with its own state.
func (i *Icons) Update(name string, fn func(*Icon)) bool {
	i.mu.Lock()
	defer i.mu.Unlock()

	icon, ok := i.icons[name]
	if !ok {
		return false
	}
	fn(icon)
	return true
}

// Clear removes all icons.
func (i *Icons) Clear() {
	i.mu.Lock()
	defer i.mu.Unlock()
	for k := range i.icons {
		delete(i.icons, k)
	}
}
