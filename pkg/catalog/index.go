package catalog

import "sort"

// Index maps a grouping key (category or tag) to the icon names that
// belong to it. Indexes are built once during load and never mutated,
// so reads need no synchronization.
type Index struct {
	entries map[string][]string
	keys    []string
}

// NewIndex builds an index from a key -> names mapping. Keys are sorted
// once so vocabulary listings are deterministic.
func NewIndex(entries map[string][]string) *Index {
	if entries == nil {
		entries = make(map[string][]string)
	}
	keys := make([]string, 0, len(entries))
	for key := range entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return &Index{entries: entries, keys: keys}
}

// Get returns the icon names under key. Unknown keys yield an empty
// slice, not an error.
func (x *Index) Get(key string) []string {
	names := x.entries[key]
	out := make([]string, len(names))
	copy(out, names)
	return out
}

// Has reports whether key exists in the index.
func (x *Index) Has(key string) bool {
	_, ok := x.entries[key]
	return ok
}

// Keys returns the full vocabulary in ascending order.
func (x *Index) Keys() []string {
	out := make([]string, len(x.keys))
	copy(out, x.keys)
	return out
}

// Len returns the number of keys in the index.
func (x *Index) Len() int {
	return len(x.entries)
}
