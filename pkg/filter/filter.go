// Package filter computes filtered, sorted icon-name sequences for a
// criteria value against a catalog and usage tracker snapshot. It never
// mutates either input.
package filter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/AstroAir/lucide-gallery/pkg/catalog"
	"github.com/AstroAir/lucide-gallery/pkg/usage"
)

// SortOrder selects the sort key for filter results.
type SortOrder int

const (
	// SortByName orders lexicographically by icon name.
	SortByName SortOrder = iota
	// SortByCategory orders by the icon's first listed category.
	SortByCategory
	// SortByUsage orders numerically by usage count.
	SortByUsage
	// SortByRecent orders by recency position; icons outside the
	// recently-used list always sort last.
	SortByRecent
)

// String returns the sort order's name.
func (o SortOrder) String() string {
	switch o {
	case SortByName:
		return "name"
	case SortByCategory:
		return "category"
	case SortByUsage:
		return "usage"
	case SortByRecent:
		return "recent"
	default:
		return "unknown"
	}
}

// ParseSortOrder converts a string to a SortOrder.
func ParseSortOrder(s string) (SortOrder, error) {
	switch strings.ToLower(s) {
	case "name", "":
		return SortByName, nil
	case "category":
		return SortByCategory, nil
	case "usage":
		return SortByUsage, nil
	case "recent":
		return SortByRecent, nil
	default:
		return SortByName, fmt.Errorf("unknown sort order %q", s)
	}
}

// Criteria is the combined filter for one search. Empty dimensions are
// inactive; active dimensions AND-combine, while the names inside the
// Categories and Tags dimensions OR-combine.
type Criteria struct {
	SearchText       string
	Categories       []string
	Tags             []string
	FavoritesOnly    bool
	RecentlyUsedOnly bool
	SortOrder        SortOrder
	SortAscending    bool
}

// Apply scans the catalog in its canonical order, keeps the icons that
// pass every active criteria dimension, and sorts the survivors by the
// criteria's sort order. Ties keep the canonical scan order. A nil
// tracker behaves like one with no favorites and no usage.
func Apply(cat *catalog.Catalog, tracker *usage.Tracker, c Criteria) []string {
	// One consistent usage snapshot for both filtering and sorting.
	counts := map[string]int{}
	recentIndex := map[string]int{}
	if tracker != nil {
		counts = tracker.Counts()
		for i, name := range tracker.RecentlyUsed() {
			recentIndex[name] = i
		}
	}

	search := strings.ToLower(c.SearchText)

	var results []string
	for _, name := range cat.Names() {
		icon, ok := cat.Icon(name)
		if !ok {
			continue
		}
		if search != "" && !strings.Contains(icon.SearchText, search) {
			continue
		}
		if len(c.Categories) > 0 && !matchesAny(icon.HasCategory, c.Categories) {
			continue
		}
		if len(c.Tags) > 0 && !matchesAny(icon.HasTag, c.Tags) {
			continue
		}
		if c.FavoritesOnly && !icon.IsFavorite {
			continue
		}
		if c.RecentlyUsedOnly {
			if _, ok := recentIndex[name]; !ok {
				continue
			}
		}
		results = append(results, name)
	}

	sortResults(cat, results, c, counts, recentIndex)
	return results
}

// matchesAny reports whether has accepts at least one of the values
// (OR semantics within a dimension).
func matchesAny(has func(string) bool, values []string) bool {
	for _, v := range values {
		if has(v) {
			return true
		}
	}
	return false
}

func sortResults(cat *catalog.Catalog, names []string, c Criteria, counts map[string]int, recentIndex map[string]int) {
	switch c.SortOrder {
	case SortByName:
		sort.SliceStable(names, func(i, j int) bool {
			if c.SortAscending {
				return names[i] < names[j]
			}
			return names[i] > names[j]
		})

	case SortByCategory:
		sort.SliceStable(names, func(i, j int) bool {
			a, b := firstCategory(cat, names[i]), firstCategory(cat, names[j])
			if c.SortAscending {
				return a < b
			}
			return a > b
		})

	case SortByUsage:
		sort.SliceStable(names, func(i, j int) bool {
			a, b := counts[names[i]], counts[names[j]]
			if c.SortAscending {
				return a < b
			}
			return a > b
		})

	case SortByRecent:
		// Icons without a recency position always sort after icons
		// that have one; the direction flag only reorders the icons
		// with positions.
		sort.SliceStable(names, func(i, j int) bool {
			a, aOK := recentIndex[names[i]]
			b, bOK := recentIndex[names[j]]
			if aOK != bOK {
				return aOK
			}
			if !aOK {
				return false
			}
			if c.SortAscending {
				return a < b
			}
			return a > b
		})
	}
}

func firstCategory(cat *catalog.Catalog, name string) string {
	icon, ok := cat.Icon(name)
	if !ok {
		return ""
	}
	return icon.FirstCategory()
}
