// Package suggest produces autocomplete candidates for icon names,
// categories, and tags. All functions are read-only over the catalog.
package suggest

import (
	"sort"
	"strings"

	"github.com/AstroAir/lucide-gallery/pkg/catalog"
)

// MinPartialLength is the minimum partial length worth suggesting for.
const MinPartialLength = 2

// Icons returns up to max icon-name suggestions for partial. A name is
// collected when the name starts with partial, the display name
// contains it, or the precomputed search text contains it (all
// case-insensitive). The scan stops once max raw matches are collected,
// so results are first-found-in-catalog-order rather than globally
// best-ranked; the final list is deduplicated, sorted alphabetically,
// and truncated to max.
func Icons(cat *catalog.Catalog, partial string, max int) []string {
	if len([]rune(partial)) < MinPartialLength || max <= 0 {
		return nil
	}

	lower := strings.ToLower(partial)

	var matches []string
	for _, name := range cat.Names() {
		icon, ok := cat.Icon(name)
		if !ok {
			continue
		}
		switch {
		case strings.HasPrefix(strings.ToLower(name), lower):
			matches = append(matches, name)
		case strings.Contains(strings.ToLower(icon.DisplayName), lower):
			matches = append(matches, name)
		case strings.Contains(icon.SearchText, lower):
			matches = append(matches, name)
		}
		if len(matches) >= max {
			break
		}
	}

	matches = dedupe(matches)
	sort.Strings(matches)
	if len(matches) > max {
		matches = matches[:max]
	}
	return matches
}

// Categories returns every category whose name contains partial,
// case-insensitively. No count cap; order follows the catalog's
// category vocabulary.
func Categories(cat *catalog.Catalog, partial string) []string {
	return vocabulary(cat.Categories(), partial)
}

// Tags returns every tag whose name contains partial,
// case-insensitively. No count cap; order follows the catalog's tag
// vocabulary.
func Tags(cat *catalog.Catalog, partial string) []string {
	return vocabulary(cat.Tags(), partial)
}

func vocabulary(terms []string, partial string) []string {
	if len([]rune(partial)) < MinPartialLength {
		return nil
	}

	lower := strings.ToLower(partial)

	var matches []string
	for _, term := range terms {
		if strings.Contains(strings.ToLower(term), lower) {
			matches = append(matches, term)
		}
	}
	return matches
}

func dedupe(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := names[:0]
	for _, name := range names {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}
