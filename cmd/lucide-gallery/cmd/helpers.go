package cmd

import (
	gallery "github.com/AstroAir/lucide-gallery"
	"github.com/AstroAir/lucide-gallery/internal/cmd/globals"
	"github.com/AstroAir/lucide-gallery/pkg/catalog"
	"github.com/AstroAir/lucide-gallery/pkg/filter"
)

// criteriaFromFlags translates the query flags into filter criteria.
// The free-text query, when present, comes from the positional args.
func criteriaFromFlags(flags *globals.QueryFlags, searchText string) (filter.Criteria, error) {
	order, err := filter.ParseSortOrder(flags.Sort)
	if err != nil {
		return filter.Criteria{}, err
	}

	return filter.Criteria{
		SearchText:       searchText,
		Categories:       flags.Categories,
		Tags:             flags.Tags,
		FavoritesOnly:    flags.Favorites,
		RecentlyUsedOnly: flags.Recent,
		SortOrder:        order,
		SortAscending:    !flags.Descending,
	}, nil
}

// resolveIcons maps result names back to their catalog records,
// applying the limit flag.
func resolveIcons(g gallery.Gallery, names []string, limit int) []catalog.Icon {
	if limit > 0 && limit < len(names) {
		names = names[:limit]
	}

	icons := make([]catalog.Icon, 0, len(names))
	for _, name := range names {
		if icon, ok := g.Catalog().Icon(name); ok {
			icons = append(icons, icon)
		}
	}
	return icons
}
