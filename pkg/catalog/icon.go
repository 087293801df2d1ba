package catalog

import (
	"strings"
	"unicode"
)

// Icon is one catalog entry. Name is the immutable identity key, a
// lowercase-hyphenated identifier such as "alarm-clock".
//
// DisplayName and SearchText are derived once at load time and stay
// consistent with the source fields for the life of the catalog.
// IsFavorite and UsageCount mirror the usage tracker's state; they are
// the only mutable fields on a loaded record.
type Icon struct {
	Name         string   `json:"name"`
	SVGFile      string   `json:"svg_file"`
	Tags         []string `json:"tags"`
	Categories   []string `json:"categories"`
	Contributors []string `json:"contributors"`

	// Derived at load time
	DisplayName string `json:"display_name"`
	SearchText  string `json:"search_text"`

	// Mirrors of tracker state, kept in sync under the tracker's lock
	IsFavorite bool `json:"is_favorite"`
	UsageCount int  `json:"usage_count"`
}

// Derive computes DisplayName and SearchText from the source fields.
// Called once per record during load.
func (ic *Icon) Derive() {
	ic.DisplayName = displayName(ic.Name)
	ic.SearchText = searchText(ic)
}

// MatchesSearch reports whether the icon's search text contains term,
// case-insensitively. Plain substring containment, not tokenized.
func (ic *Icon) MatchesSearch(term string) bool {
	return strings.Contains(ic.SearchText, strings.ToLower(term))
}

// HasCategory reports whether the icon belongs to the given category.
func (ic *Icon) HasCategory(category string) bool {
	for _, c := range ic.Categories {
		if c == category {
			return true
		}
	}
	return false
}

// HasTag reports whether the icon carries the given tag.
func (ic *Icon) HasTag(tag string) bool {
	for _, t := range ic.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// FirstCategory returns the icon's first listed category, or "" if none.
// Used as the key for category-ordered sorting.
func (ic *Icon) FirstCategory() string {
	if len(ic.Categories) == 0 {
		return ""
	}
	return ic.Categories[0]
}

// displayName converts a hyphenated icon name to a user-facing title:
// hyphens and underscores become spaces and the first rune of each word
// is uppercased ("alarm-clock" -> "Alarm Clock").
func displayName(name string) string {
	replaced := strings.Map(func(r rune) rune {
		if r == '-' || r == '_' {
			return ' '
		}
		return r
	}, name)

	words := strings.Fields(replaced)
	for i, word := range words {
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}

	return strings.Join(words, " ")
}

// searchText builds the precomputed lowercase haystack from the icon's
// name, display name, tags, and categories.
func searchText(ic *Icon) string {
	terms := make([]string, 0, 2+len(ic.Tags)+len(ic.Categories))
	terms = append(terms, ic.Name, ic.DisplayName)
	terms = append(terms, ic.Tags...)
	terms = append(terms, ic.Categories...)
	return strings.ToLower(strings.Join(terms, " "))
}
