package output

import (
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/AstroAir/lucide-gallery/internal/cmd/globals"
	"github.com/AstroAir/lucide-gallery/pkg/catalog"
)

var titleCaser = cases.Title(language.English)

// FormatIcons renders a list of icon records in the selected format.
// Table output shows the summary columns; wide adds tags and
// contributors; json and yaml emit the full records.
func FormatIcons(icons []catalog.Icon, globalFlags *globals.Flags) error {
	formatter := NewFormatter(Format(globalFlags.Output))

	var outputData any
	switch Format(globalFlags.Output) {
	case FormatTable, FormatWide, "":
		outputData = IconsToTableData(icons, globalFlags.Output == string(FormatWide))
	default:
		outputData = icons
	}

	return formatter.Format(os.Stdout, outputData)
}

// FormatAny renders any data structure in the selected format. Used by
// commands with custom output shapes.
func FormatAny(data any, globalFlags *globals.Flags) error {
	formatter := NewFormatter(Format(globalFlags.Output))
	return formatter.Format(os.Stdout, data)
}

// IconsToTableData builds the table projection of icon records.
func IconsToTableData(icons []catalog.Icon, wide bool) Data {
	headers := []string{"Name", "Display Name", "Category", "Uses", "Fav"}
	alignment := []Align{AlignLeft, AlignLeft, AlignLeft, AlignRight, AlignCenter}
	if wide {
		headers = append(headers, "Tags", "Contributors")
		alignment = append(alignment, AlignLeft, AlignLeft)
	}

	rows := make([][]string, 0, len(icons))
	for _, icon := range icons {
		row := []string{
			icon.Name,
			icon.DisplayName,
			titleCaser.String(icon.FirstCategory()),
			strconv.Itoa(icon.UsageCount),
			favoriteMark(icon.IsFavorite),
		}
		if wide {
			row = append(row,
				strings.Join(icon.Tags, ", "),
				strings.Join(icon.Contributors, ", "),
			)
		}
		rows = append(rows, row)
	}

	return Data{Headers: headers, Rows: rows, ColumnAlignment: alignment}
}

// IconToDetailData builds the property/value table for a single icon.
func IconToDetailData(icon catalog.Icon) Data {
	rows := [][]string{
		{"Name", icon.Name},
		{"Display Name", icon.DisplayName},
		{"SVG File", icon.SVGFile},
		{"Categories", titledList(icon.Categories)},
		{"Tags", strings.Join(icon.Tags, ", ")},
		{"Contributors", strings.Join(icon.Contributors, ", ")},
		{"Usage Count", strconv.Itoa(icon.UsageCount)},
		{"Favorite", favoriteMark(icon.IsFavorite)},
	}

	return Data{Headers: []string{"Property", "Value"}, Rows: rows}
}

// VocabularyToTableData builds the table projection of a category or
// tag vocabulary with per-term icon counts. Terms keep their given
// order; label names the term column.
func VocabularyToTableData(label string, terms []string, counts map[string]int) Data {
	rows := make([][]string, 0, len(terms))
	for _, term := range terms {
		rows = append(rows, []string{
			titleCaser.String(term),
			strconv.Itoa(counts[term]),
		})
	}

	return Data{
		Headers:         []string{label, "Icons"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignLeft, AlignRight},
	}
}

// NamesToTableData builds a single-column table of icon names.
func NamesToTableData(label string, names []string) Data {
	rows := make([][]string, 0, len(names))
	for _, name := range names {
		rows = append(rows, []string{name})
	}
	return Data{Headers: []string{label}, Rows: rows}
}

// RankedToTableData builds a rank/name/count table, e.g. most-used
// icons.
func RankedToTableData(names []string, counts map[string]int) Data {
	rows := make([][]string, 0, len(names))
	for i, name := range names {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			name,
			strconv.Itoa(counts[name]),
		})
	}

	return Data{
		Headers:         []string{"#", "Name", "Uses"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignRight, AlignLeft, AlignRight},
	}
}

func favoriteMark(favorite bool) string {
	if favorite {
		return "★"
	}
	return ""
}

func titledList(terms []string) string {
	titled := make([]string, len(terms))
	for i, term := range terms {
		titled[i] = titleCaser.String(term)
	}
	return strings.Join(titled, ", ")
}
