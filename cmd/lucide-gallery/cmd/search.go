package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AstroAir/lucide-gallery/internal/cmd/globals"
	"github.com/AstroAir/lucide-gallery/internal/cmd/output"
)

var searchFlags *globals.QueryFlags

// searchCmd represents the search command.
var searchCmd = &cobra.Command{
	Use:     "search [query]",
	Short:   "Search icons by text, category, and tag",
	GroupID: "browse",
	Long: `Search filters the catalog by free text combined with the category,
tag, favorites, and recency flags. The text matches against icon
names, display names, tags, and categories, case-insensitively.

All active filter dimensions must pass; within the category and tag
flags a match on any listed value passes.

Examples:
  lucide-gallery search alarm
  lucide-gallery search --category medical --tag health
  lucide-gallery search arrow --sort usage --desc --limit 10`,
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchFlags = globals.AddQueryFlags(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	g, err := openGallery()
	if err != nil {
		return err
	}

	criteria, err := criteriaFromFlags(searchFlags, strings.Join(args, " "))
	if err != nil {
		return err
	}

	names := g.Search(criteria)
	if len(names) == 0 {
		fmt.Println("No icons found")
		return nil
	}

	if !globalFlags.Quiet && globalFlags.Output == string(output.FormatTable) {
		fmt.Printf("Found %d icons\n\n", len(names))
	}

	return output.FormatIcons(resolveIcons(g, names, searchFlags.Limit), globalFlags)
}
