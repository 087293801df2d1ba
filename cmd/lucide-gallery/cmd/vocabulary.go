package cmd

import (
	"github.com/spf13/cobra"

	gallery "github.com/AstroAir/lucide-gallery"
	"github.com/AstroAir/lucide-gallery/internal/cmd/output"
)

// categoriesCmd represents the categories command.
var categoriesCmd = &cobra.Command{
	Use:     "categories [partial]",
	Short:   "List catalog categories",
	GroupID: "browse",
	Long: `Categories lists the catalog's category vocabulary with per-category
icon counts. An optional partial argument narrows the listing to
categories containing it.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCategories,
}

// tagsCmd represents the tags command.
var tagsCmd = &cobra.Command{
	Use:     "tags [partial]",
	Short:   "List catalog tags",
	GroupID: "browse",
	Args:    cobra.MaximumNArgs(1),
	RunE:    runTags,
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(tagsCmd)
}

func runCategories(cmd *cobra.Command, args []string) error {
	g, err := openGallery()
	if err != nil {
		return err
	}

	terms := g.Catalog().Categories()
	if len(args) == 1 {
		terms = g.SuggestCategories(args[0])
	}

	counts := make(map[string]int, len(terms))
	for _, term := range terms {
		counts[term] = len(g.Catalog().InCategory(term))
	}

	return formatVocabulary(g, "Category", terms, counts)
}

func runTags(cmd *cobra.Command, args []string) error {
	g, err := openGallery()
	if err != nil {
		return err
	}

	terms := g.Catalog().Tags()
	if len(args) == 1 {
		terms = g.SuggestTags(args[0])
	}

	counts := make(map[string]int, len(terms))
	for _, term := range terms {
		counts[term] = len(g.Catalog().WithTag(term))
	}

	return formatVocabulary(g, "Tag", terms, counts)
}

func formatVocabulary(_ gallery.Gallery, label string, terms []string, counts map[string]int) error {
	switch output.Format(globalFlags.Output) {
	case output.FormatTable, output.FormatWide, "":
		return output.FormatAny(output.VocabularyToTableData(label, terms, counts), globalFlags)
	default:
		return output.FormatAny(counts, globalFlags)
	}
}
