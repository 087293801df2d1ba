package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AstroAir/lucide-gallery/internal/cmd/output"
	"github.com/AstroAir/lucide-gallery/pkg/constants"
)

var suggestMax int

// suggestCmd represents the suggest command.
var suggestCmd = &cobra.Command{
	Use:     "suggest PARTIAL",
	Short:   "Suggest icon names for a partial query",
	GroupID: "browse",
	Long: `Suggest returns autocomplete candidates for a partially typed query.
Name prefixes rank ahead of substring matches in display names and
search text. Queries shorter than two characters return nothing.`,
	Args: cobra.ExactArgs(1),
	RunE: runSuggest,
}

func init() {
	rootCmd.AddCommand(suggestCmd)
	suggestCmd.Flags().IntVarP(&suggestMax, "max", "m", constants.DefaultMaxSuggestions,
		"Maximum number of suggestions")
}

func runSuggest(cmd *cobra.Command, args []string) error {
	g, err := openGallery()
	if err != nil {
		return err
	}

	names := g.SuggestIcons(args[0], suggestMax)
	if len(names) == 0 {
		fmt.Println("No suggestions")
		return nil
	}

	switch output.Format(globalFlags.Output) {
	case output.FormatTable, output.FormatWide, "":
		return output.FormatAny(output.NamesToTableData("Suggestion", names), globalFlags)
	default:
		return output.FormatAny(names, globalFlags)
	}
}
