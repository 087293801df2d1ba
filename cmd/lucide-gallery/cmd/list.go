package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AstroAir/lucide-gallery/internal/cmd/globals"
	"github.com/AstroAir/lucide-gallery/internal/cmd/output"
)

var listFlags *globals.QueryFlags

// listCmd represents the list command.
var listCmd = &cobra.Command{
	Use:     "list",
	Short:   "List icons from the embedded catalog",
	GroupID: "browse",
	Long: `List displays the icons in the embedded catalog.

The catalog is compiled into the binary at build time. Category, tag,
favorites, and recency filters narrow the listing; sort and limit
control its order and size.`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listFlags = globals.AddQueryFlags(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	g, err := openGallery()
	if err != nil {
		return err
	}

	criteria, err := criteriaFromFlags(listFlags, "")
	if err != nil {
		return err
	}

	names := g.Search(criteria)
	if len(names) == 0 {
		fmt.Println("No icons found")
		return nil
	}

	return output.FormatIcons(resolveIcons(g, names, listFlags.Limit), globalFlags)
}
