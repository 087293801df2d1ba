package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AstroAir/lucide-gallery/internal/cmd/output"
	"github.com/AstroAir/lucide-gallery/pkg/errors"
)

// favoritesCmd represents the favorites command group.
var favoritesCmd = &cobra.Command{
	Use:     "favorites",
	Short:   "Manage favorite icons",
	GroupID: "state",
	Long: `Favorites manages the per-user favorites list. The list keeps the
order favorites were added in and persists to favorites.json in the
application data directory.`,
}

var favoritesAddCmd = &cobra.Command{
	Use:   "add NAME...",
	Short: "Add icons to the favorites list",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFavoritesAdd,
}

var favoritesRemoveCmd = &cobra.Command{
	Use:   "remove NAME...",
	Short: "Remove icons from the favorites list",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFavoritesRemove,
}

var favoritesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List favorite icons in display order",
	RunE:  runFavoritesList,
}

var favoritesClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all favorites",
	RunE:  runFavoritesClear,
}

func init() {
	rootCmd.AddCommand(favoritesCmd)
	favoritesCmd.AddCommand(favoritesAddCmd)
	favoritesCmd.AddCommand(favoritesRemoveCmd)
	favoritesCmd.AddCommand(favoritesListCmd)
	favoritesCmd.AddCommand(favoritesClearCmd)
}

func runFavoritesAdd(cmd *cobra.Command, args []string) error {
	g, err := openGallery()
	if err != nil {
		return err
	}

	for _, name := range args {
		if !g.Catalog().Has(name) {
			return &errors.NotFoundError{Resource: "icon", ID: name}
		}
		g.AddFavorite(name)
	}

	if !globalFlags.Quiet {
		fmt.Printf("Favorites: %d\n", len(g.Favorites()))
	}
	return nil
}

func runFavoritesRemove(cmd *cobra.Command, args []string) error {
	g, err := openGallery()
	if err != nil {
		return err
	}

	for _, name := range args {
		g.RemoveFavorite(name)
	}

	if !globalFlags.Quiet {
		fmt.Printf("Favorites: %d\n", len(g.Favorites()))
	}
	return nil
}

func runFavoritesList(cmd *cobra.Command, _ []string) error {
	g, err := openGallery()
	if err != nil {
		return err
	}

	names := g.Favorites()
	if len(names) == 0 {
		fmt.Println("No favorites")
		return nil
	}

	return output.FormatIcons(resolveIcons(g, names, 0), globalFlags)
}

func runFavoritesClear(cmd *cobra.Command, _ []string) error {
	g, err := openGallery()
	if err != nil {
		return err
	}

	g.ClearFavorites()
	if !globalFlags.Quiet {
		fmt.Println("Favorites cleared")
	}
	return nil
}
