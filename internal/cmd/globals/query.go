package globals

import "github.com/spf13/cobra"

// QueryFlags holds the icon query flags shared by the listing and
// search commands.
type QueryFlags struct {
	Categories []string
	Tags       []string
	Favorites  bool
	Recent     bool
	Sort       string
	Descending bool
	Limit      int
}

// AddQueryFlags adds the icon query flags to a command.
func AddQueryFlags(cmd *cobra.Command) *QueryFlags {
	flags := &QueryFlags{}

	cmd.Flags().StringSliceVarP(&flags.Categories, "category", "c", nil,
		"Filter by category (repeatable; a match in any listed category passes)")
	cmd.Flags().StringSliceVarP(&flags.Tags, "tag", "t", nil,
		"Filter by tag (repeatable; a match on any listed tag passes)")
	cmd.Flags().BoolVar(&flags.Favorites, "favorites", false,
		"Only favorite icons")
	cmd.Flags().BoolVar(&flags.Recent, "recent", false,
		"Only recently used icons")
	cmd.Flags().StringVarP(&flags.Sort, "sort", "s", "name",
		"Sort order: name, category, usage, recent")
	cmd.Flags().BoolVar(&flags.Descending, "desc", false,
		"Sort in descending order")
	cmd.Flags().IntVarP(&flags.Limit, "limit", "l", 0,
		"Limit number of results")

	return flags
}
