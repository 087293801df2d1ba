package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AstroAir/lucide-gallery/internal/cmd/output"
	"github.com/AstroAir/lucide-gallery/pkg/errors"
	"github.com/AstroAir/lucide-gallery/pkg/filter"
)

var usageTopLimit int

// usageCmd represents the usage command group.
var usageCmd = &cobra.Command{
	Use:     "usage",
	Short:   "Track and inspect icon usage",
	GroupID: "state",
	Long: `Usage tracks how often icons are used. Each recorded use increments
the icon's count and moves it to the front of the recently-used list,
which keeps at most 50 entries. State persists to usage.json in the
application data directory.`,
}

var usageRecordCmd = &cobra.Command{
	Use:   "record NAME...",
	Short: "Record one use of each named icon",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runUsageRecord,
}

var usageTopCmd = &cobra.Command{
	Use:   "top",
	Short: "Show the most-used icons",
	RunE:  runUsageTop,
}

var usageRecentCmd = &cobra.Command{
	Use:   "recent",
	Short: "Show recently used icons, most recent first",
	RunE:  runUsageRecent,
}

var usageClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Reset usage counts and the recently-used list",
	RunE:  runUsageClear,
}

func init() {
	rootCmd.AddCommand(usageCmd)
	usageCmd.AddCommand(usageRecordCmd)
	usageCmd.AddCommand(usageTopCmd)
	usageCmd.AddCommand(usageRecentCmd)
	usageCmd.AddCommand(usageClearCmd)

	usageTopCmd.Flags().IntVarP(&usageTopLimit, "limit", "l", 10,
		"Number of icons to show")
}

func runUsageRecord(cmd *cobra.Command, args []string) error {
	g, err := openGallery()
	if err != nil {
		return err
	}

	for _, name := range args {
		if !g.Catalog().Has(name) {
			return &errors.NotFoundError{Resource: "icon", ID: name}
		}
		g.RecordUsage(name)
	}

	if !globalFlags.Quiet {
		fmt.Printf("Recorded %d uses\n", len(args))
	}
	return nil
}

func runUsageTop(cmd *cobra.Command, _ []string) error {
	g, err := openGallery()
	if err != nil {
		return err
	}

	names := g.Search(filter.Criteria{
		SortOrder:     filter.SortByUsage,
		SortAscending: false,
	})

	counts := make(map[string]int, len(names))
	used := names[:0]
	for _, name := range names {
		if count := g.UsageCount(name); count > 0 {
			counts[name] = count
			used = append(used, name)
		}
	}
	if usageTopLimit > 0 && usageTopLimit < len(used) {
		used = used[:usageTopLimit]
	}

	if len(used) == 0 {
		fmt.Println("No usage recorded")
		return nil
	}

	switch output.Format(globalFlags.Output) {
	case output.FormatTable, output.FormatWide, "":
		return output.FormatAny(output.RankedToTableData(used, counts), globalFlags)
	default:
		return output.FormatAny(counts, globalFlags)
	}
}

func runUsageRecent(cmd *cobra.Command, _ []string) error {
	g, err := openGallery()
	if err != nil {
		return err
	}

	names := g.RecentlyUsed()
	if len(names) == 0 {
		fmt.Println("No usage recorded")
		return nil
	}

	return output.FormatIcons(resolveIcons(g, names, 0), globalFlags)
}

func runUsageClear(cmd *cobra.Command, _ []string) error {
	g, err := openGallery()
	if err != nil {
		return err
	}

	g.ClearUsageHistory()
	if !globalFlags.Quiet {
		fmt.Println("Usage history cleared")
	}
	return nil
}
