package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/AstroAir/lucide-gallery/internal/cmd/output"
	"github.com/AstroAir/lucide-gallery/pkg/errors"
)

// infoCmd represents the info command.
var infoCmd = &cobra.Command{
	Use:     "info NAME",
	Short:   "Show one icon's full metadata",
	GroupID: "browse",
	Args:    cobra.ExactArgs(1),
	RunE:    runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	g, err := openGallery()
	if err != nil {
		return err
	}

	icon, ok := g.Catalog().Icon(args[0])
	if !ok {
		return &errors.NotFoundError{Resource: "icon", ID: args[0]}
	}

	switch output.Format(globalFlags.Output) {
	case output.FormatTable, output.FormatWide, "":
		formatter := output.NewFormatter(output.Format(globalFlags.Output))
		return formatter.Format(os.Stdout, output.IconToDetailData(icon))
	default:
		return output.FormatAny(icon, globalFlags)
	}
}
