package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abcu/advisor/internal/catalog"
	"github.com/abcu/advisor/internal/config"
	"github.com/abcu/advisor/internal/loader"
	"github.com/abcu/advisor/internal/query"
	"github.com/abcu/advisor/internal/ui"
)

// listCmd prints courses in alphanumeric order.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List courses in alphanumeric order",
	Long: `Load the configured course file and print its courses in ascending
id order. --prefix restricts the listing to one department (e.g. CS); --all
lists every course.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().String("prefix", "", "only ids starting with this prefix (default: configured display prefix)")
	listCmd.Flags().Bool("all", false, "list every course regardless of prefix")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	printer := ui.New()

	cfg, err := config.Load()
	if err != nil {
		printer.Error(err.Error())
		return err
	}

	cat := catalog.NewWithCapacity(cfg.InitialCapacity)
	if _, err := loader.Load(cat, cfg.DataFile, cfg.Delimiter); err != nil {
		printer.Error(err.Error())
		return err
	}

	all, _ := cmd.Flags().GetBool("all")
	prefix, _ := cmd.Flags().GetString("prefix")
	if prefix == "" {
		prefix = cfg.DisplayPrefix
	}
	if all {
		prefix = ""
	}

	header := "Course List"
	if prefix != "" {
		header = prefix + " Course List"
	}
	printer.CourseList(header, query.WithPrefix(cat, prefix))
	return nil
}
