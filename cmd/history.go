package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/abcu/advisor/internal/config"
	"github.com/abcu/advisor/internal/history"
	"github.com/abcu/advisor/internal/ui"
)

// historyCmd lists recent catalog loads from the history database.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent catalog loads",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().Int("limit", 20, "maximum entries to show")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	printer := ui.New()

	cfg, err := config.Load()
	if err != nil {
		printer.Error(err.Error())
		return err
	}

	ctx := context.Background()
	store, err := history.Open(ctx, cfg.HistoryDB)
	if err != nil {
		printer.Error(err.Error())
		return err
	}
	defer store.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	entries, err := store.Recent(ctx, limit)
	if err != nil {
		printer.Error(err.Error())
		return err
	}
	if len(entries) == 0 {
		printer.Info("no loads recorded yet")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "WHEN\tFILE\tLOADED\tSKIPPED\tBAD LINES")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\n",
			e.LoadedAt.Local().Format("2006-01-02 15:04:05"), e.File, e.Loaded, e.Skipped, e.BadLines)
	}
	return w.Flush()
}
