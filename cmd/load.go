package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abcu/advisor/internal/catalog"
	"github.com/abcu/advisor/internal/config"
	"github.com/abcu/advisor/internal/history"
	"github.com/abcu/advisor/internal/loader"
	"github.com/abcu/advisor/internal/ui"
)

// loadCmd validates a course file in one shot and reports what it holds.
var loadCmd = &cobra.Command{
	Use:   "load [file]",
	Short: "Load and validate a course file",
	Long: `Load a course file into a fresh catalog, report how many courses it
contains, and record the load in the history database. With no argument the
configured data file is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLoad,
}

func init() {
	rootCmd.AddCommand(loadCmd)
}

func runLoad(_ *cobra.Command, args []string) error {
	printer := ui.New()

	cfg, err := config.Load()
	if err != nil {
		printer.Error(err.Error())
		return err
	}

	path := cfg.DataFile
	if len(args) == 1 {
		path = args[0]
	}

	cat := catalog.NewWithCapacity(cfg.InitialCapacity)
	report, err := loader.Load(cat, path, cfg.Delimiter)
	if err != nil {
		printer.Error(err.Error())
		return err
	}
	printer.LoadReport(report)

	if cfg.Verbose {
		fmt.Fprintf(os.Stderr, "[load] catalog capacity %d, load factor %.3f\n",
			cat.Capacity(), cat.LoadFactor())
	}

	ctx := context.Background()
	store, err := history.Open(ctx, cfg.HistoryDB)
	if err != nil {
		printer.Warn(fmt.Sprintf("load not recorded: %v", err))
		return nil
	}
	defer store.Close()
	if err := store.Record(ctx, report.File, report.Loaded, report.Duplicates, len(report.BadLines)); err != nil {
		printer.Warn(err.Error())
	}
	return nil
}
