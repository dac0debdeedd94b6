package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/abcu/advisor/internal/config"
	"github.com/abcu/advisor/internal/history"
	"github.com/abcu/advisor/internal/loader"
	"github.com/abcu/advisor/internal/tui"
	"github.com/abcu/advisor/internal/ui"
)

// menuCmd launches the interactive catalog menu.
var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Launch the interactive catalog menu",
	Long: `Launch the numbered catalog menu: load a course file, display courses
in alphanumeric order, and search by course name, title, or prerequisite.`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().Bool("watch", false, "reload the data file when it changes on disk")
	viper.BindPFlag("watch", menuCmd.Flags().Lookup("watch"))
	rootCmd.AddCommand(menuCmd)
}

func runMenu(_ *cobra.Command, _ []string) error {
	printer := ui.New()

	cfg, err := config.Load()
	if err != nil {
		printer.Error(err.Error())
		return err
	}

	store, err := history.Open(context.Background(), cfg.HistoryDB)
	if err != nil {
		// History is a convenience; the menu works without it.
		printer.Warn(fmt.Sprintf("load history disabled: %v", err))
		store = nil
	} else {
		defer store.Close()
	}

	m := tui.New(cfg, store)

	var watcher *loader.Watcher
	if cfg.Watch {
		watcher, err = loader.NewWatcher(cfg.DataFile)
		if err != nil {
			printer.Warn(fmt.Sprintf("watch disabled: %v", err))
		} else if err := watcher.Start(); err != nil {
			printer.Warn(fmt.Sprintf("watch disabled: %v", err))
			watcher.Stop()
			watcher = nil
		} else {
			defer watcher.Stop()
			m = m.WithWatcher(watcher.Changes)
			if cfg.Verbose {
				fmt.Fprintf(os.Stderr, "[menu] watching %s\n", cfg.DataFile)
			}
		}
	}

	return tui.Run(m)
}
