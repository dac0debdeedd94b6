package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abcu/advisor/internal/catalog"
	"github.com/abcu/advisor/internal/config"
	"github.com/abcu/advisor/internal/loader"
	"github.com/abcu/advisor/internal/snapshot"
	"github.com/abcu/advisor/internal/ui"
)

// exportCmd writes the catalog's sorted contents to a TOML snapshot.
var exportCmd = &cobra.Command{
	Use:   "export <output.toml>",
	Short: "Export the catalog to a TOML snapshot",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().Bool("force", false, "overwrite an existing snapshot file")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	printer := ui.New()

	cfg, err := config.Load()
	if err != nil {
		printer.Error(err.Error())
		return err
	}

	cat := catalog.NewWithCapacity(cfg.InitialCapacity)
	report, err := loader.Load(cat, cfg.DataFile, cfg.Delimiter)
	if err != nil {
		printer.Error(err.Error())
		return err
	}

	force, _ := cmd.Flags().GetBool("force")
	if err := snapshot.Write(args[0], cat.Sorted(), snapshot.WriteOptions{Overwrite: force}); err != nil {
		printer.Error(err.Error())
		return err
	}
	printer.Info(fmt.Sprintf("exported %d course(s) to %s", report.Loaded, args[0]))
	return nil
}
