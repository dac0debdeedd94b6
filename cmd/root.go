package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/abcu/advisor/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "advisor",
	Short: "ABC University course catalog",
	Long: "Advisor loads a delimited course file into an in-memory catalog and\n" +
		"answers listing and search queries, interactively or from the command line.",
	RunE: runRootDefault,
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .advisor.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().String("data-file", "", "course data file")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("data_file", rootCmd.PersistentFlags().Lookup("data-file"))
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".advisor")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("ADVISOR")
	viper.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}

// runRootDefault launches the interactive menu when the configured data file
// exists, and falls back to help otherwise.
func runRootDefault(cmd *cobra.Command, args []string) error {
	if _, ok := defaultDataFile(); !ok {
		return cmd.Help()
	}
	return runMenu(menuCmd, nil)
}

// defaultDataFile resolves the data file through the config layer, so the
// built-in default applies even when no flag, env var, or config file set
// one, and reports whether the file exists on disk.
func defaultDataFile() (string, bool) {
	cfg, err := config.Load()
	if err != nil {
		return "", false
	}
	_, statErr := os.Stat(cfg.DataFile)
	return cfg.DataFile, statErr == nil
}
