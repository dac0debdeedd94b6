package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abcu/advisor/internal/catalog"
	"github.com/abcu/advisor/internal/config"
	"github.com/abcu/advisor/internal/loader"
	"github.com/abcu/advisor/internal/query"
	"github.com/abcu/advisor/internal/ui"
)

// searchCmd finds courses by id, title substring, or prerequisite.
var searchCmd = &cobra.Command{
	Use:   "search <id|title|prereq> <text>",
	Short: "Search the catalog",
	Long: `Search the configured course file. Categories:

  id      exact course identifier match
  title   substring match on the course title
  prereq  exact match against any prerequisite entry`,
	Args: cobra.ExactArgs(2),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

// parseCategory maps the CLI argument onto a query category.
func parseCategory(s string) (query.Category, error) {
	switch s {
	case "id", "name":
		return query.ByID, nil
	case "title":
		return query.ByTitle, nil
	case "prereq", "prerequisite":
		return query.ByPrerequisite, nil
	}
	return "", fmt.Errorf("%w: %q (want id, title, or prereq)", query.ErrUnknownCategory, s)
}

func runSearch(_ *cobra.Command, args []string) error {
	printer := ui.New()

	category, err := parseCategory(args[0])
	if err != nil {
		printer.Error(err.Error())
		return err
	}
	criteria := args[1]
	if criteria == "" {
		err := fmt.Errorf("search criteria cannot be empty")
		printer.Error(err.Error())
		return err
	}

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

	matches, err := query.Search(cat, category, criteria)
	if err != nil {
		printer.Error(err.Error())
		return err
	}
	printer.CourseList(fmt.Sprintf("Search: %s", criteria), matches)
	return nil
}
