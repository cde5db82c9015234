package commands

import (
	"os"

	"github.com/hackjudge/gavel/internal/printer"
	"github.com/hackjudge/gavel/internal/render"
	"github.com/hackjudge/gavel/internal/roster"
	"github.com/hackjudge/gavel/pkg/schedule"
	"github.com/spf13/cobra"
)

var (
	categoriesInput  string
	categoriesConfig string
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the award categories found in a roster",
	Long: `List every distinct award category label in a team roster.

Reads the same CSV as 'gavel run' and tallies how many teams entered
each category. Useful for checking label spelling and for configuring
the aggregate grouping in gavel.yml.

Example:
  gavel categories -i teams.csv`,
	RunE: runCategories,
}

func init() {
	categoriesCmd.Flags().StringVarP(&categoriesInput, "input", "i", "", "Input CSV file with team data (required)")
	categoriesCmd.Flags().StringVarP(&categoriesConfig, "config", "c", "gavel.yml", "Path to configuration file")
	categoriesCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(categoriesCmd)
}

func runCategories(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(categoriesConfig, cmd.Flags().Changed("config"))
	if err != nil {
		return printer.Error("configuration failed to load", err.Error(), nil)
	}

	teams, err := roster.Load(categoriesInput, cfg.Columns())
	if err != nil {
		return printer.ErrorWithContext(
			"failed to load team roster",
			err.Error(),
			map[string]string{"Input": categoriesInput},
			[]string{"Run 'gavel init' to create a sample roster showing the expected columns"},
		)
	}

	labels := roster.Labels(teams)
	printer.Info("Found %d distinct categories across %d teams:\n\n", len(labels), len(teams))
	policy := schedule.AggregatePolicy{
		Label:   cfg.Aggregate.Label,
		Members: cfg.Aggregate.Members,
	}
	return render.Labels(os.Stdout, labels, policy)
}
