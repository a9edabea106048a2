package cmd

import (
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/jonesrussell/uniscrape/internal/database"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show store statistics",
	Long:  `Show counts of stored universities and degree programmes, grouped by institution and subject area.`,
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(_ *cobra.Command, _ []string) error {
	a, err := setup()
	if err != nil {
		return err
	}
	defer a.close()

	ctx, stop := signalContext()
	defer stop()

	stats, err := database.NewStatsRepository(a.db).Get(ctx)
	if err != nil {
		return err
	}

	summary := table.NewWriter()
	summary.SetOutputMirror(os.Stdout)
	summary.SetStyle(table.StyleLight)
	summary.AppendHeader(table.Row{"Metric", "Count"})
	summary.AppendRow(table.Row{"Universities", stats.Universities})
	summary.AppendRow(table.Row{"Degree courses", stats.Courses})
	summary.Render()

	renderGroup("University", stats.ByUniversity)
	renderGroup("Subject area", stats.ByArea)

	return nil
}

func renderGroup(label string, rows []database.GroupCount) {
	if len(rows) == 0 {
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{label, "Courses"})
	for _, row := range rows {
		t.AppendRow(table.Row{row.Key, row.Count})
	}
	t.Render()
}
