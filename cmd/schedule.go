package cmd

import (
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	"github.com/jonesrussell/uniscrape/internal/exporter"
	"github.com/jonesrussell/uniscrape/internal/runner"
)

// defaultSchedule runs a full scrape nightly, off peak for the target sites.
const defaultSchedule = "0 2 * * *"

var scheduleSpec string

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Run scrapes on a cron schedule",
	Long: `Run a full scrape and export on a recurring cron schedule until
interrupted. The schedule uses standard five-field cron syntax.`,
	RunE: runSchedule,
}

func init() {
	scheduleCmd.Flags().StringVar(&scheduleSpec, "cron", defaultSchedule,
		"cron expression for scrape runs")
	rootCmd.AddCommand(scheduleCmd)
}

func runSchedule(_ *cobra.Command, _ []string) error {
	a, err := setup()
	if err != nil {
		return err
	}
	defer a.close()

	ctx, stop := signalContext()
	defer stop()

	r := runner.New(a.cfg, a.log, a.universities, a.courses)
	e := exporter.New(a.universities, a.courses, a.log, a.cfg.ExportPath)

	c := cron.New()
	_, addErr := c.AddFunc(scheduleSpec, func() {
		stats, runErr := r.Run(ctx, a.cfg.Universities)
		if runErr != nil {
			a.log.Error("scheduled run failed", "error", runErr)
			return
		}
		a.log.Info("scheduled run complete",
			"run_id", stats.RunID, "courses", stats.Courses)

		if _, exportErr := e.ExportAll(ctx); exportErr != nil {
			a.log.Error("scheduled export failed", "error", exportErr)
		}
	})
	if addErr != nil {
		return fmt.Errorf("invalid cron expression %q: %w", scheduleSpec, addErr)
	}

	c.Start()
	fmt.Println("scheduler running with", scheduleSpec, "(ctrl-c to stop)")

	<-ctx.Done()
	<-c.Stop().Done()

	return nil
}
