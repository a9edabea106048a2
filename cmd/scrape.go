package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonesrussell/uniscrape/internal/exporter"
	"github.com/jonesrussell/uniscrape/internal/runner"
	"github.com/jonesrussell/uniscrape/internal/scraper"
)

var (
	scrapeUseBrowser bool
	scrapeExport     bool
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape [university...]",
	Short: "Scrape configured universities",
	Long: `Scrape degree programme listings for the named universities, or for
every configured university when called with no arguments or with "all".

Known universities: ` + strings.Join(scraper.Known(), ", "),
	RunE: runScrape,
}

func init() {
	scrapeCmd.Flags().BoolVar(&scrapeUseBrowser, "browser", false,
		"render pages with a headless browser")
	scrapeCmd.Flags().BoolVar(&scrapeExport, "export", false,
		"export all formats after scraping")
	rootCmd.AddCommand(scrapeCmd)
}

func runScrape(_ *cobra.Command, args []string) error {
	a, err := setup()
	if err != nil {
		return err
	}
	defer a.close()

	names, err := resolveUniversities(a.cfg.Universities, args)
	if err != nil {
		return err
	}

	if scrapeUseBrowser {
		a.cfg.UseBrowser = true
	}

	ctx, stop := signalContext()
	defer stop()

	r := runner.New(a.cfg, a.log, a.universities, a.courses)
	stats, runErr := r.Run(ctx, names)
	if runErr != nil && ctx.Err() == nil {
		return runErr
	}

	fmt.Printf("Run %s: %d scraped, %d failed, %d courses in %s\n",
		stats.RunID, stats.Succeeded, stats.Failed, stats.Courses,
		stats.Duration.Round(time.Millisecond))

	if scrapeExport && ctx.Err() == nil {
		e := exporter.New(a.universities, a.courses, a.log, a.cfg.ExportPath)
		paths, exportErr := e.ExportAll(ctx)
		if exportErr != nil {
			return exportErr
		}
		for _, p := range paths {
			fmt.Println("exported:", p)
		}
	}

	return nil
}

// resolveUniversities turns command arguments into the list of institution
// keys to scrape. No arguments or "all" selects the configured set; explicit
// names are validated against the registry.
func resolveUniversities(configured, args []string) ([]string, error) {
	if len(args) == 0 || (len(args) == 1 && strings.EqualFold(args[0], "all")) {
		if len(configured) == 0 {
			return scraper.Known(), nil
		}
		return configured, nil
	}

	known := make(map[string]struct{}, len(scraper.Known()))
	for _, k := range scraper.Known() {
		known[k] = struct{}{}
	}

	names := make([]string, 0, len(args))
	for _, arg := range args {
		key := strings.ToLower(strings.TrimSpace(arg))
		if _, ok := known[key]; !ok {
			return nil, fmt.Errorf("unknown university %q, known: %s",
				arg, strings.Join(scraper.Known(), ", "))
		}
		names = append(names, key)
	}

	return names, nil
}
