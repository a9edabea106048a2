package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonesrussell/uniscrape/internal/exporter"
)

var exportFormat string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the collected data",
	Long:  `Export the store contents to JSON, CSV, or Excel files under the export directory.`,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "all",
		"export format: json, csv, excel, or all")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	a, err := setup()
	if err != nil {
		return err
	}
	defer a.close()

	ctx, stop := signalContext()
	defer stop()

	e := exporter.New(a.universities, a.courses, a.log, a.cfg.ExportPath)

	var paths []string
	switch exportFormat {
	case "json":
		path, exportErr := e.ExportJSON(ctx)
		if exportErr != nil {
			return exportErr
		}
		paths = append(paths, path)
	case "csv":
		csvPaths, exportErr := e.ExportCSV(ctx)
		if exportErr != nil {
			return exportErr
		}
		paths = append(paths, csvPaths...)
	case "excel":
		path, exportErr := e.ExportExcel(ctx)
		if exportErr != nil {
			return exportErr
		}
		paths = append(paths, path)
	case "all":
		allPaths, exportErr := e.ExportAll(ctx)
		if exportErr != nil {
			return exportErr
		}
		paths = append(paths, allPaths...)
	default:
		return fmt.Errorf("unknown format %q, want json, csv, excel, or all", exportFormat)
	}

	for _, p := range paths {
		fmt.Println("exported:", p)
	}

	return nil
}
