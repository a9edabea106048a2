package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonesrussell/uniscrape/internal/config"
	"github.com/jonesrussell/uniscrape/internal/database"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the store, keeping a backup",
	Long: `Rename the current database file to a timestamped backup and create a
fresh, empty store with the full schema.`,
	RunE: runReset,
}

func init() {
	rootCmd.AddCommand(resetCmd)
}

func runReset(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	if _, statErr := os.Stat(cfg.Database); statErr == nil {
		backup := fmt.Sprintf("%s.backup_%s", cfg.Database, time.Now().Format("20060102_150405"))
		if renameErr := os.Rename(cfg.Database, backup); renameErr != nil {
			return fmt.Errorf("failed to back up database: %w", renameErr)
		}
		fmt.Println("backed up database to", backup)
	}

	db, err := database.NewSQLiteConnection(cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	if initErr := database.InitSchema(context.Background(), db); initErr != nil {
		return initErr
	}

	fmt.Println("created fresh database at", cfg.Database)
	return nil
}
