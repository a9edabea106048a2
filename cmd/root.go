// Package cmd implements the uniscrape command-line interface.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonesrussell/uniscrape/internal/config"
	"github.com/jonesrussell/uniscrape/internal/database"
	"github.com/jonesrussell/uniscrape/internal/logger"
)

var (
	cfgFile string
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:   "uniscrape",
	Short: "Collect university degree programme data",
	Long: `uniscrape scrapes degree programme listings from university websites,
stores them in a local SQLite database, and exports the collected data
to JSON, CSV, and Excel files.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(func() {
		// Missing .env is fine; values come from the config file or defaults.
		_ = godotenv.Load()
	})

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path (default ./config.json)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}

// app bundles the collaborators every command needs.
type app struct {
	cfg          *config.Config
	log          logger.Interface
	db           *sqlx.DB
	universities *database.UniversityRepository
	courses      *database.CourseRepository
}

// setup loads configuration, builds the logger, and opens the store.
func setup() (*app, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}

	level := cfg.LogLevel
	if debug {
		level = "debug"
	}

	log, err := logger.New(&logger.Config{
		Level:       level,
		Development: debug,
		LogPath:     cfg.LogPath,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	db, err := database.NewSQLiteConnection(cfg.Database)
	if err != nil {
		return nil, err
	}

	if initErr := database.InitSchema(context.Background(), db); initErr != nil {
		db.Close()
		return nil, initErr
	}

	return &app{
		cfg:          cfg,
		log:          log,
		db:           db,
		universities: database.NewUniversityRepository(db),
		courses:      database.NewCourseRepository(db),
	}, nil
}

// close releases the store connection.
func (a *app) close() {
	if a.db != nil {
		a.db.Close()
	}
}

// signalContext returns a context cancelled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
