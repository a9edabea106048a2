// Package runner orchestrates a scrape run across configured institutions.
package runner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jonesrussell/uniscrape/internal/config"
	"github.com/jonesrussell/uniscrape/internal/database"
	"github.com/jonesrussell/uniscrape/internal/fetcher"
	"github.com/jonesrussell/uniscrape/internal/logger"
	"github.com/jonesrussell/uniscrape/internal/scraper"
)

// storeError marks a persistence failure. Unlike scrape failures, which are
// isolated per institution, a broken store aborts the whole run.
type storeError struct{ err error }

func (e *storeError) Error() string { return e.err.Error() }
func (e *storeError) Unwrap() error { return e.err }

// Stats summarizes one scrape run.
type Stats struct {
	RunID     string
	Started   time.Time
	Duration  time.Duration
	Attempted int
	Succeeded int
	Failed    int
	Courses   int
}

// Runner executes scrape runs and persists results.
type Runner struct {
	cfg          *config.Config
	log          logger.Interface
	universities *database.UniversityRepository
	courses      *database.CourseRepository
}

// New creates a runner over the given store repositories.
func New(
	cfg *config.Config,
	log logger.Interface,
	universities *database.UniversityRepository,
	courses *database.CourseRepository,
) *Runner {
	return &Runner{
		cfg:          cfg,
		log:          log.WithComponent("runner"),
		universities: universities,
		courses:      courses,
	}
}

// Run scrapes the named institutions in order. A scrape failure at one
// institution is logged and does not stop the others; context cancellation
// and store failures abort the run early. The returned stats cover whatever
// completed.
func (r *Runner) Run(ctx context.Context, names []string) (*Stats, error) {
	stats := &Stats{
		RunID:   uuid.NewString(),
		Started: time.Now(),
	}
	log := r.log.With("run_id", stats.RunID)
	log.Info("starting scrape run", "universities", names)

	f, err := r.newFetcher()
	if err != nil {
		return stats, err
	}
	// The browser fetcher holds a session for the whole run.
	if closer, ok := f.(fetcher.Closer); ok {
		defer func() {
			if closeErr := closer.Close(); closeErr != nil {
				log.Warn("failed to close browser session", "error", closeErr)
			}
		}()
	}

	for _, name := range names {
		stats.Attempted++

		saved, scrapeErr := r.scrapeOne(ctx, f, name, log)
		if scrapeErr != nil {
			if errors.Is(scrapeErr, context.Canceled) || errors.Is(scrapeErr, context.DeadlineExceeded) {
				log.Info("run cancelled", "university", name)
				stats.Duration = time.Since(stats.Started)
				return stats, scrapeErr
			}

			var se *storeError
			if errors.As(scrapeErr, &se) {
				log.Error("store failure, aborting run", "university", name, "error", se.Unwrap())
				stats.Failed++
				stats.Duration = time.Since(stats.Started)
				return stats, se.Unwrap()
			}

			log.Error("university scrape failed", "university", name, "error", scrapeErr)
			stats.Failed++
			continue
		}

		stats.Succeeded++
		stats.Courses += saved
	}

	stats.Duration = time.Since(stats.Started)
	log.Info("scrape run finished",
		"succeeded", stats.Succeeded,
		"failed", stats.Failed,
		"courses", stats.Courses,
		"duration", stats.Duration)

	return stats, nil
}

// scrapeOne handles one institution end to end and returns the number of
// programme records saved.
func (r *Runner) scrapeOne(
	ctx context.Context,
	f fetcher.Fetcher,
	name string,
	log logger.Interface,
) (int, error) {
	s, err := scraper.New(name, scraper.Options{
		Fetcher: f,
		Logger:  log,
		Delay:   r.cfg.RateLimitDelay,
	})
	if err != nil {
		return 0, err
	}

	info := s.UniversityInfo()
	if saveErr := r.universities.Save(ctx, info); saveErr != nil {
		return 0, &storeError{err: saveErr}
	}
	log.Info("saved university", "university", info.Name)

	courses, coursesErr := s.Courses(ctx)
	if coursesErr != nil {
		return 0, coursesErr
	}
	if len(courses) == 0 {
		log.Warn("no courses extracted", "university", info.Name)
		return 0, nil
	}

	if saveErr := r.courses.SaveAll(ctx, courses); saveErr != nil {
		return 0, &storeError{err: saveErr}
	}
	log.Info("saved courses", "university", info.Name, "count", len(courses))

	return len(courses), nil
}

// newFetcher builds the configured page fetcher.
func (r *Runner) newFetcher() (fetcher.Fetcher, error) {
	if r.cfg.UseBrowser {
		f, err := fetcher.NewBrowserFetcher(r.cfg.Headless, r.cfg.Timeout, r.log)
		if err != nil {
			return nil, fmt.Errorf("failed to start browser fetcher: %w", err)
		}
		return f, nil
	}
	return fetcher.NewHTTPFetcher(r.cfg.Timeout, r.log), nil
}
